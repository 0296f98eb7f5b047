package periodic

import (
	"fmt"
	"strconv"

	"github.com/go-theft-auto/periodic/element"
)

// Wrap thresholds, in runes, of the detail panel texts.
const (
	WrapSummary        = 110
	WrapImageTitle     = 50
	WrapCardAppearance = 38
	WrapCardImageTitle = 100
	WrapCardSummary    = 123
)

const (
	imageTitlePrefix     = "Right image title: "
	imageCreditPrefix    = "Image: "
	noSelectionText      = "No element selected"
	kelvinSuffix         = "º K"
	ionizationEnergyUnit = "eV"
)

// FormatValue formats an optional property. Missing values print as "null".
func FormatValue(v *float64) string {
	if v == nil {
		return "null"
	}
	return formatFloat(*v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DensityText returns the density line. Gases are measured in g/l,
// everything else in g/cm³.
func DensityText(e element.Element) string {
	if e.Density == nil {
		return "Density: null"
	}
	unit := "g/cm³"
	if e.Phase.IsGas() {
		unit = "g/l"
	}
	return fmt.Sprintf("Density: %s %s", formatFloat(*e.Density), unit)
}

// firstIonizationEnergy returns the first ionization energy or "null".
func firstIonizationEnergy(e element.Element) string {
	if len(e.IonizationEnergies) == 0 {
		return "null"
	}
	return formatFloat(e.IonizationEnergies[0])
}

// PhaseCategory returns the phase and category caption, e.g. "Gaseous noble gas".
func PhaseCategory(e element.Element) string {
	return e.Phase.Adjective() + " " + string(e.Category)
}

// PropertyColumns returns the two property columns of the default panel.
func PropertyColumns(e element.Element) (left, right []string) {
	left = []string{
		"Appearance: " + e.Appearance,
		"Average atomic mass: " + formatFloat(e.AtomicMass),
		"Boiling point: " + FormatValue(e.Boil) + kelvinSuffix,
		"Melting point: " + FormatValue(e.Melt) + kelvinSuffix,
		"Electron configuration: " + e.ElectronConfigurationSemantic,
		"Ionization energy of one electron: " + firstIonizationEnergy(e) + ionizationEnergyUnit,
	}
	right = []string{
		"Category: " + PhaseCategory(e),
		"Electronegativity: " + FormatValue(e.Electronegativity),
		DensityText(e),
		fmt.Sprintf("Period: %d, group: %d", e.Period, e.Group),
		"Electron affinity: " + FormatValue(e.ElectronAffinity),
	}
	return left, right
}

// CardProperties returns the full property list of the single-match layout.
func CardProperties(e element.Element) []string {
	return []string{
		fmt.Sprintf("Atomic number: %d", e.Number),
		"Atomic mass: " + formatFloat(e.AtomicMass),
		"Category: " + string(e.Category),
		"Phase: " + string(e.Phase),
		"Block: " + e.Block,
		fmt.Sprintf("Period: %d", e.Period),
		fmt.Sprintf("Group: %d", e.Group),
		fmt.Sprintf("Neutrons: %d", e.Neutrons()),
		"Boiling point: " + FormatValue(e.Boil) + kelvinSuffix,
		"Melting point: " + FormatValue(e.Melt) + kelvinSuffix,
		DensityText(e),
		"Molar heat: " + FormatValue(e.MolarHeat),
		"Electronegativity: " + FormatValue(e.Electronegativity),
		"Electron affinity: " + FormatValue(e.ElectronAffinity),
		"Electron configuration: " + e.ElectronConfigurationSemantic,
	}
}

// IonizationLines returns one line per displayed ionization energy.
func IonizationLines(e element.Element) []string {
	energies := e.DisplayIonizationEnergies()
	lines := make([]string, 0, len(energies)+1)
	lines = append(lines, "Ionization energies:")
	for i, v := range energies {
		lines = append(lines, fmt.Sprintf("%d: %s%s", i+1, formatFloat(v), ionizationEnergyUnit))
	}
	return lines
}

// ImageCaption returns the wrapped photo title followed by the credit line
// when the dataset names one.
func ImageCaption(e element.Element, threshold int) string {
	caption := WrapColumns(imageTitlePrefix+e.Image.Title, threshold)
	if e.Image.Attribution != "" {
		caption += "\n" + imageCreditPrefix + e.Image.Attribution
	}
	return caption
}

// drawLines draws lines top-down from (x, y), one panel line height plus
// padding apart, and returns the y below the last line.
func drawLines(ctx *Context, x, y float32, lines []string) float32 {
	st := ctx.Style()
	size := TextSizePanel * st.Scale()
	step := ctx.LineHeight(size) + st.Padding()
	white := st.TextColor.Packed()
	for _, l := range lines {
		ctx.Text(x, y, l, size, white, AlignLeft, AlignTop)
		y += step
	}
	return y
}

// drawNoSelection is drawn when the selection or the single match is not
// in the dataset.
func drawNoSelection(ctx *Context) {
	st := ctx.Style()
	s := st.ElementSize
	ctx.Text(s*3, 0, noSelectionText, TextSizePanel*st.Scale(), st.TextColor.Packed(), AlignLeft, AlignTop)
}

// drawDetail draws the default panel for the selected element: summary,
// both images, the image title and the property columns below the table.
func (t *Table) drawDetail(ctx *Context, e element.Element) {
	st := ctx.Style()
	s := st.ElementSize
	textSize := TextSizePanel * st.Scale()
	white := st.TextColor.Packed()
	dl := ctx.DrawList

	ctx.Text(s*3, 0, WrapColumns(e.Summary, WrapSummary), textSize, white, AlignLeft, AlignTop)

	bohr, ok := t.images.BohrModel(e.Number)
	drawImage(ctx, bohr, ok, Rect{X: s * 4, Y: s * 1.5, W: s * 2, H: s * 2})
	photo, ok := t.images.Photo(e.Name)
	drawImage(ctx, photo, ok, Rect{X: s*6 + 1, Y: s * 1.5, W: s * 2, H: s * 2})

	title := ImageCaption(e, WrapImageTitle)
	ctx.Text(s*8.1, s*1.5, title, textSize, white, AlignLeft, AlignTop)

	// Half-pixel offsets keep the 1px lines crisp.
	sep := st.SeparatorColor.Packed()
	w := ctx.DisplaySize.X
	dl.AddLine(0, s*10+4.5, w, s*10+4.5, sep, 1)
	dl.AddLine(0, s*10+8.5, w, s*10+8.5, sep, 1)

	left, right := PropertyColumns(e)
	drawLines(ctx, st.Padding(), s*10.2, left)
	drawLines(ctx, w/2, s*10.2, right)
}

// drawCard draws the information-dense layout used when the search has
// narrowed down to a single element. It replaces the table entirely.
func (t *Table) drawCard(ctx *Context, e element.Element) {
	st := ctx.Style()
	s := st.ElementSize
	k := st.Scale()
	pad := st.Padding()
	white := st.TextColor.Packed()
	dl := ctx.DrawList

	dl.AddRect(0, 0, ctx.DisplaySize.X, ctx.DisplaySize.Y, st.Background.Packed())

	// The card sits right under the search box.
	cardSize := s * 3
	left := pad
	top := pad + ctx.LineHeight(TextSizeSearch*k)
	right := left + cardSize
	colors := ColorsFor(e.Category)
	dl.AddRect(left, top, cardSize, cardSize, colors.Fill.Packed())
	dl.AddRectOutline(left, top, cardSize, cardSize, colors.Stroke.Packed(), k)

	ctx.Text(left, top, strconv.Itoa(e.Number), TextSizeCardNumber*k, white, AlignLeft, AlignTop)
	ctx.Text(right, top, formatFloat(e.AtomicMass), TextSizeCardNumber*k, white, AlignRight, AlignTop)
	ctx.Text(left, top+13*k, e.Symbol, TextSizeCardSymbol*k, white, AlignLeft, AlignTop)
	ctx.Text(right, top+16*k, e.Name, TextSizeCardName*k, white, AlignRight, AlignTop)
	ctx.Text(right, top+29*k, PhaseCategory(e), TextSizeCardName*k, white, AlignRight, AlignTop)

	textSize := TextSizePanel * k
	appearance := WrapColumns("Appearance: "+e.Appearance, WrapCardAppearance)
	ctx.Text(left, top+cardSize+pad, appearance, textSize, white, AlignLeft, AlignTop)

	drawBohr(ctx, e, Vec2{X: s * 5.25, Y: top + cardSize/2})
	drawLewis(ctx, e, Vec2{X: s * 8, Y: top + cardSize/2})

	propsY := drawLines(ctx, s*9.5, top, CardProperties(e))
	drawLines(ctx, s*15, top, IonizationLines(e))

	imagesY := max(propsY, top+cardSize) + pad
	photo, ok := t.images.Photo(e.Name)
	drawImage(ctx, photo, ok, Rect{X: s * 9.5, Y: imagesY, W: s * 2, H: s * 2})
	bohr, ok := t.images.BohrModel(e.Number)
	drawImage(ctx, bohr, ok, Rect{X: s*11.5 + 1, Y: imagesY, W: s * 2, H: s * 2})

	title := ImageCaption(e, WrapCardImageTitle)
	ctx.Text(s*9.5, imagesY+s*2+pad, title, textSize, white, AlignLeft, AlignTop)

	summary := WrapColumns(e.Summary, WrapCardSummary)
	summaryH := ctx.MeasureLines(summary, textSize).Y
	ctx.Text(pad, ctx.DisplaySize.Y-pad-summaryH, summary, textSize, white, AlignLeft, AlignTop)
}
