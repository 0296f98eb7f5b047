package periodic

import (
	"strconv"

	"github.com/go-theft-auto/periodic/element"
)

// Cells returns the padded bounds of every element in dataset order.
func Cells(elements []element.Element, size, padding float32) []Rect {
	cells := make([]Rect, len(elements))
	for i, e := range elements {
		cells[i] = CellBounds(e, size, padding)
	}
	return cells
}

// HitTest returns the 1-based ordinal of the cell strictly containing p,
// or 0 when p is outside every cell or on an edge. When cells overlap the
// last one wins, matching draw order.
func HitTest(cells []Rect, p Vec2) int {
	hit := 0
	for i, c := range cells {
		if c.ContainsStrict(p) {
			hit = i + 1
		}
	}
	return hit
}

// cellTextRows are the vertical centers of the number, symbol, name and
// category captions as fractions of the cell size.
var cellTextRows = [4]float32{1.0 / 7, 3.0 / 7, 5.0 / 7, 6.0 / 7}

// drawCell draws one element square with its captions and, while a search
// is active, the dim or highlight mask on top.
func drawCell(ctx *Context, e element.Element, m *matcher) {
	st := ctx.Style()
	size := st.ElementSize
	k := st.Scale()
	pad := st.Padding()
	dl := ctx.DrawList

	origin := CellOrigin(e, size)
	bounds := CellBounds(e, size, pad)
	colors := ColorsFor(e.Category)
	dl.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, colors.Fill.Packed())
	dl.AddRectOutline(bounds.X, bounds.Y, bounds.W, bounds.H, colors.Stroke.Packed(), k)

	cx := origin.X + size/2
	white := st.TextColor.Packed()
	ctx.Text(cx, origin.Y+size*cellTextRows[0], strconv.Itoa(e.Number), TextSizeCellNumber*k, white, AlignCenter, AlignMiddle)
	ctx.Text(cx, origin.Y+size*cellTextRows[1], e.Symbol, TextSizeCellSymbol*k, white, AlignCenter, AlignMiddle)
	// Long names and captions overflow into the neighbours with wide fonts.
	name := TruncateText(ctx, e.Name, TextSizeCellName*k, bounds.W)
	caption := TruncateText(ctx, e.Category.Caption(), TextSizeCellCategory*k, bounds.W)
	ctx.Text(cx, origin.Y+size*cellTextRows[2], name, TextSizeCellName*k, white, AlignCenter, AlignMiddle)
	ctx.Text(cx, origin.Y+size*cellTextRows[3], caption, TextSizeCellCategory*k, white, AlignCenter, AlignMiddle)

	if m == nil {
		return
	}
	mask := st.DimMask
	if m.matches(e.Name) {
		mask = st.HighlightMask
	}
	dl.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, mask.Fill.Packed())
	dl.AddRectOutline(bounds.X, bounds.Y, bounds.W, bounds.H, mask.Stroke.Packed(), 1)
}

// drawGrid draws the period and group labels, every cell and the two
// connectors leading to the detached band.
func drawGrid(ctx *Context, elements []element.Element, m *matcher) {
	st := ctx.Style()
	size := st.ElementSize
	labelSize := TextSizeLabel * st.Scale()
	white := st.TextColor.Packed()

	for p := 1; p <= PeriodLabelCount; p++ {
		pos := PeriodLabelPosition(p, size)
		ctx.Text(pos.X, pos.Y, strconv.Itoa(p), labelSize, white, AlignCenter, AlignMiddle)
	}
	for g := 1; g <= GroupLabelCount; g++ {
		pos := GroupLabelPosition(g, size)
		ctx.Text(pos.X, pos.Y, strconv.Itoa(g), labelSize, white, AlignCenter, AlignMiddle)
	}

	for _, e := range elements {
		drawCell(ctx, e, m)
	}

	for _, c := range Connectors(size, st.Padding()) {
		q := c.Corners
		ctx.DrawList.AddQuad(q[0], q[1], q[2], q[3], c.Colors.Fill.Packed())
		ctx.DrawList.AddQuadOutline(q[0], q[1], q[2], q[3], c.Colors.Stroke.Packed(), st.Scale())
	}
}
