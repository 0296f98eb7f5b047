package periodic

import "github.com/go-theft-auto/periodic/element"

// LewisDiagram is the number of dots (0-2) on each side of a symbol.
type LewisDiagram struct {
	Top, Right, Bottom, Left int
}

// Total returns the number of dots in the diagram.
func (d LewisDiagram) Total() int {
	return d.Top + d.Right + d.Bottom + d.Left
}

// sideDots returns 1 dot from the single threshold on, 2 from the pair
// threshold on.
func sideDots(valence, single, pair int) int {
	switch {
	case valence >= pair:
		return 2
	case valence >= single:
		return 1
	default:
		return 0
	}
}

// LewisDots distributes valence electrons around a symbol. Dots are added
// clockwise from the top, a second dot on a side once every side has one.
// Helium's two electrons form a single pair on top.
func LewisDots(valence int, helium bool) LewisDiagram {
	d := LewisDiagram{
		Top:    sideDots(valence, 1, 5),
		Right:  sideDots(valence, 2, 6),
		Bottom: sideDots(valence, 3, 7),
		Left:   sideDots(valence, 4, 8),
	}
	if helium {
		d.Top = 2
		if d.Right > 0 {
			d.Right--
		}
	}
	return d
}

// LewisDotPositions returns dot centers around center. Each side sits
// distance away from the center; a pair is split by gap along the side.
func LewisDotPositions(d LewisDiagram, center Vec2, distance, gap float32) []Vec2 {
	out := make([]Vec2, 0, d.Total())
	side := func(n int, base, along Vec2) {
		switch n {
		case 1:
			out = append(out, base)
		case 2:
			out = append(out, base.Sub(along.Mul(gap/2)), base.Add(along.Mul(gap/2)))
		}
	}
	side(d.Top, Vec2{X: center.X, Y: center.Y - distance}, Vec2{X: 1})
	side(d.Right, Vec2{X: center.X + distance, Y: center.Y}, Vec2{Y: 1})
	side(d.Bottom, Vec2{X: center.X, Y: center.Y + distance}, Vec2{X: 1})
	side(d.Left, Vec2{X: center.X - distance, Y: center.Y}, Vec2{Y: 1})
	return out
}

// drawLewis draws the symbol with its valence dots centered on center.
func drawLewis(ctx *Context, e element.Element, center Vec2) {
	st := ctx.Style()
	size := st.ElementSize
	k := st.Scale()
	symbolSize := 40 * k

	ctx.Text(center.X, center.Y, e.Symbol, symbolSize, st.TextColor.Packed(), AlignCenter, AlignMiddle)

	extent := ctx.MeasureText(e.Symbol, symbolSize)
	distance := max(extent.X, extent.Y)/2 + size*0.12
	d := LewisDots(e.ValenceElectrons(), e.IsHelium())
	dotColor := st.LewisDotColor.Packed()
	for _, p := range LewisDotPositions(d, center, distance, size*0.16) {
		ctx.DrawList.AddCircle(p.X, p.Y, size*0.035, dotColor)
	}
}
