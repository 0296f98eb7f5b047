package periodic

import "github.com/go-theft-auto/periodic/element"

// Offsets that move the lanthanide and actinide rows out of group 3 and
// into the detached band two rows below the main table.
const (
	lanthanideColumnOffset = 53
	actinideColumnOffset   = 85
	detachedRowOffset      = 2
)

// GridPosition returns the grid column and row an element is drawn at.
// Lanthanides (57-71) and actinides (89-103) are moved into the band below
// the table; every other element keeps its raw group and period.
func GridPosition(number, group, period int) (col, row int) {
	switch {
	case number >= element.LanthanideFirst && number <= element.LanthanideLast:
		return number - lanthanideColumnOffset, period + detachedRowOffset
	case number >= element.ActinideFirst && number <= element.ActinideLast:
		return number - actinideColumnOffset, period + detachedRowOffset
	default:
		return group, period
	}
}

// CellOrigin returns the top-left corner of an element's grid square.
func CellOrigin(e element.Element, size float32) Vec2 {
	col, row := GridPosition(e.Number, e.Group, e.Period)
	return Vec2{X: float32(col) * size, Y: float32(row) * size}
}

// CellBounds returns the colored square inside an element's grid square.
func CellBounds(e element.Element, size, padding float32) Rect {
	o := CellOrigin(e, size)
	return Rect{X: o.X + padding, Y: o.Y + padding, W: size - 2*padding, H: size - 2*padding}
}

// Connector is the quadrilateral joining group 3 of the main table to one
// row of the detached band.
type Connector struct {
	Corners [4]Vec2
	Colors  CategoryColors
}

// Connectors returns the lanthanide and actinide connectors. The y padding
// is widened by half so the quads clear the neighboring cells.
func Connectors(size, padding float32) [2]Connector {
	quad := func(row float32) [4]Vec2 {
		return [4]Vec2{
			{X: 3*size + padding, Y: (row+1)*size - padding*1.5},
			{X: 3*size + padding, Y: row*size + padding*1.5},
			{X: 4*size - padding, Y: (row+2)*size + padding*1.5},
			{X: 4*size - padding, Y: (row+3)*size - padding*1.5},
		}
	}
	return [2]Connector{
		{Corners: quad(6), Colors: ColorsFor(element.Lanthanide)},
		{Corners: quad(7), Colors: ColorsFor(element.Actinide)},
	}
}

// PeriodLabelCount is the number of period labels drawn left of the table.
const PeriodLabelCount = 7

// GroupLabelCount is the number of group labels drawn above the table.
const GroupLabelCount = 18

// groupLabelRows is the first occupied row of each group.
var groupLabelRows = [GroupLabelCount]int{1, 1, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 2, 2, 2, 2, 2, 1}

// PeriodLabelPosition returns the center of the label for period p (1-based).
func PeriodLabelPosition(p int, size float32) Vec2 {
	return Vec2{X: size * 3 / 4, Y: size*3/2 + float32(p-1)*size}
}

// GroupLabelPosition returns the center of the label for group g (1-based),
// a quarter cell above the first element of the group.
func GroupLabelPosition(g int, size float32) Vec2 {
	row := 1
	if g >= 1 && g <= GroupLabelCount {
		row = groupLabelRows[g-1]
	}
	return Vec2{X: size*3/2 + float32(g-1)*size, Y: (float32(row) - 0.25) * size}
}
