package periodic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/periodic/element"
)

func loadElements(t *testing.T) []element.Element {
	t.Helper()
	ds, err := element.LoadFile("element/testdata/elements.json")
	require.NoError(t, err)
	require.Equal(t, 118, ds.Len())
	return ds.Elements
}

func TestGridPosition(t *testing.T) {
	tests := []struct {
		name                  string
		number, group, period int
		wantCol, wantRow      int
	}{
		{"hydrogen", 1, 1, 1, 1, 1},
		{"carbon", 6, 14, 2, 14, 2},
		{"oganesson", 118, 18, 7, 18, 7},
		{"lanthanum", 57, 3, 6, 4, 8},
		{"lutetium", 71, 3, 6, 18, 8},
		{"actinium", 89, 3, 7, 4, 9},
		{"lawrencium", 103, 3, 7, 18, 9},
		{"barium stays in the grid", 56, 2, 6, 2, 6},
		{"hafnium stays in the grid", 72, 4, 6, 4, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := GridPosition(tt.number, tt.group, tt.period)
			assert.Equal(t, tt.wantCol, col)
			assert.Equal(t, tt.wantRow, row)
		})
	}
}

func TestCellsDoNotOverlap(t *testing.T) {
	elements := loadElements(t)
	seen := make(map[[2]int]string, len(elements))
	for _, e := range elements {
		col, row := GridPosition(e.Number, e.Group, e.Period)
		key := [2]int{col, row}
		if other, ok := seen[key]; ok {
			t.Fatalf("%s and %s share cell %v", e.Name, other, key)
		}
		seen[key] = e.Name
	}
}

func TestCellBounds(t *testing.T) {
	carbon := element.Element{Number: 6, Group: 14, Period: 2}
	r := CellBounds(carbon, 100, 5)
	assert.Equal(t, Rect{X: 1405, Y: 205, W: 90, H: 90}, r)
	assert.Equal(t, Vec2{X: 1450, Y: 250}, r.Center())
}

func TestLabelPositions(t *testing.T) {
	assert.Equal(t, Vec2{X: 75, Y: 150}, PeriodLabelPosition(1, 100))
	assert.Equal(t, Vec2{X: 75, Y: 750}, PeriodLabelPosition(7, 100))

	// Group labels sit a quarter cell above their row.
	assert.Equal(t, Vec2{X: 150, Y: 75}, GroupLabelPosition(1, 100))
	assert.Equal(t, Vec2{X: 250, Y: 75}, GroupLabelPosition(2, 100))
	assert.Equal(t, Vec2{X: 350, Y: 375}, GroupLabelPosition(3, 100))
	assert.Equal(t, Vec2{X: 1350, Y: 175}, GroupLabelPosition(13, 100))
	assert.Equal(t, Vec2{X: 1850, Y: 75}, GroupLabelPosition(18, 100))
}

func TestConnectors(t *testing.T) {
	c := Connectors(100, 4)
	assert.Equal(t, ColorsFor(element.Lanthanide), c[0].Colors)
	assert.Equal(t, ColorsFor(element.Actinide), c[1].Colors)

	// The lanthanide wedge runs from the group 3 cell of period 6 down to row 8.
	q := c[0].Corners
	assert.Equal(t, Vec2{X: 304, Y: 694}, q[0])
	assert.Equal(t, Vec2{X: 304, Y: 606}, q[1])
	assert.Equal(t, Vec2{X: 396, Y: 806}, q[2])
	assert.Equal(t, Vec2{X: 396, Y: 894}, q[3])
	assert.Equal(t, c[0].Corners[0].Y+100, c[1].Corners[0].Y)
}

func TestHitTest(t *testing.T) {
	elements := loadElements(t)
	cells := Cells(elements, 85, 4)
	require.Len(t, cells, len(elements))

	for _, number := range []int{1, 6, 26, 57, 103, 118} {
		center := cells[number-1].Center()
		assert.Equal(t, number, HitTest(cells, center), "center of %d", number)
	}

	assert.Zero(t, HitTest(cells, Vec2{X: 0, Y: 0}))
	assert.Zero(t, HitTest(cells, Vec2{X: -10, Y: 500}))

	// Edges are outside.
	carbon := cells[5]
	assert.Zero(t, HitTest(cells, Vec2{X: carbon.X, Y: carbon.Center().Y}))
	assert.Zero(t, HitTest(cells, Vec2{X: carbon.Center().X, Y: carbon.Y + carbon.H}))
}

func TestHitTestLastWins(t *testing.T) {
	cells := []Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 5, Y: 5, W: 10, H: 10},
	}
	assert.Equal(t, 2, HitTest(cells, Vec2{X: 7, Y: 7}))
	assert.Equal(t, 1, HitTest(cells, Vec2{X: 2, Y: 2}))
}

func TestColorsFor(t *testing.T) {
	assert.Len(t, categoryColors, len(element.KnownCategories))
	for _, c := range element.KnownCategories {
		_, ok := categoryColors[c]
		assert.True(t, ok, "missing colors for %q", c)
	}

	assert.Equal(t, HSB(55, 80, 60), ColorsFor(element.DiatomicNonmetal).Fill)
	assert.Equal(t, UnknownCategoryColors, ColorsFor("unknown, probably transition metal"))
	assert.Equal(t, UnknownCategoryColors, ColorsFor(""))
}
