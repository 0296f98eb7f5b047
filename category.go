package periodic

import "github.com/go-theft-auto/periodic/element"

// CategoryColors is the fill and stroke pair used to draw a cell.
type CategoryColors struct {
	Fill   HSBA
	Stroke HSBA
}

// UnknownCategoryColors is used for categories missing from the table,
// including every "unknown, ..." variant.
var UnknownCategoryColors = CategoryColors{
	Fill:   HSB(0, 0, 20),
	Stroke: HSB(0, 0, 30),
}

// categoryColors maps each known category to its colors.
var categoryColors = map[element.Category]CategoryColors{
	element.DiatomicNonmetal:    {Fill: HSB(55, 80, 60), Stroke: HSB(55, 80, 80)},
	element.NobleGas:            {Fill: HSB(20, 80, 40), Stroke: HSB(20, 80, 60)},
	element.AlkaliMetal:         {Fill: HSB(0, 70, 30), Stroke: HSB(0, 70, 50)},
	element.AlkalineEarthMetal:  {Fill: HSB(240, 80, 30), Stroke: HSB(240, 80, 50)},
	element.Metalloid:           {Fill: HSB(80, 80, 20), Stroke: HSB(80, 100, 30)},
	element.PolyatomicNonmetal:  {Fill: HSB(60, 85, 55), Stroke: HSB(60, 85, 75)},
	element.PostTransitionMetal: {Fill: HSB(100, 60, 40), Stroke: HSB(100, 60, 60)},
	element.TransitionMetal:     {Fill: HSB(220, 80, 35), Stroke: HSB(220, 80, 45)},
	element.Lanthanide:          {Fill: HSB(180, 80, 40), Stroke: HSB(180, 80, 70)},
	element.Actinide:            {Fill: HSB(160, 80, 40), Stroke: HSB(160, 80, 70)},
}

// ColorsFor returns the colors for a category.
func ColorsFor(c element.Category) CategoryColors {
	if colors, ok := categoryColors[c]; ok {
		return colors
	}
	return UnknownCategoryColors
}
