package periodic

// Reference cell size. Every other size in the style scales with
// ElementSize / ReferenceElementSize.
const ReferenceElementSize float32 = 75

// Text sizes at the reference cell size.
const (
	TextSizeCellSymbol   float32 = 25
	TextSizeCellNumber   float32 = 10
	TextSizeCellName     float32 = 10
	TextSizeCellCategory float32 = 5.8
	TextSizeLabel        float32 = 14
	TextSizePanel        float32 = 15
	TextSizeSearch       float32 = 16
	TextSizeCardNumber   float32 = 13
	TextSizeCardSymbol   float32 = 70
	TextSizeCardName     float32 = 10
	TextSizeDebug        float32 = 14
)

// Style defines the visual appearance of the table.
type Style struct {
	// ElementSize is the edge length of one grid cell in pixels.
	ElementSize float32

	// Colors
	Background     HSBA
	TextColor      HSBA
	SearchBg       HSBA
	SearchBorder   HSBA
	SearchText     HSBA
	CursorColor    HSBA
	SeparatorColor HSBA
	DimMask        CategoryColors
	HighlightMask  CategoryColors
	Placeholder    HSBA

	ToastInfo    HSBA
	ToastWarning HSBA

	// Bohr diagram colors
	ProtonColor    HSBA
	NeutronColor   HSBA
	NucleusColor   HSBA
	OrbitColor     HSBA
	ElectronColors [5]HSBA // valence shell first, then three inner shells, then the rest
	LewisDotColor  HSBA

	// Font fallback metrics for the built-in bitmap font,
	// as fractions of the text size.
	CharWidth  float32
	CharHeight float32
}

// DefaultStyle returns the default style: 85px cells on a dark blue background.
func DefaultStyle() Style {
	return Style{
		ElementSize: 85,

		Background:     HSB(234, 34, 24),
		TextColor:      HSB(0, 0, 100),
		SearchBg:       HSB(0, 0, 25),
		SearchBorder:   HSB(0, 0, 50),
		SearchText:     HSB(0, 0, 80),
		CursorColor:    HSB(0, 0, 100),
		SeparatorColor: HSB(0, 0, 100),
		DimMask: CategoryColors{
			Fill:   HSBA{0, 0, 0, 50},
			Stroke: HSBA{0, 0, 0, 50},
		},
		HighlightMask: CategoryColors{
			Fill:   HSBA{0, 0, 100, 25},
			Stroke: HSBA{0, 0, 100, 60},
		},
		Placeholder: HSB(0, 0, 15),

		ToastInfo:    HSB(222, 64, 43).WithAlpha(90),
		ToastWarning: HSB(40, 86, 55).WithAlpha(90),

		ProtonColor:  HSB(0, 75, 85),
		NeutronColor: HSB(210, 20, 75),
		NucleusColor: HSB(0, 0, 12),
		OrbitColor:   HSB(0, 0, 60).WithAlpha(60),
		ElectronColors: [5]HSBA{
			HSB(50, 90, 100), // valence
			HSB(140, 70, 90), // valence - 1
			HSB(190, 70, 95), // valence - 2
			HSB(280, 55, 95), // valence - 3
			HSB(0, 0, 85),    // everything further in
		},
		LewisDotColor: HSB(50, 90, 100),

		CharWidth:  0.5,
		CharHeight: 1.0,
	}
}

// Scale returns ElementSize relative to the reference cell size.
func (s Style) Scale() float32 {
	return s.ElementSize / ReferenceElementSize
}

// Padding returns the gap between a cell's grid square and its colored square.
func (s Style) Padding() float32 {
	return 4 * s.Scale()
}

// CanvasSize returns the frame size the table is laid out for.
func (s Style) CanvasSize() Vec2 {
	return Vec2{X: 1500 * s.Scale(), Y: 900 * s.Scale()}
}
