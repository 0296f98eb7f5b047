package periodic

// FontProvider is the interface for font management in the table renderer.
// It abstracts font loading and selection, allowing different
// implementations to be injected (TTF atlases, mock fonts for testing).
//
// The periodic package does not depend on any concrete font implementation.
// The asset package builds atlases from TrueType data and the host uploads
// them to the GPU before handing them over:
//
//	atlas, _ := asset.LoadFontAtlas(path, 48)
//	atlas.SetTextureID(renderer.UploadAlphaTexture(atlas.Image()))
//	table := periodic.New(renderer, data, periodic.WithFontProvider(asset.SingleFont(atlas)))
type FontProvider interface {
	// ActiveFont returns the currently active font for rendering.
	// Returns nil if no font is loaded or active.
	ActiveFont() Font

	// SetActiveFont sets the active font by name.
	// Returns an error if the font is not found.
	SetActiveFont(name string) error
}

// Font is the interface for a single font that can render text.
// Sizes are text sizes in pixels, the same unit Context.Text takes.
type Font interface {
	// TextureID returns the OpenGL texture ID for the font atlas.
	TextureID() uint32

	// HasGlyph returns true if the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// MeasureText returns the pixel dimensions of a single line of text.
	MeasureText(text string, size float32) FontVec2

	// GetGlyphQuads generates quads for rendering the given text with its
	// top-left corner at (x, y). The returned slice should be used
	// immediately and not stored.
	GetGlyphQuads(text string, x, y, size float32) []FontGlyphQuad

	// LineHeight returns ascent plus descent at the given size.
	LineHeight(size float32) float32
}

// FontVec2 represents a 2D vector returned by font measurement.
type FontVec2 struct {
	X, Y float32
}

// FontGlyphQuad represents a single character's rendering quad from a font.
type FontGlyphQuad struct {
	// Screen coordinates (top-left and bottom-right)
	X0, Y0 float32
	X1, Y1 float32

	// Texture coordinates (top-left and bottom-right)
	U0, V0 float32
	U1, V1 float32
}
