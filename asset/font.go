package asset

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/periodic"
)

// ErrFontNotFound is returned by FontSet.SetActiveFont for unknown names.
var ErrFontNotFound = errors.New("asset: font not found")

// DefaultFontSize is the pixel size fonts are rasterized at. Text drawn
// at other sizes scales the atlas quads.
const DefaultFontSize = 48

// DefaultFontName names the embedded Go Mono font.
const DefaultFontName = "Go Mono"

const (
	atlasWidth   = 1024
	atlasPadding = 1
)

// Runes baked into an atlas: printable ASCII, Latin-1 and the few symbols
// the table prints (arrows in hints, superscripts in units).
var atlasRanges = []struct{ lo, hi rune }{
	{0x20, 0x7E},
	{0xA0, 0xFF},
	{0x2190, 0x2193},
	{0x2022, 0x2022},
	{0x2026, 0x2026},
}

type glyph struct {
	u0, v0, u1, v1 float32
	offX, width    float32 // at the raster size
	advance        float32
}

// FontAtlas is a TrueType font rasterized into an alpha atlas.
// It implements periodic.Font once its texture is uploaded.
type FontAtlas struct {
	name       string
	img        *image.Alpha
	textureID  uint32
	rasterSize float32
	lineHeight float32 // at the raster size
	glyphs     map[rune]glyph
	fallback   glyph
	quads      []periodic.FontGlyphQuad
}

// NewFontAtlas parses TrueType or OpenType data and rasterizes it at size
// pixels.
func NewFontAtlas(name string, data []byte, size float32) (*FontAtlas, error) {
	if size <= 0 {
		size = DefaultFontSize
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", name, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face %s: %w", name, err)
	}
	defer face.Close()

	return rasterize(name, face, size), nil
}

// DefaultFontAtlas rasterizes the embedded Go Mono font.
func DefaultFontAtlas(size float32) (*FontAtlas, error) {
	return NewFontAtlas(DefaultFontName, gomono.TTF, size)
}

// LoadFontAtlas reads a font file. An empty path loads the embedded font.
func LoadFontAtlas(path string, size float32) (*FontAtlas, error) {
	if path == "" {
		return DefaultFontAtlas(size)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return NewFontAtlas(name, data, size)
}

type placement struct {
	r       rune
	minX, w int
	x, y    int
	advance fixed.Int26_6
}

// rasterize packs the atlas runes into shelves of one line height each.
func rasterize(name string, face font.Face, size float32) *FontAtlas {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	lineH := ascent + m.Descent.Ceil()

	var placed []placement
	x, y := atlasPadding, atlasPadding
	for _, rg := range atlasRanges {
		for r := rg.lo; r <= rg.hi; r++ {
			bounds, advance, ok := face.GlyphBounds(r)
			if !ok {
				continue
			}
			minX := bounds.Min.X.Floor()
			w := max(bounds.Max.X.Ceil()-minX, 0)
			if x+w+atlasPadding > atlasWidth {
				x = atlasPadding
				y += lineH + atlasPadding
			}
			placed = append(placed, placement{r: r, minX: minX, w: w, x: x, y: y, advance: advance})
			x += w + atlasPadding
		}
	}
	height := y + lineH + atlasPadding

	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, height))
	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}

	a := &FontAtlas{
		name:       name,
		img:        img,
		rasterSize: size,
		lineHeight: float32(lineH),
		glyphs:     make(map[rune]glyph, len(placed)),
	}
	for _, p := range placed {
		d.Dot = fixed.Point26_6{X: fixed.I(p.x - p.minX), Y: fixed.I(p.y + ascent)}
		d.DrawString(string(p.r))
		a.glyphs[p.r] = glyph{
			u0:      float32(p.x) / atlasWidth,
			v0:      float32(p.y) / float32(height),
			u1:      float32(p.x+p.w) / atlasWidth,
			v1:      float32(p.y+lineH) / float32(height),
			offX:    float32(p.minX),
			width:   float32(p.w),
			advance: float32(p.advance) / 64,
		}
	}
	a.fallback = a.glyphs['?']
	return a
}

// Name returns the font name.
func (a *FontAtlas) Name() string { return a.name }

// Image returns the atlas to upload.
func (a *FontAtlas) Image() *image.Alpha { return a.img }

// SetTextureID records the uploaded atlas texture.
func (a *FontAtlas) SetTextureID(id uint32) { a.textureID = id }

// TextureID implements periodic.Font.
func (a *FontAtlas) TextureID() uint32 { return a.textureID }

// HasGlyph implements periodic.Font.
func (a *FontAtlas) HasGlyph(r rune) bool {
	_, ok := a.glyphs[r]
	return ok
}

func (a *FontAtlas) glyph(r rune) glyph {
	if g, ok := a.glyphs[r]; ok {
		return g
	}
	return a.fallback
}

// LineHeight implements periodic.Font.
func (a *FontAtlas) LineHeight(size float32) float32 {
	return a.lineHeight * size / a.rasterSize
}

// MeasureText implements periodic.Font.
func (a *FontAtlas) MeasureText(text string, size float32) periodic.FontVec2 {
	scale := size / a.rasterSize
	var w float32
	for _, r := range text {
		w += a.glyph(r).advance
	}
	return periodic.FontVec2{X: w * scale, Y: a.lineHeight * scale}
}

// GetGlyphQuads implements periodic.Font. The returned slice is reused by
// the next call.
func (a *FontAtlas) GetGlyphQuads(text string, x, y, size float32) []periodic.FontGlyphQuad {
	scale := size / a.rasterSize
	a.quads = a.quads[:0]
	pen := x
	for _, r := range text {
		g := a.glyph(r)
		if g.width > 0 {
			x0 := pen + g.offX*scale
			a.quads = append(a.quads, periodic.FontGlyphQuad{
				X0: x0, Y0: y,
				X1: x0 + g.width*scale, Y1: y + a.lineHeight*scale,
				U0: g.u0, V0: g.v0,
				U1: g.u1, V1: g.v1,
			})
		}
		pen += g.advance * scale
	}
	return a.quads
}

// FontSet is a periodic.FontProvider over a set of atlases.
type FontSet struct {
	fonts  map[string]*FontAtlas
	active *FontAtlas
}

// NewFontSet returns a set whose first atlas is active.
func NewFontSet(atlases ...*FontAtlas) *FontSet {
	s := &FontSet{fonts: make(map[string]*FontAtlas, len(atlases))}
	for _, a := range atlases {
		if a == nil {
			continue
		}
		s.fonts[a.name] = a
		if s.active == nil {
			s.active = a
		}
	}
	return s
}

// SingleFont returns a provider serving one atlas.
func SingleFont(a *FontAtlas) *FontSet {
	return NewFontSet(a)
}

// ActiveFont implements periodic.FontProvider.
func (s *FontSet) ActiveFont() periodic.Font {
	if s.active == nil {
		return nil
	}
	return s.active
}

// SetActiveFont implements periodic.FontProvider.
func (s *FontSet) SetActiveFont(name string) error {
	a, ok := s.fonts[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	s.active = a
	return nil
}
