package periodic

import (
	"strings"
	"time"
)

// Align controls how a text block is placed relative to its anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// VAlign controls the vertical placement of text relative to its anchor point.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Context holds all state for rendering a single frame.
// This is NOT context.Context - it's a dedicated per-frame drawing context.
type Context struct {
	// Drawing output
	DrawList *DrawList

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32
	Clock      time.Duration // simulation clock driving animations and the cursor blink

	// Font texture ID (set by renderer) - used by the built-in bitmap font
	FontTextureID uint32

	style        Style
	fontProvider FontProvider

	// Performance optimization: pre-allocated glyph buffer for text rendering.
	// Reused between Text() calls to avoid per-call allocations.
	glyphBuffer []GlyphQuad

	// Per-frame text measurement cache.
	textMeasureCache map[measureKey]Vec2
}

type measureKey struct {
	text string
	size float32
}

// NewContext creates a new frame context with default settings.
func NewContext() *Context {
	return &Context{
		style:            DefaultStyle(),
		glyphBuffer:      make([]GlyphQuad, 0, 256),
		textMeasureCache: make(map[measureKey]Vec2, 256),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// SetFontProvider sets the font provider.
// Pass nil to fall back to the built-in bitmap font.
func (ctx *Context) SetFontProvider(fp FontProvider) {
	ctx.fontProvider = fp
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32, clock time.Duration) {
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.Clock = clock
	clear(ctx.textMeasureCache)
}

// activeFont returns the current active font, or nil if no font provider is set.
func (ctx *Context) activeFont() Font {
	if ctx.fontProvider != nil {
		return ctx.fontProvider.ActiveFont()
	}
	return nil
}

// LineHeight returns the height of a single line of text at the given size.
func (ctx *Context) LineHeight(size float32) float32 {
	if f := ctx.activeFont(); f != nil {
		return f.LineHeight(size)
	}
	return ctx.style.CharHeight * size
}

// MeasureText returns the size of a single line of rendered text.
// Results are cached per frame.
func (ctx *Context) MeasureText(text string, size float32) Vec2 {
	key := measureKey{text: text, size: size}
	if cached, ok := ctx.textMeasureCache[key]; ok {
		return cached
	}

	var result Vec2
	if f := ctx.activeFont(); f != nil {
		m := f.MeasureText(text, size)
		result = Vec2{X: m.X, Y: m.Y}
	} else {
		// Fallback to monospace calculation
		n := float32(len([]rune(text)))
		result = Vec2{X: n * ctx.style.CharWidth * size, Y: ctx.style.CharHeight * size}
	}

	if ctx.textMeasureCache != nil {
		ctx.textMeasureCache[key] = result
	}
	return result
}

// MeasureLines returns the size of a multi-line text block.
func (ctx *Context) MeasureLines(text string, size float32) Vec2 {
	var out Vec2
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if w := ctx.MeasureText(line, size).X; w > out.X {
			out.X = w
		}
	}
	out.Y = float32(len(lines)) * ctx.LineHeight(size)
	return out
}

// Text draws a text block anchored at (x, y). Lines are separated by "\n"
// and aligned individually; the vertical alignment applies to the block.
func (ctx *Context) Text(x, y float32, text string, size float32, color uint32, align Align, valign VAlign) {
	if text == "" {
		return
	}

	lines := strings.Split(text, "\n")
	lh := ctx.LineHeight(size)
	top := y
	switch valign {
	case AlignMiddle:
		top = y - float32(len(lines))*lh/2
	case AlignBottom:
		top = y - float32(len(lines))*lh
	}

	for i, line := range lines {
		lx := x
		switch align {
		case AlignCenter:
			lx = x - ctx.MeasureText(line, size).X/2
		case AlignRight:
			lx = x - ctx.MeasureText(line, size).X
		}
		ctx.addLine(lx, top+float32(i)*lh, line, size, color)
	}
}

// addLine draws one line of text with its top-left corner at (x, y).
// Uses the font provider if available, otherwise falls back to the built-in bitmap font.
func (ctx *Context) addLine(x, y float32, text string, size float32, color uint32) {
	if text == "" || ctx.DrawList == nil {
		return
	}

	if f := ctx.activeFont(); f != nil {
		ctx.DrawList.SetTexture(f.TextureID())
		fontQuads := f.GetGlyphQuads(text, x, y, size)

		// Reuse pre-allocated buffer instead of allocating each call
		if cap(ctx.glyphBuffer) < len(fontQuads) {
			ctx.glyphBuffer = make([]GlyphQuad, 0, len(fontQuads)*2)
		}
		ctx.glyphBuffer = ctx.glyphBuffer[:len(fontQuads)]

		for i, q := range fontQuads {
			ctx.glyphBuffer[i] = GlyphQuad{
				X0: q.X0, Y0: q.Y0,
				X1: q.X1, Y1: q.Y1,
				U0: q.U0, V0: q.V0,
				U1: q.U1, V1: q.V1,
			}
		}
		ctx.DrawList.AddGlyphQuads(ctx.glyphBuffer, color)
		ctx.DrawList.SetTexture(0)
		return
	}

	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, size, ctx.style.CharWidth, ctx.style.CharHeight)
	ctx.DrawList.SetTexture(0)
}
