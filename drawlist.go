package periodic

import (
	"sync"

	"github.com/chewxy/math32"
)

// drawListPool reuses DrawList buffers between frames; the whole table is
// rebuilt every frame and the buffers reach a steady size quickly.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 32*1024),
			IdxBuffer: make([]uint16, 0, 48*1024),
			CmdBuffer: make([]DrawCmd, 0, 256),
			clipStack: make([][4]float32, 0, 4),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// noClip is the clip rectangle used outside PushClipRect.
var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// DrawList accumulates the triangles of one frame. Consecutive primitives
// that share a texture and clip rectangle end up in the same DrawCmd.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack   [][4]float32
	currentClip [4]float32
	textureID   uint32

	// Start of the open command in VtxBuffer and IdxBuffer.
	cmdVtxStart uint32
	cmdIdxStart uint32
}

// Clear empties the DrawList, keeping its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = noClip
	dl.textureID = 0
	dl.cmdVtxStart = 0
	dl.cmdIdxStart = 0
}

// PushClipRect restricts subsequent primitives to the rectangle with
// corners (x1, y1) and (x2, y2).
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.newCommand()
}

// PopClipRect restores the clip rectangle active before the last push.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.newCommand()
}

// SetTexture sets the texture for subsequent primitives; 0 draws flat color.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.newCommand()
}

// closeCommand fixes the index count of the open command.
func (dl *DrawList) closeCommand() {
	if n := len(dl.CmdBuffer); n > 0 {
		dl.CmdBuffer[n-1].ElemCount = uint32(len(dl.IdxBuffer)) - dl.cmdIdxStart
	}
}

// newCommand closes the open command and starts one with the current
// texture and clip rectangle.
func (dl *DrawList) newCommand() {
	dl.closeCommand()
	dl.cmdVtxStart = uint32(len(dl.VtxBuffer))
	dl.cmdIdxStart = uint32(len(dl.IdxBuffer))
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: dl.cmdVtxStart,
		IndexOffset:  dl.cmdIdxStart,
	})
}

// maxCmdVertices is the most vertices one command can address with
// 16-bit indices.
const maxCmdVertices = 1 << 16

// addVertices appends the vertices of one shape and returns the index of
// the first, relative to its command. A shape never straddles two
// commands.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdVtxStart)+len(verts) > maxCmdVertices {
		dl.newCommand()
	}
	start := uint16(len(dl.VtxBuffer) - int(dl.cmdVtxStart))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return start
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// addQuad adds two triangles through four vertices given in order.
func (dl *DrawList) addQuad(a, b, c, d Vertex) {
	i := dl.addVertices(a, b, c, d)
	dl.addIndices(i, i+1, i+2, i, i+2, i+3)
}

func visible(color uint32) bool {
	return color&0xFF000000 != 0
}

func flat(x, y float32, color uint32) Vertex {
	return Vertex{Pos: [2]float32{x, y}, Color: color}
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if !visible(color) {
		return
	}
	dl.addQuad(flat(x, y, color), flat(x+w, y, color), flat(x+w, y+h, color), flat(x, y+h, color))
}

// AddRectOutline draws a rectangle outline inside the rectangle's bounds.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if !visible(color) {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line of the given thickness as a quad.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if !visible(color) {
		return
	}

	dx, dy := x2-x1, y2-y1
	var nx, ny float32
	if l := math32.Hypot(dx, dy); l > 0 {
		nx, ny = -dy/l*thickness/2, dx/l*thickness/2
	}
	dl.addQuad(
		flat(x1+nx, y1+ny, color),
		flat(x2+nx, y2+ny, color),
		flat(x2-nx, y2-ny, color),
		flat(x1-nx, y1-ny, color),
	)
}

// AddQuad draws a filled convex quadrilateral through four points in order.
func (dl *DrawList) AddQuad(p1, p2, p3, p4 Vec2, color uint32) {
	if !visible(color) {
		return
	}
	dl.addQuad(flat(p1.X, p1.Y, color), flat(p2.X, p2.Y, color), flat(p3.X, p3.Y, color), flat(p4.X, p4.Y, color))
}

// AddQuadOutline draws the edges of a quadrilateral.
func (dl *DrawList) AddQuadOutline(p1, p2, p3, p4 Vec2, color uint32, thickness float32) {
	dl.AddLine(p1.X, p1.Y, p2.X, p2.Y, color, thickness)
	dl.AddLine(p2.X, p2.Y, p3.X, p3.Y, color, thickness)
	dl.AddLine(p3.X, p3.Y, p4.X, p4.Y, color, thickness)
	dl.AddLine(p4.X, p4.Y, p1.X, p1.Y, color, thickness)
}

// circleSegments picks a segment count that keeps edges smooth at the given radius.
func circleSegments(radius float32) int {
	return min(max(int(radius*0.75), 12), 96)
}

// AddCircle draws a filled circle as a triangle fan.
func (dl *DrawList) AddCircle(cx, cy, radius float32, color uint32) {
	if !visible(color) || radius <= 0 {
		return
	}

	segs := circleSegments(radius)
	verts := make([]Vertex, 0, segs+1)
	verts = append(verts, flat(cx, cy, color))
	for i := 0; i < segs; i++ {
		a := float32(i) / float32(segs) * 2 * math32.Pi
		verts = append(verts, flat(cx+math32.Cos(a)*radius, cy+math32.Sin(a)*radius, color))
	}

	center := dl.addVertices(verts...)
	for i := 0; i < segs; i++ {
		next := (i + 1) % segs
		dl.addIndices(center, center+1+uint16(i), center+1+uint16(next))
	}
}

// AddCircleOutline draws a ring of the given thickness centered on radius.
func (dl *DrawList) AddCircleOutline(cx, cy, radius float32, color uint32, thickness float32) {
	if !visible(color) || radius <= 0 {
		return
	}

	segs := circleSegments(radius)
	inner := max(radius-thickness/2, 0)
	outer := radius + thickness/2

	verts := make([]Vertex, 0, segs*2)
	for i := 0; i < segs; i++ {
		a := float32(i) / float32(segs) * 2 * math32.Pi
		cos, sin := math32.Cos(a), math32.Sin(a)
		verts = append(verts, flat(cx+cos*inner, cy+sin*inner, color), flat(cx+cos*outer, cy+sin*outer, color))
	}

	start := dl.addVertices(verts...)
	for i := 0; i < segs; i++ {
		a := start + uint16(i*2)
		b := start + uint16(((i+1)%segs)*2)
		dl.addIndices(a, a+1, b+1, a, b+1, b)
	}
}

// AddImage draws a whole texture stretched over the rectangle. The
// previous texture is restored afterwards.
func (dl *DrawList) AddImage(textureID uint32, x, y, w, h float32, tint uint32) {
	if textureID == 0 || !visible(tint) {
		return
	}

	prev := dl.textureID
	dl.SetTexture(textureID)
	dl.addGlyph(GlyphQuad{X0: x, Y0: y, X1: x + w, Y1: y + h, U1: 1, V1: 1}, tint)
	dl.SetTexture(prev)
}

// Built-in bitmap font atlas layout: printable ASCII 32-127 in a grid of
// fixed-size cells, row-major.
const (
	BitmapFontCols  = 16
	BitmapFontRows  = 6
	BitmapFontCellW = 8
	BitmapFontCellH = 16

	bitmapFontWidth  = BitmapFontCols * BitmapFontCellW
	bitmapFontHeight = BitmapFontRows * BitmapFontCellH
)

// AddText draws one line of text with the built-in bitmap font. The caller
// binds the font texture. Each rune takes a charWidth x charHeight cell
// scaled by fontScale.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, fontScale float32, charWidth, charHeight float32) {
	if !visible(color) || text == "" {
		return
	}

	cw := charWidth * fontScale
	ch := charHeight * fontScale
	px := x
	for _, r := range text {
		c := unicodeFallback(r)
		if c < 32 || c > 127 {
			c = '?'
		}

		idx := int(c - 32)
		col := float32(idx % BitmapFontCols)
		row := float32(idx / BitmapFontCols)
		dl.addGlyph(GlyphQuad{
			X0: px, Y0: y, X1: px + cw, Y1: y + ch,
			U0: col * BitmapFontCellW / bitmapFontWidth,
			V0: row * BitmapFontCellH / bitmapFontHeight,
			U1: (col + 1) * BitmapFontCellW / bitmapFontWidth,
			V1: (row + 1) * BitmapFontCellH / bitmapFontHeight,
		}, color)
		px += cw
	}
}

// unicodeFallback maps the non-ASCII symbols the table prints to ASCII
// for the built-in bitmap font.
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '→':
		return '>'
	case '←':
		return '<'
	case 'º', '°':
		return 'o'
	case '³':
		return '3'
	case '·':
		return '.'
	case '—', '–':
		return '-'
	default:
		return r
	}
}

// GlyphQuad is a textured screen rectangle: one glyph of a font atlas or
// a whole image.
type GlyphQuad struct {
	X0, Y0 float32 // top-left on screen
	X1, Y1 float32 // bottom-right on screen
	U0, V0 float32 // top-left in the texture
	U1, V1 float32 // bottom-right in the texture
}

func (dl *DrawList) addGlyph(q GlyphQuad, color uint32) {
	dl.addQuad(
		Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
		Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
		Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
		Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
	)
}

// AddGlyphQuads draws glyphs laid out by a FontProvider font. The caller
// binds the atlas texture.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32) {
	if !visible(color) {
		return
	}
	for _, q := range quads {
		dl.addGlyph(q, color)
	}
}

// Finalize closes the last command and drops empty ones. Renderers call
// it before submitting the list.
func (dl *DrawList) Finalize() {
	dl.closeCommand()

	kept := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			kept = append(kept, cmd)
		}
	}
	dl.CmdBuffer = kept
}
