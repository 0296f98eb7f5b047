package periodic

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// ContainsStrict reports whether p lies inside the rectangle and not on
// any of its edges.
func (r Rect) ContainsStrict(p Vec2) bool {
	return p.X > r.X && p.X < r.X+r.W && p.Y > r.Y && p.Y < r.Y+r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture to minimize state changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// ColorWhite is the packed opaque white used as the untinted image color.
const ColorWhite uint32 = 0xFFFFFFFF

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// HSBA is a color in hue/saturation/brightness space with the ranges
// 0-360, 0-100, 0-100 and alpha 0-100.
type HSBA struct {
	H, S, B, A float32
}

// HSB returns an opaque HSBA color.
func HSB(h, s, b float32) HSBA {
	return HSBA{H: h, S: s, B: b, A: 100}
}

// WithAlpha returns the color with its alpha replaced.
func (c HSBA) WithAlpha(a float32) HSBA {
	c.A = a
	return c
}

// Packed converts the color to the packed RGBA format used by DrawList.
func (c HSBA) Packed() uint32 {
	rgb := colorful.Hsv(float64(c.H), float64(clampf(c.S, 0, 100))/100, float64(clampf(c.B, 0, 100))/100).Clamped()
	r, g, b := rgb.RGB255()
	return RGBA(r, g, b, uint8(clampf(c.A, 0, 100)/100*255+0.5))
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
