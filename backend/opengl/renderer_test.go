package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/periodic"
)

func TestTightPixelsDropsRowPadding(t *testing.T) {
	pix := []byte{
		1, 2, 0, 0,
		3, 4, 0, 0,
	}
	assert.Equal(t, []byte{1, 2, 3, 4}, tightPixels(pix, 4, 2, 2))

	tight := []byte{1, 2, 3, 4}
	assert.Equal(t, tight, tightPixels(tight, 2, 2, 2))
}

func TestFlipRows(t *testing.T) {
	pix := []byte{1, 1, 2, 2, 3, 3}
	flipRows(pix, 2, 3)
	assert.Equal(t, []byte{3, 3, 2, 2, 1, 1}, pix)
}

func TestScissorFor(t *testing.T) {
	r := &Renderer{width: 800, height: 600}

	x, y, w, h, ok := r.scissorFor([4]float32{10, 20, 110, 220})
	require.True(t, ok)
	assert.Equal(t, int32(10), x)
	assert.Equal(t, int32(380), y)
	assert.Equal(t, int32(100), w)
	assert.Equal(t, int32(200), h)

	_, _, _, _, ok = r.scissorFor([4]float32{-50, 0, -10, 100})
	assert.False(t, ok)
}

func TestBitmapFontAtlas(t *testing.T) {
	atlas := bitmapFontAtlas()
	b := atlas.Bounds()
	assert.Equal(t, periodic.BitmapFontCols*periodic.BitmapFontCellW, b.Dx())
	assert.Equal(t, periodic.BitmapFontRows*periodic.BitmapFontCellH, b.Dy())

	coverage := func(ch rune) int {
		idx := int(ch - 32)
		x0 := (idx % periodic.BitmapFontCols) * periodic.BitmapFontCellW
		y0 := (idx / periodic.BitmapFontCols) * periodic.BitmapFontCellH
		n := 0
		for y := y0; y < y0+periodic.BitmapFontCellH; y++ {
			for x := x0; x < x0+periodic.BitmapFontCellW; x++ {
				if atlas.AlphaAt(x, y).A > 0 {
					n++
				}
			}
		}
		return n
	}

	assert.Zero(t, coverage(' '))
	assert.Positive(t, coverage('A'))
	assert.Positive(t, coverage('z'))
}

func TestTableKey(t *testing.T) {
	assert.Equal(t, periodic.KeyFreeze, tableKey(glfw.KeyKP1))
	assert.Equal(t, periodic.KeyToggleDebug, tableKey(glfw.KeyGraveAccent))
	assert.Equal(t, periodic.KeyBackspace, tableKey(glfw.KeyBackspace))
	assert.Equal(t, periodic.KeyNone, tableKey(glfw.KeyF1))

	_, ok := tableMouseButton(glfw.MouseButton4)
	assert.False(t, ok)
}
