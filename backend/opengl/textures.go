package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/periodic"
)

// UploadRGBATexture uploads a full color image, e.g. an element photo,
// and registers it for color sampling. Returns the texture ID.
func (r *Renderer) UploadRGBATexture(img *image.RGBA) uint32 {
	b := img.Bounds()
	pix := tightPixels(img.Pix, img.Stride, b.Dx()*4, b.Dy())

	tex := newTexture(gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.rgbaTextures[tex] = true
	return tex
}

// UploadAlphaTexture uploads a coverage mask such as a font atlas.
// The mask is tinted by the vertex color when drawn.
func (r *Renderer) UploadAlphaTexture(img *image.Alpha) uint32 {
	b := img.Bounds()
	pix := tightPixels(img.Pix, img.Stride, b.Dx(), b.Dy())

	tex := newTexture(gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}

// DeleteTexture releases a texture created by one of the upload methods.
func (r *Renderer) DeleteTexture(id uint32) {
	if id == 0 {
		return
	}
	delete(r.rgbaTextures, id)
	gl.DeleteTextures(1, &id)
}

func newTexture(filter int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return tex
}

// tightPixels returns pix with row padding removed.
func tightPixels(pix []byte, stride, rowLen, rows int) []byte {
	if stride == rowLen {
		return pix[:rowLen*rows]
	}
	out := make([]byte, rowLen*rows)
	for y := 0; y < rows; y++ {
		copy(out[y*rowLen:(y+1)*rowLen], pix[y*stride:y*stride+rowLen])
	}
	return out
}

// bitmapFontAtlas rasterizes printable ASCII with the 7x13 basic face into
// the grid periodic.DrawList.AddText samples from.
func bitmapFontAtlas() *image.Alpha {
	w := periodic.BitmapFontCols * periodic.BitmapFontCellW
	h := periodic.BitmapFontRows * periodic.BitmapFontCellH
	atlas := image.NewAlpha(image.Rect(0, 0, w, h))

	face := basicfont.Face7x13
	top := (periodic.BitmapFontCellH - face.Height) / 2
	d := font.Drawer{Dst: atlas, Src: image.Opaque, Face: face}

	for ch := rune(32); ch < 127; ch++ {
		idx := int(ch - 32)
		x := (idx % periodic.BitmapFontCols) * periodic.BitmapFontCellW
		y := (idx/periodic.BitmapFontCols)*periodic.BitmapFontCellH + top
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(ch))
	}
	return atlas
}
