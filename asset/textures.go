package asset

import (
	"image"

	"github.com/go-theft-auto/periodic"
)

// Uploader turns a CPU image into a GPU texture.
type Uploader interface {
	UploadRGBATexture(img *image.RGBA) uint32
}

// TextureDeleter releases textures created by an Uploader.
type TextureDeleter interface {
	DeleteTexture(id uint32)
}

// TextureSet is a periodic.ImageStore backed by uploaded textures.
type TextureSet struct {
	photos map[string]periodic.Texture
	bohr   map[int]periodic.Texture
}

// Upload uploads every image in imgs. Call it on the GL thread.
func Upload(u Uploader, imgs *Images) *TextureSet {
	s := &TextureSet{
		photos: make(map[string]periodic.Texture),
		bohr:   make(map[int]periodic.Texture),
	}
	if imgs == nil {
		return s
	}
	for name, img := range imgs.Photos {
		s.photos[name] = upload(u, img)
	}
	for number, img := range imgs.Bohr {
		s.bohr[number] = upload(u, img)
	}
	return s
}

func upload(u Uploader, img *image.RGBA) periodic.Texture {
	b := img.Bounds()
	return periodic.Texture{ID: u.UploadRGBATexture(img), Width: b.Dx(), Height: b.Dy()}
}

// Photo implements periodic.ImageStore.
func (s *TextureSet) Photo(name string) (periodic.Texture, bool) {
	t, ok := s.photos[name]
	return t, ok && t.ID != 0
}

// BohrModel implements periodic.ImageStore.
func (s *TextureSet) BohrModel(number int) (periodic.Texture, bool) {
	t, ok := s.bohr[number]
	return t, ok && t.ID != 0
}

// Len returns the number of uploaded textures.
func (s *TextureSet) Len() int {
	return len(s.photos) + len(s.bohr)
}

// Release deletes all textures and empties the set.
func (s *TextureSet) Release(d TextureDeleter) {
	for _, t := range s.photos {
		d.DeleteTexture(t.ID)
	}
	for _, t := range s.bohr {
		d.DeleteTexture(t.ID)
	}
	clear(s.photos)
	clear(s.bohr)
}
