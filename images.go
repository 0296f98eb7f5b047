package periodic

// Texture is an uploaded image.
type Texture struct {
	ID            uint32
	Width, Height int
}

// ImageStore resolves the two illustrations shown for an element.
// Lookups report false when the image is missing or failed to load;
// the table then draws a placeholder.
type ImageStore interface {
	// Photo returns the illustrative photo for the element name.
	Photo(name string) (Texture, bool)

	// BohrModel returns the pre-rendered Bohr model image for an atomic number.
	BohrModel(number int) (Texture, bool)
}

type noImages struct{}

func (noImages) Photo(string) (Texture, bool)  { return Texture{}, false }
func (noImages) BohrModel(int) (Texture, bool) { return Texture{}, false }
