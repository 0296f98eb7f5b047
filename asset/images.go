// Package asset loads the files the table shows next to the dataset:
// element photos, Bohr model images and TrueType fonts.
//
// Everything here produces CPU-side images. Uploading them is left to the
// caller, which must do it on the thread that owns the GL context.
package asset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/go-theft-auto/periodic"
	"github.com/go-theft-auto/periodic/element"
)

// ErrUnsupportedFormat is returned for data that is not a decodable image.
var ErrUnsupportedFormat = errors.New("asset: unsupported image format")

// Photos of these elements ship as PNG; every other photo is a JPEG.
var pngPhotos = map[string]bool{
	"Actinium":     true,
	"Bohrium":      true,
	"Carbon":       true,
	"Copernicium":  true,
	"Darmstadtium": true,
	"Dubnium":      true,
	"Flerovium":    true,
	"Hassium":      true,
	"Livermorium":  true,
	"Meitnerium":   true,
	"Moscovium":    true,
	"Nihonium":     true,
	"Oganesson":    true,
	"Promethium":   true,
	"Roentgenium":  true,
	"Seaborgium":   true,
	"Tennessine":   true,
}

// PhotoFileName returns the file name of an element's photo.
func PhotoFileName(name string) string {
	if pngPhotos[name] {
		return name + ".png"
	}
	return name + ".jpg"
}

// BohrFileName returns the local file name for a Bohr model image URL,
// which is its last path segment. Empty URLs map to "".
func BohrFileName(url string) string {
	if url == "" {
		return ""
	}
	base := path.Base(url)
	if base == "." || base == "/" {
		return ""
	}
	return base
}

// DecodeImage sniffs the image format from its content and decodes it.
// File extensions are not trusted; several photos are mislabeled.
func DecodeImage(data []byte) (image.Image, error) {
	kind, err := filetype.Image(data)
	if err != nil || kind == filetype.Unknown {
		return nil, ErrUnsupportedFormat
	}

	r := bytes.NewReader(data)
	var img image.Image
	switch kind.Extension {
	case "png":
		img, err = png.Decode(r)
	case "jpg":
		img, err = jpeg.Decode(r)
	case "webp":
		img, err = webp.Decode(r)
	case "gif":
		img, err = gif.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind.MIME.Value)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind.Extension, err)
	}
	return img, nil
}

// Fit returns img as RGBA scaled to size x size pixels. The table draws
// both illustrations into squares, so the aspect ratio is not kept.
// size <= 0 keeps the original dimensions.
func Fit(img image.Image, size int) *image.RGBA {
	if size > 0 {
		return transform.Resize(img, size, size, transform.Linear)
	}
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Images holds the decoded illustrations, keyed like periodic.ImageStore.
type Images struct {
	Photos map[string]*image.RGBA
	Bohr   map[int]*image.RGBA
}

// Loader reads element photos from Dir/photos and Bohr model images from
// Dir/bohr.
type Loader struct {
	Dir string

	// Size is the edge length images are scaled to. Zero keeps them as is.
	Size int

	// Limit bounds concurrent decodes. Zero means runtime.NumCPU().
	Limit int

	Logger *slog.Logger
}

// Load decodes the images of every element in data. Missing or broken
// files are logged and skipped so the table shows a placeholder; only
// cancellation of ctx fails the load.
func (l *Loader) Load(ctx context.Context, data *element.Dataset) (*Images, error) {
	log := l.Logger
	if log == nil {
		log = periodic.Logger()
	}
	limit := l.Limit
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	n := data.Len()
	if n == 0 {
		return &Images{Photos: map[string]*image.RGBA{}, Bohr: map[int]*image.RGBA{}}, nil
	}
	photos := make([]*image.RGBA, n)
	bohr := make([]*image.RGBA, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := 0; i < n; i++ {
		e := data.Elements[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			photo := filepath.Join(l.Dir, "photos", PhotoFileName(e.Name))
			if img, err := l.loadFile(photo); err != nil {
				log.Warn("photo unavailable", "element", e.Name, "err", err)
			} else {
				photos[i] = img
			}

			name := BohrFileName(e.BohrModelImage)
			if name == "" {
				log.Debug("no bohr model image", "element", e.Name)
				return nil
			}
			if img, err := l.loadFile(filepath.Join(l.Dir, "bohr", name)); err != nil {
				log.Warn("bohr model image unavailable", "element", e.Name, "err", err)
			} else {
				bohr[i] = img
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load images: %w", err)
	}

	out := &Images{
		Photos: make(map[string]*image.RGBA, n),
		Bohr:   make(map[int]*image.RGBA, n),
	}
	for i, e := range data.Elements {
		if photos[i] != nil {
			out.Photos[e.Name] = photos[i]
		}
		if bohr[i] != nil {
			out.Bohr[e.Number] = bohr[i]
		}
	}
	log.Info("images loaded", "photos", len(out.Photos), "bohr", len(out.Bohr), "elements", n)
	return out, nil
}

func (l *Loader) loadFile(name string) (*image.RGBA, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	img, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(name), err)
	}
	return Fit(img, l.Size), nil
}
