package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/periodic"
	"github.com/go-theft-auto/periodic/asset"
	"github.com/go-theft-auto/periodic/backend/opengl"
	"github.com/go-theft-auto/periodic/element"
)

const windowTitle = "Periodic Table"

// session owns the window, GL resources and assets of one run.
type session struct {
	window   *glfw.Window
	renderer *opengl.Renderer
	data     *element.Dataset
	textures *asset.TextureSet
	fonts    *asset.FontSet
	fontTex  uint32
}

// openSession loads the dataset, decodes images in the background while
// the window and GL context come up, then uploads everything.
func openSession(ctx context.Context, cfg Config, visible bool) (*session, error) {
	data, err := element.LoadFile(cfg.Data)
	if err != nil {
		return nil, err
	}
	slog.Info("dataset loaded", "file", cfg.Data, "elements", data.Len())

	type decoded struct {
		imgs *asset.Images
		err  error
	}
	imagesDone := make(chan decoded, 1)
	go func() {
		loader := &asset.Loader{Dir: cfg.Images, Size: imageSize}
		imgs, err := loader.Load(ctx, data)
		imagesDone <- decoded{imgs, err}
	}()

	st := periodic.DefaultStyle()
	st.ElementSize = cfg.ElementSize
	canvas := st.CanvasSize()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if !visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(int(canvas.X), int(canvas.Y), windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w, h := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(w, h)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	s := &session{window: window, renderer: renderer, data: data}

	atlas, err := asset.LoadFontAtlas(cfg.Font, asset.DefaultFontSize)
	if err != nil {
		slog.Warn("font unavailable, using bitmap font", "font", cfg.Font, "err", err)
	} else {
		s.fontTex = renderer.UploadAlphaTexture(atlas.Image())
		atlas.SetTextureID(s.fontTex)
		s.fonts = asset.SingleFont(atlas)
	}

	res := <-imagesDone
	if res.err != nil {
		s.Close()
		return nil, res.err
	}
	s.textures = asset.Upload(renderer, res.imgs)
	slog.Debug("textures uploaded", "count", s.textures.Len())

	return s, nil
}

// imageSize is the texture edge for an illustration, which is drawn two
// cells wide at up to the largest zoom.
const imageSize = int(2 * periodic.MaxElementSize)

// tableOptions returns the options every table of this session shares.
func (s *session) tableOptions(cfg Config) []periodic.TableOption {
	opts := []periodic.TableOption{
		periodic.WithElementSize(cfg.ElementSize),
		periodic.WithFrameBudget(cfg.FrameBudget),
		periodic.WithDebug(cfg.Debug),
		periodic.WithImageStore(s.textures),
	}
	if s.fonts != nil {
		opts = append(opts, periodic.WithFontProvider(s.fonts))
	}
	return opts
}

// Close releases GL resources and terminates GLFW.
func (s *session) Close() {
	if s.textures != nil {
		s.textures.Release(s.renderer)
	}
	if s.fontTex != 0 {
		s.renderer.DeleteTexture(s.fontTex)
	}
	s.renderer.Delete()
	s.window.Destroy()
	glfw.Terminate()
}
