package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/periodic"
)

// snapshotFrames is how many frames are drawn before reading pixels; the
// first frame after context creation can come out blank on some drivers.
const snapshotFrames = 2

type snapshotOptions struct {
	output   string
	selected int
	search   string
	elapsed  time.Duration
	hints    bool
}

func snapshotCmd(flags *Config, configPath *string) *cobra.Command {
	var opts snapshotOptions

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame offscreen and save it as PNG or JPEG",
		Example: `  periodic snapshot -o table.jpg --select 26
  periodic snapshot -o tin.png --search tin --elapsed 2s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, *flags, *configPath)
			if err != nil {
				return err
			}
			s, err := openSession(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer s.Close()

			img, err := capture(s, cfg, opts)
			if err != nil {
				return err
			}
			if err := writeImage(opts.output, img); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%dx%d)\n", opts.output, img.Bounds().Dx(), img.Bounds().Dy())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "periodic.jpg", "Output file; .png writes PNG, anything else JPEG")
	cmd.Flags().IntVar(&opts.selected, "select", 1, "Atomic number to select")
	cmd.Flags().StringVar(&opts.search, "search", "", "Text typed into the search box")
	cmd.Flags().DurationVar(&opts.elapsed, "elapsed", 0, "Animation clock at capture time")
	cmd.Flags().BoolVar(&opts.hints, "hints", false, "Draw the key hint footer")
	return cmd
}

// capture draws a fresh table at the configured canvas size and reads it back.
func capture(s *session, cfg Config, opts snapshotOptions) (*image.RGBA, error) {
	st := periodic.DefaultStyle()
	st.ElementSize = cfg.ElementSize
	canvas := st.CanvasSize()
	w, h := int(canvas.X), int(canvas.Y)

	// Only the projection changes; resizing the hidden window is applied
	// asynchronously and would leave the scissor and framebuffer out of step.
	s.renderer.Resize(w, h)

	tableOpts := append(s.tableOptions(cfg),
		periodic.WithSelected(opts.selected),
		periodic.WithSearch(opts.search),
		periodic.WithClock(opts.elapsed),
		periodic.WithHints(opts.hints),
	)
	table := periodic.New(s.renderer, s.data, tableOpts...)

	for i := 0; i < snapshotFrames; i++ {
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := table.Begin(periodic.Vec2{X: float32(w), Y: float32(h)}, 0)
		table.Draw(ctx)
		if err := table.End(); err != nil {
			return nil, fmt.Errorf("render snapshot: %w", err)
		}
	}

	return s.renderer.ReadPixels(), nil
}

func writeImage(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(path), ".png") {
		err = png.Encode(f, img)
	} else {
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
