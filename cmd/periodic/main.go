// Command periodic opens an interactive periodic table window.
//
// Prerequisites:
//
//	devbox shell              # Go plus OpenGL/X11 headers
//	go run ./cmd/periodic --data data/elements.json --images data/images
//
// Type letters to search, click a cell to select it, Ctrl+scroll to zoom,
// numpad 1 to freeze and ` to show the debug corner.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/periodic"
	"github.com/go-theft-auto/periodic/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, rootCmd(),
		fang.WithVersion("v0.1.0"),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

// addConfigFlags registers the flags shared by the window and snapshot
// commands.
func addConfigFlags(cmd *cobra.Command, flags *Config, configPath *string) {
	def := defaultConfig()
	cmd.PersistentFlags().StringVar(configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/"+configFile+")")
	cmd.PersistentFlags().StringVar(&flags.Data, "data", def.Data, "Element dataset (JSON)")
	cmd.PersistentFlags().StringVar(&flags.Images, "images", def.Images, "Directory with photos/ and bohr/ subdirectories")
	cmd.PersistentFlags().StringVar(&flags.Font, "font", def.Font, "TrueType font (default: embedded Go Mono)")
	cmd.PersistentFlags().Float32Var(&flags.ElementSize, "element-size", def.ElementSize, "Cell size in pixels")
	cmd.PersistentFlags().Uint64Var(&flags.FrameBudget, "frame-budget", def.FrameBudget, "Stop after this many frames, 0 to run forever")
	cmd.PersistentFlags().IntVar(&flags.FPS, "fps", def.FPS, "Frame rate cap, 0 for vsync only")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", def.Debug, "Show the debug corner")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", def.Verbose, "Enable debug logging")
}

// resolveConfig loads the config file and applies the flags set on cmd.
func resolveConfig(cmd *cobra.Command, flags Config, configPath string) (Config, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	cfg.merge(flags, func(name string) bool { return cmd.Flags().Changed(name) })
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	setupLogging(cfg.Verbose)
	return cfg, nil
}

func rootCmd() *cobra.Command {
	var (
		flags      Config
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "periodic",
		Short: "Interactive periodic table",
		Long: `periodic draws the periodic table with a detail panel for the selected
element: properties, ionization energies, photo, Bohr model and Lewis dots.`,
		Example: `  # Run with the default data directory
  periodic

  # Bigger cells and the debug corner
  periodic --element-size 100 --debug

  # Write a snapshot of Carbon
  periodic snapshot -o carbon.png --search carbon`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags, configPath)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	addConfigFlags(cmd, &flags, &configPath)
	cmd.AddCommand(snapshotCmd(&flags, &configPath))
	return cmd
}

func run(ctx context.Context, cfg Config) error {
	s, err := openSession(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer s.Close()

	input := opengl.NewGLFWInputAdapter(s.window)

	opts := append(s.tableOptions(cfg),
		periodic.WithClipboard(opengl.NewClipboard(s.window)),
		periodic.WithStatusHandler(func(status string) {
			s.window.SetTitle(windowTitle + " - " + status)
		}),
	)
	table := periodic.New(s.renderer, s.data, opts...)

	s.window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		table.Resize(w, h)
	})

	var frameTime time.Duration
	if cfg.FPS > 0 {
		frameTime = time.Second / time.Duration(cfg.FPS)
	}

	last := time.Now()
	for !s.window.ShouldClose() {
		if ctx.Err() != nil {
			return nil
		}

		if table.Stopped() {
			// Nothing animates while stopped; sleep until input arrives.
			glfw.WaitEventsTimeout(0.25)
		} else {
			glfw.PollEvents()
		}

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		in := input.Update(dt)

		w, h := s.window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		rendered, err := table.Frame(in, periodic.Vec2{X: float32(w), Y: float32(h)}, dt)
		input.EndFrame()
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if !rendered {
			continue
		}
		s.window.SwapBuffers()

		if frameTime > 0 {
			if spent := time.Since(now); spent < frameTime {
				time.Sleep(frameTime - spent)
			}
		}
	}

	slog.Info("window closed", "clock", table.Clock().Round(time.Millisecond))
	return nil
}
