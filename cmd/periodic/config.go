package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/go-theft-auto/periodic"
)

// configFile is looked up in the XDG config directories.
const configFile = "periodic/config.toml"

// Config holds the application configuration. Values come from the config
// file first; flags given on the command line override them.
type Config struct {
	Data        string  `toml:"data"`
	Images      string  `toml:"images"`
	Font        string  `toml:"font"`
	ElementSize float32 `toml:"element_size"`
	FrameBudget uint64  `toml:"frame_budget"`
	FPS         int     `toml:"fps"`
	Debug       bool    `toml:"debug"`
	Verbose     bool    `toml:"verbose"`
}

func defaultConfig() Config {
	return Config{
		Data:        "data/elements.json",
		Images:      "data/images",
		ElementSize: periodic.DefaultStyle().ElementSize,
		FrameBudget: periodic.DefaultFrameBudget,
		FPS:         60,
	}
}

// loadConfig reads the config file at path over the defaults. An empty
// path searches the XDG config directories, and a missing file there is
// not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		found, err := xdg.SearchConfigFile(configFile)
		if err != nil {
			return cfg, nil
		}
		path = found
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		slog.Warn("unknown config key", "file", path, "key", key.String())
	}
	return cfg, nil
}

// merge copies the fields whose flag was set on the command line from
// flags into cfg.
func (cfg *Config) merge(flags Config, changed func(name string) bool) {
	if changed("data") {
		cfg.Data = flags.Data
	}
	if changed("images") {
		cfg.Images = flags.Images
	}
	if changed("font") {
		cfg.Font = flags.Font
	}
	if changed("element-size") {
		cfg.ElementSize = flags.ElementSize
	}
	if changed("frame-budget") {
		cfg.FrameBudget = flags.FrameBudget
	}
	if changed("fps") {
		cfg.FPS = flags.FPS
	}
	if changed("debug") {
		cfg.Debug = flags.Debug
	}
	if changed("verbose") {
		cfg.Verbose = flags.Verbose
	}
}

// validate clamps values the table cannot use.
func (cfg *Config) validate() error {
	if cfg.Data == "" {
		return errors.New("no dataset given")
	}
	if cfg.ElementSize < periodic.MinElementSize || cfg.ElementSize > periodic.MaxElementSize {
		return fmt.Errorf("element size %.0f outside %.0f..%.0f",
			cfg.ElementSize, periodic.MinElementSize, periodic.MaxElementSize)
	}
	if cfg.FPS < 0 {
		cfg.FPS = 0
	}
	return nil
}

// setupLogging installs a tint handler for the table and the process.
// Colors are off when stderr is not a terminal.
func setupLogging(verbose bool) {
	periodic.SetVerbose(verbose)
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      periodic.LogLevel(),
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})
	logger := slog.New(handler)
	periodic.SetLogger(logger)
	slog.SetDefault(logger)
}
