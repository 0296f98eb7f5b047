package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/periodic"
)

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, `
data = "/srv/elements.json"
element_size = 100
frame_budget = 0
debug = true
colour = "blue"
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/elements.json", cfg.Data)
	assert.Equal(t, float32(100), cfg.ElementSize)
	assert.Zero(t, cfg.FrameBudget)
	assert.True(t, cfg.Debug)
	assert.Equal(t, defaultConfig().Images, cfg.Images, "unset keys keep defaults")
	assert.Equal(t, 60, cfg.FPS)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	writeConfig(t, bad, "data = [unterminated")
	_, err = loadConfig(bad)
	assert.Error(t, err)
}

func TestLoadConfigSearchesXDG(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg, "no file found means defaults")

	writeConfig(t, filepath.Join(home, "periodic", "config.toml"), `fps = 30`)
	cfg, err = loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
}

func TestMergeOnlyChangedFlags(t *testing.T) {
	cfg := defaultConfig()
	cfg.Data = "from-file.json"
	cfg.FPS = 30

	flags := Config{Data: "flag.json", FPS: 120, ElementSize: 60, Debug: true}
	changed := map[string]bool{"fps": true, "element-size": true}
	cfg.merge(flags, func(name string) bool { return changed[name] })

	assert.Equal(t, "from-file.json", cfg.Data)
	assert.Equal(t, 120, cfg.FPS)
	assert.Equal(t, float32(60), cfg.ElementSize)
	assert.False(t, cfg.Debug)
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.validate())

	cfg.ElementSize = periodic.MaxElementSize + 1
	assert.Error(t, cfg.validate())

	cfg = defaultConfig()
	cfg.Data = ""
	assert.Error(t, cfg.validate())

	cfg = defaultConfig()
	cfg.FPS = -5
	require.NoError(t, cfg.validate())
	assert.Zero(t, cfg.FPS)
}
