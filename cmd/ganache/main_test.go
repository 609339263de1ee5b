package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/idursun/ganache/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfig_MissingUserConfigUsesDefaults(t *testing.T) {
	t.Setenv("GANACHE_CONFIG_DIR", t.TempDir())

	c, warnings, err := loadConfig("")
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, *config.Current, *c)
	assert.NotSame(t, config.Current, c)
}

func TestLoadConfig_UserConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GANACHE_CONFIG_DIR", dir)
	writeFile(t, filepath.Join(dir, "config.toml"), "[ui]\npadding = 3\n")

	c, _, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 3, c.UI.Padding)
	assert.Equal(t, 1, config.Current.UI.Padding, "defaults are not modified")
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, `
[ui]
theme = "light"
columns = 2

[keys]
quit = "x"
`)

	c, warnings, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "light", c.UI.Theme)
	assert.Equal(t, config.StringList{"x"}, c.Keys.Quit)
	assert.Equal(t, []string{`unknown config key "ui.columns"`}, warnings)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, fs.ErrNotExist, "an explicit file must exist")

	path := filepath.Join(t.TempDir(), "invalid.toml")
	writeFile(t, path, "[ui]\npadding = -1\n")
	_, _, err = loadConfig(path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadColors(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GANACHE_CONFIG_DIR", dir)
	writeFile(t, filepath.Join(dir, "themes", "mine.toml"), "[label]\ntext = \"cyan\"\n")
	dark, err := config.LoadEmbeddedTheme("dark")
	require.NoError(t, err)

	tests := []struct {
		theme    string
		expected config.Color
	}{
		{"", dark["label"]["text"]},
		{"dark", dark["label"]["text"]},
		{"light", config.Color{Fg: "black"}},
		{"mine", config.Color{Fg: "cyan"}},
	}
	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			c := *config.Current
			c.UI.Theme = tt.theme
			colors, err := loadColors(&c)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, colors["label"]["text"])
			assert.Len(t, colors, len(dark))
		})
	}
}

func TestLoadColors_UserThemeFallsBackToDark(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GANACHE_CONFIG_DIR", dir)
	writeFile(t, filepath.Join(dir, "themes", "mine.toml"), "[label]\ntext = \"cyan\"\n")
	dark, err := config.LoadEmbeddedTheme("dark")
	require.NoError(t, err)

	c := *config.Current
	c.UI.Theme = "mine"
	colors, err := loadColors(&c)
	require.NoError(t, err)
	assert.Equal(t, dark["jump"], colors["jump"])
	assert.Equal(t, dark["button"], colors["button"])
}

func TestLoadColors_Overrides(t *testing.T) {
	c := *config.Current
	c.UI.Colors = config.Theme{"button": {"text": {Fg: "red"}}}

	colors, err := loadColors(&c)
	require.NoError(t, err)
	assert.Equal(t, config.Color{Fg: "red"}, colors["button"]["text"])
	assert.Contains(t, colors["button"], "focused")
}

func TestLoadColors_MissingTheme(t *testing.T) {
	t.Setenv("GANACHE_CONFIG_DIR", t.TempDir())
	c := *config.Current
	c.UI.Theme = "nope"

	_, err := loadColors(&c)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRun_Help(t *testing.T) {
	err := run([]string{"-h"})
	assert.ErrorContains(t, err, "help requested")
}
