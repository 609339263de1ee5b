package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults(t *testing.T) *Config {
	t.Helper()
	data, err := configFS.ReadFile("default/config.toml")
	require.NoError(t, err)
	c := &Config{}
	_, err = c.Load(string(data))
	require.NoError(t, err)
	return c
}

func TestDefaultConfig(t *testing.T) {
	c := defaults(t)

	assert.Equal(t, "dark", c.UI.Theme)
	assert.Equal(t, 1, c.UI.Padding)
	assert.Equal(t, 40.0, c.UI.SplitPercent)
	assert.Equal(t, StringList{"tab", "down"}, c.Keys.Next)
	assert.Equal(t, StringList{"/"}, c.Keys.Jump)
	assert.Equal(t, c, Current)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	c := defaults(t)

	unknown, err := c.Load(`
[ui]
theme = "light"
spacing = 3

[keys]
quit = "x"
`)
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.Equal(t, "light", c.UI.Theme)
	assert.Equal(t, 3, c.UI.Spacing)
	assert.Equal(t, 1, c.UI.Padding, "keys missing from the overlay are kept")
	assert.Equal(t, StringList{"x"}, c.Keys.Quit)
	assert.Equal(t, StringList{"enter", "space"}, c.Keys.Activate)
}

func TestLoad_UnknownKeys(t *testing.T) {
	c := defaults(t)

	unknown, err := c.Load(`
refresh = 3

[ui]
padding = 2
columns = 4
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"refresh", "ui.columns"}, unknown)
}

func TestLoad_Colors_StringAndObject(t *testing.T) {
	c := defaults(t)

	_, err := c.Load(`
[ui.colors.button]
text = "red"
focused = { fg = "blue", bg = "white", bold = true, underline = false }
`)
	require.NoError(t, err)

	button := c.UI.Colors["button"]
	require.Len(t, button, 2)
	assert.Equal(t, Color{Fg: "red"}, button["text"])

	focused := button["focused"]
	assert.Equal(t, "blue", focused.Fg)
	assert.Equal(t, "white", focused.Bg)
	if assert.NotNil(t, focused.Bold) {
		assert.True(t, *focused.Bold)
	}
	if assert.NotNil(t, focused.Underline, "explicit false is kept") {
		assert.False(t, *focused.Underline)
	}
	assert.Nil(t, focused.Italic)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{name: "syntax", content: `[ui`},
		{name: "wrong colour type", content: `[ui.colors.label]
text = 4`},
		{name: "unknown colour attribute", content: `[ui.colors.label]
text = { blink = true }`},
		{name: "wrong key list", content: `[keys]
next = [1, 2]`},
		{name: "negative padding", content: `[ui]
padding = -1`, invalid: true},
		{name: "split out of range", content: `[ui]
split_percent = 120`, invalid: true},
		{name: "empty binding", content: `[keys]
quit = []`, invalid: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := defaults(t)
			_, err := c.Load(tc.content)
			require.Error(t, err)
			assert.Equal(t, tc.invalid, errors.Is(err, ErrInvalidConfig))
		})
	}
}
