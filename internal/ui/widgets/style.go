package widgets

import (
	"image/color"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/idursun/ganache/internal/config"
	"github.com/idursun/ganache/internal/ui/theme"
)

// NewTheme builds the engine theme from configured colours. Every widget
// kind of this package is registered even when colours has no entry for it.
func NewTheme(colors config.Theme, resources Resources) *Theme {
	t := theme.New[Resources, lipgloss.Style](resources)
	for _, kind := range []string{KindPanel, KindLabel, KindButton, KindCheckbox, KindSplitPane} {
		t.SetWidgetStyle(kind, map[string]lipgloss.Style{})
	}
	for kind, fields := range colors {
		styles := make(map[string]lipgloss.Style, len(fields))
		for field, c := range fields {
			styles[field] = createStyleFrom(c)
		}
		t.SetWidgetStyle(kind, styles)
	}
	return t
}

func createStyleFrom(c config.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Fg != "" {
		style = style.Foreground(parseColor(c.Fg))
	}
	if c.Bg != "" {
		style = style.Background(parseColor(c.Bg))
	}
	if c.Bold != nil {
		style = style.Bold(*c.Bold)
	}
	if c.Italic != nil {
		style = style.Italic(*c.Italic)
	}
	if c.Underline != nil {
		style = style.Underline(*c.Underline)
	}
	if c.Strikethrough != nil {
		style = style.Strikethrough(*c.Strikethrough)
	}
	if c.Reverse != nil {
		style = style.Reverse(*c.Reverse)
	}
	return style
}

var namedColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright black":   "8",
	"bright red":     "9",
	"bright green":   "10",
	"bright yellow":  "11",
	"bright blue":    "12",
	"bright magenta": "13",
	"bright cyan":    "14",
	"bright white":   "15",
}

// parseColor accepts "#rrggbb", an ANSI256 index, "ansi-color-N" or one of
// the sixteen named colours.
func parseColor(c string) color.Color {
	if len(c) == 7 && c[0] == '#' {
		return lipgloss.Color(c)
	}
	if code, ok := namedColors[c]; ok {
		return lipgloss.Color(code)
	}
	code := strings.TrimPrefix(c, "ansi-color-")
	if v, err := strconv.Atoi(code); err == nil && v >= 0 && v <= 255 {
		return lipgloss.Color(code)
	}
	return lipgloss.NoColor{}
}
