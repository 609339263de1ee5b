package test

import (
	"strings"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/idursun/ganache/internal/config"
	"github.com/idursun/ganache/internal/ui/layout"
	"github.com/idursun/ganache/internal/ui/render"
	"github.com/idursun/ganache/internal/ui/widgets"
	"github.com/stretchr/testify/require"
)

// NewTheme returns the embedded default theme with the default key bindings.
func NewTheme(t *testing.T) *widgets.Theme {
	t.Helper()
	colors, err := config.LoadEmbeddedTheme("dark")
	require.NoError(t, err)
	return widgets.NewTheme(colors, widgets.NewResources(config.Current))
}

// RenderGui lays out g for a width x height terminal, draws it and returns
// the screen without escape sequences or trailing spaces.
func RenderGui(g *widgets.Gui, th *widgets.Theme, width, height int) string {
	g.Slots().SetSize(g.RootSlotID(), layout.NewDimensions(layout.Scalar(width), layout.Scalar(height)))
	g.LayoutIfNeeded(th)
	dc := render.NewDisplayContext()
	dc.AddCommands(g.Draw(th, widgets.DrawContext{}))
	buf := uv.NewScreenBuffer(width, height)
	dc.Render(buf)
	lines := strings.Split(strings.ReplaceAll(ansi.Strip(buf.Render()), "\r", ""), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
