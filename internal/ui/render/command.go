package render

import (
	"charm.land/lipgloss/v2"
	"github.com/idursun/ganache/internal/ui/layout"
)

// Draw writes pre-styled content into a rectangle of the screen.
type Draw struct {
	Rect    layout.Rectangle
	Content string // ANSI string, usually from lipgloss
	Z       int
}

// Command is one entry of the list widgets produce while drawing: exactly
// one of Draw and Effect is set.
type Command struct {
	Draw   *Draw
	Effect Effect
}

func DrawCommand(rect layout.Rectangle, content string, z int) Command {
	return Command{Draw: &Draw{Rect: rect, Content: content, Z: z}}
}

func EffectCommand(effect Effect) Command {
	return Command{Effect: effect}
}

// FillCommand paints every cell of rect with ch in the given style.
func FillCommand(rect layout.Rectangle, ch rune, style lipgloss.Style, z int) Command {
	return EffectCommand(FillEffect{Rect: rect, Char: ch, Style: lipglossToStyle(style), Z: z})
}

// Z returns the layer of the command.
func (c Command) Z() int {
	if c.Draw != nil {
		return c.Draw.Z
	}
	if c.Effect != nil {
		return c.Effect.GetZ()
	}
	return 0
}
