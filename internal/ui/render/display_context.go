package render

import (
	"cmp"
	"slices"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/idursun/ganache/internal/ui/layout"
)

// DisplayContext collects the draws and effects of a frame and renders them
// layer by layer. Within a layer, operations run in the order they were added.
type DisplayContext struct {
	ops []op
}

type op struct {
	order  int
	draw   *Draw
	effect Effect
}

func (o op) z() int {
	if o.draw != nil {
		return o.draw.Z
	}
	return o.effect.GetZ()
}

func NewDisplayContext() *DisplayContext {
	return &DisplayContext{ops: make([]op, 0, 32)}
}

func (dc *DisplayContext) add(o op) {
	o.order = len(dc.ops)
	dc.ops = append(dc.ops, o)
}

// AddDraw adds pre-rendered content.
func (dc *DisplayContext) AddDraw(rect layout.Rectangle, content string, z int) {
	dc.add(op{draw: &Draw{Rect: rect, Content: content, Z: z}})
}

// AddEffect adds a post-processing effect.
func (dc *DisplayContext) AddEffect(effect Effect) {
	dc.add(op{effect: effect})
}

// AddCommands adds the output of a gui draw pass.
func (dc *DisplayContext) AddCommands(commands []Command) {
	for _, c := range commands {
		switch {
		case c.Draw != nil:
			d := *c.Draw
			dc.add(op{draw: &d})
		case c.Effect != nil:
			dc.add(op{effect: c.Effect})
		}
	}
}

// AddFill paints every cell of rect with ch in the given style.
func (dc *DisplayContext) AddFill(rect layout.Rectangle, ch rune, style lipgloss.Style, z int) {
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}
	dc.AddCommands([]Command{FillCommand(rect, ch, style, z)})
}

func (dc *DisplayContext) AddReverse(rect layout.Rectangle, z int) {
	dc.AddEffect(ReverseEffect{Rect: rect, Z: z})
}

func (dc *DisplayContext) AddDim(rect layout.Rectangle, z int) {
	dc.AddEffect(DimEffect{Rect: rect, Z: z})
}

func (dc *DisplayContext) AddBold(rect layout.Rectangle, z int) {
	dc.AddEffect(BoldEffect{Rect: rect, Z: z})
}

func (dc *DisplayContext) AddUnderline(rect layout.Rectangle, z int) {
	dc.AddEffect(UnderlineEffect{Rect: rect, Z: z})
}

// AddHighlight sets the background of cells that have none.
func (dc *DisplayContext) AddHighlight(rect layout.Rectangle, style lipgloss.Style, z int) {
	dc.AddEffect(HighlightEffect{Rect: rect, Style: style, Z: z})
}

// Clear drops all operations so the context can be reused for the next frame.
func (dc *DisplayContext) Clear() {
	dc.ops = dc.ops[:0]
}

func (dc *DisplayContext) Len() int {
	return len(dc.ops)
}

// Render runs all operations against buf, lowest layer first.
func (dc *DisplayContext) Render(buf uv.Screen) {
	ops := slices.Clone(dc.ops)
	slices.SortStableFunc(ops, func(a, b op) int {
		if c := cmp.Compare(a.z(), b.z()); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})
	for _, o := range ops {
		if o.draw != nil {
			uv.NewStyledString(o.draw.Content).Draw(buf, o.draw.Rect)
			continue
		}
		o.effect.Apply(buf)
	}
}

// RenderToString renders into a fresh width x height buffer.
func (dc *DisplayContext) RenderToString(width, height int) string {
	buf := uv.NewScreenBuffer(width, height)
	dc.Render(buf)
	return buf.Render()
}

// DrawList returns the draws in insertion order.
func (dc *DisplayContext) DrawList() []Draw {
	var draws []Draw
	for _, o := range dc.ops {
		if o.draw != nil {
			draws = append(draws, *o.draw)
		}
	}
	return draws
}

// EffectsList returns the effects in insertion order.
func (dc *DisplayContext) EffectsList() []Effect {
	var effects []Effect
	for _, o := range dc.ops {
		if o.effect != nil {
			effects = append(effects, o.effect)
		}
	}
	return effects
}
