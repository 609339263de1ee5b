package gui

import (
	"slices"

	"github.com/idursun/ganache/internal/ui/layout"
	"github.com/idursun/ganache/internal/ui/theme"
)

type drawEntry[X any] struct {
	slotID SlotID
	dx, dy layout.Scalar
	ctx    X
}

// Draw walks the visible tree in document order and collects the commands
// emitted by the widgets. Every branch starts from its parent's copy of ctx.
func (g *Gui[R, S, D, X, E]) Draw(th *theme.Theme[R, S], ctx X) []D {
	var commands []D
	stack := []drawEntry[X]{{slotID: g.slots.Root(), ctx: ctx}}
	for len(stack) > 0 {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		slot := g.slots.Get(entry.slotID)
		if slot.Info.Hidden {
			continue
		}
		bounds := slot.Bounds.Offset(entry.dx, entry.dy)
		if widgetID, ok := slot.WidgetID(); ok {
			w := g.widget(widgetID)
			w.Draw(DrawArgs[R, S, D, X]{
				SlotID:    entry.slotID,
				Bounds:    bounds,
				Focused:   g.IsFocused(entry.slotID),
				Resources: th.Resources,
				Style:     g.slotStyle(th, entry.slotID, w.Kind()),
				Slots:     g.slots,
				Context:   &entry.ctx,
				Commands:  &commands,
			})
		}
		for _, childID := range slices.Backward(slot.children) {
			stack = append(stack, drawEntry[X]{
				slotID: childID,
				dx:     bounds.X,
				dy:     bounds.Y,
				ctx:    entry.ctx,
			})
		}
	}
	return commands
}
