package gui

import (
	"slices"

	"github.com/idursun/ganache/internal/ui/layout"
	"github.com/idursun/ganache/internal/ui/theme"
)

// ProcessEvent dispatches event through the tree and returns the signals
// emitted on the way, tagged with their slots. Later children see the event
// before earlier ones and every child sees it before its parent.
func (g *Gui[R, S, D, X, E]) ProcessEvent(th *theme.Theme[R, S], event E) []SlotSignal {
	var signals []SlotSignal
	g.dispatch(th, g.slots.Root(), event, &signals)
	if event.Dirty() {
		g.dirty = true
	}
	return signals
}

func (g *Gui[R, S, D, X, E]) dispatch(th *theme.Theme[R, S], id SlotID, event E, signals *[]SlotSignal) {
	slot := g.slots.Get(id)
	if slot.Info.Hidden {
		return
	}
	x, y := slot.Bounds.X, slot.Bounds.Y
	event.OffsetCoordinates(-x, -y)

	// widgets may append slots while handling the event
	for _, childID := range slices.Backward(slices.Clone(slot.children)) {
		g.dispatch(th, childID, event, signals)
	}

	if widgetID, ok := slot.WidgetID(); ok {
		w := g.widget(widgetID)
		result := w.ProcessEvent(ProcessEventArgs[R, S, E]{
			SlotID:    id,
			Bounds:    layout.Bounds{Size: slot.Bounds.Size},
			Focused:   g.IsFocused(id),
			Event:     event,
			Resources: th.Resources,
			Style:     g.slotStyle(th, id, w.Kind()),
			Slots:     g.slots,
		})
		for _, signal := range result.Signals {
			*signals = append(*signals, SlotSignal{SlotID: id, Signal: signal})
		}
		if result.RequestFocus && w.TakesFocus() {
			g.focused = id
			g.hasFocus = true
		}
	}

	event.OffsetCoordinates(x, y)
}
