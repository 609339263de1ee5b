package gui

import "slices"

type FocusDirection int

const (
	FocusNext FocusDirection = iota
	FocusPrevious
)

// Focused returns the focused slot, if any.
func (g *Gui[R, S, D, X, E]) Focused() (SlotID, bool) {
	return g.focused, g.hasFocus
}

func (g *Gui[R, S, D, X, E]) IsFocused(id SlotID) bool {
	return g.hasFocus && g.focused == id
}

// SetFocus focuses id if its widget takes focus and neither it nor any of
// its ancestors is hidden. It reports whether it did.
func (g *Gui[R, S, D, X, E]) SetFocus(id SlotID) bool {
	if !g.canFocus(id) || !g.shown(id) {
		return false
	}
	g.focused = id
	g.hasFocus = true
	return true
}

func (g *Gui[R, S, D, X, E]) ClearFocus() {
	g.focused = 0
	g.hasFocus = false
}

// CycleFocus moves focus to the next or previous focus-capable visible slot
// in document order. When nothing follows the focused slot, nothing is
// focused, or the focused slot has since been hidden, the whole tree is
// scanned from the root.
func (g *Gui[R, S, D, X, E]) CycleFocus(direction FocusDirection) {
	if g.hasFocus && g.shown(g.focused) {
		var (
			id SlotID
			ok bool
		)
		if direction == FocusNext {
			id, ok = g.focusAfter(g.focused)
		} else {
			id, ok = g.focusBefore(g.focused)
		}
		if ok {
			g.focused = id
			return
		}
	}

	var (
		id SlotID
		ok bool
	)
	if direction == FocusNext {
		id, ok = g.firstFocusable(g.slots.Root())
	} else {
		id, ok = g.lastFocusable(g.slots.Root())
	}
	if ok {
		g.focused = id
		g.hasFocus = true
	}
}

func (g *Gui[R, S, D, X, E]) focusAfter(current SlotID) (SlotID, bool) {
	for _, childID := range g.slots.Get(current).children {
		if id, ok := g.firstFocusable(childID); ok {
			return id, true
		}
	}
	for {
		parentID, ok := g.slots.Get(current).Parent()
		if !ok {
			return 0, false
		}
		siblings := g.slots.Get(parentID).children
		index := slices.Index(siblings, current)
		for _, siblingID := range siblings[index+1:] {
			if id, ok := g.firstFocusable(siblingID); ok {
				return id, true
			}
		}
		current = parentID
	}
}

func (g *Gui[R, S, D, X, E]) focusBefore(current SlotID) (SlotID, bool) {
	for {
		parentID, ok := g.slots.Get(current).Parent()
		if !ok {
			return 0, false
		}
		siblings := g.slots.Get(parentID).children
		index := slices.Index(siblings, current)
		for _, siblingID := range slices.Backward(siblings[:index]) {
			if id, ok := g.lastFocusable(siblingID); ok {
				return id, true
			}
		}
		if g.canFocus(parentID) && !g.slots.Get(parentID).Info.Hidden {
			return parentID, true
		}
		current = parentID
	}
}

// firstFocusable searches the subtree at id in document order.
func (g *Gui[R, S, D, X, E]) firstFocusable(id SlotID) (SlotID, bool) {
	slot := g.slots.Get(id)
	if slot.Info.Hidden {
		return 0, false
	}
	if g.canFocus(id) {
		return id, true
	}
	for _, childID := range slot.children {
		if found, ok := g.firstFocusable(childID); ok {
			return found, true
		}
	}
	return 0, false
}

// lastFocusable searches the subtree at id in reverse document order.
func (g *Gui[R, S, D, X, E]) lastFocusable(id SlotID) (SlotID, bool) {
	slot := g.slots.Get(id)
	if slot.Info.Hidden {
		return 0, false
	}
	for _, childID := range slices.Backward(slot.children) {
		if found, ok := g.lastFocusable(childID); ok {
			return found, true
		}
	}
	if g.canFocus(id) {
		return id, true
	}
	return 0, false
}

// shown reports whether id and all of its ancestors are visible.
func (g *Gui[R, S, D, X, E]) shown(id SlotID) bool {
	for {
		slot := g.slots.Get(id)
		if slot.Info.Hidden {
			return false
		}
		parent, ok := slot.Parent()
		if !ok {
			return true
		}
		id = parent
	}
}

func (g *Gui[R, S, D, X, E]) canFocus(id SlotID) bool {
	widgetID, ok := g.slots.Get(id).WidgetID()
	return ok && g.widget(widgetID).TakesFocus()
}
