package gui

import (
	"fmt"
	"reflect"

	"github.com/idursun/ganache/internal/ui/layout"
	"github.com/idursun/ganache/internal/ui/theme"
)

// Gui owns a slot tree and every widget bound to it.
type Gui[R, S, D, X any, E InputEvent] struct {
	slots          *Slots
	widgets        []Widget[R, S, D, X, E]
	styleOverrides map[SlotID]map[string]S
	minimumSizes   map[SlotID]layout.Dimensions
	focused        SlotID
	hasFocus       bool
	dirty          bool
}

// New creates a tree holding only the root slot. The root covers its whole
// parent and uses size as its minimum-size hint; the host still sets the
// root's actual size through Slots().SetSize.
func New[R, S, D, X any, E InputEvent](size layout.Dimensions) *Gui[R, S, D, X, E] {
	root := &Slot{Info: FullSlotInfo()}
	root.Info.MinimumSize = size
	return &Gui[R, S, D, X, E]{
		slots:          newSlots(root),
		styleOverrides: make(map[SlotID]map[string]S),
		minimumSizes:   make(map[SlotID]layout.Dimensions),
		dirty:          true,
	}
}

func (g *Gui[R, S, D, X, E]) RootSlotID() SlotID {
	return g.slots.Root()
}

// Slots gives direct access to the slot arena.
func (g *Gui[R, S, D, X, E]) Slots() *Slots {
	return g.slots
}

// Dirty reports whether the next LayoutIfNeeded call will do any work.
func (g *Gui[R, S, D, X, E]) Dirty() bool {
	return g.dirty || g.slots.dirty
}

func (g *Gui[R, S, D, X, E]) MarkDirty() {
	g.dirty = true
}

// AddSlot appends a slot without a widget to parent.
func (g *Gui[R, S, D, X, E]) AddSlot(parent SlotID, info SlotInfo) SlotID {
	return g.slots.Add(parent, info)
}

// AddWidget binds w to a slot that has no widget yet. A widget belongs to
// exactly one slot; binding the same pointer twice panics.
func (g *Gui[R, S, D, X, E]) AddWidget(slotID SlotID, w Widget[R, S, D, X, E]) WidgetID {
	slot := g.slots.GetMut(slotID)
	if existing, ok := slot.WidgetID(); ok {
		panic(fmt.Sprintf("slot %d already has widget %d", slotID, existing))
	}
	if reflect.ValueOf(w).Kind() == reflect.Pointer {
		for id, bound := range g.widgets {
			if bound == w {
				panic(fmt.Sprintf("widget %d is already bound to another slot", id))
			}
		}
	}
	id := WidgetID(len(g.widgets))
	g.widgets = append(g.widgets, w)
	slot.widgetID = id
	slot.hasWidget = true
	g.dirty = true
	return id
}

// WidgetOf returns the widget bound to a slot.
func (g *Gui[R, S, D, X, E]) WidgetOf(slotID SlotID) (Widget[R, S, D, X, E], bool) {
	id, ok := g.slots.Get(slotID).WidgetID()
	if !ok {
		return nil, false
	}
	return g.widget(id), true
}

// OverrideSlotStyle sets a style field for one slot, taking precedence over
// the theme's defaults for the slot's widget kind.
func (g *Gui[R, S, D, X, E]) OverrideSlotStyle(slotID SlotID, field string, value S) {
	g.slots.Get(slotID)
	overrides, ok := g.styleOverrides[slotID]
	if !ok {
		overrides = make(map[string]S)
		g.styleOverrides[slotID] = overrides
	}
	overrides[field] = value
	g.dirty = true
}

// MinimumSize returns the minimum size computed for a slot by the last
// layout pass.
func (g *Gui[R, S, D, X, E]) MinimumSize(slotID SlotID) (layout.Dimensions, bool) {
	size, ok := g.minimumSizes[slotID]
	return size, ok
}

func (g *Gui[R, S, D, X, E]) widget(id WidgetID) Widget[R, S, D, X, E] {
	if int(id) >= len(g.widgets) {
		panic(fmt.Sprintf("unknown widget id: %d", id))
	}
	return g.widgets[id]
}

func (g *Gui[R, S, D, X, E]) slotStyle(th *theme.Theme[R, S], slotID SlotID, kind string) *theme.SlotStyle[R, S] {
	return theme.NewSlotStyle(kind, th, g.styleOverrides[slotID])
}

// WidgetHandle is a typed reference to a widget owned by a Gui.
type WidgetHandle[W any] struct {
	ID WidgetID
}

// AddSlotWithWidget appends a slot to parent, binds w to it and returns a
// handle that recovers w's concrete type.
func AddSlotWithWidget[W Widget[R, S, D, X, E], R, S, D, X any, E InputEvent](g *Gui[R, S, D, X, E], parent SlotID, info SlotInfo, w W) (SlotID, WidgetHandle[W]) {
	slotID := g.AddSlot(parent, info)
	id := g.AddWidget(slotID, w)
	return slotID, WidgetHandle[W]{ID: id}
}

// Get returns the widget behind a handle. A handle whose widget has another
// concrete type panics.
func Get[W any, R, S, D, X any, E InputEvent](g *Gui[R, S, D, X, E], handle WidgetHandle[W]) W {
	raw := g.widget(handle.ID)
	w, ok := raw.(W)
	if !ok {
		panic(fmt.Sprintf("widget %d is %T, not %T", handle.ID, raw, w))
	}
	return w
}

// GetMut is Get for callers that are about to change the widget; it marks
// the tree dirty.
func GetMut[W any, R, S, D, X any, E InputEvent](g *Gui[R, S, D, X, E], handle WidgetHandle[W]) W {
	w := Get(g, handle)
	g.dirty = true
	return w
}
