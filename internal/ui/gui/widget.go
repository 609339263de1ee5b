package gui

import (
	"github.com/idursun/ganache/internal/ui/layout"
	"github.com/idursun/ganache/internal/ui/theme"
)

// InputEvent is what the host feeds into ProcessEvent. OffsetCoordinates is
// called in pairs with opposite signs around every subtree descent, so an
// implementation with a pointer receiver is expected.
type InputEvent interface {
	// Dirty reports whether handling the event changed anything that needs
	// a new layout pass.
	Dirty() bool
	OffsetCoordinates(dx, dy layout.Scalar)
}

// Widget is the behaviour bound to a slot.
//
// R is the resource bundle of the theme, S a style field value, D a draw
// command, X the per-branch draw context and E the input event.
type Widget[R, S, D, X any, E InputEvent] interface {
	// Kind is the key used for style lookup.
	Kind() string
	TakesFocus() bool
	MinimumSize(args MinimumSizeArgs[R, S]) layout.Dimensions
	// LayoutChildren positions the direct children of args.SlotID inside
	// the slot. It is only called for slots that have children; widgets
	// that never host children panic.
	LayoutChildren(args LayoutChildrenArgs)
	ProcessEvent(args ProcessEventArgs[R, S, E]) ProcessEventResult
	// Draw appends zero or more commands. It must not change the tree.
	Draw(args DrawArgs[R, S, D, X])
}

type MinimumSizeArgs[R, S any] struct {
	SlotID    SlotID
	Slots     *Slots
	Resources R
	Style     *theme.SlotStyle[R, S]
	// MinimumSizes holds the already computed minimum size of every
	// descendant of SlotID.
	MinimumSizes map[SlotID]layout.Dimensions
}

type LayoutChildrenArgs struct {
	SlotID       SlotID
	Slots        *Slots
	MinimumSizes map[SlotID]layout.Dimensions
}

type ProcessEventArgs[R, S any, E InputEvent] struct {
	SlotID SlotID
	// Bounds is the slot's rectangle in its own coordinate space, so the
	// origin is always zero.
	Bounds    layout.Bounds
	Focused   bool
	Event     E
	Resources R
	Style     *theme.SlotStyle[R, S]
	Slots     *Slots
}

type ProcessEventResult struct {
	RequestFocus bool
	Signals      []Signal
}

type DrawArgs[R, S, D, X any] struct {
	SlotID SlotID
	// Bounds is relative to the root slot.
	Bounds    layout.Bounds
	Focused   bool
	Resources R
	Style     *theme.SlotStyle[R, S]
	Slots     *Slots
	// Context is this branch's copy of the draw context. Changes are seen
	// by the slot's descendants only.
	Context  *X
	Commands *[]D
}
