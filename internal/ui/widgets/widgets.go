// Package widgets binds the layout engine to the terminal: events wrap
// Bubble Tea messages, style values are lipgloss styles and widgets draw
// render commands.
package widgets

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idursun/ganache/internal/config"
	"github.com/idursun/ganache/internal/ui/gui"
	"github.com/idursun/ganache/internal/ui/layout"
	"github.com/idursun/ganache/internal/ui/render"
	"github.com/idursun/ganache/internal/ui/theme"
)

const (
	KindPanel     = "panel"
	KindLabel     = "label"
	KindButton    = "button"
	KindCheckbox  = "checkbox"
	KindSplitPane = "split_pane"
)

// Resources is what widgets need from the host besides styles.
type Resources struct {
	Border lipgloss.Border
	Keys   Keys
}

// Keys are the bindings focused widgets react to.
type Keys struct {
	Activate key.Binding
	Expand   key.Binding
	Shrink   key.Binding
}

// NewResources uses rounded borders and the widget bindings of c.
func NewResources(c *config.Config) Resources {
	return Resources{
		Border: lipgloss.RoundedBorder(),
		Keys: Keys{
			Activate: NewBinding(c.Keys.Activate, "activate"),
			Expand:   NewBinding(c.Keys.Expand, "grow split"),
			Shrink:   NewBinding(c.Keys.Shrink, "shrink split"),
		},
	}
}

// NewBinding builds a key binding from configured keys, with help text
// listing all of them.
func NewBinding(keys config.StringList, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(keys, "/"), desc))
}

// DrawContext is copied into every branch of the draw traversal.
type DrawContext struct {
	Z      int
	Dimmed bool
}

type (
	Theme  = theme.Theme[Resources, lipgloss.Style]
	Style  = theme.SlotStyle[Resources, lipgloss.Style]
	Gui    = gui.Gui[Resources, lipgloss.Style, render.Command, DrawContext, *Event]
	Widget = gui.Widget[Resources, lipgloss.Style, render.Command, DrawContext, *Event]

	MinimumSizeArgs  = gui.MinimumSizeArgs[Resources, lipgloss.Style]
	ProcessEventArgs = gui.ProcessEventArgs[Resources, lipgloss.Style, *Event]
	DrawArgs         = gui.DrawArgs[Resources, lipgloss.Style, render.Command, DrawContext]
)

// NewGui creates a tree whose root fills a terminal of the given size.
func NewGui(width, height int) *Gui {
	size := layout.NewDimensions(layout.Scalar(width), layout.Scalar(height))
	g := gui.New[Resources, lipgloss.Style, render.Command, DrawContext, *Event](size)
	g.Slots().SetSize(g.RootSlotID(), size)
	return g
}

// Event carries a Bubble Tea message through the tree. Mouse messages keep
// their cell position, translated into the coordinates of the slot that is
// currently handling the event.
type Event struct {
	Msg     tea.Msg
	X, Y    layout.Scalar
	mouse   bool
	dirty   bool
	handled bool
}

func NewEvent(msg tea.Msg) *Event {
	e := &Event{Msg: msg}
	if m, ok := msg.(tea.MouseMsg); ok {
		mouse := m.Mouse()
		e.X, e.Y = layout.Scalar(mouse.X), layout.Scalar(mouse.Y)
		e.mouse = true
	}
	return e
}

func (e *Event) Dirty() bool {
	return e.dirty
}

// MarkDirty asks for a new layout pass once dispatch is over.
func (e *Event) MarkDirty() {
	e.dirty = true
}

func (e *Event) OffsetCoordinates(dx, dy layout.Scalar) {
	e.X += dx
	e.Y += dy
}

// Handled reports whether a widget already acted on the event.
func (e *Event) Handled() bool {
	return e.handled
}

func (e *Event) SetHandled() {
	e.handled = true
}

// Matches reports whether the event is an unhandled key press for binding.
func (e *Event) Matches(binding key.Binding) bool {
	msg, ok := e.Msg.(tea.KeyPressMsg)
	return ok && !e.handled && key.Matches(msg, binding)
}

// Clicked reports whether the event is an unhandled click of button inside
// bounds. Bounds must be in the event's current coordinate space.
func (e *Event) Clicked(bounds layout.Bounds, button tea.MouseButton) bool {
	msg, ok := e.Msg.(tea.MouseClickMsg)
	if !ok || e.handled || msg.Button != button {
		return false
	}
	return bounds.Contains(e.X, e.Y)
}
