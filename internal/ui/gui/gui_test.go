package gui

import (
	"fmt"
	"testing"

	"github.com/idursun/ganache/internal/ui/layout"
	"github.com/idursun/ganache/internal/ui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	x, y  layout.Scalar
	dirty bool
	trace []string
}

func (e *testEvent) Dirty() bool { return e.dirty }

func (e *testEvent) OffsetCoordinates(dx, dy layout.Scalar) {
	e.x += dx
	e.y += dy
}

type testWidget struct {
	name      string
	focusable bool
	minimum   layout.Dimensions

	layout       func(args LayoutChildrenArgs)
	signals      []Signal
	requestFocus bool
	ctxDelta     int

	lastEventX, lastEventY layout.Scalar
	lastBounds             layout.Bounds
	lastStyle              string
}

func (w *testWidget) Kind() string     { return "test" }
func (w *testWidget) TakesFocus() bool { return w.focusable }

func (w *testWidget) MinimumSize(args MinimumSizeArgs[struct{}, string]) layout.Dimensions {
	return w.minimum
}

func (w *testWidget) LayoutChildren(args LayoutChildrenArgs) {
	if w.layout == nil {
		panic(fmt.Sprintf("widget %s has no children", w.name))
	}
	w.layout(args)
}

func (w *testWidget) ProcessEvent(args ProcessEventArgs[struct{}, string, *testEvent]) ProcessEventResult {
	args.Event.trace = append(args.Event.trace, w.name)
	w.lastEventX, w.lastEventY = args.Event.x, args.Event.y
	w.lastBounds = args.Bounds
	w.lastStyle = args.Style.Field("color")
	return ProcessEventResult{RequestFocus: w.requestFocus, Signals: w.signals}
}

func (w *testWidget) Draw(args DrawArgs[struct{}, string, string, int]) {
	*args.Commands = append(*args.Commands, fmt.Sprintf("%s %v ctx=%d", w.name, args.Bounds, *args.Context))
	*args.Context += w.ctxDelta
}

func noLayout(LayoutChildrenArgs) {}

type otherWidget struct {
	testWidget
}

type testGui = Gui[struct{}, string, string, int, *testEvent]

func newTestGui(width, height layout.Scalar) *testGui {
	g := New[struct{}, string, string, int, *testEvent](layout.NewDimensions(width, height))
	g.Slots().SetSize(g.RootSlotID(), layout.NewDimensions(width, height))
	return g
}

func newTestTheme() *theme.Theme[struct{}, string] {
	th := theme.New[struct{}, string](struct{}{})
	th.SetWidgetStyle("test", map[string]string{"color": "white"})
	return th
}

func TestNew(t *testing.T) {
	g := New[struct{}, string, string, int, *testEvent](layout.NewDimensions(80, 24))
	root := g.Slots().Get(g.RootSlotID())

	assert.Equal(t, SlotID(0), g.RootSlotID())
	assert.Equal(t, layout.Bounds{}, root.Bounds)
	assert.Equal(t, float32(1), root.Info.AnchorRight)
	assert.Equal(t, float32(1), root.Info.AnchorBottom)
	assert.Equal(t, layout.NewDimensions(80, 24), root.Info.MinimumSize)
	_, hasParent := root.Parent()
	assert.False(t, hasParent)
	assert.True(t, g.Dirty())
	_, focused := g.Focused()
	assert.False(t, focused)
}

func TestWidgetHandles(t *testing.T) {
	g := newTestGui(10, 10)
	slotID, handle := AddSlotWithWidget(g, g.RootSlotID(), DefaultSlotInfo(), &testWidget{name: "a"})

	t.Run("get returns the concrete widget", func(t *testing.T) {
		w := Get(g, handle)
		assert.Equal(t, "a", w.name)
		widget, ok := g.WidgetOf(slotID)
		require.True(t, ok)
		assert.Same(t, w, widget)
	})

	t.Run("get mut marks the tree dirty", func(t *testing.T) {
		g.LayoutIfNeeded(newTestTheme())
		require.False(t, g.Dirty())
		GetMut(g, handle).minimum = layout.NewDimensions(3, 3)
		assert.True(t, g.Dirty())
	})

	t.Run("mismatched handle panics", func(t *testing.T) {
		wrong := WidgetHandle[*otherWidget]{ID: handle.ID}
		assert.Panics(t, func() { Get(g, wrong) })
	})

	t.Run("unknown widget panics", func(t *testing.T) {
		assert.Panics(t, func() { Get(g, WidgetHandle[*testWidget]{ID: 42}) })
	})

	t.Run("slot can only hold one widget", func(t *testing.T) {
		assert.Panics(t, func() { g.AddWidget(slotID, &testWidget{name: "b"}) })
	})

	t.Run("widget can only be bound once", func(t *testing.T) {
		other := g.AddSlot(g.RootSlotID(), DefaultSlotInfo())
		assert.Panics(t, func() { g.AddWidget(other, Get(g, handle)) })
		_, ok := g.WidgetOf(other)
		assert.False(t, ok)
	})

	t.Run("slot without widget", func(t *testing.T) {
		empty := g.AddSlot(g.RootSlotID(), DefaultSlotInfo())
		_, ok := g.WidgetOf(empty)
		assert.False(t, ok)
	})
}

func TestOverrideSlotStyle(t *testing.T) {
	th := newTestTheme()
	g := newTestGui(10, 10)
	_, plain := AddSlotWithWidget(g, g.RootSlotID(), FullSlotInfo(), &testWidget{name: "plain"})
	styledID, styled := AddSlotWithWidget(g, g.RootSlotID(), FullSlotInfo(), &testWidget{name: "styled"})
	g.OverrideSlotStyle(styledID, "color", "red")
	g.LayoutIfNeeded(th)

	g.ProcessEvent(th, &testEvent{})

	assert.Equal(t, "white", Get(g, plain).lastStyle)
	assert.Equal(t, "red", Get(g, styled).lastStyle)
}
