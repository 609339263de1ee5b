package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idursun/ganache/internal/config"
	"github.com/idursun/ganache/internal/ui/gui"
	"github.com/idursun/ganache/internal/ui/layout"
	"github.com/idursun/ganache/internal/ui/render"
	"github.com/idursun/ganache/internal/ui/theme"
	"github.com/idursun/ganache/internal/ui/widgets"
)

const (
	kindStatus = "status"
	kindJump   = "jump"

	jumpLayer = 20
)

type Model struct {
	gui            *widgets.Gui
	theme          *widgets.Theme
	keys           KeyMap
	help           help.Model
	tree           *tree
	jump           *jump
	message        string
	showingMessage bool
	displayContext *render.DisplayContext
	width          int
	height         int
}

func NewUI(c *config.Config, colors config.Theme) *Model {
	resources := widgets.NewResources(c)
	keys := NewKeyMap(c, resources)
	g := widgets.NewGui(0, 0)
	m := &Model{
		gui:            g,
		theme:          widgets.NewTheme(colors, resources),
		keys:           keys,
		help:           help.New(),
		tree:           buildTree(g, c, keys),
		displayContext: render.NewDisplayContext(),
	}
	m.cycleFocus(gui.FocusNext)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		m.gui.Slots().SetSize(m.gui.RootSlotID(), layout.NewDimensions(layout.Scalar(msg.Width), layout.Scalar(msg.Height)))
		return nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseClickMsg:
		if m.helpVisible() {
			m.toggleHelp()
			return nil
		}
		m.dispatch(msg)
		return nil
	}
	if m.jump != nil {
		return m.jump.Update(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.jump != nil {
		return m.handleJumpKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.ToggleHelp):
		m.toggleHelp()
		return nil
	case m.helpVisible():
		if key.Matches(msg, m.keys.Cancel) {
			m.toggleHelp()
		}
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.showingMessage = false
		return nil
	case key.Matches(msg, m.keys.Jump):
		var cmd tea.Cmd
		m.jump, cmd = newJump(m.tree.targets)
		m.showingMessage = false
		return cmd
	}

	if e := m.dispatch(msg); !e.Handled() {
		switch {
		case key.Matches(msg, m.keys.Next):
			m.cycleFocus(gui.FocusNext)
		case key.Matches(msg, m.keys.Previous):
			m.cycleFocus(gui.FocusPrevious)
		}
	}
	return nil
}

func (m *Model) handleJumpKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.jump = nil
		return nil
	case key.Matches(msg, m.keys.Accept):
		if slot, ok := m.jump.best(); ok {
			log.Printf("jump: %q focuses slot %d", m.jump.Query(), slot)
			m.gui.SetFocus(slot)
		}
		m.jump = nil
		return nil
	}
	return m.jump.Update(msg)
}

// dispatch sends msg through the widget tree and handles the signals it
// produces.
func (m *Model) dispatch(msg tea.Msg) *widgets.Event {
	e := widgets.NewEvent(msg)
	before, hadFocus := m.gui.Focused()
	for _, s := range m.gui.ProcessEvent(m.theme, e) {
		m.handleSignal(s)
	}
	if after, ok := m.gui.Focused(); ok && (!hadFocus || after != before) {
		log.Printf("focus: slot %d", after)
	}
	return e
}

func (m *Model) handleSignal(s gui.SlotSignal) {
	log.Printf("signal from slot %d: %s", s.SlotID, s.Signal)
	switch s.Signal.Name() {
	case widgets.SignalClicked:
		label := gui.Field[string](s.Signal, "label")
		if label == "Reset" {
			m.resetOptions()
		}
		m.setMessage(label + " clicked")
	case widgets.SignalToggled:
		state := "off"
		if gui.Field[bool](s.Signal, "checked") {
			state = "on"
		}
		m.setMessage(fmt.Sprintf("%s: %s", gui.Field[string](s.Signal, "label"), state))
	case widgets.SignalResized:
		m.setMessage(fmt.Sprintf("split at %.0f%%", gui.Field[float64](s.Signal, "percent")))
	}
}

func (m *Model) setMessage(message string) {
	m.message = message
	m.showingMessage = true
}

func (m *Model) resetOptions() {
	for _, handle := range m.tree.checkboxes {
		if gui.Get(m.gui, handle).Checked {
			gui.GetMut(m.gui, handle).Checked = false
		}
	}
}

func (m *Model) cycleFocus(direction gui.FocusDirection) {
	m.gui.CycleFocus(direction)
	if slot, ok := m.gui.Focused(); ok {
		log.Printf("focus: slot %d", slot)
	}
}

func (m *Model) helpVisible() bool {
	return !m.gui.Slots().Get(m.tree.help).Info.Hidden
}

// toggleHelp shows or hides the help overlay and dims the main panel
// behind it.
func (m *Model) toggleHelp() {
	visible := !m.helpVisible()
	m.gui.Slots().GetMut(m.tree.help).Info.Hidden = !visible
	gui.GetMut(m.gui, m.tree.main).Dimmed = visible
}

// updateStatus refreshes the status line. It only touches the tree when the
// text or its style changes so an idle frame does not trigger a layout.
func (m *Model) updateStatus() {
	style := theme.NewSlotStyle(kindStatus, m.theme, nil)
	var text string
	textStyle := style.Field("text")
	switch {
	case m.jump != nil:
		text = m.jump.View()
	case m.showingMessage:
		text = m.message
		if signal, ok := style.LookupField("signal"); ok {
			textStyle = signal
		}
	default:
		text = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	if gui.Get(m.gui, m.tree.statusText).Text != text {
		gui.GetMut(m.gui, m.tree.statusText).Text = text
		m.gui.OverrideSlotStyle(m.tree.status, "text", textStyle)
	}
}

func (m *Model) jumpStyle() lipgloss.Style {
	if m.theme.HasWidgetStyle(kindJump) {
		if style, ok := theme.NewSlotStyle(kindJump, m.theme, nil).LookupField("match"); ok {
			return style
		}
	}
	return lipgloss.NewStyle().Reverse(true)
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	m.updateStatus()
	if m.gui.LayoutIfNeeded(m.theme) {
		log.Printf("layout: %dx%d", m.width, m.height)
	}

	m.displayContext.Clear()
	m.displayContext.AddCommands(m.gui.Draw(m.theme, widgets.DrawContext{}))
	if m.jump != nil {
		if slot, ok := m.jump.best(); ok {
			rect := absoluteBounds(m.gui.Slots(), slot).Rectangle()
			m.displayContext.AddHighlight(rect, m.jumpStyle(), jumpLayer)
			m.displayContext.AddBold(rect, jumpLayer)
		}
		for _, slot := range m.jump.others() {
			m.displayContext.AddUnderline(absoluteBounds(m.gui.Slots(), slot).Rectangle(), jumpLayer)
		}
	}

	return strings.ReplaceAll(m.displayContext.RenderToString(m.width, m.height), "\r", "")
}

// absoluteBounds returns the bounds of id relative to the root.
func absoluteBounds(slots *gui.Slots, id gui.SlotID) layout.Bounds {
	bounds := slots.Get(id).Bounds
	for parent, ok := slots.Get(id).Parent(); ok; parent, ok = slots.Get(parent).Parent() {
		p := slots.Get(parent).Bounds
		bounds = bounds.Offset(p.X, p.Y)
	}
	return bounds
}

type (
	frameTickMsg struct{}
	wrapper      struct {
		ui                 *Model
		scheduledNextFrame bool
		render             bool
		cachedFrame        string
	}
)

func (w *wrapper) Init() tea.Cmd {
	return w.ui.Init()
}

func (w *wrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(frameTickMsg); ok {
		w.render = true
		w.scheduledNextFrame = false
		return w, nil
	}
	cmd := w.ui.Update(msg)
	if !w.scheduledNextFrame {
		w.scheduledNextFrame = true
		return w, tea.Batch(cmd, tea.Tick(time.Millisecond*8, func(t time.Time) tea.Msg {
			return frameTickMsg{}
		}))
	}
	return w, cmd
}

func (w *wrapper) View() tea.View {
	if w.render {
		w.cachedFrame = w.ui.View()
		w.render = false
	}
	v := tea.NewView(w.cachedFrame)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.WindowTitle = "ganache"
	return v
}

func New(c *config.Config, colors config.Theme) tea.Model {
	return &wrapper{ui: NewUI(c, colors)}
}
