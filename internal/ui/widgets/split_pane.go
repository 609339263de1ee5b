package widgets

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/idursun/ganache/internal/ui/boxlayout"
	"github.com/idursun/ganache/internal/ui/gui"
	"github.com/idursun/ganache/internal/ui/layout"
	"github.com/idursun/ganache/internal/ui/render"
)

const SignalResized = "resized"

// SplitPane shows two children side by side, or stacked, with a one cell
// divider between them. While focused, the Expand and Shrink keys move the
// divider by Step percent; a right click moves it to the clicked cell.
type SplitPane struct {
	Split *boxlayout.Split
	Step  float64
}

func NewSplitPane(axis layout.Axis, percent, step float64) *SplitPane {
	split := boxlayout.NewSplit(axis, percent)
	split.Gap = 1
	return &SplitPane{Split: split, Step: step}
}

func (s *SplitPane) Kind() string     { return KindSplitPane }
func (s *SplitPane) TakesFocus() bool { return true }

func (s *SplitPane) MinimumSize(args MinimumSizeArgs) layout.Dimensions {
	return s.Split.MinimumSize(args.Slots, args.SlotID, args.MinimumSizes)
}

func (s *SplitPane) LayoutChildren(args gui.LayoutChildrenArgs) {
	s.Split.LayoutChildren(args)
}

func (s *SplitPane) ProcessEvent(args ProcessEventArgs) gui.ProcessEventResult {
	e := args.Event
	var (
		changed      bool
		requestFocus bool
	)
	switch {
	case args.Focused && e.Matches(args.Resources.Keys.Expand):
		old := s.Split.Percent
		s.Split.Expand(s.Step)
		changed = s.Split.Percent != old
	case args.Focused && e.Matches(args.Resources.Keys.Shrink):
		old := s.Split.Percent
		s.Split.Shrink(s.Step)
		changed = s.Split.Percent != old
	case e.Clicked(args.Bounds, tea.MouseRight):
		changed = s.Split.DragTo(args.Bounds.Size, e.X, e.Y)
		requestFocus = true
	case e.Clicked(args.Bounds, tea.MouseLeft):
		e.SetHandled()
		return gui.ProcessEventResult{RequestFocus: true}
	default:
		return gui.ProcessEventResult{}
	}
	e.SetHandled()
	result := gui.ProcessEventResult{RequestFocus: requestFocus}
	if changed {
		e.MarkDirty()
		result.Signals = append(result.Signals, gui.NewSignal(SignalResized).With("percent", s.Split.Percent))
	}
	return result
}

func (s *SplitPane) Draw(args DrawArgs) {
	var primary gui.SlotID
	n := 0
	for id := range args.Slots.VisibleChildren(args.SlotID) {
		if n == 0 {
			primary = id
		}
		n++
	}
	if n < 2 || s.Split.Gap <= 0 {
		return
	}

	style := args.Style.Field("divider")
	if args.Focused && !args.Context.Dimmed {
		style = args.Style.Field("focused")
	}
	child := args.Slots.Get(primary).Bounds
	bounds := args.Bounds
	var (
		divider layout.Bounds
		content string
	)
	if s.Split.Axis == layout.Horizontal {
		divider = layout.NewBounds(bounds.X+child.X+child.Size.Width, bounds.Y, s.Split.Gap, bounds.Size.Height)
		rows := divider.Rectangle().Dy()
		content = strings.TrimSuffix(strings.Repeat("│\n", rows), "\n")
	} else {
		divider = layout.NewBounds(bounds.X, bounds.Y+child.Y+child.Size.Height, bounds.Size.Width, s.Split.Gap)
		content = strings.Repeat("─", divider.Rectangle().Dx())
	}
	*args.Commands = append(*args.Commands,
		render.DrawCommand(divider.Rectangle(), style.Render(content), args.Context.Z))
}
