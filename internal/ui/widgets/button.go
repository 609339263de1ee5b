package widgets

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/idursun/ganache/internal/ui/gui"
	"github.com/idursun/ganache/internal/ui/layout"
	"github.com/idursun/ganache/internal/ui/render"
)

const SignalClicked = "clicked"

// Button emits SignalClicked with a "label" field when it is clicked, or
// activated while focused.
type Button struct {
	Label string
}

func (b *Button) Kind() string     { return KindButton }
func (b *Button) TakesFocus() bool { return true }

func (b *Button) text() string {
	return "[ " + b.Label + " ]"
}

func (b *Button) MinimumSize(MinimumSizeArgs) layout.Dimensions {
	return textSize(b.text())
}

func (b *Button) LayoutChildren(args gui.LayoutChildrenArgs) {
	panic(fmt.Sprintf("button slot %d cannot have children", args.SlotID))
}

func (b *Button) ProcessEvent(args ProcessEventArgs) gui.ProcessEventResult {
	e := args.Event
	clicked := e.Clicked(args.Bounds, tea.MouseLeft)
	if !clicked && !(args.Focused && e.Matches(args.Resources.Keys.Activate)) {
		return gui.ProcessEventResult{}
	}
	e.SetHandled()
	return gui.ProcessEventResult{
		RequestFocus: clicked,
		Signals:      []gui.Signal{gui.NewSignal(SignalClicked).With("label", b.Label)},
	}
}

func (b *Button) Draw(args DrawArgs) {
	style := args.Style.Field("text")
	if args.Focused && !args.Context.Dimmed {
		style = args.Style.Field("focused")
	}
	*args.Commands = append(*args.Commands,
		render.DrawCommand(args.Bounds.Rectangle(), style.Render(b.text()), args.Context.Z))
}
