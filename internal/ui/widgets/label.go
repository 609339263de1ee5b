package widgets

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/idursun/ganache/internal/ui/gui"
	"github.com/idursun/ganache/internal/ui/layout"
	"github.com/idursun/ganache/internal/ui/render"
)

// Label draws static text with the "text" style field. Class replaces the
// widget kind used for style lookup so one theme can hold several kinds of
// labels.
type Label struct {
	Text  string
	Class string
}

func (l *Label) Kind() string {
	if l.Class != "" {
		return l.Class
	}
	return KindLabel
}

func (l *Label) TakesFocus() bool { return false }

func (l *Label) MinimumSize(MinimumSizeArgs) layout.Dimensions {
	return textSize(l.Text)
}

func (l *Label) LayoutChildren(args gui.LayoutChildrenArgs) {
	panic(fmt.Sprintf("label slot %d cannot have children", args.SlotID))
}

func (l *Label) ProcessEvent(ProcessEventArgs) gui.ProcessEventResult {
	return gui.ProcessEventResult{}
}

func (l *Label) Draw(args DrawArgs) {
	content := args.Style.Field("text").Render(l.Text)
	*args.Commands = append(*args.Commands, render.DrawCommand(args.Bounds.Rectangle(), content, args.Context.Z))
}

func textSize(s string) layout.Dimensions {
	if s == "" {
		return layout.Dimensions{}
	}
	return layout.NewDimensions(layout.Scalar(lipgloss.Width(s)), layout.Scalar(lipgloss.Height(s)))
}
