package widgets

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/idursun/ganache/internal/ui/gui"
	"github.com/idursun/ganache/internal/ui/layout"
	"github.com/idursun/ganache/internal/ui/render"
)

const SignalToggled = "toggled"

// Checkbox flips Checked when clicked or activated while focused and emits
// SignalToggled with "checked" and "label" fields.
type Checkbox struct {
	Label   string
	Checked bool
}

func (c *Checkbox) Kind() string     { return KindCheckbox }
func (c *Checkbox) TakesFocus() bool { return true }

func (c *Checkbox) mark() string {
	if c.Checked {
		return "[x]"
	}
	return "[ ]"
}

func (c *Checkbox) MinimumSize(MinimumSizeArgs) layout.Dimensions {
	size := textSize(c.Label)
	return layout.NewDimensions(size.Width+4, max(size.Height, 1))
}

func (c *Checkbox) LayoutChildren(args gui.LayoutChildrenArgs) {
	panic(fmt.Sprintf("checkbox slot %d cannot have children", args.SlotID))
}

func (c *Checkbox) ProcessEvent(args ProcessEventArgs) gui.ProcessEventResult {
	e := args.Event
	clicked := e.Clicked(args.Bounds, tea.MouseLeft)
	if !clicked && !(args.Focused && e.Matches(args.Resources.Keys.Activate)) {
		return gui.ProcessEventResult{}
	}
	e.SetHandled()
	c.Checked = !c.Checked
	signal := gui.NewSignalWithFields(SignalToggled, map[string]any{
		"checked": c.Checked,
		"label":   c.Label,
	})
	return gui.ProcessEventResult{RequestFocus: clicked, Signals: []gui.Signal{signal}}
}

func (c *Checkbox) Draw(args DrawArgs) {
	labelStyle := args.Style.Field("text")
	focused := args.Focused && !args.Context.Dimmed
	if focused {
		labelStyle = args.Style.Field("focused")
	}
	rect := args.Bounds.Rectangle()
	content := args.Style.Field("mark").Render(c.mark()) + " " + labelStyle.Render(c.Label)
	*args.Commands = append(*args.Commands, render.DrawCommand(rect, content, args.Context.Z))
	if focused {
		markRect := layout.Rect(rect.Min.X, rect.Min.Y, min(3, rect.Dx()), min(1, rect.Dy()))
		*args.Commands = append(*args.Commands,
			render.EffectCommand(render.ReverseEffect{Rect: markRect, Z: args.Context.Z}))
	}
}
