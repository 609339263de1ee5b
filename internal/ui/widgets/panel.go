package widgets

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/idursun/ganache/internal/ui/boxlayout"
	"github.com/idursun/ganache/internal/ui/gui"
	"github.com/idursun/ganache/internal/ui/layout"
	"github.com/idursun/ganache/internal/ui/render"
)

// Panel stacks its children with a box layout, optionally inside a border.
type Panel struct {
	Layout boxlayout.Settings
	Title  string
	Border bool
	// Layer raises the panel and everything inside it above its siblings.
	Layer int
	// Dimmed fades the panel's content, for example behind an overlay.
	Dimmed bool
}

func (p *Panel) Kind() string     { return KindPanel }
func (p *Panel) TakesFocus() bool { return false }

// settings returns the box layout with room for the border.
func (p *Panel) settings() boxlayout.Settings {
	s := p.Layout
	if p.Border {
		s.Padding++
	}
	return s
}

func (p *Panel) MinimumSize(args MinimumSizeArgs) layout.Dimensions {
	size := p.settings().MinimumSize(args.Slots, args.SlotID, args.MinimumSizes)
	if p.Border && p.Title != "" {
		size.Width = max(size.Width, layout.Scalar(lipgloss.Width(p.Title)+4))
	}
	return size
}

func (p *Panel) LayoutChildren(args gui.LayoutChildrenArgs) {
	p.settings().LayoutChildren(args)
}

func (p *Panel) ProcessEvent(ProcessEventArgs) gui.ProcessEventResult {
	return gui.ProcessEventResult{}
}

func (p *Panel) Draw(args DrawArgs) {
	ctx := args.Context
	ctx.Z += p.Layer
	rect := args.Bounds.Rectangle()
	if background, ok := args.Style.LookupField("background"); ok {
		*args.Commands = append(*args.Commands, render.FillCommand(rect, ' ', background, ctx.Z))
	}
	if p.Border {
		*args.Commands = append(*args.Commands,
			borderCommands(rect, args.Resources.Border, args.Style.Field("border"), p.title(args.Style), ctx.Z)...)
	}
	if p.Dimmed && !ctx.Dimmed {
		*args.Commands = append(*args.Commands, render.EffectCommand(render.DimEffect{Rect: rect, Z: ctx.Z + 1}))
	}
	ctx.Dimmed = ctx.Dimmed || p.Dimmed
}

func (p *Panel) title(style *Style) string {
	if p.Title == "" {
		return ""
	}
	return style.Field("title").Render(" " + p.Title + " ")
}

// borderCommands draws the four edges of rect separately so the inside is
// left alone. title is written into the top edge when it fits.
func borderCommands(rect layout.Rectangle, b lipgloss.Border, style lipgloss.Style, title string, z int) []render.Command {
	width, height := rect.Dx(), rect.Dy()
	if width < 2 || height < 2 {
		return nil
	}
	inner := width - 2
	top := style.Render(b.TopLeft + strings.Repeat(b.Top, inner) + b.TopRight)
	if title != "" && lipgloss.Width(title)+2 <= inner {
		rest := inner - 1 - lipgloss.Width(title)
		top = style.Render(b.TopLeft+b.Top) + title + style.Render(strings.Repeat(b.Top, rest)+b.TopRight)
	}
	bottom := style.Render(b.BottomLeft + strings.Repeat(b.Bottom, inner) + b.BottomRight)
	left := style.Render(strings.TrimSuffix(strings.Repeat(b.Left+"\n", height-2), "\n"))
	right := style.Render(strings.TrimSuffix(strings.Repeat(b.Right+"\n", height-2), "\n"))

	x, y := rect.Min.X, rect.Min.Y
	commands := []render.Command{
		render.DrawCommand(layout.Rect(x, y, width, 1), top, z),
		render.DrawCommand(layout.Rect(x, y+height-1, width, 1), bottom, z),
	}
	if height > 2 {
		commands = append(commands,
			render.DrawCommand(layout.Rect(x, y+1, 1, height-2), left, z),
			render.DrawCommand(layout.Rect(x+width-1, y+1, 1, height-2), right, z),
		)
	}
	return commands
}
