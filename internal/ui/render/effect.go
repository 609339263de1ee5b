package render

import (
	"image/color"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/idursun/ganache/internal/ui/layout"
)

// Effect changes cells that were already drawn.
type Effect interface {
	Apply(buf uv.Screen)
	GetZ() int
	GetRect() layout.Rectangle
}

// ReverseEffect swaps foreground and background. Focused widgets use it.
type ReverseEffect struct {
	Rect layout.Rectangle
	Z    int
}

func (e ReverseEffect) Apply(buf uv.Screen)       { addAttrs(buf, e.Rect, uv.AttrReverse) }
func (e ReverseEffect) GetZ() int                 { return e.Z }
func (e ReverseEffect) GetRect() layout.Rectangle { return e.Rect }

// DimEffect renders content faint.
type DimEffect struct {
	Rect layout.Rectangle
	Z    int
}

func (e DimEffect) Apply(buf uv.Screen)       { addAttrs(buf, e.Rect, uv.AttrFaint) }
func (e DimEffect) GetZ() int                 { return e.Z }
func (e DimEffect) GetRect() layout.Rectangle { return e.Rect }

type BoldEffect struct {
	Rect layout.Rectangle
	Z    int
}

func (e BoldEffect) Apply(buf uv.Screen)       { addAttrs(buf, e.Rect, uv.AttrBold) }
func (e BoldEffect) GetZ() int                 { return e.Z }
func (e BoldEffect) GetRect() layout.Rectangle { return e.Rect }

type UnderlineEffect struct {
	Rect layout.Rectangle
	Z    int
}

func (e UnderlineEffect) Apply(buf uv.Screen) {
	updateCells(buf, e.Rect, func(cell *uv.Cell) {
		cell.Style.Underline = uv.UnderlineSingle
	})
}

func (e UnderlineEffect) GetZ() int                 { return e.Z }
func (e UnderlineEffect) GetRect() layout.Rectangle { return e.Rect }

// HighlightEffect gives cells without a background the background of Style.
type HighlightEffect struct {
	Rect  layout.Rectangle
	Style lipgloss.Style
	Z     int
}

func (e HighlightEffect) Apply(buf uv.Screen) {
	bg := toAnsiColor(e.Style.GetBackground())
	updateCells(buf, e.Rect, func(cell *uv.Cell) {
		if cell.Style.Bg == nil {
			cell.Style.Bg = bg
		}
	})
}

func (e HighlightEffect) GetZ() int                 { return e.Z }
func (e HighlightEffect) GetRect() layout.Rectangle { return e.Rect }

// FillEffect overwrites every cell of Rect.
type FillEffect struct {
	Rect  layout.Rectangle
	Char  rune
	Style uv.Style
	Z     int
}

func (e FillEffect) Apply(buf uv.Screen) {
	cell := &uv.Cell{Content: string(e.Char), Width: 1, Style: e.Style}
	area := buf.Bounds().Intersect(e.Rect)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			buf.SetCell(x, y, cell)
		}
	}
}

func (e FillEffect) GetZ() int                 { return e.Z }
func (e FillEffect) GetRect() layout.Rectangle { return e.Rect }

func addAttrs(buf uv.Screen, rect layout.Rectangle, attrs uint8) {
	updateCells(buf, rect, func(cell *uv.Cell) {
		cell.Style.Attrs |= attrs
	})
}

// updateCells calls update on a copy of every cell of rect that lies inside
// buf and writes the copy back.
func updateCells(buf uv.Screen, rect layout.Rectangle, update func(cell *uv.Cell)) {
	rect = rect.Intersect(buf.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; {
			cell := buf.CellAt(x, y)
			// width 0 cells continue a wide grapheme; writing them blanks the lead cell
			if cell == nil || cell.Width == 0 {
				x++
				continue
			}
			updated := cell.Clone()
			update(updated)
			buf.SetCell(x, y, updated)
			x += max(cell.Width, 1)
		}
	}
}

// toAnsiColor keeps palette colours as palette colours so they are not
// emitted as 24-bit RGB.
func toAnsiColor(c color.Color) ansi.Color {
	switch c := c.(type) {
	case ansi.BasicColor:
		return c
	case ansi.IndexedColor:
		return c
	default:
		if ac, ok := c.(ansi.Color); ok {
			return ac
		}
		return nil
	}
}

func lipglossToStyle(ls lipgloss.Style) uv.Style {
	var s uv.Style
	if _, none := ls.GetForeground().(lipgloss.NoColor); !none {
		s.Fg = toAnsiColor(ls.GetForeground())
	}
	if _, none := ls.GetBackground().(lipgloss.NoColor); !none {
		s.Bg = toAnsiColor(ls.GetBackground())
	}
	flags := []struct {
		set  bool
		attr uint8
	}{
		{ls.GetBold(), uv.AttrBold},
		{ls.GetFaint(), uv.AttrFaint},
		{ls.GetItalic(), uv.AttrItalic},
		{ls.GetStrikethrough(), uv.AttrStrikethrough},
		{ls.GetReverse(), uv.AttrReverse},
	}
	for _, f := range flags {
		if f.set {
			s.Attrs |= f.attr
		}
	}
	if ls.GetUnderline() {
		s.Underline = uv.UnderlineSingle
	}
	return s
}
