package theme

import "fmt"

// Theme holds host resources and the default style table of every widget kind.
// R is whatever the host's widgets need while measuring and drawing
// (fonts, borders); S is the type of a single style field value.
type Theme[R, S any] struct {
	Resources           R
	defaultWidgetStyles map[string]map[string]S
}

func New[R, S any](resources R) *Theme[R, S] {
	return &Theme[R, S]{
		Resources:           resources,
		defaultWidgetStyles: make(map[string]map[string]S),
	}
}

// SetWidgetStyle replaces the default field table for a widget kind.
func (t *Theme[R, S]) SetWidgetStyle(kind string, style map[string]S) {
	t.defaultWidgetStyles[kind] = style
}

// HasWidgetStyle reports whether a default table exists for kind.
func (t *Theme[R, S]) HasWidgetStyle(kind string) bool {
	_, ok := t.defaultWidgetStyles[kind]
	return ok
}

func (t *Theme[R, S]) widgetStyle(kind string) map[string]S {
	style, ok := t.defaultWidgetStyles[kind]
	if !ok {
		panic(fmt.Sprintf("theme missing style for widget: `%s`", kind))
	}
	return style
}

// SlotStyle resolves style fields for one slot: the slot's overrides win,
// then the defaults of the slot's widget kind.
type SlotStyle[R, S any] struct {
	kind      string
	theme     *Theme[R, S]
	overrides map[string]S
}

func NewSlotStyle[R, S any](kind string, theme *Theme[R, S], overrides map[string]S) *SlotStyle[R, S] {
	return &SlotStyle[R, S]{kind: kind, theme: theme, overrides: overrides}
}

// Kind returns the widget kind this style resolves against.
func (s *SlotStyle[R, S]) Kind() string {
	return s.kind
}

// Field returns the named field. A field that resolves nowhere is a theme
// misconfiguration and panics.
func (s *SlotStyle[R, S]) Field(name string) S {
	value, ok := s.LookupField(name)
	if !ok {
		panic(fmt.Sprintf("theme missing field `%s` for widget: `%s`", name, s.kind))
	}
	return value
}

// LookupField returns the named field and whether it was found. The widget
// kind itself must still be present in the theme.
func (s *SlotStyle[R, S]) LookupField(name string) (S, bool) {
	if value, ok := s.overrides[name]; ok {
		return value, true
	}
	value, ok := s.theme.widgetStyle(s.kind)[name]
	return value, ok
}
