package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotStyle_Field(t *testing.T) {
	th := New[string, string]("resources")
	th.SetWidgetStyle("button", map[string]string{"fg": "white", "bg": "blue"})

	tests := []struct {
		name      string
		overrides map[string]string
		field     string
		expected  string
	}{
		{name: "default", field: "fg", expected: "white"},
		{name: "override wins", overrides: map[string]string{"fg": "red"}, field: "fg", expected: "red"},
		{name: "override only for its field", overrides: map[string]string{"fg": "red"}, field: "bg", expected: "blue"},
		{name: "field only in overrides", overrides: map[string]string{"border": "rounded"}, field: "border", expected: "rounded"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			style := NewSlotStyle("button", th, tc.overrides)
			assert.Equal(t, tc.expected, style.Field(tc.field))
		})
	}
	assert.Equal(t, "resources", th.Resources)
}

func TestSlotStyle_Missing(t *testing.T) {
	th := New[struct{}, int](struct{}{})
	th.SetWidgetStyle("label", map[string]int{"width": 1})

	assert.True(t, th.HasWidgetStyle("label"))
	assert.False(t, th.HasWidgetStyle("button"))

	style := NewSlotStyle("label", th, nil)
	_, ok := style.LookupField("height")
	assert.False(t, ok)
	assert.PanicsWithValue(t, "theme missing field `height` for widget: `label`", func() { style.Field("height") })

	unknown := NewSlotStyle("button", th, nil)
	assert.Equal(t, "button", unknown.Kind())
	assert.PanicsWithValue(t, "theme missing style for widget: `button`", func() { unknown.Field("width") })
}
