package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal_Fields(t *testing.T) {
	base := NewSignal("clicked")
	withLabel := base.With("label", "OK")

	assert.Equal(t, "clicked", withLabel.Name())
	assert.Equal(t, "OK", Field[string](withLabel, "label"))
	_, ok := LookupField[string](base, "label")
	assert.False(t, ok, "With does not modify the receiver")

	_, ok = LookupField[int](withLabel, "label")
	assert.False(t, ok)
	assert.Panics(t, func() { Field[int](withLabel, "label") })
	assert.Panics(t, func() { Field[string](withLabel, "missing") })
}

func TestNewSignalWithFields(t *testing.T) {
	fields := map[string]any{"checked": true}
	s := NewSignalWithFields("toggled", fields)
	fields["checked"] = false

	assert.True(t, Field[bool](s, "checked"))
}

func TestSignal_String(t *testing.T) {
	assert.Equal(t, "clicked", NewSignal("clicked").String())
	assert.Equal(t, "resized{axis: horizontal, percent: 40}",
		NewSignal("resized").With("percent", 40).With("axis", "horizontal").String())
}
