package gui

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Signal is a named notification emitted by a widget while handling an event.
type Signal struct {
	name   string
	fields map[string]any
}

func NewSignal(name string) Signal {
	return Signal{name: name}
}

func NewSignalWithFields(name string, fields map[string]any) Signal {
	return Signal{name: name, fields: maps.Clone(fields)}
}

func (s Signal) Name() string {
	return s.name
}

// With returns a copy of s carrying the extra field.
func (s Signal) With(name string, value any) Signal {
	fields := maps.Clone(s.fields)
	if fields == nil {
		fields = make(map[string]any, 1)
	}
	fields[name] = value
	return Signal{name: s.name, fields: fields}
}

func (s Signal) String() string {
	if len(s.fields) == 0 {
		return s.name
	}
	var b strings.Builder
	b.WriteString(s.name)
	b.WriteString("{")
	for i, key := range slices.Sorted(maps.Keys(s.fields)) {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", key, s.fields[key])
	}
	b.WriteString("}")
	return b.String()
}

// Field returns the named field of the signal. A missing field or a field
// of another type is a programming error and panics.
func Field[T any](s Signal, name string) T {
	raw, ok := s.fields[name]
	if !ok {
		panic(fmt.Sprintf("signal `%s` has no field `%s`", s.name, name))
	}
	value, ok := raw.(T)
	if !ok {
		panic(fmt.Sprintf("signal `%s` field `%s` is %T, not %T", s.name, name, raw, value))
	}
	return value
}

// LookupField is like Field but reports absence or a type mismatch instead
// of panicking.
func LookupField[T any](s Signal, name string) (T, bool) {
	value, ok := s.fields[name].(T)
	return value, ok
}

// SlotSignal is a signal tagged with the slot whose widget emitted it.
type SlotSignal struct {
	SlotID SlotID
	Signal Signal
}
