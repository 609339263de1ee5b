package gui

import (
	"fmt"
	"iter"

	"github.com/idursun/ganache/internal/ui/layout"
)

// SlotID identifies a slot. Identities are handed out in increasing order
// and never reused.
type SlotID uint32

// WidgetID identifies a widget owned by a Gui.
type WidgetID uint32

// GrowDirection decides which edge moves when a slot's minimum size does
// not fit in the box its anchors and margins describe.
type GrowDirection int

const (
	// GrowEnd keeps the leading edge and pushes the trailing edge out.
	GrowEnd GrowDirection = iota
	// GrowBegin keeps the trailing edge and pulls the leading edge back.
	GrowBegin
	// GrowBoth splits the deficit equally between the two edges.
	GrowBoth
)

func (g GrowDirection) String() string {
	switch g {
	case GrowBegin:
		return "begin"
	case GrowBoth:
		return "both"
	default:
		return "end"
	}
}

// SlotInfo is the layout metadata of a slot.
type SlotInfo struct {
	Hidden bool

	MinimumSize layout.Dimensions
	ExpandX     bool
	ExpandY     bool

	GrowX GrowDirection
	GrowY GrowDirection

	// Anchors are fractions of the parent's size in [0, 1].
	AnchorLeft   float32
	AnchorRight  float32
	AnchorTop    float32
	AnchorBottom float32

	// Margins offset the anchored edges: left/top move the leading edge,
	// right/bottom move the trailing edge.
	MarginLeft   layout.Scalar
	MarginRight  layout.Scalar
	MarginTop    layout.Scalar
	MarginBottom layout.Scalar
}

// DefaultSlotInfo returns a visible slot anchored to the parent's origin
// with no minimum size.
func DefaultSlotInfo() SlotInfo {
	return SlotInfo{GrowX: GrowEnd, GrowY: GrowEnd}
}

// FullSlotInfo returns a slot whose anchors cover the whole parent.
func FullSlotInfo() SlotInfo {
	info := DefaultSlotInfo()
	info.AnchorRight = 1
	info.AnchorBottom = 1
	return info
}

// Slot is a node of the layout tree.
type Slot struct {
	Info SlotInfo
	// Bounds is relative to the parent slot's origin.
	Bounds layout.Bounds

	widgetID  WidgetID
	hasWidget bool
	parent    SlotID
	hasParent bool
	children  []SlotID
}

// Children returns the child identities in insertion order. The slice must
// not be modified.
func (s *Slot) Children() []SlotID {
	return s.children
}

// Parent returns the parent slot; ok is false only for the root.
func (s *Slot) Parent() (id SlotID, ok bool) {
	return s.parent, s.hasParent
}

// WidgetID returns the widget bound to this slot, if any.
func (s *Slot) WidgetID() (id WidgetID, ok bool) {
	return s.widgetID, s.hasWidget
}

// Slots is the arena that owns every slot of a tree.
type Slots struct {
	slots []*Slot
	dirty bool
}

func newSlots(root *Slot) *Slots {
	return &Slots{slots: []*Slot{root}, dirty: true}
}

// Root returns the identity of the root slot.
func (s *Slots) Root() SlotID {
	return 0
}

// Len returns the number of slots in the tree.
func (s *Slots) Len() int {
	return len(s.slots)
}

// Dirty reports whether the tree changed since the last layout pass.
func (s *Slots) Dirty() bool {
	return s.dirty
}

// Add appends a new leaf slot to parent and returns its identity.
func (s *Slots) Add(parent SlotID, info SlotInfo) SlotID {
	parentSlot := s.GetMut(parent)
	id := SlotID(len(s.slots))
	s.slots = append(s.slots, &Slot{
		Info:      info,
		parent:    parent,
		hasParent: true,
	})
	parentSlot.children = append(parentSlot.children, id)
	return id
}

// SetSize sets the size of a slot's bounds and marks the tree dirty.
func (s *Slots) SetSize(id SlotID, size layout.Dimensions) {
	s.GetMut(id).Bounds.Size = size
}

// Get returns a slot for reading. Use GetMut to change it.
func (s *Slots) Get(id SlotID) *Slot {
	if int(id) >= len(s.slots) {
		panic(fmt.Sprintf("unknown slot id: %d", id))
	}
	return s.slots[id]
}

// GetMut returns a slot for modification. Any mutable access marks the
// tree dirty, whether or not the caller ends up changing anything.
func (s *Slots) GetMut(id SlotID) *Slot {
	slot := s.Get(id)
	s.dirty = true
	return slot
}

// VisibleChildren yields the children of id that are not hidden, in order.
func (s *Slots) VisibleChildren(id SlotID) iter.Seq[SlotID] {
	slot := s.Get(id)
	return func(yield func(SlotID) bool) {
		for _, childID := range slot.children {
			if s.slots[childID].Info.Hidden {
				continue
			}
			if !yield(childID) {
				return
			}
		}
	}
}
