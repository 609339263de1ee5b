package boxlayout

import (
	"iter"
	"slices"

	"github.com/idursun/ganache/internal/ui/gui"
	"github.com/idursun/ganache/internal/ui/layout"
)

// Split divides a slot between its first two visible children along Axis.
// Percent is the share of the secondary (second) child; the primary child
// gets the rest. Gap cells separate the two children. Further children are
// left where the anchors put them.
type Split struct {
	Axis       layout.Axis
	Gap        layout.Scalar
	Percent    float64 // 0-100, share of the secondary child
	MinPercent float64
	MaxPercent float64
}

// NewSplit creates a Split with the given secondary share, clamped to 10..95.
func NewSplit(axis layout.Axis, percent float64) *Split {
	s := &Split{
		Axis:       axis,
		Percent:    percent,
		MinPercent: 10,
		MaxPercent: 95,
	}
	s.clamp()
	return s
}

// Expand grows the secondary child by delta percent.
func (s *Split) Expand(delta float64) {
	s.Percent += delta
	s.clamp()
}

// Shrink shrinks the secondary child by delta percent.
func (s *Split) Shrink(delta float64) {
	s.Percent -= delta
	s.clamp()
}

// DragTo moves the divider to a point given in the split slot's own
// coordinates. It reports whether the percentage changed.
func (s *Split) DragTo(size layout.Dimensions, x, y layout.Scalar) bool {
	old := s.Percent
	shared := size.Along(s.Axis) - s.Gap
	if shared <= 0 {
		return false
	}
	position := x
	if s.Axis == layout.Vertical {
		position = y
	}
	// the divider starts at position, the secondary child after the gap
	s.Percent = float64(shared-position) * 100 / float64(shared)
	s.clamp()
	return s.Percent != old
}

func (s *Split) MinimumSize(slots *gui.Slots, id gui.SlotID, minimumSizes map[gui.SlotID]layout.Dimensions) layout.Dimensions {
	var along, across layout.Scalar
	n := 0
	for childID := range s.arranged(slots, id) {
		minimum := minimumSizes[childID]
		along += minimum.Along(s.Axis)
		across = max(across, minimum.Across(s.Axis))
		n++
	}
	if n == 2 {
		along += s.Gap
	}
	return dimensionsAlong(s.Axis, along, across)
}

func (s *Split) LayoutChildren(args gui.LayoutChildrenArgs) {
	children := slices.Collect(s.arranged(args.Slots, args.SlotID))
	if len(children) == 0 {
		return
	}
	parent := args.Slots.Get(args.SlotID).Bounds.Size
	extent := parent.Along(s.Axis)
	across := parent.Across(s.Axis)
	if len(children) == 1 {
		args.Slots.GetMut(children[0]).Bounds = boundsAlong(s.Axis, 0, 0, extent, across)
		return
	}

	secondary := layout.Scalar(float64(extent-s.Gap) * s.Percent / 100)
	secondary = max(secondary, args.MinimumSizes[children[1]].Along(s.Axis))
	primary := max(extent-s.Gap-secondary, args.MinimumSizes[children[0]].Along(s.Axis))
	args.Slots.GetMut(children[0]).Bounds = boundsAlong(s.Axis, 0, 0, primary, across)
	args.Slots.GetMut(children[1]).Bounds = boundsAlong(s.Axis, primary+s.Gap, 0, secondary, across)
}

func (s *Split) arranged(slots *gui.Slots, id gui.SlotID) iter.Seq[gui.SlotID] {
	return func(yield func(gui.SlotID) bool) {
		n := 0
		for childID := range slots.VisibleChildren(id) {
			if n == 2 || !yield(childID) {
				return
			}
			n++
		}
	}
}

func (s *Split) clamp() {
	s.Percent = min(max(s.Percent, s.MinPercent), s.MaxPercent)
}
