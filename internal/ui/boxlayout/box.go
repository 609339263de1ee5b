// Package boxlayout contains child arrangement strategies for container
// widgets: a padded stack along one axis and a two-way resizable split.
package boxlayout

import (
	"cmp"
	"slices"

	"github.com/idursun/ganache/internal/ui/gui"
	"github.com/idursun/ganache/internal/ui/layout"
)

// Settings stacks the visible children of a slot along Axis, with Padding
// at both ends and ChildSpacing between neighbours.
type Settings struct {
	Axis         layout.Axis
	Padding      layout.Scalar
	ChildSpacing layout.Scalar
}

func Horizontal(padding, spacing layout.Scalar) Settings {
	return Settings{Axis: layout.Horizontal, Padding: padding, ChildSpacing: spacing}
}

func Vertical(padding, spacing layout.Scalar) Settings {
	return Settings{Axis: layout.Vertical, Padding: padding, ChildSpacing: spacing}
}

// MinimumSize sums the children's minimums along the axis and takes their
// maximum across it, adding padding and spacing.
func (s Settings) MinimumSize(slots *gui.Slots, id gui.SlotID, minimumSizes map[gui.SlotID]layout.Dimensions) layout.Dimensions {
	var along, across layout.Scalar
	n := 0
	for childID := range slots.VisibleChildren(id) {
		minimum := minimumSizes[childID]
		along += minimum.Along(s.Axis)
		across = max(across, minimum.Across(s.Axis))
		n++
	}
	along += s.spacing(n) + 2*s.Padding
	across += 2 * s.Padding
	return dimensionsAlong(s.Axis, along, across)
}

// LayoutChildren sets the bounds of the visible children of args.SlotID.
//
// Children that do not expand along the axis get their minimum size. The
// expanding ones share what is left equally, except that any child whose
// minimum is larger than its share keeps its minimum and drops out of the
// sharing. Candidates are checked from the largest minimum down.
func (s Settings) LayoutChildren(args gui.LayoutChildrenArgs) {
	slots := args.Slots
	children := slices.Collect(slots.VisibleChildren(args.SlotID))
	if len(children) == 0 {
		return
	}
	parent := slots.Get(args.SlotID).Bounds.Size
	minimum := func(i int) layout.Dimensions {
		return args.MinimumSizes[children[i]]
	}

	available := parent.Along(s.Axis) - 2*s.Padding - s.spacing(len(children))
	sizes := make([]layout.Scalar, len(children))
	var expanding []int
	for i, childID := range children {
		if expands(slots.Get(childID).Info, s.Axis) {
			expanding = append(expanding, i)
			continue
		}
		sizes[i] = minimum(i).Along(s.Axis)
		available -= sizes[i]
	}

	slices.SortStableFunc(expanding, func(a, b int) int {
		return cmp.Compare(minimum(b).Along(s.Axis), minimum(a).Along(s.Axis))
	})
	for len(expanding) > 0 {
		i := expanding[0]
		share := available / layout.Scalar(len(expanding))
		if minimum(i).Along(s.Axis) <= share {
			break
		}
		sizes[i] = minimum(i).Along(s.Axis)
		available -= sizes[i]
		expanding = expanding[1:]
	}
	if len(expanding) > 0 {
		share := max(available/layout.Scalar(len(expanding)), 0)
		for _, i := range expanding {
			sizes[i] = max(share, minimum(i).Along(s.Axis))
		}
	}

	crossExtent := parent.Across(s.Axis) - 2*s.Padding
	position := s.Padding
	for i, childID := range children {
		slot := slots.GetMut(childID)
		across := minimum(i).Across(s.Axis)
		if expands(slot.Info, s.Axis.Cross()) {
			across = max(crossExtent, across)
		}
		slot.Bounds = boundsAlong(s.Axis, position, s.Padding, sizes[i], across)
		position += sizes[i] + s.ChildSpacing
	}
}

func (s Settings) spacing(n int) layout.Scalar {
	if n <= 1 {
		return 0
	}
	return s.ChildSpacing * layout.Scalar(n-1)
}

func expands(info gui.SlotInfo, axis layout.Axis) bool {
	if axis == layout.Horizontal {
		return info.ExpandX
	}
	return info.ExpandY
}

func dimensionsAlong(axis layout.Axis, along, across layout.Scalar) layout.Dimensions {
	if axis == layout.Horizontal {
		return layout.NewDimensions(along, across)
	}
	return layout.NewDimensions(across, along)
}

func boundsAlong(axis layout.Axis, position, crossPosition, along, across layout.Scalar) layout.Bounds {
	if axis == layout.Horizontal {
		return layout.NewBounds(position, crossPosition, along, across)
	}
	return layout.NewBounds(crossPosition, position, across, along)
}
