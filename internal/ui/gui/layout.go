package gui

import (
	"github.com/idursun/ganache/internal/ui/layout"
	"github.com/idursun/ganache/internal/ui/theme"
)

// LayoutIfNeeded recomputes minimum sizes and bounds of the whole tree when
// anything changed since the previous pass. It reports whether a pass ran.
func (g *Gui[R, S, D, X, E]) LayoutIfNeeded(th *theme.Theme[R, S]) bool {
	if !g.Dirty() {
		return false
	}
	clear(g.minimumSizes)
	root := g.slots.Root()
	g.computeMinimumSize(th, root)
	g.layoutSlot(root)
	g.dirty = false
	g.slots.dirty = false
	return true
}

func (g *Gui[R, S, D, X, E]) computeMinimumSize(th *theme.Theme[R, S], id SlotID) layout.Dimensions {
	slot := g.slots.Get(id)
	for _, childID := range slot.children {
		g.computeMinimumSize(th, childID)
	}
	size := slot.Info.MinimumSize
	if widgetID, ok := slot.WidgetID(); ok {
		w := g.widget(widgetID)
		size = size.Max(w.MinimumSize(MinimumSizeArgs[R, S]{
			SlotID:       id,
			Slots:        g.slots,
			Resources:    th.Resources,
			Style:        g.slotStyle(th, id, w.Kind()),
			MinimumSizes: g.minimumSizes,
		}))
	}
	g.minimumSizes[id] = size
	return size
}

func (g *Gui[R, S, D, X, E]) layoutSlot(id SlotID) {
	slot := g.slots.Get(id)
	if len(slot.children) == 0 {
		return
	}
	parent := slot.Bounds.Size
	for _, childID := range slot.children {
		child := g.slots.Get(childID)
		info := child.Info
		minimum := g.minimumSizes[childID]
		x, width := resolveAxis(parent.Width, info.AnchorLeft, info.AnchorRight,
			info.MarginLeft, info.MarginRight, minimum.Width, info.GrowX)
		y, height := resolveAxis(parent.Height, info.AnchorTop, info.AnchorBottom,
			info.MarginTop, info.MarginBottom, minimum.Height, info.GrowY)
		child.Bounds = layout.NewBounds(x, y, width, height)
	}
	if widgetID, ok := slot.WidgetID(); ok {
		g.widget(widgetID).LayoutChildren(LayoutChildrenArgs{
			SlotID:       id,
			Slots:        g.slots,
			MinimumSizes: g.minimumSizes,
		})
	}
	for _, childID := range slot.children {
		g.layoutSlot(childID)
	}
}

// resolveAxis places a child on one axis of a parent of the given extent
// and returns the child's origin and extent.
func resolveAxis(parent layout.Scalar, anchorLead, anchorTrail float32, marginLead, marginTrail, minimum layout.Scalar, grow GrowDirection) (layout.Scalar, layout.Scalar) {
	lead := layout.Scalar(float32(parent)*anchorLead) + marginLead
	trail := layout.Scalar(float32(parent)*anchorTrail) + marginTrail
	extent := trail - lead
	if minimum > extent {
		deficit := minimum - extent
		switch grow {
		case GrowBegin:
			lead -= deficit
		case GrowBoth:
			lead -= deficit / 2
		}
		extent = minimum
	}
	return lead, extent
}
