package ui

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"github.com/idursun/ganache/internal/config"
	"github.com/idursun/ganache/internal/ui/boxlayout"
	"github.com/idursun/ganache/internal/ui/gui"
	"github.com/idursun/ganache/internal/ui/layout"
	"github.com/idursun/ganache/internal/ui/widgets"
)

// target is a focusable widget reachable from jump mode.
type target struct {
	slot  gui.SlotID
	label string
}

// tree is the demo screen: a bordered main panel holding a split pane with
// buttons on one side and checkboxes on the other, a status line below it
// and a help overlay on top listing one key group per label.
type tree struct {
	main       gui.WidgetHandle[*widgets.Panel]
	split      gui.SlotID
	checkboxes []gui.WidgetHandle[*widgets.Checkbox]
	status     gui.SlotID
	statusText gui.WidgetHandle[*widgets.Label]
	help       gui.SlotID
	targets    targets
}

func expanding() gui.SlotInfo {
	info := gui.DefaultSlotInfo()
	info.ExpandX = true
	info.ExpandY = true
	return info
}

func buildTree(g *widgets.Gui, c *config.Config, keys KeyMap) *tree {
	t := &tree{}
	padding := layout.Scalar(c.UI.Padding)
	spacing := layout.Scalar(c.UI.Spacing)
	root := g.RootSlotID()

	mainInfo := gui.FullSlotInfo()
	mainInfo.MarginBottom = -1
	mainSlot, main := gui.AddSlotWithWidget(g, root, mainInfo, &widgets.Panel{
		Layout: boxlayout.Vertical(0, 0),
		Title:  "ganache",
		Border: true,
	})
	t.main = main

	split, _ := gui.AddSlotWithWidget(g, mainSlot, expanding(),
		widgets.NewSplitPane(layout.Horizontal, c.UI.SplitPercent, c.UI.SplitStep))
	t.split = split
	t.targets = append(t.targets, target{slot: split, label: "split"})

	actions, _ := gui.AddSlotWithWidget(g, split, expanding(), &widgets.Panel{
		Layout: boxlayout.Vertical(padding, spacing),
		Title:  "Actions",
		Border: true,
	})
	for _, label := range []string{"Save", "Reload", "Reset"} {
		slot, _ := gui.AddSlotWithWidget(g, actions, gui.DefaultSlotInfo(), &widgets.Button{Label: label})
		t.targets = append(t.targets, target{slot: slot, label: label})
	}

	options, _ := gui.AddSlotWithWidget(g, split, expanding(), &widgets.Panel{
		Layout: boxlayout.Vertical(padding, spacing),
		Title:  "Options",
		Border: true,
	})
	for _, label := range []string{"Wrap lines", "Show hidden", "Follow"} {
		slot, checkbox := gui.AddSlotWithWidget(g, options, gui.DefaultSlotInfo(), &widgets.Checkbox{Label: label})
		t.checkboxes = append(t.checkboxes, checkbox)
		t.targets = append(t.targets, target{slot: slot, label: label})
	}

	statusInfo := gui.FullSlotInfo()
	statusInfo.AnchorTop = 1
	statusInfo.MarginTop = -1
	t.status, t.statusText = gui.AddSlotWithWidget(g, root, statusInfo, &widgets.Label{Class: kindStatus})

	helpInfo := gui.DefaultSlotInfo()
	helpInfo.Hidden = true
	helpInfo.AnchorLeft, helpInfo.AnchorRight = 0.5, 0.5
	helpInfo.AnchorTop, helpInfo.AnchorBottom = 0.5, 0.5
	helpInfo.GrowX, helpInfo.GrowY = gui.GrowBoth, gui.GrowBoth
	helpSlot, _ := gui.AddSlotWithWidget(g, root, helpInfo, &widgets.Panel{
		Layout: boxlayout.Vertical(1, 1),
		Title:  "Help",
		Border: true,
		Layer:  10,
	})
	t.help = helpSlot
	h := help.New()
	for _, group := range keys.FullHelp() {
		text := h.FullHelpView([][]key.Binding{group})
		gui.AddSlotWithWidget(g, helpSlot, gui.DefaultSlotInfo(), &widgets.Label{Text: text})
	}
	return t
}

// targets is a fuzzy.Source over the target labels.
type targets []target

func (ts targets) Len() int            { return len(ts) }
func (ts targets) String(i int) string { return ts[i].label }
