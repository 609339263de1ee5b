package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/idursun/ganache/internal/ui/gui"
	"github.com/sahilm/fuzzy"
)

// jump reads a query in the status line and focuses the focusable widget
// whose label matches it best.
type jump struct {
	input   textinput.Model
	source  targets
	matches fuzzy.Matches
}

func newJump(source targets) (*jump, tea.Cmd) {
	input := textinput.New()
	input.Prompt = "jump: "
	input.Placeholder = "type a label"
	cmd := input.Focus()
	return &jump{input: input, source: source}, cmd
}

func (j *jump) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	j.input, cmd = j.input.Update(msg)
	j.search(j.input.Value())
	return cmd
}

func (j *jump) search(query string) {
	query = strings.TrimSpace(query)
	j.matches = fuzzy.Matches{}
	if query == "" {
		return
	}
	j.matches = fuzzy.FindFrom(query, j.source)
}

// best returns the slot of the highest scoring match.
func (j *jump) best() (gui.SlotID, bool) {
	if len(j.matches) == 0 {
		return 0, false
	}
	return j.source[j.matches[0].Index].slot, true
}

// others returns the slots of the remaining matches, best first.
func (j *jump) others() []gui.SlotID {
	var slots []gui.SlotID
	for _, match := range j.matches[min(1, len(j.matches)):] {
		slots = append(slots, j.source[match.Index].slot)
	}
	return slots
}

func (j *jump) Query() string {
	return j.input.Value()
}

func (j *jump) View() string {
	return j.input.View()
}
