package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/drillplan/internal/ui/theme"
)

// Tabs is a horizontal tab strip. Tab and the left/right keys cycle it.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates a tab strip with the first tab active.
func NewTabs(labels ...string) Tabs {
	return Tabs{Labels: labels}
}

// Update handles tab switching. The bool reports whether the active tab changed.
func (t Tabs) Update(msg tea.Msg) (Tabs, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(t.Labels) == 0 {
		return t, false
	}

	prev := t.Active
	switch kmsg.String() {
	case "tab", "right", "l":
		t.Active = (t.Active + 1) % len(t.Labels)
	case "shift+tab", "left", "h":
		t.Active = (t.Active - 1 + len(t.Labels)) % len(t.Labels)
	}
	return t, t.Active != prev
}

// View renders the tab strip.
func (t Tabs) View() string {
	parts := make([]string, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Active {
			parts[i] = theme.TabActive.Render(label)
		} else {
			parts[i] = theme.TabInactive.Render(label)
		}
	}
	return strings.Join(parts, " ")
}
