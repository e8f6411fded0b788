package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillplan/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu. When Height is set, only a window
// of Height items around the selection is rendered.
type Menu struct {
	Items    []MenuItem
	Selected int
	Height   int

	offset int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "pgup":
		m.Select(m.Selected - m.page())
	case "pgdown":
		m.Select(m.Selected + m.page())
	case "home", "g":
		m.Select(0)
	case "end", "G":
		m.Select(len(m.Items) - 1)
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	m.scroll()
	return m, nil
}

// Select moves the selection to i, clamped to the item range.
func (m *Menu) Select(i int) {
	if len(m.Items) == 0 {
		m.Selected = 0
		return
	}
	m.Selected = max(0, min(i, len(m.Items)-1))
	m.scroll()
}

// Window returns the half-open range of item indexes currently visible.
func (m Menu) Window() (int, int) {
	if m.Height <= 0 || len(m.Items) <= m.Height {
		return 0, len(m.Items)
	}
	return m.offset, min(m.offset+m.Height, len(m.Items))
}

func (m Menu) page() int {
	if m.Height > 1 {
		return m.Height - 1
	}
	return 10
}

// scroll keeps the selection inside the visible window.
func (m *Menu) scroll() {
	if m.Height <= 0 {
		return
	}
	if m.Selected < m.offset {
		m.offset = m.Selected
	}
	if m.Selected >= m.offset+m.Height {
		m.offset = m.Selected - m.Height + 1
	}
	m.offset = max(0, min(m.offset, len(m.Items)-m.Height))
}

// View renders the visible part of the menu.
func (m Menu) View() string {
	var b strings.Builder
	from, to := m.Window()
	for i := from; i < to; i++ {
		item := m.Items[i]
		if i == m.Selected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ " + item.Label))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + item.Label))
		}
		b.WriteString("\n")
	}
	if from > 0 || to < len(m.Items) {
		b.WriteString(theme.Hint.Render(
			"    ··· " + strconv.Itoa(m.Selected+1) + " of " + strconv.Itoa(len(m.Items))))
		b.WriteString("\n")
	}
	return b.String()
}
