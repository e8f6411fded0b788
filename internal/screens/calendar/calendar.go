package calendar

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillplan/internal/planner"
	"github.com/abhisek/drillplan/internal/router"
	"github.com/abhisek/drillplan/internal/screen"
	"github.com/abhisek/drillplan/internal/screens/detail"
	"github.com/abhisek/drillplan/internal/season"
	"github.com/abhisek/drillplan/internal/store"
	"github.com/abhisek/drillplan/internal/ui/components"
	"github.com/abhisek/drillplan/internal/ui/layout"
	"github.com/abhisek/drillplan/internal/ui/theme"
)

var views = []store.View{store.ViewUpcoming, store.ViewPast}

// CalendarScreen lists sessions split into upcoming and past tabs.
type CalendarScreen struct {
	store     *store.Store
	augmenter detail.Augmenter
	season    season.Season
	today     string

	tabs     components.Tabs
	sessions []planner.Session
	menu     components.Menu

	jumping bool
	input   components.TextInput
}

var _ screen.Screen = (*CalendarScreen)(nil)
var _ screen.KeyHintProvider = (*CalendarScreen)(nil)
var _ screen.Resumer = (*CalendarScreen)(nil)

// New creates a CalendarScreen. today is a YYYY-MM-DD date that splits
// the upcoming and past tabs.
func New(st *store.Store, aug detail.Augmenter, ssn season.Season, today string) *CalendarScreen {
	s := &CalendarScreen{
		store:     st,
		augmenter: aug,
		season:    ssn,
		today:     today,
		tabs:      components.NewTabs("Upcoming", "Past"),
		input:     components.NewDateInput(),
	}
	s.load(0)
	return s
}

func (s *CalendarScreen) Init() tea.Cmd {
	return nil
}

func (s *CalendarScreen) Title() string {
	return "Training Calendar"
}

// Resume reloads the list so changes made from the detail screen show up.
func (s *CalendarScreen) Resume() tea.Cmd {
	s.load(s.menu.Selected)
	return nil
}

// ActiveView returns which list is showing.
func (s *CalendarScreen) ActiveView() store.View {
	return views[s.tabs.Active]
}

// Sessions returns the sessions in the active tab, in display order.
func (s *CalendarScreen) Sessions() []planner.Session {
	return s.sessions
}

// Selected returns the highlighted session, if any.
func (s *CalendarScreen) Selected() (planner.Session, bool) {
	if len(s.sessions) == 0 {
		return planner.Session{}, false
	}
	return s.sessions[s.menu.Selected], true
}

func (s *CalendarScreen) KeyHints() []layout.KeyHint {
	if s.jumping {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Upcoming/Past"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "/", Description: "Jump to date"},
		{Key: "q", Description: "Quit"},
	}
}

// load refreshes the active tab from the store and selects index sel.
func (s *CalendarScreen) load(sel int) {
	s.sessions = s.store.Filter(s.ActiveView(), s.today)

	items := make([]components.MenuItem, len(s.sessions))
	for i, sess := range s.sessions {
		id := sess.ID
		items[i] = components.MenuItem{
			Label: s.row(sess),
			Action: func() tea.Cmd {
				return s.open(id)
			},
		}
	}

	height := s.menu.Height
	s.menu = components.NewMenu(items)
	s.menu.Height = height
	s.menu.Select(sel)
}

func (s *CalendarScreen) open(id string) tea.Cmd {
	d := detail.New(s.store, s.augmenter, s.season, id)
	return func() tea.Msg { return router.PushScreenMsg{Screen: d} }
}

func (s *CalendarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case detail.AugmentedMsg:
		// Finished after its detail screen was closed.
		if msg.Err == nil {
			s.load(s.menu.Selected)
		}
		return s, nil

	case tea.KeyMsg:
		if s.jumping {
			return s, s.updateJump(msg)
		}

		switch msg.String() {
		case "q":
			return s, tea.Quit
		case "/":
			s.jumping = true
			s.input.Reset()
			return s, s.input.Init()
		}

		var changed bool
		if s.tabs, changed = s.tabs.Update(msg); changed {
			s.load(0)
			return s, nil
		}

		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *CalendarScreen) updateJump(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.jumping = false
		return nil
	case "enter":
		if s.JumpTo(s.input.Value()) {
			s.jumping = false
			return nil
		}
		s.input.Submit(false)
		return nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// JumpTo selects the session nearest to date: the first one on or after
// it when date is today or later, otherwise the latest one on or before
// it in the past tab. It returns false when date does not parse.
func (s *CalendarScreen) JumpTo(date string) bool {
	d, err := season.ParseDate(date)
	if err != nil {
		return false
	}
	date = season.FormatDate(d)

	if date >= s.today {
		s.tabs.Active = 0
	} else {
		s.tabs.Active = 1
	}
	s.load(0)

	for i, sess := range s.sessions {
		if s.ActiveView() == store.ViewUpcoming && sess.Date >= date {
			s.menu.Select(i)
			return true
		}
		if s.ActiveView() == store.ViewPast && sess.Date <= date {
			s.menu.Select(i)
			return true
		}
	}
	s.menu.Select(len(s.sessions) - 1)
	return true
}

func (s *CalendarScreen) row(sess planner.Session) string {
	weekday := "   "
	if day, err := sess.Day(); err == nil {
		weekday = day.Format("Mon")
	}
	return fmt.Sprintf("%s %s  %s-%s  L%d  %s",
		weekday, sess.Date, sess.StartTime, sess.EndTime, sess.LoadLevel, sess.Theme)
}

func (s *CalendarScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(s.tabs.View())
	b.WriteString("\n\n")

	if s.jumping {
		b.WriteString("  " + theme.Subtitle.Render("Jump to ") + s.input.View() + "\n\n")
	} else if p, ok := s.currentPhase(); ok {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Accent).Render(p.Name) +
			theme.Subtitle.Render("  "+p.Description) + "\n\n")
	}

	if len(s.sessions) == 0 {
		msg := "No upcoming sessions. The season is over."
		if s.ActiveView() == store.ViewPast {
			msg = "No past sessions yet."
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n" + msg))
		return b.String()
	}

	s.menu.Height = max(height-lipgloss.Height(b.String())-2, 3)
	s.menu.Select(s.menu.Selected)
	b.WriteString(s.menu.View())

	return b.String()
}

// currentPhase is the phase of the highlighted session.
func (s *CalendarScreen) currentPhase() (season.Phase, bool) {
	sess, ok := s.Selected()
	if !ok {
		return season.Phase{}, false
	}
	day, err := sess.Day()
	if err != nil {
		return season.Phase{}, false
	}
	return s.season.PhaseFor(day)
}
