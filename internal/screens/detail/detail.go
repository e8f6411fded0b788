package detail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillplan/internal/augment"
	"github.com/abhisek/drillplan/internal/planner"
	"github.com/abhisek/drillplan/internal/router"
	"github.com/abhisek/drillplan/internal/screen"
	"github.com/abhisek/drillplan/internal/season"
	"github.com/abhisek/drillplan/internal/store"
	"github.com/abhisek/drillplan/internal/ui/components"
	"github.com/abhisek/drillplan/internal/ui/layout"
	"github.com/abhisek/drillplan/internal/ui/theme"
)

// Augmenter replaces a session's exercises with AI suggestions.
type Augmenter interface {
	Augment(ctx context.Context, sessionID string) ([]planner.Exercise, error)
	Busy(sessionID string) bool
}

// AugmentedMsg reports the outcome of an augment request. It is exported
// so the calendar can refresh when the request finishes after the detail
// screen was closed.
type AugmentedMsg struct {
	SessionID string
	Exercises []planner.Exercise
	Err       error
}

// DetailScreen shows one session with its exercises and offers to
// replace them with AI suggestions.
type DetailScreen struct {
	store     *store.Store
	augmenter Augmenter
	season    season.Season
	id        string

	session planner.Session
	errMsg  string
	notice  string
	failed  bool
	busy    bool
	spinner spinner.Model
	button  components.Button
	offset  int
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a DetailScreen for the session with the given id.
// A nil augmenter disables AI suggestions.
func New(st *store.Store, aug Augmenter, ssn season.Season, id string) *DetailScreen {
	s := &DetailScreen{
		store:     st,
		augmenter: aug,
		season:    ssn,
		id:        id,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
	s.button = components.NewButton("Ask AI for new drills", "a", true, s.ask)
	s.reload()
	return s
}

func (s *DetailScreen) reload() {
	sess, err := s.store.Get(s.id)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.session = sess
}

func (s *DetailScreen) Init() tea.Cmd {
	// A request started from an earlier visit may still be running.
	if s.augmenter != nil && s.augmenter.Busy(s.id) {
		s.busy = true
		return s.spinner.Tick
	}
	return nil
}

func (s *DetailScreen) Title() string {
	return "Session " + s.session.Date
}

// Busy reports whether an AI request for this session is in flight.
func (s *DetailScreen) Busy() bool {
	return s.busy
}

// Session returns the session as currently displayed.
func (s *DetailScreen) Session() planner.Session {
	return s.session
}

func (s *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "a", Description: "Ask AI"},
		{Key: "n/p", Description: "Next/Prev"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case AugmentedMsg:
		if msg.SessionID != s.id {
			return s, nil
		}
		s.busy = false
		return s, s.handleResult(msg)

	case spinner.TickMsg:
		if !s.busy {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
			return s, nil
		case "down", "j":
			s.offset++
			return s, nil
		case "n":
			return s, s.step(1)
		case "p":
			return s, s.step(-1)
		}

		s.button.Active = s.errMsg == "" && !s.busy
		var cmd tea.Cmd
		s.button, cmd = s.button.Update(msg)
		return s, cmd
	}
	return s, nil
}

// step swaps this screen for the session delta places away in calendar
// order. It is a no-op at either end of the season.
func (s *DetailScreen) step(delta int) tea.Cmd {
	all := s.store.All()
	for i, sess := range all {
		if sess.ID != s.id {
			continue
		}
		j := i + delta
		if j < 0 || j >= len(all) {
			return nil
		}
		next := New(s.store, s.augmenter, s.season, all[j].ID)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return nil
}

func (s *DetailScreen) ask() tea.Cmd {
	if s.errMsg != "" || s.busy {
		return nil
	}
	if s.augmenter == nil {
		s.failed = true
		s.notice = "AI suggestions are off. Set GEMINI_API_KEY and restart."
		return nil
	}

	s.busy = true
	s.notice = ""
	s.failed = false

	aug, id := s.augmenter, s.id
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		exercises, err := aug.Augment(context.Background(), id)
		return AugmentedMsg{SessionID: id, Exercises: exercises, Err: err}
	})
}

// handleResult applies a finished request. A busy rejection means an
// earlier request is still running; keep spinning until it reports back.
func (s *DetailScreen) handleResult(msg AugmentedMsg) tea.Cmd {
	var ext *augment.ExternalServiceError
	switch {
	case msg.Err == nil:
		s.reload()
		s.failed = false
		s.notice = fmt.Sprintf("Replaced with %d AI suggestions.", len(msg.Exercises))
	case errors.Is(msg.Err, augment.ErrBusy):
		s.busy = true
		return s.spinner.Tick
	case errors.As(msg.Err, &ext) && ext.Err != nil:
		s.failed = true
		s.notice = "Could not get suggestions: " + ext.Err.Error()
	default:
		s.failed = true
		s.notice = "Could not get suggestions: " + msg.Err.Error()
	}
	return nil
}

func (s *DetailScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}

	lines := strings.Split(s.body(width), "\n")
	if height <= 0 || len(lines) <= height {
		s.offset = 0
		return strings.Join(lines, "\n")
	}

	maxOffset := len(lines) - height
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	return strings.Join(lines[s.offset:s.offset+height], "\n")
}

func (s *DetailScreen) body(width int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	sess := s.session

	var b strings.Builder
	b.WriteString("\n")

	weekday := ""
	if day, err := sess.Day(); err == nil {
		weekday = day.Format("Monday") + " "
	}
	b.WriteString("  " + theme.Title.Render(weekday+sess.Date))
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("   %s-%s   %s", sess.StartTime, sess.EndTime, sess.Status)))
	b.WriteString("\n")
	b.WriteString("  " + theme.Body.Render(sess.Theme) + "\n")
	b.WriteString("  " + theme.Subtitle.Render(sess.Microcycle) + "\n\n")

	bar := components.NewLoadBar("Load", sess.LoadLevel, planner.MaxLoadLevel, min(inner, 50))
	b.WriteString("  " + bar.View())
	b.WriteString(theme.Subtitle.Render("  " + string(planner.BandFor(sess.LoadLevel))))
	b.WriteString("\n\n")

	if phase, ok := s.phase(); ok {
		card := theme.Card.Width(inner).Render(
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(phase.Name) + "\n" +
				theme.Body.Render(phase.Directive))
		b.WriteString(indent(card, 2))
		b.WriteString("\n\n")
	}

	for i, ex := range sess.Exercises {
		b.WriteString(s.renderExercise(i, ex, inner))
		b.WriteString("\n")
	}
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  Total %d min", sess.TotalMinutes())))
	b.WriteString("\n\n")

	switch {
	case s.busy:
		b.WriteString("  " + s.spinner.View() + theme.Subtitle.Render(" Asking the assistant for fresh drills..."))
	case s.notice != "" && s.failed:
		b.WriteString("  " + theme.Notice.Render(s.notice))
	case s.notice != "":
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Success).Render(s.notice))
	default:
		btn := s.button
		btn.Active = s.augmenter != nil
		b.WriteString("  " + btn.View())
	}
	b.WriteString("\n")

	return b.String()
}

func (s *DetailScreen) phase() (season.Phase, bool) {
	day, err := s.session.Day()
	if err != nil {
		return season.Phase{}, false
	}
	return s.season.PhaseFor(day)
}

func (s *DetailScreen) renderExercise(i int, ex planner.Exercise, width int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("  %d. %s", i+1, ex.Title))
	intensity := lipgloss.NewStyle().Foreground(theme.IntensityColor(string(ex.Intensity))).
		Render(string(ex.Intensity))
	meta := theme.Subtitle.Render(fmt.Sprintf("  %d min · ", ex.Duration)) + intensity +
		theme.Subtitle.Render(" · "+string(ex.Category))
	b.WriteString(title + meta + "\n")

	if ex.Description != "" {
		desc := lipgloss.NewStyle().Foreground(theme.TextDim).Width(width - 3).Render(ex.Description)
		b.WriteString(indent(desc, 5) + "\n")
	}
	if u := ex.VideoURL(); u != "" {
		b.WriteString(theme.Hint.Render("     ▶ "+u) + "\n")
	}
	return b.String()
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
