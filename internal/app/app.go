package app

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillplan/internal/logging"
	"github.com/abhisek/drillplan/internal/router"
	"github.com/abhisek/drillplan/internal/screen"
	"github.com/abhisek/drillplan/internal/screens/calendar"
	"github.com/abhisek/drillplan/internal/screens/detail"
	"github.com/abhisek/drillplan/internal/season"
	"github.com/abhisek/drillplan/internal/store"
	"github.com/abhisek/drillplan/internal/ui/layout"
)

// Options holds the dependencies of the interactive calendar.
type Options struct {
	Store  *store.Store
	Season season.Season

	// Augmenter is nil when no AI provider is configured.
	Augmenter detail.Augmenter

	// Today is the YYYY-MM-DD date that splits upcoming from past.
	Today string

	Logger *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	phase  string
	today  string
	width  int
	height int
}

// newAppModel creates a new AppModel with the calendar screen.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		router: router.New(calendar.New(opts.Store, opts.Augmenter, opts.Season, opts.Today)),
		today:  opts.Today,
	}
	if d, err := season.ParseDate(opts.Today); err == nil {
		if p, ok := opts.Season.PhaseFor(d); ok {
			m.phase = p.Name
		}
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.phase, m.today, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	opts.Logger.InfoContext(ctx, "starting calendar",
		"sessions", opts.Store.Len(), "today", opts.Today, "ai", opts.Augmenter != nil)

	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		opts.Logger.ErrorContext(ctx, "calendar exited", "error", err)
		return fmt.Errorf("running calendar: %w", err)
	}
	return nil
}
