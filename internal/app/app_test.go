package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/drillplan/internal/drills"
	"github.com/abhisek/drillplan/internal/planner"
	"github.com/abhisek/drillplan/internal/season"
	"github.com/abhisek/drillplan/internal/store"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	sessions, err := planner.Generate(season.Default(), drills.Default())
	if err != nil {
		t.Fatalf("generating sessions: %v", err)
	}
	return Options{
		Store:  store.New(sessions),
		Season: season.Default(),
		Today:  "2026-02-02",
	}
}

func TestAppModel_HeaderShowsPhase(t *testing.T) {
	m := newAppModel(testOptions(t))
	if m.phase != "Pre-Season" {
		t.Errorf("phase = %q, want Pre-Season", m.phase)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := updated.(AppModel).View()
	if view.Content == nil {
		t.Fatal("expected rendered content")
	}
}

func TestAppModel_FooterUsesScreenHints(t *testing.T) {
	m := newAppModel(testOptions(t))
	hints := m.footerHints(m.router.Active())

	var keys []string
	for _, h := range hints {
		keys = append(keys, h.Key)
	}
	joined := strings.Join(keys, " ")
	if !strings.Contains(joined, "/") || !strings.HasSuffix(joined, "Ctrl+C") {
		t.Errorf("unexpected footer keys %q", joined)
	}
}

func TestAppModel_EscPopsDetail(t *testing.T) {
	m := newAppModel(testOptions(t))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	m.Update(cmd())
	if m.router.Depth() != 2 {
		t.Fatalf("expected detail on top, depth %d", m.router.Depth())
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m.Update(cmd())
	if m.router.Depth() != 1 {
		t.Errorf("expected calendar after Esc, depth %d", m.router.Depth())
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions(t))
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}
