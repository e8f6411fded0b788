package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drillplan/internal/drills"
	"github.com/abhisek/drillplan/internal/planner"
	"github.com/abhisek/drillplan/internal/season"
	"github.com/abhisek/drillplan/internal/store"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DRILLPLAN_CONFIG", "DRILLPLAN_SEASON_START", "DRILLPLAN_SEASON_END",
		"DRILLPLAN_SCHEDULE_START", "DRILLPLAN_SCHEDULE_END", "DRILLPLAN_CATALOG",
		"DRILLPLAN_LOG_LEVEL", "DRILLPLAN_LOG_FILE",
	} {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	clearEnv(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func testStore(t *testing.T) *store.Store {
	t.Helper()
	sessions, err := planner.Generate(season.Default(), drills.Default())
	require.NoError(t, err)
	return store.New(sessions)
}

func TestFindSession(t *testing.T) {
	st := testStore(t)

	byID, err := findSession(st, "session-0")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-19", byID.Date)

	byDate, err := findSession(st, "2026-01-21")
	require.NoError(t, err)
	assert.Equal(t, "session-1", byDate.ID)

	_, err = findSession(st, "2026-01-20")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	_, err = findSession(st, "nope")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestResolveToday(t *testing.T) {
	c := &cobra.Command{}
	c.Flags().String("today", "", "")

	got, err := resolveToday(c)
	require.NoError(t, err)
	assert.Len(t, got, len("2006-01-02"))

	require.NoError(t, c.Flags().Set("today", "2026-3-4"))
	_, err = resolveToday(c)
	assert.Error(t, err)

	require.NoError(t, c.Flags().Set("today", "2026-03-04"))
	got, err = resolveToday(c)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-04", got)
}

func TestDatesCommand(t *testing.T) {
	out := execute(t, "dates", "--from", "2026-03-09", "--to", "2026-03-22", "--today", "2026-03-01")

	assert.Contains(t, out, "2026-03-09  Monday")
	assert.Contains(t, out, "2026-03-11  Wednesday  Pre-Season")
	assert.Contains(t, out, "2026-03-16  Monday     Competitive Season")
	assert.Contains(t, out, "4 training dates")
}

func TestSessionsCommand_Past(t *testing.T) {
	out := execute(t, "sessions", "--view", "past", "--limit", "2", "--json=false", "--today", "2026-01-28")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "2026-01-26")
	assert.Contains(t, lines[1], "2026-01-21")
}

func TestShowCommand(t *testing.T) {
	out := execute(t, "show", "2026-01-19", "--today", "2026-01-01")

	assert.Contains(t, out, "ID:          session-0")
	assert.Contains(t, out, "Phase:       Pre-Season")
	assert.Contains(t, out, "Total:")
}

func useDemoProvider(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DRILLPLAN_LLM_MODEL", "DRILLPLAN_LLM_TIMEOUT", "DRILLPLAN_LLM_MAX_TOKENS", "DRILLPLAN_LLM_MAX_ATTEMPTS"} {
		t.Setenv(k, "")
	}
	t.Setenv("DRILLPLAN_LLM_PROVIDER", "mock")
}

func TestSuggestCommand_DryRun(t *testing.T) {
	useDemoProvider(t)
	out := execute(t, "suggest", "session-0", "--dry-run", "--today", "2026-01-01")

	assert.Contains(t, out, "1. Kick-in rehearsal  [20 min, Medium, Set-Piece]")
	assert.Contains(t, out, "3. Transition 4v4 small-sided")
	assert.Contains(t, out, "Video: ")
	assert.NotContains(t, out, "ID:")
}

func TestSuggestCommand_PrintsReplacedSession(t *testing.T) {
	useDemoProvider(t)
	out := execute(t, "suggest", "2026-01-19", "--dry-run=false", "--today", "2026-01-01")

	assert.Contains(t, out, "ID:          session-0")
	assert.Contains(t, out, "2. Pivot hold-up 3v2  [25 min, High, Tactical]")
	assert.Contains(t, out, "Total: 75 min")
}
