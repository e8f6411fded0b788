package planner

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drillplan/internal/drills"
	"github.com/abhisek/drillplan/internal/season"
)

func generateDefault(t *testing.T) []Session {
	t.Helper()
	sessions, err := Generate(season.Default(), drills.Default())
	require.NoError(t, err)
	return sessions
}

func sessionOn(t *testing.T, sessions []Session, date string) Session {
	t.Helper()
	for _, s := range sessions {
		if s.Date == date {
			return s
		}
	}
	t.Fatalf("no session on %s", date)
	return Session{}
}

func TestGenerate_Deterministic(t *testing.T) {
	first := generateDefault(t)
	second := generateDefault(t)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two runs differ (-first +second):\n%s", diff)
	}
}

func TestGenerate_OneSessionPerTrainingDate(t *testing.T) {
	s := season.Default()
	dates, err := s.TrainingDates()
	require.NoError(t, err)

	sessions := generateDefault(t)
	require.Len(t, sessions, len(dates))
	for i, sess := range sessions {
		assert.Equal(t, season.FormatDate(dates[i]), sess.Date)
		assert.Equal(t, SessionID(i), sess.ID)
		assert.Equal(t, "20:00", sess.StartTime)
		assert.Equal(t, "21:15", sess.EndTime)
		assert.Equal(t, StatusPlanned, sess.Status)
	}
}

func TestGenerate_ExerciseShape(t *testing.T) {
	ssn := season.Default()
	for _, sess := range generateDefault(t) {
		require.Len(t, sess.Exercises, 3, sess.ID)

		day, err := sess.Day()
		require.NoError(t, err)
		want := categoriesFor(ssn.IsPreSeason(day), day.Weekday() == time.Monday)

		ids := make(map[string]bool)
		for pos, ex := range sess.Exercises {
			assert.Equal(t, want[pos], ex.Category, "%s exercise %d", sess.ID, pos)
			assert.Equal(t, []int{15, 25, 30}[pos], ex.Duration, "%s exercise %d", sess.ID, pos)
			assert.NotEmpty(t, ex.Title)
			assert.NotEmpty(t, ex.VideoQuery)
			assert.False(t, ids[ex.ID], "duplicate exercise id %s", ex.ID)
			ids[ex.ID] = true
		}
		assert.Equal(t, 70, sess.TotalMinutes())
	}
}

func TestGenerate_IntensityFollowsLoad(t *testing.T) {
	for _, sess := range generateDefault(t) {
		require.GreaterOrEqual(t, sess.LoadLevel, 1)
		require.LessOrEqual(t, sess.LoadLevel, MaxLoadLevel)

		want := IntensityMedium
		if sess.LoadLevel >= 4 {
			want = IntensityHigh
		}
		for _, ex := range sess.Exercises {
			assert.Equal(t, want, ex.Intensity, "%s load %d", sess.ID, sess.LoadLevel)
		}
	}
}

func TestGenerate_DecisionTable(t *testing.T) {
	sessions := generateDefault(t)

	tests := []struct {
		date       string
		microcycle string
		theme      string
		load       int
	}{
		{"2026-01-19", "Anatomical Adaptation", "Fundamentals and Progressive Activation", 2},
		{"2026-01-28", "Anatomical Adaptation", "Fundamentals and Progressive Activation", 2},
		{"2026-02-02", "Load Accumulation", "Explosive Strength and Basic Tactical Systems", 5},
		{"2026-02-25", "Load Accumulation", "Explosive Strength and Basic Tactical Systems", 5},
		{"2026-03-02", "Special Transformation", "Reaction Speed and Fast Transitions", 4},
		{"2026-03-11", "Special Transformation", "Reaction Speed and Fast Transitions", 4},
		{"2026-03-16", "Recovery / Tactical Adjustment", "Movement Correction and Possession", 3},
		{"2026-03-18", "Fine-Tuning / Competitive Readiness", "Specific Strategies and Set Pieces", 4},
		{"2026-12-30", "Fine-Tuning / Competitive Readiness", "Specific Strategies and Set Pieces", 4},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			sess := sessionOn(t, sessions, tt.date)
			assert.Equal(t, tt.microcycle, sess.Microcycle)
			assert.Equal(t, tt.theme, sess.Theme)
			assert.Equal(t, tt.load, sess.LoadLevel)
		})
	}
}

func TestGenerate_RoundRobinAcrossSessions(t *testing.T) {
	cat := drills.Default()
	sessions := generateDefault(t)

	// First pre-season session takes the head of each pool.
	first := sessions[0]
	assert.Equal(t, cat[drills.CategoryPhysical][0].Title, first.Exercises[0].Title)
	assert.Equal(t, cat[drills.CategoryTechnical][0].Title, first.Exercises[1].Title)
	assert.Equal(t, cat[drills.CategoryTactical][0].Title, first.Exercises[2].Title)

	// Second session moves every cursor by one.
	second := sessions[1]
	assert.Equal(t, cat[drills.CategoryPhysical][1].Title, second.Exercises[0].Title)

	// 16 pre-season sessions consumed 16 technical and tactical drills,
	// so the first Monday of competition wraps back to the head.
	mon := sessionOn(t, sessions, "2026-03-16")
	assert.Equal(t, cat[drills.CategoryTechnical][16%4].Title, mon.Exercises[0].Title)
	assert.Equal(t, cat[drills.CategoryTactical][16%4].Title, mon.Exercises[1].Title)
	assert.Equal(t, cat[drills.CategoryGame][0].Title, mon.Exercises[2].Title)

	wed := sessionOn(t, sessions, "2026-03-18")
	assert.Equal(t, cat[drills.CategorySetPiece][0].Title, wed.Exercises[0].Title)
	assert.Equal(t, cat[drills.CategoryTactical][17%4].Title, wed.Exercises[1].Title)
	assert.Equal(t, cat[drills.CategoryGame][1].Title, wed.Exercises[2].Title)
}

func TestSynthesize_SplitBoundary(t *testing.T) {
	ssn := season.Default()
	// Move the split to Monday 16 March so a training day sits on each side.
	ssn.Phases[0].End = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	ssn.Phases[1].Start = time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ssn.Validate())

	synth := NewSynthesizer(ssn, DefaultSchedule())
	picker, err := drills.NewPicker(drills.Default())
	require.NoError(t, err)

	before, err := synth.Synthesize(time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC), 15, picker)
	require.NoError(t, err)
	assert.Equal(t, drills.CategoryPhysical, before.Exercises[0].Category)

	on, err := synth.Synthesize(time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), 16, picker)
	require.NoError(t, err)
	assert.Equal(t, "Recovery / Tactical Adjustment", on.Microcycle)
	assert.Equal(t, drills.CategoryTechnical, on.Exercises[0].Category)
}

func TestSynthesize_RejectsNonTrainingDay(t *testing.T) {
	synth := NewSynthesizer(season.Default(), DefaultSchedule())
	picker, err := drills.NewPicker(drills.Default())
	require.NoError(t, err)

	_, err = synth.Synthesize(time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), 0, picker)
	require.Error(t, err)
	assert.Equal(t, 0, picker.Count(drills.CategoryPhysical), "picker must not advance")
}

func TestSynthesize_ExerciseIDs(t *testing.T) {
	synth := NewSynthesizer(season.Default(), Schedule{StartTime: "18:30", EndTime: "19:45"})
	picker, err := drills.NewPicker(drills.Default())
	require.NoError(t, err)

	sess, err := synth.Synthesize(time.Date(2026, time.January, 21, 0, 0, 0, 0, time.UTC), 1, picker)
	require.NoError(t, err)
	assert.Equal(t, "session-1", sess.ID)
	assert.Equal(t, "18:30", sess.StartTime)
	assert.Equal(t, "19:45", sess.EndTime)
	assert.Equal(t, []string{"ex-1-0", "ex-1-1", "ex-1-2"},
		[]string{sess.Exercises[0].ID, sess.Exercises[1].ID, sess.Exercises[2].ID})
}

func TestGenerate_EmptyPoolIsFatal(t *testing.T) {
	cat := drills.Default()
	cat[drills.CategorySetPiece] = nil

	_, err := Generate(season.Default(), cat)
	require.ErrorIs(t, err, drills.ErrEmptyPool)
}
