package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/drillplan/internal/drills"
)

func TestExercise_VideoURL(t *testing.T) {
	ex := Exercise{VideoQuery: "futsal 3v2 counter attack"}
	assert.Equal(t, "https://www.youtube.com/results?search_query=futsal+3v2+counter+attack", ex.VideoURL())

	assert.Empty(t, Exercise{}.VideoURL())
}

func TestSession_CloneIsDeep(t *testing.T) {
	orig := Session{ID: "session-0", Exercises: []Exercise{{ID: "ex-0-0", Title: "A"}}}
	cp := orig.Clone()
	cp.Exercises[0].Title = "B"

	assert.Equal(t, "A", orig.Exercises[0].Title)
}

func TestSession_Categories(t *testing.T) {
	s := Session{Exercises: []Exercise{
		{Category: drills.CategoryTactical},
		{Category: drills.CategoryGame},
		{Category: drills.CategoryTactical},
	}}
	assert.Equal(t, []drills.Category{drills.CategoryTactical, drills.CategoryGame}, s.Categories())
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		level int
		want  LoadBand
	}{
		{1, LoadLight},
		{2, LoadLight},
		{3, LoadModerate},
		{4, LoadHigh},
		{5, LoadPeak},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.level), "level %d", tt.level)
	}
}

func TestIntensity_Valid(t *testing.T) {
	assert.True(t, IntensityLow.Valid())
	assert.True(t, IntensityHigh.Valid())
	assert.False(t, Intensity("Extreme").Valid())
}
