package planner

import (
	"fmt"
	"time"

	"github.com/abhisek/drillplan/internal/drills"
	"github.com/abhisek/drillplan/internal/season"
)

// Schedule fixes the time of day of every session.
type Schedule struct {
	StartTime string
	EndTime   string
}

// DefaultSchedule is the 20:00 to 21:15 evening slot.
func DefaultSchedule() Schedule {
	return Schedule{StartTime: "20:00", EndTime: "21:15"}
}

// Synthesizer turns training dates into fully populated sessions.
type Synthesizer struct {
	Season   season.Season
	Schedule Schedule
}

// NewSynthesizer creates a Synthesizer for the given season.
func NewSynthesizer(s season.Season, sched Schedule) *Synthesizer {
	return &Synthesizer{Season: s, Schedule: sched}
}

// Synthesize builds the session for date, the index-th training date of
// the run. The only side effect is advancing picker.
func (s *Synthesizer) Synthesize(date time.Time, index int, picker *drills.Picker) (Session, error) {
	date = season.Day(date)
	preSeason := s.Season.IsPreSeason(date)

	var monday bool
	switch date.Weekday() {
	case time.Monday:
		monday = true
	case time.Wednesday:
	default:
		return Session{}, fmt.Errorf("%s is a %s, not a training day", season.FormatDate(date), date.Weekday())
	}

	profile := profileFor(preSeason, monday, index)
	intensity := intensityFor(profile.LoadLevel)

	categories := categoriesFor(preSeason, monday)
	exercises := make([]Exercise, 0, len(categories))
	for pos, cat := range categories {
		tpl, err := picker.Next(cat)
		if err != nil {
			return Session{}, fmt.Errorf("pick %s drill: %w", cat, err)
		}
		exercises = append(exercises, Exercise{
			ID:          fmt.Sprintf("ex-%d-%d", index, pos),
			Title:       tpl.Title,
			Description: tpl.Description,
			Duration:    positionDurations[pos],
			Intensity:   intensity,
			Category:    cat,
			VideoQuery:  tpl.VideoQuery,
		})
	}

	return Session{
		ID:         SessionID(index),
		Date:       season.FormatDate(date),
		StartTime:  s.Schedule.StartTime,
		EndTime:    s.Schedule.EndTime,
		Theme:      profile.Theme,
		Microcycle: profile.Microcycle,
		LoadLevel:  profile.LoadLevel,
		Exercises:  exercises,
		Status:     StatusPlanned,
	}, nil
}

// Generate runs one full generation over the season's training dates
// with a fresh picker over catalog.
func (s *Synthesizer) Generate(catalog drills.Catalog) ([]Session, error) {
	picker, err := drills.NewPicker(catalog)
	if err != nil {
		return nil, err
	}

	dates, err := s.Season.TrainingDates()
	if err != nil {
		return nil, err
	}

	sessions := make([]Session, 0, len(dates))
	for i, d := range dates {
		sess, err := s.Synthesize(d, i, picker)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

// Generate is a shortcut for a default-schedule Synthesizer run.
func Generate(s season.Season, catalog drills.Catalog) ([]Session, error) {
	return NewSynthesizer(s, DefaultSchedule()).Generate(catalog)
}

// SessionID returns the identifier of the index-th generated session.
func SessionID(index int) string {
	return fmt.Sprintf("session-%d", index)
}
