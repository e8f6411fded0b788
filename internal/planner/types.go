package planner

import (
	"net/url"
	"time"

	"github.com/abhisek/drillplan/internal/drills"
	"github.com/abhisek/drillplan/internal/season"
)

// Intensity is the effort level of a single exercise.
type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

// Valid reports whether i is one of the known intensity levels.
func (i Intensity) Valid() bool {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	}
	return false
}

// Status tracks whether a session has happened.
type Status string

const (
	StatusPlanned   Status = "Planned"
	StatusCompleted Status = "Completed"
)

// Exercise is one block of a training session, in running order.
type Exercise struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    int             `json:"duration"` // minutes
	Intensity   Intensity       `json:"intensity"`
	Category    drills.Category `json:"category"`

	// VideoQuery is a short search phrase for a demonstration video.
	// Empty when no hint is available.
	VideoQuery string `json:"videoQuery,omitempty"`
}

// VideoURL returns a YouTube search URL for the exercise's video hint,
// or "" when it has none.
func (e Exercise) VideoURL() string {
	if e.VideoQuery == "" {
		return ""
	}
	return "https://www.youtube.com/results?search_query=" + url.QueryEscape(e.VideoQuery)
}

// Session is one scheduled training occurrence.
type Session struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"` // YYYY-MM-DD; compared as a plain string
	StartTime  string     `json:"startTime"`
	EndTime    string     `json:"endTime"`
	Theme      string     `json:"theme"`
	Microcycle string     `json:"microcycle"`
	LoadLevel  int        `json:"loadLevel"` // 1 to 5
	Exercises  []Exercise `json:"exercises"`
	Status     Status     `json:"status"`
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	if s.Exercises != nil {
		s.Exercises = append([]Exercise(nil), s.Exercises...)
	}
	return s
}

// Day parses the session date.
func (s Session) Day() (time.Time, error) {
	return season.ParseDate(s.Date)
}

// TotalMinutes sums the duration of every exercise.
func (s Session) TotalMinutes() int {
	total := 0
	for _, e := range s.Exercises {
		total += e.Duration
	}
	return total
}

// Categories returns the distinct exercise categories in running order.
func (s Session) Categories() []drills.Category {
	var out []drills.Category
	seen := make(map[drills.Category]bool)
	for _, e := range s.Exercises {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}
