package season

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPhases indicates phase metadata that is empty, overlapping,
// or has gaps.
var ErrInvalidPhases = errors.New("invalid season phases")

// PhaseKind classifies a phase for the session synthesizer.
type PhaseKind string

const (
	KindPreSeason   PhaseKind = "pre-season"
	KindCompetitive PhaseKind = "competitive"
)

// Phase is a named block of the season.
type Phase struct {
	Name        string
	Kind        PhaseKind
	Start       time.Time
	End         time.Time
	Description string

	// Directive is the coaching guideline shown alongside every session
	// that falls inside this phase.
	Directive string
}

// Contains reports whether day d falls within the phase (inclusive).
func (p Phase) Contains(d time.Time) bool {
	d = Day(d)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Season is the training window plus its contiguous phases.
type Season struct {
	Start  time.Time
	End    time.Time
	Phases []Phase
}

// Validate checks that the phases are ordered, contiguous, non-overlapping,
// and that the first competitive phase exists.
func (s Season) Validate() error {
	if s.Start.After(s.End) {
		return fmt.Errorf("%w: season %s..%s", ErrInvalidRange, FormatDate(s.Start), FormatDate(s.End))
	}
	if len(s.Phases) == 0 {
		return fmt.Errorf("%w: no phases", ErrInvalidPhases)
	}
	for i, p := range s.Phases {
		if p.Start.After(p.End) {
			return fmt.Errorf("%w: phase %q ends before it starts", ErrInvalidPhases, p.Name)
		}
		if p.Kind != KindPreSeason && p.Kind != KindCompetitive {
			return fmt.Errorf("%w: phase %q has unknown kind %q", ErrInvalidPhases, p.Name, p.Kind)
		}
		if i == 0 {
			continue
		}
		prev := s.Phases[i-1]
		if !p.Start.Equal(prev.End.AddDate(0, 0, 1)) {
			return fmt.Errorf("%w: phase %q must start the day after %q ends", ErrInvalidPhases, p.Name, prev.Name)
		}
	}
	if _, ok := s.firstCompetitive(); !ok {
		return fmt.Errorf("%w: no competitive phase", ErrInvalidPhases)
	}
	return nil
}

// SplitDate returns the first day of competition. Every date strictly
// before it is pre-season.
func (s Season) SplitDate() time.Time {
	if p, ok := s.firstCompetitive(); ok {
		return p.Start
	}
	// Without a competitive phase the whole window is pre-season.
	return s.End.AddDate(0, 0, 1)
}

// IsPreSeason reports whether day d falls before the split date.
func (s Season) IsPreSeason(d time.Time) bool {
	return Day(d).Before(s.SplitDate())
}

// PhaseFor returns the phase containing day d.
func (s Season) PhaseFor(d time.Time) (Phase, bool) {
	for _, p := range s.Phases {
		if p.Contains(d) {
			return p, true
		}
	}
	return Phase{}, false
}

// TrainingDates returns the training days of the whole season.
func (s Season) TrainingDates() ([]time.Time, error) {
	return TrainingDates(s.Start, s.End)
}

func (s Season) firstCompetitive() (Phase, bool) {
	for _, p := range s.Phases {
		if p.Kind == KindCompetitive {
			return p, true
		}
	}
	return Phase{}, false
}
