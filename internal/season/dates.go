package season

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used for every session date.
const DateLayout = "2006-01-02"

// ErrInvalidRange indicates a date range whose start is after its end.
var ErrInvalidRange = errors.New("invalid date range: start is after end")

// TrainingDays are the weekdays on which training sessions take place.
var TrainingDays = []time.Weekday{time.Monday, time.Wednesday}

// ParseDate parses an ISO calendar date (YYYY-MM-DD) as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Day truncates t to its calendar day, keeping the year/month/day as seen
// in t's own location and discarding the time of day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TrainingDates returns every training day in the inclusive range
// [start, end], in ascending order. The result is empty when the range
// holds no training weekday. Returns ErrInvalidRange if start is after end.
func TrainingDates(start, end time.Time) ([]time.Time, error) {
	start, end = Day(start), Day(end)
	if start.After(end) {
		return nil, fmt.Errorf("%w (%s > %s)", ErrInvalidRange, FormatDate(start), FormatDate(end))
	}

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isTrainingDay(d.Weekday()) {
			dates = append(dates, d)
		}
	}
	return dates, nil
}

func isTrainingDay(wd time.Weekday) bool {
	for _, td := range TrainingDays {
		if wd == td {
			return true
		}
	}
	return false
}
