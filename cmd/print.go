package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/drillplan/internal/planner"
	"github.com/abhisek/drillplan/internal/season"
)

const rule = "─"

func printSessionRow(w io.Writer, s planner.Session) {
	weekday := "   "
	if d, err := s.Day(); err == nil {
		weekday = d.Format("Mon")
	}
	fmt.Fprintf(w, "%-6s  %s %s  %s-%s  %-3s  %s\n",
		s.ID, weekday, s.Date, s.StartTime, s.EndTime,
		fmt.Sprintf("L%d", s.LoadLevel), s.Theme)
}

func printSession(w io.Writer, s planner.Session, ssn season.Season) {
	sep := strings.Repeat(rule, 60)

	fmt.Fprintf(w, "ID:          %s\n", s.ID)
	fmt.Fprintf(w, "Date:        %s\n", s.Date)
	fmt.Fprintf(w, "Time:        %s-%s\n", s.StartTime, s.EndTime)
	fmt.Fprintf(w, "Theme:       %s\n", s.Theme)
	fmt.Fprintf(w, "Microcycle:  %s\n", s.Microcycle)
	fmt.Fprintf(w, "Load:        %d/%d (%s)\n", s.LoadLevel, planner.MaxLoadLevel, planner.BandFor(s.LoadLevel))
	fmt.Fprintf(w, "Status:      %s\n", s.Status)

	if d, err := s.Day(); err == nil {
		if p, ok := ssn.PhaseFor(d); ok {
			fmt.Fprintf(w, "Phase:       %s\n", p.Name)
			fmt.Fprintf(w, "\n%s\n%s\n", sep, p.Directive)
		}
	}

	fmt.Fprintf(w, "%s\n", sep)
	printExercises(w, s.Exercises)
	fmt.Fprintf(w, "%s\nTotal: %d min\n", sep, s.TotalMinutes())
}

func printExercises(w io.Writer, exercises []planner.Exercise) {
	for i, e := range exercises {
		fmt.Fprintf(w, "%d. %s  [%d min, %s, %s]\n", i+1, e.Title, e.Duration, e.Intensity, e.Category)
		if e.Description != "" {
			fmt.Fprintf(w, "   %s\n", e.Description)
		}
		if u := e.VideoURL(); u != "" {
			fmt.Fprintf(w, "   Video: %s\n", u)
		}
	}
}
