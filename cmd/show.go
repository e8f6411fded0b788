package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/drillplan/internal/planner"
	"github.com/abhisek/drillplan/internal/season"
	"github.com/abhisek/drillplan/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show <id|date>",
	Short: "Show one session with its exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		s, err := findSession(e.store, args[0])
		if err != nil {
			return err
		}
		printSession(cmd.OutOrStdout(), s, e.season)
		return nil
	},
}

// findSession looks a session up by id, or by date when ref parses as one.
func findSession(st *store.Store, ref string) (planner.Session, error) {
	s, err := st.Get(ref)
	if err == nil || !errors.Is(err, store.ErrSessionNotFound) {
		return s, err
	}

	d, perr := season.ParseDate(ref)
	if perr != nil {
		return planner.Session{}, err
	}
	date := season.FormatDate(d)
	for _, s := range st.All() {
		if s.Date == date {
			return s, nil
		}
	}
	return planner.Session{}, fmt.Errorf("%w: no session on %s", store.ErrSessionNotFound, date)
}
