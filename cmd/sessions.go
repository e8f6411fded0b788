package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/drillplan/internal/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List upcoming or past sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		name, _ := cmd.Flags().GetString("view")
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		view, err := store.ParseView(name)
		if err != nil {
			return err
		}

		sessions := e.store.Filter(view, e.today)
		if limit > 0 && len(sessions) > limit {
			sessions = sessions[:limit]
		}

		w := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(sessions)
		}

		if len(sessions) == 0 {
			fmt.Fprintf(w, "No %s sessions.\n", view)
			return nil
		}
		for _, s := range sessions {
			printSessionRow(w, s)
		}
		return nil
	},
}

func init() {
	sessionsCmd.Flags().String("view", string(store.ViewUpcoming), "Which sessions to list: upcoming or past")
	sessionsCmd.Flags().Int("limit", 0, "Show at most this many sessions (0 for all)")
	sessionsCmd.Flags().Bool("json", false, "Print sessions as JSON")
}
