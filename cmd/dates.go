package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/drillplan/internal/season"
)

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List the training dates of the season",
	Long:  "List every Monday and Wednesday between the season start and end, inclusive.",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		start, end := e.season.Start, e.season.End
		if from != "" {
			if start, err = season.ParseDate(from); err != nil {
				return fmt.Errorf("--from: %w", err)
			}
		}
		if to != "" {
			if end, err = season.ParseDate(to); err != nil {
				return fmt.Errorf("--to: %w", err)
			}
		}

		dates, err := season.TrainingDates(start, end)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, d := range dates {
			phase := ""
			if p, ok := e.season.PhaseFor(d); ok {
				phase = p.Name
			}
			fmt.Fprintf(w, "%s  %-9s  %s\n", season.FormatDate(d), d.Weekday(), phase)
		}
		fmt.Fprintf(w, "\n%d training dates\n", len(dates))
		return nil
	},
}

func init() {
	datesCmd.Flags().String("from", "", "First date, YYYY-MM-DD (default: season start)")
	datesCmd.Flags().String("to", "", "Last date, YYYY-MM-DD (default: season end)")
}
