package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/drillplan/internal/season"
)

var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "Show the season phases and their coaching directives",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		w := cmd.OutOrStdout()
		sep := strings.Repeat(rule, 60)
		for _, p := range e.season.Phases {
			fmt.Fprintf(w, "%s  (%s to %s, %s)\n", p.Name,
				season.FormatDate(p.Start), season.FormatDate(p.End), p.Kind)
			fmt.Fprintf(w, "%s\n%s\n\n%s\n%s\n\n", sep, p.Description, p.Directive, sep)
		}
		fmt.Fprintf(w, "Split date: %s\n", season.FormatDate(e.season.SplitDate()))
		return nil
	},
}
