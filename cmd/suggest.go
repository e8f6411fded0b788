package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/drillplan/internal/augment"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <id|date>",
	Short: "Ask the AI assistant for three fresh drills for a session",
	Long: "Ask the configured AI provider for three drills matching the session theme " +
		"and print the session with its exercises replaced. The calendar is regenerated " +
		"on every run, so the replacement is not saved.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		s, err := findSession(e.store, args[0])
		if err != nil {
			return err
		}

		svc, err := e.augmenter(ctx)
		if err != nil {
			return fmt.Errorf("AI provider not configured: %w", err)
		}

		label, _ := cmd.Flags().GetString("squad")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		w := cmd.OutOrStdout()

		if dryRun {
			exercises, err := svc.Suggest(ctx, augment.SuggestInput{
				Theme:         s.Theme,
				CategoryLabel: label,
				Microcycle:    s.Microcycle,
				LoadLevel:     s.LoadLevel,
			})
			if err != nil {
				return err
			}
			printExercises(w, exercises)
			return nil
		}

		if _, err := svc.Augment(ctx, s.ID); err != nil {
			return err
		}
		updated, err := e.store.Get(s.ID)
		if err != nil {
			return err
		}
		printSession(w, updated, e.season)
		return nil
	},
}

func init() {
	suggestCmd.Flags().String("squad", "", "Squad label sent with the request (default: from config)")
	suggestCmd.Flags().Bool("dry-run", false, "Print the suggestions without replacing the session exercises")
}
