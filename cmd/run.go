package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/drillplan/internal/app"
)

// runApp builds the calendar and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	opts := app.Options{
		Store:  e.store,
		Season: e.season,
		Today:  e.today,
		Logger: e.logger,
	}

	svc, err := e.augmenter(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "AI provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Drill suggestions will be unavailable.")
		e.logger.Warn("drill suggestions disabled", "error", err)
	} else {
		opts.Augmenter = svc
	}

	return app.Run(ctx, opts)
}
