package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/drillplan/internal/drills"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the drill templates per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		only, _ := cmd.Flags().GetString("category")
		cats := drills.Categories
		if only != "" {
			c, err := drills.ParseCategory(only)
			if err != nil {
				return err
			}
			cats = []drills.Category{c}
		}

		w := cmd.OutOrStdout()
		for _, c := range cats {
			fmt.Fprintf(w, "%s (%d)\n", c, len(e.catalog[c]))
			for _, t := range e.catalog[c] {
				fmt.Fprintf(w, "  - %s\n", t.Title)
				if t.Description != "" {
					fmt.Fprintf(w, "    %s\n", t.Description)
				}
			}
			fmt.Fprintln(w)
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("category", "", "Only list this category")
}
