package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "drillplan",
	Short: "Training calendar for a youth futsal squad",
	Long: "Drillplan plans a season of Monday and Wednesday futsal sessions, " +
		"lets you browse them in the terminal and asks an AI assistant for fresh drills.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file (overrides DRILLPLAN_CONFIG env var)")
	flags.String("catalog", "", "Path to a YAML drill catalog (overrides the config file)")
	flags.String("today", "", "Date that splits upcoming from past sessions, YYYY-MM-DD (default: today)")
	flags.String("log-file", "", "Write logs to this file, or - for stderr")
	flags.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(datesCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(phasesCmd)
	rootCmd.AddCommand(versionCmd)
}
