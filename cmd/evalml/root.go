package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evalml",
		Short: "evalml - data checks and objective scoring for tabular models",
		Long: `evalml validates tabular datasets before modeling and scores predictions
with a catalogue of standard objectives.

It runs configurable data checks (highly null columns, ID columns, label
leakage, invalid targets), lists and applies scoring objectives, and fits
simple baseline pipelines.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newObjectivesCommand())
	cmd.AddCommand(newScoreCommand())
	cmd.AddCommand(newEvaluateCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
