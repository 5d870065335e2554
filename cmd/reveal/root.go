package main

import (
	"os"
	"time"

	"github.com/phanxgames/reveal"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "reveal",
		Short: "Scroll-triggered reveal for scene graphs",
		Long: `reveal runs a demo document through the scroll-triggered reveal registry,
either headless from a JSON script or in a window.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(verbosity)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG)")

	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newRunCmd())
	return rootCmd
}

// setupLogger points the reveal logger at a console writer on stderr.
func setupLogger(verbosity int) {
	level := zerolog.WarnLevel
	switch {
	case verbosity == 1:
		level = zerolog.InfoLevel
	case verbosity >= 2:
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	reveal.SetLogger(zerolog.New(w).Level(level).With().Timestamp().Str("component", "reveal").Logger())
}

// loadConfig returns the file config when path is set and the defaults otherwise.
func loadConfig(path string) (reveal.Config, error) {
	if path == "" {
		return reveal.DefaultConfig(), nil
	}
	return reveal.LoadConfig(path)
}
