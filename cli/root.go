// Package cli wires the lumigrid command line interface.
package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lumigrid",
	Short: "Solve toggle puzzles on square and hexagon boards",
	Long: `lumigrid solves Lights-Out style toggle puzzles: every press advances
a patch of tiles by one state, wrapping back to the lowest state, and the
goal is a board with every tile lit. The solver models each board as a
linear system over modular arithmetic and answers with the exact press
sequence.

Available boards: easy (3x3), medium (4x4), hard and expert (hexagon).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
