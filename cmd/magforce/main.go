// Package main implements the magforce CLI: an interactive pull-force
// estimator for cylindrical neodymium magnets, with scriptable
// subcommands for one-shot use.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"magforce/cmd/magforce/shell"
	"magforce/cmd/magforce/ui"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "magforce",
	Short: "Pull-force estimator for cylindrical neodymium magnets",
	Long: `magforce estimates the pull force of a cylindrical permanent magnet
in direct contact with a flat steel surface, from its diameter, height
and material grade, using a simplified magnetic-circuit approximation.

Run without arguments to start the interactive prompt.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for the interactive prompt (it owns the terminal)
		if cmd.Use == "magforce" && cmd.CalledAs() == "magforce" {
			return nil
		}

		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive prompt loop
		return shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), ui.DefaultStyles(), logger).Run()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(gradesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
