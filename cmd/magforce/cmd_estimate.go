package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"magforce/cmd/magforce/shell"
	"magforce/cmd/magforce/ui"
	"magforce/internal/pull"
)

var (
	estimateDiameterMM float64
	estimateHeightMM   float64
	estimateGrade      string
)

// estimateCmd computes a single estimate from flags, for scripting. The
// interactive prompt remains the default when no subcommand is given.
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate pull force for one magnet without prompting",
	Long: `Computes one pull-force estimate from flags and prints it.

Example:
  magforce estimate --diameter 20 --height 10 --grade N52`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().Float64Var(&estimateDiameterMM, "diameter", 0, "Magnet diameter in mm")
	estimateCmd.Flags().Float64Var(&estimateHeightMM, "height", 0, "Magnet height in mm")
	estimateCmd.Flags().StringVar(&estimateGrade, "grade", "", "Magnet grade, e.g. N52")
	_ = estimateCmd.MarkFlagRequired("diameter")
	_ = estimateCmd.MarkFlagRequired("height")
	_ = estimateCmd.MarkFlagRequired("grade")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	if estimateDiameterMM <= 0 || estimateHeightMM <= 0 {
		return fmt.Errorf("diameter and height must be greater than zero")
	}

	spec := pull.Spec{
		DiameterMM: estimateDiameterMM,
		HeightMM:   estimateHeightMM,
		Grade:      strings.ToUpper(strings.TrimSpace(estimateGrade)),
	}
	result, err := pull.Estimate(spec)
	if err != nil {
		return err
	}

	if logger != nil {
		logger.Debug("estimated pull force",
			zap.Float64("diameter_mm", spec.DiameterMM),
			zap.Float64("height_mm", spec.HeightMM),
			zap.String("grade", spec.Grade),
			zap.Float64("force_n", result.ForceN),
		)
	}

	fmt.Fprint(cmd.OutOrStdout(), shell.FormatResult(ui.DefaultStyles(), spec, result))
	return nil
}
