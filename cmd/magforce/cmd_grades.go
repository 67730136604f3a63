package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"magforce/cmd/magforce/shell"
	"magforce/cmd/magforce/ui"
)

// gradesCmd lists the grade table the estimator works from.
var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "List known magnet grades and their residual flux densities",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), shell.FormatGradeTable(ui.DefaultStyles()))
		return nil
	},
}
