// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every subcommand.
type app struct {
	verbose bool
	logger  *zap.Logger
	owned   bool // logger built here and synced on exit
}

// newRootCmd builds the command tree. A non-nil logger is used as is,
// otherwise a production logger is built before each command runs.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "basegrid",
		Short: "Build base/range grids for what-if analysis of fitted models",
		Long: `basegrid builds synthetic tables that hold every column at a
representative base value (mean, rounded mean, first level or false) except
the columns selected with --range, which span their observed range.

Feed the grid to a fitted model to see how its predictions respond to the
ranged columns with everything else held fixed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.owned = true

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.owned && a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newGenerateCmd(a), newDescribeCmd(a))

	return root
}
