// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/basegrid/arrowio"
	"github.com/katalvlaran/basegrid/config"
	"github.com/katalvlaran/basegrid/grid"
	"github.com/katalvlaran/basegrid/table"
)

type generateFlags struct {
	configPath string
	in, out    string
	inFormat   string
	outFormat  string
	ranged     []string
	obsBy      []string
	lengthOut  int
	rowOrder   string
	maxRows    int
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a base/range grid from a CSV or Parquet file",
		Long: `Reads --in, builds the grid and writes it to --out. The file format
follows the extension (.csv, .parquet) unless --in-format/--out-format is set.

Settings may come from a YAML plan (--config); flags given on the command
line override the plan.

Example:
  basegrid generate --in trial.csv --out grid.csv --range dose,age --obs-by age --length-out 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML grid plan")
	fl.StringVarP(&f.in, "in", "i", "", "Input data file")
	fl.StringVarP(&f.out, "out", "o", "", "Output grid file")
	fl.StringVar(&f.inFormat, "in-format", "", "Input format (csv|parquet)")
	fl.StringVar(&f.outFormat, "out-format", "", "Output format (csv|parquet)")
	fl.StringSliceVarP(&f.ranged, "range", "r", nil, "Columns to vary over their observed range")
	fl.StringSliceVar(&f.obsBy, "obs-by", nil, "Columns restricted to observed values")
	fl.IntVarP(&f.lengthOut, "length-out", "n", grid.DefaultLengthOut, "Maximum length of each range sequence")
	fl.StringVar(&f.rowOrder, "row-order", "first", "Which column varies fastest (first|last)")
	fl.IntVar(&f.maxRows, "max-rows", 0, "Fail when the grid would exceed this many rows (0 = no limit)")

	return cmd
}

// plan merges the YAML plan (if any) with the flags set on the command line.
func (f *generateFlags) plan(cmd *cobra.Command) (config.Plan, error) {
	p := config.Default()
	if f.configPath != "" {
		var err error
		if p, err = config.Load(f.configPath); err != nil {
			return config.Plan{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("in") {
		p.Input = f.in
	}
	if changed("out") {
		p.Output = f.out
	}
	if changed("in-format") {
		p.InputFormat = config.Format(f.inFormat)
	}
	if changed("out-format") {
		p.OutputFormat = config.Format(f.outFormat)
	}
	if changed("range") {
		p.Range = f.ranged
	}
	if changed("obs-by") {
		p.ObsBy = f.obsBy
	}
	if changed("length-out") {
		p.LengthOut = f.lengthOut
	}
	if changed("row-order") {
		p.RowOrder = f.rowOrder
	}
	if changed("max-rows") {
		p.MaxRows = f.maxRows
	}

	if p.Input == "" || p.Output == "" {
		return config.Plan{}, fmt.Errorf("%w: both input and output files are required", config.ErrInvalidPlan)
	}

	return p, p.Validate()
}

func (a *app) runGenerate(cmd *cobra.Command, f *generateFlags) error {
	p, err := f.plan(cmd)
	if err != nil {
		return err
	}
	opts, err := p.Options()
	if err != nil {
		return err
	}
	opts = append(opts, grid.WithWarningHandler(func(w grid.Warning) {
		a.logger.Warn("ignoring option entry",
			zap.String("code", w.Code.String()),
			zap.String("option", w.Option),
			zap.String("column", w.Column))
	}))

	in, err := a.readTable(cmd, p.Input, p.InputFormat)
	if err != nil {
		return err
	}
	a.logger.Debug("input loaded",
		zap.String("path", p.Input),
		zap.Int("rows", in.NumRows()),
		zap.Strings("columns", in.Names()))

	out, _, err := grid.Generate(in, opts...)
	if err != nil {
		return fmt.Errorf("generate grid: %w", err)
	}

	if err := a.writeTable(p.Output, p.OutputFormat, out); err != nil {
		return err
	}
	a.logger.Info("grid written",
		zap.String("path", p.Output),
		zap.Int("rows", out.NumRows()),
		zap.Int("columns", out.NumCols()))

	return nil
}

func (a *app) readTable(cmd *cobra.Command, path string, explicit config.Format) (*table.Table, error) {
	format, err := config.ResolveFormat(path, explicit)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	var t *table.Table
	switch format {
	case config.FormatParquet:
		t, err = arrowio.ReadParquet(cmd.Context(), file)
	default:
		t, err = arrowio.ReadCSV(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return t, nil
}

func (a *app) writeTable(path string, explicit config.Format, t *table.Table) (err error) {
	format, err := config.ResolveFormat(path, explicit)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	switch format {
	case config.FormatParquet:
		err = arrowio.WriteParquet(file, t)
	default:
		err = arrowio.WriteCSV(file, t)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
