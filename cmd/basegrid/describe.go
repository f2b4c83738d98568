// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/basegrid/config"
	"github.com/katalvlaran/basegrid/grid"
	"github.com/katalvlaran/basegrid/table"
)

func newDescribeCmd(a *app) *cobra.Command {
	var in, format string
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the column kinds and base values of a data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTable(cmd, in, config.Format(format))
			if err != nil {
				return err
			}
			describe(cmd, t)

			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "Input data file")
	cmd.Flags().StringVar(&format, "in-format", "", "Input format (csv|parquet)")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

// describe prints one line per column: name, kind, unique values and base.
func describe(cmd *cobra.Command, t *table.Table) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%d rows\n", t.NumRows())
	for _, c := range t.Columns() {
		base, err := grid.BaseValue(c, false)
		line := fmt.Sprintf("%-16s %-12s", c.Name(), c.Kind())
		if f, ok := c.(*table.FactorColumn); ok {
			line += " levels=" + strings.Join(f.Levels(), ",")
		}
		if err == nil {
			line += " base=" + valueString(base)
		}
		fmt.Fprintln(w, line)
	}
}

// valueString renders the single value of a length-1 column.
func valueString(c table.Column) string {
	switch v := c.(type) {
	case *table.FloatColumn:
		return fmt.Sprint(v.Values()[0])
	case *table.IntColumn:
		return fmt.Sprint(v.Values()[0])
	case *table.BoolColumn:
		return fmt.Sprint(v.Values()[0])
	case *table.FactorColumn:
		return v.At(0)
	case *table.TimeColumn:
		if v.Unit() == table.Day {
			return v.Values()[0].Format("2006-01-02")
		}
		return v.Values()[0].Format("2006-01-02T15:04:05Z")
	default:
		return "?"
	}
}
