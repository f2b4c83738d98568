// Package basegrid builds base/range grids: synthetic tables for probing how a
// fitted model responds to a few input variables while every other variable
// is held at a representative value.
//
// The repository is organized as small top-level packages:
//
//	table/        typed column-oriented table, five column kinds, kind inference
//	grid/         base values, range sequences, Cartesian assembly, warnings
//	arrowio/      Arrow record/table conversion, CSV and Parquet files
//	config/       YAML grid plans mapped to grid options
//	cmd/basegrid/ command-line front end (generate, describe)
//
// Quick example:
//
//	dose, _ := table.NewInt("dose", []int64{1, 2, 3, 4})
//	sex, _ := table.NewFactor("sex", []string{"f", "m", "f", "m"}, nil)
//	t, _ := table.New(dose, sex)
//	g, warns, err := grid.Generate(t, grid.WithRange("dose"))
//
// g has four rows: dose 1..4 with sex fixed at "f".
//
//	go install github.com/katalvlaran/basegrid/cmd/basegrid@latest
package basegrid
