// SPDX-License-Identifier: MIT

// Command basegrid reads a data file, builds a base/range grid from it and
// writes the grid back out.
//
//	basegrid generate --in data.csv --out grid.parquet --range dose --obs-by age
//	basegrid describe --in data.parquet
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}
