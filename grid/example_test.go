package grid_test

import (
	"fmt"

	"github.com/katalvlaran/basegrid/grid"
	"github.com/katalvlaran/basegrid/table"
)

// ExampleGenerate varies x over three evenly spaced values while the
// categorical column g stays at its first level. The unknown name "z" is
// reported, not fatal.
func ExampleGenerate() {
	x, _ := table.NewInt("x", []int64{1, 2, 3, 4, 5})
	g, _ := table.NewFactor("g", []string{"a", "b", "a", "c", "b"}, nil)
	t, _ := table.New(x, g)

	out, warns, err := grid.Generate(t, grid.WithRange("x", "z"), grid.WithLengthOut(3))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	xs := out.Col(0).(*table.IntColumn).Values()
	gs := out.Col(1).(*table.FactorColumn).Values()
	fmt.Println("rows:", out.NumRows())
	for i := range xs {
		fmt.Println(xs[i], gs[i])
	}
	for _, w := range warns {
		fmt.Println(w)
	}
	// Output:
	// rows: 3
	// 1 a
	// 3 a
	// 5 a
	// grid: unknown column "z" in range
}

// ExampleGenerate_observedOnly restricts the range of x to observed values.
func ExampleGenerate_observedOnly() {
	x, _ := table.NewInt("x", []int64{1, 2, 3, 10})
	t, _ := table.New(x)

	spaced, _, _ := grid.Generate(t, grid.WithRange("x"), grid.WithLengthOut(3))
	observed, _, _ := grid.Generate(t, grid.WithRange("x"), grid.WithObservedOnly("x"), grid.WithLengthOut(3))

	fmt.Println(spaced.Col(0).(*table.IntColumn).Values())
	fmt.Println(observed.Col(0).(*table.IntColumn).Values())
	// Output:
	// [1 6 10]
	// [1 3 10]
}
