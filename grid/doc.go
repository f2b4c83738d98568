// Package grid generates base/range grids: synthetic tables that hold every
// column at a representative "base" value except the columns selected to vary,
// which span their observed range. Feeding such a grid to a fitted model shows
// how its prediction responds to the varied columns with all else fixed
// (partial-effect or "what-if" analysis).
//
// ✨ Per column:
//   - FIXED (default): one base value
//     continuous → mean, integer/temporal → mean rounded to the unit,
//     boolean → false, categorical → first level.
//   - RANGE (WithRange): a sorted, unique sequence of at most LengthOut values
//     from the observed minimum to the observed maximum.
//   - observed-only (WithObservedOnly): base or range values are snapped to
//     values that actually occur in the column.
//
// The output is the Cartesian product of the per-column values, columns in
// input order. DefaultRowOrder is FirstFastest: the first column varies
// fastest, as in R's expand.grid. For nested-loop order, where the last
// column varies fastest, pass WithRowOrder(LastFastest).
//
// ⚙️ Usage:
//
//	out, warns, err := grid.Generate(t,
//	    grid.WithRange("dose", "age"),
//	    grid.WithObservedOnly("age"),
//	    grid.WithLengthOut(10),
//	)
//
// Names in WithRange/WithObservedOnly that match no column do not fail the
// call: they are reported as UnknownColumn warnings, returned and passed to
// the optional WithWarningHandler callback.
//
// Complexity: O(Σ n_j log n_j) for the per-column work plus
// O(rows × cols) for the grid, where rows = Π len(sequence_j). The row count
// grows multiplicatively with the number of RANGE columns; bounding it is the
// caller's job (LengthOut, or the opt-in WithMaxRows guard).
package grid
