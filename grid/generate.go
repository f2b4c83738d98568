// SPDX-License-Identifier: MIT

package grid

import (
	"github.com/katalvlaran/basegrid/table"
)

// Generate builds the base/range grid of t.
//
// Implementation:
//   - Stage 1 (Validate): table present with at least one column, LengthOut >= 1.
//     Names in WithRange/WithObservedOnly that match no column become
//     UnknownColumn warnings (one per option and name, first-seen order).
//   - Stage 2 (Per column): RANGE columns → RangeValues, others → BaseValue,
//     each honoring the observed-only flag.
//   - Stage 3 (Assemble): Cartesian product in the configured row order.
//
// Behavior highlights:
//   - Deterministic: identical inputs give identical output.
//   - Pure: t is not modified; warnings are returned (and passed to the
//     WithWarningHandler callback, if any) instead of being logged.
//   - No work is done when validation fails; no warnings are emitted either.
//
// Returns:
//   - *table.Table: the grid, same column names/kinds/order as t.
//   - []Warning: non-fatal diagnostics (nil when there are none).
//
// Errors:
//   - ErrInvalidInput (nil/empty table, LengthOut < 1).
//   - ErrGridOverflow, ErrGridTooLarge from assembly.
//
// Complexity: see the package documentation.
func Generate(t *table.Table, opts ...Option) (*table.Table, []Warning, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate.
	if t == nil || t.NumCols() == 0 {
		return nil, nil, invalidf(opGenerate, table.ErrNoColumns)
	}
	if o.lengthOut < 1 {
		return nil, nil, invalidf(opGenerate, errLengthOut)
	}
	ranged, rangeWarns := selectNames(t, OptionRange, o.rangeCols)
	observed, obsWarns := selectNames(t, OptionObservedOnly, o.observed)
	warns := append(rangeWarns, obsWarns...)
	if o.onWarning != nil {
		for _, w := range warns {
			o.onWarning(w)
		}
	}

	// Stage 2: per-column values.
	seqs := make([]table.Column, t.NumCols())
	for j, c := range t.Columns() {
		obs := observed[c.Name()]
		if ranged[c.Name()] {
			seqs[j] = c.FromOrdinals(rangeOrdinals(c, obs, o.lengthOut))
		} else {
			seqs[j] = c.FromOrdinals([]float64{baseOrdinal(c, obs)})
		}
	}

	// Stage 3: assemble.
	out, err := assemble(seqs, o)
	if err != nil {
		return nil, warns, gridErrorf(opGenerate, err)
	}

	return out, warns, nil
}

// GenerateColumns builds the table from cols and runs Generate on it. Table
// construction failures (duplicate names, unequal lengths, ...) are reported
// as ErrInvalidInput with the table sentinel kept in the chain.
func GenerateColumns(cols []table.Column, opts ...Option) (*table.Table, []Warning, error) {
	for _, c := range cols {
		if table.IsNil(c) {
			return nil, nil, invalidf(opGenerateColumns, errNilColumn)
		}
	}
	t, err := table.New(cols...)
	if err != nil {
		return nil, nil, invalidf(opGenerateColumns, err)
	}

	return Generate(t, opts...)
}

// selectNames resolves a name list against t: known names go into the
// returned set, unknown names produce one warning each. Duplicates collapse.
func selectNames(t *table.Table, option string, names []string) (map[string]bool, []Warning) {
	set := make(map[string]bool, len(names))
	var warns []Warning
	reported := make(map[string]bool)
	for _, name := range names {
		if t.Has(name) {
			set[name] = true
			continue
		}
		if !reported[name] {
			reported[name] = true
			warns = append(warns, Warning{Code: UnknownColumn, Option: option, Column: name})
		}
	}

	return set, warns
}
