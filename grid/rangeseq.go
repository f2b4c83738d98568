// SPDX-License-Identifier: MIT

package grid

import (
	"slices"

	"github.com/katalvlaran/basegrid/table"
)

// RangeValues returns the RANGE sequence of c as a column of the same name
// and kind: ascending, unique, at most lengthOut values.
//
// Let U be the distinct observed values in kind order (numeric, level order,
// chronological, false < true).
//   - len(U) <= lengthOut: U.
//   - observedOnly: lengthOut evenly spaced targets over [min U, max U], each
//     snapped to its nearest member of U (ties to the smaller), deduplicated.
//   - Continuous: lengthOut evenly spaced values over [min U, max U].
//   - Integer, Temporal: the same, rounded to the unit and deduplicated; the
//     result may be shorter than lengthOut.
//   - Categorical, Boolean: the first lengthOut levels of the level set.
//
// For lengthOut >= 2 the spaced regimes keep min U and max U as end points.
//
// Errors: ErrInvalidInput for a nil column or lengthOut < 1.
// Complexity: O(n log n + lengthOut·log n).
func RangeValues(c table.Column, observedOnly bool, lengthOut int) (table.Column, error) {
	if table.IsNil(c) {
		return nil, invalidf(opRange, errNilColumn)
	}
	if lengthOut < 1 {
		return nil, invalidf(opRange, errLengthOut)
	}

	return c.FromOrdinals(rangeOrdinals(c, observedOnly, lengthOut)), nil
}

// rangeOrdinals computes the RANGE sequence on the ordinal scale.
func rangeOrdinals(c table.Column, observedOnly bool, lengthOut int) []float64 {
	u := uniqueSorted(c.Ordinals())
	if len(u) <= lengthOut {
		return u
	}

	lo, hi := u[0], u[len(u)-1]
	if observedOnly {
		return slices.Compact(snapAll(u, linspace(lo, hi, lengthOut)))
	}

	p := policyOf(c.Kind())
	if !p.spread {
		// len(U) > lengthOut and U is drawn from the level set, so the set
		// holds at least lengthOut levels: codes 0..lengthOut-1.
		out := make([]float64, lengthOut)
		for i := range out {
			out[i] = float64(i)
		}
		return out
	}

	seq := linspace(lo, hi, lengthOut)
	if p.discrete {
		seq = slices.Compact(roundAll(seq))
	}

	return seq
}
