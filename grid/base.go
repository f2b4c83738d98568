// SPDX-License-Identifier: MIT

package grid

import (
	"math"

	"github.com/katalvlaran/basegrid/table"
)

// BaseValue returns the single representative value of c as a one-row column
// of the same name and kind.
//
//   - Continuous          → mean
//   - Integer, Temporal   → mean rounded to the unit (half to even)
//   - Boolean             → false, regardless of the data
//   - Categorical         → first level of the level set
//
// With observedOnly the result is replaced by the observed value nearest to
// it (ties to the smaller value). For Categorical this only matters when the
// first level is declared but unused: the lowest observed level is taken.
//
// Errors: ErrInvalidInput for a nil column.
// Complexity: O(n log n) with observedOnly, O(n) otherwise.
func BaseValue(c table.Column, observedOnly bool) (table.Column, error) {
	if table.IsNil(c) {
		return nil, invalidf(opBase, errNilColumn)
	}

	return c.FromOrdinals([]float64{baseOrdinal(c, observedOnly)}), nil
}

// baseOrdinal computes the base value on the ordinal scale.
func baseOrdinal(c table.Column, observedOnly bool) float64 {
	ords := c.Ordinals()

	// Kinds without spread start at code 0: false, first level.
	var base float64
	if p := policyOf(c.Kind()); p.spread {
		base = mean(ords)
		if p.discrete {
			base = math.RoundToEven(base)
		}
	}

	if observedOnly {
		base = nearest(uniqueSorted(ords), base)
	}

	return base
}
