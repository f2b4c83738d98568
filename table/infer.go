// SPDX-License-Identifier: MIT

package table

import (
	"math"
	"time"
)

// Infer classifies an untyped slice and builds the matching column.
//
// Classification:
//   - []int, []int32, []int64                → Integer
//   - []float64, []float32 all integral      → Integer
//   - []float64, []float32 otherwise         → Continuous (NaN/Inf rejected)
//   - []bool                                 → Boolean
//   - []string                               → Categorical, levels in first-encountered order
//   - []time.Time all at midnight UTC        → Temporal (Day)
//   - []time.Time otherwise                  → Temporal (Second)
//
// Errors: ErrUnsupportedType for anything else, plus the errors of the
// matching constructor (ErrIntRange for integers beyond ±MaxExactInt).
func Infer(name string, values any) (Column, error) {
	switch v := values.(type) {
	case []int64:
		return NewInt(name, v)
	case []int:
		return NewInt(name, widen(v))
	case []int32:
		return NewInt(name, widen(v))
	case []float64:
		return inferFloat(name, v)
	case []float32:
		f := make([]float64, len(v))
		for i, x := range v {
			f[i] = float64(x)
		}
		return inferFloat(name, f)
	case []bool:
		return NewBool(name, v)
	case []string:
		return NewFactor(name, v, nil)
	case []time.Time:
		return NewTime(name, v, inferUnit(v))
	default:
		return nil, tableErrorf("Infer: "+name, ErrUnsupportedType)
	}
}

// widen converts any signed integer slice to []int64.
func widen[T int | int32](v []T) []int64 {
	out := make([]int64, len(v))
	for i, x := range v {
		out[i] = int64(x)
	}

	return out
}

// IsIntegral reports whether v is non-empty and every value is a whole
// number within ±MaxExactInt, i.e. whether the data classifies as Integer.
func IsIntegral(v []float64) bool {
	for _, x := range v {
		if x != math.Trunc(x) || math.Abs(x) > MaxExactInt {
			return false
		}
	}

	return len(v) > 0
}

// FromFloats builds an IntColumn when IsIntegral(v), a FloatColumn otherwise.
// Errors: those of NewFloat and NewInt.
func FromFloats(name string, v []float64) (Column, error) {
	if !IsIntegral(v) {
		return NewFloat(name, v)
	}
	ints := make([]int64, len(v))
	for i, x := range v {
		ints[i] = int64(x)
	}

	return NewInt(name, ints)
}

// inferFloat rejects non-finite values, then classifies through FromFloats.
func inferFloat(name string, v []float64) (Column, error) {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, tableErrorf("Infer: "+name, ErrNonFinite)
		}
	}

	return FromFloats(name, v)
}

// inferUnit picks Day when every value is a UTC midnight.
func inferUnit(v []time.Time) TimeUnit {
	for _, t := range v {
		u := t.UTC()
		if u.Hour() != 0 || u.Minute() != 0 || u.Second() != 0 || u.Nanosecond() != 0 {
			return Second
		}
	}

	return Day
}
