// SPDX-License-Identifier: MIT
// Package grid: numeric kernels over the ordinal projection.
//
// Every column is handled through table.Column.Ordinals / FromOrdinals, so the
// kernels below only ever see sorted or unsorted float64 slices. Kind-specific
// behavior is limited to kindPolicy.

package grid

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/katalvlaran/basegrid/table"
)

// kindPolicy describes how one column kind is treated by the kernels.
type kindPolicy struct {
	// discrete: means and spaced values are rounded to the unit (half to even).
	discrete bool
	// spread: a RANGE that must be thinned uses evenly spaced values over
	// [min, max]; otherwise the first levels of the level set are taken.
	spread bool
}

// policyOf is the single dispatch point over the closed set of kinds.
func policyOf(k table.Kind) kindPolicy {
	switch k {
	case table.Continuous:
		return kindPolicy{discrete: false, spread: true}
	case table.Integer, table.Temporal:
		return kindPolicy{discrete: true, spread: true}
	case table.Boolean, table.Categorical:
		return kindPolicy{discrete: true, spread: false}
	default:
		panic(fmt.Sprintf("grid: unhandled column kind %s", k))
	}
}

// mean returns the arithmetic mean of xs (len(xs) > 0).
// A running mean keeps large epoch-second ordinals away from overflow.
func mean(xs []float64) float64 {
	var m float64
	for i, x := range xs {
		m += (x - m) / float64(i+1)
	}

	return m
}

// uniqueSorted returns the distinct values of xs in ascending order.
func uniqueSorted(xs []float64) []float64 {
	u := slices.Clone(xs)
	slices.Sort(u)

	return slices.Compact(u)
}

// nearest returns the element of the ascending slice u closest to x; on a tie
// the smaller element wins.
func nearest(u []float64, x float64) float64 {
	i := sort.SearchFloat64s(u, x) // first index with u[i] >= x
	switch {
	case i == 0:
		return u[0]
	case i == len(u):
		return u[len(u)-1]
	}
	lo, hi := u[i-1], u[i]
	if x-lo <= hi-x {
		return lo
	}

	return hi
}

// linspace returns n evenly spaced values from lo to hi inclusive. The end
// points are exact; n == 1 yields [lo].
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	out[0] = lo
	if n == 1 {
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := 1; i < n-1; i++ {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi

	return out
}

// roundAll rounds every value half to even, in place.
func roundAll(xs []float64) []float64 {
	for i, x := range xs {
		xs[i] = math.RoundToEven(x)
	}

	return xs
}

// snapAll replaces every target with its nearest member of u, in place.
func snapAll(u, targets []float64) []float64 {
	for i, x := range targets {
		targets[i] = nearest(u, x)
	}

	return targets
}
