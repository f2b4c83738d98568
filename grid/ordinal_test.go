// SPDX-License-Identifier: MIT

package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/basegrid/table"
)

func TestNearest_TiesGoToSmaller(t *testing.T) {
	u := []float64{1, 3, 7}

	assert.Equal(t, 1.0, nearest(u, -5))
	assert.Equal(t, 7.0, nearest(u, 100))
	assert.Equal(t, 3.0, nearest(u, 3))
	assert.Equal(t, 1.0, nearest(u, 2), "tie between 1 and 3")
	assert.Equal(t, 3.0, nearest(u, 5), "tie between 3 and 7")
	assert.Equal(t, 7.0, nearest(u, 5.1))
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{2}, linspace(2, 9, 1))
	assert.Equal(t, []float64{0, 0.5, 1}, linspace(0, 1, 3))
	assert.Equal(t, []float64{4, 4, 4}, linspace(4, 4, 3))

	seq := linspace(0.1, 0.7, 7)
	assert.Equal(t, 0.1, seq[0])
	assert.Equal(t, 0.7, seq[6], "end point is exact")
}

func TestUniqueSorted(t *testing.T) {
	in := []float64{3, 1, 3, 2, 1}
	assert.Equal(t, []float64{1, 2, 3}, uniqueSorted(in))
	assert.Equal(t, []float64{3, 1, 3, 2, 1}, in, "input untouched")
}

func TestMean(t *testing.T) {
	assert.Equal(t, 2.0, mean([]float64{1, 2, 3}))
	assert.Equal(t, 1.7e9+1, mean([]float64{1.7e9, 1.7e9 + 2}))
}

func TestPolicyOf(t *testing.T) {
	assert.Equal(t, kindPolicy{discrete: false, spread: true}, policyOf(table.Continuous))
	assert.Equal(t, kindPolicy{discrete: true, spread: true}, policyOf(table.Integer))
	assert.Equal(t, kindPolicy{discrete: true, spread: true}, policyOf(table.Temporal))
	assert.Equal(t, kindPolicy{discrete: true, spread: false}, policyOf(table.Boolean))
	assert.Equal(t, kindPolicy{discrete: true, spread: false}, policyOf(table.Categorical))
	assert.Panics(t, func() { policyOf(table.Kind(42)) })
}
