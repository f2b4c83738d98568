// SPDX-License-Identifier: MIT

package table_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basegrid/table"
)

func TestInfer_Kinds(t *testing.T) {
	noon := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	midnight := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		values any
		kind   table.Kind
	}{
		{"ints", []int{1, 2, 3}, table.Integer},
		{"int32s", []int32{1, 2}, table.Integer},
		{"int64s", []int64{5}, table.Integer},
		{"integral floats", []float64{1, 2, 3}, table.Integer},
		{"floats", []float64{1, 2.5}, table.Continuous},
		{"float32s", []float32{0.5}, table.Continuous},
		{"bools", []bool{true}, table.Boolean},
		{"strings", []string{"a", "b"}, table.Categorical},
		{"dates", []time.Time{midnight}, table.Temporal},
		{"datetimes", []time.Time{noon, midnight}, table.Temporal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := table.Infer("c", tc.values)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, c.Kind())
		})
	}
}

func TestInfer_TimeUnit(t *testing.T) {
	noon := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	midnight := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	c, err := table.Infer("d", []time.Time{midnight})
	require.NoError(t, err)
	assert.Equal(t, table.Day, c.(*table.TimeColumn).Unit())

	c, err = table.Infer("d", []time.Time{midnight, noon})
	require.NoError(t, err)
	assert.Equal(t, table.Second, c.(*table.TimeColumn).Unit())
}

func TestInfer_Errors(t *testing.T) {
	_, err := table.Infer("c", []complex128{1})
	assert.ErrorIs(t, err, table.ErrUnsupportedType)

	_, err = table.Infer("c", []float64{1, math.NaN()})
	assert.ErrorIs(t, err, table.ErrNonFinite)

	_, err = table.Infer("c", []float64{})
	assert.ErrorIs(t, err, table.ErrEmptyColumn)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "continuous", table.Continuous.String())
	assert.Equal(t, "temporal", table.Temporal.String())
	assert.Equal(t, "Kind(9)", table.Kind(9).String())
	assert.Equal(t, "day", table.Day.String())
	assert.Equal(t, "second", table.Second.String())
}
