// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// Constructors return these sentinels wrapped with an operation tag
// ("NewFloat: ...", "New: ..."); callers match with errors.Is.

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrNoColumns is returned when a table is built without any column.
	ErrNoColumns = errors.New("table: no columns")

	// ErrEmptyName indicates a column with an empty name.
	ErrEmptyName = errors.New("table: empty column name")

	// ErrDuplicateName indicates two columns sharing one name.
	ErrDuplicateName = errors.New("table: duplicate column name")

	// ErrEmptyColumn indicates a column with zero values. Base and range
	// values are undefined without observations.
	ErrEmptyColumn = errors.New("table: column has no values")

	// ErrLengthMismatch indicates columns of different lengths in one table.
	ErrLengthMismatch = errors.New("table: column length mismatch")

	// ErrIntRange indicates an integer outside ±MaxExactInt, where the
	// float64 ordinal projection stops being exact.
	ErrIntRange = errors.New("table: integer magnitude exceeds 2^53")

	// ErrNonFinite indicates a NaN or ±Inf in a numeric column.
	ErrNonFinite = errors.New("table: NaN or Inf value")

	// ErrUnknownLevel indicates a categorical value or code outside the level set.
	ErrUnknownLevel = errors.New("table: value outside level set")

	// ErrDuplicateLevel indicates a level listed twice in a level set.
	ErrDuplicateLevel = errors.New("table: duplicate level")

	// ErrUnsupportedType is returned by Infer for slices it cannot classify.
	ErrUnsupportedType = errors.New("table: unsupported value type")

	// ErrBadTimeUnit indicates a TimeUnit other than Day or Second.
	ErrBadTimeUnit = errors.New("table: invalid time unit")
)

// tableErrorf tags err with the operation that produced it.
func tableErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
