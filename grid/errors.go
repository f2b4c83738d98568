// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every fatal condition is reported before any computation starts.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks every fatal validation failure: a nil or empty
	// table, an invalid column set, a non-positive LengthOut. Table-level
	// sentinels (table.ErrDuplicateName, ...) stay matchable in the chain.
	ErrInvalidInput = errors.New("grid: invalid input")

	// ErrGridOverflow indicates that the row count does not fit in an int.
	ErrGridOverflow = errors.New("grid: row count overflows int")

	// ErrGridTooLarge indicates that the row count exceeds the WithMaxRows bound.
	ErrGridTooLarge = errors.New("grid: row count exceeds limit")
)

// Operation tags for error wrapping.
const (
	opGenerate        = "Generate"
	opGenerateColumns = "GenerateColumns"
	opBase            = "BaseValue"
	opRange           = "RangeValues"
	opAssemble        = "Assemble"
)

// gridErrorf wraps err with the operation tag.
func gridErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// invalidf marks cause as invalid input and tags it with op.
func invalidf(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInvalidInput, cause)
}

// errLengthOut is the cause attached to ErrInvalidInput for LengthOut < 1.
var errLengthOut = errors.New("length out must be a positive integer")

// errNilColumn is the cause attached to ErrInvalidInput for nil columns.
var errNilColumn = errors.New("nil column")
