// SPDX-License-Identifier: MIT

package arrowio

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedArrowType indicates an Arrow column type with no table kind.
	ErrUnsupportedArrowType = errors.New("arrowio: unsupported arrow type")

	// ErrNoRows indicates that no complete row is left to build a table from.
	ErrNoRows = errors.New("arrowio: no complete rows")

	// ErrNilInput indicates a nil table, record or reader.
	ErrNilInput = errors.New("arrowio: nil input")
)

// ioErrorf tags err with the operation that produced it.
func ioErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
