// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Option names reported in warnings.
const (
	OptionRange        = "range"
	OptionObservedOnly = "obs_by"
)

// WarningCode identifies a non-fatal condition.
type WarningCode int

const (
	// UnknownColumn: a name passed to WithRange or WithObservedOnly matches no
	// column. The name is ignored.
	UnknownColumn WarningCode = iota
)

// String returns the code name.
func (c WarningCode) String() string {
	switch c {
	case UnknownColumn:
		return "unknown_column"
	default:
		return fmt.Sprintf("WarningCode(%d)", int(c))
	}
}

// Warning is a non-fatal diagnostic produced by Generate.
type Warning struct {
	Code   WarningCode
	Option string // OptionRange or OptionObservedOnly
	Column string
}

// String renders the warning as a log line.
func (w Warning) String() string {
	switch w.Code {
	case UnknownColumn:
		return fmt.Sprintf("grid: unknown column %q in %s", w.Column, w.Option)
	default:
		return fmt.Sprintf("grid: %s: %q in %s", w.Code, w.Column, w.Option)
	}
}
