// SPDX-License-Identifier: MIT

package table

import "fmt"

// Kind classifies a column. The set is closed; see Column.
type Kind int

const (
	// Continuous columns hold finite float64 values.
	Continuous Kind = iota
	// Integer columns hold int64 values.
	Integer
	// Boolean columns hold bool values.
	Boolean
	// Categorical columns hold labels from an ordered level set.
	Categorical
	// Temporal columns hold dates or datetimes.
	Temporal
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Categorical:
		return "categorical"
	case Temporal:
		return "temporal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TimeUnit is the resolution of a temporal column. Rounded values (base values,
// evenly spaced range values) are rounded to one unit.
type TimeUnit int

const (
	// Day resolution: calendar dates, stored as midnight UTC.
	Day TimeUnit = iota
	// Second resolution: datetimes, stored in UTC.
	Second
)

// secondsPerDay converts between the Day and Second ordinal scales.
const secondsPerDay = 86400

// String returns "day" or "second".
func (u TimeUnit) String() string {
	switch u {
	case Day:
		return "day"
	case Second:
		return "second"
	default:
		return fmt.Sprintf("TimeUnit(%d)", int(u))
	}
}

// valid reports whether u is one of the declared units.
func (u TimeUnit) valid() bool {
	return u == Day || u == Second
}
