// SPDX-License-Identifier: MIT

package table

import (
	"math"
	"slices"
	"time"
)

// Column is one named, homogeneous column of a Table.
//
// The interface is sealed (unexported method): the only implementations are
// *FloatColumn, *IntColumn, *BoolColumn, *FactorColumn and *TimeColumn, and
// Kind identifies which one a value holds.
type Column interface {
	// Name returns the column name.
	Name() string

	// Kind returns the column classification.
	Kind() Kind

	// Len returns the number of values.
	Len() int

	// Ordinals projects every value onto the real line:
	//	Continuous → value, Integer → value, Boolean → 0/1,
	//	Categorical → level index, Temporal → units since the Unix epoch.
	// The result is a fresh slice of length Len().
	Ordinals() []float64

	// FromOrdinals builds a column of the same name, kind, level set and time
	// unit from projected values, rounding to the kind's unit where the kind
	// is discrete. It is the inverse of Ordinals for values Ordinals produced.
	FromOrdinals(ords []float64) Column

	sealed()
}

// IsNil reports whether c is nil or a nil pointer to one of the column types.
func IsNil(c Column) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *FloatColumn:
		return v == nil
	case *IntColumn:
		return v == nil
	case *BoolColumn:
		return v == nil
	case *FactorColumn:
		return v == nil
	case *TimeColumn:
		return v == nil
	default:
		return false
	}
}

// ---------- Continuous ----------

// FloatColumn is a Continuous column.
type FloatColumn struct {
	name   string
	values []float64
}

// NewFloat copies values into a Continuous column.
// Errors: ErrEmptyName, ErrEmptyColumn, ErrNonFinite.
func NewFloat(name string, values []float64) (*FloatColumn, error) {
	if err := checkHeader(name, len(values)); err != nil {
		return nil, tableErrorf("NewFloat", err)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, tableErrorf("NewFloat", ErrNonFinite)
		}
	}

	return &FloatColumn{name: name, values: slices.Clone(values)}, nil
}

func (c *FloatColumn) Name() string { return c.name }
func (c *FloatColumn) Kind() Kind   { return Continuous }
func (c *FloatColumn) Len() int     { return len(c.values) }
func (c *FloatColumn) sealed()      {}

// Values returns a copy of the column values.
func (c *FloatColumn) Values() []float64 { return slices.Clone(c.values) }

// At returns the i-th value.
func (c *FloatColumn) At(i int) float64 { return c.values[i] }

func (c *FloatColumn) Ordinals() []float64 { return slices.Clone(c.values) }

func (c *FloatColumn) FromOrdinals(ords []float64) Column {
	return &FloatColumn{name: c.name, values: slices.Clone(ords)}
}

// ---------- Integer ----------

// MaxExactInt bounds the magnitude of Integer values: every int64 in
// [-MaxExactInt, MaxExactInt] survives the float64 ordinal projection exactly.
const MaxExactInt = 1 << 53

// IntColumn is an Integer column with values in ±MaxExactInt.
type IntColumn struct {
	name   string
	values []int64
}

// NewInt copies values into an Integer column.
// Errors: ErrEmptyName, ErrEmptyColumn, ErrIntRange.
func NewInt(name string, values []int64) (*IntColumn, error) {
	if err := checkHeader(name, len(values)); err != nil {
		return nil, tableErrorf("NewInt", err)
	}
	for _, v := range values {
		if v > MaxExactInt || v < -MaxExactInt {
			return nil, tableErrorf("NewInt: "+name, ErrIntRange)
		}
	}

	return &IntColumn{name: name, values: slices.Clone(values)}, nil
}

func (c *IntColumn) Name() string { return c.name }
func (c *IntColumn) Kind() Kind   { return Integer }
func (c *IntColumn) Len() int     { return len(c.values) }
func (c *IntColumn) sealed()      {}

// Values returns a copy of the column values.
func (c *IntColumn) Values() []int64 { return slices.Clone(c.values) }

// At returns the i-th value.
func (c *IntColumn) At(i int) int64 { return c.values[i] }

func (c *IntColumn) Ordinals() []float64 {
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		out[i] = float64(v)
	}

	return out
}

func (c *IntColumn) FromOrdinals(ords []float64) Column {
	values := make([]int64, len(ords))
	for i, v := range ords {
		v = math.RoundToEven(v)
		values[i] = int64(max(-MaxExactInt, min(v, MaxExactInt)))
	}

	return &IntColumn{name: c.name, values: values}
}

// ---------- Boolean ----------

// BoolColumn is a Boolean column; false projects to 0 and true to 1.
type BoolColumn struct {
	name   string
	values []bool
}

// NewBool copies values into a Boolean column.
// Errors: ErrEmptyName, ErrEmptyColumn.
func NewBool(name string, values []bool) (*BoolColumn, error) {
	if err := checkHeader(name, len(values)); err != nil {
		return nil, tableErrorf("NewBool", err)
	}

	return &BoolColumn{name: name, values: slices.Clone(values)}, nil
}

func (c *BoolColumn) Name() string { return c.name }
func (c *BoolColumn) Kind() Kind   { return Boolean }
func (c *BoolColumn) Len() int     { return len(c.values) }
func (c *BoolColumn) sealed()      {}

// Values returns a copy of the column values.
func (c *BoolColumn) Values() []bool { return slices.Clone(c.values) }

// At returns the i-th value.
func (c *BoolColumn) At(i int) bool { return c.values[i] }

func (c *BoolColumn) Ordinals() []float64 {
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		if v {
			out[i] = 1
		}
	}

	return out
}

func (c *BoolColumn) FromOrdinals(ords []float64) Column {
	values := make([]bool, len(ords))
	for i, v := range ords {
		values[i] = v >= 0.5
	}

	return &BoolColumn{name: c.name, values: values}
}

// ---------- Categorical ----------

// FactorColumn is a Categorical column: an ordered level set and, per row, the
// index of its level. Level order is the canonical order of the column; it
// may contain levels no row uses.
type FactorColumn struct {
	name   string
	levels []string
	codes  []int
}

// NewFactor builds a Categorical column from labels. When levels is nil the
// level set is the distinct labels in first-encountered order; otherwise every
// label must be one of levels.
// Errors: ErrEmptyName, ErrEmptyColumn, ErrDuplicateLevel, ErrUnknownLevel.
func NewFactor(name string, values []string, levels []string) (*FactorColumn, error) {
	if err := checkHeader(name, len(values)); err != nil {
		return nil, tableErrorf("NewFactor", err)
	}

	index := make(map[string]int, len(levels))
	if levels == nil {
		for _, v := range values {
			if _, ok := index[v]; !ok {
				index[v] = len(levels)
				levels = append(levels, v)
			}
		}
	} else {
		levels = slices.Clone(levels)
		for i, l := range levels {
			if _, dup := index[l]; dup {
				return nil, tableErrorf("NewFactor", ErrDuplicateLevel)
			}
			index[l] = i
		}
	}

	codes := make([]int, len(values))
	for i, v := range values {
		code, ok := index[v]
		if !ok {
			return nil, tableErrorf("NewFactor", ErrUnknownLevel)
		}
		codes[i] = code
	}

	return &FactorColumn{name: name, levels: levels, codes: codes}, nil
}

// NewFactorCodes builds a Categorical column from level indices.
// Errors: ErrEmptyName, ErrEmptyColumn, ErrDuplicateLevel, ErrUnknownLevel.
func NewFactorCodes(name string, codes []int, levels []string) (*FactorColumn, error) {
	if err := checkHeader(name, len(codes)); err != nil {
		return nil, tableErrorf("NewFactorCodes", err)
	}
	seen := make(map[string]struct{}, len(levels))
	for _, l := range levels {
		if _, dup := seen[l]; dup {
			return nil, tableErrorf("NewFactorCodes", ErrDuplicateLevel)
		}
		seen[l] = struct{}{}
	}
	for _, c := range codes {
		if c < 0 || c >= len(levels) {
			return nil, tableErrorf("NewFactorCodes", ErrUnknownLevel)
		}
	}

	return &FactorColumn{name: name, levels: slices.Clone(levels), codes: slices.Clone(codes)}, nil
}

func (c *FactorColumn) Name() string { return c.name }
func (c *FactorColumn) Kind() Kind   { return Categorical }
func (c *FactorColumn) Len() int     { return len(c.codes) }
func (c *FactorColumn) sealed()      {}

// Levels returns a copy of the ordered level set.
func (c *FactorColumn) Levels() []string { return slices.Clone(c.levels) }

// NumLevels returns the size of the level set.
func (c *FactorColumn) NumLevels() int { return len(c.levels) }

// Codes returns a copy of the per-row level indices.
func (c *FactorColumn) Codes() []int { return slices.Clone(c.codes) }

// At returns the label of the i-th row.
func (c *FactorColumn) At(i int) string { return c.levels[c.codes[i]] }

// Values returns the per-row labels.
func (c *FactorColumn) Values() []string {
	out := make([]string, len(c.codes))
	for i, code := range c.codes {
		out[i] = c.levels[code]
	}

	return out
}

func (c *FactorColumn) Ordinals() []float64 {
	out := make([]float64, len(c.codes))
	for i, code := range c.codes {
		out[i] = float64(code)
	}

	return out
}

func (c *FactorColumn) FromOrdinals(ords []float64) Column {
	codes := make([]int, len(ords))
	last := len(c.levels) - 1
	for i, v := range ords {
		codes[i] = min(max(int(math.Round(v)), 0), last)
	}

	return &FactorColumn{name: c.name, levels: c.levels, codes: codes}
}

// ---------- Temporal ----------

// TimeColumn is a Temporal column. Values are normalized to UTC and truncated
// to the column unit on construction, so the ordinal projection (days or
// seconds since the Unix epoch) is integral and round-trips exactly.
type TimeColumn struct {
	name   string
	unit   TimeUnit
	values []time.Time
}

// NewTime copies values into a Temporal column of the given unit.
// Errors: ErrEmptyName, ErrEmptyColumn, ErrBadTimeUnit.
func NewTime(name string, values []time.Time, unit TimeUnit) (*TimeColumn, error) {
	if err := checkHeader(name, len(values)); err != nil {
		return nil, tableErrorf("NewTime", err)
	}
	if !unit.valid() {
		return nil, tableErrorf("NewTime", ErrBadTimeUnit)
	}
	out := make([]time.Time, len(values))
	for i, v := range values {
		out[i] = fromUnits(toUnits(v, unit), unit)
	}

	return &TimeColumn{name: name, unit: unit, values: out}, nil
}

func (c *TimeColumn) Name() string { return c.name }
func (c *TimeColumn) Kind() Kind   { return Temporal }
func (c *TimeColumn) Len() int     { return len(c.values) }
func (c *TimeColumn) sealed()      {}

// Unit returns the column resolution.
func (c *TimeColumn) Unit() TimeUnit { return c.unit }

// Values returns a copy of the column values.
func (c *TimeColumn) Values() []time.Time { return slices.Clone(c.values) }

// At returns the i-th value.
func (c *TimeColumn) At(i int) time.Time { return c.values[i] }

func (c *TimeColumn) Ordinals() []float64 {
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		out[i] = float64(toUnits(v, c.unit))
	}

	return out
}

func (c *TimeColumn) FromOrdinals(ords []float64) Column {
	values := make([]time.Time, len(ords))
	for i, v := range ords {
		values[i] = fromUnits(int64(math.RoundToEven(v)), c.unit)
	}

	return &TimeColumn{name: c.name, unit: c.unit, values: values}
}

// toUnits returns whole units since the Unix epoch, flooring toward the past.
func toUnits(t time.Time, unit TimeUnit) int64 {
	s := t.Unix()
	if unit == Second {
		return s
	}
	d := s / secondsPerDay
	if s%secondsPerDay < 0 {
		d--
	}

	return d
}

// fromUnits is the inverse of toUnits; results are in UTC.
func fromUnits(n int64, unit TimeUnit) time.Time {
	if unit == Second {
		return time.Unix(n, 0).UTC()
	}

	return time.Unix(n*secondsPerDay, 0).UTC()
}

// checkHeader validates what every constructor shares: a name and at least
// one value.
func checkHeader(name string, n int) error {
	if name == "" {
		return ErrEmptyName
	}
	if n == 0 {
		return ErrEmptyColumn
	}

	return nil
}
