// SPDX-License-Identifier: MIT

// Package grid: functional configuration for Generate.
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper that applies setters over the defaults.
//
// Notes:
//   - LengthOut is data, not wiring: a non-positive value is reported by
//     Generate as ErrInvalidInput instead of panicking in WithLengthOut.
//   - WithRowOrder and WithMaxRows panic on nonsensical values (programmer error).

package grid

import "slices"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLengthOut caps the length of every RANGE sequence.
	DefaultLengthOut = 30

	// DefaultRowOrder makes the first column vary fastest.
	DefaultRowOrder = FirstFastest

	// DefaultMaxRows disables the row-count guard.
	DefaultMaxRows = 0
)

const (
	panicRowOrderInvalid = "grid: WithRowOrder: unknown row order"
	panicMaxRowsInvalid  = "grid: WithMaxRows: limit must be >= 0"
)

// RowOrder selects the expansion order of the grid.
type RowOrder int

const (
	// FirstFastest cycles the first column fastest; for columns a, b:
	// (a1,b1), (a2,b1), (a1,b2), (a2,b2).
	FirstFastest RowOrder = iota

	// LastFastest cycles the last column fastest (nested loops, outermost
	// first): (a1,b1), (a1,b2), (a2,b1), (a2,b2).
	LastFastest
)

// String returns "first_fastest" or "last_fastest".
func (o RowOrder) String() string {
	switch o {
	case FirstFastest:
		return "first_fastest"
	case LastFastest:
		return "last_fastest"
	default:
		return "RowOrder(?)"
	}
}

// ---------- Public option type (functional) ----------

// Option mutates Options. Setters apply in order; list setters accumulate.
type Option func(*Options)

// Options is the effective configuration of one Generate call.
type Options struct {
	rangeCols []string      // RANGE selection, in call order
	observed  []string      // observed-only selection, in call order
	lengthOut int           // DefaultLengthOut; validated by Generate
	rowOrder  RowOrder      // DefaultRowOrder
	maxRows   int           // DefaultMaxRows (0 = unbounded)
	onWarning func(Warning) // optional sink
}

// WithRange selects columns to vary over their observed range. Repeated
// calls accumulate. Unknown names produce UnknownColumn warnings.
func WithRange(names ...string) Option {
	names = slices.Clone(names)

	return func(o *Options) { o.rangeCols = append(o.rangeCols, names...) }
}

// WithObservedOnly restricts the named columns to values present in the
// data, for both base and range values. Repeated calls accumulate.
func WithObservedOnly(names ...string) Option {
	names = slices.Clone(names)

	return func(o *Options) { o.observed = append(o.observed, names...) }
}

// WithLengthOut sets the maximum length of every RANGE sequence.
// Generate fails with ErrInvalidInput when n < 1.
func WithLengthOut(n int) Option {
	return func(o *Options) { o.lengthOut = n }
}

// WithRowOrder selects the grid expansion order.
// Panics on a value other than FirstFastest or LastFastest.
func WithRowOrder(order RowOrder) Option {
	if order != FirstFastest && order != LastFastest {
		panic(panicRowOrderInvalid)
	}

	return func(o *Options) { o.rowOrder = order }
}

// WithMaxRows makes Generate fail with ErrGridTooLarge when the grid would
// have more than limit rows. 0 disables the guard (the default).
// Panics on a negative limit.
func WithMaxRows(limit int) Option {
	if limit < 0 {
		panic(panicMaxRowsInvalid)
	}

	return func(o *Options) { o.maxRows = limit }
}

// WithWarningHandler registers fn to receive every warning as it is produced,
// in addition to the warnings Generate returns. A nil fn removes the handler.
func WithWarningHandler(fn func(Warning)) Option {
	return func(o *Options) { o.onWarning = fn }
}

// NewOptions resolves setters over the defaults; exposed for callers that
// want to inspect an option set (config validation, logging).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// LengthOut returns the configured sequence cap.
func (o Options) LengthOut() int { return o.lengthOut }

// RowOrder returns the configured expansion order.
func (o Options) RowOrder() RowOrder { return o.rowOrder }

// MaxRows returns the configured row bound (0 = unbounded).
func (o Options) MaxRows() int { return o.maxRows }

// Range returns the RANGE names as given (duplicates and unknown names kept).
func (o Options) Range() []string { return slices.Clone(o.rangeCols) }

// ObservedOnly returns the observed-only names as given.
func (o Options) ObservedOnly() []string { return slices.Clone(o.observed) }

// gatherOptions applies setters on top of the defaults (last-writer-wins for
// scalar settings).
func gatherOptions(user ...Option) Options {
	o := Options{
		lengthOut: DefaultLengthOut,
		rowOrder:  DefaultRowOrder,
		maxRows:   DefaultMaxRows,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
