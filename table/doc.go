// SPDX-License-Identifier: MIT

// Package table is the column-oriented data model consumed and produced by the
// grid generator.
//
// A Table is an ordered set of uniquely named columns of equal length. Every
// column is one of five kinds, modelled as a closed variant:
//
//	Continuous  → *FloatColumn   (float64, finite)
//	Integer     → *IntColumn     (int64)
//	Boolean     → *BoolColumn    (bool)
//	Categorical → *FactorColumn  (ordered level set + per-row level codes)
//	Temporal    → *TimeColumn    (time.Time at Day or Second resolution)
//
// Column is sealed: only this package implements it, so a switch over Kind is
// exhaustive. Infer classifies untyped slices into one of the variants.
//
// Every kind also exposes an ordinal projection (Ordinals / FromOrdinals): a
// mapping of values onto float64 and back. Numeric spacing, means and
// nearest-value searches in package grid work on that projection only.
//
// Columns and tables are immutable after construction; constructors copy
// their inputs.
package table
