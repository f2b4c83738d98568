// SPDX-License-Identifier: MIT

package grid

import (
	"math"

	"github.com/katalvlaran/basegrid/table"
)

// Assemble expands per-column value sequences into their Cartesian product.
// Each sequence is a column (a FIXED value is a one-row column); the output
// keeps their order, names and kinds and has Π Len() rows. Only the row order
// and row bound settings of opts are used.
//
// Implementation:
//   - Stage 1: validate sequences and compute the row count with overflow check.
//   - Stage 2: compute per-column strides for the requested row order.
//   - Stage 3: fill each output column through its ordinal projection.
//
// Errors: ErrInvalidInput (no sequences, nil or empty sequence, duplicate
// names), ErrGridOverflow, ErrGridTooLarge.
// Complexity: O(rows × cols) time and memory.
func Assemble(seqs []table.Column, opts ...Option) (*table.Table, error) {
	o := gatherOptions(opts...)

	return assemble(seqs, o)
}

func assemble(seqs []table.Column, o Options) (*table.Table, error) {
	// Stage 1: validate and count rows.
	if len(seqs) == 0 {
		return nil, invalidf(opAssemble, table.ErrNoColumns)
	}
	rows := 1
	for _, s := range seqs {
		if table.IsNil(s) {
			return nil, invalidf(opAssemble, errNilColumn)
		}
		n := s.Len()
		if n == 0 {
			return nil, invalidf(opAssemble, table.ErrEmptyColumn)
		}
		if rows > math.MaxInt/n {
			return nil, gridErrorf(opAssemble, ErrGridOverflow)
		}
		rows *= n
	}
	if o.maxRows > 0 && rows > o.maxRows {
		return nil, gridErrorf(opAssemble, ErrGridTooLarge)
	}

	// Stage 2: strides. Column j advances every strides[j] rows.
	strides := make([]int, len(seqs))
	stride := 1
	if o.rowOrder == LastFastest {
		for j := len(seqs) - 1; j >= 0; j-- {
			strides[j] = stride
			stride *= seqs[j].Len()
		}
	} else {
		for j := range seqs {
			strides[j] = stride
			stride *= seqs[j].Len()
		}
	}

	// Stage 3: fill.
	cols := make([]table.Column, len(seqs))
	for j, s := range seqs {
		src := s.Ordinals()
		n := len(src)
		dst := make([]float64, rows)
		for r := range dst {
			dst[r] = src[(r/strides[j])%n]
		}
		cols[j] = s.FromOrdinals(dst)
	}

	out, err := table.New(cols...)
	if err != nil {
		return nil, invalidf(opAssemble, err)
	}

	return out, nil
}
