// SPDX-License-Identifier: MIT

package table

import (
	"slices"
	"strconv"
	"strings"
)

// Table is an ordered set of uniquely named columns of equal length.
type Table struct {
	cols  []Column
	index map[string]int
	rows  int
}

// New builds a Table from columns, preserving their order.
// Implementation:
//   - Stage 1: reject an empty column list.
//   - Stage 2: check names (non-empty, unique) and lengths (equal).
//
// Errors: ErrNoColumns, ErrEmptyName, ErrDuplicateName, ErrEmptyColumn,
// ErrLengthMismatch (each wrapped with "New").
// Complexity: O(c) for c columns.
func New(cols ...Column) (*Table, error) {
	if len(cols) == 0 {
		return nil, tableErrorf("New", ErrNoColumns)
	}
	for _, c := range cols {
		if IsNil(c) {
			return nil, tableErrorf("New", ErrEmptyColumn)
		}
	}

	t := &Table{
		cols:  slices.Clone(cols),
		index: make(map[string]int, len(cols)),
		rows:  cols[0].Len(),
	}
	for i, c := range cols {
		if err := checkHeader(c.Name(), c.Len()); err != nil {
			return nil, tableErrorf("New", err)
		}
		if _, dup := t.index[c.Name()]; dup {
			return nil, tableErrorf("New: "+c.Name(), ErrDuplicateName)
		}
		if c.Len() != t.rows {
			return nil, tableErrorf("New: "+c.Name(), ErrLengthMismatch)
		}
		t.index[c.Name()] = i
	}

	return t, nil
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// NumRows returns the shared column length.
func (t *Table) NumRows() int { return t.rows }

// Columns returns the columns in table order. The slice is a copy; the
// columns themselves are immutable.
func (t *Table) Columns() []Column { return slices.Clone(t.cols) }

// Col returns the i-th column.
func (t *Table) Col(i int) Column { return t.cols[i] }

// Column looks a column up by name.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}

	return t.cols[i], true
}

// Has reports whether a column named name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]

	return ok
}

// Names returns the column names in table order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.Name()
	}

	return out
}

// String renders a short schema summary, e.g. "table[3x2](x:integer, g:categorical)".
func (t *Table) String() string {
	var b strings.Builder
	b.WriteString("table[")
	b.WriteString(strconv.Itoa(t.rows))
	b.WriteString("x")
	b.WriteString(strconv.Itoa(len(t.cols)))
	b.WriteString("](")
	for i, c := range t.cols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.Name())
		b.WriteString(":")
		b.WriteString(c.Kind().String())
	}
	b.WriteString(")")

	return b.String()
}
