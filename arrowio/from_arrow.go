// SPDX-License-Identifier: MIT

package arrowio

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/katalvlaran/basegrid/table"
)

// MetadataLevels is the Arrow field metadata key holding a categorical level
// set as a JSON string array.
const MetadataLevels = "basegrid.levels"

// rawColumn accumulates one Arrow column across chunks before the
// complete-case filter is applied. Exactly one value slice is used, chosen by kind.
type rawColumn struct {
	name   string
	kind   table.Kind
	unit   table.TimeUnit
	valid  []bool
	floats []float64
	ints   []int64
	bools  []bool
	strs   []string
	times  []time.Time
	levels []string // nil: first-encountered order
	seen   map[string]bool
}

// valuer is the accessor shape shared by the typed Arrow arrays.
type valuer[T any] interface {
	Len() int
	IsNull(i int) bool
	Value(i int) T
}

// FromRecord converts one Arrow record batch. The record is not released.
func FromRecord(rec arrow.Record) (*table.Table, error) {
	if rec == nil {
		return nil, ioErrorf("FromRecord", ErrNilInput)
	}
	tbl := array.NewTableFromRecords(rec.Schema(), []arrow.Record{rec})
	defer tbl.Release()

	t, err := FromArrowTable(tbl)
	if err != nil {
		return nil, ioErrorf("FromRecord", err)
	}

	return t, nil
}

// FromArrowTable converts a (possibly chunked) Arrow table.
// Implementation:
//   - Stage 1: decode every column chunk by chunk into a rawColumn.
//   - Stage 2: keep rows valid in every column (complete cases).
//   - Stage 3: build typed table columns and the table.
//
// Errors: ErrNilInput, ErrUnsupportedArrowType, ErrNoRows, table constructor errors.
func FromArrowTable(tbl arrow.Table) (*table.Table, error) {
	if tbl == nil {
		return nil, ioErrorf("FromArrowTable", ErrNilInput)
	}

	// Stage 1: decode.
	schema := tbl.Schema()
	raws := make([]*rawColumn, tbl.NumCols())
	for i := range raws {
		field := schema.Field(i)
		r, err := newRawColumn(field)
		if err != nil {
			return nil, ioErrorf("FromArrowTable", err)
		}
		for _, chunk := range tbl.Column(i).Data().Chunks() {
			if err := r.appendChunk(chunk); err != nil {
				return nil, ioErrorf("FromArrowTable: "+field.Name, err)
			}
		}
		raws[i] = r
	}

	// Stage 2: complete cases.
	keep := make([]int, 0, tbl.NumRows())
	for row := 0; row < int(tbl.NumRows()); row++ {
		ok := true
		for _, r := range raws {
			if !r.valid[row] {
				ok = false
				break
			}
		}
		if ok {
			keep = append(keep, row)
		}
	}
	if len(raws) > 0 && len(keep) == 0 {
		return nil, ioErrorf("FromArrowTable", ErrNoRows)
	}

	// Stage 3: build.
	cols := make([]table.Column, len(raws))
	for i, r := range raws {
		c, err := r.build(keep)
		if err != nil {
			return nil, ioErrorf("FromArrowTable", err)
		}
		cols[i] = c
	}
	t, err := table.New(cols...)
	if err != nil {
		return nil, ioErrorf("FromArrowTable", err)
	}

	return t, nil
}

// newRawColumn picks the table kind for an Arrow field.
func newRawColumn(field arrow.Field) (*rawColumn, error) {
	r := &rawColumn{name: field.Name}
	switch field.Type.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		r.kind = table.Integer
	case arrow.FLOAT32, arrow.FLOAT64:
		r.kind = table.Continuous
	case arrow.BOOL:
		r.kind = table.Boolean
	case arrow.STRING, arrow.LARGE_STRING:
		r.kind = table.Categorical
		r.levels = levelsFromMetadata(field.Metadata)
	case arrow.DICTIONARY:
		dt := field.Type.(*arrow.DictionaryType)
		if id := dt.ValueType.ID(); id != arrow.STRING && id != arrow.LARGE_STRING {
			return nil, ioErrorf(field.Name, ErrUnsupportedArrowType)
		}
		r.kind = table.Categorical
		r.levels = []string{}
	case arrow.DATE32, arrow.DATE64:
		r.kind = table.Temporal
		r.unit = table.Day
	case arrow.TIMESTAMP:
		r.kind = table.Temporal
		r.unit = table.Second
	default:
		return nil, ioErrorf(field.Name+" ("+field.Type.String()+")", ErrUnsupportedArrowType)
	}
	r.seen = make(map[string]bool, len(r.levels))
	for _, l := range r.levels {
		r.seen[l] = true
	}

	return r, nil
}

// levelsFromMetadata reads the MetadataLevels key; nil when absent or malformed.
func levelsFromMetadata(md arrow.Metadata) []string {
	i := md.FindKey(MetadataLevels)
	if i < 0 {
		return nil
	}
	var levels []string
	if err := json.Unmarshal([]byte(md.Values()[i]), &levels); err != nil {
		return nil
	}

	return levels
}

// appendChunk decodes one Arrow array into r.
func (r *rawColumn) appendChunk(chunk arrow.Array) error {
	switch a := chunk.(type) {
	case *array.Int8:
		appendInts[int8](r, a)
	case *array.Int16:
		appendInts[int16](r, a)
	case *array.Int32:
		appendInts[int32](r, a)
	case *array.Int64:
		appendInts[int64](r, a)
	case *array.Uint8:
		appendInts[uint8](r, a)
	case *array.Uint16:
		appendInts[uint16](r, a)
	case *array.Uint32:
		appendInts[uint32](r, a)
	case *array.Uint64:
		for i := 0; i < a.Len(); i++ {
			if !a.IsNull(i) && a.Value(i) > math.MaxInt64 {
				return fmt.Errorf("%w: %d", table.ErrIntRange, a.Value(i))
			}
		}
		appendInts[uint64](r, a)
	case *array.Float32:
		appendFloats[float32](r, a)
	case *array.Float64:
		appendFloats[float64](r, a)
	case *array.Boolean:
		for i := 0; i < a.Len(); i++ {
			r.valid = append(r.valid, !a.IsNull(i))
			r.bools = append(r.bools, !a.IsNull(i) && a.Value(i))
		}
	case *array.String:
		appendLabels(r, a)
	case *array.LargeString:
		appendLabels(r, a)
	case *array.Dictionary:
		return r.appendDictionary(a)
	case *array.Date32:
		for i := 0; i < a.Len(); i++ {
			r.valid = append(r.valid, !a.IsNull(i))
			r.times = append(r.times, a.Value(i).ToTime())
		}
	case *array.Date64:
		for i := 0; i < a.Len(); i++ {
			r.valid = append(r.valid, !a.IsNull(i))
			r.times = append(r.times, a.Value(i).ToTime())
		}
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		for i := 0; i < a.Len(); i++ {
			r.valid = append(r.valid, !a.IsNull(i))
			r.times = append(r.times, a.Value(i).ToTime(unit))
		}
	default:
		return ErrUnsupportedArrowType
	}

	return nil
}

// appendDictionary decodes a dictionary-encoded string chunk. Dictionary
// entries extend the level set in order, chunk after chunk.
func (r *rawColumn) appendDictionary(a *array.Dictionary) error {
	var label func(i int) string
	switch dict := a.Dictionary().(type) {
	case *array.String:
		label = dict.Value
		for i := 0; i < dict.Len(); i++ {
			r.addLevel(dict.Value(i))
		}
	case *array.LargeString:
		label = dict.Value
		for i := 0; i < dict.Len(); i++ {
			r.addLevel(dict.Value(i))
		}
	default:
		return ErrUnsupportedArrowType
	}
	for i := 0; i < a.Len(); i++ {
		if a.IsNull(i) {
			r.valid = append(r.valid, false)
			r.strs = append(r.strs, "")
			continue
		}
		r.valid = append(r.valid, true)
		r.strs = append(r.strs, label(a.GetValueIndex(i)))
	}

	return nil
}

// addLevel appends l to an explicit level set unless already present.
func (r *rawColumn) addLevel(l string) {
	if !r.seen[l] {
		r.seen[l] = true
		r.levels = append(r.levels, l)
	}
}

func appendInts[T int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64](r *rawColumn, a valuer[T]) {
	for i := 0; i < a.Len(); i++ {
		r.valid = append(r.valid, !a.IsNull(i))
		r.ints = append(r.ints, int64(a.Value(i)))
	}
}

func appendFloats[T float32 | float64](r *rawColumn, a valuer[T]) {
	for i := 0; i < a.Len(); i++ {
		v := float64(a.Value(i))
		ok := !a.IsNull(i) && !math.IsNaN(v)
		r.valid = append(r.valid, ok)
		if !ok {
			v = 0
		}
		r.floats = append(r.floats, v)
	}
}

func appendLabels(r *rawColumn, a valuer[string]) {
	for i := 0; i < a.Len(); i++ {
		r.valid = append(r.valid, !a.IsNull(i))
		r.strs = append(r.strs, a.Value(i))
	}
}

// build materializes the kept rows as a table column.
func (r *rawColumn) build(keep []int) (table.Column, error) {
	switch r.kind {
	case table.Continuous:
		// whole-number float data classifies as Integer, as with table.Infer
		return table.FromFloats(r.name, pick(r.floats, keep))
	case table.Integer:
		return table.NewInt(r.name, pick(r.ints, keep))
	case table.Boolean:
		return table.NewBool(r.name, pick(r.bools, keep))
	case table.Categorical:
		labels := pick(r.strs, keep)
		levels := r.levels
		if len(levels) == 0 {
			levels = nil
		} else if !r.covers(labels) {
			levels = nil // stale metadata: fall back to first-encountered order
		}
		return table.NewFactor(r.name, labels, levels)
	case table.Temporal:
		return table.NewTime(r.name, pick(r.times, keep), r.unit)
	default:
		return nil, ErrUnsupportedArrowType
	}
}

// covers reports whether every label belongs to the explicit level set.
func (r *rawColumn) covers(labels []string) bool {
	for _, l := range labels {
		if !r.seen[l] {
			return false
		}
	}

	return true
}

// pick returns xs[keep[0]], xs[keep[1]], ...
func pick[T any](xs []T, keep []int) []T {
	out := make([]T, len(keep))
	for i, k := range keep {
		out[i] = xs[k]
	}

	return out
}
