// SPDX-License-Identifier: MIT

package arrowio

import (
	"encoding/json"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/katalvlaran/basegrid/table"
)

// timestampUTC is the Arrow type of Second-unit temporal columns.
var timestampUTC = &arrow.TimestampType{Unit: arrow.Second, TimeZone: "UTC"}

// Schema returns the Arrow schema ToRecord produces for t.
func Schema(t *table.Table) *arrow.Schema {
	fields := make([]arrow.Field, t.NumCols())
	for i, c := range t.Columns() {
		fields[i] = fieldOf(c)
	}

	return arrow.NewSchema(fields, nil)
}

// fieldOf maps one column to its Arrow field.
func fieldOf(c table.Column) arrow.Field {
	f := arrow.Field{Name: c.Name(), Nullable: false}
	switch col := c.(type) {
	case *table.FloatColumn:
		f.Type = arrow.PrimitiveTypes.Float64
	case *table.IntColumn:
		f.Type = arrow.PrimitiveTypes.Int64
	case *table.BoolColumn:
		f.Type = arrow.FixedWidthTypes.Boolean
	case *table.FactorColumn:
		f.Type = arrow.BinaryTypes.String
		levels, _ := json.Marshal(col.Levels()) // []string always marshals
		f.Metadata = arrow.NewMetadata([]string{MetadataLevels}, []string{string(levels)})
	case *table.TimeColumn:
		if col.Unit() == table.Day {
			f.Type = arrow.FixedWidthTypes.Date32
		} else {
			f.Type = timestampUTC
		}
	}

	return f
}

// ToRecord converts t into one Arrow record batch allocated from mem
// (memory.DefaultAllocator when nil). The caller owns the record and must
// Release it.
func ToRecord(t *table.Table, mem memory.Allocator) (arrow.Record, error) {
	if t == nil || t.NumCols() == 0 {
		return nil, ioErrorf("ToRecord", ErrNilInput)
	}
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	b := array.NewRecordBuilder(mem, Schema(t))
	defer b.Release()

	for j, c := range t.Columns() {
		switch col := c.(type) {
		case *table.FloatColumn:
			b.Field(j).(*array.Float64Builder).AppendValues(col.Values(), nil)
		case *table.IntColumn:
			b.Field(j).(*array.Int64Builder).AppendValues(col.Values(), nil)
		case *table.BoolColumn:
			b.Field(j).(*array.BooleanBuilder).AppendValues(col.Values(), nil)
		case *table.FactorColumn:
			b.Field(j).(*array.StringBuilder).AppendValues(col.Values(), nil)
		case *table.TimeColumn:
			if col.Unit() == table.Day {
				fb := b.Field(j).(*array.Date32Builder)
				for _, v := range col.Values() {
					fb.Append(arrow.Date32FromTime(v))
				}
			} else {
				fb := b.Field(j).(*array.TimestampBuilder)
				for _, v := range col.Values() {
					fb.Append(arrow.Timestamp(v.Unix()))
				}
			}
		default:
			return nil, ioErrorf("ToRecord: "+c.Name(), ErrUnsupportedArrowType)
		}
	}

	return b.NewRecord(), nil
}

// ToArrowTable converts t into a single-chunk Arrow table. The caller must
// Release it.
func ToArrowTable(t *table.Table, mem memory.Allocator) (arrow.Table, error) {
	rec, err := ToRecord(t, mem)
	if err != nil {
		return nil, ioErrorf("ToArrowTable", err)
	}
	defer rec.Release()

	return array.NewTableFromRecords(rec.Schema(), []arrow.Record{rec}), nil
}
