// SPDX-License-Identifier: MIT

package arrowio

import (
	"errors"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/csv"

	"github.com/katalvlaran/basegrid/table"
)

// NullValues are the CSV cells read as missing.
var NullValues = []string{"", "NA", "NaN", "null"}

// ReadCSV reads a headed CSV stream, inferring column types from the data
// (int64, float64, bool, dates, timestamps, strings). Extra csv options are
// applied after the defaults (header, single chunk, NullValues).
func ReadCSV(r io.Reader, opts ...csv.Option) (*table.Table, error) {
	if r == nil {
		return nil, ioErrorf("ReadCSV", ErrNilInput)
	}
	base := []csv.Option{
		csv.WithHeader(true),
		csv.WithChunk(-1),
		csv.WithNullReader(true, NullValues...),
	}
	rdr := csv.NewInferringReader(r, append(base, opts...)...)
	defer rdr.Release()

	var recs []arrow.Record
	defer func() {
		for _, rec := range recs {
			rec.Release()
		}
	}()
	for rdr.Next() {
		rec := rdr.Record()
		rec.Retain()
		recs = append(recs, rec)
	}
	if err := rdr.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, ioErrorf("ReadCSV", err)
	}
	if len(recs) == 0 {
		return nil, ioErrorf("ReadCSV", ErrNoRows)
	}

	tbl := array.NewTableFromRecords(recs[0].Schema(), recs)
	defer tbl.Release()

	t, err := FromArrowTable(tbl)
	if err != nil {
		return nil, ioErrorf("ReadCSV", err)
	}

	return t, nil
}

// WriteCSV writes t as a headed CSV stream. Dates are written as
// YYYY-MM-DD, timestamps in RFC 3339 form as produced by Arrow.
func WriteCSV(w io.Writer, t *table.Table) error {
	rec, err := ToRecord(t, nil)
	if err != nil {
		return ioErrorf("WriteCSV", err)
	}
	defer rec.Release()

	cw := csv.NewWriter(w, rec.Schema(), csv.WithHeader(true))
	if err := cw.Write(rec); err != nil {
		return ioErrorf("WriteCSV", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return ioErrorf("WriteCSV", err)
	}

	return nil
}
