// SPDX-License-Identifier: MIT

package arrowio

import (
	"context"
	"io"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/katalvlaran/basegrid/table"
)

// ReadParquet reads a whole Parquet file into a table.
func ReadParquet(ctx context.Context, r parquet.ReaderAtSeeker) (*table.Table, error) {
	if r == nil {
		return nil, ioErrorf("ReadParquet", ErrNilInput)
	}
	mem := memory.DefaultAllocator
	tbl, err := pqarrow.ReadTable(ctx, r, parquet.NewReaderProperties(mem), pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, ioErrorf("ReadParquet", err)
	}
	defer tbl.Release()

	t, err := FromArrowTable(tbl)
	if err != nil {
		return nil, ioErrorf("ReadParquet", err)
	}

	return t, nil
}

// WriteParquet writes t as a Snappy-compressed Parquet file. The Arrow schema
// (including categorical level metadata) is stored in the file.
func WriteParquet(w io.Writer, t *table.Table) error {
	tbl, err := ToArrowTable(t, nil)
	if err != nil {
		return ioErrorf("WriteParquet", err)
	}
	defer tbl.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())
	if err := pqarrow.WriteTable(tbl, w, tbl.NumRows(), props, arrowProps); err != nil {
		return ioErrorf("WriteParquet", err)
	}

	return nil
}
