// SPDX-License-Identifier: MIT

package arrowio_test

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basegrid/arrowio"
	"github.com/katalvlaran/basegrid/grid"
	"github.com/katalvlaran/basegrid/table"
)

var day0 = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

// sample builds a table holding every column kind.
func sample(t *testing.T) *table.Table {
	t.Helper()
	f, err := table.NewFloat("f", []float64{0.5, -1.25, 3.75})
	require.NoError(t, err)
	i, err := table.NewInt("i", []int64{1, 2, 40})
	require.NoError(t, err)
	b, err := table.NewBool("b", []bool{true, false, true})
	require.NoError(t, err)
	g, err := table.NewFactor("g", []string{"lo", "hi", "lo"}, []string{"hi", "mid", "lo"})
	require.NoError(t, err)
	d, err := table.NewTime("d", []time.Time{day0, day0.AddDate(0, 0, 1), day0.AddDate(0, 1, 0)}, table.Day)
	require.NoError(t, err)
	s, err := table.NewTime("s", []time.Time{day0.Add(time.Hour), day0, day0.Add(90 * time.Second)}, table.Second)
	require.NoError(t, err)

	tb, err := table.New(f, i, b, g, d, s)
	require.NoError(t, err)

	return tb
}

func TestRecord_RoundTrip(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	in := sample(t)
	rec, err := arrowio.ToRecord(in, mem)
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(3), rec.NumRows())
	wantTypes := []arrow.Type{arrow.FLOAT64, arrow.INT64, arrow.BOOL, arrow.STRING, arrow.DATE32, arrow.TIMESTAMP}
	for j, want := range wantTypes {
		assert.Equal(t, want, rec.Schema().Field(j).Type.ID(), "field %d", j)
	}

	out, err := arrowio.FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	g, _ := out.Column("g")
	assert.Equal(t, []string{"hi", "mid", "lo"}, g.(*table.FactorColumn).Levels(), "level set from field metadata")
}

func TestFromRecord_DropsIncompleteRows(t *testing.T) {
	mem := memory.NewGoAllocator()

	ib := array.NewInt64Builder(mem)
	defer ib.Release()
	ib.AppendValues([]int64{1, 0, 3, 4}, []bool{true, false, true, true})
	ints := ib.NewArray()
	defer ints.Release()

	fb := array.NewFloat64Builder(mem)
	defer fb.Release()
	fb.AppendValues([]float64{0.5, 1.5, math.NaN(), 4.5}, nil)
	floats := fb.NewArray()
	defer floats.Release()

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "i", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		{Name: "f", Type: arrow.PrimitiveTypes.Float64},
	}, nil)
	rec := array.NewRecord(schema, []arrow.Array{ints, floats}, 4)
	defer rec.Release()

	out, err := arrowio.FromRecord(rec)
	require.NoError(t, err)
	require.Equal(t, 2, out.NumRows())

	i, _ := out.Column("i")
	f, _ := out.Column("f")
	assert.Equal(t, []int64{1, 4}, i.(*table.IntColumn).Values())
	assert.Equal(t, []float64{0.5, 4.5}, f.(*table.FloatColumn).Values())
}

func TestFromRecord_AllRowsMissing(t *testing.T) {
	mem := memory.NewGoAllocator()
	ib := array.NewInt64Builder(mem)
	defer ib.Release()
	ib.AppendNull()
	arr := ib.NewArray()
	defer arr.Release()

	schema := arrow.NewSchema([]arrow.Field{{Name: "i", Type: arrow.PrimitiveTypes.Int64, Nullable: true}}, nil)
	rec := array.NewRecord(schema, []arrow.Array{arr}, 1)
	defer rec.Release()

	_, err := arrowio.FromRecord(rec)
	assert.ErrorIs(t, err, arrowio.ErrNoRows)
}

func TestFromRecord_Dictionary(t *testing.T) {
	mem := memory.NewGoAllocator()

	idx := array.NewInt32Builder(mem)
	defer idx.Release()
	idx.AppendValues([]int32{1, 0, 1}, nil)
	indices := idx.NewArray()
	defer indices.Release()

	sb := array.NewStringBuilder(mem)
	defer sb.Release()
	sb.AppendValues([]string{"x", "y", "z"}, nil)
	dict := sb.NewArray()
	defer dict.Release()

	dt := &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: arrow.BinaryTypes.String}
	arr := array.NewDictionaryArray(dt, indices, dict)
	defer arr.Release()

	schema := arrow.NewSchema([]arrow.Field{{Name: "g", Type: dt}}, nil)
	rec := array.NewRecord(schema, []arrow.Array{arr}, 3)
	defer rec.Release()

	out, err := arrowio.FromRecord(rec)
	require.NoError(t, err)
	g, _ := out.Column("g")
	fc := g.(*table.FactorColumn)
	assert.Equal(t, []string{"y", "x", "y"}, fc.Values())
	assert.Equal(t, []string{"x", "y", "z"}, fc.Levels(), "dictionary order, unused entries kept")
}

func TestFromRecord_Unsupported(t *testing.T) {
	mem := memory.NewGoAllocator()
	bb := array.NewBinaryBuilder(mem, arrow.BinaryTypes.Binary)
	defer bb.Release()
	bb.Append([]byte{1})
	arr := bb.NewArray()
	defer arr.Release()

	schema := arrow.NewSchema([]arrow.Field{{Name: "raw", Type: arrow.BinaryTypes.Binary}}, nil)
	rec := array.NewRecord(schema, []arrow.Array{arr}, 1)
	defer rec.Release()

	_, err := arrowio.FromRecord(rec)
	assert.ErrorIs(t, err, arrowio.ErrUnsupportedArrowType)

	_, err = arrowio.FromRecord(nil)
	assert.ErrorIs(t, err, arrowio.ErrNilInput)

	_, err = arrowio.ToRecord(nil, nil)
	assert.ErrorIs(t, err, arrowio.ErrNilInput)
}

func TestCSV_ReadInfersKinds(t *testing.T) {
	src := "x,f,g\n1,0.5,a\n2,NA,b\n3,2.5,a\n"

	out, err := arrowio.ReadCSV(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []string{"x", "f", "g"}, out.Names())
	require.Equal(t, 2, out.NumRows(), "row with NA is dropped")

	x, _ := out.Column("x")
	f, _ := out.Column("f")
	g, _ := out.Column("g")
	assert.Equal(t, table.Integer, x.Kind())
	assert.Equal(t, table.Continuous, f.Kind())
	assert.Equal(t, table.Categorical, g.Kind())
	assert.Equal(t, []int64{1, 3}, x.(*table.IntColumn).Values())
	assert.Equal(t, []float64{0.5, 2.5}, f.(*table.FloatColumn).Values())
	assert.Equal(t, []string{"a", "a"}, g.(*table.FactorColumn).Values())
}

func TestCSV_WriteThenRead(t *testing.T) {
	x, _ := table.NewInt("x", []int64{10, 20})
	f, _ := table.NewFloat("f", []float64{0.25, 7.5})
	g, _ := table.NewFactor("g", []string{"p", "q"}, nil)
	in, err := table.New(x, f, g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, arrowio.WriteCSV(&buf, in))
	assert.True(t, strings.HasPrefix(buf.String(), "x,f,g\n"), "header first: %q", buf.String())

	out, err := arrowio.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParquet_RoundTrip(t *testing.T) {
	in := sample(t)

	var buf bytes.Buffer
	require.NoError(t, arrowio.WriteParquet(&buf, in))

	out, err := arrowio.ReadParquet(context.Background(), bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, in.Names(), out.Names())

	for j := 0; j < in.NumCols(); j++ {
		want, got := in.Col(j), out.Col(j)
		assert.Equal(t, want.Kind(), got.Kind(), "kind of %s", want.Name())
		if diff := cmp.Diff(want.Ordinals(), got.Ordinals()); diff != "" && want.Kind() != table.Categorical {
			t.Errorf("%s ordinals (-want +got):\n%s", want.Name(), diff)
		}
	}
	g, _ := out.Column("g")
	assert.Equal(t, []string{"lo", "hi", "lo"}, g.(*table.FactorColumn).Values())
}

func TestCSV_WholeFloatsAreInteger(t *testing.T) {
	out, err := arrowio.ReadCSV(strings.NewReader("x\n1.0\n2.0\n"))
	require.NoError(t, err)

	x, _ := out.Column("x")
	require.Equal(t, table.Integer, x.Kind())
	assert.Equal(t, []int64{1, 2}, x.(*table.IntColumn).Values())

	inferred, err := table.Infer("x", []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, inferred.Kind(), x.Kind(), "same kind as table.Infer")

	g, _, err := grid.Generate(out)
	require.NoError(t, err)
	gx, _ := g.Column("x")
	assert.Equal(t, []int64{2}, gx.(*table.IntColumn).Values(), "base is a whole number")
}

func TestFromRecord_Uint64Overflow(t *testing.T) {
	mem := memory.NewGoAllocator()
	ub := array.NewUint64Builder(mem)
	defer ub.Release()
	ub.AppendValues([]uint64{1, math.MaxUint64}, nil)
	arr := ub.NewArray()
	defer arr.Release()

	schema := arrow.NewSchema([]arrow.Field{{Name: "u", Type: arrow.PrimitiveTypes.Uint64}}, nil)
	rec := array.NewRecord(schema, []arrow.Array{arr}, 2)
	defer rec.Release()

	_, err := arrowio.FromRecord(rec)
	assert.ErrorIs(t, err, table.ErrIntRange)
}
