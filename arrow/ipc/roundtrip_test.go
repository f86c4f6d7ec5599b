// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ipc

import (
	"bytes"
	"context"
	"testing"

	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/array"
	"github.com/arrowcore/arrow/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nestedSchema() *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.Utf8, Nullable: true},
		{Name: "tags", Type: arrow.ListOf(arrow.Utf8)},
		{Name: "point", Type: arrow.StructOf(
			arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Float64},
			arrow.Field{Name: "y", Type: arrow.PrimitiveTypes.Float64},
		)},
	}, nil)
}

func buildNestedRecord(mem memory.Allocator, schema *arrow.Schema) arrow.Record {
	ids := array.NewInt64(mem, []int64{1, 2}, nil)
	names := array.NewStringArray(mem, []string{"alpha", ""}, []bool{true, false})

	words := array.NewStringArray(mem, []string{"a", "b", "c"}, nil)
	tags := array.NewList32Data(buildListData(mem, words, []int32{0, 2, 3}))
	words.Release()

	xs := array.NewFloat64(mem, []float64{1.5, 2.5}, nil)
	ys := array.NewFloat64(mem, []float64{-1.5, -2.5}, nil)
	xData, yData := xs.Data(), ys.Data()
	xData.Retain()
	yData.Retain()
	pointData := array.NewData(schema.Field(3).Type, 2, []*memory.Buffer{nil}, []arrow.ArrayData{xData, yData}, 0, 0)
	points := array.NewStructData(pointData)
	pointData.Release()
	xs.Release()
	ys.Release()

	rec := array.NewRecord(schema, []array.Interface{ids, names, tags, points}, -1)
	ids.Release()
	names.Release()
	tags.Release()
	points.Release()
	return rec
}

func TestStreamWriterReaderRoundTrip(t *testing.T) {
	mem := memory.DefaultAllocator()
	schema := nestedSchema()
	rec := buildNestedRecord(mem, schema)
	defer rec.Release()

	var buf bytes.Buffer
	w := NewWriter(&buf, WithSchema(schema))
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	defer r.Release()

	require.True(t, r.Schema().EqualNames(schema))
	require.True(t, r.Next())
	got := r.Record()

	assert.Equal(t, int64(2), got.NumRows())
	assert.Equal(t, int64(1), got.Column(0).(*array.Int64).Value(0))
	assert.True(t, got.Column(1).(*array.StringArray).IsNull(1))

	tagsCol := got.Column(2).(*array.ListArray)
	first := tagsCol.ListOfArray(0)
	defer first.Release()
	assert.Equal(t, "a", first.(*array.StringArray).ValueStr(0))

	pointCol := got.Column(3).(*array.Struct)
	assert.Equal(t, 1.5, pointCol.Field(0).(*array.Float64).Value(0))

	assert.False(t, r.Next())
	assert.NoError(t, r.Err())
}

func TestFileWriterFileReaderRoundTrip(t *testing.T) {
	mem := memory.DefaultAllocator()
	schema := arrow.NewSchema([]arrow.Field{{Name: "id", Type: arrow.PrimitiveTypes.Int64}}, nil)

	var buf bytes.Buffer
	fw, err := NewFileWriter(&buf, WithSchema(schema))
	require.NoError(t, err)

	rec1 := array.NewRecord(schema, []array.Interface{array.NewInt64(mem, []int64{1, 2}, nil)}, -1)
	require.NoError(t, fw.Write(rec1))
	rec1.Release()

	rec2 := array.NewRecord(schema, []array.Interface{array.NewInt64(mem, []int64{3, 4, 5}, nil)}, -1)
	require.NoError(t, fw.Write(rec2))
	rec2.Release()

	require.NoError(t, fw.Close())

	r, err := NewFileReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, 2, r.NumRecords())
	require.Equal(t, 0, r.NumDictionaries())
	require.True(t, r.Schema().EqualNames(schema))

	got1, err := r.RecordAt(0)
	require.NoError(t, err)
	defer got1.Release()
	assert.Equal(t, int64(2), got1.NumRows())
	assert.Equal(t, int64(1), got1.Column(0).(*array.Int64).Value(0))

	got2, err := r.RecordAt(1)
	require.NoError(t, err)
	defer got2.Release()
	assert.Equal(t, int64(3), got2.NumRows())
	assert.Equal(t, int64(5), got2.Column(0).(*array.Int64).Value(2))

	n := 0
	for {
		_, err := r.Read()
		if err != nil {
			break
		}
		n++
	}
	assert.Equal(t, 2, n)
}

func TestDictionaryDeltaBatchMergesOnRead(t *testing.T) {
	mem := memory.DefaultAllocator()
	dictType := &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int8, ValueType: arrow.Utf8}
	schema := arrow.NewSchema([]arrow.Field{{Name: "category", Type: dictType}}, nil)

	var buf bytes.Buffer
	w := NewWriter(&buf, WithSchema(schema), WithDictionaryEncoding(true, false))

	pool1 := array.NewStringArray(mem, []string{"red", "green"}, nil)
	idx1 := array.BuildPrimitiveData[int8](mem, arrow.PrimitiveTypes.Int8, []int8{0, 1, 0}, nil)
	data1 := idx1.Buffers()
	for _, b := range data1 {
		if b != nil {
			b.Retain()
		}
	}
	dictData1 := array.NewData(dictType, 3, data1, nil, 0, 0)
	col1 := array.NewDictionaryData(dictData1, pool1)
	dictData1.Release()
	idx1.Release()
	rec1 := array.NewRecord(schema, []array.Interface{col1}, -1)
	col1.Release()
	pool1.Release()
	require.NoError(t, w.Write(rec1))
	rec1.Release()

	pool2 := array.NewStringArray(mem, []string{"red", "green", "blue"}, nil)
	idx2 := array.BuildPrimitiveData[int8](mem, arrow.PrimitiveTypes.Int8, []int8{2, 0}, nil)
	data2 := idx2.Buffers()
	for _, b := range data2 {
		if b != nil {
			b.Retain()
		}
	}
	dictData2 := array.NewData(dictType, 2, data2, nil, 0, 0)
	col2 := array.NewDictionaryData(dictData2, pool2)
	dictData2.Release()
	idx2.Release()
	rec2 := array.NewRecord(schema, []array.Interface{col2}, -1)
	col2.Release()
	pool2.Release()
	require.NoError(t, w.Write(rec2))
	rec2.Release()

	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	defer r.Release()

	require.True(t, r.Next())
	got1 := r.Record().Column(0).(*array.Dictionary)
	assert.Equal(t, "red", got1.Dictionary().(*array.StringArray).ValueStr(got1.GetValueIndex(0)))

	require.True(t, r.Next())
	got2 := r.Record().Column(0).(*array.Dictionary)
	require.Equal(t, 3, got2.Dictionary().Len())
	assert.Equal(t, "blue", got2.Dictionary().(*array.StringArray).ValueStr(got2.GetValueIndex(0)))
	assert.Equal(t, "red", got2.Dictionary().(*array.StringArray).ValueStr(got2.GetValueIndex(1)))

	assert.False(t, r.Next())
}

func TestCompressedRecordBatchRoundTrip(t *testing.T) {
	mem := memory.DefaultAllocator()
	schema := arrow.NewSchema([]arrow.Field{{Name: "id", Type: arrow.PrimitiveTypes.Int64}}, nil)

	var buf bytes.Buffer
	w := NewWriter(&buf, WithSchema(schema), WithCompression(CompressionLZ4Frame))

	values := make([]int64, 256)
	for i := range values {
		values[i] = int64(i)
	}
	rec := array.NewRecord(schema, []array.Interface{array.NewInt64(mem, values, nil)}, -1)
	require.NoError(t, w.Write(rec))
	rec.Release()
	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	defer r.Release()

	require.True(t, r.Next())
	got := r.Record().Column(0).(*array.Int64)
	assert.Equal(t, values, got.Values())
	assert.False(t, r.Next())
}

// TestAlignment64RoundTrip exercises WithAlignment(64): a schema whose
// buffers land on odd byte lengths (a 3-element Utf8 column) forces padding
// beyond the default 8-byte boundary, which only surfaces a mismatch
// between the metadata's declared buffer offsets/BodyLength and the bytes
// physically written if the two disagree on alignment.
func TestAlignment64RoundTrip(t *testing.T) {
	mem := memory.DefaultAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.Utf8},
	}, nil)

	var buf bytes.Buffer
	w := NewWriter(&buf, WithSchema(schema), WithAlignment(64))

	ids := array.NewInt64(mem, []int64{1, 2, 3}, nil)
	names := array.NewStringArray(mem, []string{"a", "bb", "ccc"}, nil)
	rec := array.NewRecord(schema, []array.Interface{ids, names}, -1)
	ids.Release()
	names.Release()
	require.NoError(t, w.Write(rec))
	rec.Release()
	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	defer r.Release()

	require.True(t, r.Next())
	got := r.Record()
	assert.Equal(t, []int64{1, 2, 3}, got.Column(0).(*array.Int64).Values())
	strs := got.Column(1).(*array.StringArray)
	assert.Equal(t, "a", strs.ValueStr(0))
	assert.Equal(t, "bb", strs.ValueStr(1))
	assert.Equal(t, "ccc", strs.ValueStr(2))
	assert.False(t, r.Next())
}

func TestWritePartitionsEmitsInOrderWithConcurrentEncode(t *testing.T) {
	mem := memory.DefaultAllocator()
	schema := arrow.NewSchema([]arrow.Field{{Name: "id", Type: arrow.PrimitiveTypes.Int64}}, nil)

	const n = 6
	recs := make([]arrow.Record, n)
	for i := 0; i < n; i++ {
		recs[i] = array.NewRecord(schema, []array.Interface{array.NewInt64(mem, []int64{int64(i)}, nil)}, -1)
	}
	defer func() {
		for _, r := range recs {
			r.Release()
		}
	}()

	var buf bytes.Buffer
	w := NewWriter(&buf, WithSchema(schema), WithConcurrency(4))

	require.NoError(t, w.WritePartitions(context.Background(), recs))
	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	defer r.Release()

	for i := 0; i < n; i++ {
		require.True(t, r.Next())
		assert.Equal(t, int64(i), r.Record().Column(0).(*array.Int64).Value(0))
	}
	assert.False(t, r.Next())
}
