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

package array_test

import (
	"testing"

	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/array"
	"github.com/arrowcore/arrow/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildListData wraps a flat child array under a List(int32 offsets)
// with the given element boundaries (e.g. [0,2,2,5] for three elements
// of lengths 2,0,3).
func buildListData(mem memory.Allocator, child array.Interface, offsets []int32) *array.Data {
	offData := array.BuildPrimitiveData[int32](mem, arrow.PrimitiveTypes.Int32, offsets, nil)
	defer offData.Release()

	childData := child.Data()
	childData.Retain()
	bufs := offData.Buffers()
	for _, b := range bufs {
		b.Retain()
	}
	dt := arrow.ListOf(child.DataType())
	return array.NewData(dt, len(offsets)-1, []*memory.Buffer{nil, bufs[1]}, []arrow.ArrayData{childData}, 0, 0)
}

func TestListOfArrayZeroCopySlice(t *testing.T) {
	mem := memory.DefaultAllocator()
	child := array.NewInt64(mem, []int64{1, 2, 3, 4, 5}, nil)
	defer child.Release()

	data := buildListData(mem, child, []int32{0, 2, 2, 5})
	defer data.Release()
	list := array.NewList32Data(data)
	defer list.Release()

	require.Equal(t, 3, list.Len())

	first := list.ListOfArray(0)
	defer first.Release()
	assert.Equal(t, 2, first.Len())
	assert.Equal(t, int64(1), first.(*array.Int64).Value(0))
	assert.Equal(t, int64(2), first.(*array.Int64).Value(1))

	empty := list.ListOfArray(1)
	defer empty.Release()
	assert.Equal(t, 0, empty.Len())

	last := list.ListOfArray(2)
	defer last.Release()
	assert.Equal(t, 3, last.Len())
	assert.Equal(t, int64(5), last.(*array.Int64).Value(2))
}

func TestStructFieldsShareParentValidity(t *testing.T) {
	mem := memory.DefaultAllocator()
	names := array.NewStringArray(mem, []string{"a", "b", "c"}, nil)
	ages := array.NewInt64(mem, []int64{10, 20, 30}, nil)

	nameData, ageData := names.Data(), ages.Data()
	nameData.Retain()
	ageData.Retain()

	dt := arrow.StructOf(
		arrow.Field{Name: "name", Type: arrow.Utf8},
		arrow.Field{Name: "age", Type: arrow.PrimitiveTypes.Int64},
	)
	validity := memory.NewBuffer([]byte{0b0000_0101}) // element 1 is null
	data := array.NewData(dt, 3, []*memory.Buffer{validity}, []arrow.ArrayData{nameData, ageData}, -1, 0)
	defer data.Release()

	names.Release()
	ages.Release()

	s := array.NewStructData(data)
	defer s.Release()

	require.Equal(t, 2, s.NumField())
	assert.True(t, s.IsValid(0))
	assert.True(t, s.IsNull(1))
	assert.Equal(t, "c", s.Field(0).(*array.StringArray).ValueStr(2))
	assert.Equal(t, int64(30), s.Field(1).(*array.Int64).Value(2))
}

func TestMapKeysAndItems(t *testing.T) {
	mem := memory.DefaultAllocator()
	keys := array.NewStringArray(mem, []string{"k0", "k1", "k2"}, nil)
	vals := array.NewInt64(mem, []int64{1, 2, 3}, nil)

	keyData, valData := keys.Data(), vals.Data()
	keyData.Retain()
	valData.Retain()
	entryType := arrow.StructOf(
		arrow.Field{Name: "key", Type: arrow.Utf8},
		arrow.Field{Name: "value", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	)
	entries := array.NewData(entryType, 3, []*memory.Buffer{nil}, []arrow.ArrayData{keyData, valData}, 0, 0)
	entriesArr := array.NewStructData(entries)
	entries.Release()

	keys.Release()
	vals.Release()

	mapData := buildListData(mem, entriesArr, []int32{0, 2, 3})
	entriesArr.Release()
	defer mapData.Release()

	mp := array.NewMapData(mapData)
	defer mp.Release()

	require.Equal(t, 2, mp.Len())
	k, v := mp.KeysAndItems(0)
	defer k.Release()
	defer v.Release()
	assert.Equal(t, 2, k.Len())
	assert.Equal(t, "k0", k.(*array.StringArray).ValueStr(0))
	assert.Equal(t, int64(2), v.(*array.Int64).Value(1))
}
