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

func unionFields() []arrow.Field {
	return []arrow.Field{
		{Name: "ints", Type: arrow.PrimitiveTypes.Int64},
		{Name: "strs", Type: arrow.Utf8},
	}
}

func typeIDBuffer(codes []int8) *memory.Buffer {
	raw := make([]byte, len(codes))
	for i, c := range codes {
		raw[i] = byte(c)
	}
	return memory.NewBuffer(raw)
}

func TestSparseUnionValue(t *testing.T) {
	mem := memory.DefaultAllocator()
	ints := array.NewInt64(mem, []int64{10, 0, 30}, nil)
	strs := array.NewStringArray(mem, []string{"", "hi", ""}, nil)

	intData, strData := ints.Data(), strs.Data()
	intData.Retain()
	strData.Retain()
	ints.Release()
	strs.Release()

	dt := arrow.UnionOf(arrow.SparseMode, unionFields(), []int8{0, 1})
	codes := typeIDBuffer([]int8{0, 1, 0})
	data := array.NewData(dt, 3, []*memory.Buffer{nil, codes}, []arrow.ArrayData{intData, strData}, 0, 0)
	defer data.Release()

	u := array.NewSparseUnionData(data)
	defer u.Release()

	require.Equal(t, int8(0), u.TypeCode(0))
	child, idx := u.Value(0)
	assert.Equal(t, int64(10), child.(*array.Int64).Value(idx))

	child, idx = u.Value(1)
	assert.Equal(t, "hi", child.(*array.StringArray).ValueStr(idx))
}

func TestDenseUnionValue(t *testing.T) {
	mem := memory.DefaultAllocator()
	ints := array.NewInt64(mem, []int64{10, 30}, nil)
	strs := array.NewStringArray(mem, []string{"hi"}, nil)

	intData, strData := ints.Data(), strs.Data()
	intData.Retain()
	strData.Retain()
	ints.Release()
	strs.Release()

	dt := arrow.UnionOf(arrow.DenseMode, unionFields(), []int8{0, 1})
	codes := typeIDBuffer([]int8{0, 1, 0})
	offsets := array.BuildPrimitiveData[int32](mem, arrow.PrimitiveTypes.Int32, []int32{0, 0, 1}, nil)
	defer offsets.Release()
	offBufs := offsets.Buffers()
	offBufs[1].Retain()

	data := array.NewData(dt, 3, []*memory.Buffer{nil, codes, offBufs[1]}, []arrow.ArrayData{intData, strData}, 0, 0)
	defer data.Release()

	u := array.NewDenseUnionData(data)
	defer u.Release()

	child, offset := u.Value(0)
	assert.Equal(t, int64(10), child.(*array.Int64).Value(offset))

	child, offset = u.Value(1)
	assert.Equal(t, "hi", child.(*array.StringArray).ValueStr(offset))

	child, offset = u.Value(2)
	assert.Equal(t, int64(30), child.(*array.Int64).Value(offset))
}

// TestNewSparseUnionFromArraysScatter exercises a non-prefix type-id
// arrangement: variant 0 (int64) is selected at positions 1 and 3,
// variant 1 (float64) at positions 0, 2 and 4. Each compact child array
// holds only its own selected values, in order, and
// NewSparseUnionFromArrays must scatter them to the matching absolute
// position while every other slot reads back as arrow.DefaultValue's
// zero bytes.
func TestNewSparseUnionFromArraysScatter(t *testing.T) {
	mem := memory.DefaultAllocator()
	fields := []arrow.Field{
		{Name: "ints", Type: arrow.PrimitiveTypes.Int64},
		{Name: "floats", Type: arrow.PrimitiveTypes.Float64},
	}
	dt := arrow.UnionOf(arrow.SparseMode, fields, []int8{0, 1})

	typeIDs := []int8{1, 0, 1, 0, 1}
	ints := array.NewInt64(mem, []int64{100, 300}, nil)
	floats := array.NewFloat64(mem, []float64{1.5, 2.5, 3.5}, nil)
	defer ints.Release()
	defer floats.Release()

	u := array.NewSparseUnionFromArrays(dt, typeIDs, []array.Interface{ints, floats})
	defer u.Release()

	wantInts := map[int]int64{1: 100, 3: 300}
	wantFloats := map[int]float64{0: 1.5, 2: 2.5, 4: 3.5}
	for i := 0; i < len(typeIDs); i++ {
		child, idx := u.Value(i)
		switch typeIDs[i] {
		case 0:
			assert.Equal(t, wantInts[i], child.(*array.Int64).Value(idx))
		case 1:
			assert.Equal(t, wantFloats[i], child.(*array.Float64).Value(idx))
		}
	}

	intChild := u.Child(0).(*array.Int64)
	require.Equal(t, len(typeIDs), intChild.Len())
	assert.Equal(t, int64(0), intChild.Value(0))
	assert.Equal(t, int64(0), intChild.Value(2))
	assert.Equal(t, int64(0), intChild.Value(4))

	floatChild := u.Child(1).(*array.Float64)
	require.Equal(t, len(typeIDs), floatChild.Len())
	assert.Equal(t, float64(0), floatChild.Value(1))
	assert.Equal(t, float64(0), floatChild.Value(3))
}
