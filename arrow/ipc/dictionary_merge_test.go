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
	"testing"

	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/array"
	"github.com/arrowcore/arrow/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDictionaryFixedWidth(t *testing.T) {
	mem := memory.DefaultAllocator()
	existing := array.NewInt64(mem, []int64{1, 2}, nil)
	defer existing.Release()
	next := array.NewInt64(mem, []int64{3, 4, 5}, nil)
	defer next.Release()

	merged, err := mergeDictionary(existing, next)
	require.NoError(t, err)
	defer merged.Release()

	got := merged.(*array.Int64)
	require.Equal(t, 5, got.Len())
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, got.Values())
}

func TestMergeDictionaryBitPacked(t *testing.T) {
	mem := memory.DefaultAllocator()
	existing := array.NewBooleanFromBools(mem, []bool{true, false}, nil)
	defer existing.Release()
	next := array.NewBooleanFromBools(mem, []bool{true, true, false}, nil)
	defer next.Release()

	merged, err := mergeDictionary(existing, next)
	require.NoError(t, err)
	defer merged.Release()

	got := merged.(*array.Boolean)
	require.Equal(t, 5, got.Len())
	want := []bool{true, false, true, true, false}
	for i, w := range want {
		assert.Equal(t, w, got.Value(i), "index %d", i)
	}
}

func TestMergeDictionaryBinaryString(t *testing.T) {
	mem := memory.DefaultAllocator()
	existing := array.NewStringArray(mem, []string{"red", "green"}, nil)
	defer existing.Release()
	next := array.NewStringArray(mem, []string{"blue"}, []bool{true})
	defer next.Release()

	merged, err := mergeDictionary(existing, next)
	require.NoError(t, err)
	defer merged.Release()

	got := merged.(*array.StringArray)
	require.Equal(t, 3, got.Len())
	assert.Equal(t, "red", got.ValueStr(0))
	assert.Equal(t, "green", got.ValueStr(1))
	assert.Equal(t, "blue", got.ValueStr(2))
}

func TestMergeDictionaryPreservesValidity(t *testing.T) {
	mem := memory.DefaultAllocator()
	existing := array.NewInt64(mem, []int64{1, 0}, []bool{true, false})
	defer existing.Release()
	next := array.NewInt64(mem, []int64{0, 4}, []bool{false, true})
	defer next.Release()

	merged, err := mergeDictionary(existing, next)
	require.NoError(t, err)
	defer merged.Release()

	got := merged.(*array.Int64)
	assert.True(t, got.IsValid(0))
	assert.True(t, got.IsNull(1))
	assert.True(t, got.IsNull(2))
	assert.True(t, got.IsValid(3))
}

func TestMergeDictionaryRejectsMismatchedTypes(t *testing.T) {
	mem := memory.DefaultAllocator()
	existing := array.NewInt64(mem, []int64{1}, nil)
	defer existing.Release()
	next := array.NewStringArray(mem, []string{"x"}, nil)
	defer next.Release()

	_, err := mergeDictionary(existing, next)
	assert.Error(t, err)
}

func TestMergeDictionaryRejectsNestedValueType(t *testing.T) {
	mem := memory.DefaultAllocator()
	inner := array.NewInt64(mem, []int64{1}, nil)
	defer inner.Release()
	innerData := inner.Data()
	innerData.Retain()

	offsets := array.BuildPrimitiveData[int32](mem, arrow.PrimitiveTypes.Int32, []int32{0, 1}, nil)
	defer offsets.Release()
	offBufs := offsets.Buffers()
	offBufs[1].Retain()

	dt := arrow.ListOf(arrow.PrimitiveTypes.Int64)
	data := array.NewData(dt, 1, []*memory.Buffer{nil, offBufs[1]}, []arrow.ArrayData{innerData}, 0, 0)
	defer data.Release()
	existing := array.NewList32Data(data)
	defer existing.Release()

	_, err := mergeDictionary(existing, existing)
	assert.Error(t, err)
}
