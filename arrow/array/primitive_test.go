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

	"github.com/arrowcore/arrow/arrow/array"
	"github.com/arrowcore/arrow/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64ValuesAndValidity(t *testing.T) {
	mem := memory.DefaultAllocator()
	arr := array.NewInt64(mem, []int64{1, 2, 3}, []bool{true, false, true})
	defer arr.Release()

	require.Equal(t, 3, arr.Len())
	assert.Equal(t, 1, arr.NullN())
	assert.True(t, arr.IsValid(0))
	assert.True(t, arr.IsNull(1))
	assert.Equal(t, int64(3), arr.Value(2))
	assert.Equal(t, []int64{1, 2, 3}, arr.Values())
}

func TestInt64AllValidWhenNoValiditySlice(t *testing.T) {
	mem := memory.DefaultAllocator()
	arr := array.NewInt64(mem, []int64{7, 8}, nil)
	defer arr.Release()

	assert.Equal(t, 0, arr.NullN())
	assert.True(t, arr.IsValid(0))
	assert.True(t, arr.IsValid(1))
}

func TestFloat64Values(t *testing.T) {
	mem := memory.DefaultAllocator()
	arr := array.NewFloat64(mem, []float64{1.5, -2.25}, nil)
	defer arr.Release()

	assert.Equal(t, -2.25, arr.Value(1))
}

func TestBooleanBitPacking(t *testing.T) {
	mem := memory.DefaultAllocator()
	arr := array.NewBooleanFromBools(mem, []bool{true, false, true, true, false, false, false, false, true}, nil)
	defer arr.Release()

	require.Equal(t, 9, arr.Len())
	assert.True(t, arr.Value(0))
	assert.False(t, arr.Value(1))
	assert.True(t, arr.Value(8))
}

func TestStringArray(t *testing.T) {
	mem := memory.DefaultAllocator()
	arr := array.NewStringArray(mem, []string{"alpha", "", "gamma"}, []bool{true, false, true})
	defer arr.Release()

	require.Equal(t, 3, arr.Len())
	assert.Equal(t, 1, arr.NullN())
	assert.Equal(t, "alpha", arr.ValueStr(0))
	assert.Equal(t, "gamma", arr.ValueStr(2))
}

func TestBinary8ValueBytes(t *testing.T) {
	mem := memory.DefaultAllocator()
	arr := array.NewBinary8(mem, [][]byte{{1, 2}, {3}, {4, 5, 6}}, nil)
	defer arr.Release()

	assert.Equal(t, []byte{1, 2}, arr.Value(0))
	assert.Equal(t, []byte{3}, arr.Value(1))
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, arr.ValueBytes())
}
