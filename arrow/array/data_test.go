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

func TestDataLazyNullCount(t *testing.T) {
	validity := memory.NewBuffer([]byte{0b0000_1011}) // valid: 0,1,3 ; null: 2,4,5,6,7
	values := memory.NewBuffer(make([]byte, 8*8))

	data := array.NewData(arrow.PrimitiveTypes.Int64, 5, []*memory.Buffer{validity, values}, nil, -1, 0)
	defer data.Release()

	assert.Equal(t, 2, data.NullN())
}

func TestDataExplicitNullCountNotRecomputed(t *testing.T) {
	data := array.NewData(arrow.PrimitiveTypes.Int64, 3, []*memory.Buffer{nil, memory.NewBuffer(make([]byte, 24))}, nil, 7, 0)
	defer data.Release()

	// an explicit (even implausible) null count is trusted, not rescanned.
	assert.Equal(t, 7, data.NullN())
}

func TestNewSliceDataRetainsParentBuffers(t *testing.T) {
	mem := memory.DefaultAllocator()
	arr := array.NewInt64(mem, []int64{10, 20, 30, 40}, nil)
	defer arr.Release()

	sliced := array.NewSliceData(arr.Data(), 1, 2)
	view := array.NewInt64Data(sliced)
	sliced.Release()
	defer view.Release()

	require.Equal(t, 2, view.Len())
	assert.Equal(t, int64(20), view.Value(0))
	assert.Equal(t, int64(30), view.Value(1))

	// the parent must still be readable after the slice is released,
	// proving the slice retained (rather than borrowed) the buffers.
	assert.Equal(t, int64(10), arr.Value(0))
}

func TestDataReleaseFreesChildrenOnLastRef(t *testing.T) {
	mem := memory.DefaultAllocator()
	child := array.NewInt64(mem, []int64{1, 2}, nil)

	childData := child.Data()
	childData.Retain()
	parent := array.NewData(arrow.StructOf(arrow.Field{Name: "a", Type: arrow.PrimitiveTypes.Int64}), 2, []*memory.Buffer{nil}, []arrow.ArrayData{childData}, 0, 0)

	child.Release() // drop the caller's own reference; parent still holds one
	require.NotPanics(t, func() {
		_ = childData.Len()
	})

	parent.Release() // drops the last reference, releasing the child
}
