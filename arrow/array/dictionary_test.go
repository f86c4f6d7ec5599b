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

func TestDictionaryGetValueIndex(t *testing.T) {
	mem := memory.DefaultAllocator()
	pool := array.NewStringArray(mem, []string{"red", "green", "blue"}, nil)
	defer pool.Release()

	dt := &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int8, ValueType: arrow.Utf8}
	indices := array.BuildPrimitiveData[int8](mem, arrow.PrimitiveTypes.Int8, []int8{2, 0, 1, 0}, []bool{true, true, false, true})
	defer indices.Release()

	idxBufs := indices.Buffers()
	for _, b := range idxBufs {
		if b != nil {
			b.Retain()
		}
	}
	data := array.NewData(dt, 4, idxBufs, nil, -1, 0)
	defer data.Release()

	d := array.NewDictionaryData(data, pool)
	defer d.Release()

	require.Equal(t, 4, d.Len())
	assert.Equal(t, 2, d.GetValueIndex(0))
	assert.Equal(t, 0, d.GetValueIndex(1))
	assert.Equal(t, -1, d.GetValueIndex(2)) // null slot
	assert.Same(t, pool, d.Dictionary())

	assert.Equal(t, "blue", d.Dictionary().(*array.StringArray).ValueStr(d.GetValueIndex(0)))
}
