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

func TestFixedSizeBinaryValueAddressing(t *testing.T) {
	mem := memory.DefaultAllocator()
	values := [][]byte{
		{0x01, 0x02, 0x03, 0x04},
		{0x05, 0x06, 0x07, 0x08},
		{0x09, 0x0a, 0x0b, 0x0c},
	}
	arr := array.NewFixedSizeBinary(mem, 4, values, []bool{true, false, true})
	defer arr.Release()

	require.Equal(t, 3, arr.Len())
	assert.Equal(t, 1, arr.NullN())
	assert.Equal(t, values[0], arr.Value(0))
	assert.True(t, arr.IsNull(1))
	assert.Equal(t, values[2], arr.Value(2))
}
