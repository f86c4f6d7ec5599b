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

package bitutil_test

import (
	"testing"

	"github.com/arrowcore/arrow/arrow/bitutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesForBits(t *testing.T) {
	cases := []struct {
		bits int64
		want int64
	}{
		{0, 0}, {1, 1}, {7, 1}, {8, 1}, {9, 2}, {64, 8}, {65, 9},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, bitutil.BytesForBits(c.bits))
	}
}

func TestPaddedLength(t *testing.T) {
	assert.EqualValues(t, 8, bitutil.PaddedLength(1, 8))
	assert.EqualValues(t, 8, bitutil.PaddedLength(8, 8))
	assert.EqualValues(t, 16, bitutil.PaddedLength(9, 8))
	assert.EqualValues(t, 64, bitutil.PaddedLength(1, 64))
	assert.EqualValues(t, 5, bitutil.PaddedLength(5, 0))
}

func TestIsMultipleOf(t *testing.T) {
	assert.True(t, bitutil.IsMultipleOf8(0))
	assert.True(t, bitutil.IsMultipleOf8(16))
	assert.False(t, bitutil.IsMultipleOf8(9))
	assert.True(t, bitutil.IsMultipleOf64(64))
	assert.False(t, bitutil.IsMultipleOf64(63))
}

func TestSetClearBit(t *testing.T) {
	buf := make([]byte, 2)
	bitutil.SetBit(buf, 0)
	bitutil.SetBit(buf, 9)
	require.True(t, bitutil.BitIsSet(buf, 0))
	require.True(t, bitutil.BitIsSet(buf, 9))
	require.True(t, bitutil.BitIsNotSet(buf, 1))

	bitutil.ClearBit(buf, 0)
	assert.True(t, bitutil.BitIsNotSet(buf, 0))

	bitutil.SetBitTo(buf, 3, true)
	assert.True(t, bitutil.BitIsSet(buf, 3))
	bitutil.SetBitTo(buf, 3, false)
	assert.True(t, bitutil.BitIsNotSet(buf, 3))
}

func TestCountSetBits(t *testing.T) {
	valid := []bool{true, false, true, true, false, true, true, true, true, false}
	buf := bitutil.BitmapFromBools(valid)

	want := 0
	for _, v := range valid {
		if v {
			want++
		}
	}
	assert.Equal(t, want, bitutil.CountSetBits(buf, 0, len(valid)))

	// unaligned offset still counts correctly.
	assert.Equal(t, 6, bitutil.CountSetBits(buf, 2, 8))
}

func TestBitmapFromBools(t *testing.T) {
	buf := bitutil.BitmapFromBools([]bool{true, false, false, true, false, false, false, false, true})
	require.Len(t, buf, 2)
	assert.True(t, bitutil.BitIsSet(buf, 0))
	assert.True(t, bitutil.BitIsSet(buf, 3))
	assert.True(t, bitutil.BitIsSet(buf, 8))
	assert.True(t, bitutil.BitIsNotSet(buf, 1))
}
