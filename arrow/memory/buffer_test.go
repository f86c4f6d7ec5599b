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

package memory_test

import (
	"testing"

	"github.com/arrowcore/arrow/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferRetainRelease(t *testing.T) {
	buf := memory.NewBuffer([]byte{1, 2, 3, 4})
	require.Equal(t, 4, buf.Len())

	buf.Retain()
	buf.Release() // back to refcount 1, still alive
	assert.Equal(t, []byte{1, 2, 3, 4}, buf.Bytes())

	buf.Release() // refcount 0, contents freed
	assert.Equal(t, 0, buf.Len())
}

func TestBufferBytesBorrowedNotFreed(t *testing.T) {
	data := []byte{9, 9, 9}
	buf := memory.NewBufferBytes(data)
	buf.Release()
	// a borrowed buffer's Release never touches the caller's slice.
	assert.Equal(t, []byte{9, 9, 9}, data)
}

func TestResizableBufferGrowShrink(t *testing.T) {
	mem := memory.DefaultAllocator()
	buf := memory.NewResizableBuffer(mem)

	buf.Resize(4)
	copy(buf.Bytes(), []byte{1, 2, 3, 4})
	require.Equal(t, []byte{1, 2, 3, 4}, buf.Bytes())

	buf.Resize(2)
	assert.Equal(t, []byte{1, 2}, buf.Bytes())

	buf.Resize(4)
	assert.Equal(t, 4, buf.Len())
}

func TestResizeNonResizablePanics(t *testing.T) {
	buf := memory.NewBuffer([]byte{1})
	assert.Panics(t, func() { buf.Resize(8) })
}

func TestGoAllocatorReallocate(t *testing.T) {
	a := memory.NewGoAllocator()
	b := a.Allocate(4)
	copy(b, []byte{1, 2, 3, 4})

	grown := a.Reallocate(4, 8, b)
	require.Len(t, grown, 8)
	assert.Equal(t, []byte{1, 2, 3, 4}, grown[:4])

	shrunk := a.Reallocate(8, 2, grown)
	assert.Equal(t, []byte{1, 2}, shrunk)
}
