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

package array

import (
	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/bitutil"
)

// Interface is the typed, read-only contract every array variant
// satisfies on top of arrow.ArrayData (spec.md §4.3: len(), element
// access with bounds check, validity query, child/buffer enumeration).
type Interface interface {
	arrow.Array
	IsNull(i int) bool
	IsValid(i int) bool
	String() string
	Retain()
	Release()
}

// base is embedded by every concrete array kind; it implements the
// validity-bitmap query shared by all of them directly against the data
// buffer, leaving each variant to add its own value-access method(s).
type base struct {
	data arrow.ArrayData
}

func (b *base) Data() arrow.ArrayData { return b.data }
func (b *base) DataType() arrow.DataType { return b.data.DataType() }
func (b *base) Len() int                 { return b.data.Len() }
func (b *base) NullN() int                { return b.data.NullN() }

func (b *base) validityBuffer() []byte {
	bufs := b.data.Buffers()
	if len(bufs) == 0 || bufs[0] == nil || bufs[0].Len() == 0 {
		return nil
	}
	return bufs[0].Bytes()
}

// IsValid reports whether element i (0-based, within this array's own
// length) is non-null. An array whose validity buffer is empty is
// "all valid" per spec.md §3 ValidityBitmap.
func (b *base) IsValid(i int) bool {
	buf := b.validityBuffer()
	if buf == nil {
		return true
	}
	return bitutil.BitIsSet(buf, i+b.data.Offset())
}

func (b *base) IsNull(i int) bool { return !b.IsValid(i) }

func (b *base) Retain() {
	b.data.Retain()
}

func (b *base) Release() {
	b.data.Release()
}
