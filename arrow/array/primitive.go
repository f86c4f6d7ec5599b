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
	"fmt"
	"strings"
	"unsafe"

	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/bitutil"
	"github.com/arrowcore/arrow/arrow/memory"
)

// Numeric is the set of fixed-width scalar kinds a Primitive[T] can hold
// (spec.md §3 "Primitive(T): fixed-width scalars"). A generic array
// variant replaces what upstream arrow-go expresses as a dozen
// near-identical code-generated files (Int8, Int16, ... Float64) — see
// DESIGN.md for why this is a deliberate, documented divergence rather
// than an omission.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Primitive is a fixed-width scalar array: one data buffer of length
// n*sizeof(T), optional validity (spec.md §3 Primitive(T)).
type Primitive[T Numeric] struct {
	base
	values []T
}

func rawValues[T Numeric](data arrow.ArrayData) []T {
	bufs := data.Buffers()
	if len(bufs) < 2 || bufs[1] == nil {
		return nil
	}
	return reinterpretBytes[T](bufs[1].Bytes())
}

// fixedWidth is the set of types reinterpretBytes can view a byte
// buffer as: every Numeric plus the i32/i64 offset widths List/Binary
// use.
type fixedWidth interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// reinterpretBytes views raw as a []T without copying, the same
// zero-copy discipline every fixed-width buffer access in this package
// follows (spec.md §4.3).
func reinterpretBytes[T fixedWidth](raw []byte) []T {
	var zero T
	width := int(unsafe.Sizeof(zero))
	if width == 0 || len(raw) < width {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), len(raw)/width)
}

// NewPrimitiveData wraps an ArrayData of matching physical width as a
// Primitive[T].
func NewPrimitiveData[T Numeric](data arrow.ArrayData) *Primitive[T] {
	data.Retain()
	return &Primitive[T]{base: base{data}, values: rawValues[T](data)}
}

// Value returns the i-th element (0-based, within this array's own
// length, ignoring validity).
func (a *Primitive[T]) Value(i int) T {
	return a.values[i+a.data.Offset()]
}

// Values returns the full backing slice for this array's own range
// (offset already applied), a borrowed view per spec.md §4.3.
func (a *Primitive[T]) Values() []T {
	off := a.data.Offset()
	return a.values[off : off+a.Len()]
}

func (a *Primitive[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if a.IsNull(i) {
			sb.WriteString("(null)")
		} else {
			fmt.Fprintf(&sb, "%v", a.Value(i))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// BuildPrimitiveData packs values/valid (valid==nil means all-valid)
// into an ArrayData of dtype, whose BitWidth must match sizeof(T)*8.
func BuildPrimitiveData[T Numeric](mem memory.Allocator, dtype arrow.DataType, values []T, valid []bool) *Data {
	n := len(values)
	var zero T
	width := int(unsafe.Sizeof(zero))
	raw := make([]byte, n*width)
	if n > 0 {
		src := unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
		copy(src, values)
	}
	vbuf := memory.NewBuffer(raw)

	var nullBuf *memory.Buffer
	nulls := 0
	if valid != nil {
		nullBuf = memory.NewBuffer(bitutil.BitmapFromBools(valid))
		for _, v := range valid {
			if !v {
				nulls++
			}
		}
	}
	return NewData(dtype, n, []*memory.Buffer{nullBuf, vbuf}, nil, nulls, 0)
}

// Type aliases for the common primitive kinds, matching the names every
// sibling Arrow-Go snapshot in the pack switches over.
type (
	Int8    = Primitive[int8]
	Int16   = Primitive[int16]
	Int32   = Primitive[int32]
	Int64   = Primitive[int64]
	Uint8   = Primitive[uint8]
	Uint16  = Primitive[uint16]
	Uint32  = Primitive[uint32]
	Uint64  = Primitive[uint64]
	Float32 = Primitive[float32]
	Float64 = Primitive[float64]
)

func NewInt64Data(data arrow.ArrayData) *Int64     { return NewPrimitiveData[int64](data) }
func NewInt32Data(data arrow.ArrayData) *Int32     { return NewPrimitiveData[int32](data) }
func NewInt16Data(data arrow.ArrayData) *Int16     { return NewPrimitiveData[int16](data) }
func NewInt8Data(data arrow.ArrayData) *Int8       { return NewPrimitiveData[int8](data) }
func NewUint64Data(data arrow.ArrayData) *Uint64   { return NewPrimitiveData[uint64](data) }
func NewUint32Data(data arrow.ArrayData) *Uint32   { return NewPrimitiveData[uint32](data) }
func NewUint16Data(data arrow.ArrayData) *Uint16   { return NewPrimitiveData[uint16](data) }
func NewUint8Data(data arrow.ArrayData) *Uint8     { return NewPrimitiveData[uint8](data) }
func NewFloat64Data(data arrow.ArrayData) *Float64 { return NewPrimitiveData[float64](data) }
func NewFloat32Data(data arrow.ArrayData) *Float32 { return NewPrimitiveData[float32](data) }

// NewInt64 builds an Int64 array from plain Go values (valid==nil means
// all-valid), using mem to allocate the backing buffers.
func NewInt64(mem memory.Allocator, values []int64, valid []bool) *Int64 {
	data := BuildPrimitiveData[int64](mem, arrow.PrimitiveTypes.Int64, values, valid)
	defer data.Release()
	return NewInt64Data(data)
}

// NewFloat64 builds a Float64 array from plain Go values.
func NewFloat64(mem memory.Allocator, values []float64, valid []bool) *Float64 {
	data := BuildPrimitiveData[float64](mem, arrow.PrimitiveTypes.Float64, values, valid)
	defer data.Release()
	return NewFloat64Data(data)
}
