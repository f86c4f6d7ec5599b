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
	"strconv"
	"strings"

	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/bitutil"
	"github.com/arrowcore/arrow/arrow/memory"
)

// Offset is the set of offset-element widths List(O,child) and
// Binary/Utf8 use (spec.md §3 Offsets(T∈{i32,i64})).
type Offset interface{ ~int32 | ~int64 }

// Binary is List(O, byte) specialized for raw bytes: offsets(O) + data
// buffer, element i = data[offsets[i]:offsets[i+1]] (spec.md §3 List
// specialization Binary/LargeBinary).
type Binary[O Offset] struct {
	base
	offsets []O
	values  []byte
}

func NewBinaryData[O Offset](data arrow.ArrayData) *Binary[O] {
	data.Retain()
	a := &Binary[O]{base: base{data}}
	if bufs := data.Buffers(); len(bufs) > 1 && bufs[1] != nil {
		a.offsets = reinterpretBytes[O](bufs[1].Bytes())
	}
	if bufs := data.Buffers(); len(bufs) > 2 && bufs[2] != nil {
		a.values = bufs[2].Bytes()
	}
	return a
}

func (a *Binary[O]) ValueOffset(i int) O { return a.offsets[i+a.data.Offset()] }

func (a *Binary[O]) Value(i int) []byte {
	off := a.data.Offset()
	lo, hi := a.offsets[i+off], a.offsets[i+off+1]
	return a.values[lo:hi]
}

// ValueBytes returns the contiguous data bytes spanning every element of
// this array's range in order (bytes stored for null elements included), matching
// the reference reader's `arr.ValueBytes()` helper used to size the
// encoded data buffer on write.
func (a *Binary[O]) ValueBytes() []byte {
	off := a.data.Offset()
	lo, hi := a.offsets[off], a.offsets[off+a.Len()]
	return a.values[lo:hi]
}

func (a *Binary[O]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if a.IsNull(i) {
			sb.WriteString("(null)")
		} else {
			sb.WriteString(strconv.Quote(string(a.Value(i))))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// String_ is Utf8 text: physically identical to Binary[O] with a text
// DataType tag (spec.md §3 Utf8/LargeUtf8). Named String_ to avoid
// colliding with the fmt.Stringer method name within this package.
type String_[O Offset] struct{ Binary[O] }

func NewStringData[O Offset](data arrow.ArrayData) *String_[O] {
	return &String_[O]{*NewBinaryData[O](data)}
}

func (a *String_[O]) ValueStr(i int) string { return string(a.Value(i)) }

func (a *String_[O]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if a.IsNull(i) {
			sb.WriteString("(null)")
		} else {
			sb.WriteString(strconv.Quote(a.ValueStr(i)))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

type (
	Binary8       = Binary[int32]
	LargeBinary8  = Binary[int64]
	StringArray   = String_[int32]
	LargeString   = String_[int64]
)

func NewBinary8Data(data arrow.ArrayData) *Binary8         { return NewBinaryData[int32](data) }
func NewLargeBinaryData(data arrow.ArrayData) *LargeBinary8 { return NewBinaryData[int64](data) }
func NewStringArrayData(data arrow.ArrayData) *StringArray  { return NewStringData[int32](data) }
func NewLargeStringData(data arrow.ArrayData) *LargeString  { return NewStringData[int64](data) }

// NewBinary8 builds a Binary8 array from raw byte slices (valid==nil means
// all-valid).
func NewBinary8(mem memory.Allocator, values [][]byte, valid []bool) *Binary8 {
	data := buildBinaryData(mem, arrow.BINARY, arrow.Binary, values, valid)
	defer data.Release()
	return NewBinary8Data(data)
}

// NewStringArray builds a StringArray from plain Go strings (valid==nil
// means all-valid).
func NewStringArray(mem memory.Allocator, values []string, valid []bool) *StringArray {
	data := buildBinaryData(mem, arrow.STRING, arrow.Utf8, toBytes(values), valid)
	defer data.Release()
	return NewStringArrayData(data)
}

func toBytes(values []string) [][]byte {
	out := make([][]byte, len(values))
	for i, v := range values {
		out[i] = []byte(v)
	}
	return out
}

func buildBinaryData(mem memory.Allocator, _ arrow.Type, dtype arrow.DataType, values [][]byte, valid []bool) *Data {
	n := len(values)
	offsets := make([]int32, n+1)
	total := 0
	for i, v := range values {
		total += len(v)
		offsets[i+1] = int32(total)
	}
	data := make([]byte, total)
	pos := 0
	for _, v := range values {
		pos += copy(data[pos:], v)
	}

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

	offsetsData := BuildPrimitiveData[int32](mem, arrow.PrimitiveTypes.Int32, offsets, nil)
	defer offsetsData.Release()

	bufs := []*memory.Buffer{nullBuf, offsetsData.Buffers()[1], memory.NewBuffer(data)}
	for _, b := range bufs {
		b.Retain()
	}
	return NewData(dtype, n, bufs, nil, nulls, 0)
}
