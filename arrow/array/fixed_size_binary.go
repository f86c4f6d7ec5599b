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

// FixedSizeBinary is byte arrays every element of which is ByteWidth
// bytes wide, addressed by i*ByteWidth rather than an offsets buffer
// (spec.md §3 FixedSizeBinary(byteWidth)).
type FixedSizeBinary struct {
	base
	bytewidth int
	values    []byte
}

func NewFixedSizeBinaryData(data arrow.ArrayData) *FixedSizeBinary {
	data.Retain()
	a := &FixedSizeBinary{base: base{data}}
	if dt, ok := data.DataType().(*arrow.FixedSizeBinaryType); ok {
		a.bytewidth = dt.ByteWidth
	}
	if bufs := data.Buffers(); len(bufs) > 1 && bufs[1] != nil {
		a.values = bufs[1].Bytes()
	}
	return a
}

func (a *FixedSizeBinary) Value(i int) []byte {
	off := (i + a.data.Offset()) * a.bytewidth
	return a.values[off : off+a.bytewidth]
}

func (a *FixedSizeBinary) String() string {
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

// NewFixedSizeBinary builds a FixedSizeBinary array; every element of
// values must already be byteWidth long.
func NewFixedSizeBinary(mem memory.Allocator, byteWidth int, values [][]byte, valid []bool) *FixedSizeBinary {
	n := len(values)
	raw := make([]byte, n*byteWidth)
	for i, v := range values {
		copy(raw[i*byteWidth:], v)
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

	dtype := arrow.NewFixedSizeBinaryType(byteWidth)
	data := NewData(dtype, n, []*memory.Buffer{nullBuf, vbuf}, nil, nulls, 0)
	defer data.Release()
	return NewFixedSizeBinaryData(data)
}
