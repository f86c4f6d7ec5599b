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

	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/bitutil"
	"github.com/arrowcore/arrow/arrow/memory"
)

// Boolean is a bit-packed boolean column (spec.md §3 Bool).
type Boolean struct {
	base
	values []byte
}

func NewBooleanData(data arrow.ArrayData) *Boolean {
	data.Retain()
	a := &Boolean{base: base{data}}
	if bufs := data.Buffers(); len(bufs) > 1 && bufs[1] != nil {
		a.values = bufs[1].Bytes()
	}
	return a
}

// NewBooleanFromBools builds a Boolean array from plain Go values, valid
// marking nulls (nil valid means "all valid").
func NewBooleanFromBools(mem memory.Allocator, values []bool, valid []bool) *Boolean {
	data := buildBoolData(mem, arrow.Bool, values, valid)
	defer data.Release()
	return NewBooleanData(data)
}

func buildBoolData(mem memory.Allocator, dtype arrow.DataType, values, valid []bool) *Data {
	n := len(values)
	vbuf := memory.NewBuffer(bitutil.BitmapFromBools(values))
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

func (a *Boolean) Value(i int) bool {
	return bitutil.BitIsSet(a.values, i+a.data.Offset())
}

func (a *Boolean) String() string {
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
