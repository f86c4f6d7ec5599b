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
)

// List is a variable-length nested array: offsets(O) + one child array
// covering the concatenated elements (spec.md §3 List(O,child)).
type List[O Offset] struct {
	base
	offsets []O
	values  Interface
}

func NewListData[O Offset](data arrow.ArrayData) *List[O] {
	data.Retain()
	a := &List[O]{base: base{data}}
	if bufs := data.Buffers(); len(bufs) > 1 && bufs[1] != nil {
		a.offsets = reinterpretBytes[O](bufs[1].Bytes())
	}
	if children := data.Children(); len(children) > 0 {
		a.values = MakeFromData(children[0])
	}
	return a
}

// ListOfArray returns the child array sliced to element i's range, the
// zero-copy view spec.md §4.3 requires for list element access.
func (a *List[O]) ListOfArray(i int) Interface {
	off := a.data.Offset()
	lo, hi := int(a.offsets[i+off]), int(a.offsets[i+off+1])
	return NewSlice(a.values, lo, hi-lo)
}

func (a *List[O]) ValueOffsets(i int) (start, end O) {
	off := a.data.Offset()
	return a.offsets[i+off], a.offsets[i+off+1]
}

func (a *List[O]) ListValues() Interface { return a.values }

func (a *List[O]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if a.IsNull(i) {
			sb.WriteString("(null)")
		} else {
			sub := a.ListOfArray(i)
			fmt.Fprintf(&sb, "%v", sub)
			sub.Release()
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *List[O]) Release() {
	if a.values != nil {
		a.values.Release()
	}
	a.base.Release()
}

type (
	ListArray      = List[int32]
	LargeListArray = List[int64]
)

func NewList32Data(data arrow.ArrayData) *ListArray      { return NewListData[int32](data) }
func NewLargeListData(data arrow.ArrayData) *LargeListArray { return NewListData[int64](data) }
