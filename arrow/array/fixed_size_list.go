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

// FixedSizeList is a nested array whose every element is exactly N
// children wide, with no offsets buffer (spec.md §3 FixedSizeList(n,child)).
type FixedSizeList struct {
	base
	n      int32
	values Interface
}

func NewFixedSizeListData(data arrow.ArrayData) *FixedSizeList {
	data.Retain()
	a := &FixedSizeList{base: base{data}}
	if dt, ok := data.DataType().(*arrow.FixedSizeListType); ok {
		a.n = int32(dt.Len())
	}
	if children := data.Children(); len(children) > 0 {
		a.values = MakeFromData(children[0])
	}
	return a
}

func (a *FixedSizeList) ListOfArray(i int) Interface {
	off := (i + a.data.Offset()) * int(a.n)
	return NewSlice(a.values, off, int(a.n))
}

func (a *FixedSizeList) ListValues() Interface { return a.values }

func (a *FixedSizeList) String() string {
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

func (a *FixedSizeList) Release() {
	if a.values != nil {
		a.values.Release()
	}
	a.base.Release()
}
