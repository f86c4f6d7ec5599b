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
	"github.com/arrowcore/arrow/arrow/memory"
)

// union holds the parts shared by DenseUnion and SparseUnion: a
// per-element type_ids(i8) buffer and one child array per variant
// (spec.md §3 DenseUnion/SparseUnion).
type union struct {
	base
	typeIDs  []int8
	children []Interface
	typeCode *arrow.UnionType
}

func (u *union) TypeCode(i int) int8 {
	return u.typeIDs[i+u.data.Offset()]
}

func (u *union) Child(typeCode int8) Interface {
	idx := u.typeCode.ChildIndex(typeCode)
	return u.children[idx]
}

func (u *union) Release() {
	for _, c := range u.children {
		c.Release()
	}
	u.base.Release()
}

func newUnion(data arrow.ArrayData) union {
	data.Retain()
	u := union{base: base{data}}
	if dt, ok := data.DataType().(*arrow.UnionType); ok {
		u.typeCode = dt
	}
	if bufs := data.Buffers(); len(bufs) > 1 && bufs[1] != nil {
		raw := bufs[1].Bytes()
		u.typeIDs = make([]int8, len(raw))
		for i, b := range raw {
			u.typeIDs[i] = int8(b)
		}
	}
	children := data.Children()
	u.children = make([]Interface, len(children))
	for i, c := range children {
		u.children[i] = MakeFromData(c)
	}
	return u
}

// DenseUnion locates element i via offsets[i] into children[type_ids[i]]
// (spec.md §3 DenseUnion).
type DenseUnion struct {
	union
	offsets []int32
}

func NewDenseUnionData(data arrow.ArrayData) *DenseUnion {
	a := &DenseUnion{union: newUnion(data)}
	if bufs := data.Buffers(); len(bufs) > 2 && bufs[2] != nil {
		a.offsets = reinterpretBytes[int32](bufs[2].Bytes())
	}
	return a
}

// Value returns the child array element i is physically stored in.
func (a *DenseUnion) Value(i int) (child Interface, childIndex int) {
	off := a.data.Offset()
	code := a.typeIDs[i+off]
	idx := a.typeCode.ChildIndex(code)
	return a.children[idx], int(a.offsets[i+off])
}

// SparseUnion locates element i at children[type_ids[i]][i]: every
// child shares the parent's own length (spec.md §3 SparseUnion).
type SparseUnion struct {
	union
}

func NewSparseUnionData(data arrow.ArrayData) *SparseUnion {
	return &SparseUnion{union: newUnion(data)}
}

func (a *SparseUnion) Value(i int) (child Interface, index int) {
	off := a.data.Offset()
	code := a.typeIDs[i+off]
	idx := a.typeCode.ChildIndex(code)
	return a.children[idx], i + off
}

// scatterSparseChild builds the full-length, fixed-width child array one
// variant of a sparse union needs (spec.md §3: "every child shares the
// parent's length") from compact, a child array holding exactly as many
// values as code is selected for in typeIDs, in order. Each selected
// global position is filled by copying compact's next value in turn;
// every other position — never selected for this variant — gets
// arrow.DefaultValue(T) zero bytes, so the union's bytes stay
// deterministic and comparable byte-for-byte across writers regardless
// of what garbage a caller's compact array happened to carry past its
// own length (spec.md §4.2 "default(T)"; DESIGN.md Open Question #2).
func scatterSparseChild(compact Interface, code int8, typeIDs []int8, length int) arrow.ArrayData {
	zero := arrow.DefaultValue(compact.DataType())
	if zero == nil {
		data := compact.Data()
		data.Retain()
		return data
	}

	width := len(zero)
	raw := make([]byte, length*width)
	for i := 0; i < length; i++ {
		copy(raw[i*width:(i+1)*width], zero)
	}

	src := compact.Data().Buffers()[1].Bytes()
	cursor := 0
	for pos, t := range typeIDs {
		if t != code {
			continue
		}
		copy(raw[pos*width:(pos+1)*width], src[cursor*width:(cursor+1)*width])
		cursor++
	}
	return NewData(compact.DataType(), length, []*memory.Buffer{nil, memory.NewBuffer(raw)}, nil, 0, 0)
}

// NewSparseUnionFromArrays builds a SparseUnion over dt/typeIDs from
// compact per-variant children: children[i] holds exactly the values
// dt.TypeCodes()[i] is selected for in typeIDs, in order, rather than
// one fully-sized array per variant. Every other slot in each variant's
// physical buffer is filled with arrow.DefaultValue(T) via
// scatterSparseChild.
func NewSparseUnionFromArrays(dt *arrow.UnionType, typeIDs []int8, children []Interface) *SparseUnion {
	length := len(typeIDs)
	codes := dt.TypeCodes()
	padded := make([]arrow.ArrayData, len(children))
	for i, c := range children {
		padded[i] = scatterSparseChild(c, codes[i], typeIDs, length)
	}

	raw := make([]byte, length)
	for i, v := range typeIDs {
		raw[i] = byte(v)
	}
	data := NewData(dt, length, []*memory.Buffer{nil, memory.NewBuffer(raw)}, padded, 0, 0)
	defer data.Release()
	return NewSparseUnionData(data)
}
