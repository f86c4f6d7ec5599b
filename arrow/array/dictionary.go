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

// Dictionary is DictEncoded(indexT, pool): validity + an indices array
// over a dictionary-type's IndexType, plus a shared pool array supplied
// separately by the dictionary manager (spec.md §3 DictEncoded).
type Dictionary struct {
	base
	indices Interface
	dict    Interface
}

// NewDictionaryData wraps an indices ArrayData; dict is the pool array
// the IPC reader resolved this dictionary id to (supplied out of band,
// since the wire format carries indices and dictionary batches
// separately per spec.md §4.4).
func NewDictionaryData(data arrow.ArrayData, dict Interface) *Dictionary {
	data.Retain()
	a := &Dictionary{base: base{data}}
	dt, _ := data.DataType().(*arrow.DictionaryType)
	for _, b := range data.Buffers() {
		b.Retain()
	}
	indicesData := NewData(indicesType(dt), data.Len(), data.Buffers(), nil, data.NullN(), data.Offset())
	defer indicesData.Release()
	a.indices = MakeFromData(indicesData)
	if dict != nil {
		dict.Retain()
	}
	a.dict = dict
	return a
}

func indicesType(dt *arrow.DictionaryType) arrow.DataType {
	if dt == nil {
		return arrow.PrimitiveTypes.Int32
	}
	return dt.IndexType
}

// Dictionary returns the shared pool array (spec.md §3 DictEncoding:
// "an append-only across batches value vector").
func (a *Dictionary) Dictionary() Interface { return a.dict }

// Index returns the index array (the on-wire payload of this batch).
func (a *Dictionary) Index() Interface { return a.indices }

// GetValueIndex returns indices[i], the position into Dictionary()
// element i's value occupies (or -1 if null).
func (a *Dictionary) GetValueIndex(i int) int {
	if a.IsNull(i) {
		return -1
	}
	switch idx := a.indices.(type) {
	case *Int8:
		return int(idx.Value(i))
	case *Int16:
		return int(idx.Value(i))
	case *Int32:
		return int(idx.Value(i))
	case *Int64:
		return int(idx.Value(i))
	case *Uint8:
		return int(idx.Value(i))
	case *Uint16:
		return int(idx.Value(i))
	case *Uint32:
		return int(idx.Value(i))
	case *Uint64:
		return int(idx.Value(i))
	default:
		panic(fmt.Sprintf("arrow/array: unsupported dictionary index type %T", idx))
	}
}

func (a *Dictionary) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if a.IsNull(i) {
			sb.WriteString("(null)")
		} else {
			fmt.Fprintf(&sb, "%d", a.GetValueIndex(i))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *Dictionary) Release() {
	if a.indices != nil {
		a.indices.Release()
	}
	if a.dict != nil {
		a.dict.Release()
	}
	a.base.Release()
}
