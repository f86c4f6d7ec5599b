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

// Struct is a nested array of named fields, every child the same length
// as the parent, sharing the parent's own validity bitmap (spec.md §3
// Struct(fields...)).
type Struct struct {
	base
	fields []Interface
}

func NewStructData(data arrow.ArrayData) *Struct {
	data.Retain()
	a := &Struct{base: base{data}}
	children := data.Children()
	a.fields = make([]Interface, len(children))
	for i, c := range children {
		a.fields[i] = MakeFromData(c)
	}
	return a
}

func (a *Struct) NumField() int { return len(a.fields) }

func (a *Struct) Field(i int) Interface { return a.fields[i] }

func (a *Struct) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, f := range a.fields {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", f)
	}
	sb.WriteByte('}')
	return sb.String()
}

func (a *Struct) Release() {
	for _, f := range a.fields {
		f.Release()
	}
	a.base.Release()
}
