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

	"github.com/arrowcore/arrow/arrow"
)

// Null is the all-null array kind: zero buffers, zero children, every
// element absent (spec.md §3 "Primitive/Array variants").
type Null struct{ base }

// NewNull builds a length-n Null array.
func NewNull(n int) *Null {
	data := NewData(arrow.Null, n, nil, nil, n, 0)
	defer data.Release()
	return NewNullData(data)
}

// NewNullData wraps an already-built ArrayData, retaining it for the
// lifetime of the returned array (the owning-reference idiom every
// NewXxxData constructor in this package follows).
func NewNullData(data arrow.ArrayData) *Null {
	data.Retain()
	return &Null{base{data}}
}

func (n *Null) String() string { return fmt.Sprintf("%v", make([]interface{}, n.Len())) }
func (n *Null) IsValid(int) bool { return false }
func (n *Null) IsNull(int) bool  { return true }
