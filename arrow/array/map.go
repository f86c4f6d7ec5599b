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
)

// Map is physically a List(Struct{key,value}) with the entries-non-null
// invariant enforced at the Struct level (spec.md §3 Map(K,V)).
type Map struct {
	List[int32]
}

func NewMapData(data arrow.ArrayData) *Map {
	return &Map{*NewListData[int32](data)}
}

// KeysAndItems returns the key and value child arrays of the entries
// struct for element i, the pair an IPC writer/reader walks per entry.
func (a *Map) KeysAndItems(i int) (keys, items Interface) {
	entries := a.ListOfArray(i)
	defer entries.Release()
	s := entries.(*Struct)
	off, n := s.Data().Offset(), s.Len()
	keys = NewSlice(s.Field(0), off, n)
	items = NewSlice(s.Field(1), off, n)
	return keys, items
}
