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

import "github.com/arrowcore/arrow/arrow"

// Extension wraps a registered arrow.ExtensionType's storage array,
// exposing the logical extension type while every element access
// delegates to the physical storage representation (spec.md §6
// extension metadata roundtrip: unknown names degrade to storage).
type Extension struct {
	base
	storage Interface
}

// NewExtensionArrayWithStorage pairs an already-built storage array with
// its logical ArrayData (whose DataType is the arrow.ExtensionType).
func NewExtensionArrayWithStorage(dt arrow.ExtensionType, storage Interface) *Extension {
	storage.Retain()
	data := storage.Data()
	for _, b := range data.Buffers() {
		b.Retain()
	}
	for _, c := range data.Children() {
		c.Retain()
	}
	wrapped := NewData(dt, data.Len(), data.Buffers(), data.Children(), data.NullN(), data.Offset())
	defer wrapped.Release()
	return NewExtensionData(wrapped, storage)
}

func NewExtensionData(data arrow.ArrayData, storage Interface) *Extension {
	data.Retain()
	storage.Retain()
	return &Extension{base: base{data}, storage: storage}
}

func (a *Extension) Storage() Interface { return a.storage }

func (a *Extension) String() string { return a.storage.String() }

func (a *Extension) Release() {
	a.storage.Release()
	a.base.Release()
}
