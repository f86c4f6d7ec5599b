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

package arrow

import "github.com/arrowcore/arrow/arrow/memory"

// ArrayData is the common, variant-agnostic contract every array kind in
// C3 satisfies: a length, a null count, a buffer list, and child arrays
// (spec.md §3 "all implement: length, element type, optional validity,
// child arrays, buffer list, null-count"). Concrete array kinds in
// package array wrap an ArrayData with typed element access.
type ArrayData interface {
	DataType() DataType
	Len() int
	NullN() int
	Offset() int
	Buffers() []*memory.Buffer
	Children() []ArrayData
	Retain()
	Release()
}

// Array is the typed, read-only view every C3 variant exposes.
type Array interface {
	DataType() DataType
	Len() int
	NullN() int
	Data() ArrayData
}

// Record is one horizontal slice of a table (spec.md GLOSSARY "Record
// batch"): a schema plus one equal-length column per field.
type Record interface {
	Schema() *Schema
	NumRows() int64
	NumCols() int64
	Columns() []Array
	Column(i int) Array
	ColumnName(i int) string
	Retain()
	Release()
}
