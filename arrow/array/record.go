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
	"sync/atomic"

	"github.com/arrowcore/arrow/arrow"
)

// simpleRecord is the concrete arrow.Record: a schema plus one column
// per field, all the same length (spec.md §4 RecordBatch).
type simpleRecord struct {
	refCount int64
	schema   *arrow.Schema
	cols     []Interface
	rows     int64
}

// NewRecord builds a Record from schema and cols (rows is the batch's
// row count; pass -1 to infer it from cols[0] when cols is non-empty).
func NewRecord(schema *arrow.Schema, cols []Interface, rows int64) arrow.Record {
	if rows < 0 {
		if len(cols) > 0 {
			rows = int64(cols[0].Len())
		} else {
			rows = 0
		}
	}
	owned := make([]Interface, len(cols))
	for i, c := range cols {
		c.Retain()
		owned[i] = c
	}
	return &simpleRecord{refCount: 1, schema: schema, cols: owned, rows: rows}
}

func (r *simpleRecord) Schema() *arrow.Schema { return r.schema }
func (r *simpleRecord) NumRows() int64        { return r.rows }
func (r *simpleRecord) NumCols() int64        { return int64(len(r.cols)) }

func (r *simpleRecord) Columns() []arrow.Array {
	cols := make([]arrow.Array, len(r.cols))
	for i, c := range r.cols {
		cols[i] = c
	}
	return cols
}

func (r *simpleRecord) Column(i int) arrow.Array { return r.cols[i] }
func (r *simpleRecord) ColumnName(i int) string  { return r.schema.Field(i).Name }

func (r *simpleRecord) Retain() {
	atomic.AddInt64(&r.refCount, 1)
}

func (r *simpleRecord) Release() {
	if atomic.AddInt64(&r.refCount, -1) == 0 {
		for _, c := range r.cols {
			c.Release()
		}
		r.cols = nil
	}
}

func (r *simpleRecord) String() string {
	return fmt.Sprintf("record[rows=%d cols=%d]", r.rows, len(r.cols))
}
