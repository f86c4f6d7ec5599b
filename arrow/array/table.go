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
	"sync/atomic"

	"github.com/arrowcore/arrow/arrow"
)

// Chunked is a logical column spanning multiple physically distinct
// arrays of the same DataType — Table mode's "chained vector" produced
// by concatenating one field's column across every batch read from a
// stream (spec.md §4.5 Table mode).
type Chunked struct {
	refCount int64
	dtype    arrow.DataType
	chunks   []Interface
	length   int
	nullN    int
}

// NewChunked retains every chunk for the lifetime of the Chunked.
func NewChunked(dtype arrow.DataType, chunks []Interface) *Chunked {
	c := &Chunked{refCount: 1, dtype: dtype, chunks: make([]Interface, len(chunks))}
	for i, ch := range chunks {
		ch.Retain()
		c.chunks[i] = ch
		c.length += ch.Len()
		c.nullN += ch.NullN()
	}
	return c
}

func (c *Chunked) DataType() arrow.DataType { return c.dtype }
func (c *Chunked) Len() int                 { return c.length }
func (c *Chunked) NullN() int               { return c.nullN }
func (c *Chunked) Chunks() []Interface      { return c.chunks }

func (c *Chunked) Retain() { atomic.AddInt64(&c.refCount, 1) }

func (c *Chunked) Release() {
	if atomic.AddInt64(&c.refCount, -1) == 0 {
		for _, ch := range c.chunks {
			ch.Release()
		}
		c.chunks = nil
	}
}

// Table is the eager, Table-mode reader's result: a schema plus one
// Chunked column per field (spec.md §4.5 "concatenating record batches
// of identical schema into single logical columns").
type Table struct {
	refCount int64
	schema   *arrow.Schema
	cols     []*Chunked
	rows     int64
}

func NewTable(schema *arrow.Schema, cols []*Chunked, rows int64) *Table {
	owned := make([]*Chunked, len(cols))
	for i, c := range cols {
		c.Retain()
		owned[i] = c
	}
	return &Table{refCount: 1, schema: schema, cols: owned, rows: rows}
}

// NewTableFromRecords concatenates a run of same-schema Records into a
// Table, one Chunked column per field, in the order the batches arrived
// (spec.md §4.5, scenario C's two-partition concat).
func NewTableFromRecords(schema *arrow.Schema, recs []arrow.Record) *Table {
	ncols := schema.NumFields()
	cols := make([]*Chunked, ncols)
	var rows int64
	for i := 0; i < ncols; i++ {
		chunks := make([]Interface, len(recs))
		for j, rec := range recs {
			chunks[j] = rec.Column(i).(Interface)
		}
		cols[i] = NewChunked(schema.Field(i).Type, chunks)
	}
	for _, rec := range recs {
		rows += rec.NumRows()
	}
	return NewTable(schema, cols, rows)
}

func (t *Table) Schema() *arrow.Schema { return t.schema }
func (t *Table) NumRows() int64        { return t.rows }
func (t *Table) NumCols() int64        { return int64(len(t.cols)) }
func (t *Table) Column(i int) *Chunked { return t.cols[i] }

func (t *Table) Retain() { atomic.AddInt64(&t.refCount, 1) }

func (t *Table) Release() {
	if atomic.AddInt64(&t.refCount, -1) == 0 {
		for _, c := range t.cols {
			c.Release()
		}
		t.cols = nil
	}
}
