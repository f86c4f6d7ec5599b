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

// Package array implements the nine C3 array variants (spec.md §3/§4.3):
// a family of vector kinds that all share the "view into raw bytes"
// discipline over arrow.ArrayData.
package array

import (
	"sync/atomic"

	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/bitutil"
	"github.com/arrowcore/arrow/arrow/memory"
)

// Data is the concrete arrow.ArrayData: a type tag, a logical length and
// offset, a buffer list, and child ArrayData — the same shape every
// array kind reduces to (spec.md §3).
type Data struct {
	refCount  int64
	dtype     arrow.DataType
	length    int
	nullN     int
	offset    int
	buffers   []*memory.Buffer
	childData []arrow.ArrayData
}

// NewData constructs a Data; nulls may be passed as -1 to request a
// lazy popcount scan on first NullN() call (spec.md §4.1 null-count scan).
func NewData(dtype arrow.DataType, length int, buffers []*memory.Buffer, childData []arrow.ArrayData, nulls, offset int) *Data {
	d := &Data{
		refCount:  1,
		dtype:     dtype,
		length:    length,
		offset:    offset,
		buffers:   buffers,
		childData: childData,
		nullN:     nulls,
	}
	return d
}

func (d *Data) computeNullN() int {
	if len(d.buffers) == 0 || d.buffers[0] == nil || d.buffers[0].Len() == 0 {
		return 0
	}
	valid := bitutil.CountSetBits(d.buffers[0].Bytes(), d.offset, d.length)
	return d.length - valid
}

func (d *Data) DataType() arrow.DataType       { return d.dtype }
func (d *Data) Len() int                       { return d.length }
func (d *Data) NullN() int {
	if d.nullN < 0 {
		d.nullN = d.computeNullN()
	}
	return d.nullN
}
func (d *Data) Offset() int                    { return d.offset }
func (d *Data) Buffers() []*memory.Buffer      { return d.buffers }
func (d *Data) Children() []arrow.ArrayData    { return d.childData }

func (d *Data) Retain() {
	atomic.AddInt64(&d.refCount, 1)
}

func (d *Data) Release() {
	if atomic.AddInt64(&d.refCount, -1) == 0 {
		for _, b := range d.buffers {
			b.Release()
		}
		for _, c := range d.childData {
			c.Release()
		}
		d.buffers = nil
		d.childData = nil
	}
}

// NewSliceData returns a new Data viewing [offset, offset+length) of
// parent, retaining parent's buffers/children (spec.md "Lifecycle":
// arrays are views, slicing never copies).
func NewSliceData(parent arrow.ArrayData, offset, length int) *Data {
	for _, b := range parent.Buffers() {
		b.Retain()
	}
	for _, c := range parent.Children() {
		c.Retain()
	}
	return &Data{
		refCount:  1,
		dtype:     parent.DataType(),
		length:    length,
		offset:    parent.Offset() + offset,
		buffers:   parent.Buffers(),
		childData: parent.Children(),
		nullN:     -1,
	}
}
