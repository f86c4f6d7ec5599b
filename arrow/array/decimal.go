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
	"strings"

	"github.com/arrowcore/arrow/arrow"
)

// Decimal128 is a fixed-width 16-byte-per-element array holding the
// two's-complement little-endian representation of a Decimal{128}
// value (spec.md §3 Decimal{p,s,bits∈{128,256}}). Element access mirrors
// FixedSizeBinary rather than Primitive[T], since Go has no native
// 128-bit integer type to reinterpret the buffer as.
type Decimal128 struct {
	base
	values []byte
}

const decimal128Width = 16

func NewDecimal128Data(data arrow.ArrayData) *Decimal128 {
	data.Retain()
	a := &Decimal128{base: base{data}}
	if bufs := data.Buffers(); len(bufs) > 1 && bufs[1] != nil {
		a.values = bufs[1].Bytes()
	}
	return a
}

// Value returns the 16-byte two's-complement little-endian encoding of
// element i.
func (a *Decimal128) Value(i int) []byte {
	off := (i + a.data.Offset()) * decimal128Width
	return a.values[off : off+decimal128Width]
}

func (a *Decimal128) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if a.IsNull(i) {
			sb.WriteString("(null)")
		} else {
			sb.WriteString("0x")
			for _, b := range a.Value(i) {
				sb.WriteString(hexDigits[b>>4 : b>>4+1])
				sb.WriteString(hexDigits[b&0xf : b&0xf+1])
			}
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// Decimal256 is the 32-byte-per-element counterpart of Decimal128.
type Decimal256 struct {
	base
	values []byte
}

const decimal256Width = 32

func NewDecimal256Data(data arrow.ArrayData) *Decimal256 {
	data.Retain()
	a := &Decimal256{base: base{data}}
	if bufs := data.Buffers(); len(bufs) > 1 && bufs[1] != nil {
		a.values = bufs[1].Bytes()
	}
	return a
}

func (a *Decimal256) Value(i int) []byte {
	off := (i + a.data.Offset()) * decimal256Width
	return a.values[off : off+decimal256Width]
}

func (a *Decimal256) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if a.IsNull(i) {
			sb.WriteString("(null)")
		} else {
			sb.WriteString("0x")
			for _, b := range a.Value(i) {
				sb.WriteString(hexDigits[b>>4 : b>>4+1])
				sb.WriteString(hexDigits[b&0xf : b&0xf+1])
			}
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

const hexDigits = "0123456789abcdef"
