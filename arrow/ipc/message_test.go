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

package ipc

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/bitutil"
	"github.com/arrowcore/arrow/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaPayload() payload {
	schema := arrow.NewSchema([]arrow.Field{{Name: "id", Type: arrow.PrimitiveTypes.Int64}}, nil)
	ps := payloadsFromSchema(schema, memory.DefaultAllocator(), nil)
	return ps[0]
}

func TestWriteIPCPayloadThenReadMessageRoundTrip(t *testing.T) {
	p := schemaPayload()
	defer p.Release()

	var buf bytes.Buffer
	n, err := writeIPCPayload(&buf, p, kArrowAlignment)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	msg, err := readMessage(&buf, memory.DefaultAllocator())
	require.NoError(t, err)
	defer msg.Release()

	assert.Equal(t, MessageSchema, msg.Type())
}

func TestReadMessageCleanEOS(t *testing.T) {
	r := bytes.NewReader(kEOS[:])
	_, err := readMessage(r, memory.DefaultAllocator())
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadMessageRejectsTruncatedPrefix(t *testing.T) {
	r := bytes.NewReader([]byte{1, 2, 3})
	_, err := readMessage(r, memory.DefaultAllocator())
	assert.Error(t, err)
}

func TestReadMessageAcceptsPre015LengthOnlyPrefix(t *testing.T) {
	p := schemaPayload()
	defer p.Release()

	var buf bytes.Buffer
	var prefix [4]byte
	padded := bitutil.CeilByte(p.meta.Len())
	binary.LittleEndian.PutUint32(prefix[:], uint32(padded))
	buf.Write(prefix[:])
	buf.Write(p.meta.Bytes())
	if pad := padded - p.meta.Len(); pad > 0 {
		buf.Write(make([]byte, pad))
	}

	msg, err := readMessage(&buf, memory.DefaultAllocator())
	require.NoError(t, err)
	defer msg.Release()
	assert.Equal(t, MessageSchema, msg.Type())
}

func TestDictMemoAddReplacesAndRetains(t *testing.T) {
	memo := newMemo()
	a := &refCounted{}
	b := &refCounted{}

	memo.Add(1, a)
	got, ok := memo.Dict(1)
	require.True(t, ok)
	assert.Same(t, a, got)

	memo.Add(1, b)
	got, ok = memo.Dict(1)
	require.True(t, ok)
	assert.Same(t, b, got)
	assert.Equal(t, 1, a.released)
}

// refCounted is a minimal interface{ Retain(); Release() } test double.
type refCounted struct {
	retained int
	released int
}

func (r *refCounted) Retain()  { r.retained++ }
func (r *refCounted) Release() { r.released++ }
