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
	"encoding/binary"
	"io"
	"sync"

	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/bitutil"
	"github.com/arrowcore/arrow/arrow/internal/flatbuf"
	"github.com/arrowcore/arrow/arrow/memory"
	"golang.org/x/xerrors"
)

// Magic is the 6-byte token opening and closing an Arrow file (spec.md
// §4.6 scenario F: leading "ARROW1\0\0", trailing "ARROW1").
var Magic = []byte("ARROW1")

const (
	kArrowAlignment  = 8
	kMaxNestingDepth = 6
)

// kEOS is the end-of-stream marker: continuation(0xFFFFFFFF) followed by
// a zero metadata length, closing a Stream-mode writer (spec.md §4.5).
var kEOS = [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 0}

const continuationMarker = 0xFFFFFFFF

func paddedLength(n, alignment int64) int64 { return bitutil.PaddedLength(n, alignment) }

// MessageType tags which of Schema/DictionaryBatch/RecordBatch a message
// carries (spec.md §4 Message kinds).
type MessageType int8

const (
	MessageNone MessageType = iota
	MessageSchema
	MessageDictionaryBatch
	MessageRecordBatch
)

func (t MessageType) flatbufHeader() flatbuf.MessageHeader {
	switch t {
	case MessageSchema:
		return flatbuf.MessageHeaderSchema
	case MessageDictionaryBatch:
		return flatbuf.MessageHeaderDictionaryBatch
	case MessageRecordBatch:
		return flatbuf.MessageHeaderRecordBatch
	default:
		return flatbuf.MessageHeaderNONE
	}
}

// bufferMetadata records one body buffer's offset/length within a
// RecordBatch/DictionaryBatch message body (spec.md §4.3 Buffer).
type bufferMetadata struct {
	Offset int64
	Len    int64
}

// fieldMetadata records one FieldNode's length/null-count (spec.md §4.3
// FieldNode); Offset is always 0 on write (every buffer is rebased to
// zero before encoding).
type fieldMetadata struct {
	Len    int64
	Nulls  int64
	Offset int64
}

// payload is one framed IPC message under construction or just decoded:
// optional metadata flatbuffer bytes plus zero or more body buffers
// (spec.md §4 "continuation-framed envelope").
type payload struct {
	msg  MessageType
	meta *memory.Buffer
	body []*memory.Buffer
	size int64 // total, padded body length
}

func (p *payload) Release() {
	if p.meta != nil {
		p.meta.Release()
		p.meta = nil
	}
	for _, b := range p.body {
		if b != nil {
			b.Release()
		}
	}
	p.body = nil
}

type payloads []payload

func (ps payloads) Release() {
	for i := range ps {
		ps[i].Release()
	}
}

// payloadWriter is satisfied by both the Stream-mode swriter and the
// File-mode fileWriter: it frames and emits one payload at a time, in
// the order write is called (spec.md §4.5: the writer emits strictly in
// partition/row order even when encoding ran out of order).
type payloadWriter interface {
	write(p payload) error
	Close() error
}

// writeIPCPayload frames p onto w: an 8-byte continuation+length prefix,
// the padded metadata flatbuffer, then each padded body buffer in turn
// (spec.md §4 envelope: "[continuation][metadata_length][metadata][body]").
// alignment must match the value recordEncoder used to compute p's buffer
// offsets and BodyLength (w.cfg.alignment) — the physical padding written
// here has to agree with what the metadata already declares, or a reader
// slices the body at the wrong offsets.
func writeIPCPayload(w io.Writer, p payload, alignment int64) (int64, error) {
	var (
		written int64
		metaLen int32
	)
	if p.meta != nil {
		metaLen = int32(p.meta.Len())
	}
	paddedMeta := int32(bitutil.PaddedLength(int64(metaLen), alignment))

	var prefix [8]byte
	binary.LittleEndian.PutUint32(prefix[0:4], continuationMarker)
	binary.LittleEndian.PutUint32(prefix[4:8], uint32(paddedMeta))
	n, err := w.Write(prefix[:])
	written += int64(n)
	if err != nil {
		return written, err
	}

	if p.meta != nil {
		n, err = w.Write(p.meta.Bytes())
		written += int64(n)
		if err != nil {
			return written, err
		}
		if pad := int(paddedMeta - metaLen); pad > 0 {
			n, err = w.Write(make([]byte, pad))
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
	}

	for _, b := range p.body {
		if b == nil {
			continue
		}
		n, err = w.Write(b.Bytes())
		written += int64(n)
		if err != nil {
			return written, err
		}
		if pad := int(bitutil.PaddedLength(int64(b.Len()), alignment)) - b.Len(); pad > 0 {
			n, err = w.Write(make([]byte, pad))
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
	}
	return written, nil
}

// Message is a decoded IPC message: its flatbuffer metadata plus the
// (possibly still-compressed) body bytes that follow it on the wire
// (spec.md §4 Message).
type Message struct {
	refCount int64
	meta     *memory.Buffer
	body     *memory.Buffer
	msg      *flatbuf.Message
}

// NewMessage wraps already-read metadata and body buffers.
func NewMessage(meta, body *memory.Buffer) *Message {
	return &Message{
		refCount: 1,
		meta:     meta,
		body:     body,
		msg:      flatbuf.GetRootAsMessage(meta.Bytes(), 0),
	}
}

func (m *Message) Retain() { m.refCount++ }
func (m *Message) Release() {
	m.refCount--
	if m.refCount == 0 {
		m.meta.Release()
		if m.body != nil {
			m.body.Release()
		}
	}
}

func (m *Message) Type() MessageType {
	switch m.msg.HeaderType() {
	case flatbuf.MessageHeaderSchema:
		return MessageSchema
	case flatbuf.MessageHeaderDictionaryBatch:
		return MessageDictionaryBatch
	case flatbuf.MessageHeaderRecordBatch:
		return MessageRecordBatch
	default:
		return MessageNone
	}
}

func (m *Message) Version() flatbuf.MetadataVersion { return m.msg.Version() }
func (m *Message) BodyLen() int64                   { return m.msg.BodyLength() }
func (m *Message) Body() *memory.Buffer             { return m.body }

// ReadAtSeeker is what a File-mode reader needs of its backing stream:
// sequential reads (for Stream mode), positioned reads, and seeking (for
// locating the footer).
type ReadAtSeeker interface {
	io.Reader
	io.ReaderAt
	io.Seeker
}

// readMessage reads one continuation-framed message from r starting at
// the current position, or returns io.EOF if r is already at a clean
// stream end (spec.md §4 "EOS" / §7 MalformedFrame).
func readMessage(r io.Reader, mem memory.Allocator) (*Message, error) {
	var prefix [8]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, errMalformedFrame
		}
		return nil, err
	}
	marker := binary.LittleEndian.Uint32(prefix[0:4])
	metaLen := int32(binary.LittleEndian.Uint32(prefix[4:8]))
	if marker != continuationMarker {
		// pre-0.15 Arrow streams wrote the length directly with no
		// continuation marker; accept it for read compatibility.
		metaLen = int32(marker)
	}
	if metaLen == 0 {
		return nil, io.EOF // clean end-of-stream
	}

	metaBytes := make([]byte, metaLen)
	head := 0
	if marker != continuationMarker {
		// the length-only prefix is 4 bytes, so prefix[4:8] already holds
		// the first metadata bytes
		head = copy(metaBytes, prefix[4:8])
	}
	if _, err := io.ReadFull(r, metaBytes[head:]); err != nil {
		return nil, xerrors.Errorf("arrow/ipc: could not read message metadata: %w", err)
	}
	metaBuf := memory.NewBuffer(metaBytes)
	msg := flatbuf.GetRootAsMessage(metaBytes, 0)

	bodyLen := msg.BodyLength()
	var body *memory.Buffer
	if bodyLen > 0 {
		bodyBytes := mem.Allocate(int(bodyLen))
		if _, err := io.ReadFull(r, bodyBytes); err != nil {
			return nil, xerrors.Errorf("arrow/ipc: could not read message body: %w", err)
		}
		body = memory.NewBuffer(bodyBytes)
	}
	return &Message{refCount: 1, meta: metaBuf, body: body, msg: msg}, nil
}

// fileBlock is one footer-indexed (offset, metadata length, body length)
// triple (spec.md §4.6 File mode: "footer: schema + dictionaries[] +
// record_batches[], each a Block(offset, metadata_length, body_length)").
type fileBlock struct {
	Offset int64
	Meta   int32
	Body   int64
	r      ReadAtSeeker
}

// NewMessage reads the message this block points at.
func (b fileBlock) NewMessage() (*Message, error) {
	sr := io.NewSectionReader(b.r, b.Offset, int64(b.Meta)+b.Body)
	return readMessage(sr, memory.DefaultAllocator())
}

// dictMemo is the read-side dictionary id -> (value type, current array)
// table (spec.md §4.5/§6 C7): a DictionaryBatch message is looked up by
// id to find which field(s) it backs and what its delta should merge
// into.
type dictMemo struct {
	mu      sync.Mutex
	id2type map[int64]arrow.DataType
	id2dict map[int64]interface{ Retain(); Release() }
}

func newMemo() dictMemo {
	return dictMemo{id2type: make(map[int64]arrow.DataType), id2dict: make(map[int64]interface{ Retain(); Release() })}
}

func (d *dictMemo) SetType(id int64, dt arrow.DataType) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.id2type[id] = dt
}

func (d *dictMemo) Type(id int64) (arrow.DataType, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	dt, ok := d.id2type[id]
	return dt, ok
}

// Add records (or replaces) the current dictionary array for id,
// retaining it; replacing drops the memo's reference to the prior value
// (spec.md §6 "a later DictionaryBatch for the same id replaces the
// pool's full value set unless is_delta is set").
func (d *dictMemo) Add(id int64, dict interface{ Retain(); Release() }) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if old, ok := d.id2dict[id]; ok {
		old.Release()
	}
	dict.Retain()
	d.id2dict[id] = dict
}

func (d *dictMemo) Dict(id int64) (interface{ Retain(); Release() }, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.id2dict[id]
	return v, ok
}

// dictTypeMap maps a dictionary id to the value type of the field it
// backs, built while walking a Schema message (spec.md §6).
type dictTypeMap map[int64]arrow.DataType
