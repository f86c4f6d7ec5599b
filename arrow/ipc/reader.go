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
	"io"

	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/array"
	"github.com/arrowcore/arrow/arrow/internal/flatbuf"
	"github.com/arrowcore/arrow/arrow/ipc/compress"
	"github.com/arrowcore/arrow/arrow/memory"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/pkg/errors"
)

// Reader is a Stream-mode reader (spec.md §4.5): it decodes the schema
// message once at construction, then lazily decodes one RecordBatch at
// a time via Next/Record, folding any DictionaryBatch messages it meets
// along the way into its own dictionary memo (spec.md §6/C7) rather
// than handing them to the caller.
type Reader struct {
	r   io.Reader
	mem memory.Allocator
	cfg *config

	schema *arrow.Schema
	types  dictTypeMap
	memo   dictMemo

	cur  arrow.Record
	err  error
	done bool
}

// NewReader reads and decodes the schema message, then returns a Reader
// positioned to iterate the record batches that follow.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	cfg := newConfig(opts...)
	rd := &Reader{
		r:     r,
		mem:   cfg.alloc,
		cfg:   cfg,
		types: make(dictTypeMap),
		memo:  newMemo(),
	}
	if err := rd.readSchema(); err != nil {
		return nil, err
	}
	return rd, nil
}

func (rd *Reader) readSchema() error {
	msg, err := readMessage(rd.r, rd.mem)
	if err != nil {
		return errors.Wrap(err, "arrow/ipc: could not read schema message")
	}
	defer msg.Release()
	if msg.Type() != MessageSchema {
		return arrow.Newf(arrow.KindMalformedFrame, "arrow/ipc: expected schema message, got %v", msg.Type())
	}

	var table flatbuffers.Table
	if !msg.msg.Header(&table) {
		return errMalformedFrame
	}
	var sc flatbuf.Schema
	sc.Init(table.Bytes, table.Pos)

	rd.schema = schemaFromFB(&sc, rd.types)
	return nil
}

// Schema returns the stream's schema, decoded once up front.
func (rd *Reader) Schema() *arrow.Schema { return rd.schema }

// Next advances to the next record batch, transparently applying any
// DictionaryBatch messages found along the way. It returns false at a
// clean end of stream or after the first error; callers must check Err
// to tell the two apart.
func (rd *Reader) Next() bool {
	if rd.done || rd.err != nil {
		return false
	}
	if rd.cur != nil {
		rd.cur.Release()
		rd.cur = nil
	}

	for {
		msg, err := readMessage(rd.r, rd.mem)
		if err == io.EOF {
			rd.done = true
			return false
		}
		if err != nil {
			rd.err = errors.Wrap(err, "arrow/ipc: could not read message")
			return false
		}

		switch msg.Type() {
		case MessageDictionaryBatch:
			err := rd.readDictionaryBatch(msg)
			msg.Release()
			if err != nil {
				rd.err = err
				return false
			}
		case MessageRecordBatch:
			rec, err := rd.readRecordBatch(msg)
			msg.Release()
			if err != nil {
				rd.err = err
				return false
			}
			rd.cur = rec
			return true
		default:
			msg.Release()
			rd.err = arrow.Newf(arrow.KindMalformedFrame, "arrow/ipc: unexpected message type %v in stream body", msg.Type())
			return false
		}
	}
}

// Record returns the batch most recently produced by Next.
func (rd *Reader) Record() arrow.Record { return rd.cur }

// Err returns the error, if any, that stopped Next.
func (rd *Reader) Err() error { return rd.err }

// Release drops the current record; callers that stop iterating before
// Next returns false should call this so the last batch isn't leaked.
func (rd *Reader) Release() {
	if rd.cur != nil {
		rd.cur.Release()
		rd.cur = nil
	}
}

func (rd *Reader) readDictionaryBatch(msg *Message) error {
	return decodeDictionaryBatchMessage(rd.mem, rd.types, &rd.memo, msg)
}

// decodeDictionaryBatchMessage decodes one DictionaryBatch message into
// memo, merging it into any existing pool for its id if is_delta is set
// (spec.md §4.7/§6). Shared by the Stream-mode Reader and the File-mode
// reader's up-front dictionary-block pass.
func decodeDictionaryBatchMessage(mem memory.Allocator, types dictTypeMap, memo *dictMemo, msg *Message) error {
	var table flatbuffers.Table
	if !msg.msg.Header(&table) {
		return errMalformedFrame
	}
	var db flatbuf.DictionaryBatch
	db.Init(table.Bytes, table.Pos)

	id := db.Id()
	valueType, ok := types[id]
	if !ok {
		return arrow.Newf(arrow.KindInvalidMetadata, "arrow/ipc: dictionary batch for unknown id %d", id)
	}

	var rb flatbuf.RecordBatch
	if db.Data(&rb) == nil {
		return errMalformedFrame
	}

	var body []byte
	if msg.Body() != nil {
		body = msg.Body().Bytes()
	}
	decompressor, err := decompressorForRecordBatch(&rb)
	if err != nil {
		return err
	}
	dec := newRecordDecoder(mem, &rb, body, decompressor, memo)

	field := arrow.Field{Name: "dictionary", Type: valueType, Nullable: true}
	values, err := dec.decodeField(field)
	if err != nil {
		return errors.Wrapf(err, "arrow/ipc: could not decode dictionary batch %d", id)
	}
	defer values.Release()

	if db.IsDelta() {
		existing, ok := memo.Dict(id)
		if !ok {
			return arrow.Newf(arrow.KindInvalidMetadata, "arrow/ipc: delta dictionary batch for id %d with no existing pool", id)
		}
		merged, err := mergeDictionary(existing.(array.Interface), values)
		if err != nil {
			return errors.Wrapf(err, "arrow/ipc: could not merge delta dictionary batch %d", id)
		}
		defer merged.Release()
		memo.Add(id, merged)
		return nil
	}

	memo.Add(id, values)
	return nil
}

func (rd *Reader) readRecordBatch(msg *Message) (arrow.Record, error) {
	return decodeRecordBatchMessage(rd.mem, rd.schema, &rd.memo, msg)
}

// decodeRecordBatchMessage decodes one RecordBatch message into an
// arrow.Record over schema, resolving dictionary-encoded columns against
// memo's current pools (spec.md §4.3). Shared by the Stream-mode Reader
// and the File-mode reader's RecordAt.
func decodeRecordBatchMessage(mem memory.Allocator, schema *arrow.Schema, memo *dictMemo, msg *Message) (arrow.Record, error) {
	var table flatbuffers.Table
	if !msg.msg.Header(&table) {
		return nil, errMalformedFrame
	}
	var rb flatbuf.RecordBatch
	rb.Init(table.Bytes, table.Pos)

	var body []byte
	if msg.Body() != nil {
		body = msg.Body().Bytes()
	}
	decompressor, err := decompressorForRecordBatch(&rb)
	if err != nil {
		return nil, err
	}
	dec := newRecordDecoder(mem, &rb, body, decompressor, memo)

	fields := schema.Fields()
	cols := make([]array.Interface, len(fields))
	for i, f := range fields {
		col, err := dec.decodeField(f)
		if err != nil {
			for _, c := range cols[:i] {
				c.Release()
			}
			return nil, errors.Wrapf(err, "arrow/ipc: could not decode column %d (%q)", i, f.Name)
		}
		cols[i] = col
	}
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()

	return array.NewRecord(schema, cols, rb.Length()), nil
}

// decompressorForRecordBatch resolves rb's optional BodyCompression
// into a fresh Decompressor, or nil if the batch carries uncompressed
// buffers (spec.md §4.4).
func decompressorForRecordBatch(rb *flatbuf.RecordBatch) (compress.Decompressor, error) {
	var bc flatbuf.BodyCompression
	if rb.Compression(&bc) == nil {
		return nil, nil
	}
	dec := decompressorFor(codecFromFB(bc.Codec()))
	if dec == nil {
		return nil, errUnsupportedCodec
	}
	return dec, nil
}

func codecFromFB(c flatbuf.CompressionCodec) CompressionCodec {
	if c == flatbuf.CompressionCodecZSTD {
		return CompressionZSTD
	}
	return CompressionLZ4Frame
}

// recordDecoder walks a schema's fields, pulling FieldNode/Buffer
// metadata off rb in the same depth-first order recordEncoder.visit
// wrote them in, rebuilding each column's arrow.ArrayData (spec.md
// §4.3). It mirrors the encoder one node/buffer at a time rather than
// type-switching over every concrete array instantiation, for the same
// reason the encoder doesn't: C3's generic kinds would otherwise need a
// case per instantiation.
type recordDecoder struct {
	mem memory.Allocator

	nodes   []flatbuf.FieldNode
	bufs    []flatbuf.Buffer
	nodeIdx int
	bufIdx  int

	body         []byte
	decompressor compress.Decompressor

	memo *dictMemo
}

func newRecordDecoder(mem memory.Allocator, rb *flatbuf.RecordBatch, body []byte, decompressor compress.Decompressor, memo *dictMemo) *recordDecoder {
	nodes := make([]flatbuf.FieldNode, rb.NodesLength())
	for i := range nodes {
		rb.Nodes(&nodes[i], i)
	}
	bufs := make([]flatbuf.Buffer, rb.BuffersLength())
	for i := range bufs {
		rb.Buffers(&bufs[i], i)
	}
	return &recordDecoder{mem: mem, nodes: nodes, bufs: bufs, body: body, decompressor: decompressor, memo: memo}
}

func (d *recordDecoder) nextNode() (length, nulls int64) {
	n := d.nodes[d.nodeIdx]
	d.nodeIdx++
	return n.Length(), n.NullCount()
}

// nextBuffer returns the next body buffer, decompressing it first if
// the batch carries a BodyCompression (spec.md §4.4 "per-buffer
// compression framing"); an empty metadata entry yields a nil buffer,
// the same way recordEncoder.visit emits one for a zero-null validity
// bitmap or a NullType column.
func (d *recordDecoder) nextBuffer() (*memory.Buffer, error) {
	b := d.bufs[d.bufIdx]
	d.bufIdx++
	if b.Length() == 0 {
		return nil, nil
	}
	raw := d.body[b.Offset() : b.Offset()+b.Length()]

	if d.decompressor == nil {
		out := make([]byte, len(raw))
		copy(out, raw)
		return memory.NewBuffer(out), nil
	}
	out, err := compress.DecompressBuffer(d.decompressor, raw)
	if err != nil {
		return nil, err
	}
	return memory.NewBuffer(out), nil
}

// decodeField decodes one field's ArrayData tree, consuming exactly the
// nodes/buffers recordEncoder.visit produced for the matching column
// (spec.md §4.3). Extension types are handled first, recursing straight
// into the storage type's node/buffers with none of their own, mirroring
// the encoder's "visit storage, don't emit a node" treatment.
func (d *recordDecoder) decodeField(f arrow.Field) (array.Interface, error) {
	if ext, ok := f.Type.(arrow.ExtensionType); ok {
		storage, err := d.decodeField(arrow.Field{Name: f.Name, Type: ext.StorageType(), Nullable: f.Nullable})
		if err != nil {
			return nil, err
		}
		defer storage.Release()
		return array.NewExtensionArrayWithStorage(ext, storage), nil
	}

	length, nulls := d.nextNode()
	validity, err := d.nextBuffer()
	if err != nil {
		return nil, err
	}

	switch dt := f.Type.(type) {
	case *arrow.NullType:
		data := array.NewData(dt, int(length), nil, nil, int(nulls), 0)
		defer data.Release()
		return array.MakeFromData(data), nil

	case *arrow.BooleanType:
		values, err := d.nextBuffer()
		if err != nil {
			return nil, err
		}
		data := array.NewData(dt, int(length), []*memory.Buffer{validity, values}, nil, int(nulls), 0)
		defer data.Release()
		return array.MakeFromData(data), nil

	case *arrow.DictionaryType:
		indices, err := d.nextBuffer()
		if err != nil {
			return nil, err
		}
		data := array.NewData(dt, int(length), []*memory.Buffer{validity, indices}, nil, int(nulls), 0)
		defer data.Release()

		var pool array.Interface
		if v, ok := d.memo.Dict(dt.DictID); ok {
			pool = v.(array.Interface)
		}
		return array.NewDictionaryData(data, pool), nil

	case arrow.BinaryDataType:
		offsets, err := d.nextBuffer()
		if err != nil {
			return nil, err
		}
		values, err := d.nextBuffer()
		if err != nil {
			return nil, err
		}
		data := array.NewData(dt, int(length), []*memory.Buffer{validity, offsets, values}, nil, int(nulls), 0)
		defer data.Release()
		return array.MakeFromData(data), nil

	case arrow.FixedWidthDataType:
		values, err := d.nextBuffer()
		if err != nil {
			return nil, err
		}
		data := array.NewData(dt, int(length), []*memory.Buffer{validity, values}, nil, int(nulls), 0)
		defer data.Release()
		return array.MakeFromData(data), nil

	case *arrow.ListType:
		return d.decodeNested(validity, length, nulls, true, dt, dt.Fields()[0])
	case *arrow.LargeListType:
		return d.decodeNested(validity, length, nulls, true, dt, dt.Fields()[0])
	case *arrow.MapType:
		// physically List(Struct{key,value}) (spec.md §3 Map(K,V)).
		return d.decodeNested(validity, length, nulls, true, dt, dt.Fields()[0])
	case *arrow.FixedSizeListType:
		return d.decodeNested(validity, length, nulls, false, dt, dt.Fields()[0])

	case *arrow.StructType:
		return d.decodeStruct(dt, length, nulls, validity)

	case *arrow.UnionType:
		return d.decodeUnion(dt, length, nulls, validity)

	default:
		return nil, arrow.Newf(arrow.KindUnsupportedType, "arrow/ipc: unknown field type %T", dt)
	}
}

// decodeNested decodes a List/LargeList/Map/FixedSizeList column: an
// optional offsets buffer (omitted for FixedSizeList, whose stride is
// implied by the type) followed by the single child column, recursively
// decoded at its own independent length (spec.md §3/§4.3).
func (d *recordDecoder) decodeNested(validity *memory.Buffer, length, nulls int64, withOffsets bool, dt arrow.DataType, childField arrow.Field) (array.Interface, error) {
	var offsets *memory.Buffer
	if withOffsets {
		var err error
		offsets, err = d.nextBuffer()
		if err != nil {
			return nil, err
		}
	}

	child, err := d.decodeField(childField)
	if err != nil {
		return nil, err
	}

	bufs := []*memory.Buffer{validity}
	if withOffsets {
		bufs = append(bufs, offsets)
	}
	data := array.NewData(dt, int(length), bufs, []arrow.ArrayData{child.Data()}, int(nulls), 0)
	defer data.Release()
	return array.MakeFromData(data), nil
}

func (d *recordDecoder) decodeStruct(dt *arrow.StructType, length, nulls int64, validity *memory.Buffer) (array.Interface, error) {
	fields := dt.Fields()
	children := make([]arrow.ArrayData, len(fields))
	for i, f := range fields {
		child, err := d.decodeField(f)
		if err != nil {
			return nil, err
		}
		children[i] = child.Data()
	}
	data := array.NewData(dt, int(length), []*memory.Buffer{validity}, children, int(nulls), 0)
	defer data.Release()
	return array.MakeFromData(data), nil
}

// decodeUnion decodes the type_ids buffer (and, for dense unions, the
// offsets buffer) then every variant child at its own, independent
// length; unions carry no validity bitmap of their own, matching
// recordEncoder.visitUnion (spec.md §3 DenseUnion/SparseUnion).
func (d *recordDecoder) decodeUnion(dt *arrow.UnionType, length, nulls int64, validity *memory.Buffer) (array.Interface, error) {
	typeIDs, err := d.nextBuffer()
	if err != nil {
		return nil, err
	}

	bufs := []*memory.Buffer{validity, typeIDs}
	if dt.Mode() == arrow.DenseMode {
		offsets, err := d.nextBuffer()
		if err != nil {
			return nil, err
		}
		bufs = append(bufs, offsets)
	}

	fields := dt.Fields()
	children := make([]arrow.ArrayData, len(fields))
	for i, f := range fields {
		child, err := d.decodeField(f)
		if err != nil {
			return nil, err
		}
		children[i] = child.Data()
	}

	data := array.NewData(dt, int(length), bufs, children, int(nulls), 0)
	defer data.Release()
	return array.MakeFromData(data), nil
}
