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

// Package flatbuf is the hand-built equivalent of the flatc-generated
// tables real arrow-go snapshots vendor under arrow/internal/flatbuf:
// Message/Schema/Field/RecordBatch/DictionaryBatch/Footer, each a thin
// view over a byte slice via github.com/google/flatbuffers/go, built
// and read with the library's manual Builder/Table API rather than a
// generated-code union of every logical type. Field's type payload is
// flattened to a small fixed set of scalar slots (see Field below)
// instead of modeling the full nested type union flatc would emit —
// this keeps the table count tractable while still round-tripping
// every logical type arrow/datatype.go defines. See DESIGN.md.
package flatbuf

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// MetadataVersion mirrors the wire's schema-evolution version tag.
type MetadataVersion int16

const (
	MetadataVersionV1 MetadataVersion = iota
	MetadataVersionV2
	MetadataVersionV3
	MetadataVersionV4
	MetadataVersionV5
)

// MessageHeader tags which of Schema/DictionaryBatch/RecordBatch a
// Message's header union holds.
type MessageHeader byte

const (
	MessageHeaderNONE MessageHeader = iota
	MessageHeaderSchema
	MessageHeaderDictionaryBatch
	MessageHeaderRecordBatch
)

// CompressionCodec tags BodyCompression's codec.
type CompressionCodec int8

const (
	CompressionCodecLZ4Frame CompressionCodec = iota
	CompressionCodecZSTD
)

// ---- Message --------------------------------------------------------

type Message struct{ tab flatbuffers.Table }

func GetRootAsMessage(buf []byte, offset flatbuffers.UOffsetT) *Message {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	m := &Message{}
	m.tab.Bytes = buf
	m.tab.Pos = n + offset
	return m
}

func (m *Message) Version() MetadataVersion {
	if o := m.tab.Offset(4); o != 0 {
		return MetadataVersion(m.tab.GetInt16(o + m.tab.Pos))
	}
	return MetadataVersionV5
}

func (m *Message) HeaderType() MessageHeader {
	if o := m.tab.Offset(6); o != 0 {
		return MessageHeader(m.tab.GetByte(o + m.tab.Pos))
	}
	return MessageHeaderNONE
}

// Header fills obj with the union table's position; returns false if
// the message carries no header (shouldn't happen on a well-formed
// stream).
func (m *Message) Header(obj *flatbuffers.Table) bool {
	if o := m.tab.Offset(8); o != 0 {
		m.tab.Union(obj, o)
		return true
	}
	return false
}

func (m *Message) BodyLength() int64 {
	if o := m.tab.Offset(10); o != 0 {
		return m.tab.GetInt64(o + m.tab.Pos)
	}
	return 0
}

func MessageStart(b *flatbuffers.Builder) { b.StartObject(4) }
func MessageAddVersion(b *flatbuffers.Builder, v MetadataVersion) {
	b.PrependInt16Slot(0, int16(v), 0)
}
func MessageAddHeaderType(b *flatbuffers.Builder, t MessageHeader) {
	b.PrependByteSlot(1, byte(t), 0)
}
func MessageAddHeader(b *flatbuffers.Builder, header flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(2, header, 0)
}
func MessageAddBodyLength(b *flatbuffers.Builder, n int64) {
	b.PrependInt64Slot(3, n, 0)
}
func MessageEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// ---- KeyValue ---------------------------------------------------------

type KeyValue struct{ tab flatbuffers.Table }

func (kv *KeyValue) Init(buf []byte, i flatbuffers.UOffsetT) {
	kv.tab.Bytes = buf
	kv.tab.Pos = i
}

func (kv *KeyValue) Key() []byte {
	if o := kv.tab.Offset(4); o != 0 {
		return kv.tab.ByteVector(o + kv.tab.Pos)
	}
	return nil
}

func (kv *KeyValue) Value() []byte {
	if o := kv.tab.Offset(6); o != 0 {
		return kv.tab.ByteVector(o + kv.tab.Pos)
	}
	return nil
}

func KeyValueStart(b *flatbuffers.Builder) { b.StartObject(2) }
func KeyValueAddKey(b *flatbuffers.Builder, key flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(0, key, 0)
}
func KeyValueAddValue(b *flatbuffers.Builder, val flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, val, 0)
}
func KeyValueEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// ---- Field --------------------------------------------------------

// Field is a schema field flattened per the package doc comment: typeID
// names the logical Type (mirroring arrow.Type's numbering), and
// param1/param2/paramStr hold whatever scalars that type needs (bit
// width, precision/scale, unit, time zone, byte width, list size, ...).
type Field struct{ tab flatbuffers.Table }

func (f *Field) Init(buf []byte, i flatbuffers.UOffsetT) {
	f.tab.Bytes = buf
	f.tab.Pos = i
}

func (f *Field) Name() []byte {
	if o := f.tab.Offset(4); o != 0 {
		return f.tab.ByteVector(o + f.tab.Pos)
	}
	return nil
}

func (f *Field) Nullable() bool {
	if o := f.tab.Offset(6); o != 0 {
		return f.tab.GetBool(o + f.tab.Pos)
	}
	return false
}

func (f *Field) TypeID() int16 {
	if o := f.tab.Offset(8); o != 0 {
		return f.tab.GetInt16(o + f.tab.Pos)
	}
	return 0
}

func (f *Field) Param1() int64 {
	if o := f.tab.Offset(10); o != 0 {
		return f.tab.GetInt64(o + f.tab.Pos)
	}
	return 0
}

func (f *Field) Param2() int64 {
	if o := f.tab.Offset(12); o != 0 {
		return f.tab.GetInt64(o + f.tab.Pos)
	}
	return 0
}

func (f *Field) ParamStr() []byte {
	if o := f.tab.Offset(14); o != 0 {
		return f.tab.ByteVector(o + f.tab.Pos)
	}
	return nil
}

func (f *Field) DictionaryID() int64 {
	if o := f.tab.Offset(16); o != 0 {
		return f.tab.GetInt64(o + f.tab.Pos)
	}
	return -1
}

func (f *Field) DictionaryIndexTypeID() int16 {
	if o := f.tab.Offset(18); o != 0 {
		return f.tab.GetInt16(o + f.tab.Pos)
	}
	return 0
}

func (f *Field) DictionaryOrdered() bool {
	if o := f.tab.Offset(20); o != 0 {
		return f.tab.GetBool(o + f.tab.Pos)
	}
	return false
}

func (f *Field) ChildrenLength() int {
	if o := f.tab.Offset(22); o != 0 {
		return f.tab.VectorLen(o)
	}
	return 0
}

func (f *Field) Children(obj *Field, j int) bool {
	o := f.tab.Offset(22)
	if o == 0 {
		return false
	}
	x := f.tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * 4
	x = f.tab.Indirect(x)
	obj.Init(f.tab.Bytes, x)
	return true
}

func (f *Field) CustomMetadataLength() int {
	if o := f.tab.Offset(24); o != 0 {
		return f.tab.VectorLen(o)
	}
	return 0
}

func (f *Field) CustomMetadata(obj *KeyValue, j int) bool {
	o := f.tab.Offset(24)
	if o == 0 {
		return false
	}
	x := f.tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * 4
	x = f.tab.Indirect(x)
	obj.Init(f.tab.Bytes, x)
	return true
}

func FieldStart(b *flatbuffers.Builder) { b.StartObject(11) }
func FieldAddName(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(0, v, 0)
}
func FieldAddNullable(b *flatbuffers.Builder, v bool) { b.PrependBoolSlot(1, v, false) }
func FieldAddTypeID(b *flatbuffers.Builder, v int16)  { b.PrependInt16Slot(2, v, 0) }
func FieldAddParam1(b *flatbuffers.Builder, v int64)  { b.PrependInt64Slot(3, v, 0) }
func FieldAddParam2(b *flatbuffers.Builder, v int64)  { b.PrependInt64Slot(4, v, 0) }
func FieldAddParamStr(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(5, v, 0)
}
func FieldAddDictionaryID(b *flatbuffers.Builder, v int64) { b.PrependInt64Slot(6, v, -1) }
func FieldAddDictionaryIndexTypeID(b *flatbuffers.Builder, v int16) {
	b.PrependInt16Slot(7, v, 0)
}
func FieldAddDictionaryOrdered(b *flatbuffers.Builder, v bool) {
	b.PrependBoolSlot(8, v, false)
}
func FieldAddChildren(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(9, v, 0)
}
func FieldAddCustomMetadata(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(10, v, 0)
}
func FieldEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// ---- Schema --------------------------------------------------------

type Schema struct{ tab flatbuffers.Table }

func GetRootAsSchema(buf []byte, offset flatbuffers.UOffsetT) *Schema {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	s := &Schema{}
	s.tab.Bytes = buf
	s.tab.Pos = n + offset
	return s
}

func (s *Schema) Init(buf []byte, i flatbuffers.UOffsetT) {
	s.tab.Bytes = buf
	s.tab.Pos = i
}

func (s *Schema) FieldsLength() int {
	if o := s.tab.Offset(6); o != 0 {
		return s.tab.VectorLen(o)
	}
	return 0
}

func (s *Schema) Fields(obj *Field, j int) bool {
	o := s.tab.Offset(6)
	if o == 0 {
		return false
	}
	x := s.tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * 4
	x = s.tab.Indirect(x)
	obj.Init(s.tab.Bytes, x)
	return true
}

func (s *Schema) CustomMetadataLength() int {
	if o := s.tab.Offset(8); o != 0 {
		return s.tab.VectorLen(o)
	}
	return 0
}

func (s *Schema) CustomMetadata(obj *KeyValue, j int) bool {
	o := s.tab.Offset(8)
	if o == 0 {
		return false
	}
	x := s.tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * 4
	x = s.tab.Indirect(x)
	obj.Init(s.tab.Bytes, x)
	return true
}

func SchemaStart(b *flatbuffers.Builder) { b.StartObject(3) }
func SchemaAddFields(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, v, 0)
}
func SchemaAddCustomMetadata(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(2, v, 0)
}
func SchemaEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// ---- FieldNode / Buffer (structs: fixed-width, inline in their vectors) --

type FieldNode struct{ tab flatbuffers.Struct }

func (n *FieldNode) Init(buf []byte, i flatbuffers.UOffsetT) {
	n.tab.Bytes = buf
	n.tab.Pos = i
}
func (n *FieldNode) Length() int64    { return n.tab.GetInt64(n.tab.Pos) }
func (n *FieldNode) NullCount() int64 { return n.tab.GetInt64(n.tab.Pos + 8) }

func CreateFieldNode(b *flatbuffers.Builder, length, nullCount int64) flatbuffers.UOffsetT {
	b.Prep(8, 16)
	b.PrependInt64(nullCount)
	b.PrependInt64(length)
	return b.Offset()
}

type Buffer struct{ tab flatbuffers.Struct }

func (buf *Buffer) Init(b []byte, i flatbuffers.UOffsetT) {
	buf.tab.Bytes = b
	buf.tab.Pos = i
}
func (buf *Buffer) Offset() int64 { return buf.tab.GetInt64(buf.tab.Pos) }
func (buf *Buffer) Length() int64 { return buf.tab.GetInt64(buf.tab.Pos + 8) }

func CreateBuffer(b *flatbuffers.Builder, offset, length int64) flatbuffers.UOffsetT {
	b.Prep(8, 16)
	b.PrependInt64(length)
	b.PrependInt64(offset)
	return b.Offset()
}

// ---- BodyCompression -------------------------------------------------

type BodyCompression struct{ tab flatbuffers.Table }

func (c *BodyCompression) Init(buf []byte, i flatbuffers.UOffsetT) {
	c.tab.Bytes = buf
	c.tab.Pos = i
}

func (c *BodyCompression) Codec() CompressionCodec {
	if o := c.tab.Offset(4); o != 0 {
		return CompressionCodec(c.tab.GetInt8(o + c.tab.Pos))
	}
	return CompressionCodecLZ4Frame
}

func BodyCompressionStart(b *flatbuffers.Builder) { b.StartObject(2) }
func BodyCompressionAddCodec(b *flatbuffers.Builder, v CompressionCodec) {
	b.PrependInt8Slot(0, int8(v), 0)
}
func BodyCompressionEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// ---- RecordBatch -------------------------------------------------

type RecordBatch struct{ tab flatbuffers.Table }

func (r *RecordBatch) Init(buf []byte, i flatbuffers.UOffsetT) {
	r.tab.Bytes = buf
	r.tab.Pos = i
}

func (r *RecordBatch) Length() int64 {
	if o := r.tab.Offset(4); o != 0 {
		return r.tab.GetInt64(o + r.tab.Pos)
	}
	return 0
}

func (r *RecordBatch) NodesLength() int {
	if o := r.tab.Offset(6); o != 0 {
		return r.tab.VectorLen(o)
	}
	return 0
}

func (r *RecordBatch) Nodes(obj *FieldNode, j int) bool {
	o := r.tab.Offset(6)
	if o == 0 {
		return false
	}
	x := r.tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * 16
	obj.Init(r.tab.Bytes, x)
	return true
}

func (r *RecordBatch) BuffersLength() int {
	if o := r.tab.Offset(8); o != 0 {
		return r.tab.VectorLen(o)
	}
	return 0
}

func (r *RecordBatch) Buffers(obj *Buffer, j int) bool {
	o := r.tab.Offset(8)
	if o == 0 {
		return false
	}
	x := r.tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * 16
	obj.Init(r.tab.Bytes, x)
	return true
}

func (r *RecordBatch) Compression(obj *BodyCompression) *BodyCompression {
	if o := r.tab.Offset(10); o != 0 {
		x := r.tab.Indirect(o + r.tab.Pos)
		if obj == nil {
			obj = &BodyCompression{}
		}
		obj.Init(r.tab.Bytes, x)
		return obj
	}
	return nil
}

func RecordBatchStart(b *flatbuffers.Builder) { b.StartObject(4) }
func RecordBatchAddLength(b *flatbuffers.Builder, v int64) {
	b.PrependInt64Slot(0, v, 0)
}
func RecordBatchAddNodes(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, v, 0)
}
func RecordBatchAddBuffers(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(2, v, 0)
}
func RecordBatchAddCompression(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(3, v, 0)
}
func RecordBatchEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// ---- DictionaryBatch -------------------------------------------------

type DictionaryBatch struct{ tab flatbuffers.Table }

func (d *DictionaryBatch) Init(buf []byte, i flatbuffers.UOffsetT) {
	d.tab.Bytes = buf
	d.tab.Pos = i
}

func (d *DictionaryBatch) Id() int64 {
	if o := d.tab.Offset(4); o != 0 {
		return d.tab.GetInt64(o + d.tab.Pos)
	}
	return 0
}

func (d *DictionaryBatch) Data(obj *RecordBatch) *RecordBatch {
	if o := d.tab.Offset(6); o != 0 {
		x := d.tab.Indirect(o + d.tab.Pos)
		if obj == nil {
			obj = &RecordBatch{}
		}
		obj.Init(d.tab.Bytes, x)
		return obj
	}
	return nil
}

func (d *DictionaryBatch) IsDelta() bool {
	if o := d.tab.Offset(8); o != 0 {
		return d.tab.GetBool(o + d.tab.Pos)
	}
	return false
}

func DictionaryBatchStart(b *flatbuffers.Builder) { b.StartObject(3) }
func DictionaryBatchAddId(b *flatbuffers.Builder, v int64) {
	b.PrependInt64Slot(0, v, 0)
}
func DictionaryBatchAddData(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, v, 0)
}
func DictionaryBatchAddIsDelta(b *flatbuffers.Builder, v bool) {
	b.PrependBoolSlot(2, v, false)
}
func DictionaryBatchEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// ---- Block (struct) / Footer -------------------------------------------------

type Block struct{ tab flatbuffers.Struct }

func (blk *Block) Init(buf []byte, i flatbuffers.UOffsetT) {
	blk.tab.Bytes = buf
	blk.tab.Pos = i
}
func (blk *Block) Offset() int64         { return blk.tab.GetInt64(blk.tab.Pos) }
func (blk *Block) MetaDataLength() int32 { return blk.tab.GetInt32(blk.tab.Pos + 8) }
func (blk *Block) BodyLength() int64     { return blk.tab.GetInt64(blk.tab.Pos + 16) }

func CreateBlock(b *flatbuffers.Builder, offset int64, metaDataLength int32, bodyLength int64) flatbuffers.UOffsetT {
	b.Prep(8, 24)
	b.PrependInt64(bodyLength)
	b.Pad(4)
	b.PrependInt32(metaDataLength)
	b.PrependInt64(offset)
	return b.Offset()
}

type Footer struct{ tab flatbuffers.Table }

func GetRootAsFooter(buf []byte, offset flatbuffers.UOffsetT) *Footer {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	f := &Footer{}
	f.tab.Bytes = buf
	f.tab.Pos = n + offset
	return f
}

func (f *Footer) Version() MetadataVersion {
	if o := f.tab.Offset(4); o != 0 {
		return MetadataVersion(f.tab.GetInt16(o + f.tab.Pos))
	}
	return MetadataVersionV5
}

func (f *Footer) Schema(obj *Schema) *Schema {
	if o := f.tab.Offset(6); o != 0 {
		x := f.tab.Indirect(o + f.tab.Pos)
		if obj == nil {
			obj = &Schema{}
		}
		obj.Init(f.tab.Bytes, x)
		return obj
	}
	return nil
}

func (f *Footer) DictionariesLength() int {
	if o := f.tab.Offset(8); o != 0 {
		return f.tab.VectorLen(o)
	}
	return 0
}

func (f *Footer) Dictionaries(obj *Block, j int) bool {
	o := f.tab.Offset(8)
	if o == 0 {
		return false
	}
	x := f.tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * 24
	obj.Init(f.tab.Bytes, x)
	return true
}

func (f *Footer) RecordBatchesLength() int {
	if o := f.tab.Offset(10); o != 0 {
		return f.tab.VectorLen(o)
	}
	return 0
}

func (f *Footer) RecordBatches(obj *Block, j int) bool {
	o := f.tab.Offset(10)
	if o == 0 {
		return false
	}
	x := f.tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * 24
	obj.Init(f.tab.Bytes, x)
	return true
}

func FooterStart(b *flatbuffers.Builder) { b.StartObject(4) }
func FooterAddVersion(b *flatbuffers.Builder, v MetadataVersion) {
	b.PrependInt16Slot(0, int16(v), 0)
}
func FooterAddSchema(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, v, 0)
}
func FooterAddDictionaries(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(2, v, 0)
}
func FooterAddRecordBatches(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(3, v, 0)
}
func FooterEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }
