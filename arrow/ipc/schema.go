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
	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/internal/flatbuf"
	"github.com/arrowcore/arrow/arrow/memory"
	flatbuffers "github.com/google/flatbuffers/go"
)

// fieldEncoder walks one arrow.Field into the flattened flatbuf.Field
// shape (see internal/flatbuf's package doc for the scope decision this
// implements), minting/looking-up dictionary ids from a dictionary
// manager as it goes.
type fieldEncoder struct {
	b    *flatbuffers.Builder
	dicts *dictionaryManager
}

func (e *fieldEncoder) encodeField(f arrow.Field) flatbuffers.UOffsetT {
	dt := f.Type
	var dictID int64 = -1
	var dictIndexID int16
	var dictOrdered bool
	if d, ok := dt.(*arrow.DictionaryType); ok {
		dictID = e.dicts.idForField(f)
		dictIndexID = int16(d.IndexType.ID())
		dictOrdered = d.Ordered
		dt = d.ValueType
	}

	typeID, p1, p2, pstr := encodeTypeParams(dt)

	var childrenOff flatbuffers.UOffsetT
	if nested, ok := dt.(arrow.NestedType); ok {
		children := nested.Fields()
		offs := make([]flatbuffers.UOffsetT, len(children))
		for i, c := range children {
			offs[i] = e.encodeField(c)
		}
		e.b.StartVector(4, len(offs), 4)
		for i := len(offs) - 1; i >= 0; i-- {
			e.b.PrependUOffsetT(offs[i])
		}
		childrenOff = e.b.EndVector(len(offs))
	}

	nameOff := e.b.CreateString(f.Name)
	var paramStrOff flatbuffers.UOffsetT
	if pstr != nil {
		paramStrOff = e.b.CreateByteString(pstr)
	}

	flatbuf.FieldStart(e.b)
	flatbuf.FieldAddName(e.b, nameOff)
	flatbuf.FieldAddNullable(e.b, f.Nullable)
	flatbuf.FieldAddTypeID(e.b, typeID)
	flatbuf.FieldAddParam1(e.b, p1)
	flatbuf.FieldAddParam2(e.b, p2)
	if pstr != nil {
		flatbuf.FieldAddParamStr(e.b, paramStrOff)
	}
	flatbuf.FieldAddDictionaryID(e.b, dictID)
	flatbuf.FieldAddDictionaryIndexTypeID(e.b, dictIndexID)
	flatbuf.FieldAddDictionaryOrdered(e.b, dictOrdered)
	if childrenOff != 0 {
		flatbuf.FieldAddChildren(e.b, childrenOff)
	}
	return flatbuf.FieldEnd(e.b)
}

// encodeTypeParams returns the flattened (typeID, param1, param2,
// paramStr) tuple for dt (the value type, i.e. never a *DictionaryType —
// that layer is stripped by the caller).
func encodeTypeParams(dt arrow.DataType) (typeID int16, p1, p2 int64, pstr []byte) {
	typeID = int16(dt.ID())
	switch t := dt.(type) {
	case *arrow.Decimal128Type:
		p1, p2 = int64(t.Precision), int64(t.Scale)
	case *arrow.Decimal256Type:
		p1, p2 = int64(t.Precision), int64(t.Scale)
	case *arrow.TimestampType:
		p1 = int64(t.Unit)
		pstr = []byte(t.TimeZone)
	case *arrow.Time32Type:
		p1 = int64(t.Unit)
	case *arrow.Time64Type:
		p1 = int64(t.Unit)
	case *arrow.DurationType:
		p1 = int64(t.Unit)
	case *arrow.FixedSizeBinaryType:
		p1 = int64(t.ByteWidth)
	case *arrow.FixedSizeListType:
		p1 = int64(t.Len())
	case *arrow.UnionType:
		p1 = int64(t.Mode())
		codes := t.TypeCodes()
		raw := make([]byte, len(codes))
		for i, c := range codes {
			raw[i] = byte(c)
		}
		pstr = raw
	case arrow.ExtensionType:
		pstr = []byte(t.ExtensionName())
	}
	return
}

// schemaToFB encodes schema as a flatbuf Schema table, returning the raw
// flatbuffer bytes (not yet wrapped in a Message envelope).
func schemaToFB(b *flatbuffers.Builder, schema *arrow.Schema, dicts *dictionaryManager) flatbuffers.UOffsetT {
	fe := &fieldEncoder{b: b, dicts: dicts}
	fieldOffs := make([]flatbuffers.UOffsetT, schema.NumFields())
	for i, f := range schema.Fields() {
		fieldOffs[i] = fe.encodeField(f)
	}
	b.StartVector(4, len(fieldOffs), 4)
	for i := len(fieldOffs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(fieldOffs[i])
	}
	fieldsVec := b.EndVector(len(fieldOffs))

	metaOff := encodeKeyValues(b, schema.Metadata())

	flatbuf.SchemaStart(b)
	flatbuf.SchemaAddFields(b, fieldsVec)
	if metaOff != 0 {
		flatbuf.SchemaAddCustomMetadata(b, metaOff)
	}
	return flatbuf.SchemaEnd(b)
}

func encodeKeyValues(b *flatbuffers.Builder, md arrow.Metadata) flatbuffers.UOffsetT {
	if md.Len() == 0 {
		return 0
	}
	keys, values := md.Keys(), md.Values()
	offs := make([]flatbuffers.UOffsetT, len(keys))
	for i := range keys {
		kOff := b.CreateString(keys[i])
		vOff := b.CreateString(values[i])
		flatbuf.KeyValueStart(b)
		flatbuf.KeyValueAddKey(b, kOff)
		flatbuf.KeyValueAddValue(b, vOff)
		offs[i] = flatbuf.KeyValueEnd(b)
	}
	b.StartVector(4, len(offs), 4)
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i])
	}
	return b.EndVector(len(offs))
}

// payloadsFromSchema builds the Stream-mode schema message (one
// payload). The dictionaries parameter, when non-nil, is also consulted
// to mint/reuse dictionary ids while walking dictionary-encoded fields.
func payloadsFromSchema(schema *arrow.Schema, mem memory.Allocator, dicts *dictionaryManager) payloads {
	if dicts == nil {
		dicts = newDictionaryManager()
	}
	b := flatbuffers.NewBuilder(1024)
	schemaOff := schemaToFB(b, schema, dicts)

	flatbuf.MessageStart(b)
	flatbuf.MessageAddVersion(b, flatbuf.MetadataVersionV5)
	flatbuf.MessageAddHeaderType(b, flatbuf.MessageHeaderSchema)
	flatbuf.MessageAddHeader(b, schemaOff)
	flatbuf.MessageAddBodyLength(b, 0)
	msgOff := flatbuf.MessageEnd(b)
	b.Finish(msgOff)

	meta := memory.NewBuffer(append([]byte(nil), b.FinishedBytes()...))
	return payloads{{msg: MessageSchema, meta: meta}}
}

// writeRecordMessage builds the flatbuf Message wrapping a RecordBatch
// header describing nrows rows, the already-encoded field/buffer
// metadata, and the padded total body size (spec.md §4.3 RecordBatch).
func writeRecordMessage(mem memory.Allocator, nrows, bodyLen int64, fields []fieldMetadata, meta []bufferMetadata, codec CompressionCodec) *memory.Buffer {
	b := flatbuffers.NewBuilder(1024)

	b.StartVector(16, len(meta), 8)
	for i := len(meta) - 1; i >= 0; i-- {
		flatbuf.CreateBuffer(b, meta[i].Offset, meta[i].Len)
	}
	buffersVec := b.EndVector(len(meta))

	b.StartVector(16, len(fields), 8)
	for i := len(fields) - 1; i >= 0; i-- {
		flatbuf.CreateFieldNode(b, fields[i].Len, fields[i].Nulls)
	}
	nodesVec := b.EndVector(len(fields))

	var compressionOff flatbuffers.UOffsetT
	if codec != CompressionNone {
		var fbCodec flatbuf.CompressionCodec
		if codec == CompressionZSTD {
			fbCodec = flatbuf.CompressionCodecZSTD
		} else {
			fbCodec = flatbuf.CompressionCodecLZ4Frame
		}
		flatbuf.BodyCompressionStart(b)
		flatbuf.BodyCompressionAddCodec(b, fbCodec)
		compressionOff = flatbuf.BodyCompressionEnd(b)
	}

	flatbuf.RecordBatchStart(b)
	flatbuf.RecordBatchAddLength(b, nrows)
	flatbuf.RecordBatchAddNodes(b, nodesVec)
	flatbuf.RecordBatchAddBuffers(b, buffersVec)
	if compressionOff != 0 {
		flatbuf.RecordBatchAddCompression(b, compressionOff)
	}
	rbOff := flatbuf.RecordBatchEnd(b)

	flatbuf.MessageStart(b)
	flatbuf.MessageAddVersion(b, flatbuf.MetadataVersionV5)
	flatbuf.MessageAddHeaderType(b, flatbuf.MessageHeaderRecordBatch)
	flatbuf.MessageAddHeader(b, rbOff)
	flatbuf.MessageAddBodyLength(b, bodyLen)
	msgOff := flatbuf.MessageEnd(b)
	b.Finish(msgOff)

	return memory.NewBuffer(append([]byte(nil), b.FinishedBytes()...))
}

// writeDictionaryMessage wraps a dictionary batch's own RecordBatch
// encoding in a DictionaryBatch header tagged with id (spec.md §6/C7
// "DictionaryBatch(id, is_delta, data)").
func writeDictionaryMessage(mem memory.Allocator, id int64, isDelta bool, nrows, bodyLen int64, fields []fieldMetadata, meta []bufferMetadata, codec CompressionCodec) *memory.Buffer {
	b := flatbuffers.NewBuilder(1024)

	b.StartVector(16, len(meta), 8)
	for i := len(meta) - 1; i >= 0; i-- {
		flatbuf.CreateBuffer(b, meta[i].Offset, meta[i].Len)
	}
	buffersVec := b.EndVector(len(meta))

	b.StartVector(16, len(fields), 8)
	for i := len(fields) - 1; i >= 0; i-- {
		flatbuf.CreateFieldNode(b, fields[i].Len, fields[i].Nulls)
	}
	nodesVec := b.EndVector(len(fields))

	var compressionOff flatbuffers.UOffsetT
	if codec != CompressionNone {
		var fbCodec flatbuf.CompressionCodec
		if codec == CompressionZSTD {
			fbCodec = flatbuf.CompressionCodecZSTD
		} else {
			fbCodec = flatbuf.CompressionCodecLZ4Frame
		}
		flatbuf.BodyCompressionStart(b)
		flatbuf.BodyCompressionAddCodec(b, fbCodec)
		compressionOff = flatbuf.BodyCompressionEnd(b)
	}

	flatbuf.RecordBatchStart(b)
	flatbuf.RecordBatchAddLength(b, nrows)
	flatbuf.RecordBatchAddNodes(b, nodesVec)
	flatbuf.RecordBatchAddBuffers(b, buffersVec)
	if compressionOff != 0 {
		flatbuf.RecordBatchAddCompression(b, compressionOff)
	}
	rbOff := flatbuf.RecordBatchEnd(b)

	flatbuf.DictionaryBatchStart(b)
	flatbuf.DictionaryBatchAddId(b, id)
	flatbuf.DictionaryBatchAddData(b, rbOff)
	flatbuf.DictionaryBatchAddIsDelta(b, isDelta)
	dbOff := flatbuf.DictionaryBatchEnd(b)

	flatbuf.MessageStart(b)
	flatbuf.MessageAddVersion(b, flatbuf.MetadataVersionV5)
	flatbuf.MessageAddHeaderType(b, flatbuf.MessageHeaderDictionaryBatch)
	flatbuf.MessageAddHeader(b, dbOff)
	flatbuf.MessageAddBodyLength(b, bodyLen)
	msgOff := flatbuf.MessageEnd(b)
	b.Finish(msgOff)

	return memory.NewBuffer(append([]byte(nil), b.FinishedBytes()...))
}

// schemaFromFB decodes a flatbuf.Schema table back into an arrow.Schema,
// recording every dictionary-encoded field's id/value-type pair into
// types for the caller to resolve DictionaryBatch messages against
// (spec.md §6).
func schemaFromFB(sc *flatbuf.Schema, types dictTypeMap) *arrow.Schema {
	fields := make([]arrow.Field, sc.FieldsLength())
	var fb flatbuf.Field
	for i := range fields {
		sc.Fields(&fb, i)
		fields[i] = fieldFromFB(&fb, types)
	}
	return arrow.NewSchema(fields, nil)
}

func fieldFromFB(fb *flatbuf.Field, types dictTypeMap) arrow.Field {
	dt := typeFromFB(fb, types)
	if fb.DictionaryID() >= 0 {
		indexType := typeFromID(arrow.Type(fb.DictionaryIndexTypeID()))
		dictType := &arrow.DictionaryType{IndexType: indexType, ValueType: dt, Ordered: fb.DictionaryOrdered(), DictID: fb.DictionaryID()}
		types[fb.DictionaryID()] = dt
		dt = dictType
	}
	return arrow.Field{Name: string(fb.Name()), Type: dt, Nullable: fb.Nullable()}
}

func typeFromFB(fb *flatbuf.Field, types dictTypeMap) arrow.DataType {
	typeID := arrow.Type(fb.TypeID())
	children := make([]arrow.Field, fb.ChildrenLength())
	var childFB flatbuf.Field
	for i := range children {
		fb.Children(&childFB, i)
		children[i] = fieldFromFB(&childFB, types)
	}

	switch typeID {
	case arrow.DECIMAL128:
		return arrow.NewDecimal128Type(int32(fb.Param1()), int32(fb.Param2()))
	case arrow.DECIMAL256:
		return arrow.NewDecimal256Type(int32(fb.Param1()), int32(fb.Param2()))
	case arrow.TIMESTAMP:
		return arrow.NewTimestampType(arrow.TimeUnit(fb.Param1()), string(fb.ParamStr()))
	case arrow.TIME32:
		return arrow.NewTime32Type(arrow.TimeUnit(fb.Param1()))
	case arrow.TIME64:
		return arrow.NewTime64Type(arrow.TimeUnit(fb.Param1()))
	case arrow.DURATION:
		return arrow.NewDurationType(arrow.TimeUnit(fb.Param1()))
	case arrow.FIXED_SIZE_BINARY:
		return arrow.NewFixedSizeBinaryType(int(fb.Param1()))
	case arrow.LIST:
		return arrow.ListOfField(children[0])
	case arrow.LARGE_LIST:
		return arrow.LargeListOf(children[0].Type)
	case arrow.FIXED_SIZE_LIST:
		return arrow.FixedSizeListOf(int32(fb.Param1()), children[0].Type)
	case arrow.STRUCT:
		return arrow.StructOf(children...)
	case arrow.MAP:
		entries := children[0].Type.(*arrow.StructType)
		key := entries.Fields()[0].Type
		item := entries.Fields()[1].Type
		return arrow.MapOf(key, item)
	case arrow.DENSE_UNION, arrow.SPARSE_UNION:
		mode := arrow.UnionMode(fb.Param1())
		raw := fb.ParamStr()
		codes := make([]int8, len(raw))
		for i, c := range raw {
			codes[i] = int8(c)
		}
		return arrow.UnionOf(mode, children, codes)
	default:
		return typeFromID(typeID)
	}
}

// typeFromID resolves every parameterless logical type directly from
// its Type tag; parameterized types are decoded in typeFromFB above.
func typeFromID(t arrow.Type) arrow.DataType {
	switch t {
	case arrow.NULL:
		return arrow.Null
	case arrow.BOOL:
		return arrow.Bool
	case arrow.INT8:
		return arrow.PrimitiveTypes.Int8
	case arrow.INT16:
		return arrow.PrimitiveTypes.Int16
	case arrow.INT32:
		return arrow.PrimitiveTypes.Int32
	case arrow.INT64:
		return arrow.PrimitiveTypes.Int64
	case arrow.UINT8:
		return arrow.PrimitiveTypes.Uint8
	case arrow.UINT16:
		return arrow.PrimitiveTypes.Uint16
	case arrow.UINT32:
		return arrow.PrimitiveTypes.Uint32
	case arrow.UINT64:
		return arrow.PrimitiveTypes.Uint64
	case arrow.FLOAT32:
		return arrow.PrimitiveTypes.Float32
	case arrow.FLOAT64:
		return arrow.PrimitiveTypes.Float64
	case arrow.FLOAT16:
		return arrow.PrimitiveTypes.Float16
	case arrow.DATE32:
		return arrow.Date32
	case arrow.DATE64:
		return arrow.Date64
	case arrow.BINARY:
		return arrow.Binary
	case arrow.LARGE_BINARY:
		return arrow.LargeBinary_
	case arrow.STRING:
		return arrow.Utf8
	case arrow.LARGE_STRING:
		return arrow.LargeUtf8
	case arrow.INTERVAL_MONTHS:
		return arrow.MonthInterval_
	case arrow.INTERVAL_DAY_TIME:
		return arrow.DayTimeInterval_
	case arrow.INTERVAL_MONTH_DAY_NANO:
		return arrow.MonthDayNanoInterval_
	default:
		return arrow.Null
	}
}
