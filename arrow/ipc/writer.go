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
	"context"
	"io"
	"math"
	"unsafe"

	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/array"
	"github.com/arrowcore/arrow/arrow/bitutil"
	"github.com/arrowcore/arrow/arrow/ipc/compress"
	"github.com/arrowcore/arrow/arrow/memory"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type swriter struct {
	w         io.Writer
	pos       int64
	alignment int64
}

func (w *swriter) start() error { return nil }
func (w *swriter) Close() error {
	_, err := w.Write(kEOS[:])
	return err
}

func (w *swriter) write(p payload) error {
	_, err := writeIPCPayload(w, p, w.alignment)
	return err
}

func (w *swriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

// Writer is an Arrow Stream-mode writer (spec.md §4.5); FileWriter layers
// the footer/magic framing on top of the same recordEncoder.
type Writer struct {
	w io.Writer

	mem memory.Allocator
	pw  payloadWriter
	cfg *config

	started bool
	schema  *arrow.Schema
	dicts   *dictionaryManager
}

// NewWriter returns a writer that writes records to the provided output stream.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	cfg := newConfig(opts...)
	dicts := newDictionaryManager()
	dicts.nested = cfg.dictEncodeNested
	return &Writer{
		w:      w,
		mem:    cfg.alloc,
		pw:     &swriter{w: w, alignment: cfg.alignment},
		cfg:    cfg,
		schema: cfg.schema,
		dicts:  dicts,
	}
}

func (w *Writer) Close() error {
	if w.pw == nil {
		return nil
	}
	err := w.pw.Close()
	if err != nil {
		return errors.Wrap(err, "arrow/ipc: could not close payload writer")
	}
	w.pw = nil
	return nil
}

func (w *Writer) start() error {
	w.started = true
	ps := payloadsFromSchema(w.schema, w.mem, w.dicts)
	defer ps.Release()
	for _, data := range ps {
		if err := w.pw.write(data); err != nil {
			return err
		}
	}
	return nil
}

// Write encodes and emits one record batch, preceded by any new
// dictionary batches its dictionary-encoded columns require (spec.md §6
// C7: "a dictionary batch precedes the first record batch referencing
// its id, and any batch introducing new pool values").
func (w *Writer) Write(rec arrow.Record) error {
	if !w.started {
		if err := w.start(); err != nil {
			return err
		}
	}

	schema := rec.Schema()
	if schema == nil || !schema.Equal(w.schema) {
		return errInconsistentSchema
	}

	if w.cfg.dictEncode {
		if err := w.writeDictionaries(rec); err != nil {
			return err
		}
	}

	const allow64b = true
	data := payload{msg: MessageRecordBatch}
	enc := newRecordEncoder(w.mem, 0, w.cfg.maxDepth, allow64b, w.cfg.alignment, w.cfg.codec, w.cfg.compressor())
	defer data.Release()

	if err := enc.Encode(&data, rec); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not encode record to payload")
	}

	return w.pw.write(data)
}

// writeDictionaries builds and immediately emits the dictionary batches
// rec's dictionary-encoded columns require.
func (w *Writer) writeDictionaries(rec arrow.Record) error {
	ps, err := w.buildDictionaryPayloads(rec)
	if err != nil {
		return err
	}
	for _, p := range ps {
		if err := w.pw.write(p); err != nil {
			return err
		}
	}
	return nil
}

// buildDictionaryPayloads diffs every dictionary-encoded column of rec
// against the writer's pool (spec.md §6 C7) and encodes a DictionaryBatch
// payload for each one that grew, without writing anything to w.pw — so
// WritePartitions can encode these off the caller's goroutine and still
// emit them in partition order.
func (w *Writer) buildDictionaryPayloads(rec arrow.Record) (payloads, error) {
	var out payloads
	for i := 0; i < int(rec.NumCols()); i++ {
		dictArr, ok := rec.Column(i).(*array.Dictionary)
		if !ok {
			continue
		}
		fieldName := rec.ColumnName(i)
		id, ok := w.dicts.IDFor(fieldName)
		if !ok {
			// the schema walk in start() mints an id for every
			// dictionary-typed field; this column's field isn't one.
			continue
		}

		pool := dictArr.Dictionary()
		n := pool.Len()
		values := make([]interface{}, n)
		for j := 0; j < n; j++ {
			values[j] = dictValueKey(pool, j)
		}

		fresh, isFirst := w.dicts.Delta(fieldName, values, nil)
		if len(fresh) == 0 && !isFirst {
			continue
		}

		p, err := w.encodeDictionaryBatch(id, !isFirst, fresh, pool)
		if err != nil {
			return nil, errors.Wrapf(err, "arrow/ipc: could not encode dictionary batch for field %q", fieldName)
		}
		out = append(out, p)
	}
	return out, nil
}

// dictValueKey renders element i of arr through its own String() method
// to use as a comparable map key; this sidesteps needing a concrete
// type-switch over every generic array instantiation just to hash a
// dictionary value (a deliberate simplification over a zero-copy hash,
// noted in DESIGN.md).
func dictValueKey(arr array.Interface, i int) interface{} {
	sub := array.NewSlice(arr, i, 1)
	defer sub.Release()
	return sub.String()
}

// encodeDictionaryBatch wraps the new pool values (all of pool when
// isDelta is false, just its newly appended tail otherwise) in a
// DictionaryBatch-tagged payload, reusing recordEncoder's traversal by
// encoding a throwaway single-column Record and then re-wrapping its
// metadata under writeDictionaryMessage instead of writeRecordMessage.
func (w *Writer) encodeDictionaryBatch(id int64, isDelta bool, fresh []interface{}, pool array.Interface) (payload, error) {
	n := pool.Len()
	start := n - len(fresh)

	var sub array.Interface
	if start == 0 && len(fresh) == n {
		pool.Retain()
		sub = pool
	} else {
		sub = array.NewSlice(pool, start, len(fresh))
	}
	defer sub.Release()

	schema := arrow.NewSchema([]arrow.Field{{Name: "dictionary", Type: sub.DataType(), Nullable: true}}, nil)
	rec := array.NewRecord(schema, []array.Interface{sub}, int64(sub.Len()))
	defer rec.Release()

	data := payload{msg: MessageDictionaryBatch}
	enc := newRecordEncoder(w.mem, 0, w.cfg.maxDepth, true, w.cfg.alignment, w.cfg.codec, w.cfg.compressor())
	if err := enc.Encode(&data, rec); err != nil {
		data.Release()
		return payload{}, err
	}

	data.meta.Release()
	data.meta = writeDictionaryMessage(w.mem, id, isDelta, rec.NumRows(), data.size, enc.fields, enc.meta, w.cfg.codec)
	return data, nil
}

// partitionResult is one partition's encoded payload(s), or the error
// that aborted encoding it.
type partitionResult struct {
	idx          int
	dictPayloads payloads
	data         payload
	err          error
}

// WritePartitions implements C6: partition 0 is always encoded on the
// caller's goroutine; the rest encode in parallel bounded by ntasks-1
// concurrent workers, but are emitted to pw strictly in partition order
// via a watermark-gated drain of the results channel (spec.md §5
// "ntasks"/§4.6 "records emitted in partition order regardless of
// encode order").
func (w *Writer) WritePartitions(ctx context.Context, recs []arrow.Record) error {
	if len(recs) == 0 {
		return nil
	}
	if !w.started {
		if err := w.start(); err != nil {
			return err
		}
	}

	encodeOne := func(i int) partitionResult {
		rec := recs[i]
		schema := rec.Schema()
		if schema == nil || !schema.Equal(w.schema) {
			return partitionResult{idx: i, err: errInconsistentSchema}
		}

		var dictPayloads payloads
		if w.cfg.dictEncode {
			dp, err := w.buildDictionaryPayloads(rec)
			if err != nil {
				return partitionResult{idx: i, err: err}
			}
			dictPayloads = dp
		}

		data := payload{msg: MessageRecordBatch}
		enc := newRecordEncoder(w.mem, 0, w.cfg.maxDepth, true, w.cfg.alignment, w.cfg.codec, w.cfg.compressor())
		if err := enc.Encode(&data, rec); err != nil {
			return partitionResult{idx: i, err: errors.Wrapf(err, "arrow/ipc: could not encode partition %d", i)}
		}
		return partitionResult{idx: i, dictPayloads: dictPayloads, data: data}
	}

	// partition 0 always runs synchronously, before any worker is spawned.
	first := encodeOne(0)
	if first.err != nil {
		return arrow.WriteAborted(0, first.err)
	}

	results := make(chan partitionResult, len(recs)-1)
	limit := w.cfg.ntasks - 1
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i := 1; i < len(recs); i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				results <- partitionResult{idx: i, err: ctx.Err()}
			default:
				results <- encodeOne(i)
			}
			return nil
		})
	}
	go func() {
		g.Wait()
		close(results)
	}()

	if err := w.emit(first); err != nil {
		return err
	}

	pending := make(map[int]partitionResult, len(recs)-1)
	next := 1
	for r := range results {
		if r.err != nil {
			return arrow.WriteAborted(r.idx, r.err)
		}
		pending[r.idx] = r
		for {
			res, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			if err := w.emit(res); err != nil {
				return err
			}
			next++
		}
	}
	if next != len(recs) {
		return arrow.Newf(arrow.KindWriteAborted, "arrow/ipc: only %d of %d partitions were emitted", next, len(recs))
	}
	return nil
}

func (w *Writer) emit(r partitionResult) error {
	for _, dp := range r.dictPayloads {
		if err := w.pw.write(dp); err != nil {
			return err
		}
	}
	return w.pw.write(r.data)
}

// recordEncoder walks one Record's columns depth-first, building the
// FieldNode/Buffer metadata and body buffer list a RecordBatch or
// DictionaryBatch message needs (spec.md §4.3).
type recordEncoder struct {
	mem memory.Allocator

	fields []fieldMetadata
	meta   []bufferMetadata

	depth     int64
	start     int64
	allow64b  bool
	alignment int64

	codec      CompressionCodec
	compressor compress.Compressor
}

func newRecordEncoder(mem memory.Allocator, startOffset, maxDepth int64, allow64b bool, alignment int64, codec CompressionCodec, compressor compress.Compressor) *recordEncoder {
	return &recordEncoder{
		mem:        mem,
		start:      startOffset,
		depth:      maxDepth,
		allow64b:   allow64b,
		alignment:  alignment,
		codec:      codec,
		compressor: compressor,
	}
}

func (w *recordEncoder) Encode(p *payload, rec arrow.Record) error {
	for i, col := range rec.Columns() {
		if err := w.visit(p, col); err != nil {
			return errors.Wrapf(err, "arrow/ipc: could not encode column %d (%q)", i, rec.ColumnName(i))
		}
	}

	if w.codec != CompressionNone {
		if err := w.compressBodies(p); err != nil {
			return err
		}
	}

	offset := w.start
	w.meta = make([]bufferMetadata, len(p.body))
	for i, buf := range p.body {
		var size, padding int64
		if buf != nil {
			size = int64(buf.Len())
			padding = bitutil.PaddedLength(size, w.alignment) - size
		}
		w.meta[i] = bufferMetadata{Offset: offset, Len: size + padding}
		offset += size + padding
	}

	p.size = offset - w.start
	if !bitutil.IsMultipleOf8(p.size) {
		panic("arrow/ipc: record batch body not 8-byte aligned")
	}

	return w.encodeMetadata(p, rec.NumRows())
}

// compressBodies replaces every non-nil body buffer with its
// length-prefix-framed, possibly-compressed form (spec.md §4.4 "per-
// buffer compression framing"); FieldNode lengths/null-counts are
// logical and stay untouched.
func (w *recordEncoder) compressBodies(p *payload) error {
	for i, buf := range p.body {
		if buf == nil || buf.Len() == 0 {
			continue
		}
		framed, err := compress.CompressBuffer(w.compressor, buf.Bytes())
		if err != nil {
			return errors.Wrapf(err, "arrow/ipc: could not compress buffer %d", i)
		}
		buf.Release()
		p.body[i] = memory.NewBuffer(framed)
	}
	return nil
}

func (w *recordEncoder) encodeMetadata(p *payload, nrows int64) error {
	p.meta = writeRecordMessage(w.mem, nrows, p.size, w.fields, w.meta, w.codec)
	return nil
}

// visit appends arr's FieldNode and body buffers to p, recursing into
// nested/dictionary/extension arrays as needed. It operates generically
// over arrow.ArrayData rather than type-switching on every concrete
// array instantiation: C3's generic array kinds (Binary[O], List[O], ...)
// would otherwise force a case per O, so dispatch instead happens on the
// (non-generic) arrow.DataType tree, reconstructing child arrays with
// array.MakeFromData/array.NewSlice only where a value actually needs
// inspecting (spec.md §3/§4.3).
func (w *recordEncoder) visit(p *payload, arr arrow.Array) error {
	if w.depth <= 0 {
		return errMaxRecursion
	}
	if !w.allow64b && arr.Len() > math.MaxInt32 {
		return errBigArray
	}

	dtype := arr.DataType()
	data := arr.Data()

	if ext, ok := dtype.(arrow.ExtensionType); ok {
		storage := array.MakeFromData(retaggedData{ArrayData: data, dt: ext.StorageType()})
		err := w.visit(p, storage)
		storage.Release()
		return err
	}

	w.fields = append(w.fields, fieldMetadata{Len: int64(arr.Len()), Nulls: int64(arr.NullN())})
	if _, isNull := dtype.(*arrow.NullType); isNull {
		// Null arrays report every element as null but carry zero buffers
		// of their own (spec.md §3); there is no bitmap to slice.
		p.body = append(p.body, nil)
	} else {
		switch arr.NullN() {
		case 0:
			p.body = append(p.body, nil)
		default:
			p.body = append(p.body, truncatedBitmap(w.mem, w.alignment, int64(data.Offset()), int64(data.Len()), data.Buffers()[0]))
		}
	}

	switch dt := dtype.(type) {
	case *arrow.NullType:
		// zero buffers: every element is absent by construction.

	case *arrow.BooleanType:
		p.body = append(p.body, truncatedBitmap(w.mem, w.alignment, int64(data.Offset()), int64(data.Len()), data.Buffers()[1]))

	case *arrow.DictionaryType:
		idxType, ok := dt.IndexType.(arrow.FixedWidthDataType)
		if !ok {
			return arrow.Newf(arrow.KindUnsupportedType, "arrow/ipc: dictionary index type %T is not fixed-width", dt.IndexType)
		}
		typeWidth := int64(idxType.BitWidth() / 8)
		byteOffset := int64(data.Offset()) * typeWidth
		byteLength := int64(data.Len()) * typeWidth
		p.body = append(p.body, truncatedFixedWidth(w.mem, byteOffset, byteLength, data.Buffers()[1]))

	case arrow.BinaryDataType:
		voffsets, values, err := w.truncateVarBinary(data)
		if err != nil {
			return errors.Wrapf(err, "arrow/ipc: could not truncate variable-width buffers for %T", dtype)
		}
		p.body = append(p.body, voffsets, values)

	case arrow.FixedWidthDataType:
		typeWidth := int64(dt.BitWidth() / 8)
		byteOffset := int64(data.Offset()) * typeWidth
		byteLength := int64(data.Len()) * typeWidth
		p.body = append(p.body, truncatedFixedWidth(w.mem, byteOffset, byteLength, data.Buffers()[1]))

	case *arrow.ListType:
		if err := w.visitList(p, data); err != nil {
			return errors.Wrapf(err, "arrow/ipc: could not visit list array")
		}

	case *arrow.LargeListType:
		if err := w.visitList(p, data); err != nil {
			return errors.Wrapf(err, "arrow/ipc: could not visit large-list array")
		}

	case *arrow.MapType:
		// physically List(Struct{key,value}) (spec.md §3 Map(K,V)).
		if err := w.visitList(p, data); err != nil {
			return errors.Wrapf(err, "arrow/ipc: could not visit map array")
		}

	case *arrow.FixedSizeListType:
		if err := w.visitFixedSizeList(p, data, int64(dt.Len())); err != nil {
			return errors.Wrapf(err, "arrow/ipc: could not visit fixed-size-list array")
		}

	case *arrow.StructType:
		w.depth--
		for _, c := range data.Children() {
			child := array.MakeFromData(c)
			err := w.visit(p, child)
			child.Release()
			if err != nil {
				return errors.Wrapf(err, "arrow/ipc: could not visit struct field")
			}
		}
		w.depth++

	case *arrow.UnionType:
		if err := w.visitUnion(p, dt, data); err != nil {
			return errors.Wrapf(err, "arrow/ipc: could not visit union array")
		}

	default:
		return arrow.Newf(arrow.KindUnsupportedType, "arrow/ipc: unknown array type %T (dtype=%T)", arr, dtype)
	}

	return nil
}

// visitList handles both List(i32) and LargeList(i64)/Map(i32) bodies:
// a rebased offsets buffer followed by the (possibly sliced) child
// array (spec.md §3 List(O,child), §4.3 offset rebasing).
func (w *recordEncoder) visitList(p *payload, data arrow.ArrayData) error {
	voffsets, childOffset, childLength, err := w.rebaseOffsets(data)
	if err != nil {
		return err
	}
	p.body = append(p.body, voffsets)

	w.depth--
	defer func() { w.depth++ }()

	children := data.Children()
	child := array.MakeFromData(children[0])
	defer child.Release()

	values := child
	if childOffset != 0 || childLength < int64(child.Len()) {
		values = array.NewSlice(child, int(childOffset), int(childLength))
		defer values.Release()
	}
	return w.visit(p, values)
}

func (w *recordEncoder) visitFixedSizeList(p *payload, data arrow.ArrayData, n int64) error {
	w.depth--
	defer func() { w.depth++ }()

	children := data.Children()
	child := array.MakeFromData(children[0])
	defer child.Release()

	childOffset := int64(data.Offset()) * n
	childLength := int64(data.Len()) * n

	values := child
	if childOffset != 0 || childLength < int64(child.Len()) {
		values = array.NewSlice(child, int(childOffset), int(childLength))
		defer values.Release()
	}
	return w.visit(p, values)
}

// visitUnion appends the type_ids buffer (and, for dense unions, the
// offsets buffer) then recurses into every variant child at its own,
// independent length — unions carry no validity bitmap of their own and
// their children are never sliced to the parent's range (spec.md §3
// DenseUnion/SparseUnion).
func (w *recordEncoder) visitUnion(p *payload, dt *arrow.UnionType, data arrow.ArrayData) error {
	bufs := data.Buffers()
	typeIDs := truncatedFixedWidth(w.mem, int64(data.Offset()), int64(data.Len()), bufs[1])
	p.body = append(p.body, typeIDs)

	if dt.Mode() == arrow.DenseMode {
		offsets := truncatedFixedWidth(w.mem, int64(data.Offset())*4, int64(data.Len())*4, bufs[2])
		p.body = append(p.body, offsets)
	}

	w.depth--
	defer func() { w.depth++ }()
	for _, c := range data.Children() {
		child := array.MakeFromData(c)
		err := w.visit(p, child)
		child.Release()
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *recordEncoder) truncateVarBinary(data arrow.ArrayData) (voffsets, values *memory.Buffer, err error) {
	voffsets, childOffset, childLength, err := w.rebaseOffsets(data)
	if err != nil {
		return nil, nil, err
	}
	values = truncatedFixedWidth(w.mem, childOffset, childLength, data.Buffers()[2])
	return voffsets, values, nil
}

// rebaseOffsets reads data's own offsets buffer (buffers()[1], shared by
// Binary/String/List/Map/LargeList/LargeBinary/LargeString) and returns
// a copy rebased to start at zero when data.Offset() != 0 or the first
// retained offset isn't already zero, resolving the teacher's
// "getZeroBasedValueOffsets: not implemented offset != 0" gap (spec.md
// §4.3). It also returns the byte range [childOffset, childOffset+
// childLength) of the values/child array this slice of offsets covers.
func (w *recordEncoder) rebaseOffsets(data arrow.ArrayData) (voffsets *memory.Buffer, childOffset, childLength int64, err error) {
	buf := data.Buffers()[1]
	if buf == nil {
		return nil, 0, 0, nil
	}
	n := int64(data.Len())
	off := int64(data.Offset())
	large := large64Offsets(data.DataType())

	if large {
		raw := reinterpretInt64(buf.Bytes())
		base := raw[off]
		childOffset, childLength = base, raw[off+n]-base
		if off == 0 && base == 0 {
			buf.Retain()
			return buf, childOffset, childLength, nil
		}
		out := make([]int64, n+1)
		for i := int64(0); i <= n; i++ {
			out[i] = raw[off+i] - base
		}
		return memory.NewBuffer(int64ToBytes(out)), childOffset, childLength, nil
	}

	raw := reinterpretInt32(buf.Bytes())
	base := raw[off]
	childOffset, childLength = int64(base), int64(raw[off+n]-base)
	if off == 0 && base == 0 {
		buf.Retain()
		return buf, childOffset, childLength, nil
	}
	out := make([]int32, n+1)
	for i := int64(0); i <= n; i++ {
		out[i] = raw[off+i] - base
	}
	return memory.NewBuffer(int32ToBytes(out)), childOffset, childLength, nil
}

func large64Offsets(dt arrow.DataType) bool {
	if b, ok := dt.(arrow.BinaryDataType); ok {
		return b.Offsets64()
	}
	_, ok := dt.(*arrow.LargeListType)
	return ok
}

// truncatedBitmap returns a validity/boolean-values bitmap covering
// exactly [offset, offset+length) bits: a fresh, repacked copy when the
// array is sliced or the source bitmap carries extra trailing bytes, or
// the shared buffer retained unchanged otherwise (spec.md §4.3, resolving
// the teacher's "newTruncatedBitmap: not implemented" gap for sliced
// arrays).
func truncatedBitmap(mem memory.Allocator, alignment, offset, length int64, input *memory.Buffer) *memory.Buffer {
	if input == nil {
		return nil
	}
	minLength := bitutil.PaddedLength(bitutil.BytesForBits(length), alignment)
	if offset == 0 && minLength >= int64(input.Len()) {
		input.Retain()
		return input
	}

	out := memory.NewResizableBuffer(mem)
	out.Resize(int(bitutil.BytesForBits(length)))
	dst := out.Bytes()
	src := input.Bytes()
	for i := int64(0); i < length; i++ {
		if bitutil.BitIsSet(src, int(offset+i)) {
			bitutil.SetBit(dst, int(i))
		}
	}
	return out
}

// truncatedFixedWidth returns the [byteOffset, byteOffset+byteLength)
// byte range of input: a fresh copy when the array is sliced or the
// buffer carries extra trailing bytes, the shared buffer unchanged
// otherwise (spec.md §4.3, resolving the teacher's "needTruncate: not
// implemented" gap for sliced fixed-width/offset/value buffers).
func truncatedFixedWidth(mem memory.Allocator, byteOffset, byteLength int64, input *memory.Buffer) *memory.Buffer {
	if input == nil {
		return nil
	}
	if byteOffset == 0 && byteLength >= int64(input.Len()) {
		input.Retain()
		return input
	}
	out := memory.NewResizableBuffer(mem)
	out.Resize(int(byteLength))
	copy(out.Bytes(), input.Bytes()[byteOffset:byteOffset+byteLength])
	return out
}

// retaggedData views an already-built ArrayData under a different
// DataType with no copy, used to let array.MakeFromData dispatch on an
// extension array's storage type while keeping its buffers/children
// (spec.md §6 extension metadata: "the physical representation is the
// storage type's").
type retaggedData struct {
	arrow.ArrayData
	dt arrow.DataType
}

func (r retaggedData) DataType() arrow.DataType { return r.dt }

func reinterpretInt32(raw []byte) []int32 {
	if len(raw) == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&raw[0])), len(raw)/4)
}

func reinterpretInt64(raw []byte) []int64 {
	if len(raw) == 0 {
		return nil
	}
	return unsafe.Slice((*int64)(unsafe.Pointer(&raw[0])), len(raw)/8)
}

func int32ToBytes(vals []int32) []byte {
	if len(vals) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(vals)*4)
}

func int64ToBytes(vals []int64) []byte {
	if len(vals) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(vals)*8)
}
