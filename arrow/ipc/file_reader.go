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

	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/bitutil"
	"github.com/arrowcore/arrow/arrow/internal/flatbuf"
	"github.com/arrowcore/arrow/arrow/memory"
	"github.com/pkg/errors"
)

// FileReader is an Arrow File-mode reader (spec.md §4.6): it reads the
// trailing footer once at construction to learn the schema and every
// dictionary/record block's (offset, length) pair, resolves all
// dictionaries up front, then decodes record batches on demand by random
// access via RecordAt.
type FileReader struct {
	r ReadAtSeeker

	footerBuf  *memory.Buffer
	footerData *flatbuf.Footer

	types dictTypeMap
	memo  dictMemo

	schema *arrow.Schema
	record arrow.Record
	irec   int

	mem memory.Allocator
}

// NewFileReader reads the footer and schema, resolves every dictionary
// block into the reader's memo, and returns a FileReader ready for
// RecordAt/Read.
func NewFileReader(r ReadAtSeeker, opts ...Option) (*FileReader, error) {
	cfg := newConfig(opts...)
	f := &FileReader{
		r:     r,
		types: make(dictTypeMap),
		memo:  newMemo(),
		mem:   cfg.alloc,
	}

	footerOffset := cfg.footerOffset
	if footerOffset <= 0 {
		off, err := r.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, errors.Wrap(err, "arrow/ipc: could not locate footer")
		}
		footerOffset = off
	}

	if err := f.readFooter(footerOffset); err != nil {
		return nil, errors.Wrap(err, "arrow/ipc: could not decode footer")
	}
	if err := f.readSchema(); err != nil {
		return nil, errors.Wrap(err, "arrow/ipc: could not decode schema")
	}
	if cfg.schema != nil && !cfg.schema.Equal(f.schema) {
		return nil, arrow.Newf(arrow.KindSchemaMismatch, "arrow/ipc: inconsistent schema for reading (got: %v, want: %v)", f.schema, cfg.schema)
	}
	return f, nil
}

// readFooter validates the leading and trailing magic, reads the
// footer-length prefix just ahead of the trailing magic, then decodes
// the footer flatbuffer itself (spec.md §4.6 scenario F).
func (f *FileReader) readFooter(footerOffset int64) error {
	tail := int64(len(Magic) + 4)
	if footerOffset <= tail+int64(len(Magic)) {
		return arrow.Newf(arrow.KindMalformedFrame, "arrow/ipc: file too small (size=%d)", footerOffset)
	}

	head := make([]byte, len(Magic)+2)
	if n, err := f.r.ReadAt(head, 0); err != nil || n != len(head) {
		return errors.Wrap(err, "arrow/ipc: could not read leading magic")
	}
	if !bytes.Equal(head[:len(Magic)], Magic) {
		return errNotArrowFile
	}

	trailer := make([]byte, tail)
	if n, err := f.r.ReadAt(trailer, footerOffset-tail); err != nil || n != len(trailer) {
		return errors.Wrap(err, "arrow/ipc: could not read footer trailer")
	}
	if !bytes.Equal(trailer[4:], Magic) {
		return errNotArrowFile
	}

	size := int64(binary.LittleEndian.Uint32(trailer[:4]))
	if size <= 0 || size+tail+int64(len(Magic)) > footerOffset {
		return errInconsistentFileMetadata
	}

	buf := make([]byte, size)
	if n, err := f.r.ReadAt(buf, footerOffset-tail-size); err != nil || n != len(buf) {
		return errors.Wrap(err, "arrow/ipc: could not read footer data")
	}

	f.footerBuf = memory.NewBuffer(buf)
	f.footerData = flatbuf.GetRootAsFooter(buf, 0)
	return nil
}

// readSchema decodes the footer's embedded schema, then resolves every
// dictionary block in footer order into memo before any record is
// decodable (spec.md §4.6/§6: dictionaries precede every record batch
// that might reference them).
func (f *FileReader) readSchema() error {
	var sc flatbuf.Schema
	if f.footerData.Schema(&sc) == nil {
		return arrow.Newf(arrow.KindMalformedFrame, "arrow/ipc: could not load schema from footer")
	}
	f.schema = schemaFromFB(&sc, f.types)

	for i := 0; i < f.NumDictionaries(); i++ {
		blk, err := f.dictBlock(i)
		if err != nil {
			return err
		}
		switch {
		case !bitutil.IsMultipleOf8(blk.Offset):
			return arrow.Newf(arrow.KindMalformedFrame, "arrow/ipc: invalid file offset=%d for dictionary %d", blk.Offset, i)
		case !bitutil.IsMultipleOf8(int64(blk.Meta)):
			return arrow.Newf(arrow.KindMalformedFrame, "arrow/ipc: invalid metadata position=%d for dictionary %d", blk.Meta, i)
		case !bitutil.IsMultipleOf8(blk.Body):
			return arrow.Newf(arrow.KindMalformedFrame, "arrow/ipc: invalid body position=%d for dictionary %d", blk.Body, i)
		}

		msg, err := blk.NewMessage()
		if err != nil {
			return errors.Wrapf(err, "arrow/ipc: could not read dictionary block %d", i)
		}
		err = decodeDictionaryBatchMessage(f.mem, f.types, &f.memo, msg)
		msg.Release()
		if err != nil {
			return errors.Wrapf(err, "arrow/ipc: could not decode dictionary block %d", i)
		}
	}
	return nil
}

func (f *FileReader) recordBlock(i int) (fileBlock, error) {
	var blk flatbuf.Block
	if !f.footerData.RecordBatches(&blk, i) {
		return fileBlock{}, arrow.Newf(arrow.KindMalformedFrame, "arrow/ipc: could not extract record block %d", i)
	}
	return fileBlock{Offset: blk.Offset(), Meta: blk.MetaDataLength(), Body: blk.BodyLength(), r: f.r}, nil
}

func (f *FileReader) dictBlock(i int) (fileBlock, error) {
	var blk flatbuf.Block
	if !f.footerData.Dictionaries(&blk, i) {
		return fileBlock{}, arrow.Newf(arrow.KindMalformedFrame, "arrow/ipc: could not extract dictionary block %d", i)
	}
	return fileBlock{Offset: blk.Offset(), Meta: blk.MetaDataLength(), Body: blk.BodyLength(), r: f.r}, nil
}

// Schema returns the file's schema, decoded once up front.
func (f *FileReader) Schema() *arrow.Schema { return f.schema }

// NumDictionaries returns the number of dictionary blocks in the footer.
func (f *FileReader) NumDictionaries() int { return f.footerData.DictionariesLength() }

// NumRecords returns the number of record batches in the footer.
func (f *FileReader) NumRecords() int { return f.footerData.RecordBatchesLength() }

// Version returns the file's metadata version.
func (f *FileReader) Version() flatbuf.MetadataVersion { return f.footerData.Version() }

// Close releases the current record, if any, and the footer buffer.
func (f *FileReader) Close() error {
	if f.record != nil {
		f.record.Release()
		f.record = nil
	}
	if f.footerBuf != nil {
		f.footerBuf.Release()
		f.footerBuf = nil
	}
	return nil
}

// RecordAt decodes and returns record batch i directly; the caller owns
// the returned Record and must Release it.
func (f *FileReader) RecordAt(i int) (arrow.Record, error) {
	if i < 0 || i >= f.NumRecords() {
		return nil, arrow.Newf(arrow.KindMalformedFrame, "arrow/ipc: record index out of range: %d", i)
	}
	blk, err := f.recordBlock(i)
	if err != nil {
		return nil, err
	}
	msg, err := blk.NewMessage()
	if err != nil {
		return nil, errors.Wrapf(err, "arrow/ipc: could not read record block %d", i)
	}
	defer msg.Release()
	if msg.Type() != MessageRecordBatch {
		return nil, arrow.Newf(arrow.KindMalformedFrame, "arrow/ipc: block %d is not a record batch", i)
	}
	return decodeRecordBatchMessage(f.mem, f.schema, &f.memo, msg)
}

// Record returns record batch i, reusing an internally cached Record
// across sequential calls the way Reader.Record/Next do (the returned
// value is owned by the FileReader and released on the next call or on
// Close, not by the caller).
func (f *FileReader) Record(i int) (arrow.Record, error) {
	rec, err := f.RecordAt(i)
	if err != nil {
		return nil, err
	}
	if f.record != nil {
		f.record.Release()
	}
	f.record = rec
	return rec, nil
}

// Read implements sequential iteration over the file's record batches,
// returning io.EOF once every block has been consumed.
func (f *FileReader) Read() (arrow.Record, error) {
	if f.irec == f.NumRecords() {
		return nil, io.EOF
	}
	rec, err := f.Record(f.irec)
	if err != nil {
		return nil, err
	}
	f.irec++
	return rec, nil
}
