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

	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/internal/flatbuf"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/pkg/errors"
)

// fileWriter is the File-mode payloadWriter: it frames messages exactly
// like swriter but also records each Dictionary/RecordBatch message's
// block metadata (reusing the read-side fileBlock shape from message.go)
// for the trailing footer (spec.md §4.6).
type fileWriter struct {
	w         io.Writer
	pos       int64
	alignment int64

	dictBlocks   []fileBlock
	recordBlocks []fileBlock
}

func (w *fileWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

func (w *fileWriter) writeMagic() error {
	if _, err := w.Write(Magic); err != nil {
		return err
	}
	_, err := w.Write(make([]byte, 2)) // pad "ARROW1" to an 8-byte boundary
	return err
}

func (w *fileWriter) write(p payload) error {
	offset := w.pos
	n, err := writeIPCPayload(w, p, w.alignment)
	if err != nil {
		return err
	}
	blk := fileBlock{Offset: offset, Meta: int32(n - p.size), Body: p.size}
	switch p.msg {
	case MessageDictionaryBatch:
		w.dictBlocks = append(w.dictBlocks, blk)
	case MessageRecordBatch:
		w.recordBlocks = append(w.recordBlocks, blk)
	}
	return nil
}

// Close is a no-op: the footer and trailing magic are written by
// FileWriter.Close directly, which has the schema/dictionary-manager
// context write needs that fileWriter itself doesn't carry.
func (w *fileWriter) Close() error { return nil }

// FileWriter is an Arrow File-mode writer: leading "ARROW1\0\0", the same
// Schema/DictionaryBatch/RecordBatch message sequence Writer emits, then
// a footer (schema + block index) and trailing "ARROW1" (spec.md §4.6
// scenario F).
type FileWriter struct {
	*Writer
	fw *fileWriter
}

// NewFileWriter returns a File-mode writer, writing the leading magic
// immediately.
func NewFileWriter(w io.Writer, opts ...Option) (*FileWriter, error) {
	cfg := newConfig(append(append([]Option{}, opts...), WithFile(true))...)
	dicts := newDictionaryManager()
	dicts.nested = cfg.dictEncodeNested

	fw := &fileWriter{w: w, alignment: cfg.alignment}
	if err := fw.writeMagic(); err != nil {
		return nil, errors.Wrap(err, "arrow/ipc: could not write file magic")
	}

	inner := &Writer{w: w, mem: cfg.alloc, pw: fw, cfg: cfg, schema: cfg.schema, dicts: dicts}
	return &FileWriter{Writer: inner, fw: fw}, nil
}

// Close emits the end-of-stream marker, the footer, the footer length,
// and the trailing magic, then marks the writer unusable for further
// writes (spec.md §4.6).
func (w *FileWriter) Close() error {
	if w.pw == nil {
		return nil
	}
	if !w.started {
		if err := w.start(); err != nil {
			return err
		}
	}

	if _, err := w.fw.Write(kEOS[:]); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not write end-of-stream marker")
	}

	footer := buildFooterFB(w.schema, w.dicts, w.fw.dictBlocks, w.fw.recordBlocks)
	if _, err := w.fw.Write(footer); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not write footer")
	}

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(footer)))
	if _, err := w.fw.Write(lenBuf[:]); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not write footer length")
	}
	if _, err := w.fw.Write(Magic); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not write trailing magic")
	}

	w.pw = nil
	return nil
}

// buildFooterFB encodes the File-mode footer: schema, then the
// dictionary and record-batch block vectors in emission order (spec.md
// §4.6 Footer(schema, dictionaries[], record_batches[])).
func buildFooterFB(schema *arrow.Schema, dicts *dictionaryManager, dictBlocks, recordBlocks []fileBlock) []byte {
	b := flatbuffers.NewBuilder(1024)
	schemaOff := schemaToFB(b, schema, dicts)

	b.StartVector(24, len(dictBlocks), 8)
	for i := len(dictBlocks) - 1; i >= 0; i-- {
		flatbuf.CreateBlock(b, dictBlocks[i].Offset, dictBlocks[i].Meta, dictBlocks[i].Body)
	}
	dictVec := b.EndVector(len(dictBlocks))

	b.StartVector(24, len(recordBlocks), 8)
	for i := len(recordBlocks) - 1; i >= 0; i-- {
		flatbuf.CreateBlock(b, recordBlocks[i].Offset, recordBlocks[i].Meta, recordBlocks[i].Body)
	}
	recVec := b.EndVector(len(recordBlocks))

	flatbuf.FooterStart(b)
	flatbuf.FooterAddVersion(b, flatbuf.MetadataVersionV5)
	flatbuf.FooterAddSchema(b, schemaOff)
	flatbuf.FooterAddDictionaries(b, dictVec)
	flatbuf.FooterAddRecordBatches(b, recVec)
	footerOff := flatbuf.FooterEnd(b)
	b.Finish(footerOff)

	return append([]byte(nil), b.FinishedBytes()...)
}
