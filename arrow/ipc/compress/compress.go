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

// Package compress wraps the two body codecs spec.md §5 names
// (lz4_frame, zstd) behind one small interface, each buffer framed with
// an 8-byte little-endian uncompressed-length prefix ahead of the
// compressed bytes — or a -1 sentinel prefix when a buffer was left
// stored uncompressed because compressing it would not have shrunk it
// (spec.md §4.4 "per-buffer compression framing").
package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// StoredUncompressed is the length-prefix sentinel marking a buffer that
// was not compressed.
const StoredUncompressed = -1

// Compressor compresses one buffer's worth of bytes at a time.
type Compressor interface {
	Compress(dst io.Writer, src []byte) error
}

// Decompressor expands a compressed buffer previously produced by the
// matching Compressor. Reset rebinds it to a fresh source before Read.
type Decompressor interface {
	Reset(r io.Reader) error
	Read(p []byte) (int, error)
}

// lz4Frame wraps github.com/pierrec/lz4/v4.
type lz4Frame struct {
	r *lz4.Reader
}

func NewLZ4Frame() *lz4Frame { return &lz4Frame{} }

func (c *lz4Frame) Compress(dst io.Writer, src []byte) error {
	w := lz4.NewWriter(dst)
	if _, err := w.Write(src); err != nil {
		return err
	}
	return w.Close()
}

func (c *lz4Frame) Reset(r io.Reader) error {
	if c.r == nil {
		c.r = lz4.NewReader(r)
	} else {
		c.r.Reset(r)
	}
	return nil
}

func (c *lz4Frame) Read(p []byte) (int, error) { return c.r.Read(p) }

// zstdCodec wraps github.com/klauspost/compress/zstd.
type zstdCodec struct {
	dec *zstd.Decoder
}

func NewZSTD() *zstdCodec { return &zstdCodec{} }

func (c *zstdCodec) Compress(dst io.Writer, src []byte) error {
	w, err := zstd.NewWriter(dst)
	if err != nil {
		return err
	}
	if _, err := w.Write(src); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (c *zstdCodec) Reset(r io.Reader) error {
	if c.dec == nil {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return err
		}
		c.dec = dec
		return nil
	}
	return c.dec.Reset(r)
}

func (c *zstdCodec) Read(p []byte) (int, error) { return c.dec.Read(p) }

// CompressBuffer runs codec over src and returns the framed
// (length-prefix + body) result, choosing the uncompressed sentinel
// framing when compression does not shrink the buffer.
func CompressBuffer(codec Compressor, src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := codec.Compress(&buf, src); err != nil {
		return nil, err
	}
	if buf.Len() >= len(src) {
		return framePrefix(StoredUncompressed, src), nil
	}
	return framePrefix(int64(len(src)), buf.Bytes()), nil
}

func framePrefix(n int64, body []byte) []byte {
	out := make([]byte, 8+len(body))
	putInt64LE(out, n)
	copy(out[8:], body)
	return out
}

func putInt64LE(b []byte, v int64) {
	u := uint64(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(u >> (8 * i))
	}
}

func getInt64LE(b []byte) int64 {
	var u uint64
	for i := 0; i < 8; i++ {
		u |= uint64(b[i]) << (8 * i)
	}
	return int64(u)
}

// DecompressBuffer reverses CompressBuffer: it reads framed's 8-byte
// length prefix and either returns the trailing bytes unchanged (the
// StoredUncompressed sentinel) or expands them through codec.
func DecompressBuffer(codec Decompressor, framed []byte) ([]byte, error) {
	if len(framed) < 8 {
		return nil, io.ErrUnexpectedEOF
	}
	n := getInt64LE(framed)
	body := framed[8:]
	if n == StoredUncompressed {
		return append([]byte(nil), body...), nil
	}
	if err := codec.Reset(bytes.NewReader(body)); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(codec, out); err != nil {
		return nil, err
	}
	return out, nil
}
