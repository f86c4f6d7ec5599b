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
	"github.com/arrowcore/arrow/arrow/ipc/compress"
	"github.com/arrowcore/arrow/arrow/memory"
)

// CompressionCodec names the two optional body codecs spec.md §5
// requires (none is the zero value).
type CompressionCodec int8

const (
	CompressionNone CompressionCodec = iota
	CompressionLZ4Frame
	CompressionZSTD
)

// config collects every Option's effect. Each field maps directly to a
// spec.md §5 configuration knob.
type config struct {
	alloc memory.Allocator
	schema *arrow.Schema

	footerOffset int64
	dictMemo     *dictMemo

	alignment  int64 // 8 or 64, spec.md §5 "alignment"
	codec      CompressionCodec
	dictEncode bool // spec.md §5 "dictencode"
	dictEncodeNested bool // spec.md §5 "dictencodenested"
	denseUnions bool // spec.md §5 "denseunions": true picks dense layout for mixed-type unions
	largeLists  bool // spec.md §5 "largelists": offer i64-offset List/Binary variants
	maxDepth    int64 // spec.md §5 "maxdepth", default 6
	ntasks      int   // spec.md §5 "ntasks": writer concurrency fan-out
	file        bool  // spec.md §5 "file": File mode framing instead of Stream mode
	metadata    arrow.Metadata
	colMetadata map[string]arrow.Metadata
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		alloc:     memory.DefaultAllocator(),
		alignment: kArrowAlignment,
		maxDepth:  kMaxNestingDepth,
		ntasks:    1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.dictMemo == nil {
		m := newMemo()
		cfg.dictMemo = &m
	}
	return cfg
}

// Option configures a Writer, FileWriter, Reader, or FileReader.
type Option func(*config)

func WithAllocator(mem memory.Allocator) Option {
	return func(cfg *config) { cfg.alloc = mem }
}

func WithSchema(schema *arrow.Schema) Option {
	return func(cfg *config) { cfg.schema = schema }
}

// WithFooterOffset tells a FileReader the absolute byte offset its
// backing ReadAtSeeker ends at, when it is not the whole of the
// underlying file (e.g. an Arrow file embedded inside a larger blob).
func WithFooterOffset(offset int64) Option {
	return func(cfg *config) { cfg.footerOffset = offset }
}

func WithDictionaryMemo(memo *dictMemo) Option {
	return func(cfg *config) { cfg.dictMemo = memo }
}

// WithAlignment sets the body-buffer padding boundary; spec.md §5
// restricts this to 8 or 64.
func WithAlignment(alignment int64) Option {
	return func(cfg *config) { cfg.alignment = alignment }
}

func WithCompression(codec CompressionCodec) Option {
	return func(cfg *config) { cfg.codec = codec }
}

func WithDictionaryEncoding(encode, nested bool) Option {
	return func(cfg *config) { cfg.dictEncode = encode; cfg.dictEncodeNested = nested }
}

func WithDenseUnions(dense bool) Option {
	return func(cfg *config) { cfg.denseUnions = dense }
}

func WithLargeLists(large bool) Option {
	return func(cfg *config) { cfg.largeLists = large }
}

func WithMaxDepth(depth int64) Option {
	return func(cfg *config) { cfg.maxDepth = depth }
}

// WithConcurrency sets ntasks, the writer's parallel-encode fan-out
// (spec.md §5 "ntasks"; partition 0, the first, always runs on the caller's thread
// regardless of this value).
func WithConcurrency(ntasks int) Option {
	return func(cfg *config) {
		if ntasks < 1 {
			ntasks = 1
		}
		cfg.ntasks = ntasks
	}
}

func WithFile(file bool) Option {
	return func(cfg *config) { cfg.file = file }
}

func WithMetadata(md arrow.Metadata) Option {
	return func(cfg *config) { cfg.metadata = md }
}

func WithColumnMetadata(col string, md arrow.Metadata) Option {
	return func(cfg *config) {
		if cfg.colMetadata == nil {
			cfg.colMetadata = make(map[string]arrow.Metadata)
		}
		cfg.colMetadata[col] = md
	}
}

func (cfg *config) compressor() compress.Compressor {
	switch cfg.codec {
	case CompressionLZ4Frame:
		return compress.NewLZ4Frame()
	case CompressionZSTD:
		return compress.NewZSTD()
	default:
		return nil
	}
}

func decompressorFor(codec CompressionCodec) compress.Decompressor {
	switch codec {
	case CompressionLZ4Frame:
		return compress.NewLZ4Frame()
	case CompressionZSTD:
		return compress.NewZSTD()
	default:
		return nil
	}
}
