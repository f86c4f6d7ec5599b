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
	"github.com/pkg/errors"
)

// Sentinel errors the reader and writer paths raise, wrapped with github.com/pkg/errors
// the way the teacher's writer.go does throughout (spec.md §7).
var (
	errMaxRecursion      = arrow.NewError(arrow.KindMaxDepthExceeded, "arrow/ipc: max recursion depth reached")
	errBigArray          = arrow.NewError(arrow.KindUnsupportedType, "arrow/ipc: array larger than 2^31-1 requires allow64b")
	errInconsistentSchema = arrow.NewError(arrow.KindSchemaMismatch, "arrow/ipc: inconsistent schema")
	errNotArrowFile      = arrow.NewError(arrow.KindMalformedFrame, "arrow/ipc: not an Arrow file")
	errInconsistentFileMetadata = arrow.NewError(arrow.KindMalformedFrame, "arrow/ipc: file footer metadata size inconsistent with file size")
	errMalformedFrame    = arrow.NewError(arrow.KindMalformedFrame, "arrow/ipc: malformed message frame")
	errUnsupportedCodec  = arrow.NewError(arrow.KindUnsupportedType, "arrow/ipc: unsupported compression codec")
)

// wrapf mirrors the teacher's errors.Wrapf call sites, kept as a named
// helper only so callers outside this file can wrap arrow.Error values
// without importing pkg/errors directly.
func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
