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

package arrow

import "fmt"

// ErrorKind tags the error kinds spec.md §7 names. Kinds are shared
// between the type model (SchemaConflict) and the IPC codec (the rest),
// so callers across packages can match on a single taxonomy with
// errors.As / IsKind.
type ErrorKind int

const (
	KindMalformedFrame ErrorKind = iota
	KindSchemaMismatch
	KindSchemaConflict
	KindUnsupportedType
	KindInvalidMetadata
	KindMaxDepthExceeded
	KindWriteAborted
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformedFrame:
		return "MalformedFrame"
	case KindSchemaMismatch:
		return "SchemaMismatch"
	case KindSchemaConflict:
		return "SchemaConflict"
	case KindUnsupportedType:
		return "UnsupportedType"
	case KindInvalidMetadata:
		return "InvalidMetadata"
	case KindMaxDepthExceeded:
		return "MaxDepthExceeded"
	case KindWriteAborted:
		return "WriteAborted"
	default:
		return "Unknown"
	}
}

// Error is the concrete error value every Kind in spec.md §7 is
// represented by.
type Error struct {
	Kind      ErrorKind
	Msg       string
	Partition int // meaningful only for KindWriteAborted; -1 otherwise
	Cause     error
}

func (e *Error) Error() string {
	if e.Kind == KindWriteAborted && e.Partition >= 0 {
		return fmt.Sprintf("arrow: %s: partition %d: %s", e.Kind, e.Partition, e.Msg)
	}
	return fmt.Sprintf("arrow: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds an *Error with no wrapped cause and Partition=-1.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Partition: -1}
}

// Newf is NewError with fmt.Sprintf-style formatting.
func Newf(kind ErrorKind, format string, args ...interface{}) *Error {
	return NewError(kind, fmt.Sprintf(format, args...))
}

// Wrap builds an *Error of the given kind that wraps cause.
func Wrap(kind ErrorKind, cause error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Partition: -1, Cause: cause}
}

// WriteAborted builds the WriteAborted error carrying the failing
// partition index (spec.md §4.6 "records (error, backtrace,
// partition_index)").
func WriteAborted(partition int, cause error) *Error {
	msg := "write aborted"
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{Kind: KindWriteAborted, Msg: msg, Partition: partition, Cause: cause}
}

// IsKind reports whether err is an *Error (or wraps one) of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind == kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
