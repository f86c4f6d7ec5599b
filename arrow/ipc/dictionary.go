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
	"math"
	"sync"

	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/array"
)

// dictEntry is one pool's accumulated state: the stable id, the values
// seen so far (in first-seen order, so index assignment never changes
// once minted), and a fast membership set for the delta diff (spec.md
// §6/C7 "new_values = column_unique \ pool.values").
type dictEntry struct {
	id        int64
	values    []interface{}
	seen      map[interface{}]int32
	indexType arrow.DataType
}

// dictionaryManager is C7: the writer-side pool registry. One manager is
// shared by every partition encoding a given schema, guarded by a mutex
// since ntasks>1 lets partitions encode concurrently (spec.md §5
// "ntasks"/§6 "a single shared dictionary pool per field path").
type dictionaryManager struct {
	mu      sync.Mutex
	nextID  int64
	byField map[string]*dictEntry
	nested  bool // spec.md §5 "dictencodenested"
}

func newDictionaryManager() *dictionaryManager {
	return &dictionaryManager{byField: make(map[string]*dictEntry)}
}

// idForField mints (or returns the existing) pool id for a dictionary
// field keyed by the field's own name. The schema encoder's recursive
// descent calls idForField with each nested child field as-is, so nested
// dictionary fields are keyed by their own name too, and fields sharing a
// name share one pool.
func (m *dictionaryManager) idForField(f arrow.Field) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byField[f.Name]
	if ok {
		return e.id
	}
	dt := f.Type.(*arrow.DictionaryType)
	e = &dictEntry{
		id:        m.nextID,
		seen:      make(map[interface{}]int32),
		indexType: dt.IndexType,
	}
	m.nextID++
	m.byField[f.Name] = e
	return e.id
}

// indexWidthFor picks the narrowest index type that can address
// cardinality distinct values, per spec.md §6: "≤ i8_max/2 → i8, else
// i16, else i32, else i64".
func indexWidthFor(cardinality int) arrow.DataType {
	switch {
	case cardinality <= math.MaxInt8/2:
		return arrow.PrimitiveTypes.Int8
	case cardinality <= math.MaxInt16:
		return arrow.PrimitiveTypes.Int16
	case cardinality <= math.MaxInt32:
		return arrow.PrimitiveTypes.Int32
	default:
		return arrow.PrimitiveTypes.Int64
	}
}

// Delta diffs values (the dictionary's elements for this batch, each
// rendered as a comparable key) against the pool's
// accumulated set, returning just the values not seen before in
// first-seen order, and growing the pool's recorded set as a side
// effect (spec.md §6: dictionary batches sent are deltas unless it is
// the field's first appearance, which is a full, is_delta=false batch).
//
// refArray, when non-nil, is an externally-supplied, already-unique
// reference array (e.g. the caller built the column directly over a
// known finite value domain); in that case the manager skips its own
// diff and trusts the caller's values wholesale, matching spec.md §6's
// "external reference array" case.
func (m *dictionaryManager) Delta(fieldName string, values []interface{}, refArray array.Interface) (fresh []interface{}, isFirst bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byField[fieldName]
	if !ok {
		return nil, true
	}
	isFirst = len(e.values) == 0

	if refArray != nil {
		fresh = values
		for _, v := range values {
			if _, seen := e.seen[v]; !seen {
				e.seen[v] = int32(len(e.values))
				e.values = append(e.values, v)
			}
		}
		return fresh, isFirst
	}

	for _, v := range values {
		if _, seen := e.seen[v]; !seen {
			e.seen[v] = int32(len(e.values))
			e.values = append(e.values, v)
			fresh = append(fresh, v)
		}
	}
	return fresh, isFirst
}

// IndexOf returns the pool-wide index assigned to v for fieldName, or
// -1 if v has never been registered (callers must call Delta first).
func (m *dictionaryManager) IndexOf(fieldName string, v interface{}) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byField[fieldName]
	if !ok {
		return -1
	}
	idx, ok := e.seen[v]
	if !ok {
		return -1
	}
	return idx
}

// Cardinality returns the pool's current distinct-value count for
// fieldName, used to pick the index width (spec.md §6).
func (m *dictionaryManager) Cardinality(fieldName string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byField[fieldName]
	if !ok {
		return 0
	}
	return len(e.values)
}

func (m *dictionaryManager) IDFor(fieldName string) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byField[fieldName]
	if !ok {
		return 0, false
	}
	return e.id, true
}
