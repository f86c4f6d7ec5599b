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

import "strings"

// ExtensionName and ExtensionMetadata are the two well-known Field
// metadata keys that carry a logical overlay type (spec.md §6).
const (
	ExtensionName     = "ARROW:extension:name"
	ExtensionMetadata = "ARROW:extension:metadata"
)

// Metadata is an ordered string->string map, preserving insertion order
// since spec.md's Open Questions leave key ordering significance for
// equality unresolved (see DESIGN.md); comparisons in this repo treat
// order as insignificant. The IPC writer encodes schema-level metadata in
// insertion order, but the reader does not decode it, and field-level
// metadata is not encoded at all.
type Metadata struct {
	keys   []string
	values []string
}

// NewMetadata builds a Metadata from parallel key/value slices.
func NewMetadata(keys, values []string) Metadata {
	return Metadata{keys: append([]string(nil), keys...), values: append([]string(nil), values...)}
}

func (m *Metadata) Len() int { return len(m.keys) }
func (m *Metadata) Keys() []string { return m.keys }
func (m *Metadata) Values() []string { return m.values }

// FindKey returns the index of key, or -1 if absent.
func (m *Metadata) FindKey(key string) int {
	for i, k := range m.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Get returns the value for key and whether it was present.
func (m *Metadata) Get(key string) (string, bool) {
	i := m.FindKey(key)
	if i < 0 {
		return "", false
	}
	return m.values[i], true
}

func (m Metadata) String() string {
	var sb strings.Builder
	for i, k := range m.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(m.values[i])
	}
	return sb.String()
}

// Equal reports whether two Metadata maps hold the same key/value pairs,
// independent of order (spec.md §9 Open Questions: ordering is not
// treated as significant for equality in this implementation).
func (m Metadata) Equal(o Metadata) bool {
	if len(m.keys) != len(o.keys) {
		return false
	}
	for i, k := range m.keys {
		v, ok := o.Get(k)
		if !ok || v != m.values[i] {
			return false
		}
	}
	return true
}

// Field describes one column of a Schema (spec.md §3 Schema).
type Field struct {
	Name     string
	Type     DataType
	Nullable bool
	Metadata Metadata
}

// HasExtension reports whether this field carries an
// ARROW:extension:name metadata entry.
func (f *Field) HasExtension() bool {
	_, ok := f.Metadata.Get(ExtensionName)
	return ok
}

// ExtensionTypeName returns the registered extension name carried in
// this field's metadata, if any.
func (f *Field) ExtensionTypeName() (string, bool) {
	return f.Metadata.Get(ExtensionName)
}

// Equal compares name, type, nullability; metadata is compared via
// Metadata.Equal.
func (f Field) Equal(o Field) bool {
	if f.Name != o.Name || f.Nullable != o.Nullable {
		return false
	}
	if !TypeEqual(f.Type, o.Type) {
		return false
	}
	return f.Metadata.Equal(o.Metadata)
}

// TypeEqual performs a structural, semantics-level comparison of two
// DataTypes (ids plus nested field/parameter equality), used by the
// append-operation contract (spec.md §6) and table round-trip checks
// (spec.md §8 property 6).
func TypeEqual(a, b DataType) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ID() != b.ID() {
		return false
	}
	switch at := a.(type) {
	case *FixedSizeBinaryType:
		return at.ByteWidth == b.(*FixedSizeBinaryType).ByteWidth
	case *Decimal128Type:
		bt := b.(*Decimal128Type)
		return at.Precision == bt.Precision && at.Scale == bt.Scale
	case *Decimal256Type:
		bt := b.(*Decimal256Type)
		return at.Precision == bt.Precision && at.Scale == bt.Scale
	case *TimestampType:
		bt := b.(*TimestampType)
		return at.Unit == bt.Unit && at.TimeZone == bt.TimeZone
	case *Time32Type:
		return at.Unit == b.(*Time32Type).Unit
	case *Time64Type:
		return at.Unit == b.(*Time64Type).Unit
	case *DurationType:
		return at.Unit == b.(*DurationType).Unit
	case *ListType:
		return TypeEqual(at.Elem(), b.(*ListType).Elem())
	case *LargeListType:
		return TypeEqual(at.Elem(), b.(*LargeListType).Elem())
	case *FixedSizeListType:
		bt := b.(*FixedSizeListType)
		return at.Len() == bt.Len() && TypeEqual(at.Elem(), bt.Elem())
	case *StructType:
		bt := b.(*StructType)
		if len(at.Fields()) != len(bt.Fields()) {
			return false
		}
		for i, f := range at.Fields() {
			if !f.Equal(bt.Fields()[i]) {
				return false
			}
		}
		return true
	case *MapType:
		bt := b.(*MapType)
		return TypeEqual(at.KeyType, bt.KeyType) && TypeEqual(at.ItemType, bt.ItemType)
	case *UnionType:
		bt := b.(*UnionType)
		if at.mode != bt.mode || len(at.fields) != len(bt.fields) {
			return false
		}
		for i, f := range at.fields {
			if !f.Equal(bt.fields[i]) || at.typeCodes[i] != bt.typeCodes[i] {
				return false
			}
		}
		return true
	case *DictionaryType:
		bt := b.(*DictionaryType)
		return TypeEqual(at.IndexType, bt.IndexType) && TypeEqual(at.ValueType, bt.ValueType) && at.Ordered == bt.Ordered
	case ExtensionType:
		bt, ok := b.(ExtensionType)
		return ok && at.ExtensionName() == bt.ExtensionName() && TypeEqual(at.StorageType(), bt.StorageType())
	default:
		return true
	}
}
