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

// Package arrow is the logical type model and schema tree (C2): a pure
// value tree for types, fields, schemas, and the extension-type
// registry, plus the Array/ArrayData contract that C3 array variants and
// the C4/C5/C6 IPC codec build on.
package arrow

import "fmt"

// Type is the tag identifying a logical type's physical family.
type Type int

const (
	NULL Type = iota
	BOOL
	UINT8
	INT8
	UINT16
	INT16
	UINT32
	INT32
	UINT64
	INT64
	FLOAT16
	FLOAT32
	FLOAT64
	DECIMAL128
	DECIMAL256
	DATE32
	DATE64
	TIME32
	TIME64
	TIMESTAMP
	DURATION
	INTERVAL_MONTHS
	INTERVAL_DAY_TIME
	INTERVAL_MONTH_DAY_NANO
	BINARY
	LARGE_BINARY
	STRING
	LARGE_STRING
	FIXED_SIZE_BINARY
	LIST
	LARGE_LIST
	FIXED_SIZE_LIST
	STRUCT
	MAP
	DENSE_UNION
	SPARSE_UNION
	DICTIONARY
	EXTENSION
)

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

var typeNames = map[Type]string{
	NULL: "null", BOOL: "bool",
	UINT8: "uint8", INT8: "int8", UINT16: "uint16", INT16: "int16",
	UINT32: "uint32", INT32: "int32", UINT64: "uint64", INT64: "int64",
	FLOAT16: "float16", FLOAT32: "float32", FLOAT64: "float64",
	DECIMAL128: "decimal128", DECIMAL256: "decimal256",
	DATE32: "date32", DATE64: "date64",
	TIME32: "time32", TIME64: "time64", TIMESTAMP: "timestamp",
	DURATION: "duration", INTERVAL_MONTHS: "month_interval",
	INTERVAL_DAY_TIME: "day_time_interval", INTERVAL_MONTH_DAY_NANO: "month_day_nano_interval",
	BINARY: "binary", LARGE_BINARY: "large_binary",
	STRING: "utf8", LARGE_STRING: "large_utf8",
	FIXED_SIZE_BINARY: "fixed_size_binary",
	LIST:              "list", LARGE_LIST: "large_list", FIXED_SIZE_LIST: "fixed_size_list",
	STRUCT: "struct", MAP: "map",
	DENSE_UNION: "dense_union", SPARSE_UNION: "sparse_union",
	DICTIONARY: "dictionary", EXTENSION: "extension",
}

// DataType is the common interface every logical type satisfies.
type DataType interface {
	ID() Type
	Name() string
	String() string
}

// FixedWidthDataType is a DataType with a fixed per-element bit width,
// used by the writer to size value buffers (spec.md §4.3).
type FixedWidthDataType interface {
	DataType
	BitWidth() int
}

// BinaryDataType marks the variable-length byte/string family.
type BinaryDataType interface {
	DataType
	Offsets64() bool
}

// NestedType is any DataType with child fields (List, Struct, Map, Union).
type NestedType interface {
	DataType
	Fields() []Field
}

// TimeUnit is the resolution of a Time/Timestamp/Duration type.
type TimeUnit int

const (
	Second TimeUnit = iota
	Millisecond
	Microsecond
	Nanosecond
)

func (u TimeUnit) String() string {
	switch u {
	case Second:
		return "s"
	case Millisecond:
		return "ms"
	case Microsecond:
		return "us"
	case Nanosecond:
		return "ns"
	default:
		return "unknown"
	}
}

// UnionMode distinguishes dense from sparse union physical layout
// (spec.md §3 DenseUnion / SparseUnion).
type UnionMode int

const (
	SparseMode UnionMode = iota
	DenseMode
)

// IntervalUnit distinguishes the two interval physical layouts.
type IntervalUnit int

const (
	MonthInterval IntervalUnit = iota
	DayTimeInterval
	MonthDayNanoInterval
)

type baseType struct{ name string }

func (b *baseType) Name() string { return b.name }

// NullType is the all-null logical type: zero buffers, zero children.
type NullType struct{ baseType }

func (*NullType) ID() Type        { return NULL }
func (*NullType) String() string  { return "null" }
func (t *NullType) BitWidth() int { return 0 }

var Null = &NullType{baseType{"null"}}

// BooleanType is a bit-packed boolean column.
type BooleanType struct{ baseType }

func (*BooleanType) ID() Type        { return BOOL }
func (*BooleanType) String() string  { return "bool" }
func (t *BooleanType) BitWidth() int { return 1 }

var Bool = &BooleanType{baseType{"bool"}}

// Int8Type .. Uint64Type are the fixed-width signed/unsigned integer
// logical types (spec.md §3 Int{width,signed}). Each is a distinct
// concrete type, matching the reference reader's exhaustive type switch
// over `*arrow.Int8Type`, `*arrow.Uint64Type`, etc.
type Int8Type struct{ baseType }
type Int16Type struct{ baseType }
type Int32Type struct{ baseType }
type Int64Type struct{ baseType }
type Uint8Type struct{ baseType }
type Uint16Type struct{ baseType }
type Uint32Type struct{ baseType }
type Uint64Type struct{ baseType }

func (*Int8Type) ID() Type        { return INT8 }
func (*Int8Type) String() string  { return "int8" }
func (*Int8Type) BitWidth() int   { return 8 }
func (*Int8Type) Signed() bool    { return true }
func (*Int16Type) ID() Type       { return INT16 }
func (*Int16Type) String() string { return "int16" }
func (*Int16Type) BitWidth() int  { return 16 }
func (*Int16Type) Signed() bool   { return true }
func (*Int32Type) ID() Type       { return INT32 }
func (*Int32Type) String() string { return "int32" }
func (*Int32Type) BitWidth() int  { return 32 }
func (*Int32Type) Signed() bool   { return true }
func (*Int64Type) ID() Type       { return INT64 }
func (*Int64Type) String() string { return "int64" }
func (*Int64Type) BitWidth() int  { return 64 }
func (*Int64Type) Signed() bool   { return true }

func (*Uint8Type) ID() Type        { return UINT8 }
func (*Uint8Type) String() string  { return "uint8" }
func (*Uint8Type) BitWidth() int   { return 8 }
func (*Uint8Type) Signed() bool    { return false }
func (*Uint16Type) ID() Type       { return UINT16 }
func (*Uint16Type) String() string { return "uint16" }
func (*Uint16Type) BitWidth() int  { return 16 }
func (*Uint16Type) Signed() bool   { return false }
func (*Uint32Type) ID() Type       { return UINT32 }
func (*Uint32Type) String() string { return "uint32" }
func (*Uint32Type) BitWidth() int  { return 32 }
func (*Uint32Type) Signed() bool   { return false }
func (*Uint64Type) ID() Type       { return UINT64 }
func (*Uint64Type) String() string { return "uint64" }
func (*Uint64Type) BitWidth() int  { return 64 }
func (*Uint64Type) Signed() bool   { return false }

// primitiveTypes collects the canonical shared instances of every
// fixed-width primitive type, mirroring upstream arrow-go's
// `arrow.PrimitiveTypes.XXX` singletons.
var primitiveTypes = struct {
	Int8, Int16, Int32, Int64          DataType
	Uint8, Uint16, Uint32, Uint64       DataType
	Float32, Float64                    DataType
}{
	Int8: &Int8Type{baseType{"int8"}}, Int16: &Int16Type{baseType{"int16"}},
	Int32: &Int32Type{baseType{"int32"}}, Int64: &Int64Type{baseType{"int64"}},
	Uint8: &Uint8Type{baseType{"uint8"}}, Uint16: &Uint16Type{baseType{"uint16"}},
	Uint32: &Uint32Type{baseType{"uint32"}}, Uint64: &Uint64Type{baseType{"uint64"}},
	Float32: &Float32Type{baseType{"float32"}},
	Float64: &Float64Type{baseType{"float64"}},
}

// PrimitiveTypes exposes the canonical shared instance of every
// fixed-width primitive logical type.
var PrimitiveTypes = primitiveTypes

// Float16Type, Float32Type, Float64Type are the IEEE-754 floating point
// logical types (spec.md §3 Float{half|single|double}), kept as distinct
// concrete types for the same exhaustive-switch reason as the integer
// family above.
type Float16Type struct{ baseType }
type Float32Type struct{ baseType }
type Float64Type struct{ baseType }

func (*Float16Type) ID() Type       { return FLOAT16 }
func (*Float16Type) String() string { return "float16" }
func (*Float16Type) BitWidth() int  { return 16 }
func (*Float32Type) ID() Type       { return FLOAT32 }
func (*Float32Type) String() string { return "float32" }
func (*Float32Type) BitWidth() int  { return 32 }
func (*Float64Type) ID() Type       { return FLOAT64 }
func (*Float64Type) String() string { return "float64" }
func (*Float64Type) BitWidth() int  { return 64 }

// Decimal128Type is a 128-bit fixed-point decimal with precision p and
// scale s (spec.md §3 Decimal{p,s,bits=128}).
type Decimal128Type struct {
	baseType
	Precision int32
	Scale     int32
}

func NewDecimal128Type(precision, scale int32) *Decimal128Type {
	return &Decimal128Type{baseType{"decimal128"}, precision, scale}
}
func (*Decimal128Type) ID() Type        { return DECIMAL128 }
func (*Decimal128Type) String() string  { return "decimal128" }
func (t *Decimal128Type) BitWidth() int { return 128 }

// Decimal256Type is the 256-bit counterpart.
type Decimal256Type struct {
	baseType
	Precision int32
	Scale     int32
}

func NewDecimal256Type(precision, scale int32) *Decimal256Type {
	return &Decimal256Type{baseType{"decimal256"}, precision, scale}
}
func (*Decimal256Type) ID() Type        { return DECIMAL256 }
func (*Decimal256Type) String() string  { return "decimal256" }
func (t *Decimal256Type) BitWidth() int { return 256 }

// Date32Type counts days since the Unix epoch.
type Date32Type struct{ baseType }

func (*Date32Type) ID() Type        { return DATE32 }
func (*Date32Type) String() string  { return "date32" }
func (t *Date32Type) BitWidth() int { return 32 }

// Date64Type counts milliseconds since the Unix epoch, truncated to the day.
type Date64Type struct{ baseType }

func (*Date64Type) ID() Type        { return DATE64 }
func (*Date64Type) String() string  { return "date64" }
func (t *Date64Type) BitWidth() int { return 64 }

var (
	Date32 = &Date32Type{baseType{"date32"}}
	Date64 = &Date64Type{baseType{"date64"}}
)

// Time32Type is a time-of-day with second or millisecond resolution.
type Time32Type struct {
	baseType
	Unit TimeUnit
}

func NewTime32Type(unit TimeUnit) *Time32Type { return &Time32Type{baseType{"time32"}, unit} }

func (t *Time32Type) ID() Type       { return TIME32 }
func (t *Time32Type) String() string { return "time32[" + t.Unit.String() + "]" }
func (t *Time32Type) BitWidth() int  { return 32 }

// Time64Type is a time-of-day with microsecond or nanosecond resolution.
type Time64Type struct {
	baseType
	Unit TimeUnit
}

func NewTime64Type(unit TimeUnit) *Time64Type { return &Time64Type{baseType{"time64"}, unit} }

func (t *Time64Type) ID() Type       { return TIME64 }
func (t *Time64Type) String() string { return "time64[" + t.Unit.String() + "]" }
func (t *Time64Type) BitWidth() int  { return 64 }

// TimestampType is a point in time with a resolution and optional IANA
// timezone name; an empty TimeZone means "naive" (spec.md Timestamp{unit, tz?}).
type TimestampType struct {
	baseType
	Unit     TimeUnit
	TimeZone string
}

func NewTimestampType(unit TimeUnit, tz string) *TimestampType {
	return &TimestampType{baseType{"timestamp"}, unit, tz}
}

func (t *TimestampType) ID() Type       { return TIMESTAMP }
func (t *TimestampType) String() string { return "timestamp[" + t.Unit.String() + "]" }
func (t *TimestampType) BitWidth() int  { return 64 }

// DurationType is an elapsed time with a resolution.
type DurationType struct {
	baseType
	Unit TimeUnit
}

func NewDurationType(unit TimeUnit) *DurationType { return &DurationType{baseType{"duration"}, unit} }

func (t *DurationType) ID() Type       { return DURATION }
func (t *DurationType) String() string { return "duration[" + t.Unit.String() + "]" }
func (t *DurationType) BitWidth() int  { return 64 }

// MonthIntervalType counts whole months.
type MonthIntervalType struct{ baseType }

func (*MonthIntervalType) ID() Type        { return INTERVAL_MONTHS }
func (*MonthIntervalType) String() string  { return "month_interval" }
func (t *MonthIntervalType) BitWidth() int { return 32 }

// DayTimeIntervalType is a (days, milliseconds) pair.
type DayTimeIntervalType struct{ baseType }

func (*DayTimeIntervalType) ID() Type        { return INTERVAL_DAY_TIME }
func (*DayTimeIntervalType) String() string  { return "day_time_interval" }
func (t *DayTimeIntervalType) BitWidth() int { return 64 }

// MonthDayNanoIntervalType is a (months, days, nanoseconds) triple.
type MonthDayNanoIntervalType struct{ baseType }

func (*MonthDayNanoIntervalType) ID() Type        { return INTERVAL_MONTH_DAY_NANO }
func (*MonthDayNanoIntervalType) String() string  { return "month_day_nano_interval" }
func (t *MonthDayNanoIntervalType) BitWidth() int { return 128 }

var (
	MonthInterval_       = &MonthIntervalType{baseType{"month_interval"}}
	DayTimeInterval_     = &DayTimeIntervalType{baseType{"day_time_interval"}}
	MonthDayNanoInterval_ = &MonthDayNanoIntervalType{baseType{"month_day_nano_interval"}}
)

// BinaryType is variable-length byte arrays with i32 offsets.
type BinaryType struct{ baseType }

func (*BinaryType) ID() Type        { return BINARY }
func (*BinaryType) String() string  { return "binary" }
func (*BinaryType) Offsets64() bool { return false }

// LargeBinaryType is variable-length byte arrays with i64 offsets.
type LargeBinaryType struct{ baseType }

func (*LargeBinaryType) ID() Type        { return LARGE_BINARY }
func (*LargeBinaryType) String() string  { return "large_binary" }
func (*LargeBinaryType) Offsets64() bool { return true }

// StringType is UTF-8 text with i32 offsets.
type StringType struct{ baseType }

func (*StringType) ID() Type        { return STRING }
func (*StringType) String() string  { return "utf8" }
func (*StringType) Offsets64() bool { return false }

var (
	Binary       = &BinaryType{baseType{"binary"}}
	LargeBinary_ = &LargeBinaryType{baseType{"large_binary"}}
	Utf8         = &StringType{baseType{"utf8"}}
)

// LargeStringType is UTF-8 text with i64 offsets.
type LargeStringType struct{ baseType }

func (*LargeStringType) ID() Type        { return LARGE_STRING }
func (*LargeStringType) String() string  { return "large_utf8" }
func (*LargeStringType) Offsets64() bool { return true }

var LargeUtf8 = &LargeStringType{baseType{"large_utf8"}}

// FixedSizeBinaryType is byte arrays all of width ByteWidth.
type FixedSizeBinaryType struct {
	baseType
	ByteWidth int
}

func NewFixedSizeBinaryType(byteWidth int) *FixedSizeBinaryType {
	return &FixedSizeBinaryType{baseType{"fixed_size_binary"}, byteWidth}
}
func (*FixedSizeBinaryType) ID() Type       { return FIXED_SIZE_BINARY }
func (*FixedSizeBinaryType) String() string { return "fixed_size_binary" }
func (t *FixedSizeBinaryType) BitWidth() int {
	return t.ByteWidth * 8
}

// ListType is List(i32 offsets, child).
type ListType struct {
	baseType
	elem Field
}

func ListOf(elem DataType) *ListType {
	return ListOfField(Field{Name: "item", Type: elem, Nullable: true})
}
func ListOfField(f Field) *ListType {
	return &ListType{baseType{"list"}, f}
}
func (*ListType) ID() Type           { return LIST }
func (*ListType) String() string     { return "list" }
func (t *ListType) Elem() DataType   { return t.elem.Type }
func (t *ListType) ElemField() Field { return t.elem }
func (t *ListType) Fields() []Field  { return []Field{t.elem} }

// LargeListType is List(i64 offsets, child).
type LargeListType struct {
	baseType
	elem Field
}

func LargeListOf(elem DataType) *LargeListType {
	return &LargeListType{baseType{"large_list"}, Field{Name: "item", Type: elem, Nullable: true}}
}
func (*LargeListType) ID() Type          { return LARGE_LIST }
func (*LargeListType) String() string    { return "large_list" }
func (t *LargeListType) Elem() DataType  { return t.elem.Type }
func (t *LargeListType) Fields() []Field { return []Field{t.elem} }

// FixedSizeListType is FixedSizeList(N, child) (spec.md §3 FixedSizeList(N,child)).
type FixedSizeListType struct {
	baseType
	n    int32
	elem Field
}

func FixedSizeListOf(n int32, elem DataType) *FixedSizeListType {
	return &FixedSizeListType{baseType{"fixed_size_list"}, n, Field{Name: "item", Type: elem, Nullable: true}}
}
func (*FixedSizeListType) ID() Type          { return FIXED_SIZE_LIST }
func (*FixedSizeListType) String() string    { return "fixed_size_list" }
func (t *FixedSizeListType) Elem() DataType  { return t.elem.Type }
func (t *FixedSizeListType) Len() int32      { return t.n }
func (t *FixedSizeListType) Fields() []Field { return []Field{t.elem} }

// StructType is Struct(fields...): k children all of length n.
type StructType struct {
	baseType
	fields []Field
	index  map[string]int
}

func StructOf(fields ...Field) *StructType {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		idx[f.Name] = i
	}
	return &StructType{baseType{"struct"}, fields, idx}
}
func (*StructType) ID() Type          { return STRUCT }
func (*StructType) String() string    { return "struct" }
func (t *StructType) Fields() []Field { return t.fields }
func (t *StructType) FieldByName(name string) (Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return Field{}, false
	}
	return t.fields[i], true
}

// MapType is physically List(Struct{key,value}) (spec.md §3 Map(K,V)).
type MapType struct {
	baseType
	KeyType    DataType
	ItemType   DataType
	KeysSorted bool
}

func MapOf(key, item DataType) *MapType {
	return &MapType{baseType{"map"}, key, item, false}
}
func (*MapType) ID() Type       { return MAP }
func (*MapType) String() string { return "map" }
func (t *MapType) ValueType() DataType {
	return StructOf(
		Field{Name: "key", Type: t.KeyType, Nullable: false},
		Field{Name: "value", Type: t.ItemType, Nullable: true},
	)
}
func (t *MapType) Fields() []Field {
	return []Field{{Name: "entries", Type: t.ValueType(), Nullable: false}}
}

// UnionType is the common shape of DenseUnionType/SparseUnionType: a set
// of variant fields plus the type-code each one is tagged with on the
// wire (spec.md §3 DenseUnion/SparseUnion).
type UnionType struct {
	baseType
	mode     UnionMode
	fields   []Field
	typeCodes []int8
}

func (t *UnionType) ID() Type {
	if t.mode == DenseMode {
		return DENSE_UNION
	}
	return SPARSE_UNION
}
func (t *UnionType) String() string    { return t.name }
func (t *UnionType) Fields() []Field   { return t.fields }
func (t *UnionType) Mode() UnionMode   { return t.mode }
func (t *UnionType) TypeCodes() []int8 { return t.typeCodes }
func (t *UnionType) ChildIndex(typeCode int8) int {
	for i, c := range t.typeCodes {
		if c == typeCode {
			return i
		}
	}
	return -1
}

// DenseUnionType is UnionType{mode: Dense}.
type DenseUnionType = UnionType

// SparseUnionType is UnionType{mode: Sparse}.
type SparseUnionType = UnionType

func UnionOf(mode UnionMode, fields []Field, typeCodes []int8) *UnionType {
	if typeCodes == nil {
		typeCodes = make([]int8, len(fields))
		for i := range typeCodes {
			typeCodes[i] = int8(i)
		}
	}
	name := "sparse_union"
	if mode == DenseMode {
		name = "dense_union"
	}
	return &UnionType{baseType{name}, mode, fields, typeCodes}
}

// DictionaryType overlays an index type over a shared value-pool type
// (spec.md §3 DictEncoding); Ordered marks the pool values as sorted.
// DictID identifies which dictionary-id pool (spec.md §6/C7) backs this
// field; it is populated when decoding a schema off the wire and left
// zero when a caller builds a DictionaryType to encode, since the writer
// mints the id itself.
type DictionaryType struct {
	baseType
	IndexType DataType
	ValueType DataType
	Ordered   bool
	DictID    int64
}

func (*DictionaryType) ID() Type       { return DICTIONARY }
func (*DictionaryType) String() string { return "dictionary" }

// ExtensionType overlays a logical, user-registered type on top of a
// physical arrow type via the `ARROW:extension:name` field metadata key
// (spec.md §3 Extension types, §4.2 extension registry).
type ExtensionType interface {
	DataType
	StorageType() DataType
	ExtensionName() string
	// Serialize returns the `ARROW:extension:metadata` payload for a
	// concrete value of this type (process-wide, not per-instance).
	Serialize() string
	// Deserialize reconstructs an ExtensionType instance of this type's
	// kind from a physical storage type and the metadata payload written
	// by Serialize.
	Deserialize(storageType DataType, data string) (ExtensionType, error)
}
