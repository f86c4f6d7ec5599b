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

package array

import (
	"fmt"

	"github.com/arrowcore/arrow/arrow"
)

// MakeFromData dispatches on dt := data.DataType() the same way
// arrayLoaderContext.loadArray does in the reference IPC reader,
// wrapping an already-built ArrayData as the concrete Interface
// implementation for its type.
func MakeFromData(data arrow.ArrayData) Interface {
	switch dt := data.DataType().(type) {
	case *arrow.NullType:
		return NewNullData(data)
	case *arrow.BooleanType:
		return NewBooleanData(data)

	case *arrow.Int8Type:
		return NewInt8Data(data)
	case *arrow.Int16Type:
		return NewInt16Data(data)
	case *arrow.Int32Type:
		return NewInt32Data(data)
	case *arrow.Int64Type:
		return NewInt64Data(data)
	case *arrow.Uint8Type:
		return NewUint8Data(data)
	case *arrow.Uint16Type:
		return NewUint16Data(data)
	case *arrow.Uint32Type:
		return NewUint32Data(data)
	case *arrow.Uint64Type:
		return NewUint64Data(data)
	case *arrow.Float32Type:
		return NewFloat32Data(data)
	case *arrow.Float64Type:
		return NewFloat64Data(data)
	case *arrow.Float16Type:
		return NewPrimitiveData[uint16](data)

	case *arrow.Date32Type:
		return NewPrimitiveData[int32](data)
	case *arrow.Date64Type:
		return NewPrimitiveData[int64](data)
	case *arrow.Time32Type:
		return NewPrimitiveData[int32](data)
	case *arrow.Time64Type:
		return NewPrimitiveData[int64](data)
	case *arrow.TimestampType:
		return NewPrimitiveData[int64](data)
	case *arrow.DurationType:
		return NewPrimitiveData[int64](data)
	case *arrow.MonthIntervalType:
		return NewPrimitiveData[int32](data)
	case *arrow.DayTimeIntervalType:
		return NewPrimitiveData[int64](data)
	case *arrow.MonthDayNanoIntervalType:
		return NewFixedSizeBinaryData(fixedWidthAs(data, 16))

	case *arrow.Decimal128Type:
		return NewDecimal128Data(data)
	case *arrow.Decimal256Type:
		return NewDecimal256Data(data)

	case *arrow.BinaryType:
		return NewBinary8Data(data)
	case *arrow.LargeBinaryType:
		return NewLargeBinaryData(data)
	case *arrow.StringType:
		return NewStringArrayData(data)
	case *arrow.LargeStringType:
		return NewLargeStringData(data)
	case *arrow.FixedSizeBinaryType:
		return NewFixedSizeBinaryData(data)

	case *arrow.ListType:
		return NewList32Data(data)
	case *arrow.LargeListType:
		return NewLargeListData(data)
	case *arrow.FixedSizeListType:
		return NewFixedSizeListData(data)
	case *arrow.StructType:
		return NewStructData(data)
	case *arrow.MapType:
		return NewMapData(data)

	case *arrow.UnionType:
		if dt.Mode() == arrow.DenseMode {
			return NewDenseUnionData(data)
		}
		return NewSparseUnionData(data)

	case *arrow.DictionaryType:
		return NewDictionaryData(data, nil)

	case arrow.ExtensionType:
		storage := MakeFromData(storageData(data, dt.StorageType()))
		defer storage.Release()
		return NewExtensionData(data, storage)

	default:
		panic(fmt.Sprintf("arrow/array: array type %T not handled yet", dt))
	}
}

// fixedWidthAs re-tags data's buffers under a byteWidth-wide
// FixedSizeBinaryType view, used for the MonthDayNanoInterval triple
// which has no native Go numeric width. Like NewSliceData, it retains
// the buffers/children it borrows, since the returned Data owns them
// independently of data's own lifetime.
func fixedWidthAs(data arrow.ArrayData, byteWidth int) arrow.ArrayData {
	dt := arrow.NewFixedSizeBinaryType(byteWidth)
	return retagData(data, dt)
}

// storageData re-tags data under its extension type's storage type, so
// the generic dispatch above can build the underlying physical array.
func storageData(data arrow.ArrayData, storage arrow.DataType) arrow.ArrayData {
	return retagData(data, storage)
}

func retagData(data arrow.ArrayData, dt arrow.DataType) arrow.ArrayData {
	for _, b := range data.Buffers() {
		b.Retain()
	}
	for _, c := range data.Children() {
		c.Retain()
	}
	return NewData(dt, data.Len(), data.Buffers(), data.Children(), data.NullN(), data.Offset())
}
