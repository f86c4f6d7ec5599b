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

package array_test

import (
	"testing"

	"github.com/arrowcore/arrow/arrow"
	"github.com/arrowcore/arrow/arrow/array"
	"github.com/arrowcore/arrow/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.Utf8, Nullable: true},
	}, nil)
}

func TestRecordRetainsAndReleasesColumns(t *testing.T) {
	mem := memory.DefaultAllocator()
	ids := array.NewInt64(mem, []int64{1, 2, 3}, nil)
	names := array.NewStringArray(mem, []string{"a", "b", "c"}, nil)

	rec := array.NewRecord(testSchema(), []array.Interface{ids, names}, -1)

	// the caller's own references can be dropped; NewRecord took its own.
	ids.Release()
	names.Release()

	require.Equal(t, int64(3), rec.NumRows())
	require.Equal(t, int64(2), rec.NumCols())
	assert.Equal(t, "id", rec.ColumnName(0))
	assert.Equal(t, int64(3), rec.Column(0).Len())

	rec.Retain()
	rec.Release()
	rec.Release() // drops the last reference; columns are released too
}

func TestRecordInfersRowsFromFirstColumn(t *testing.T) {
	mem := memory.DefaultAllocator()
	ids := array.NewInt64(mem, []int64{1, 2}, nil)
	defer ids.Release()

	rec := array.NewRecord(arrow.NewSchema([]arrow.Field{{Name: "id", Type: arrow.PrimitiveTypes.Int64}}, nil), []array.Interface{ids}, -1)
	defer rec.Release()

	assert.Equal(t, int64(2), rec.NumRows())
}
