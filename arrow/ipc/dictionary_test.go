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
	"testing"

	"github.com/arrowcore/arrow/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dictField(name string) arrow.Field {
	return arrow.Field{Name: name, Type: &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: arrow.Utf8}}
}

func TestDictionaryManagerIDForFieldStable(t *testing.T) {
	m := newDictionaryManager()
	f := dictField("category")

	id1 := m.idForField(f)
	id2 := m.idForField(f)
	assert.Equal(t, id1, id2)

	other := m.idForField(dictField("region"))
	assert.NotEqual(t, id1, other)
}

func TestDictionaryManagerDeltaFirstBatchIsFull(t *testing.T) {
	m := newDictionaryManager()
	f := dictField("category")
	m.idForField(f)

	fresh, isFirst := m.Delta("category", []interface{}{"a", "b", "a"}, nil)
	require.True(t, isFirst)
	assert.Equal(t, []interface{}{"a", "b"}, fresh)
	assert.Equal(t, 2, m.Cardinality("category"))
}

func TestDictionaryManagerDeltaSecondBatchOnlyFresh(t *testing.T) {
	m := newDictionaryManager()
	f := dictField("category")
	m.idForField(f)
	m.Delta("category", []interface{}{"a", "b"}, nil)

	fresh, isFirst := m.Delta("category", []interface{}{"a", "c"}, nil)
	assert.False(t, isFirst)
	assert.Equal(t, []interface{}{"c"}, fresh)
	assert.Equal(t, 3, m.Cardinality("category"))

	assert.Equal(t, int32(0), m.IndexOf("category", "a"))
	assert.Equal(t, int32(2), m.IndexOf("category", "c"))
	assert.Equal(t, int32(-1), m.IndexOf("category", "never-seen"))
}

func TestIndexWidthForPicksNarrowestType(t *testing.T) {
	assert.Equal(t, arrow.PrimitiveTypes.Int8, indexWidthFor(10))
	assert.Equal(t, arrow.PrimitiveTypes.Int16, indexWidthFor(1000))
	assert.Equal(t, arrow.PrimitiveTypes.Int32, indexWidthFor(100000))
	assert.Equal(t, arrow.PrimitiveTypes.Int64, indexWidthFor(1 << 40))
}
