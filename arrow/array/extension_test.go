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

// uuidExtType is a minimal ExtensionType test double, storage a
// FixedSizeBinary(16) the way a UUID extension would be registered.
type uuidExtType struct {
	storage arrow.DataType
}

func (t *uuidExtType) ID() arrow.Type          { return arrow.EXTENSION }
func (t *uuidExtType) Name() string            { return "extension<uuid>" }
func (t *uuidExtType) String() string          { return "extension<uuid>" }
func (t *uuidExtType) StorageType() arrow.DataType { return t.storage }
func (t *uuidExtType) ExtensionName() string   { return "uuid" }
func (t *uuidExtType) Serialize() string       { return "" }
func (t *uuidExtType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	return &uuidExtType{storage: storageType}, nil
}

func TestExtensionArrayDelegatesToStorage(t *testing.T) {
	mem := memory.DefaultAllocator()
	storage := array.NewInt64(mem, []int64{42, 7}, nil)

	dt := &uuidExtType{storage: arrow.PrimitiveTypes.Int64}
	ext := array.NewExtensionArrayWithStorage(dt, storage)
	storage.Release()
	defer ext.Release()

	require.Equal(t, 2, ext.Len())
	assert.Same(t, storage, ext.Storage())
	assert.Equal(t, int64(42), ext.Storage().(*array.Int64).Value(0))
}
