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

import "github.com/arrowcore/arrow/arrow/bitutil"

// DefaultValue returns default(T): n zero bytes covering one element's
// physical storage for a fixed-width t, used to pad sparse-union slots
// the type_ids buffer does not select for so their bytes are
// deterministic rather than left uninitialized (spec.md §4.2; see
// DESIGN.md's Open Question decision on sparse-union non-selected
// children). Non-fixed-width types (variable-length binary, nested
// types) have no fixed per-element width to zero-fill and return nil.
func DefaultValue(t DataType) []byte {
	fw, ok := t.(FixedWidthDataType)
	if !ok {
		return nil
	}
	return make([]byte, bitutil.BytesForBits(int64(fw.BitWidth())))
}
