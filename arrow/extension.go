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

import (
	"fmt"
	"sync"
)

// extensionEntry is what the process-wide registry keeps per extension
// name (spec.md §4.2: `{extension_name -> (physical_type, decode_fn,
// encode_fn)}`).
type extensionEntry struct {
	physical DataType
	sample   ExtensionType
}

var extRegistry = struct {
	mu      sync.RWMutex
	entries map[string]extensionEntry
	warned  map[string]bool
}{
	entries: make(map[string]extensionEntry),
	warned:  make(map[string]bool),
}

// RegisterExtensionType adds ext to the process-wide registry, keyed by
// ext.ExtensionName(). Re-registering the same (name, physical type)
// pair is a no-op; re-registering the same name with a different
// physical type fails with KindSchemaConflict (spec.md §4.2).
func RegisterExtensionType(ext ExtensionType) error {
	extRegistry.mu.Lock()
	defer extRegistry.mu.Unlock()

	name := ext.ExtensionName()
	if existing, ok := extRegistry.entries[name]; ok {
		if !TypeEqual(existing.physical, ext.StorageType()) {
			return Newf(KindSchemaConflict,
				"extension %q already registered with physical type %s (got %s)",
				name, existing.physical, ext.StorageType())
		}
		return nil
	}
	extRegistry.entries[name] = extensionEntry{physical: ext.StorageType(), sample: ext}
	return nil
}

// UnregisterExtensionType removes name from the registry, if present.
func UnregisterExtensionType(name string) {
	extRegistry.mu.Lock()
	defer extRegistry.mu.Unlock()
	delete(extRegistry.entries, name)
}

// GetExtensionType looks up a registered extension by name.
func GetExtensionType(name string) (ExtensionType, bool) {
	extRegistry.mu.RLock()
	defer extRegistry.mu.RUnlock()
	e, ok := extRegistry.entries[name]
	if !ok {
		return nil, false
	}
	return e.sample, true
}

// ResolveExtension decodes a field's physical type plus its
// `ARROW:extension:name`/`ARROW:extension:metadata` metadata into an
// ExtensionType, if the name is registered. An unregistered name is not
// an error: it degrades to the physical type and emits a one-shot,
// deduplicated warning keyed by (name, physical type) per spec.md §4.2
// and §7 ("Unknown extension names are not errors").
func ResolveExtension(physical DataType, name, metadata string, warn func(string)) (ExtensionType, bool) {
	extRegistry.mu.RLock()
	e, ok := extRegistry.entries[name]
	extRegistry.mu.RUnlock()
	if !ok {
		warnOnce(name, physical, warn)
		return nil, false
	}
	ext, err := e.sample.Deserialize(physical, metadata)
	if err != nil {
		warnOnce(name, physical, warn)
		return nil, false
	}
	return ext, true
}

func warnOnce(name string, physical DataType, warn func(string)) {
	key := name + "\x00" + physical.String()
	extRegistry.mu.Lock()
	already := extRegistry.warned[key]
	extRegistry.warned[key] = true
	extRegistry.mu.Unlock()
	if already || warn == nil {
		return
	}
	warn(fmt.Sprintf("arrow: unknown extension type %q over physical type %s; decoding as physical type", name, physical))
}
