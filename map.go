// Copyright 2025 The cds Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cds

import "github.com/hheinzer/cds/hash"

// Map is an associative container from string keys to values of type V,
// built on the probing engine. Keys are hashed with FNV-1a by default and
// compared by value. A Map is NOT goroutine-safe.
type Map[V any] struct {
	t table[string, V]
}

// NewMap constructs a Map sized for capacityHint entries. The slot array is
// allocated lazily on the first Put. NewMap panics if an option leaves the
// configuration invalid (load factor outside (0,1), nil hash function).
func NewMap[V any](capacityHint int, options ...Option[string, V]) *Map[V] {
	m := &Map[V]{table[string, V]{
		loadFactor: 0.75,
		hash:       hash.FNV1aString,
		alloc:      defaultAllocator[string, V]{},
	}}
	for _, op := range options {
		op.apply(&m.t)
	}
	m.t.init(capacityHint)
	return m
}

// Put inserts an entry, replacing the value of an existing entry with the
// same key. The displaced value is returned with replaced=true; its
// ownership transfers to the caller.
func (m *Map[V]) Put(key string, value V) (prev V, replaced bool) {
	return m.t.insert(key, value, false)
}

// PutIfAbsent inserts an entry unless one with the same key exists, in which
// case the existing value is returned unchanged with loaded=true.
func (m *Map[V]) PutIfAbsent(key string, value V) (existing V, loaded bool) {
	return m.t.insert(key, value, true)
}

// Get retrieves the value stored for key, returning ok=false if the key is
// not present.
func (m *Map[V]) Get(key string) (value V, ok bool) {
	return m.t.find(key)
}

// Contains reports whether the map holds an entry for key.
func (m *Map[V]) Contains(key string) bool {
	_, ok := m.t.find(key)
	return ok
}

// Delete removes the entry for key and returns its value. Ownership of the
// value transfers to the caller; the release callback is not invoked.
func (m *Map[V]) Delete(key string) (value V, ok bool) {
	return m.t.remove(key)
}

// Len returns the number of entries in the map.
func (m *Map[V]) Len() int {
	return m.t.size
}

// Clear releases every stored value through the release callback, if one is
// configured, and drops the slot array. The map stays usable; the configured
// capacity is kept.
func (m *Map[V]) Clear() {
	m.t.clear()
}

// Clone returns an independent map with the same configuration and entries.
// Values are deep-copied when a clone callback is configured; otherwise they
// are copied by assignment.
func (m *Map[V]) Clone() *Map[V] {
	return &Map[V]{m.t.cloneTable()}
}

// All calls yield for each key and value in bucket order; the relative order
// is otherwise undefined. If yield returns false, iteration stops. Entries
// must not be added or removed during iteration.
func (m *Map[V]) All(yield func(key string, value V) bool) {
	m.t.all(yield)
}
