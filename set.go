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

// Set is a container of unique elements built on the probing engine; the
// element is its own key. Elements are compared with == and hashed with
// hash.Comparable by default. A Set is NOT goroutine-safe.
type Set[E comparable] struct {
	t table[E, E]
}

// NewSet constructs a Set sized for capacityHint elements. The slot array is
// allocated lazily on the first insert. NewSet panics if an option leaves
// the configuration invalid (load factor outside (0,1), nil hash function).
func NewSet[E comparable](capacityHint int, options ...Option[E, E]) *Set[E] {
	s := &Set[E]{table[E, E]{
		loadFactor: 0.75,
		hash:       hash.Comparable[E],
		alloc:      defaultAllocator[E, E]{},
	}}
	for _, op := range options {
		op.apply(&s.t)
	}
	s.t.init(capacityHint)
	return s
}

// Add inserts e, keeping the stored copy if an equal element exists. It
// reports whether e was newly added.
func (s *Set[E]) Add(e E) bool {
	_, loaded := s.t.insert(e, e, true)
	return !loaded
}

// Insert adds e, replacing the stored copy of an equal element. The
// displaced copy is returned with replaced=true; by the equality law the two
// are equal, but ownership of the old copy transfers to the caller.
func (s *Set[E]) Insert(e E) (prev E, replaced bool) {
	return s.t.insert(e, e, false)
}

// Contains reports whether the set holds an element equal to e.
func (s *Set[E]) Contains(e E) bool {
	_, ok := s.t.find(e)
	return ok
}

// Get returns the stored copy of the element equal to e, with ok=false if
// the set holds none.
func (s *Set[E]) Get(e E) (stored E, ok bool) {
	return s.t.find(e)
}

// Delete removes the element equal to e and returns the stored copy.
// Ownership transfers to the caller; the release callback is not invoked.
func (s *Set[E]) Delete(e E) (stored E, ok bool) {
	return s.t.remove(e)
}

// Len returns the number of elements in the set.
func (s *Set[E]) Len() int {
	return s.t.size
}

// Clear releases every stored element through the release callback, if one
// is configured, and drops the slot array. The set stays usable; the
// configured capacity is kept.
func (s *Set[E]) Clear() {
	s.t.clear()
}

// Clone returns an independent set with the same configuration and
// elements.
func (s *Set[E]) Clone() *Set[E] {
	return &Set[E]{s.t.cloneTable()}
}

// All calls yield for each element in bucket order; the relative order is
// otherwise undefined. If yield returns false, iteration stops. Elements
// must not be added or removed during iteration.
func (s *Set[E]) All(yield func(e E) bool) {
	s.t.all(func(e, _ E) bool { return yield(e) })
}
