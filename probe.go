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

// Package cds provides generic, resizable containers built on open
// addressing with displacement-bounded linear probing: Map, an associative
// container with string keys, and Set, a structurally identical container
// where the element is its own key. Both sit on one shared probing engine.
//
// # Probing
//
// Every entry has an ideal slot hash(key) % capacity. Collisions are
// resolved by scanning forward one slot at a time, wrapping at the end of
// the array. The engine tracks maxDist, the largest displacement ever
// recorded for a live entry since the last resize, and bounds every lookup
// with it: a probe visits at most maxDist+1 slots before declaring absence.
// maxDist only grows between resizes. When an insert would push the size
// past capacity*loadFactor, a new array of capacity/loadFactor+1 slots is
// allocated and every live entry is rehashed into it from its cached hash,
// which recomputes the true maxDist. Capacity never shrinks, not even after
// deletions or Clear.
//
// # Deletion
//
// Removal is tombstone-free: the slot is cleared in place. The bounded scans
// skip empty slots rather than terminating on them, so entries displaced
// past a removed collision remain reachable. The flip side is that an insert
// stops at the first empty slot it meets: deleting a key and inserting it
// again while an equal entry is still displaced beyond the emptied slot can
// leave two live entries for it. Workloads that delete a key should not
// insert that same key again before the next resize.
//
// The containers are not goroutine-safe; callers needing concurrent access
// must synchronize externally.
package cds

import "fmt"

const (
	debug = false

	// invariants enables checkInvariants after every insert. Compiled out by
	// default.
	invariants = false
)

// Slot holds a single entry of a container: the key, the stored value, and
// the cached hash of the key. The zero Slot is empty. Slot is exported only
// because Allocator traffics in slot arrays; its fields are unexported.
type Slot[K comparable, V any] struct {
	key   K
	value V
	hash  uint64
	used  bool
}

// probeSeq maintains the state of a linear probe sequence: the current slot
// offset and the displacement from the ideal slot. The sequence advances by
// +1 and wraps at capacity.
type probeSeq struct {
	offset   int
	capacity int
	dist     int
}

func makeProbeSeq(hash uint64, capacity int) probeSeq {
	return probeSeq{offset: int(hash % uint64(capacity)), capacity: capacity}
}

func (s probeSeq) next() probeSeq {
	s.dist++
	s.offset++
	if s.offset == s.capacity {
		s.offset = 0
	}
	return s
}

// table is the probing engine shared by Map and Set. The slot array is nil
// until the first insert; capacity is the length it will be allocated at.
type table[K comparable, V any] struct {
	slots      []Slot[K, V]
	size       int
	capacity   int
	maxDist    int
	loadFactor float64
	hash       func(K) uint64
	clone      func(V) V
	release    func(V)
	alloc      Allocator[K, V]
}

// init validates the configuration and derives the initial capacity from the
// hint. Misconfiguration is programmer error and panics.
func (t *table[K, V]) init(capacityHint int) {
	if capacityHint < 0 {
		panic("cds: negative capacity hint")
	}
	if t.loadFactor <= 0 || t.loadFactor >= 1 {
		panic(fmt.Sprintf("cds: load factor %g outside (0,1)", t.loadFactor))
	}
	if t.hash == nil {
		panic("cds: nil hash function")
	}
	t.capacity = int(float64(capacityHint)/t.loadFactor) + 1
}

// insert adds an entry for key. If an equal entry exists its value is
// returned; unless keep is set the stored value is replaced with the one
// given, as-is. A fresh entry stores clone(value) when a clone callback is
// configured.
func (t *table[K, V]) insert(key K, value V, keep bool) (prev V, replaced bool) {
	if t.slots == nil {
		t.slots = t.alloc.AllocSlots(t.capacity)
	}
	if float64(t.size+1) > float64(t.capacity)*t.loadFactor {
		t.grow()
	}
	h := t.hash(key)
	seq := makeProbeSeq(h, t.capacity)
	for {
		s := &t.slots[seq.offset]
		if !s.used {
			s.key = key
			s.value = value
			if t.clone != nil {
				s.value = t.clone(value)
			}
			s.hash = h
			s.used = true
			if seq.dist > t.maxDist {
				t.maxDist = seq.dist
			}
			t.size++
			if invariants {
				t.checkInvariants()
			}
			return prev, false
		}
		if s.hash == h && s.key == key {
			prev = s.value
			if !keep {
				s.value = value
			}
			return prev, true
		}
		seq = seq.next()
	}
}

// grow rehashes every live entry into an array of capacity/loadFactor+1
// slots using its cached hash, and recomputes the true maxDist.
func (t *table[K, V]) grow() {
	capacity := int(float64(t.capacity)/t.loadFactor) + 1
	slots := t.alloc.AllocSlots(capacity)
	maxDist := 0
	for i := range t.slots {
		s := &t.slots[i]
		if !s.used {
			continue
		}
		seq := makeProbeSeq(s.hash, capacity)
		for slots[seq.offset].used {
			seq = seq.next()
		}
		slots[seq.offset] = *s
		if seq.dist > maxDist {
			maxDist = seq.dist
		}
	}
	if debug {
		fmt.Printf("grow: capacity=%d->%d max-dist=%d->%d\n",
			t.capacity, capacity, t.maxDist, maxDist)
	}
	t.alloc.FreeSlots(t.slots)
	t.slots = slots
	t.capacity = capacity
	t.maxDist = maxDist
}

// find returns the value stored for key. The scan visits at most maxDist+1
// slots, skipping empty ones.
func (t *table[K, V]) find(key K) (value V, ok bool) {
	if t.size == 0 {
		return value, false
	}
	h := t.hash(key)
	for seq := makeProbeSeq(h, t.capacity); seq.dist <= t.maxDist; seq = seq.next() {
		s := &t.slots[seq.offset]
		if s.used && s.hash == h && s.key == key {
			return s.value, true
		}
	}
	return value, false
}

// remove clears the entry for key in place and returns its value. The slot
// becomes empty immediately; maxDist is left untouched so that entries
// displaced past it stay within the lookup bound.
func (t *table[K, V]) remove(key K) (value V, ok bool) {
	if t.size == 0 {
		return value, false
	}
	h := t.hash(key)
	for seq := makeProbeSeq(h, t.capacity); seq.dist <= t.maxDist; seq = seq.next() {
		s := &t.slots[seq.offset]
		if s.used && s.hash == h && s.key == key {
			value = s.value
			*s = Slot[K, V]{}
			t.size--
			return value, true
		}
	}
	return value, false
}

// cloneTable returns an independent table with the same configuration, sized
// for the current number of entries.
func (t *table[K, V]) cloneTable() table[K, V] {
	c := table[K, V]{
		capacity:   int(float64(t.size)/t.loadFactor) + 1,
		loadFactor: t.loadFactor,
		hash:       t.hash,
		clone:      t.clone,
		release:    t.release,
		alloc:      t.alloc,
	}
	for i := range t.slots {
		s := &t.slots[i]
		if s.used {
			c.insert(s.key, s.value, true)
		}
	}
	return c
}

// clear releases every live value (if a release callback is configured),
// frees the slot array, and returns the table to its unallocated state. The
// configured capacity is kept; the next insert reallocates at it.
func (t *table[K, V]) clear() {
	if t.slots == nil {
		return
	}
	if t.release != nil {
		for i := range t.slots {
			if t.slots[i].used {
				t.release(t.slots[i].value)
			}
		}
	}
	t.alloc.FreeSlots(t.slots)
	t.slots = nil
	t.size = 0
	t.maxDist = 0
}

// all calls yield for every live entry in bucket order; if yield returns
// false the traversal stops. The slot array is snapshotted so the traversal
// stays valid if the table grows during iteration.
func (t *table[K, V]) all(yield func(key K, value V) bool) {
	slots := t.slots
	for i := range slots {
		if slots[i].used && !yield(slots[i].key, slots[i].value) {
			return
		}
	}
}

// checkInvariants panics unless every live entry sits within maxDist of its
// ideal slot, the live count matches size, and the load factor holds.
func (t *table[K, V]) checkInvariants() {
	size := 0
	for i := range t.slots {
		s := &t.slots[i]
		if !s.used {
			continue
		}
		size++
		ideal := int(s.hash % uint64(t.capacity))
		dist := (i - ideal + t.capacity) % t.capacity
		if dist > t.maxDist {
			panic(fmt.Sprintf("cds: slot %d is %d past its ideal slot %d, max dist is %d",
				i, dist, ideal, t.maxDist))
		}
	}
	if size != t.size {
		panic(fmt.Sprintf("cds: found %d live slots, but size is %d", size, t.size))
	}
	if float64(t.size) > float64(t.capacity)*t.loadFactor {
		panic(fmt.Sprintf("cds: size %d exceeds load factor %g of capacity %d",
			t.size, t.loadFactor, t.capacity))
	}
}
