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

// Option provides an interface to do work on a Map or Set while it is being
// created.
type Option[K comparable, V any] interface {
	apply(t *table[K, V])
}

type hashOption[K comparable, V any] struct {
	hash func(K) uint64
}

func (op hashOption[K, V]) apply(t *table[K, V]) {
	t.hash = op.hash
}

// WithHash is an option to specify the hash function. It must be
// deterministic for equal keys within one process run.
func WithHash[K comparable, V any](hash func(K) uint64) Option[K, V] {
	return hashOption[K, V]{hash}
}

type loadFactorOption[K comparable, V any] struct {
	loadFactor float64
}

func (op loadFactorOption[K, V]) apply(t *table[K, V]) {
	t.loadFactor = op.loadFactor
}

// WithLoadFactor is an option to specify the occupancy ratio that triggers
// growth. It must lie strictly between 0 and 1; the default is 0.75.
func WithLoadFactor[K comparable, V any](loadFactor float64) Option[K, V] {
	return loadFactorOption[K, V]{loadFactor}
}

type cloneOption[K comparable, V any] struct {
	clone func(V) V
}

func (op cloneOption[K, V]) apply(t *table[K, V]) {
	t.clone = op.clone
}

// WithClone is an option to deep-copy values as they are stored. The clone
// callback runs when a fresh entry is materialized, not when an existing
// entry is overwritten: the overwriting value is stored as given and the
// displaced value is handed back to the caller.
func WithClone[K comparable, V any](clone func(V) V) Option[K, V] {
	return cloneOption[K, V]{clone}
}

type releaseOption[K comparable, V any] struct {
	release func(V)
}

func (op releaseOption[K, V]) apply(t *table[K, V]) {
	t.release = op.release
}

// WithRelease is an option to dispose of owned values. The release callback
// runs only during Clear. Values returned from an overwrite or a delete are
// never released by the container; ownership transfers to the caller.
func WithRelease[K comparable, V any](release func(V)) Option[K, V] {
	return releaseOption[K, V]{release}
}

// Allocator specifies an interface for allocating and releasing the slot
// array backing a Map or Set. The default allocator utilizes Go's builtin
// make() and allows the GC to reclaim memory. FreeSlots is called for the
// old array when the container grows and for the final array on Clear.
type Allocator[K comparable, V any] interface {
	// AllocSlots should return a slice equivalent to make([]Slot[K,V], n).
	AllocSlots(n int) []Slot[K, V]

	// FreeSlots can optionally release the memory associated with the
	// supplied slice that is guaranteed to have been allocated by
	// AllocSlots.
	FreeSlots(v []Slot[K, V])
}

type defaultAllocator[K comparable, V any] struct{}

func (defaultAllocator[K, V]) AllocSlots(n int) []Slot[K, V] {
	return make([]Slot[K, V], n)
}

func (defaultAllocator[K, V]) FreeSlots(v []Slot[K, V]) {
}

type allocatorOption[K comparable, V any] struct {
	allocator Allocator[K, V]
}

func (op allocatorOption[K, V]) apply(t *table[K, V]) {
	t.alloc = op.allocator
}

// WithAllocator is an option for specifying the Allocator to use for the
// slot array.
func WithAllocator[K comparable, V any](allocator Allocator[K, V]) Option[K, V] {
	return allocatorOption[K, V]{allocator}
}
