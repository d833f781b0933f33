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

// Package hash provides the hash strategies consumed by the cds containers.
// Every function maps a key to a 64-bit value and is deterministic for equal
// inputs within one process run. The strategies are interchangeable: pick one
// at container construction time. None of them are of cryptographic quality.
package hash

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
)

const (
	fnvOffset = 0xcbf29ce484222325
	fnvPrime  = 0x00000100000001b3
)

// FNV1aString returns the 64-bit FNV-1a hash of s.
func FNV1aString(s string) uint64 {
	h := uint64(fnvOffset)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}
	return h
}

// FNV1a returns the 64-bit FNV-1a hash of b.
func FNV1a(b []byte) uint64 {
	h := uint64(fnvOffset)
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime
	}
	return h
}

// DJB2String returns the Daniel J. Bernstein hash of s.
func DJB2String(s string) uint64 {
	h := uint64(5381)
	for i := 0; i < len(s); i++ {
		h = ((h << 5) + h) + uint64(s[i])
	}
	return h
}

// DJB2 returns the Daniel J. Bernstein hash of b.
func DJB2(b []byte) uint64 {
	h := uint64(5381)
	for _, c := range b {
		h = ((h << 5) + h) + uint64(c)
	}
	return h
}

// SDBMString returns the hash of s as used by the sdbm database library and
// by gawk.
func SDBMString(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = uint64(s[i]) + (h << 6) + (h << 16) - h
	}
	return h
}

// SDBM returns the sdbm hash of b.
func SDBM(b []byte) uint64 {
	var h uint64
	for _, c := range b {
		h = uint64(c) + (h << 6) + (h << 16) - h
	}
	return h
}

// XXH64String returns the 64-bit xxHash digest of s.
func XXH64String(s string) uint64 { return xxhash.Sum64String(s) }

// XXH64 returns the 64-bit xxHash digest of b.
func XXH64(b []byte) uint64 { return xxhash.Sum64(b) }

// Murmur3String returns the upper 64 bits of the 128-bit Murmur3 hash of s.
func Murmur3String(s string) uint64 { return murmur3.StringSum64(s) }

// Murmur3 returns the upper 64 bits of the 128-bit Murmur3 hash of b.
func Murmur3(b []byte) uint64 { return murmur3.Sum64(b) }

var seed = maphash.MakeSeed()

// Comparable hashes any comparable value using the runtime's maphash with a
// process-wide seed. Equal values hash equal, consistently with ==, which
// makes it a safe default for element types whose in-memory representation
// is not canonical (strings, interfaces).
func Comparable[T comparable](v T) uint64 { return maphash.Comparable(seed, v) }
