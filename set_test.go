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

import (
	"strconv"
	"testing"

	"github.com/hheinzer/cds/hash"
	"github.com/stretchr/testify/require"
)

func TestSetScenario(t *testing.T) {
	s := NewSet[int](10)
	for i := 0; i < 100; i++ {
		require.True(t, s.Add(i))
	}
	require.EqualValues(t, 100, s.Len())
	for i := 0; i < 100; i++ {
		require.True(t, s.Contains(i))
	}
	require.False(t, s.Contains(100))
	s.t.checkInvariants()
}

func TestSetAdd(t *testing.T) {
	s := NewSet[string](0)
	require.True(t, s.Add("a"))
	require.False(t, s.Add("a"))
	require.EqualValues(t, 1, s.Len())
}

func TestSetInsert(t *testing.T) {
	s := NewSet[int](0)

	_, replaced := s.Insert(5)
	require.False(t, replaced)
	require.EqualValues(t, 1, s.Len())

	// Replacing an equal element is a content no-op, but the old stored copy
	// still comes back to the caller.
	prev, replaced := s.Insert(5)
	require.True(t, replaced)
	require.EqualValues(t, 5, prev)
	require.EqualValues(t, 1, s.Len())

	stored, ok := s.Get(5)
	require.True(t, ok)
	require.EqualValues(t, 5, stored)
}

func TestSetDelete(t *testing.T) {
	s := NewSet[int](10)
	for i := 0; i < 100; i++ {
		s.Add(i)
	}

	for i := 0; i < 100; i += 2 {
		v, ok := s.Delete(i)
		require.True(t, ok)
		require.EqualValues(t, i, v)
	}
	require.EqualValues(t, 50, s.Len())

	for i := 0; i < 100; i++ {
		require.Equal(t, i%2 == 1, s.Contains(i))
	}

	_, ok := s.Delete(0)
	require.False(t, ok)
	s.t.checkInvariants()
}

func TestSetClone(t *testing.T) {
	s := NewSet[int](0)
	for i := 0; i < 100; i++ {
		s.Add(i)
	}

	c := s.Clone()
	require.EqualValues(t, s.Len(), c.Len())

	c.Add(100)
	s.Delete(0)
	require.EqualValues(t, 100, s.Len())
	require.EqualValues(t, 101, c.Len())
	require.False(t, s.Contains(100))
	require.True(t, c.Contains(0))
}

func TestSetClear(t *testing.T) {
	s := NewSet[int](0)
	s.Clear() // clearing an empty set is a no-op
	require.EqualValues(t, 0, s.Len())

	for i := 0; i < 100; i++ {
		s.Add(i)
	}
	s.Clear()
	require.EqualValues(t, 0, s.Len())
	require.False(t, s.Contains(0))

	s.Add(1)
	require.EqualValues(t, 1, s.Len())
}

func TestSetCustomHash(t *testing.T) {
	hashes := map[string]func(string) uint64{
		"fnv1a":   hash.FNV1aString,
		"djb2":    hash.DJB2String,
		"sdbm":    hash.SDBMString,
		"xxh64":   hash.XXH64String,
		"murmur3": hash.Murmur3String,
	}
	for name, h := range hashes {
		t.Run(name, func(t *testing.T) {
			s := NewSet[string](0, WithHash[string, string](h))
			for i := 0; i < 1000; i++ {
				require.True(t, s.Add(strconv.Itoa(i)))
			}
			require.EqualValues(t, 1000, s.Len())
			for i := 0; i < 1000; i++ {
				require.True(t, s.Contains(strconv.Itoa(i)))
			}
			require.False(t, s.Contains("1000"))
			s.t.checkInvariants()
		})
	}
}

func TestSetIterate(t *testing.T) {
	s := NewSet[int](0)
	e := make(map[int]bool)
	for i := 0; i < 100; i++ {
		s.Add(i)
		e[i] = true
	}

	seen := make(map[int]bool)
	s.All(func(v int) bool {
		require.False(t, seen[v])
		seen[v] = true
		return true
	})
	require.Equal(t, e, seen)

	visited := 0
	s.All(func(int) bool {
		visited++
		return false
	})
	require.Equal(t, 1, visited)
}
