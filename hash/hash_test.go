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

package hash

import (
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/require"
)

var inputs = []string{
	"",
	"a",
	"foobar",
	"the quick brown fox jumps over the lazy dog",
	"\x00\x01\x02",
	"\x80\xff\xfe high bytes",
	"日本語",
}

func TestFNV1aMatchesStdlib(t *testing.T) {
	for _, s := range inputs {
		h := fnv.New64a()
		h.Write([]byte(s))
		require.Equal(t, h.Sum64(), FNV1a([]byte(s)), "input %q", s)
	}
}

func TestStringBytesAgree(t *testing.T) {
	pairs := map[string]struct {
		str func(string) uint64
		mem func([]byte) uint64
	}{
		"fnv1a":   {FNV1aString, FNV1a},
		"djb2":    {DJB2String, DJB2},
		"sdbm":    {SDBMString, SDBM},
		"xxh64":   {XXH64String, XXH64},
		"murmur3": {Murmur3String, Murmur3},
	}
	for name, p := range pairs {
		t.Run(name, func(t *testing.T) {
			for _, s := range inputs {
				require.Equal(t, p.mem([]byte(s)), p.str(s), "input %q", s)
			}
		})
	}
}

func TestKnownValues(t *testing.T) {
	require.EqualValues(t, uint64(0xcbf29ce484222325), FNV1aString(""))
	require.EqualValues(t, uint64(0xaf63dc4c8601ec8c), FNV1aString("a"))
	require.EqualValues(t, uint64(5381), DJB2String(""))
	require.EqualValues(t, uint64(0), SDBMString(""))
}

func TestDeterministic(t *testing.T) {
	funcs := map[string]func(string) uint64{
		"fnv1a":   FNV1aString,
		"djb2":    DJB2String,
		"sdbm":    SDBMString,
		"xxh64":   XXH64String,
		"murmur3": Murmur3String,
	}
	for name, f := range funcs {
		t.Run(name, func(t *testing.T) {
			for _, s := range inputs {
				require.Equal(t, f(s), f(s))
			}
		})
	}
}

func TestComparable(t *testing.T) {
	// Equal values hash equal, consistently with ==, within one process run.
	require.Equal(t, Comparable(1), Comparable(1))
	require.Equal(t, Comparable("a"), Comparable("a"))

	type point struct{ x, y int }
	require.Equal(t, Comparable(point{1, 2}), Comparable(point{1, 2}))
	require.NotEqual(t, Comparable(point{1, 2}), Comparable(point{2, 1}))

	// Strings with distinct backing arrays still hash equal.
	s := string([]byte{'a', 'b'})
	require.Equal(t, Comparable("ab"), Comparable(s))
}
