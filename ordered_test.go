// Copyright 2024 The Phonebook Authors
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

package phonebook

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haoranli17365/phonebook/prime"
)

// TestOrderedClusterOrder inserts three colliding keys in every order and
// expects the same sorted cluster each time.
func TestOrderedClusterOrder(t *testing.T) {
	permutations := [][]string{
		{"A", "B", "C"},
		{"A", "C", "B"},
		{"B", "A", "C"},
		{"B", "C", "A"},
		{"C", "A", "B"},
		{"C", "B", "A"},
	}
	for _, keys := range permutations {
		t.Run(keys[0]+keys[1]+keys[2], func(t *testing.T) {
			tb := NewOrderedLinear(WithHash(zeroHash),
				WithCapacitySource(prime.NewGeneratorAt(13)))
			for _, k := range keys {
				_, err := tb.Put(k, "v-"+k)
				require.NoError(t, err)
			}
			for i, want := range []string{"A", "B", "C"} {
				require.Equal(t, slotOccupied, tb.slots[i].state)
				require.Equal(t, want, tb.slots[i].key, "slot %d", i)
			}
			for _, k := range keys {
				require.Equal(t, "v-"+k, tb.Get(k).Value)
			}
		})
	}
}

// TestOrderedEarlyExitMiss checks the ordering payoff: a miss stops as soon
// as the scan passes the key's sorted position, strictly before the end of
// the cluster.
func TestOrderedEarlyExitMiss(t *testing.T) {
	tb := NewOrderedLinear(WithHash(zeroHash),
		WithCapacitySource(prime.NewGeneratorAt(13)))
	for _, k := range []string{"b", "c", "d"} {
		_, err := tb.Put(k, k)
		require.NoError(t, err)
	}
	clusterLen := 3

	// "a" sorts before the whole cluster: one probe settles it.
	r := tb.Get("a")
	require.Equal(t, Probes{Count: 1}, r)

	// "bb" sorts between "b" and "c": the scan stops at "c".
	r = tb.Get("bb")
	require.Equal(t, Probes{Count: 2}, r)
	require.Less(t, r.Count, clusterLen)

	// "e" sorts after the entire cluster; only then is the full walk to
	// the terminating empty slot needed.
	r = tb.Get("e")
	require.Equal(t, Probes{Count: 4}, r)

	// Delete takes the same early exits.
	require.Equal(t, Probes{Count: 1}, tb.Delete("a"))
	require.Equal(t, Probes{Count: 2}, tb.Delete("bb"))
	require.Equal(t, 3, tb.Len())
}

// TestOrderedTombstoneIgnoredInOrder verifies that ordering is established
// across tombstones: a tombstone neither participates in comparisons nor
// blocks a later key from shifting past it.
func TestOrderedTombstoneIgnoredInOrder(t *testing.T) {
	tb := NewOrderedLinear(SoftDelete(), WithHash(zeroHash),
		WithCapacitySource(prime.NewGeneratorAt(13)))

	for _, k := range []string{"b", "c"} {
		_, err := tb.Put(k, k)
		require.NoError(t, err)
	}
	require.True(t, tb.Delete("b").Found)
	require.Equal(t, slotTombstone, tb.slots[0].state)

	// "a" advances past the tombstone for one probe, displaces "c", and
	// the displaced pair settles in the next empty slot.
	r, err := tb.Put("a", "1")
	require.NoError(t, err)
	require.Equal(t, 3, r.Count)
	require.Equal(t, slotTombstone, tb.slots[0].state)
	require.Equal(t, "a", tb.slots[1].key)
	require.Equal(t, "c", tb.slots[2].key)

	r = tb.Get("a")
	require.Equal(t, Probes{Value: "1", Found: true, Count: 2}, r)
	require.True(t, tb.Get("c").Found)
	require.Equal(t, 2, tb.Len())
}

// TestOrderedHardDeleteCluster mirrors the linear table's local repair, but
// the reinserted run must also re-sort around the vacancy.
func TestOrderedHardDeleteCluster(t *testing.T) {
	tb := NewOrderedLinear(WithHash(zeroHash),
		WithCapacitySource(prime.NewGeneratorAt(13)))

	for _, k := range []string{"c", "a", "b"} {
		_, err := tb.Put(k, k)
		require.NoError(t, err)
	}
	// Sorted cluster a,b,c; delete the middle entry.
	r := tb.Delete("b")
	require.True(t, r.Found)
	require.Equal(t, "b", r.Value)

	require.Equal(t, "a", tb.slots[0].key)
	require.Equal(t, "c", tb.slots[1].key)
	require.Equal(t, slotEmpty, tb.slots[2].state)
	require.Equal(t, 2, tb.Len())
	require.True(t, tb.Get("a").Found)
	require.True(t, tb.Get("c").Found)
	require.False(t, tb.Get("b").Found)
}

// TestOrderedEarlyExitMissAfterResize makes sure clusters are rebuilt
// sorted when growth reinserts them.
func TestOrderedEarlyExitMissAfterResize(t *testing.T) {
	tb := NewOrderedLinear(WithHash(zeroHash),
		WithCapacitySource(prime.NewGeneratorAt(5)))
	for _, k := range []string{"d", "b", "f"} {
		_, err := tb.Put(k, k)
		require.NoError(t, err)
	}
	// The third put grew the table to 11; the cluster at slot 0 must still
	// be sorted b,d,f.
	require.Equal(t, 11, tb.Cap())
	for i, want := range []string{"b", "d", "f"} {
		require.Equal(t, want, tb.slots[i].key, "slot %d", i)
	}
	require.Equal(t, Probes{Count: 2}, tb.Get("c"))
}
