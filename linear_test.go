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

// TestLinearSoftDeleteScenario scripts the canonical tombstone walk: two
// keys colliding on slot 0 of a capacity-5 table, with the first soft
// deleted out from under the second.
func TestLinearSoftDeleteScenario(t *testing.T) {
	tb := NewLinear(SoftDelete(), WithHash(zeroHash),
		WithCapacitySource(prime.NewGeneratorAt(5)))

	r, err := tb.Put("A", "1")
	require.NoError(t, err)
	require.Equal(t, Probes{Value: "1", Found: true, Count: 1}, r)

	// B's home slot is taken by A; it lands one over.
	r, err = tb.Put("B", "2")
	require.NoError(t, err)
	require.Equal(t, Probes{Value: "2", Found: true, Count: 2}, r)

	r = tb.Delete("A")
	require.Equal(t, Probes{Value: "1", Found: true, Count: 1}, r)
	require.Equal(t, slotTombstone, tb.slots[0].state)

	// The tombstone is probed through, not stopped at.
	r = tb.Get("B")
	require.Equal(t, Probes{Value: "2", Found: true, Count: 2}, r)

	require.False(t, tb.ContainsKey("A"))
	require.Equal(t, 1, tb.Len())
	require.Equal(t, 5, tb.Cap())
}

func TestLinearWrapAround(t *testing.T) {
	tb := NewLinear(WithHash(func(string) uint64 { return 4 }),
		WithCapacitySource(prime.NewGeneratorAt(5)))

	_, err := tb.Put("first", "1")
	require.NoError(t, err)
	_, err = tb.Put("second", "2")
	require.NoError(t, err)

	// The second key wrapped from slot 4 to slot 0.
	require.Equal(t, slotOccupied, tb.slots[4].state)
	require.Equal(t, "first", tb.slots[4].key)
	require.Equal(t, slotOccupied, tb.slots[0].state)
	require.Equal(t, "second", tb.slots[0].key)

	r := tb.Get("second")
	require.Equal(t, Probes{Value: "2", Found: true, Count: 2}, r)
}

// TestLinearHardDeleteCluster pins down the local cluster repair: deleting
// the head of a three-entry cluster drains and reinserts the two entries
// behind it, and the probe accounting covers the drain walk and both
// reinsertions.
func TestLinearHardDeleteCluster(t *testing.T) {
	tb := NewLinear(WithHash(zeroHash),
		WithCapacitySource(prime.NewGeneratorAt(13)))

	for _, k := range []string{"a", "b", "c"} {
		_, err := tb.Put(k, k)
		require.NoError(t, err)
	}

	// Finding a: 1 probe. Draining b and c: 2 advances plus 1 for
	// observing the terminating empty slot. Reinserting b: 1 probe.
	// Reinserting c: 2 probes.
	r := tb.Delete("a")
	require.Equal(t, Probes{Value: "a", Found: true, Count: 7}, r)

	// The cluster closed up behind the vacancy.
	require.Equal(t, "b", tb.slots[0].key)
	require.Equal(t, "c", tb.slots[1].key)
	require.Equal(t, slotEmpty, tb.slots[2].state)
	require.Equal(t, 2, tb.Len())
	require.True(t, tb.Get("b").Found)
	require.True(t, tb.Get("c").Found)
}

// TestLinearHardDeleteNoCluster covers the degenerate repair: the vacated
// slot has an empty successor, so the repair only observes that emptiness.
func TestLinearHardDeleteNoCluster(t *testing.T) {
	tb := NewLinear(WithHash(zeroHash),
		WithCapacitySource(prime.NewGeneratorAt(13)))

	_, err := tb.Put("a", "1")
	require.NoError(t, err)
	r := tb.Delete("a")
	require.Equal(t, Probes{Value: "1", Found: true, Count: 2}, r)
	require.Equal(t, 0, tb.Len())
}

func TestLinearGrowth(t *testing.T) {
	tb := NewLinear(WithCapacitySource(prime.NewGeneratorAt(5)))

	_, err := tb.Put("a", "1")
	require.NoError(t, err)
	_, err = tb.Put("b", "2")
	require.NoError(t, err)
	require.Equal(t, 5, tb.Cap())

	// The third entry would exceed a load factor of 1/2, so growth runs
	// before placement: 5 probes to scan the old array, at least 1 probe
	// per reinserted pair, and at least 1 for the new placement.
	r, err := tb.Put("c", "3")
	require.NoError(t, err)
	require.Equal(t, 11, tb.Cap())
	require.GreaterOrEqual(t, r.Count, 8)

	for _, k := range []string{"a", "b", "c"} {
		require.True(t, tb.Get(k).Found, "%s lost in resize", k)
	}
	require.Equal(t, 3, tb.Len())
}

// TestLinearMissProbes verifies that a miss walks to the cluster's
// terminating empty slot, counting every slot it examined.
func TestLinearMissProbes(t *testing.T) {
	tb := NewLinear(WithHash(zeroHash),
		WithCapacitySource(prime.NewGeneratorAt(13)))

	require.Equal(t, Probes{Count: 1}, tb.Get("anything"))

	for _, k := range []string{"a", "b", "c"} {
		_, err := tb.Put(k, k)
		require.NoError(t, err)
	}
	require.Equal(t, Probes{Count: 4}, tb.Get("missing"))
	require.Equal(t, Probes{Count: 4}, tb.Delete("missing"))
}
