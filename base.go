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
	"fmt"
	"math"
	"strings"
)

const debug = false

// openAddressing is the state shared by the Linear, OrderedLinear, and
// Quadratic tables: the slot array, the occupancy counters, the deletion
// mode, the capacity source, and the hash function. Each table embeds its
// own copy; slot arrays are never aliased between tables.
//
// count tracks non-empty slots, tombstones included: a soft delete leaves
// count alone and bumps tombstones instead, so count-tombstones is the
// number of live entries and count alone is what the load factor is
// computed from. Both counters are zeroed by a resize or rebuild, which
// drops tombstones on the floor.
type openAddressing struct {
	slots      []slot
	count      int
	tombstones int
	soft       bool
	primes     CapacitySource
	hash       func(string) uint64
}

func (t *openAddressing) init(cfg config) {
	t.soft = cfg.soft
	t.primes = cfg.primes
	t.hash = cfg.hash
	t.slots = make([]slot, t.primes.Current())
}

// home maps key to its home address: the raw hash with the sign bit masked
// off, reduced modulo the current capacity. Pure and deterministic; no
// probing.
func (t *openAddressing) home(key string) int {
	return int((t.hash(key) & math.MaxInt64) % uint64(len(t.slots)))
}

// overloaded reports whether placing one more entry would push the load
// factor past maxLoadFactor. Tombstones count as occupied here; they take
// up probe distance even though they hold no entry.
func (t *openAddressing) overloaded() bool {
	return float64(t.count+1)/float64(len(t.slots)) > maxLoadFactor
}

// grow moves the table to the next prime capacity. Every slot of the old
// array is scanned at a cost of one probe each; live pairs are collected,
// tombstones and empties are skipped, both counters reset, and the pairs
// are reinserted through put - the table's own Put - so reinsertion probes
// are part of the returned total and reinsertion reapplies the table's
// probing rules.
//
// Reinsertion cannot re-trigger growth: the live count is at most half the
// old capacity, which is below half the new one.
func (t *openAddressing) grow(put func(key, value string) (Probes, error)) int {
	probes := 0
	live := make([]KVPair, 0, t.count-t.tombstones)
	for i := range t.slots {
		if t.slots[i].state == slotOccupied {
			live = append(live, KVPair{Key: t.slots[i].key, Value: t.slots[i].value})
		}
		probes++
	}
	t.count = 0
	t.tombstones = 0
	t.slots = make([]slot, t.primes.Next())
	if debug {
		fmt.Printf("grow: capacity=%d live=%d\n", len(t.slots), len(live))
	}
	for _, p := range live {
		// The pairs were validated when first stored, so Put cannot fail.
		r, _ := put(p.Key, p.Value)
		probes += r.Count
	}
	return probes
}

// rebuild reinserts every live pair into a fresh array at the current
// capacity, scanning the whole table at one probe per slot. Used by the
// quadratic table's hard delete: its probe offsets are not contiguous, so
// unlike the linear tables there is no cluster to locally repair.
func (t *openAddressing) rebuild(put func(key, value string) (Probes, error)) int {
	probes := 0
	live := make([]KVPair, 0, t.count-t.tombstones)
	for i := range t.slots {
		if t.slots[i].state == slotOccupied {
			live = append(live, KVPair{Key: t.slots[i].key, Value: t.slots[i].value})
		}
		probes++
	}
	t.count = 0
	t.tombstones = 0
	t.slots = make([]slot, t.primes.Current())
	for _, p := range live {
		r, _ := put(p.Key, p.Value)
		probes += r.Count
	}
	return probes
}

// repairCluster restores reachability after a hard delete at vacated: every
// later entry in the same contiguous cluster may have been placed by
// probing through the vacated slot, so the whole run is drained and
// reinserted through put. Draining costs one probe per advance plus one for
// each observation of the terminating empty slot; reinsertion probes are
// added on top.
func (t *openAddressing) repairCluster(vacated int, put func(key, value string) (Probes, error)) int {
	probes := 0
	var drained []KVPair
	i := (vacated + 1) % len(t.slots)
	if t.slots[i].state == slotEmpty {
		probes++
	}
	for t.slots[i].state != slotEmpty {
		drained = append(drained, KVPair{Key: t.slots[i].key, Value: t.slots[i].value})
		t.slots[i].clear()
		t.count--
		i = (i + 1) % len(t.slots)
		probes++
		if t.slots[i].state == slotEmpty {
			probes++
		}
	}
	for _, p := range drained {
		r, _ := put(p.Key, p.Value)
		probes += r.Count
	}
	return probes
}

// Len returns the number of live entries: occupied slots for hard-delete
// tables, occupied minus tombstoned for soft-delete tables. Both collapse
// to count-tombstones since hard-delete tables never hold a tombstone.
func (t *openAddressing) Len() int {
	return t.count - t.tombstones
}

// Cap returns the slot-array length, the prime most recently supplied by
// the capacity source.
func (t *openAddressing) Cap() int {
	return len(t.slots)
}

// ContainsValue scans the slot array for a live entry storing value.
// Tombstoned and empty slots are skipped.
func (t *openAddressing) ContainsValue(value string) bool {
	for i := range t.slots {
		if t.slots[i].state == slotOccupied && t.slots[i].value == value {
			return true
		}
	}
	return false
}

// All calls yield for every live entry in slot order until yield returns
// false.
func (t *openAddressing) All(yield func(key, value string) bool) {
	for i := range t.slots {
		if t.slots[i].state == slotOccupied {
			if !yield(t.slots[i].key, t.slots[i].value) {
				return
			}
		}
	}
}

// checkInvariants verifies the counter bookkeeping against the slot array.
// The checks are compiled away unless the invariants build tag is set.
func (t *openAddressing) checkInvariants() {
	if invariants {
		var occupied, tombstoned int
		for i := range t.slots {
			switch t.slots[i].state {
			case slotOccupied:
				if t.slots[i].key == "" || t.slots[i].value == "" {
					panic(fmt.Sprintf("invariant failed: slot(%d) occupied with empty key or value\n%s",
						i, t.debugString()))
				}
				occupied++
			case slotTombstone:
				if !t.soft {
					panic(fmt.Sprintf("invariant failed: slot(%d) tombstoned in a hard-delete table\n%s",
						i, t.debugString()))
				}
				tombstoned++
			}
		}
		if occupied+tombstoned != t.count {
			panic(fmt.Sprintf("invariant failed: found %d non-empty slots, but count is %d\n%s",
				occupied+tombstoned, t.count, t.debugString()))
		}
		if tombstoned != t.tombstones {
			panic(fmt.Sprintf("invariant failed: found %d tombstones, but tombstone count is %d\n%s",
				tombstoned, t.tombstones, t.debugString()))
		}
		if load := float64(t.count) / float64(len(t.slots)); load > maxLoadFactor {
			panic(fmt.Sprintf("invariant failed: load factor %.3f exceeds %.3f\n%s",
				load, maxLoadFactor, t.debugString()))
		}
	}
}

func (t *openAddressing) debugString() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "capacity=%d count=%d tombstones=%d soft=%t\n",
		len(t.slots), t.count, t.tombstones, t.soft)
	for i := range t.slots {
		switch t.slots[i].state {
		case slotEmpty:
			fmt.Fprintf(&buf, "  %4d: empty\n", i)
		case slotTombstone:
			fmt.Fprintf(&buf, "  %4d: tombstone\n", i)
		default:
			fmt.Fprintf(&buf, "  %4d: %s=%s [home=%d]\n",
				i, t.slots[i].key, t.slots[i].value, t.home(t.slots[i].key))
		}
	}
	return buf.String()
}
