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

import "fmt"

// Linear is an openly addressed table that resolves collisions by moving
// one address over, wrapping at the end of the array. Clusters are
// unordered: a search must walk a cluster to its terminating empty slot
// before it can declare a miss.
type Linear struct {
	openAddressing
}

var _ Table = (*Linear)(nil)

// NewLinear constructs an empty linear-probing table sized to its capacity
// source's current prime.
func NewLinear(options ...Option) *Linear {
	t := &Linear{}
	t.init(applyOptions(options))
	return t
}

// Put inserts the pair. The new entry lands in the first empty slot at or
// after its home address; occupied and tombstoned slots both keep the probe
// walking. Each slot stepped past costs one probe and the final placement
// costs one more, on top of any probes spent growing the table first.
func (t *Linear) Put(key, value string) (Probes, error) {
	if key == "" || value == "" {
		return Probes{}, ErrInvalidArgument
	}
	probes := 0
	if t.overloaded() {
		probes += t.grow(t.Put)
	}
	i := t.home(key)
	if debug {
		fmt.Printf("linear.put(%s): home=%d\n", key, i)
	}
	for t.slots[i].state != slotEmpty {
		probes++
		i = (i + 1) % len(t.slots)
	}
	probes++
	t.slots[i] = occupied(key, value)
	t.count++
	t.checkInvariants()
	return Probes{Value: value, Found: true, Count: probes}, nil
}

// Get scans forward from the home address until it finds a live entry for
// key or reaches an empty slot. Tombstones never match but never stop the
// scan either.
func (t *Linear) Get(key string) Probes {
	i := t.home(key)
	probes := 1
	for t.slots[i].state != slotEmpty {
		if t.slots[i].matches(key) {
			return Probes{Value: t.slots[i].value, Found: true, Count: probes}
		}
		probes++
		i = (i + 1) % len(t.slots)
	}
	return Probes{Count: probes}
}

// Delete scans like Get. In soft mode a match is overwritten with a
// tombstone. In hard mode the slot is emptied and the contiguous cluster
// that follows is drained and reinserted, since any of those entries may
// have been reachable only by probing through the vacated slot.
func (t *Linear) Delete(key string) Probes {
	i := t.home(key)
	probes := 1
	if t.soft {
		for t.slots[i].state != slotEmpty {
			if t.slots[i].matches(key) {
				r := Probes{Value: t.slots[i].value, Found: true, Count: probes}
				t.slots[i] = slot{state: slotTombstone}
				t.tombstones++
				t.checkInvariants()
				return r
			}
			probes++
			i = (i + 1) % len(t.slots)
		}
		return Probes{Count: probes}
	}
	for t.slots[i].state != slotEmpty {
		if t.slots[i].matches(key) {
			value := t.slots[i].value
			t.slots[i].clear()
			t.count--
			probes += t.repairCluster(i, t.Put)
			t.checkInvariants()
			return Probes{Value: value, Found: true, Count: probes}
		}
		probes++
		i = (i + 1) % len(t.slots)
	}
	return Probes{Count: probes}
}

// ContainsKey reports whether key is retrievable.
func (t *Linear) ContainsKey(key string) bool {
	return t.Get(key).Found
}
