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

// OrderedLinear is a linear-probing table that keeps every cluster sorted
// by key, ignoring tombstones when establishing the order. Insertion pays
// an insertion-sort style shift; in exchange a miss can stop as soon as the
// scan passes the key's sorted position instead of walking the cluster to
// its end.
type OrderedLinear struct {
	openAddressing
}

var _ Table = (*OrderedLinear)(nil)

// NewOrderedLinear constructs an empty ordered-linear-probing table sized
// to its capacity source's current prime.
func NewOrderedLinear(options ...Option) *OrderedLinear {
	t := &OrderedLinear{}
	t.init(applyOptions(options))
	return t
}

// Put inserts the pair, keeping the cluster sorted. The walk carries a
// pending pair (initially the new one): at an occupied non-tombstone slot
// whose key sorts after the pending key the two are swapped and the walk
// repeats at the same index, which costs no probe; at a tombstone or a slot
// sorting before the pending key the walk advances for one probe. Whatever
// pair is in hand when an empty slot is reached is written there for one
// final probe.
func (t *OrderedLinear) Put(key, value string) (Probes, error) {
	if key == "" || value == "" {
		return Probes{}, ErrInvalidArgument
	}
	probes := 0
	if t.overloaded() {
		probes += t.grow(t.Put)
	}
	i := t.home(key)
	if debug {
		fmt.Printf("ordered.put(%s): home=%d\n", key, i)
	}
	pending := KVPair{Key: key, Value: value}
	for t.slots[i].state != slotEmpty {
		if t.slots[i].state == slotOccupied && t.slots[i].key > pending.Key {
			t.slots[i].key, pending.Key = pending.Key, t.slots[i].key
			t.slots[i].value, pending.Value = pending.Value, t.slots[i].value
		} else {
			probes++
			i = (i + 1) % len(t.slots)
		}
	}
	probes++
	t.slots[i] = occupied(pending.Key, pending.Value)
	t.count++
	t.checkInvariants()
	return Probes{Value: value, Found: true, Count: probes}, nil
}

// Get scans forward from the home address. The first occupied non-tombstone
// slot whose key sorts at or after the search key decides the outcome: a
// match if equal, otherwise an early not-found, because the sorted cluster
// cannot hold the key any further on. Reaching an empty slot is also a
// miss.
func (t *OrderedLinear) Get(key string) Probes {
	i := t.home(key)
	probes := 1
	for t.slots[i].state != slotEmpty {
		if t.slots[i].state == slotOccupied && t.slots[i].key >= key {
			if t.slots[i].key == key {
				return Probes{Value: t.slots[i].value, Found: true, Count: probes}
			}
			return Probes{Count: probes}
		}
		probes++
		i = (i + 1) % len(t.slots)
	}
	return Probes{Count: probes}
}

// Delete scans with the same early exit as Get. A soft delete tombstones
// the match; a hard delete empties it and repairs the contiguous cluster
// that follows, exactly as the unordered linear table does - vacancy still
// only threatens reachability within the same cluster.
func (t *OrderedLinear) Delete(key string) Probes {
	i := t.home(key)
	probes := 1
	if t.soft {
		for t.slots[i].state != slotEmpty {
			if t.slots[i].state == slotOccupied && t.slots[i].key >= key {
				if t.slots[i].key == key {
					r := Probes{Value: t.slots[i].value, Found: true, Count: probes}
					t.slots[i] = slot{state: slotTombstone}
					t.tombstones++
					t.checkInvariants()
					return r
				}
				return Probes{Count: probes}
			}
			probes++
			i = (i + 1) % len(t.slots)
		}
		return Probes{Count: probes}
	}
	for t.slots[i].state != slotEmpty {
		if t.slots[i].state == slotOccupied && t.slots[i].key >= key {
			if t.slots[i].key == key {
				value := t.slots[i].value
				t.slots[i].clear()
				t.count--
				probes += t.repairCluster(i, t.Put)
				t.checkInvariants()
				return Probes{Value: value, Found: true, Count: probes}
			}
			return Probes{Count: probes}
		}
		probes++
		i = (i + 1) % len(t.slots)
	}
	return Probes{Count: probes}
}

// ContainsKey reports whether key is retrievable.
func (t *OrderedLinear) ContainsKey(key string) bool {
	return t.Get(key).Found
}
