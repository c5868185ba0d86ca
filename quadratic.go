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

// Quadratic is an openly addressed table that resolves collisions by
// taking growing jumps from the home address h: probe step i (starting at
// 2) examines (h + (i-1) + (i-1)^2) mod capacity. Spreading the chain out
// avoids linear probing's local clustering at the cost of cache locality.
//
// The sequence (i-1)+(i-1)^2 mod p takes on only (p+1)/2 distinct values
// for prime p, so a probe walk can revisit addresses without ever touching
// the rest of the table. Two consequences:
//
//   - Searches carry a cycle guard: once the walk lands back on the home
//     address it reports not-found rather than looping forever.
//   - Insertion always terminates without a guard: the load factor bound
//     keeps non-empty slots at or below half the capacity, which is fewer
//     than the (p+1)/2 addresses the sequence visits, so the walk always
//     finds an empty one.
type Quadratic struct {
	openAddressing
}

var _ Table = (*Quadratic)(nil)

// NewQuadratic constructs an empty quadratic-probing table sized to its
// capacity source's current prime.
func NewQuadratic(options ...Option) *Quadratic {
	t := &Quadratic{}
	t.init(applyOptions(options))
	return t
}

// probe returns the address examined at the given step of the sequence
// rooted at home. Step 1 is the home address itself.
func (t *Quadratic) probe(home, step int) int {
	k := step - 1
	return (home + k + k*k) % len(t.slots)
}

// Put inserts the pair into the first empty slot along the probe sequence.
// Tombstones are not reused for insertion; like occupied slots they cost a
// probe and keep the walk jumping. Placement costs one final probe on top
// of any probes spent growing the table first.
func (t *Quadratic) Put(key, value string) (Probes, error) {
	if key == "" || value == "" {
		return Probes{}, ErrInvalidArgument
	}
	probes := 0
	if t.overloaded() {
		probes += t.grow(t.Put)
	}
	home := t.home(key)
	if debug {
		fmt.Printf("quadratic.put(%s): home=%d\n", key, home)
	}
	i, step := home, 2
	for t.slots[i].state != slotEmpty {
		probes++
		i = t.probe(home, step)
		step++
	}
	probes++
	t.slots[i] = occupied(key, value)
	t.count++
	t.checkInvariants()
	return Probes{Value: value, Found: true, Count: probes}, nil
}

// Get walks the probe sequence until it finds a live entry for key, reaches
// an empty slot, or cycles back to the home address. The cycle guard is
// what keeps a miss over a fully occupied sequence from looping forever.
func (t *Quadratic) Get(key string) Probes {
	home := t.home(key)
	i, step, probes := home, 2, 1
	for t.slots[i].state != slotEmpty {
		if step != 2 && i == home {
			return Probes{Count: probes}
		}
		if t.slots[i].matches(key) {
			return Probes{Value: t.slots[i].value, Found: true, Count: probes}
		}
		probes++
		i = t.probe(home, step)
		step++
	}
	return Probes{Count: probes}
}

// Delete walks the probe sequence like Get, cycle guard included. A soft
// delete tombstones the match. A hard delete clears it and then rebuilds
// the entire table at the current capacity: quadratic offsets are not
// contiguous, so no local repair can determine which later entries were
// reachable only through the vacated slot.
func (t *Quadratic) Delete(key string) Probes {
	home := t.home(key)
	i, step, probes := home, 2, 1
	if t.soft {
		for t.slots[i].state != slotEmpty {
			if step != 2 && i == home {
				return Probes{Count: probes}
			}
			if t.slots[i].matches(key) {
				r := Probes{Value: t.slots[i].value, Found: true, Count: probes}
				t.slots[i] = slot{state: slotTombstone}
				t.tombstones++
				t.checkInvariants()
				return r
			}
			probes++
			i = t.probe(home, step)
			step++
		}
		return Probes{Count: probes}
	}
	for t.slots[i].state != slotEmpty {
		if step != 2 && i == home {
			return Probes{Count: probes}
		}
		if t.slots[i].matches(key) {
			value := t.slots[i].value
			t.slots[i].clear()
			t.count--
			probes += t.rebuild(t.Put)
			t.checkInvariants()
			return Probes{Value: value, Found: true, Count: probes}
		}
		probes++
		i = t.probe(home, step)
		step++
	}
	return Probes{Count: probes}
}

// ContainsKey reports whether key is retrievable.
func (t *Quadratic) ContainsKey(key string) bool {
	return t.Get(key).Found
}
