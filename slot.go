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

// Each slot in an open-addressing table is in one of three states:
//
//	    empty: never written, or reclaimed by a hard delete. Probe
//	           sequences terminate here.
//	tombstone: soft-deleted. Never matches a key, but probe sequences keep
//	           walking through it, and it counts as occupied for the load
//	           factor.
//	 occupied: holds one key/value pair.
//
// The state is an explicit tag rather than a sentinel pair value compared
// by identity, so a stored empty string can never be mistaken for a
// tombstone.
type slotState uint8

const (
	slotEmpty slotState = iota
	slotTombstone
	slotOccupied
)

type slot struct {
	state slotState
	key   string
	value string
}

// occupied returns a filled slot holding the pair.
func occupied(key, value string) slot {
	return slot{state: slotOccupied, key: key, value: value}
}

// clear resets the slot to empty, dropping the pair it held.
func (s *slot) clear() {
	*s = slot{}
}

// matches reports whether the slot holds a live entry for key. Tombstones
// never match.
func (s *slot) matches(key string) bool {
	return s.state == slotOccupied && s.key == key
}

func (s slotState) String() string {
	switch s {
	case slotEmpty:
		return "empty"
	case slotTombstone:
		return "tombstone"
	case slotOccupied:
		return "occupied"
	}
	return "unknown"
}
