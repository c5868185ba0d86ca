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

// Package phonebook implements a family of in-memory string-to-string hash
// tables that exist to contrast collision-resolution strategies. Three of
// the tables are openly addressed - all entries live directly in one slot
// array and collisions are resolved by probing alternate slots:
//
//   - Linear: collisions step +1 slot at a time (wrapping). Simple and
//     cache friendly, but collision chains cluster locally.
//   - OrderedLinear: linear steps, but every cluster is kept sorted by key.
//     Insertion pays for an insertion-sort style shift; in exchange a miss
//     can bail out as soon as it passes the key's sorted position.
//   - Quadratic: the i-th alternate address is (i-1)+(i-1)^2 slots past the
//     home address. Jumping spreads chains out at the cost of locality, and
//     the sequence can revisit addresses before exhausting the table, so
//     searches carry a cycle guard.
//
// The fourth table, Chained, resolves collisions with one linked list per
// slot. It is the baseline the open-addressing strategies are measured
// against and has no tombstone concept.
//
// Every operation returns a Probes result carrying the number of slot
// examinations it performed, including the cost of any resize or repair the
// operation triggered. The counts are the whole point: they are what makes
// the strategies empirically comparable.
//
// # Deletion
//
// The open-addressing tables support two deletion modes, fixed at
// construction. Soft deletion overwrites the slot with a tombstone: a
// marker that never matches a key but keeps probe sequences walking through
// it. Tombstones are reclaimed only by the next resize. Hard deletion
// empties the slot immediately and then repairs reachability: the linear
// tables drain and reinsert the contiguous cluster that follows the vacated
// slot, while the quadratic table rebuilds the whole array because its
// probe offsets are not contiguous and a local repair cannot tell which
// later entries depended on the vacated slot.
//
// # Capacity
//
// Slot array lengths are always prime, supplied by a CapacitySource. A
// table resizes before placing a new entry whenever that entry would push
// the load factor - occupied slots including tombstones, over capacity -
// above 1/2, so the factor never exceeds 1/2 once Put returns.
//
// None of the tables are goroutine-safe.
package phonebook

import "errors"

// maxLoadFactor is the highest tolerated ratio of non-empty slots
// (tombstones included) to capacity. Growth runs before an insertion that
// would exceed it.
const maxLoadFactor = 0.5

// ErrInvalidArgument is returned by Put when the key or the value is empty.
// It is the only error the tables produce; absent keys and values on Get
// and Delete are ordinary results, not errors.
var ErrInvalidArgument = errors.New("phonebook: empty key or value")

// KVPair is one key/value record. Pairs are copied, never aliased, when a
// resize or cluster repair relocates them.
type KVPair struct {
	Key   string
	Value string
}

// Probes reports the outcome of a single table operation: the value
// involved (inserted, found, or removed), whether there was one, and the
// exact number of probes - individual slot examinations - the operation
// performed. Count includes the probes spent by any resize, cluster repair,
// or rebuild the operation triggered.
//
// Found distinguishes absence structurally. An empty Value is never used as
// an absence sentinel.
type Probes struct {
	Value string
	Found bool
	Count int
}

// CapacitySource yields the prime capacities a table grows and shrinks
// through. prime.Generator is the stock implementation.
type CapacitySource interface {
	// Current returns the prime most recently handed out.
	Current() int
	// Next advances to and returns a strictly larger prime.
	Next() int
	// Previous steps back to and returns a strictly smaller prime, subject
	// to a floor below which the source refuses to shrink.
	Previous() int
}

// Table is the contract shared by every collision-resolution strategy.
type Table interface {
	// Put inserts the pair. It fails with ErrInvalidArgument, before any
	// mutation, if key or value is empty; otherwise it always succeeds and
	// reports the inserted value along with the probes performed, resize
	// cost included.
	Put(key, value string) (Probes, error)

	// Get reports the value stored under key. Count is at least 1 whenever
	// the home slot is examined.
	Get(key string) Probes

	// Delete removes the entry for key and reports the removed value, or a
	// not-found result if key is absent. Whether removal is soft or hard is
	// fixed at construction.
	Delete(key string) Probes

	// ContainsKey reports whether key is currently retrievable.
	ContainsKey(key string) bool

	// ContainsValue reports whether any live entry stores value. Tombstoned
	// slots never match.
	ContainsValue(value string) bool

	// Len returns the number of entries retrievable by their key.
	Len() int

	// Cap returns the current slot-array length, always prime.
	Cap() int

	// All calls yield for every live entry until yield returns false. It is
	// read-only: it never affects table state or probe counts.
	All(yield func(key, value string) bool)
}
