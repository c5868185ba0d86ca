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

// Package kvlist provides the collision chain used by the separate-chaining
// hash table: an ordered sequence of key/value pairs supporting append at
// the tail, find and remove by key, contains by key or value, and
// iteration. Find and remove report the number of probes they performed,
// one per node examined and never fewer than one, so that an empty chain
// still charges for inspecting the bucket.
package kvlist

import "github.com/emirpasic/gods/lists/singlylinkedlist"

// Pair is one key/value record in a chain.
type Pair struct {
	Key   string
	Value string
}

// List is a single collision chain. The zero value is not usable; call New.
type List struct {
	pairs *singlylinkedlist.List
}

// New returns an empty chain.
func New() *List {
	return &List{pairs: singlylinkedlist.New()}
}

// Append adds the pair at the tail. Duplicate keys are permitted; searches
// find the earliest.
func (l *List) Append(key, value string) {
	l.pairs.Add(Pair{Key: key, Value: value})
}

// Get scans for key and returns its value, the probes spent, and whether it
// was found.
func (l *List) Get(key string) (value string, probes int, ok bool) {
	it := l.pairs.Iterator()
	for it.Next() {
		probes++
		if p := it.Value().(Pair); p.Key == key {
			return p.Value, probes, true
		}
	}
	if probes == 0 {
		probes = 1
	}
	return "", probes, false
}

// RemoveKey scans for key, unlinks the first node holding it, and returns
// the removed value, the probes spent, and whether a node was removed.
func (l *List) RemoveKey(key string) (value string, probes int, ok bool) {
	it := l.pairs.Iterator()
	for it.Next() {
		probes++
		if p := it.Value().(Pair); p.Key == key {
			l.pairs.Remove(it.Index())
			return p.Value, probes, true
		}
	}
	if probes == 0 {
		probes = 1
	}
	return "", probes, false
}

// ContainsKey reports whether any node holds key.
func (l *List) ContainsKey(key string) bool {
	_, _, ok := l.Get(key)
	return ok
}

// ContainsValue reports whether any node stores value.
func (l *List) ContainsValue(value string) bool {
	found := false
	l.pairs.Each(func(_ int, v interface{}) {
		if v.(Pair).Value == value {
			found = true
		}
	})
	return found
}

// Each calls fn for every pair in chain order.
func (l *List) Each(fn func(p Pair)) {
	l.pairs.Each(func(_ int, v interface{}) {
		fn(v.(Pair))
	})
}

// Len returns the number of pairs in the chain.
func (l *List) Len() int {
	return l.pairs.Size()
}
