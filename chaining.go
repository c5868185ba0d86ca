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
	"math"

	"github.com/haoranli17365/phonebook/kvlist"
)

// Chained is the separate-chaining baseline: one kvlist chain per slot,
// entirely independent of the open-addressing machinery. It never resizes
// on its own - Enlarge and Shrink rebuild the slot array on demand - has no
// tombstones, and its Len is always an exact live count. Its probe counts
// calibrate the open-addressing strategies: an append is exactly one probe,
// and a search costs one probe per chain node examined.
type Chained struct {
	buckets []*kvlist.List
	count   int
	primes  CapacitySource
	hash    func(string) uint64
}

var _ Table = (*Chained)(nil)

// NewChained constructs an empty separate-chaining table sized to its
// capacity source's current prime. SoftDelete is meaningless here and is
// ignored.
func NewChained(options ...Option) *Chained {
	cfg := applyOptions(options)
	t := &Chained{
		primes: cfg.primes,
		hash:   cfg.hash,
	}
	t.buckets = newBuckets(t.primes.Current())
	return t
}

func newBuckets(n int) []*kvlist.List {
	buckets := make([]*kvlist.List, n)
	for i := range buckets {
		buckets[i] = kvlist.New()
	}
	return buckets
}

func (t *Chained) home(key string) int {
	return int((t.hash(key) & math.MaxInt64) % uint64(len(t.buckets)))
}

// Put appends the pair to its bucket's chain unconditionally, for exactly
// one probe. Duplicate keys are permitted; Get and Delete operate on the
// earliest.
func (t *Chained) Put(key, value string) (Probes, error) {
	if key == "" || value == "" {
		return Probes{}, ErrInvalidArgument
	}
	t.buckets[t.home(key)].Append(key, value)
	t.count++
	return Probes{Value: value, Found: true, Count: 1}, nil
}

// Get delegates to a linear scan of the key's chain.
func (t *Chained) Get(key string) Probes {
	value, probes, ok := t.buckets[t.home(key)].Get(key)
	return Probes{Value: value, Found: ok, Count: probes}
}

// Delete unlinks the first chain node holding key.
func (t *Chained) Delete(key string) Probes {
	value, probes, ok := t.buckets[t.home(key)].RemoveKey(key)
	if ok {
		t.count--
	}
	return Probes{Value: value, Found: ok, Count: probes}
}

// ContainsKey reports whether key is present in its chain.
func (t *Chained) ContainsKey(key string) bool {
	return t.buckets[t.home(key)].ContainsKey(key)
}

// ContainsValue scans every chain for value.
func (t *Chained) ContainsValue(value string) bool {
	for _, b := range t.buckets {
		if b.ContainsValue(value) {
			return true
		}
	}
	return false
}

// Len returns the exact number of stored pairs.
func (t *Chained) Len() int {
	return t.count
}

// Cap returns the number of buckets, always prime.
func (t *Chained) Cap() int {
	return len(t.buckets)
}

// All calls yield for every pair, bucket by bucket, until yield returns
// false.
func (t *Chained) All(yield func(key, value string) bool) {
	for _, b := range t.buckets {
		stop := false
		b.Each(func(p kvlist.Pair) {
			if !stop && !yield(p.Key, p.Value) {
				stop = true
			}
		})
		if stop {
			return
		}
	}
}

// Enlarge rebuilds the bucket array at the capacity source's next prime,
// redistributing every pair.
func (t *Chained) Enlarge() {
	t.rebuildAt(t.primes.Next())
}

// Shrink rebuilds the bucket array at the capacity source's previous prime,
// redistributing every pair. The source's floor keeps the table from
// shrinking without bound.
func (t *Chained) Shrink() {
	t.rebuildAt(t.primes.Previous())
}

func (t *Chained) rebuildAt(capacity int) {
	pairs := make([]kvlist.Pair, 0, t.count)
	for _, b := range t.buckets {
		b.Each(func(p kvlist.Pair) {
			pairs = append(pairs, p)
		})
	}
	t.buckets = newBuckets(capacity)
	t.count = 0
	for _, p := range pairs {
		// Pairs were validated when first stored, so Put cannot fail.
		t.Put(p.Key, p.Value)
	}
}
