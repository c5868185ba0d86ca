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
	"github.com/cespare/xxhash/v2"

	"github.com/haoranli17365/phonebook/prime"
)

type config struct {
	soft   bool
	hash   func(string) uint64
	primes CapacitySource
}

func defaultConfig() config {
	return config{
		hash:   xxhash.Sum64String,
		primes: prime.NewGenerator(),
	}
}

func applyOptions(options []Option) config {
	cfg := defaultConfig()
	for _, op := range options {
		op.apply(&cfg)
	}
	return cfg
}

// Option provides an interface to do work on a table's configuration while
// it is being created.
type Option interface {
	apply(cfg *config)
}

type softDeleteOption struct{}

func (softDeleteOption) apply(cfg *config) {
	cfg.soft = true
}

// SoftDelete is an option that makes Delete leave a tombstone in the slot
// instead of emptying it. The default is hard deletion, which empties the
// slot and repairs reachability. The chained table has no tombstone concept
// and ignores this option.
func SoftDelete() Option {
	return softDeleteOption{}
}

type hashOption struct {
	hash func(string) uint64
}

func (op hashOption) apply(cfg *config) {
	cfg.hash = op.hash
}

// WithHash is an option to specify the hash function mapping keys to raw
// hash codes. The default is xxhash. Tests inject degenerate hashes through
// this to force collisions deterministically.
func WithHash(hash func(key string) uint64) Option {
	return hashOption{hash}
}

type capacityOption struct {
	primes CapacitySource
}

func (op capacityOption) apply(cfg *config) {
	cfg.primes = op.primes
}

// WithCapacitySource is an option to specify the source of prime
// capacities. The default is prime.NewGenerator, which starts at
// prime.DefaultStart. A source must not be shared between tables: Next and
// Previous advance its state.
func WithCapacitySource(primes CapacitySource) Option {
	return capacityOption{primes}
}
