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

// Package prime supplies the prime capacities the hash tables grow and
// shrink through. A Generator walks a doubling/halving sequence of primes:
// growing yields the smallest prime greater than twice the current one,
// shrinking yields the largest prime no greater than half of it, floored at
// the generator's starting prime.
package prime

import "fmt"

// DefaultStart is the capacity a Generator begins at unless told otherwise.
const DefaultStart = 13

// Generator is a stateful source of prime capacities. It is not
// goroutine-safe, and a single Generator must not be shared between tables
// since Next and Previous advance its state.
type Generator struct {
	start int
	cur   int
}

// NewGenerator returns a Generator starting at DefaultStart.
func NewGenerator() *Generator {
	return NewGeneratorAt(DefaultStart)
}

// NewGeneratorAt returns a Generator starting at the given prime, which is
// also the floor Previous will not shrink below. It panics if start is not
// prime; the starting capacity is a construction-time constant, not input.
func NewGeneratorAt(start int) *Generator {
	if start < 2 || !IsPrime(start) {
		panic(fmt.Sprintf("prime: starting capacity %d is not prime", start))
	}
	return &Generator{start: start, cur: start}
}

// Current returns the prime most recently handed out.
func (g *Generator) Current() int {
	return g.cur
}

// Next advances to and returns the smallest prime greater than twice the
// current one, slightly more than doubling the capacity each time.
func (g *Generator) Next() int {
	for c := 2*g.cur + 1; ; c++ {
		if IsPrime(c) {
			g.cur = c
			return g.cur
		}
	}
}

// Previous steps back to and returns the largest prime no greater than half
// the current one. It never goes below the starting prime; once there, it
// stays there.
func (g *Generator) Previous() int {
	for c := g.cur / 2; c >= g.start; c-- {
		if IsPrime(c) {
			g.cur = c
			return g.cur
		}
	}
	g.cur = g.start
	return g.cur
}

// IsPrime reports whether n is prime, by 6k+-1 trial division. Capacities
// stay far too small for anything cleverer to pay off.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	if n%3 == 0 {
		return n == 3
	}
	for f := 5; f*f <= n; f += 6 {
		if n%f == 0 || n%(f+2) == 0 {
			return false
		}
	}
	return true
}
