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

// Command phonebook loads a comma-separated name,number file into one of
// the hash table implementations and reports probe statistics for the
// insert and lookup passes, followed by a name-sorted directory listing.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/btree"

	"github.com/haoranli17365/phonebook"
)

var (
	file    = flag.String("file", "", "path to a name,number entries file")
	backend = flag.String("table", "linear", "table backend: linear, ordered, quadratic, chained")
	soft    = flag.Bool("soft", false, "use tombstone deletion instead of hard deletion")
	remove  = flag.String("delete", "", "comma-separated names to delete after loading")
	list    = flag.Bool("list", true, "print the sorted directory after loading")
)

func newTable(name string, opts ...phonebook.Option) (phonebook.Table, error) {
	switch name {
	case "linear":
		return phonebook.NewLinear(opts...), nil
	case "ordered":
		return phonebook.NewOrderedLinear(opts...), nil
	case "quadratic":
		return phonebook.NewQuadratic(opts...), nil
	case "chained":
		return phonebook.NewChained(opts...), nil
	default:
		return nil, fmt.Errorf("unknown table backend %q", name)
	}
}

func load(t phonebook.Table, path string) (entries, probes int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, number, ok := strings.Cut(line, ",")
		if !ok {
			return entries, probes, fmt.Errorf("malformed entry %q", line)
		}
		r, err := t.Put(strings.TrimSpace(name), strings.TrimSpace(number))
		if err != nil {
			return entries, probes, fmt.Errorf("put %q: %w", name, err)
		}
		entries++
		probes += r.Count
	}
	return entries, probes, s.Err()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("phonebook: ")
	flag.Parse()
	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	var opts []phonebook.Option
	if *soft {
		opts = append(opts, phonebook.SoftDelete())
	}
	t, err := newTable(*backend, opts...)
	if err != nil {
		log.Fatal(err)
	}

	entries, putProbes, err := load(t, *file)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("loaded %d entries into %s table (capacity %d), %d probes (%.2f/entry)\n",
		entries, *backend, t.Cap(), putProbes, avg(putProbes, entries))

	if *remove != "" {
		var delProbes, deleted int
		for _, name := range strings.Split(*remove, ",") {
			r := t.Delete(strings.TrimSpace(name))
			delProbes += r.Count
			if r.Found {
				deleted++
			}
		}
		fmt.Printf("deleted %d entries, %d probes\n", deleted, delProbes)
	}

	var getProbes, looked int
	directory := btree.NewG(2, func(a, b phonebook.KVPair) bool { return a.Key < b.Key })
	t.All(func(key, value string) bool {
		looked++
		getProbes += t.Get(key).Count
		directory.ReplaceOrInsert(phonebook.KVPair{Key: key, Value: value})
		return true
	})
	fmt.Printf("%d lookups, %d probes (%.2f/lookup)\n", looked, getProbes, avg(getProbes, looked))

	if *list {
		directory.Ascend(func(p phonebook.KVPair) bool {
			fmt.Printf("  %s\t%s\n", p.Key, p.Value)
			return true
		})
	}
}

func avg(total, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}
