//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package mpqs

import (
	"sort"
	"sync"

	"github.com/bfix/qsieve/internal/numeric"
)

// RelationStore deduplicates relations by their x key and prunes rows
// that can never cancel. It grows monotonically across polynomial
// iterations. The orchestrator sieves several polynomials of one
// family concurrently, so every method locks mu against concurrent
// Add calls landing while a Prune or BuildMatrix is in progress.
type RelationStore struct {
	mu    sync.Mutex
	byKey map[string]*Relation
	order []*Relation
}

func NewRelationStore() *RelationStore {
	return &RelationStore{byKey: make(map[string]*Relation)}
}

// Add inserts r unless its x key is already present. Returns true if
// the relation was newly inserted.
func (s *RelationStore) Add(r *Relation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := r.X.String()
	if _, ok := s.byKey[key]; ok {
		return false
	}
	s.byKey[key] = r
	s.order = append(s.order, r)
	return true
}

func (s *RelationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

func (s *RelationStore) Relations() []*Relation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Relation{}, s.order...)
}

// Prune iteratively removes every relation that holds a prime with odd
// exponent found in no other relation, since such a prime can never be
// cancelled by any GF(2) combination. Applying Prune to its own output
// is a no-op.
func (s *RelationStore) Prune() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
}

// pruneLocked is Prune's body, callable from BuildMatrix without
// double-locking mu.
func (s *RelationStore) pruneLocked() {
	for {
		oddCount := map[string]int{}
		for _, r := range s.order {
			for p, e := range r.Exponents {
				if e%2 != 0 {
					oddCount[p]++
				}
			}
		}
		unique := map[string]bool{}
		for p, c := range oddCount {
			if c == 1 {
				unique[p] = true
			}
		}
		if len(unique) == 0 {
			return
		}
		kept := s.order[:0:0]
		changed := false
		for _, r := range s.order {
			drop := false
			for p, e := range r.Exponents {
				if e%2 != 0 && unique[p] {
					drop = true
					break
				}
			}
			if drop {
				delete(s.byKey, r.X.String())
				changed = true
				continue
			}
			kept = append(kept, r)
		}
		s.order = kept
		if !changed {
			return
		}
	}
}

// Matrix is the dense row / sparse column GF(2) view of a pruned
// relation store: columns are relations, rows are the primes that
// actually occur with odd exponent somewhere, renumbered densely.
type Matrix struct {
	RowKeys   []string // row index -> prime key (or signKey)
	Columns   [][]int  // relation index -> sorted odd-exponent row indices
	Relations []*Relation
}

// Ready reports whether the matrix has strictly more columns than rows
// plus the solver's safety slack.
func (mx *Matrix) Ready(slack int) bool {
	return len(mx.Columns) > len(mx.RowKeys)+slack
}

// Cap bounds the harvested column count at limit, discarding the
// tail, to keep solver cost independent of how many relations the
// store happens to have accumulated.
func (mx *Matrix) Cap(limit int) {
	if limit >= 0 && len(mx.Columns) > limit {
		mx.Columns = mx.Columns[:limit]
		mx.Relations = mx.Relations[:limit]
	}
}

// BuildMatrix prunes the store and assembles a fresh Matrix from its
// current contents.
func (s *RelationStore) BuildMatrix() *Matrix {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()

	rowSet := map[string]bool{}
	for _, r := range s.order {
		for p, e := range r.Exponents {
			if e%2 != 0 {
				rowSet[p] = true
			}
		}
	}
	hasSign := rowSet[signKey]
	delete(rowSet, signKey)

	rest := make([]string, 0, len(rowSet))
	for p := range rowSet {
		rest = append(rest, p)
	}
	sort.Slice(rest, func(i, j int) bool {
		return numeric.FromString(rest[i]).Cmp(numeric.FromString(rest[j])) < 0
	})

	var keys []string
	if hasSign {
		keys = append(keys, signKey)
	}
	keys = append(keys, rest...)

	rowIndex := make(map[string]int, len(keys))
	for i, k := range keys {
		rowIndex[k] = i
	}

	cols := make([][]int, len(s.order))
	for j, r := range s.order {
		var col []int
		for p, e := range r.Exponents {
			if e%2 != 0 {
				col = append(col, rowIndex[p])
			}
		}
		sort.Ints(col)
		cols[j] = col
	}

	return &Matrix{RowKeys: keys, Columns: cols, Relations: append([]*Relation{}, s.order...)}
}
