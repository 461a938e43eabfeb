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
	"testing"

	"github.com/bfix/qsieve/internal/numeric"
)

func mkRelation(x int64, exps map[string]int) *Relation {
	return &Relation{X: numeric.NewInt(x), Exponents: ExponentVector(exps)}
}

func TestPruneRemovesUniquePrimes(t *testing.T) {
	s := NewRelationStore()
	s.Add(mkRelation(1, map[string]int{"2": 1, "3": 1}))
	s.Add(mkRelation(2, map[string]int{"3": 1, "5": 1})) // "2" seen only in relation 1
	s.Prune()
	if s.Len() != 0 {
		t.Fatalf("expected both relations pruned (2 and 5 each unique), got %d", s.Len())
	}
}

func TestPruneKeepsCancellingPrimes(t *testing.T) {
	s := NewRelationStore()
	s.Add(mkRelation(1, map[string]int{"2": 1, "3": 1}))
	s.Add(mkRelation(2, map[string]int{"2": 1, "5": 1}))
	s.Add(mkRelation(3, map[string]int{"3": 1, "5": 1}))
	s.Prune()
	if s.Len() != 3 {
		t.Fatalf("expected all 3 relations to survive (every prime shared), got %d", s.Len())
	}
}

func TestPruneIdempotent(t *testing.T) {
	s := NewRelationStore()
	s.Add(mkRelation(1, map[string]int{"2": 1, "3": 1}))
	s.Add(mkRelation(2, map[string]int{"3": 1, "5": 1}))
	s.Add(mkRelation(3, map[string]int{"5": 1, "7": 1}))
	s.Prune()
	first := s.Len()
	s.Prune()
	if s.Len() != first {
		t.Fatalf("second Prune changed length: %d -> %d", first, s.Len())
	}
}

func TestBuildMatrixDenseRowsAndParity(t *testing.T) {
	s := NewRelationStore()
	s.Add(mkRelation(1, map[string]int{"2": 1, "3": 1}))
	s.Add(mkRelation(2, map[string]int{"2": 1, "5": 1}))
	s.Add(mkRelation(3, map[string]int{"3": 1, "5": 1}))
	mx := s.BuildMatrix()
	if len(mx.RowKeys) != 3 {
		t.Fatalf("expected 3 distinct primes as rows, got %d: %v", len(mx.RowKeys), mx.RowKeys)
	}
	if len(mx.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(mx.Columns))
	}
	// XOR of all three columns must be the zero vector (each prime appears
	// in exactly two of the three relations).
	parity := map[int]bool{}
	for _, col := range mx.Columns {
		for _, row := range col {
			if parity[row] {
				delete(parity, row)
			} else {
				parity[row] = true
			}
		}
	}
	if len(parity) != 0 {
		t.Fatalf("expected zero parity vector across all columns, got %v", parity)
	}
}

func TestMatrixReadyAndCap(t *testing.T) {
	rels := []*Relation{mkRelation(1, nil), mkRelation(2, nil), mkRelation(3, nil), mkRelation(4, nil), mkRelation(5, nil)}
	mx := &Matrix{RowKeys: []string{"a", "b"}, Columns: [][]int{{0}, {1}, {0, 1}, {0}, {1}}, Relations: rels}
	if mx.Ready(3) {
		t.Fatalf("5 columns, 2 rows, slack 3: should not be ready")
	}
	if !mx.Ready(1) {
		t.Fatalf("5 columns, 2 rows, slack 1: should be ready")
	}
	mx.Cap(3)
	if len(mx.Columns) != 3 {
		t.Fatalf("Cap(3) left %d columns", len(mx.Columns))
	}
}
