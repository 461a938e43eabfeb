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

// Package gf2 defines the sparse GF(2) linear-solver interface the
// kernel driver depends on, plus a structured-Gaussian-elimination
// default implementation. A production deployment would swap this for
// block Lanczos; the interface is what the rest of the sieve core
// actually depends on.
package gf2

import (
	"fmt"
	"math/rand"
	"sort"
)

// Solver finds a non-empty set of columns whose GF(2) sum is zero.
// Successive calls with different seeds should, where the null space
// has more than one dimension, tend to return different vectors so a
// caller can retry past a trivial (x ≡ ±y mod n) solution.
type Solver interface {
	Solve(columns [][]int, numRows int, seed int64) ([]int, error)
}

// Gaussian is the package's default Solver: one pass of structured
// Gaussian elimination over GF(2), reducing each column against the
// pivot already held for its lowest remaining row — the same
// reduce-against-existing-row idiom a trial-division relation solver
// uses, just with XOR standing in for multiply. Every column that
// reduces to the zero vector is a valid kernel vector; the seed both
// permutes the processing order and selects which of the (possibly
// many) kernel vectors found to return.
type Gaussian struct{}

type pivotCol struct {
	rows  map[int]bool
	combo map[int]bool
}

func (Gaussian) Solve(columns [][]int, numRows int, seed int64) ([]int, error) {
	order := rand.New(rand.NewSource(seed)).Perm(len(columns))

	pivots := make(map[int]*pivotCol)
	var kernels [][]int

	for _, idx := range order {
		rows := map[int]bool{}
		for _, r := range columns[idx] {
			rows[r] = true
		}
		combo := map[int]bool{idx: true}

		for len(rows) > 0 {
			pivotRow := minKey(rows)
			piv, ok := pivots[pivotRow]
			if !ok {
				break
			}
			xorInto(rows, piv.rows)
			xorInto(combo, piv.combo)
		}

		if len(rows) == 0 {
			kernels = append(kernels, comboKeys(combo))
			continue
		}
		pivots[minKey(rows)] = &pivotCol{rows: rows, combo: combo}
	}

	if len(kernels) == 0 {
		return nil, fmt.Errorf("gf2: matrix has trivial null space over %d columns", len(columns))
	}
	n := len(kernels)
	sel := int(((seed % int64(n)) + int64(n)) % int64(n))
	return kernels[sel], nil
}

func minKey(m map[int]bool) int {
	min := -1
	for k := range m {
		if min == -1 || k < min {
			min = k
		}
	}
	return min
}

func xorInto(dst, src map[int]bool) {
	for k := range src {
		if dst[k] {
			delete(dst, k)
		} else {
			dst[k] = true
		}
	}
}

func comboKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
