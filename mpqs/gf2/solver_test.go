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

package gf2

import "testing"

func xorColumns(columns [][]int, kernel []int) map[int]bool {
	parity := map[int]bool{}
	for _, idx := range kernel {
		for _, row := range columns[idx] {
			if parity[row] {
				delete(parity, row)
			} else {
				parity[row] = true
			}
		}
	}
	return parity
}

func TestGaussianFindsKernelVector(t *testing.T) {
	// 3 rows, 4 columns: guaranteed non-trivial null space.
	columns := [][]int{
		{0, 1},
		{1, 2},
		{0, 2},
		{0, 1, 2},
	}
	kernel, err := Gaussian{}.Solve(columns, 3, 1)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(kernel) == 0 {
		t.Fatalf("expected non-empty kernel vector")
	}
	parity := xorColumns(columns, kernel)
	if len(parity) != 0 {
		t.Fatalf("kernel vector does not XOR to zero: %v", parity)
	}
}

func TestGaussianTrivialNullSpaceErrors(t *testing.T) {
	// Two columns touching disjoint rows: only independent columns, no
	// combination sums to zero.
	columns := [][]int{{0}, {1}}
	if _, err := (Gaussian{}).Solve(columns, 2, 0); err == nil {
		t.Fatalf("expected error for trivial null space")
	}
}

func TestGaussianDifferentSeedsCanDifferButAlwaysValid(t *testing.T) {
	columns := [][]int{
		{0, 1},
		{1, 2},
		{0, 2},
		{0, 1, 2},
		{0},
		{1},
	}
	for seed := int64(0); seed < 5; seed++ {
		kernel, err := Gaussian{}.Solve(columns, 3, seed)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if parity := xorColumns(columns, kernel); len(parity) != 0 {
			t.Fatalf("seed %d: kernel vector invalid: %v", seed, parity)
		}
	}
}
