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

func TestBuildFactorBaseAscendingAndRooted(t *testing.T) {
	n := numeric.NewInt(8051)
	fb, err := BuildFactorBase(n, 50)
	if err != nil {
		t.Fatalf("BuildFactorBase: %v", err)
	}
	if fb.Entries[0].Prime.Int64() != 2 {
		t.Fatalf("first entry must be p=2, got %v", fb.Entries[0].Prime)
	}
	if len(fb.Entries[0].Roots) != 1 {
		t.Fatalf("p=2 must carry exactly one root, got %d", len(fb.Entries[0].Roots))
	}
	prev := fb.Entries[0].Prime
	for _, e := range fb.Entries[1:] {
		if e.Prime.Cmp(prev) <= 0 {
			t.Fatalf("factor base not strictly ascending at %v after %v", e.Prime, prev)
		}
		prev = e.Prime
		if len(e.Roots) != 2 {
			t.Fatalf("odd prime %v must carry two roots, got %d", e.Prime, len(e.Roots))
		}
		for _, r := range e.Roots {
			sq := r.Mul(r).Mod(e.Prime)
			if !sq.Equal(n.Mod(e.Prime)) {
				t.Fatalf("root %v of p=%v: %v^2 mod p = %v, want %v", r, e.Prime, r, sq, n.Mod(e.Prime))
			}
		}
	}
}

func TestBuildFactorBaseTooSmall(t *testing.T) {
	n := numeric.NewInt(15)
	if _, err := BuildFactorBase(n, 0); err == nil {
		t.Fatalf("expected ParametersTooSmall for bound=0")
	}
}
