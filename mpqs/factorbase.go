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

import "github.com/bfix/qsieve/internal/numeric"

// FactorBaseEntry is one admitted prime together with its precomputed
// modular square roots of n and the integer log2 used by the sieve.
// Primes other than 2 always carry both roots; 2 carries a single
// canonical root, mirroring a generic modular-square-root primitive
// that returns at most one solution for p=2.
type FactorBaseEntry struct {
	Prime *numeric.Int
	Roots []*numeric.Int
	Log2P int
}

// FactorBase is the ordered list of primes p <= B with (n/p) = +1 (plus
// p=2), against which smoothness is judged. Row index 0 of any
// exponent vector is reserved for the implicit sign sentinel "-1" and
// is never stored here.
type FactorBase struct {
	N       *numeric.Int
	Entries []FactorBaseEntry
}

// BuildFactorBase enumerates every prime p <= bound admissible for n
// and precomputes its roots. It fails with ErrParametersTooSmall if no
// odd prime qualifies.
func BuildFactorBase(n *numeric.Int, bound int64) (*FactorBase, error) {
	fb := &FactorBase{N: n}

	// p=2 never goes through the general Tonelli-Shanks/Hensel path: n is
	// odd, so its only root mod 2 is 1, and the sieve needs nothing finer
	// than that single residue.
	fb.Entries = append(fb.Entries, FactorBaseEntry{
		Prime: numeric.Two,
		Roots: []*numeric.Int{numeric.One},
		Log2P: 1,
	})

	limit := numeric.NewInt(bound)
	odd := 0
	for p := numeric.NewInt(3); p.Cmp(limit) <= 0; p = p.NextPrime() {
		if n.Jacobi(p) != 1 {
			continue
		}
		r, err := numeric.SqrtModPrime(n.Mod(p), p)
		if err != nil {
			continue
		}
		fb.Entries = append(fb.Entries, FactorBaseEntry{
			Prime: p,
			Roots: []*numeric.Int{r, p.Sub(r)},
			Log2P: p.BitLen() - 1,
		})
		odd++
	}
	if odd < 1 {
		return nil, fail(ErrParametersTooSmall, "no prime <= %d admits n as a quadratic residue", bound)
	}
	return fb, nil
}

// Largest returns the largest prime in the factor base, used to decide
// whether a sieve-survivor cofactor is a large prime candidate.
func (fb *FactorBase) Largest() *numeric.Int {
	return fb.Entries[len(fb.Entries)-1].Prime
}

// Primes returns the bare prime list in ascending order.
func (fb *FactorBase) Primes() []*numeric.Int {
	out := make([]*numeric.Int, len(fb.Entries))
	for i, e := range fb.Entries {
		out[i] = e.Prime
	}
	return out
}
