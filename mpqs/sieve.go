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

// logSieve subtracts floor(log2 p) at every modular root of every
// factor-base prime (two for odd p, one for p=2, and a single linear
// root when p|a), then returns the ascending
// indices i in [0, 2m] whose residual log-weight is at or below the
// threshold.
func logSieve(poly *Polynomial, fb *FactorBase, m int64, threshold int) ([]int64, error) {
	size := 2*m + 1
	s := make([]int32, size)
	for i := int64(0); i < size; i++ {
		t := i - m
		q := poly.Eval(t)
		if q.Sign() == 0 {
			return nil, fail(ErrInternalInconsistency, "Q(%d) vanished; n looks like a perfect square", t)
		}
		s[i] = int32(q.Abs().BitLen() - 1)
	}

	mm := numeric.NewInt(m)
	for _, e := range fb.Entries {
		p := e.Prime
		pInt := p.Int64()
		lg := int32(e.Log2P)

		if poly.A.Mod(p).Sign() != 0 {
			aInv := poly.A.ModInverse(p)
			if aInv == nil {
				return nil, fail(ErrInternalInconsistency, "a not invertible mod %v despite gcd(a,p)=1", p)
			}
			for _, r := range e.Roots {
				offset := r.Sub(poly.B).Mul(aInv)
				start := mm.Add(offset).Int64Mod(pInt)
				for pos := start; pos < size; pos += pInt {
					s[pos] -= lg
				}
			}
			continue
		}

		// p divides a: the quadratic degenerates to one linear root.
		twoB := poly.B.Mul(numeric.Two)
		inv := twoB.ModInverse(p)
		if inv == nil {
			return nil, fail(ErrInternalInconsistency, "2b not invertible mod %v though p|a", p)
		}
		start := mm.Sub(poly.C.Mul(inv)).Int64Mod(pInt)
		for pos := start; pos < size; pos += pInt {
			s[pos] -= lg
		}
	}

	var survivors []int64
	for i := int64(0); i < size; i++ {
		if s[i] <= int32(threshold) {
			survivors = append(survivors, i)
		}
	}
	return survivors, nil
}
