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

package numeric

import "fmt"

// SqrtModPrime computes a square root of n modulo the odd prime p using
// the Tonelli-Shanks algorithm. The other root is p-r.
func SqrtModPrime(n, p *Int) (*Int, error) {
	if n.Jacobi(p) != 1 {
		return nil, fmt.Errorf("numeric: %v is not a quadratic residue mod %v", n, p)
	}
	if p.Equal(Two) {
		return n.Mod(Two), nil
	}
	// p - 1 = q * 2^s, q odd.
	s := 0
	q := p.Sub(One)
	for q.IsEven() {
		s++
		q = q.Div(Two)
	}
	if s == 1 {
		// p = 3 (mod 4): direct formula.
		return n.ModPow(p.Add(One).Div(NewInt(4)), p), nil
	}
	// Find a quadratic non-residue z.
	z := NewInt(2)
	for z.Jacobi(p) != -1 {
		z = z.Add(One)
	}
	c := z.ModPow(q, p)
	r := n.ModPow(q.Add(One).Div(Two), p)
	t := n.ModPow(q, p)
	m := s
	for !t.Equal(One) {
		// Find least i, 0 < i < m, with t^(2^i) = 1.
		i := 1
		tt := t.Mul(t).Mod(p)
		for !tt.Equal(One) {
			tt = tt.Mul(tt).Mod(p)
			i++
		}
		b := c.ModPow(Two.Pow(int64(m-i-1)), p)
		r = r.Mul(b).Mod(p)
		c = b.Mul(b).Mod(p)
		t = t.Mul(c).Mod(p)
		m = i
	}
	return r, nil
}

// SqrtModPrimePower computes a square root of n modulo p^e for an odd
// prime p by Hensel-lifting the root found modulo p. It assumes n is
// not divisible by p.
func SqrtModPrimePower(n, p *Int, e int) (*Int, error) {
	r, err := SqrtModPrime(n.Mod(p), p)
	if err != nil {
		return nil, err
	}
	mod := p
	for k := 1; k < e; k++ {
		mod = mod.Mul(p)
		// Newton lift: r' = r - (r^2 - n) * (2r)^-1 (mod p^(k+1)).
		inv := r.Mul(Two).ModInverse(mod)
		if inv == nil {
			return nil, fmt.Errorf("numeric: Hensel lift failed for %v mod %v", n, p)
		}
		delta := r.Mul(r).Sub(n).Mul(inv)
		r = r.Sub(delta).Mod(mod)
	}
	return r, nil
}
