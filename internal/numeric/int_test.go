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

import "testing"

func TestGCDDoesNotMutateOperands(t *testing.T) {
	a := NewInt(-12)
	b := NewInt(18)
	g := a.GCD(b)
	if g.Int64() != 6 {
		t.Fatalf("GCD(-12,18) = %v, want 6", g)
	}
	if a.Int64() != -12 {
		t.Fatalf("a mutated by GCD: got %v", a)
	}
	if b.Int64() != 18 {
		t.Fatalf("b mutated by GCD: got %v", b)
	}
}

func TestIsPerfectSquare(t *testing.T) {
	cases := map[int64]bool{
		0: true, 1: true, 4: true, 9: true, 10000: true,
		2: false, 3: false, 10001: false,
	}
	for v, want := range cases {
		if got := NewInt(v).IsPerfectSquare(); got != want {
			t.Errorf("IsPerfectSquare(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestNextPrevPrime(t *testing.T) {
	n := NewInt(100)
	next := n.NextPrime()
	if next.Int64() != 101 {
		t.Fatalf("NextPrime(100) = %v, want 101", next)
	}
	prev := n.PrevPrime()
	if prev.Int64() != 97 {
		t.Fatalf("PrevPrime(100) = %v, want 97", prev)
	}
	if Two.PrevPrime() != nil {
		t.Fatalf("PrevPrime(2) should be nil")
	}
}

func TestSqrtModPrime(t *testing.T) {
	p := NewInt(10007)
	for _, n := range []int64{2, 3, 4, 17, 9999} {
		nn := NewInt(n)
		if nn.Jacobi(p) != 1 {
			continue
		}
		r, err := SqrtModPrime(nn, p)
		if err != nil {
			t.Fatalf("SqrtModPrime(%d,%d): %v", n, 10007, err)
		}
		if !r.Mul(r).Mod(p).Equal(nn.Mod(p)) {
			t.Fatalf("sqrt(%d) mod %d: %v^2 != %d", n, 10007, r, n)
		}
	}
}

func TestSqrtModPrimePower(t *testing.T) {
	p := NewInt(101)
	n := NewInt(12345)
	r, err := SqrtModPrimePower(n, p, 2)
	if err != nil {
		t.Fatalf("SqrtModPrimePower: %v", err)
	}
	pe := p.Mul(p)
	if !r.Mul(r).Mod(pe).Equal(n.Mod(pe)) {
		t.Fatalf("lifted root wrong: r=%v, r^2 mod p^2=%v, n mod p^2=%v", r, r.Mul(r).Mod(pe), n.Mod(pe))
	}
}

func TestTrialDivide(t *testing.T) {
	primes := []*Int{NewInt(2), NewInt(3), NewInt(5)}
	factors, cof := TrialDivide(primes, NewInt(360)) // 2^3*3^2*5
	got := map[string]int{}
	for _, f := range factors {
		got[f.Prime.String()] = f.Exponent
	}
	if got["2"] != 3 || got["3"] != 2 || got["5"] != 1 {
		t.Fatalf("unexpected factorisation: %v", got)
	}
	if !cof.Equal(One) {
		t.Fatalf("cofactor = %v, want 1", cof)
	}

	_, cof2 := TrialDivide(primes, NewInt(360*17))
	if cof2.Int64() != 17 {
		t.Fatalf("cofactor = %v, want 17", cof2)
	}
}
