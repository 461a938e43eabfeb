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

// Package numeric supplies the arbitrary-precision arithmetic primitives
// the sieve core is built on: a thin wrapper around math/big plus the
// number-theoretic helpers (primality, modular square roots, Jacobi
// symbols) that the rest of the module treats as given.
package numeric

import (
	"math/big"
)

var (
	// Zero is the Int constant 0.
	Zero = NewInt(0)
	// One is the Int constant 1.
	One = NewInt(1)
	// Two is the Int constant 2.
	Two = NewInt(2)
)

// Int is an arbitrary-precision integer. Every operation returns a new
// value; receivers are never mutated.
type Int struct {
	v *big.Int
}

// NewInt wraps a machine integer.
func NewInt(v int64) *Int {
	return &Int{v: big.NewInt(v)}
}

// FromString parses a base-10 integer literal. Panics on malformed input;
// callers pass configuration and test fixtures, not untrusted data.
func FromString(s string) *Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("numeric: not an integer: " + s)
	}
	return &Int{v: v}
}

// Big returns the underlying big.Int. The caller must not mutate it.
func (i *Int) Big() *big.Int { return i.v }

func (i *Int) String() string { return i.v.String() }

func (i *Int) Int64() int64 { return i.v.Int64() }

func (i *Int) BitLen() int { return i.v.BitLen() }

func (i *Int) Bit(n int) uint { return i.v.Bit(n) }

func (i *Int) Sign() int { return i.v.Sign() }

func (i *Int) IsEven() bool { return i.v.Bit(0) == 0 }

func (i *Int) Add(j *Int) *Int { return &Int{new(big.Int).Add(i.v, j.v)} }

func (i *Int) Sub(j *Int) *Int { return &Int{new(big.Int).Sub(i.v, j.v)} }

func (i *Int) Mul(j *Int) *Int { return &Int{new(big.Int).Mul(i.v, j.v)} }

func (i *Int) Div(j *Int) *Int { return &Int{new(big.Int).Div(i.v, j.v)} }

// Mod returns the Euclidean (always non-negative) remainder of i/j.
func (i *Int) Mod(j *Int) *Int { return &Int{new(big.Int).Mod(i.v, j.v)} }

func (i *Int) Abs() *Int { return &Int{new(big.Int).Abs(i.v)} }

func (i *Int) Neg() *Int { return &Int{new(big.Int).Neg(i.v)} }

func (i *Int) Cmp(j *Int) int { return i.v.Cmp(j.v) }

func (i *Int) Equal(j *Int) bool { return i.v.Cmp(j.v) == 0 }

func (i *Int) GCD(j *Int) *Int {
	a := new(big.Int).Abs(i.v)
	b := new(big.Int).Abs(j.v)
	return &Int{new(big.Int).GCD(nil, nil, a, b)}
}

func (i *Int) Pow(n int64) *Int { return &Int{new(big.Int).Exp(i.v, big.NewInt(n), nil)} }

func (i *Int) ModPow(n, m *Int) *Int { return &Int{new(big.Int).Exp(i.v, n.v, m.v)} }

// ModInverse returns the multiplicative inverse of i in Z/mZ, or nil if
// i and m are not coprime.
func (i *Int) ModInverse(m *Int) *Int {
	r := new(big.Int).ModInverse(i.v, m.v)
	if r == nil {
		return nil
	}
	return &Int{r}
}

// Int64Mod reduces i modulo the small modulus m and returns a plain
// machine integer. The sieve uses this for every per-prime offset it
// computes, since the modulus there is always a factor-base prime and
// fits comfortably in a word.
func (i *Int) Int64Mod(m int64) int64 {
	return new(big.Int).Mod(i.v, big.NewInt(m)).Int64()
}

// Sqrt returns the integer (floor) square root of i.
func (i *Int) Sqrt() *Int { return &Int{new(big.Int).Sqrt(i.v)} }

// IsPerfectSquare reports whether i is the square of an integer.
func (i *Int) IsPerfectSquare() bool {
	if i.Sign() < 0 {
		return false
	}
	r := i.Sqrt()
	return r.Mul(r).Equal(i)
}

// ProbablyPrime reports whether i is prime with error probability at
// most 2^-n.
func (i *Int) ProbablyPrime(n int) bool { return i.v.ProbablyPrime(n) }

// NextPrime returns the smallest probable prime strictly greater than i.
func (i *Int) NextPrime() *Int {
	c := i.Add(One)
	if c.Cmp(Two) <= 0 {
		return Two
	}
	if c.IsEven() {
		c = c.Add(One)
	}
	for !c.ProbablyPrime(32) {
		c = c.Add(Two)
	}
	return c
}

// PrevPrime returns the largest probable prime strictly less than i, or
// nil if none exists (i <= 2).
func (i *Int) PrevPrime() *Int {
	c := i.Sub(One)
	if c.Cmp(Two) < 0 {
		return nil
	}
	if c.Equal(Two) {
		return Two
	}
	if c.IsEven() {
		c = c.Sub(One)
	}
	for c.Cmp(Two) > 0 && !c.ProbablyPrime(32) {
		c = c.Sub(Two)
	}
	if !c.ProbablyPrime(32) {
		return nil
	}
	return c
}

// Jacobi computes the Jacobi symbol (i/p) for odd positive p. It
// generalises the Legendre symbol used to admit primes into the factor
// base and reduces to it whenever p is prime.
func (i *Int) Jacobi(p *Int) int { return big.Jacobi(i.v, p.v) }

// Float64 converts i to a float64, losing precision for very large
// values. Used only for sizing heuristics, never for exact arithmetic.
func (i *Int) Float64() float64 {
	f := new(big.Float).SetInt(i.v)
	v, _ := f.Float64()
	return v
}
