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
	"math"

	"github.com/bfix/qsieve/internal/numeric"
)

// Config holds the four tunable parameters of the sieve. All fields are
// required; AutoConfig derives sensible defaults from the decimal size
// of the target.
type Config struct {
	// FactorBaseBound (B) is the upper bound on factor-base primes.
	FactorBaseBound int64
	// SievingHalfWidth (m) makes the sieve interval [-m, m].
	SievingHalfWidth int64
	// PolynomialExponent (k) is the number of prime factors of the
	// self-initialising leading coefficient a. k=0 selects classical
	// single-polynomial QS.
	PolynomialExponent int
	// LogThreshold (h) is the maximum log-residue a sieve cell may
	// retain and still count as a survivor.
	LogThreshold int
}

// widen grows B and m after the solver exhausts its attempt budget
// without producing a kernel vector, per the orchestrator's Widen
// state. k and h are left untouched.
func (c Config) widen() Config {
	step := int64(50 * (c.PolynomialExponent + 1))
	c.FactorBaseBound += step
	c.SievingHalfWidth += step * int64(c.PolynomialExponent+1)
	return c
}

// AutoConfig derives a Config purely from n's decimal size. Equal n
// always yields bit-identical configurations.
func AutoConfig(n *numeric.Int) Config {
	L := decimalDigits(n)
	var b *numeric.Int
	switch {
	case L < 4:
		b = n.Div(numeric.Two)
	case L < 8:
		b = n.Sqrt()
	default:
		le := float64(L) * math.Log(10)
		scale := math.Max(float64(41-L), 1)
		inner := math.Exp(0.5 * math.Sqrt(le*math.Log(le)))
		b = numeric.NewInt(int64(scale * inner))
	}
	if b.Sign() < 1 {
		b = numeric.One
	}
	k := L / 10
	h := 6
	if b.BitLen() > 0 {
		h += b.BitLen() - 1
	}
	return Config{
		FactorBaseBound:    b.Int64(),
		SievingHalfWidth:   b.Int64(),
		PolynomialExponent: k,
		LogThreshold:       h,
	}
}

// decimalDigits returns floor(log10 n) for positive n: one less than
// its decimal digit count.
func decimalDigits(n *numeric.Int) int {
	s := n.Abs().String()
	return len(s) - 1
}
