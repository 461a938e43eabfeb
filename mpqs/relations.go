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

// signKey is the reserved row key for the implicit "prime -1" sentinel
// that tracks the sign of Q(t).
const signKey = "-1"

// ExponentVector maps a prime's decimal string (or signKey) to its
// exponent in a relation's factorisation. Exponents are non-negative
// except that signKey only ever holds 0 or a positive count whose
// parity is what matters.
type ExponentVector map[string]int

func (e ExponentVector) addAll(factors []numeric.Factor) {
	for _, f := range factors {
		e[f.Prime.String()] += f.Exponent
	}
}

func (e ExponentVector) merge(other ExponentVector) {
	for k, v := range other {
		e[k] += v
	}
}

// Relation pairs x = a*(i-m)+b with the exponent vector of a*Q(i-m)
// over the factor base; x^2 = (that product) (mod n). A relation built
// from two partials sharing a large prime carries the product of their
// x values and the sum of their exponent vectors.
type Relation struct {
	X         *numeric.Int
	Exponents ExponentVector
}

// extractRelations turns sieve survivors into relations: full
// trial-division over the factor base, classification into smooth,
// partial (single large prime) or discarded, and single-large-prime
// pairing within the block.
func extractRelations(poly *Polynomial, fb *FactorBase, m int64, survivors []int64, store *RelationStore) error {
	primes := fb.Primes()
	largest := fb.Largest()

	type partial struct {
		x    *numeric.Int
		exps ExponentVector
	}
	groups := map[string][]partial{}

	for _, i := range survivors {
		t := i - m
		q := poly.Eval(t)
		if q.Sign() == 0 {
			return fail(ErrInternalInconsistency, "Q(%d) vanished during extraction", t)
		}
		neg := q.Sign() < 0
		qa := q.Abs()

		factors, cof := numeric.TrialDivide(primes, qa)
		exps := ExponentVector{}
		if neg {
			exps[signKey] = 1
		}
		exps.addAll(factors)
		exps.addAll(poly.AFactors)
		x := poly.X(t)

		switch {
		case cof.Equal(numeric.One):
			store.Add(&Relation{X: x, Exponents: exps})
		case cof.Cmp(largest) > 0 && cof.ProbablyPrime(30):
			key := cof.String()
			exps[key] = 1 // the large prime itself; becomes even once paired
			groups[key] = append(groups[key], partial{x: x, exps: exps})
		default:
			// neither fully smooth nor a usable partial: discard.
		}
	}

	var bestKey string
	bestCount := 1 // need at least 2 partials sharing a large prime
	for key, g := range groups {
		if len(g) > bestCount {
			bestCount = len(g)
			bestKey = key
		}
	}
	if bestKey == "" {
		return nil
	}
	group := groups[bestKey]
	pivot := group[0]
	for _, other := range group[1:] {
		combined := ExponentVector{}
		combined.merge(pivot.exps)
		combined.merge(other.exps)
		store.Add(&Relation{X: pivot.x.Mul(other.x), Exponents: combined})
	}
	return nil
}
