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

// Factor is one (prime, exponent) pair of a partial factorisation.
type Factor struct {
	Prime    *Int
	Exponent int
}

// TrialDivide strips every factor-base prime out of n and returns the
// exponents found together with the residual cofactor. primes must be
// ascending; n is assumed positive.
func TrialDivide(primes []*Int, n *Int) (factors []Factor, cofactor *Int) {
	cofactor = n
	for _, p := range primes {
		if cofactor.Equal(One) {
			break
		}
		e := 0
		for cofactor.Mod(p).Sign() == 0 {
			cofactor = cofactor.Div(p)
			e++
		}
		if e > 0 {
			factors = append(factors, Factor{Prime: p, Exponent: e})
		}
	}
	return
}
