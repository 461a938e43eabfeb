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
	"sort"

	"github.com/bfix/qsieve/internal/numeric"
)

// wordBound is the largest prime self-initialisation is willing to
// fold into a: it must fit comfortably in a machine word so that the
// sieve's per-prime offset arithmetic stays in plain int64.
var wordBound = numeric.NewInt(1 << 62)

// Polynomial is one member Q(t) = a*t^2 + 2*b*t + c of a self-init
// family: a single leading coefficient a reused across many b's.
// a*Q(t) equals (a*t+b)^2 - n.
type Polynomial struct {
	A, B, C  *numeric.Int
	AFactors []numeric.Factor // decomposition of a; every exponent is 2
}

// Eval returns Q(t) = a*t^2 + 2*b*t + c, the small value that is
// actually sieved and trial-divided.
func (p *Polynomial) Eval(t int64) *numeric.Int {
	tt := numeric.NewInt(t)
	return p.A.Mul(tt).Mul(tt).Add(p.B.Mul(numeric.Two).Mul(tt)).Add(p.C)
}

// X returns a*t + b, the square-root argument whose square is
// congruent to a*Q(t) (mod n).
func (p *Polynomial) X(t int64) *numeric.Int {
	return p.A.Mul(numeric.NewInt(t)).Add(p.B)
}

// family is one leading coefficient a together with every admissible b.
type family struct {
	a       *numeric.Int
	factors []numeric.Factor
	primes  []*numeric.Int // ascending, same primes as factors
	bs      []*numeric.Int
}

// polyGenerator drives the polynomial family's self-initialisation
// state machine: pick a, enumerate all compatible b, and on exhaustion
// either jump from the k=0 trivial polynomial to k=1, or swap the
// smallest prime factor of a for the next suitable prime above the
// current maximum.
type polyGenerator struct {
	n       *numeric.Int
	m       int64
	k       int
	primes  []*numeric.Int // nil while on the k=0 trivial family
	current *family
}

func newPolyGenerator(n *numeric.Int, m int64, k int) *polyGenerator {
	return &polyGenerator{n: n, m: m, k: k}
}

// next returns the next (a, {b}) family, advancing internal state.
func (g *polyGenerator) next() (*family, error) {
	if g.current == nil {
		if g.k == 0 {
			g.current = trivialFamily()
			g.primes = nil
			return g.current, nil
		}
		primes, err := g.pickPrimes(g.k)
		if err != nil {
			return nil, err
		}
		fam, err := buildFamily(g.n, primes)
		if err != nil {
			return nil, err
		}
		g.primes, g.current = primes, fam
		return fam, nil
	}

	if g.primes == nil {
		// Was on the classical k=0 polynomial: jump to k=1.
		g.k = 1
		primes, err := g.pickPrimes(1)
		if err != nil {
			return nil, err
		}
		fam, err := buildFamily(g.n, primes)
		if err != nil {
			return nil, err
		}
		g.primes, g.current = primes, fam
		return fam, nil
	}

	// Drop the smallest prime factor of a, extend with the next
	// suitable prime strictly above the current maximum.
	rest := append([]*numeric.Int{}, g.primes[1:]...)
	maxP := g.primes[len(g.primes)-1]
	next := maxP
	for {
		next = next.NextPrime()
		if next.Cmp(wordBound) >= 0 {
			return nil, fail(ErrParametersTooSmall, "exhausted suitable primes for a near word size")
		}
		if g.n.Jacobi(next) == 1 {
			break
		}
	}
	newPrimes := append(rest, next)
	fam, err := buildFamily(g.n, newPrimes)
	if err != nil {
		return nil, err
	}
	g.primes, g.current = newPrimes, fam
	return fam, nil
}

func trivialFamily() *family {
	return &family{
		a:  numeric.One,
		bs: []*numeric.Int{numeric.Zero},
	}
}

// pickPrimes chooses k primes near the target size q* = floor(((2n)/m^2)^(1/4k)),
// half just below and half just above, each satisfying Jacobi(n,p)=+1
// and fitting a machine word.
func (g *polyGenerator) pickPrimes(k int) ([]*numeric.Int, error) {
	qstar := targetPrimeSize(g.n, g.m, k)
	below := k / 2
	above := k - below

	var picked []*numeric.Int
	cur := numeric.NewInt(qstar)
	for n := 0; n < below; {
		cur = cur.PrevPrime()
		if cur == nil || cur.Cmp(numeric.Two) <= 0 {
			return nil, fail(ErrParametersTooSmall, "could not find %d primes below q*=%d", below, qstar)
		}
		if g.n.Jacobi(cur) == 1 {
			picked = append(picked, cur)
			n++
		}
	}
	cur2 := numeric.NewInt(qstar)
	for n := 0; n < above; {
		cur2 = cur2.NextPrime()
		if cur2.Cmp(wordBound) >= 0 {
			return nil, fail(ErrParametersTooSmall, "could not find %d primes above q*=%d", above, qstar)
		}
		if g.n.Jacobi(cur2) == 1 {
			picked = append(picked, cur2)
			n++
		}
	}
	sort.Slice(picked, func(i, j int) bool { return picked[i].Cmp(picked[j]) < 0 })
	return picked, nil
}

// targetPrimeSize computes q* = floor(((2n)/m^2)^(1/(4k))), treating a
// ratio below 1 as 1 and never returning less than 3.
func targetPrimeSize(n *numeric.Int, m int64, k int) int64 {
	mm := numeric.NewInt(m).Mul(numeric.NewInt(m))
	ratio := n.Mul(numeric.Two).Float64() / mm.Float64()
	if ratio < 1 {
		ratio = 1
	}
	q := math.Pow(ratio, 1.0/float64(4*k))
	if q < 3 {
		q = 3
	}
	return int64(q)
}

// buildFamily forms a = prod(p_i^2) and enumerates every b with
// b^2 = n (mod a), b <= a/2, by lifting each prime's root to p_i^2 via
// Hensel's method and combining every sign choice with CRT.
func buildFamily(n *numeric.Int, primes []*numeric.Int) (*family, error) {
	a := numeric.One
	var factors []numeric.Factor
	moduli := make([]*numeric.Int, len(primes))
	roots := make([][2]*numeric.Int, len(primes))
	for idx, p := range primes {
		pe := p.Mul(p)
		a = a.Mul(pe)
		factors = append(factors, numeric.Factor{Prime: p, Exponent: 2})
		moduli[idx] = pe
		r, err := numeric.SqrtModPrimePower(n, p, 2)
		if err != nil {
			return nil, fail(ErrInternalInconsistency, "cannot lift sqrt(n) mod %v^2: %v", p, err)
		}
		r = r.Mod(pe)
		roots[idx] = [2]*numeric.Int{r, pe.Sub(r)}
	}

	half := a.Div(numeric.Two)
	seen := map[string]bool{}
	var bs []*numeric.Int
	combos := 1 << len(primes)
	for mask := 0; mask < combos; mask++ {
		residues := make([]*numeric.Int, len(primes))
		for idx := range primes {
			if mask&(1<<idx) != 0 {
				residues[idx] = roots[idx][1]
			} else {
				residues[idx] = roots[idx][0]
			}
		}
		b := crt(residues, moduli)
		if b.Sign() <= 0 || b.Cmp(half) > 0 {
			continue
		}
		key := b.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		bs = append(bs, b)
	}
	if len(bs) == 0 {
		return nil, fail(ErrParametersTooSmall, "no admissible b for a=%v", a)
	}
	return &family{a: a, factors: factors, primes: primes, bs: bs}, nil
}

// crt combines residues[i] (mod moduli[i]) into the unique value modulo
// the product of the moduli, via iterated pairwise combination.
func crt(residues, moduli []*numeric.Int) *numeric.Int {
	x, mod := residues[0], moduli[0]
	for i := 1; i < len(residues); i++ {
		inv := mod.ModInverse(moduli[i])
		t := residues[i].Sub(x).Mul(inv).Mod(moduli[i])
		x = x.Add(mod.Mul(t))
		mod = mod.Mul(moduli[i])
	}
	return x.Mod(mod)
}

// polynomialFor instantiates the Polynomial context for one b drawn
// from fam.
func polynomialFor(n *numeric.Int, fam *family, b *numeric.Int) *Polynomial {
	c := b.Mul(b).Sub(n).Div(fam.a)
	return &Polynomial{A: fam.a, B: b, C: c, AFactors: fam.factors}
}
