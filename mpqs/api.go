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

// Package mpqs implements the self-initialising multiple-polynomial
// quadratic sieve with single-large-prime variation and logarithmic
// sieving. It factors an odd composite n by producing pairs (x, y)
// with x^2 = y^2 (mod n) until gcd(x-y, n) is a non-trivial factor.
package mpqs

import (
	"github.com/bfix/qsieve/internal/numeric"
	"github.com/bfix/qsieve/internal/trace"
)

// RelationIterator is the lazy, pull-based stream of (x, y) pairs
// described by the orchestrator's state machine. Every element
// satisfies x^2 = y^2 (mod n); consumers stop pulling once satisfied,
// which is the only cleanup the stream requires.
type RelationIterator struct {
	o *Orchestrator
}

// Next advances the sieve until one more relation pair is ready.
func (it *RelationIterator) Next() (x, y *numeric.Int, err error) {
	return it.o.Next()
}

// Relations returns the lazy relation stream for n under cfg. An
// Observer, if non-nil, receives trace events as the sieve runs; pass
// trace.NoOp{} (the default) to disable tracing entirely.
func Relations(n *numeric.Int, cfg Config, obs trace.Observer) (*RelationIterator, error) {
	o, err := NewOrchestrator(n, cfg, obs)
	if err != nil {
		return nil, err
	}
	return &RelationIterator{o: o}, nil
}

// FactorWithConfig factors n under an explicit configuration. n is
// assumed odd composite; a perfect square is special-cased rather than
// fed to the sieve, where Q can vanish inside the sieve interval.
func FactorWithConfig(n *numeric.Int, cfg Config) (*numeric.Int, error) {
	if n.IsPerfectSquare() {
		return n.Sqrt(), nil
	}
	it, err := Relations(n, cfg, trace.NoOp{})
	if err != nil {
		return nil, err
	}
	for {
		x, y, err := it.Next()
		if err != nil {
			return nil, err
		}
		diff := x.Sub(y)
		if diff.Sign() == 0 {
			continue
		}
		g := diff.GCD(n)
		if !g.Equal(numeric.One) && !g.Equal(n) {
			return g, nil
		}
	}
}

// Factor finds a non-trivial factor of n using AutoConfig(n).
func Factor(n *numeric.Int) (*numeric.Int, error) {
	return FactorWithConfig(n, AutoConfig(n))
}
