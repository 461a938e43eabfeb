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
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bfix/qsieve/internal/numeric"
	"github.com/bfix/qsieve/internal/trace"
)

// kernelBudget is the number of fresh solver seeds the kernel driver
// tries against one matrix before reporting exhaustion up to Widen.
const kernelBudget = 5

// Orchestrator owns the relation store and drives polynomials through
// sieving and relation extraction, widening (B, m) on solver
// exhaustion. It holds no state visible outside one Next call: every
// field here is the "current (a, remaining b list, relation store,
// solver seed counter)" that a pull-based iterator needs between
// calls.
type Orchestrator struct {
	n   *numeric.Int
	cfg Config
	obs trace.Observer

	fb     *FactorBase
	gen    *polyGenerator
	store  *RelationStore
	kernel *kernelDriver

	fam *family
	bs  []*numeric.Int
}

// NewOrchestrator builds the factor base for cfg and prepares the
// polynomial generator. A factor base that admits no odd prime fails
// synchronously, before any sieving is attempted.
func NewOrchestrator(n *numeric.Int, cfg Config, obs trace.Observer) (*Orchestrator, error) {
	if obs == nil {
		obs = trace.NoOp{}
	}
	fb, err := BuildFactorBase(n, cfg.FactorBaseBound)
	if err != nil {
		return nil, err
	}
	obs.Event(trace.INFO, "factor base built: %d primes, bound=%d", len(fb.Entries), cfg.FactorBaseBound)
	return &Orchestrator{
		n:      n,
		cfg:    cfg,
		obs:    obs,
		fb:     fb,
		gen:    newPolyGenerator(n, cfg.SievingHalfWidth, cfg.PolynomialExponent),
		store:  NewRelationStore(),
		kernel: newKernelDriver(nil, kernelBudget),
	}, nil
}

func (o *Orchestrator) slack() int {
	return 3 * (o.cfg.PolynomialExponent + 2)
}

// sieveBatch caps how many b's of the current family are sieved
// concurrently per Next iteration. Polynomials within a family are
// independent (distinct b, shared a), so logSieve and extractRelations
// for each can run on its own goroutine; GOMAXPROCS bounds it so a
// single-core build still behaves serially.
func sieveBatch() int {
	if n := runtime.GOMAXPROCS(0); n > 1 {
		return n
	}
	return 1
}

// Next advances the polynomial generator and sieve as many times as
// needed to either produce a fresh (x, y) pair or fail. It widens
// parameters and retries once the kernel driver exhausts its seed
// budget against a ready matrix, and propagates ParametersTooSmall if
// widening itself cannot make progress.
func (o *Orchestrator) Next() (*numeric.Int, *numeric.Int, error) {
	for {
		if len(o.bs) == 0 {
			fam, err := o.gen.next()
			if err != nil {
				return nil, nil, err
			}
			o.fam = fam
			o.bs = append([]*numeric.Int{}, fam.bs...)
			o.obs.Event(trace.DBG, "new polynomial family: a=%v, %d candidate b", fam.a, len(fam.bs))
		}

		n := sieveBatch()
		if n > len(o.bs) {
			n = len(o.bs)
		}
		batch := o.bs[:n]
		o.bs = o.bs[n:]

		var g errgroup.Group
		for _, b := range batch {
			b := b
			g.Go(func() error {
				poly := polynomialFor(o.n, o.fam, b)
				survivors, err := logSieve(poly, o.fb, o.cfg.SievingHalfWidth, o.cfg.LogThreshold)
				if err != nil {
					return err
				}
				if err := extractRelations(poly, o.fb, o.cfg.SievingHalfWidth, survivors, o.store); err != nil {
					return err
				}
				o.obs.Event(trace.DBG, "sieved b=%v: %d survivors", b, len(survivors))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
		o.obs.Event(trace.DBG, "batch of %d polynomials sieved, store now holds %d relations", len(batch), o.store.Len())

		mx := o.store.BuildMatrix()
		slack := o.slack()
		if !mx.Ready(slack) {
			continue
		}
		mx.Cap(len(mx.RowKeys) + slack)

		x, y, needWiden, err := o.kernel.next(o.n, mx)
		if err != nil {
			return nil, nil, err
		}
		if needWiden {
			o.obs.Event(trace.WARN, "kernel driver exhausted its budget, widening")
			if werr := o.widen(); werr != nil {
				return nil, nil, werr
			}
			continue
		}
		return x, y, nil
	}
}

// widen grows (B, m) once the kernel driver's seed budget is exhausted
// and rebuilds the factor base and polynomial generator around the new
// bounds. The relation store is untouched: it grows monotonically
// across the whole run.
func (o *Orchestrator) widen() error {
	o.cfg = o.cfg.widen()
	fb, err := BuildFactorBase(o.n, o.cfg.FactorBaseBound)
	if err != nil {
		return err
	}
	o.fb = fb
	o.gen = newPolyGenerator(o.n, o.cfg.SievingHalfWidth, o.cfg.PolynomialExponent)
	o.fam = nil
	o.bs = nil
	o.obs.Event(trace.INFO, "widened to B=%d m=%d", o.cfg.FactorBaseBound, o.cfg.SievingHalfWidth)
	return nil
}
