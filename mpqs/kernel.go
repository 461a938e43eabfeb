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
	"github.com/bfix/qsieve/internal/numeric"
	"github.com/bfix/qsieve/mpqs/gf2"
)

// kernelDriver turns kernel vectors from the external GF(2) solver
// into (x, y) pairs with x^2 = y^2 (mod n).
type kernelDriver struct {
	solver  gf2.Solver
	budget  int
	seedSeq int64
}

func newKernelDriver(solver gf2.Solver, budget int) *kernelDriver {
	if solver == nil {
		solver = gf2.Gaussian{}
	}
	return &kernelDriver{solver: solver, budget: budget}
}

// next tries up to the attempt budget of fresh seeds against mx,
// returning the reconstructed pair from the first seed that yields a
// kernel vector. needWiden is set once the budget is exhausted without
// the solver producing anything at all.
func (kd *kernelDriver) next(n *numeric.Int, mx *Matrix) (x, y *numeric.Int, needWiden bool, err error) {
	for attempt := 0; attempt < kd.budget; attempt++ {
		seed := kd.seedSeq
		kd.seedSeq++
		cols, serr := kd.solver.Solve(mx.Columns, len(mx.RowKeys), seed)
		if serr != nil {
			continue
		}
		rx, ry := reconstructXY(n, mx, cols)
		return rx, ry, false, nil
	}
	return nil, nil, true, nil
}

// reconstructXY combines the relations named by a kernel vector: x is
// the product of their keys mod n, y is the square root of the product
// of their (guaranteed-even) exponent maps mod n.
func reconstructXY(n *numeric.Int, mx *Matrix, kernelCols []int) (*numeric.Int, *numeric.Int) {
	x := numeric.One
	total := map[string]int{}
	for _, idx := range kernelCols {
		r := mx.Relations[idx]
		x = x.Mul(r.X).Mod(n)
		for p, e := range r.Exponents {
			total[p] += e
		}
	}
	y := numeric.One
	for p, e := range total {
		if p == signKey || e == 0 {
			continue
		}
		prime := numeric.FromString(p)
		y = y.Mul(prime.ModPow(numeric.NewInt(int64(e/2)), n)).Mod(n)
	}
	return x, y
}
