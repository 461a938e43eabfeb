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

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bfix/qsieve/internal/numeric"
	"github.com/bfix/qsieve/internal/trace"
	"github.com/bfix/qsieve/mpqs"
)

func main() {
	var (
		base    int64
		width   int64
		exp     int
		thresh  int
		verbose bool
	)
	flag.Int64Var(&base, "B", 0, "factor base bound (0 = auto)")
	flag.Int64Var(&width, "m", 0, "sieving half-width (0 = auto)")
	flag.IntVar(&exp, "k", -1, "polynomial exponent (-1 = auto)")
	flag.IntVar(&thresh, "h", -1, "log threshold (-1 = auto)")
	flag.BoolVar(&verbose, "v", false, "trace sieve progress to stderr")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("usage: qsfactor [-B bound] [-m width] [-k exponent] [-h threshold] [-v] <n>")
		os.Exit(1)
	}
	n := numeric.FromString(args[0])

	cfg := mpqs.AutoConfig(n)
	if base > 0 {
		cfg.FactorBaseBound = base
	}
	if width > 0 {
		cfg.SievingHalfWidth = width
	}
	if exp >= 0 {
		cfg.PolynomialExponent = exp
	}
	if thresh >= 0 {
		cfg.LogThreshold = thresh
	}

	var obs trace.Observer = trace.NoOp{}
	if verbose {
		obs = trace.NewWriter(os.Stderr, trace.DBG)
	}

	it, err := mpqs.Relations(n, cfg, obs)
	if err != nil {
		log.Fatalf("qsfactor: %v", err)
	}
	for {
		x, y, err := it.Next()
		if err != nil {
			log.Fatalf("qsfactor: %v", err)
		}
		g := x.Sub(y).GCD(n)
		if g.Sign() == 0 || g.Equal(numeric.One) || g.Equal(n) {
			continue
		}
		fmt.Println(g)
		return
	}
}
