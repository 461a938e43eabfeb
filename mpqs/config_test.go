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
	"testing"

	"github.com/bfix/qsieve/internal/numeric"
)

func TestAutoConfigDeterministic(t *testing.T) {
	n := numeric.FromString("1234567891011121314151617")
	a := AutoConfig(n)
	b := AutoConfig(n)
	if a != b {
		t.Fatalf("AutoConfig not pure: %+v != %+v", a, b)
	}
}

func TestAutoConfigSmallN(t *testing.T) {
	cfg := AutoConfig(numeric.NewInt(15))
	if cfg.FactorBaseBound <= 0 {
		t.Fatalf("expected positive factor base bound for n=15, got %d", cfg.FactorBaseBound)
	}
}

func TestWidenGrowsBoundsLeavesKAndH(t *testing.T) {
	cfg := Config{FactorBaseBound: 100, SievingHalfWidth: 100, PolynomialExponent: 2, LogThreshold: 20}
	w := cfg.widen()
	if w.FactorBaseBound <= cfg.FactorBaseBound {
		t.Fatalf("widen did not grow B: %d -> %d", cfg.FactorBaseBound, w.FactorBaseBound)
	}
	if w.SievingHalfWidth <= cfg.SievingHalfWidth {
		t.Fatalf("widen did not grow m: %d -> %d", cfg.SievingHalfWidth, w.SievingHalfWidth)
	}
	if w.PolynomialExponent != cfg.PolynomialExponent {
		t.Fatalf("widen must not change k")
	}
	if w.LogThreshold != cfg.LogThreshold {
		t.Fatalf("widen must not change h")
	}
}
