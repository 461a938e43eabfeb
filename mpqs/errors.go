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

import "fmt"

// Base error kinds, matched with errors.Is against the sentinels below.
var (
	// ErrParametersTooSmall is raised when the factor base is empty,
	// when k suitable primes cannot be found for a, when a polynomial
	// cofactor will not fit a machine word, or when the relation
	// stream is demanded but the orchestrator cannot widen further.
	ErrParametersTooSmall = fmt.Errorf("mpqs: parameters too small")
	// ErrInputNotComposite signals that the caller's precondition (odd
	// composite n) does not appear to hold.
	ErrInputNotComposite = fmt.Errorf("mpqs: input does not behave as an odd composite")
	// ErrInternalInconsistency marks a sieve-time invariant violation,
	// e.g. a modular inverse that the construction guarantees exists
	// but that failed to materialise.
	ErrInternalInconsistency = fmt.Errorf("mpqs: internal inconsistency")
)

// wrapErr attaches context to one of the sentinel errors above while
// keeping it unwrappable with errors.Is/errors.As.
type wrapErr struct {
	err error
	ctx string
}

func (e *wrapErr) Error() string { return e.err.Error() + ": " + e.ctx }

func (e *wrapErr) Unwrap() error { return e.err }

func fail(base error, format string, args ...any) error {
	return &wrapErr{err: base, ctx: fmt.Sprintf(format, args...)}
}
