// SPDX-License-Identifier: MIT
// Package instantiate: functional configuration for the concrete strategies.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on nonsensical parameters (programmer
//     error), never on user data.

package instantiate

import (
	"fmt"
	"math"
)

// Documented defaults (single source of truth).
const (
	// DefaultMaxSweeps bounds the number of full alternating passes the
	// sweep strategy performs before giving up on further improvement.
	DefaultMaxSweeps = 100

	// DefaultTolerance is the minimum Hilbert–Schmidt overlap gain per sweep
	// below which the sweep strategy declares convergence.
	DefaultTolerance = 1e-10
)

// options is the internal resolved configuration.
type options struct {
	maxSweeps int
	tol       float64
}

// Option mutates the internal configuration; build with the WithX
// constructors below.
type Option func(*options)

// WithMaxSweeps overrides the sweep budget. Panics on n <= 0: a zero or
// negative budget is a programmer error, not a runtime condition.
func WithMaxSweeps(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("instantiate.WithMaxSweeps: non-positive budget %d", n))
	}

	return func(o *options) { o.maxSweeps = n }
}

// WithTolerance overrides the convergence threshold. Panics on non-positive
// or non-finite tol.
func WithTolerance(tol float64) Option {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("instantiate.WithTolerance: invalid tolerance %g", tol))
	}

	return func(o *options) { o.tol = tol }
}

// gatherOptions resolves defaults then applies overrides in order.
func gatherOptions(opts ...Option) options {
	o := options{maxSweeps: DefaultMaxSweeps, tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
