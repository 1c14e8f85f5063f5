// SPDX-License-Identifier: MIT
// Package unitary: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the unitary
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in private helpers.

package unitary

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "unitary: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("op: %w", ErrX) at
// the call boundary — callers still match via errors.Is.

var (
	// ErrBadShape is returned when input data is empty, ragged, or otherwise
	// not a well-formed rectangular matrix / non-trivial vector.
	ErrBadShape = errors.New("unitary: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input
	// was rectangular.
	ErrNonSquare = errors.New("unitary: matrix is not square")

	// ErrOutOfRange indicates an index (row, column, or amplitude) outside
	// valid bounds. Public indexers return this, they never panic.
	ErrOutOfRange = errors.New("unitary: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("unitary: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf component where finite values are
	// required (all ingestion paths).
	ErrNaNInf = errors.New("unitary: NaN or Inf encountered")

	// ErrBadRadixes indicates a radix vector that is the wrong length, holds
	// an entry below 2, or whose product disagrees with the dimension.
	ErrBadRadixes = errors.New("unitary: invalid radixes")

	// ErrNotUnitary is returned by the strict Matrix constructor when the
	// supplied data fails the U†U = I check within DefaultTol. Use ClosestTo
	// to project arbitrary data instead.
	ErrNotUnitary = errors.New("unitary: matrix is not unitary within tolerance")

	// ErrNotNormalized is returned by the StateVector constructor when the
	// amplitude vector is not unit-norm within DefaultTol.
	ErrNotNormalized = errors.New("unitary: state vector is not normalized")

	// ErrNilMatrix indicates a nil *Dense, *Matrix, or *StateVector receiver
	// or argument.
	ErrNilMatrix = errors.New("unitary: nil matrix")

	// ErrSVDConvergence indicates the Jacobi SVD failed to reach a clean
	// sweep within the iteration budget. Practically unreachable for the
	// dimensions this package is used at; surfaced rather than swallowed.
	ErrSVDConvergence = errors.New("unitary: svd failed to converge")
)

// DefaultTol is the single numeric tolerance used by the strict constructors
// (unitarity, normalization) and by EqualApprox convenience comparisons.
const DefaultTol = 1e-8
