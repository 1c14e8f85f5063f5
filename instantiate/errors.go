// SPDX-License-Identifier: MIT
// Package instantiate: sentinel error set. Sentinels only, errors.Is
// matching, call-site wrapping with an operation tag.

package instantiate

import "errors"

var (
	// ErrNilCircuit indicates a nil circuit argument.
	ErrNilCircuit = errors.New("instantiate: nil circuit")

	// ErrNilTarget indicates a nil target argument.
	ErrNilTarget = errors.New("instantiate: nil target")

	// ErrNilRand indicates a nil random source where one is required;
	// multistart generation takes an explicit source so results are
	// reproducible under a caller-chosen seed.
	ErrNilRand = errors.New("instantiate: nil random source")

	// ErrNonPositiveStarts is returned when the requested multistart count
	// is zero or negative.
	ErrNonPositiveStarts = errors.New("instantiate: multistarts must be positive")

	// ErrTargetType is returned when an input can be normalized neither as a
	// state vector nor as a unitary matrix; the message names the offending
	// input's type.
	ErrTargetType = errors.New("instantiate: target is neither state nor unitary")

	// ErrTargetDim is returned when a (valid) target's dimension disagrees
	// with the circuit's.
	ErrTargetDim = errors.New("instantiate: target dimension does not match circuit")

	// ErrParamLength is returned when the starting vector x0 has the wrong
	// length for the circuit.
	ErrParamLength = errors.New("instantiate: wrong starting-point length")

	// ErrNotCapable is returned by Instantiate when the strategy cannot
	// handle the circuit; ViolationReport explains why.
	ErrNotCapable = errors.New("instantiate: strategy cannot instantiate this circuit")

	// ErrCircuitCapable signals misuse of the diagnostic API: asking for a
	// violation report on a circuit the strategy can instantiate.
	ErrCircuitCapable = errors.New("instantiate: circuit is capable, no violation to report")
)
