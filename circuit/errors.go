// SPDX-License-Identifier: MIT
// Package circuit: sentinel error set. Sentinels only, errors.Is matching,
// call-site wrapping with an operation tag.

package circuit

import "errors"

var (
	// ErrNilCircuit indicates a nil *Circuit receiver or argument.
	ErrNilCircuit = errors.New("circuit: nil circuit")

	// ErrBadQuditCount is returned when constructing a circuit with a
	// non-positive qudit count.
	ErrBadQuditCount = errors.New("circuit: qudit count must be positive")

	// ErrBadRadixes is returned when the radix vector is the wrong length or
	// holds an entry below 2.
	ErrBadRadixes = errors.New("circuit: invalid radixes")

	// ErrBadLocation is returned by Append when the location has the wrong
	// arity, repeats a qudit, or indexes outside the register.
	ErrBadLocation = errors.New("circuit: invalid location")

	// ErrRadixMismatch is returned by Append when a gate's radixes disagree
	// with the register radixes at its location.
	ErrRadixMismatch = errors.New("circuit: gate radixes do not match register")

	// ErrParamCount is returned by Append when the placement's parameter
	// slice length disagrees with the gate's NumParams.
	ErrParamCount = errors.New("circuit: wrong number of placement parameters")

	// ErrParamLength is returned when a full parameter vector's length
	// disagrees with the circuit's NumParams.
	ErrParamLength = errors.New("circuit: wrong parameter vector length")

	// ErrOutOfRange indicates an operation index outside [0, NumOperations).
	ErrOutOfRange = errors.New("circuit: index out of range")
)
