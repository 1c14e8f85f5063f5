// SPDX-License-Identifier: MIT
// Package gate: sentinel error set. Same discipline as package unitary:
// sentinels only in this file, errors.Is matching, wrapping with an
// operation tag at call sites.

package gate

import "errors"

var (
	// ErrParamCount is returned when len(params) disagrees with the gate's
	// NumParams. This is a usage error, never a silent truncation.
	ErrParamCount = errors.New("gate: wrong number of parameters")

	// ErrBadQuditCount is returned by constructors given a non-positive
	// qudit count.
	ErrBadQuditCount = errors.New("gate: qudit count must be positive")

	// ErrBadRadixes is returned by constructors given a radix vector of the
	// wrong length or with an entry below 2.
	ErrBadRadixes = errors.New("gate: invalid radixes")

	// ErrEnvShape is returned by Optimize when the environment matrix is nil,
	// non-square, or not of the gate's dimension.
	ErrEnvShape = errors.New("gate: environment matrix has wrong shape")

	// ErrUnsupported marks a capability that this gate value cannot honor at
	// call time even though its type exposes the method (data-dependent
	// capability, e.g. a frozen circuit that is not differentiable).
	// Terminal, not retryable.
	ErrUnsupported = errors.New("gate: capability not supported")

	// ErrNilGate indicates a nil Gate where a value was required.
	ErrNilGate = errors.New("gate: nil gate")
)
