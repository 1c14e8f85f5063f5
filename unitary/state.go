// Package unitary: StateVector is the normalized complex vector value type,
// the "pure quantum state" counterpart of Matrix. Same ownership model:
// constructors copy, accessors copy, nothing mutates.
package unitary

import (
	"fmt"
	"math"
	"math/cmplx"
)

// StateVector is an immutable unit-norm complex vector of dimension
// dim = ∏ radixes.
type StateVector struct {
	dim     int
	radixes []int
	data    []complex128
}

// NewState builds a StateVector from an amplitude slice.
// Stage 1 (Validate): dim >= 2, finite amplitudes.
// Stage 2 (Validate): resolve radixes (explicit or inferred from dim).
// Stage 3 (Validate): ‖ψ‖ = 1 within DefaultTol, else ErrNotNormalized.
// Complexity: O(d).
func NewState(amplitudes []complex128, radixes ...[]int) (*StateVector, error) {
	if len(amplitudes) < 2 {
		return nil, fmt.Errorf("unitary.NewState: %w", ErrBadShape)
	}
	var norm2 float64
	for _, z := range amplitudes {
		if !isFinite(z) {
			return nil, fmt.Errorf("unitary.NewState: %w", ErrNaNInf)
		}
		norm2 += real(z)*real(z) + imag(z)*imag(z)
	}
	rx, err := resolveRadixes(len(amplitudes), radixes)
	if err != nil {
		return nil, fmt.Errorf("unitary.NewState: %w", err)
	}
	if math.Abs(math.Sqrt(norm2)-1) > DefaultTol {
		return nil, fmt.Errorf("unitary.NewState: norm %g: %w",
			math.Sqrt(norm2), ErrNotNormalized)
	}
	data := make([]complex128, len(amplitudes))
	copy(data, amplitudes)

	return &StateVector{dim: len(data), radixes: rx, data: data}, nil
}

// Dim returns the vector dimension. Complexity: O(1).
func (s *StateVector) Dim() int { return s.dim }

// NumQudits returns the number of qudits the state describes.
func (s *StateVector) NumQudits() int { return len(s.radixes) }

// Radixes returns a copy of the per-qudit radix vector.
func (s *StateVector) Radixes() []int {
	out := make([]int, len(s.radixes))
	copy(out, s.radixes)

	return out
}

// At retrieves the i-th amplitude, bounds-checked. Complexity: O(1).
func (s *StateVector) At(i int) (complex128, error) {
	if i < 0 || i >= s.dim {
		return 0, fmt.Errorf("StateVector.At(%d): %w", i, ErrOutOfRange)
	}

	return s.data[i], nil
}

// Amplitudes returns a copy of the amplitude slice. Complexity: O(d).
func (s *StateVector) Amplitudes() []complex128 {
	out := make([]complex128, len(s.data))
	copy(out, s.data)

	return out
}

// EqualApprox reports amplitude-wise equality within tol.
func (s *StateVector) EqualApprox(other *StateVector, tol float64) bool {
	if other == nil || s.dim != other.dim {
		return false
	}
	for i := range s.data {
		if cmplx.Abs(s.data[i]-other.data[i]) > tol {
			return false
		}
	}

	return true
}
