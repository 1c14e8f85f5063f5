// SPDX-License-Identifier: MIT
// Package unitary: centralized validation helpers.
//
// Purpose:
//   - Provide a single, canonical source of truth for shape / finiteness /
//     radix / unitarity checks.
//   - Keep constructors and kernels minimal by delegating guard logic here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with an operation tag.
//
// All checks are pure and deterministic; the unitarity check runs O(d³).

package unitary

import "math"

// isFinite reports whether both components of z are finite.
func isFinite(z complex128) bool {
	return !math.IsNaN(real(z)) && !math.IsInf(real(z), 0) &&
		!math.IsNaN(imag(z)) && !math.IsInf(imag(z), 0)
}

// validateRect ensures rows form a non-empty rectangular matrix of finite
// values. Returns (rows, cols, nil) on success.
func validateRect(data [][]complex128) (int, int, error) {
	// Reject an empty matrix outright.
	if len(data) == 0 || len(data[0]) == 0 {
		return 0, 0, ErrBadShape
	}
	r, c := len(data), len(data[0])
	for i := 0; i < r; i++ {
		// Every row must share the first row's length.
		if len(data[i]) != c {
			return 0, 0, ErrBadShape
		}
		for j := 0; j < c; j++ {
			if !isFinite(data[i][j]) {
				return 0, 0, ErrNaNInf
			}
		}
	}

	return r, c, nil
}

// ValidateRadixes ensures radixes has exactly numQudits entries, each >= 2.
// A nil/empty radix vector is NOT accepted here; inference belongs to the
// constructors (see inferRadixes).
func ValidateRadixes(radixes []int, numQudits int) error {
	if len(radixes) != numQudits {
		return ErrBadRadixes
	}
	for _, r := range radixes {
		if r < 2 {
			return ErrBadRadixes
		}
	}

	return nil
}

// radixProduct multiplies all radixes; assumes ValidateRadixes passed.
func radixProduct(radixes []int) int {
	dim := 1
	for _, r := range radixes {
		dim *= r
	}

	return dim
}

// inferRadixes derives a radix vector from a dimension when the caller did
// not supply one: powers of two become qubit registers, powers of three
// qutrit registers, anything else (>= 2) a single qudit of that radix.
// Dimension 1 (or smaller) has no sensible register shape -> ErrBadShape.
func inferRadixes(dim int) ([]int, error) {
	if dim < 2 {
		return nil, ErrBadShape
	}
	for _, base := range []int{2, 3} {
		n, d := 0, dim
		for d%base == 0 {
			d /= base
			n++
		}
		if d == 1 {
			radixes := make([]int, n)
			for i := range radixes {
				radixes[i] = base
			}

			return radixes, nil
		}
	}

	// Fall back to a single qudit of radix dim.
	return []int{dim}, nil
}

// resolveRadixes applies the optional-radixes convention shared by the
// constructors: at most one vector, validated against dim when present,
// inferred from dim when absent.
func resolveRadixes(dim int, radixes [][]int) ([]int, error) {
	if len(radixes) > 1 {
		return nil, ErrBadRadixes
	}
	if len(radixes) == 0 || len(radixes[0]) == 0 {
		return inferRadixes(dim)
	}
	rx := radixes[0]
	for _, r := range rx {
		if r < 2 {
			return nil, ErrBadRadixes
		}
	}
	if radixProduct(rx) != dim {
		return nil, ErrBadRadixes
	}

	// Defensive copy: callers keep ownership of their slice.
	out := make([]int, len(rx))
	copy(out, rx)

	return out, nil
}

// isUnitaryFlat checks U†U = I within tol for a dim×dim row-major slice.
// Complexity: O(d³).
func isUnitaryFlat(flat []complex128, dim int, tol float64) bool {
	var sum complex128
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			// (U†U)[i,j] = Σ_k conj(U[k,i]) * U[k,j]
			sum = 0
			for k := 0; k < dim; k++ {
				u := flat[k*dim+i]
				sum += complex(real(u), -imag(u)) * flat[k*dim+j]
			}
			if i == j {
				sum -= 1
			}
			if math.Hypot(real(sum), imag(sum)) > tol {
				return false
			}
		}
	}

	return true
}
