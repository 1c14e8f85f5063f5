// Package unitary: Matrix is the unitary-matrix value type.
// A Matrix is a square complex matrix that satisfied U†U = I within
// DefaultTol at construction and can never be mutated afterwards, so the
// invariant holds for its whole lifetime. Arbitrary (non-unitary) data goes
// through ClosestTo, which projects onto the nearest unitary instead of
// rejecting.
package unitary

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Matrix is an immutable square complex matrix of dimension dim = ∏ radixes,
// unitary within DefaultTol by construction.
type Matrix struct {
	dim     int
	radixes []int
	data    []complex128 // row-major, len dim*dim
}

// New builds a Matrix from row slices, enforcing the unitarity invariant.
// Stage 1 (Validate): non-empty, square, finite entries.
// Stage 2 (Validate): resolve radixes (explicit vector or inference from dim).
// Stage 3 (Validate): U†U = I within DefaultTol, else ErrNotUnitary.
// Complexity: O(d³) dominated by the unitarity check.
//
// The optional radixes argument labels the qudit register shape; when
// omitted it is inferred (powers of 2 -> qubits, powers of 3 -> qutrits,
// otherwise one qudit of radix dim).
func New(data [][]complex128, radixes ...[]int) (*Matrix, error) {
	r, c, err := validateRect(data)
	if err != nil {
		return nil, fmt.Errorf("unitary.New: %w", err)
	}
	if r != c {
		return nil, fmt.Errorf("unitary.New: %dx%d: %w", r, c, ErrNonSquare)
	}
	rx, err := resolveRadixes(r, radixes)
	if err != nil {
		return nil, fmt.Errorf("unitary.New: %w", err)
	}
	flat := make([]complex128, r*r)
	for i := 0; i < r; i++ {
		copy(flat[i*r:(i+1)*r], data[i])
	}
	if !isUnitaryFlat(flat, r, DefaultTol) {
		return nil, fmt.Errorf("unitary.New: %w", ErrNotUnitary)
	}

	return &Matrix{dim: r, radixes: rx, data: flat}, nil
}

// Identity returns I_dim with the given (or inferred) radix labeling.
// Complexity: O(d²).
func Identity(dim int, radixes ...[]int) (*Matrix, error) {
	rx, err := resolveRadixes(dim, radixes)
	if err != nil {
		return nil, fmt.Errorf("unitary.Identity: %w", err)
	}
	flat := make([]complex128, dim*dim)
	for i := 0; i < dim; i++ {
		flat[i*dim+i] = 1
	}

	return &Matrix{dim: dim, radixes: rx, data: flat}, nil
}

// fromFlat wraps an already-unitary flat slice without re-validation.
// Internal constructor for kernels (SVD factors, products) whose outputs are
// unitary by construction; radixes must already be resolved.
func fromFlat(flat []complex128, dim int, radixes []int) *Matrix {
	return &Matrix{dim: dim, radixes: radixes, data: flat}
}

// Dim returns the matrix dimension. Complexity: O(1).
func (m *Matrix) Dim() int { return m.dim }

// NumQudits returns the number of qudits the matrix acts on.
func (m *Matrix) NumQudits() int { return len(m.radixes) }

// Radixes returns a copy of the per-qudit radix vector.
func (m *Matrix) Radixes() []int {
	out := make([]int, len(m.radixes))
	copy(out, m.radixes)

	return out
}

// At retrieves the element at (row, col), bounds-checked. Complexity: O(1).
func (m *Matrix) At(row, col int) (complex128, error) {
	if row < 0 || row >= m.dim || col < 0 || col >= m.dim {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.dim+col], nil
}

// Flat returns a copy of the row-major backing slice. Complexity: O(d²).
func (m *Matrix) Flat() []complex128 {
	out := make([]complex128, len(m.data))
	copy(out, m.data)

	return out
}

// Dense returns the same values as a general Dense matrix (copy).
// Use when a kernel needs the unconstrained container (e.g. environment
// accumulation). Complexity: O(d²).
func (m *Matrix) Dense() *Dense {
	return newDenseFlat(m.dim, m.dim, m.Flat())
}

// Dagger returns the conjugate transpose m†, which is also m's inverse.
// Complexity: O(d²).
func (m *Matrix) Dagger() *Matrix {
	out := make([]complex128, len(m.data))
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			z := m.data[i*m.dim+j]
			out[j*m.dim+i] = complex(real(z), -imag(z))
		}
	}

	return fromFlat(out, m.dim, m.Radixes())
}

// Mul returns the product m·other. Unitaries are closed under
// multiplication, so the result is a Matrix again (no re-validation).
// Stage 1 (Validate): nil guard; equal dimensions.
// Complexity: O(d³).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if other == nil {
		return nil, fmt.Errorf("Matrix.Mul: %w", ErrNilMatrix)
	}
	if m.dim != other.dim {
		return nil, fmt.Errorf("Matrix.Mul: %d vs %d: %w",
			m.dim, other.dim, ErrDimensionMismatch)
	}
	out := make([]complex128, m.dim*m.dim)
	var acc complex128
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			acc = 0
			for k := 0; k < m.dim; k++ {
				acc += m.data[i*m.dim+k] * other.data[k*m.dim+j]
			}
			out[i*m.dim+j] = acc
		}
	}

	return fromFlat(out, m.dim, m.Radixes()), nil
}

// DistanceFrom returns the Frobenius distance ‖m − other‖_F.
// Complexity: O(d²).
func (m *Matrix) DistanceFrom(other *Matrix) (float64, error) {
	if other == nil {
		return 0, fmt.Errorf("Matrix.DistanceFrom: %w", ErrNilMatrix)
	}
	if m.dim != other.dim {
		return 0, fmt.Errorf("Matrix.DistanceFrom: %w", ErrDimensionMismatch)
	}
	var sum float64
	for i := range m.data {
		z := m.data[i] - other.data[i]
		sum += real(z)*real(z) + imag(z)*imag(z)
	}

	return math.Sqrt(sum), nil
}

// EqualApprox reports entrywise equality within tol.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if other == nil || m.dim != other.dim {
		return false
	}
	for i := range m.data {
		if cmplx.Abs(m.data[i]-other.data[i]) > tol {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging.
func (m *Matrix) String() string {
	return m.Dense().String()
}
