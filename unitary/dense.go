// Package unitary: Dense is the general-purpose complex matrix value type.
// It is a row-major immutable container with no structural guarantees beyond
// rectangularity and finiteness — environment matrices, intermediate
// products, and SVD inputs live here. For matrices guaranteed unitary see
// Matrix in this package.
package unitary

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Dense is an immutable row-major complex matrix.
// r is rows, c is columns, data holds r*c elements in row-major order.
// Constructors copy their input; no mutating method exists.
type Dense struct {
	r, c int
	data []complex128
}

// NewDense builds an r×c Dense from row slices.
// Stage 1 (Validate): non-empty, rectangular, finite entries.
// Stage 2 (Prepare): copy rows into a flat backing slice.
// Stage 3 (Finalize): return the value or a sentinel.
// Complexity: O(r*c) time and memory.
func NewDense(data [][]complex128) (*Dense, error) {
	r, c, err := validateRect(data)
	if err != nil {
		return nil, fmt.Errorf("NewDense: %w", err)
	}
	flat := make([]complex128, r*c)
	for i := 0; i < r; i++ {
		copy(flat[i*c:(i+1)*c], data[i])
	}

	return &Dense{r: r, c: c, data: flat}, nil
}

// newDenseFlat wraps an already-validated flat slice without copying.
// Internal constructor for kernels that own their buffer.
func newDenseFlat(r, c int, flat []complex128) *Dense {
	return &Dense{r: r, c: c, data: flat}
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int { return d.c }

// At retrieves the element at (row, col), bounds-checked.
// Complexity: O(1).
func (d *Dense) At(row, col int) (complex128, error) {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return d.data[row*d.c+col], nil
}

// Flat returns a copy of the row-major backing slice.
// Complexity: O(r*c).
func (d *Dense) Flat() []complex128 {
	out := make([]complex128, len(d.data))
	copy(out, d.data)

	return out
}

// Clone returns a deep copy. Complexity: O(r*c).
func (d *Dense) Clone() *Dense {
	return newDenseFlat(d.r, d.c, d.Flat())
}

// Dagger returns the conjugate transpose d†. Complexity: O(r*c).
func (d *Dense) Dagger() *Dense {
	out := make([]complex128, len(d.data))
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			z := d.data[i*d.c+j]
			out[j*d.r+i] = complex(real(z), -imag(z))
		}
	}

	return newDenseFlat(d.c, d.r, out)
}

// Mul returns the matrix product d·other.
// Stage 1 (Validate): nil guard; d.Cols() == other.Rows().
// Stage 2 (Execute): classic triple loop over the flat slices.
// Complexity: O(r·n·c).
func (d *Dense) Mul(other *Dense) (*Dense, error) {
	if other == nil {
		return nil, fmt.Errorf("Dense.Mul: %w", ErrNilMatrix)
	}
	if d.c != other.r {
		return nil, fmt.Errorf("Dense.Mul: %dx%d by %dx%d: %w",
			d.r, d.c, other.r, other.c, ErrDimensionMismatch)
	}
	out := make([]complex128, d.r*other.c)
	var acc complex128
	for i := 0; i < d.r; i++ {
		for j := 0; j < other.c; j++ {
			acc = 0
			for k := 0; k < d.c; k++ {
				acc += d.data[i*d.c+k] * other.data[k*other.c+j]
			}
			out[i*other.c+j] = acc
		}
	}

	return newDenseFlat(d.r, other.c, out), nil
}

// FrobeniusNorm returns ‖d‖_F. Complexity: O(r*c).
func (d *Dense) FrobeniusNorm() float64 {
	var sum float64
	for _, z := range d.data {
		sum += real(z)*real(z) + imag(z)*imag(z)
	}

	return math.Sqrt(sum)
}

// HSOverlap returns the Hilbert–Schmidt overlap Re tr(d† · other).
// This is the alignment functional the Procrustes machinery maximizes.
// Stage 1 (Validate): nil guard; identical shapes.
// Complexity: O(r*c).
func (d *Dense) HSOverlap(other *Dense) (float64, error) {
	if other == nil {
		return 0, fmt.Errorf("Dense.HSOverlap: %w", ErrNilMatrix)
	}
	if d.r != other.r || d.c != other.c {
		return 0, fmt.Errorf("Dense.HSOverlap: %w", ErrDimensionMismatch)
	}
	// Re tr(d† b) = Σ_ij Re(conj(d_ij) * b_ij) — no transpose materialized.
	var sum float64
	for i, z := range d.data {
		w := other.data[i]
		sum += real(z)*real(w) + imag(z)*imag(w)
	}

	return sum, nil
}

// EqualApprox reports entrywise equality within tol (absolute, per entry).
// Shapes must match exactly; a nil other is never equal.
func (d *Dense) EqualApprox(other *Dense, tol float64) bool {
	if other == nil || d.r != other.r || d.c != other.c {
		return false
	}
	for i := range d.data {
		if cmplx.Abs(d.data[i]-other.data[i]) > tol {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging.
func (d *Dense) String() string {
	var b strings.Builder
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v", d.data[i*d.c+j])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
