// Package unitary: the closest-unitary (Procrustes) projection.
package unitary

import "fmt"

// ClosestTo returns the unitary matrix nearest to m in Frobenius norm.
//
// For M = A·Σ·B† (SVD) the minimizer of ‖U − M‖_F over unitaries is
// U = A·B†, which simultaneously maximizes the alignment Re tr(U† M) —
// the two formulations of the unitary Procrustes problem are equivalent, and
// both the parameter-decoding and the per-gate best-response paths funnel
// through this single kernel.
//
// The projection is total: singular, rank-deficient, and
// repeated-singular-value inputs all yield a valid (possibly non-unique)
// optimal unitary, deterministically given the SVD's tie-breaking. A unitary
// input is returned unchanged up to numerical tolerance.
//
// The optional radixes argument labels the qudit register of the result;
// when omitted the labeling is inferred from the dimension.
//
// Stage 1 (Validate): nil guard, squareness (via SVD), radix resolution.
// Stage 2 (Execute): SVD, discard singular values, compose A·B†.
// Complexity: O(sweeps · d³).
func ClosestTo(m *Dense, radixes ...[]int) (*Matrix, error) {
	if m == nil {
		return nil, fmt.Errorf("unitary.ClosestTo: %w", ErrNilMatrix)
	}
	a, _, b, err := SVD(m)
	if err != nil {
		return nil, fmt.Errorf("unitary.ClosestTo: %w", err)
	}
	u, err := a.Mul(b.Dagger())
	if err != nil {
		return nil, fmt.Errorf("unitary.ClosestTo: %w", err)
	}
	rx, err := resolveRadixes(u.dim, radixes)
	if err != nil {
		return nil, fmt.Errorf("unitary.ClosestTo: %w", err)
	}
	u.radixes = rx

	return u, nil
}

// ClosestToRows is a convenience wrapper over ClosestTo for callers holding
// row slices instead of a Dense value.
func ClosestToRows(rows [][]complex128, radixes ...[]int) (*Matrix, error) {
	d, err := NewDense(rows)
	if err != nil {
		return nil, fmt.Errorf("unitary.ClosestToRows: %w", err)
	}

	return ClosestTo(d, radixes...)
}
