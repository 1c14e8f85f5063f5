// SPDX-License-Identifier: MIT
// Package unitary: gonum interop.
//
// Purpose:
//   - Export the package's value types to gonum's complex dense type so
//     callers living in the gonum ecosystem (plotting, further linear
//     algebra) can consume instantiation results without copy loops.
//   - Import gonum matrices through the strict constructor, so the unitarity
//     invariant survives the boundary crossing.

package unitary

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToCDense exports d as a gonum *mat.CDense (fresh backing slice).
// Complexity: O(r*c).
func (d *Dense) ToCDense() *mat.CDense {
	return mat.NewCDense(d.r, d.c, d.Flat())
}

// ToCDense exports m as a gonum *mat.CDense (fresh backing slice).
// Complexity: O(d²).
func (m *Matrix) ToCDense() *mat.CDense {
	return mat.NewCDense(m.dim, m.dim, m.Flat())
}

// NewDenseFromCMatrix imports a gonum complex matrix as a Dense value.
// Stage 1 (Validate): nil guard.
// Stage 2 (Execute): entrywise copy through the validating constructor.
// Complexity: O(r*c).
func NewDenseFromCMatrix(cm mat.CMatrix) (*Dense, error) {
	if cm == nil {
		return nil, fmt.Errorf("unitary.NewDenseFromCMatrix: %w", ErrNilMatrix)
	}
	r, c := cm.Dims()
	rows := make([][]complex128, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]complex128, c)
		for j := 0; j < c; j++ {
			rows[i][j] = cm.At(i, j)
		}
	}

	return NewDense(rows)
}

// NewFromCMatrix imports a gonum complex matrix as a unitary Matrix,
// enforcing the full construction invariant (squareness, finiteness,
// unitarity within DefaultTol). Complexity: O(d³).
func NewFromCMatrix(cm mat.CMatrix, radixes ...[]int) (*Matrix, error) {
	if cm == nil {
		return nil, fmt.Errorf("unitary.NewFromCMatrix: %w", ErrNilMatrix)
	}
	r, c := cm.Dims()
	rows := make([][]complex128, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]complex128, c)
		for j := 0; j < c; j++ {
			rows[i][j] = cm.At(i, j)
		}
	}

	return New(rows, radixes...)
}
