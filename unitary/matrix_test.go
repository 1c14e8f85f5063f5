// Package unitary_test: unit tests for the unitary Matrix value type.
package unitary_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsynth/unitary"
)

func TestNewEnforcesUnitarity(t *testing.T) {
	t.Parallel()

	_, err := unitary.New(xRows())
	assert.NoError(t, err, "Pauli X is unitary")

	_, err = unitary.New([][]complex128{{1, 1}, {0, 1}})
	assert.ErrorIs(t, err, unitary.ErrNotUnitary, "shear matrix is not unitary")

	_, err = unitary.New([][]complex128{{1, 0, 0}, {0, 1, 0}})
	assert.ErrorIs(t, err, unitary.ErrNonSquare)

	_, err = unitary.New([][]complex128{{1}, {0, 1}})
	assert.ErrorIs(t, err, unitary.ErrBadShape)
}

func TestNewRadixHandling(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		dim  int
		want []int
	}{
		{2, []int{2}},
		{4, []int{2, 2}},
		{8, []int{2, 2, 2}},
		{3, []int{3}},
		{9, []int{3, 3}},
		{5, []int{5}},
		{6, []int{6}},
	} {
		t.Run(fmt.Sprintf("dim%d", tc.dim), func(t *testing.T) {
			m, err := unitary.Identity(tc.dim)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.Radixes(), "inferred radixes for dim %d", tc.dim)
			assert.Equal(t, len(tc.want), m.NumQudits())
		})
	}

	// Explicit radixes must multiply to the dimension.
	m, err := unitary.Identity(6, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, m.Radixes())

	_, err = unitary.Identity(6, []int{2, 2})
	assert.ErrorIs(t, err, unitary.ErrBadRadixes, "product mismatch")

	_, err = unitary.Identity(2, []int{1, 2})
	assert.ErrorIs(t, err, unitary.ErrBadRadixes, "radix below 2")
}

func TestMatrixDaggerIsInverse(t *testing.T) {
	t.Parallel()

	h := complex(0.7071067811865476, 0)
	u := mustMatrix(t, [][]complex128{{h, h}, {h, -h}})
	prod, err := u.Dagger().Mul(u)
	require.NoError(t, err)
	eye, err := unitary.Identity(2)
	require.NoError(t, err)
	assert.True(t, prod.EqualApprox(eye, 1e-12), "U†U must be the identity")
}

func TestMatrixMulClosureAndErrors(t *testing.T) {
	t.Parallel()

	x := mustMatrix(t, xRows())
	xx, err := x.Mul(x)
	require.NoError(t, err)
	eye, err := unitary.Identity(2)
	require.NoError(t, err)
	assert.True(t, xx.EqualApprox(eye, 1e-12), "X·X = I")

	big, err := unitary.Identity(4)
	require.NoError(t, err)
	_, err = x.Mul(big)
	assert.ErrorIs(t, err, unitary.ErrDimensionMismatch)

	_, err = x.Mul(nil)
	assert.ErrorIs(t, err, unitary.ErrNilMatrix)
}

func TestMatrixImmutability(t *testing.T) {
	t.Parallel()

	rows := xRows()
	m := mustMatrix(t, rows)
	rows[0][0] = 42 // caller mutates its own slice afterwards

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(0), v, "constructor must have copied the input")

	flat := m.Flat()
	flat[0] = 42
	v, err = m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(0), v, "Flat must return a copy")

	rx := m.Radixes()
	rx[0] = 99
	assert.Equal(t, []int{2}, m.Radixes(), "Radixes must return a copy")
}

func TestMatrixDistanceFrom(t *testing.T) {
	t.Parallel()

	x := mustMatrix(t, xRows())
	d, err := x.DistanceFrom(x)
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-15)

	eye, err := unitary.Identity(2)
	require.NoError(t, err)
	d, err = x.DistanceFrom(eye)
	require.NoError(t, err)
	// ‖X − I‖_F = sqrt(1+1+1+1) = 2.
	assert.InDelta(t, 2, d, 1e-12)
}
