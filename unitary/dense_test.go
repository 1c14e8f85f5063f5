// Package unitary_test: unit tests for the general Dense matrix type.
package unitary_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsynth/unitary"
)

func TestNewDenseValidation(t *testing.T) {
	t.Parallel()

	_, err := unitary.NewDense(nil)
	assert.ErrorIs(t, err, unitary.ErrBadShape, "empty input must error")

	_, err = unitary.NewDense([][]complex128{{1, 2}, {3}})
	assert.ErrorIs(t, err, unitary.ErrBadShape, "ragged rows must error")

	_, err = unitary.NewDense([][]complex128{{complex(math.NaN(), 0)}})
	assert.ErrorIs(t, err, unitary.ErrNaNInf, "NaN component must error")

	_, err = unitary.NewDense([][]complex128{{complex(0, math.Inf(1))}})
	assert.ErrorIs(t, err, unitary.ErrNaNInf, "Inf component must error")
}

func TestDenseAtBounds(t *testing.T) {
	t.Parallel()

	d := mustDense(t, [][]complex128{{1, 2}, {3, 4}})
	v, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(3), v)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = d.At(idx[0], idx[1])
		assert.ErrorIs(t, err, unitary.ErrOutOfRange, "index %v", idx)
	}
}

func TestDenseMul(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]complex128{{1, 2}, {3, 4}})
	b := mustDense(t, [][]complex128{{0, 1}, {1, 0}})
	p, err := a.Mul(b)
	require.NoError(t, err)
	want := mustDense(t, [][]complex128{{2, 1}, {4, 3}})
	assert.True(t, p.EqualApprox(want, 0), "product mismatch:\n%v", p)

	// Incompatible inner dimensions must error.
	c := mustDense(t, [][]complex128{{1, 2, 3}})
	_, err = c.Mul(c)
	assert.ErrorIs(t, err, unitary.ErrDimensionMismatch)

	_, err = a.Mul(nil)
	assert.ErrorIs(t, err, unitary.ErrNilMatrix)
}

func TestDenseDaggerInvolution(t *testing.T) {
	t.Parallel()

	d := mustDense(t, [][]complex128{{complex(1, 2), complex(3, -1)}, {0, complex(0, 5)}})
	dd := d.Dagger()
	v, err := dd.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, complex128(0), v, "dagger must transpose")
	v, err = dd.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(3, 1), v, "dagger must conjugate")
	assert.True(t, d.Dagger().Dagger().EqualApprox(d, 0), "dagger must be an involution")
}

func TestDenseHSOverlap(t *testing.T) {
	t.Parallel()

	// Re tr(A† A) = ‖A‖_F².
	a := mustDense(t, [][]complex128{{complex(1, 1), 0}, {0, complex(0, 2)}})
	got, err := a.HSOverlap(a)
	require.NoError(t, err)
	norm := a.FrobeniusNorm()
	assert.InDelta(t, norm*norm, got, 1e-12)

	b := mustDense(t, [][]complex128{{1, 2, 3}})
	_, err = a.HSOverlap(b)
	assert.ErrorIs(t, err, unitary.ErrDimensionMismatch)
}

func TestDenseFlatIsACopy(t *testing.T) {
	t.Parallel()

	d := mustDense(t, [][]complex128{{1, 2}, {3, 4}})
	flat := d.Flat()
	flat[0] = 99
	v, err := d.At(0, 0)
	require.NoError(t, err)
	if v != 1 {
		t.Fatalf("mutating Flat() output must not affect the matrix, got %v", v)
	}
}
