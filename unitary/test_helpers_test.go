// Package unitary_test: shared helpers for the unitary test suite.
package unitary_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qsynth/unitary"
)

// mustDense builds a Dense or fails the test.
func mustDense(t *testing.T, rows [][]complex128) *unitary.Dense {
	t.Helper()
	d, err := unitary.NewDense(rows)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}

	return d
}

// mustMatrix builds a unitary Matrix or fails the test.
func mustMatrix(t *testing.T, rows [][]complex128) *unitary.Matrix {
	t.Helper()
	m, err := unitary.New(rows)
	if err != nil {
		t.Fatalf("unitary.New: %v", err)
	}

	return m
}

// randDense returns an n×n complex matrix with components uniform in [-1,1).
// Deterministic for a given rng seed.
func randDense(t *testing.T, rng *rand.Rand, n int) *unitary.Dense {
	t.Helper()
	rows := make([][]complex128, n)
	for i := range rows {
		rows[i] = make([]complex128, n)
		for j := range rows[i] {
			rows[i][j] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
		}
	}

	return mustDense(t, rows)
}

// randUnitary returns a Haar-ish random unitary: the projection of a random
// complex matrix. Good enough for property tests.
func randUnitary(t *testing.T, rng *rand.Rand, n int) *unitary.Matrix {
	t.Helper()
	u, err := unitary.ClosestTo(randDense(t, rng, n))
	if err != nil {
		t.Fatalf("ClosestTo: %v", err)
	}

	return u
}

// xRows is the Pauli-X table used across tests.
func xRows() [][]complex128 {
	return [][]complex128{
		{0, 1},
		{1, 0},
	}
}
