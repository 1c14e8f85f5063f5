// Package circuit_test: unit tests for circuit construction and unitary
// composition.
package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsynth/circuit"
	"github.com/katalvlaran/qsynth/gate"
	"github.com/katalvlaran/qsynth/unitary"
)

// mustCircuit builds an empty register or fails the test.
func mustCircuit(t *testing.T, numQudits int) *circuit.Circuit {
	t.Helper()
	c, err := circuit.New(numQudits)
	require.NoError(t, err)

	return c
}

// xParams encodes Pauli-X exactly in VariableUnitaryGate parameter form
// (real parts [0,1,1,0], imaginary parts zero).
func xParams() []float64 {
	return []float64{0, 1, 1, 0, 0, 0, 0, 0}
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := circuit.New(0)
	assert.ErrorIs(t, err, circuit.ErrBadQuditCount)

	_, err = circuit.New(2, []int{2})
	assert.ErrorIs(t, err, circuit.ErrBadRadixes)

	_, err = circuit.New(2, []int{2, 1})
	assert.ErrorIs(t, err, circuit.ErrBadRadixes)

	c, err := circuit.New(2, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6, c.Dim())
}

func TestAppendValidation(t *testing.T) {
	t.Parallel()

	c := mustCircuit(t, 2)

	assert.ErrorIs(t, c.Append(nil, []int{0}, nil), gate.ErrNilGate)
	assert.ErrorIs(t, c.Append(gate.NewX(), []int{0, 1}, nil), circuit.ErrBadLocation,
		"arity must match the gate")
	assert.ErrorIs(t, c.Append(gate.NewCNOT(), []int{0, 2}, nil), circuit.ErrBadLocation,
		"qudit outside register")
	assert.ErrorIs(t, c.Append(gate.NewCNOT(), []int{1, 1}, nil), circuit.ErrBadLocation,
		"repeated qudit")

	vug, err := gate.NewVariableUnitary(1)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Append(vug, []int{0}, []float64{1, 2}), circuit.ErrParamCount)

	// Radix mismatch: a qubit gate on a qutrit slot.
	mixed, err := circuit.New(2, []int{3, 2})
	require.NoError(t, err)
	assert.ErrorIs(t, mixed.Append(gate.NewX(), []int{0}, nil), circuit.ErrRadixMismatch)
	assert.NoError(t, mixed.Append(gate.NewX(), []int{1}, nil))
}

func TestNumParamsAccumulates(t *testing.T) {
	t.Parallel()

	c := mustCircuit(t, 1)
	assert.Equal(t, 0, c.NumParams())

	require.NoError(t, c.Append(gate.NewX(), []int{0}, nil))
	assert.Equal(t, 0, c.NumParams())

	vug, err := gate.NewVariableUnitary(1)
	require.NoError(t, err)
	require.NoError(t, c.Append(vug, []int{0}, make([]float64, 8)))
	assert.Equal(t, 8, c.NumParams())
	assert.Equal(t, 2, c.NumOperations())
}

func TestUnitaryEmptyCircuitIsIdentity(t *testing.T) {
	t.Parallel()

	c := mustCircuit(t, 2)
	u, err := c.Unitary()
	require.NoError(t, err)
	eye, err := unitary.Identity(4)
	require.NoError(t, err)
	assert.True(t, u.EqualApprox(eye, 1e-12))
}

func TestUnitarySingleQuditPlacements(t *testing.T) {
	t.Parallel()

	// X on qudit 1 of a 2-qubit register: I⊗X (qudit 0 most significant).
	c := mustCircuit(t, 2)
	require.NoError(t, c.Append(gate.NewX(), []int{1}, nil))
	u, err := c.Unitary()
	require.NoError(t, err)
	want := mustUnitary(t, [][]complex128{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
	assert.True(t, u.EqualApprox(want, 1e-12), "I⊗X mismatch:\n%v", u)

	// X on qudit 0: X⊗I.
	c = mustCircuit(t, 2)
	require.NoError(t, c.Append(gate.NewX(), []int{0}, nil))
	u, err = c.Unitary()
	require.NoError(t, err)
	want = mustUnitary(t, [][]complex128{
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
	})
	assert.True(t, u.EqualApprox(want, 1e-12), "X⊗I mismatch:\n%v", u)
}

func TestUnitaryPermutedLocation(t *testing.T) {
	t.Parallel()

	// CNOT with control on qudit 1 and target on qudit 0 swaps |01⟩ and
	// |11⟩ (indices 1 and 3).
	c := mustCircuit(t, 2)
	require.NoError(t, c.Append(gate.NewCNOT(), []int{1, 0}, nil))
	u, err := c.Unitary()
	require.NoError(t, err)
	want := mustUnitary(t, [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
	})
	assert.True(t, u.EqualApprox(want, 1e-12), "reversed CNOT mismatch:\n%v", u)
}

func TestUnitaryAppliesInPlacementOrder(t *testing.T) {
	t.Parallel()

	// H then X on one qubit: total = X·H.
	c := mustCircuit(t, 1)
	require.NoError(t, c.Append(gate.NewH(), []int{0}, nil))
	require.NoError(t, c.Append(gate.NewX(), []int{0}, nil))
	u, err := c.Unitary()
	require.NoError(t, err)

	h := complex(0.7071067811865476, 0)
	want := mustUnitary(t, [][]complex128{
		{h, -h},
		{h, h},
	})
	assert.True(t, u.EqualApprox(want, 1e-12), "X·H mismatch:\n%v", u)
}

func TestUnitaryAtIsPure(t *testing.T) {
	t.Parallel()

	vug, err := gate.NewVariableUnitary(1)
	require.NoError(t, err)
	c := mustCircuit(t, 1)
	require.NoError(t, c.Append(vug, []int{0}, make([]float64, 8)))

	x, err := gate.NewX().Unitary(nil)
	require.NoError(t, err)
	u, err := c.UnitaryAt(xParams())
	require.NoError(t, err)
	assert.True(t, u.EqualApprox(x, 1e-10))

	// Stored parameters stay untouched.
	assert.Equal(t, make([]float64, 8), c.Params())

	_, err = c.UnitaryAt([]float64{1})
	assert.ErrorIs(t, err, circuit.ErrParamLength)
}

func TestSetParams(t *testing.T) {
	t.Parallel()

	vug, err := gate.NewVariableUnitary(1)
	require.NoError(t, err)
	c := mustCircuit(t, 1)
	require.NoError(t, c.Append(vug, []int{0}, make([]float64, 8)))

	require.NoError(t, c.SetParams(xParams()))
	assert.Equal(t, xParams(), c.Params())

	assert.ErrorIs(t, c.SetParams([]float64{1, 2}), circuit.ErrParamLength)
}

func TestIsDifferentiable(t *testing.T) {
	t.Parallel()

	c := mustCircuit(t, 2)
	require.NoError(t, c.Append(gate.NewH(), []int{0}, nil))
	require.NoError(t, c.Append(gate.NewCNOT(), []int{0, 1}, nil))
	assert.True(t, c.IsDifferentiable(), "constant gates are differentiable")

	vug, err := gate.NewVariableUnitary(1)
	require.NoError(t, err)
	require.NoError(t, c.Append(vug, []int{0}, make([]float64, 8)))
	assert.False(t, c.IsDifferentiable(), "the dense gate blocks gradients")
}

func TestCopyIndependence(t *testing.T) {
	t.Parallel()

	vug, err := gate.NewVariableUnitary(1)
	require.NoError(t, err)
	orig := mustCircuit(t, 1)
	require.NoError(t, orig.Append(vug, []int{0}, make([]float64, 8)))

	dup := orig.Copy()
	require.NoError(t, orig.Append(gate.NewX(), []int{0}, nil))
	require.NoError(t, orig.SetParams(xParams()))

	assert.Equal(t, 1, dup.NumOperations(), "structure must not alias")
	assert.Equal(t, make([]float64, 8), dup.Params(), "parameters must not alias")
}

func TestOperationAccessor(t *testing.T) {
	t.Parallel()

	c := mustCircuit(t, 2)
	require.NoError(t, c.Append(gate.NewCNOT(), []int{0, 1}, nil))

	op, err := c.Operation(0)
	require.NoError(t, err)
	assert.Equal(t, "CNOT", op.Gate().Name())
	loc := op.Location()
	loc[0] = 9
	op2, err := c.Operation(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, op2.Location(), "Location must return a copy")

	_, err = c.Operation(1)
	assert.ErrorIs(t, err, circuit.ErrOutOfRange)
}

// mustUnitary builds a unitary Matrix or fails the test.
func mustUnitary(t *testing.T, rows [][]complex128) *unitary.Matrix {
	t.Helper()
	m, err := unitary.New(rows)
	require.NoError(t, err)

	return m
}
