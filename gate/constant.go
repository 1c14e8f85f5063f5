// Package gate: the constant (zero-parameter) gate catalog.
//
// Constant gates are the leaves of any circuit: a precomputed unitary, no
// free parameters, trivially differentiable (empty gradient), and
// deliberately NOT locally optimizable — there is nothing to optimize.
package gate

import (
	"math"

	"github.com/katalvlaran/qsynth/unitary"
)

// constant is the shared implementation behind the catalog constructors.
type constant struct {
	name string
	utry *unitary.Matrix
}

// Name returns the gate identifier.
func (g *constant) Name() string { return g.name }

// NumQudits returns the number of qudits the gate acts on.
func (g *constant) NumQudits() int { return g.utry.NumQudits() }

// Radixes returns a copy of the per-qudit radix vector.
func (g *constant) Radixes() []int { return g.utry.Radixes() }

// NumParams is always 0 for constant gates.
func (g *constant) NumParams() int { return 0 }

// Unitary returns the precomputed matrix; params must be empty.
func (g *constant) Unitary(params []float64) (*unitary.Matrix, error) {
	if err := CheckParams(g, params); err != nil {
		return nil, err
	}

	return g.utry, nil
}

// Grad returns the (empty) gradient: no parameters, no partials.
func (g *constant) Grad(params []float64) ([]*unitary.Dense, error) {
	if err := CheckParams(g, params); err != nil {
		return nil, err
	}

	return []*unitary.Dense{}, nil
}

// mustConstant builds a catalog entry from a static table.
// Panics on malformed tables: that is a programmer error in this file, not a
// user-triggered condition.
func mustConstant(name string, rows [][]complex128, radixes ...[]int) *constant {
	u, err := unitary.New(rows, radixes...)
	if err != nil {
		panic("gate: bad constant table for " + name + ": " + err.Error())
	}

	return &constant{name: name, utry: u}
}

// NewX returns the single-qubit Pauli-X gate.
func NewX() Gate {
	return mustConstant("X", [][]complex128{
		{0, 1},
		{1, 0},
	})
}

// NewH returns the single-qubit Hadamard gate.
func NewH() Gate {
	s := complex(1/math.Sqrt2, 0)

	return mustConstant("H", [][]complex128{
		{s, s},
		{s, -s},
	})
}

// NewCNOT returns the two-qubit controlled-X gate (control on qudit 0).
func NewCNOT() Gate {
	return mustConstant("CNOT", [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
}

// NewYY returns the two-qubit Ising YY coupling gate (angle π/2).
func NewYY() Gate {
	s := complex(math.Sqrt2/2, 0)
	is := complex(0, math.Sqrt2/2)

	return mustConstant("YY", [][]complex128{
		{s, 0, 0, is},
		{0, s, -is, 0},
		{0, -is, s, 0},
		{is, 0, 0, s},
	})
}
