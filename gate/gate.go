// Package gate: the core gate contract.
package gate

import (
	"fmt"

	"github.com/katalvlaran/qsynth/unitary"
)

// Gate describes an operation on a fixed number of qudits. Implementations
// are immutable after construction: NumQudits, Radixes, and NumParams never
// change, and Unitary must be a pure function of params.
type Gate interface {
	// Name returns a stable human-readable identifier for diagnostics.
	Name() string

	// NumQudits returns the number of qudits the gate acts on.
	NumQudits() int

	// Radixes returns the per-qudit radix vector (a fresh copy).
	Radixes() []int

	// NumParams returns the number of free real parameters (0 for constant
	// gates).
	NumParams() int

	// Unitary returns the gate's unitary for the given parameters. The
	// parameter slice length must equal NumParams (ErrParamCount otherwise);
	// nil counts as length 0.
	Unitary(params []float64) (*unitary.Matrix, error)
}

// CheckParams validates len(params) == g.NumParams. Shared guard for all
// implementations, mirroring the single-source-of-truth validator style.
// Complexity: O(1).
func CheckParams(g Gate, params []float64) error {
	if g == nil {
		return fmt.Errorf("gate.CheckParams: %w", ErrNilGate)
	}
	if len(params) != g.NumParams() {
		return fmt.Errorf("gate.CheckParams: %s expects %d, got %d: %w",
			g.Name(), g.NumParams(), len(params), ErrParamCount)
	}

	return nil
}

// Dim returns the gate's unitary dimension, the product of its radixes.
// Complexity: O(num_qudits).
func Dim(g Gate) int {
	dim := 1
	for _, r := range g.Radixes() {
		dim *= r
	}

	return dim
}
