// Package circuit: CircuitGate, the circuit-as-a-gate freezing adapter.
package circuit

import (
	"fmt"

	"github.com/katalvlaran/qsynth/gate"
	"github.com/katalvlaran/qsynth/unitary"
)

// CircuitGate wraps a circuit as an atomic constant-unitary gate. Size,
// radixes, and the composed unitary are computed once at construction and
// cached; they stay consistent with the frozen circuit forever because the
// circuit is never exposed for mutation — there is no lazy recomputation and
// no invalidation path.
//
// Differentiability is the one capability that is computed rather than
// frozen: it delegates to the wrapped circuit's predicate, since it depends
// on the frozen contents.
type CircuitGate struct {
	circ *Circuit
	utry *unitary.Matrix
}

// NewFrozen freezes a deep copy of c; the caller keeps the original and may
// mutate it freely afterwards without affecting the gate.
// Stage 1 (Validate): nil guard.
// Stage 2 (Execute): copy, compose, cache.
// Complexity: O(ops · d³) for the eager composition.
func NewFrozen(c *Circuit) (*CircuitGate, error) {
	if c == nil {
		return nil, fmt.Errorf("circuit.NewFrozen: %w", ErrNilCircuit)
	}

	return freeze(c.Copy())
}

// FreezeOwned freezes c itself, without copying — a performance escape hatch
// that transfers ownership: the caller must not read or mutate c afterwards.
// Complexity: O(ops · d³).
func FreezeOwned(c *Circuit) (*CircuitGate, error) {
	if c == nil {
		return nil, fmt.Errorf("circuit.FreezeOwned: %w", ErrNilCircuit)
	}

	return freeze(c)
}

// freeze eagerly composes and caches; shared tail of both constructors.
func freeze(c *Circuit) (*CircuitGate, error) {
	utry, err := c.Unitary()
	if err != nil {
		return nil, fmt.Errorf("circuit.freeze: %w", err)
	}

	return &CircuitGate{circ: c, utry: utry}, nil
}

// Name returns the gate identifier.
func (g *CircuitGate) Name() string {
	return fmt.Sprintf("CircuitGate(%d)", g.circ.NumQudits())
}

// NumQudits returns the frozen circuit's register width.
func (g *CircuitGate) NumQudits() int { return g.circ.NumQudits() }

// Radixes returns a copy of the frozen register's radix vector.
func (g *CircuitGate) Radixes() []int { return g.circ.Radixes() }

// NumParams is always 0: the wrapped parameters were baked into the cached
// unitary at freeze time.
func (g *CircuitGate) NumParams() int { return 0 }

// Unitary returns the cached composed unitary; params must be empty.
func (g *CircuitGate) Unitary(params []float64) (*unitary.Matrix, error) {
	if err := gate.CheckParams(g, params); err != nil {
		return nil, err
	}

	return g.utry, nil
}

// IsDifferentiable delegates to the wrapped circuit's predicate (true iff
// every frozen placement's gate is differentiable).
func (g *CircuitGate) IsDifferentiable() bool {
	return g.circ.IsDifferentiable()
}

// Grad returns the (empty) gradient for this zero-parameter gate, refusing
// with gate.ErrUnsupported when the frozen circuit is not differentiable —
// the capability is advertised by the type but honored per value.
func (g *CircuitGate) Grad(params []float64) ([]*unitary.Dense, error) {
	if err := gate.CheckParams(g, params); err != nil {
		return nil, err
	}
	if !g.circ.IsDifferentiable() {
		return nil, fmt.Errorf("%s.Grad: frozen circuit is not differentiable: %w",
			g.Name(), gate.ErrUnsupported)
	}

	return []*unitary.Dense{}, nil
}
