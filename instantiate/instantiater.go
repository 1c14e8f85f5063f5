// Package instantiate: the strategy contract and its shared utilities.
package instantiate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qsynth/circuit"
	"github.com/katalvlaran/qsynth/unitary"
)

// Target is the normalized instantiation target: either *unitary.Matrix (a
// unitary to implement) or *unitary.StateVector (a state to prepare from
// |0…0⟩). Use CheckTarget to coerce looser inputs into one of the two.
type Target interface {
	Dim() int
	Radixes() []int
}

// Instantiater is the strategy contract for turning a circuit template plus
// a target into a parameter vector.
//
// Instantiate must be side-effect free: it may not mutate the circuit, the
// strategy, or any gate, because many calls on the same strategy object and
// the same circuit run concurrently across different starting points.
type Instantiater interface {
	// Instantiate searches from x0 (length must equal c.NumParams) for the
	// parameters that make c best implement target.
	Instantiate(c *circuit.Circuit, target Target, x0 []float64) ([]float64, error)

	// IsCapable reports whether this strategy can instantiate c (capability
	// sets of the placed gates, or other strategy-specific topology
	// restrictions).
	IsCapable(c *circuit.Circuit) bool

	// ViolationReport explains which placements or structural properties
	// block this strategy. Its precondition is the negation of IsCapable:
	// calling it on a capable circuit fails with ErrCircuitCapable.
	ViolationReport(c *circuit.Circuit) (string, error)

	// MethodName returns the stable identifier used for strategy selection.
	MethodName() string
}

// CheckTarget validates and normalizes a target input.
//
// Interpretation order is state first, unitary second — the deliberate
// tie-break for inputs constructible as both. Accepted inputs:
//
//   - *unitary.StateVector, *unitary.Matrix — passed through;
//   - []complex128 — amplitude vector, tried as a state;
//   - [][]complex128 — a single row (or a single column) is tried as a
//     state first, then as a unitary; anything else as a unitary.
//
// Anything that survives neither interpretation fails with ErrTargetType
// naming the input's type.
func CheckTarget(v any) (Target, error) {
	switch t := v.(type) {
	case *unitary.StateVector:
		if t == nil {
			return nil, fmt.Errorf("instantiate.CheckTarget: %w", ErrNilTarget)
		}

		return t, nil

	case *unitary.Matrix:
		if t == nil {
			return nil, fmt.Errorf("instantiate.CheckTarget: %w", ErrNilTarget)
		}

		return t, nil

	case []complex128:
		s, err := unitary.NewState(t)
		if err != nil {
			return nil, fmt.Errorf("instantiate.CheckTarget: got %T: %w", v, ErrTargetType)
		}

		return s, nil

	case [][]complex128:
		// State-first: a 1×n row or an n×1 column is an amplitude vector.
		if amps, ok := vectorShaped(t); ok {
			if s, err := unitary.NewState(amps); err == nil {
				return s, nil
			}
		}
		u, err := unitary.New(t)
		if err != nil {
			return nil, fmt.Errorf("instantiate.CheckTarget: got %T: %w", v, ErrTargetType)
		}

		return u, nil

	default:
		return nil, fmt.Errorf("instantiate.CheckTarget: got %T: %w", v, ErrTargetType)
	}
}

// vectorShaped extracts the amplitudes of a 1×n or n×1 matrix literal.
func vectorShaped(rows [][]complex128) ([]complex128, bool) {
	if len(rows) == 1 && len(rows[0]) > 1 {
		return rows[0], true
	}
	if len(rows) > 1 {
		amps := make([]complex128, len(rows))
		for i, row := range rows {
			if len(row) != 1 {
				return nil, false
			}
			amps[i] = row[0]
		}

		return amps, true
	}

	return nil, false
}

// GenStartingPoints produces multistarts independent starting vectors for
// instantiating c, each of length c.NumParams, coordinates drawn uniformly
// from [0,1) — a placeholder policy; strategies may ignore these and supply
// smarter starts.
//
// The random source is explicit and injectable so multistart generation is
// deterministic under a caller-chosen seed.
// Stage 1 (Validate): non-nil rng and circuit; multistarts > 0.
// Complexity: O(multistarts · num_params).
func GenStartingPoints(rng *rand.Rand, multistarts int, c *circuit.Circuit) ([][]float64, error) {
	if rng == nil {
		return nil, fmt.Errorf("instantiate.GenStartingPoints: %w", ErrNilRand)
	}
	if c == nil {
		return nil, fmt.Errorf("instantiate.GenStartingPoints: %w", ErrNilCircuit)
	}
	if multistarts <= 0 {
		return nil, fmt.Errorf("instantiate.GenStartingPoints: got %d: %w",
			multistarts, ErrNonPositiveStarts)
	}
	n := c.NumParams()
	points := make([][]float64, multistarts)
	for i := range points {
		x := make([]float64, n)
		for j := range x {
			x[j] = rng.Float64()
		}
		points[i] = x
	}

	return points, nil
}
