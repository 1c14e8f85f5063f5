// Package gate: VariableUnitaryGate, the dense fully parameterized gate.
package gate

import (
	"fmt"

	"github.com/katalvlaran/qsynth/unitary"
)

// VariableUnitaryGate is a dense d×d unitary-capable gate, d = ∏ radixes.
// Its 2·d² real parameters are the flat row-major coordinates of an
// unconstrained complex matrix: the first half holds real parts, the second
// half imaginary parts. Raw parameters are almost never exactly unitary, so
// the decoded unitary is DEFINED as the closest-unitary projection of the
// reconstruction — that projection is the gate's semantics, not a repair
// step.
//
// The gate is LocallyOptimizable (closed-form Procrustes best response) and
// intentionally not Differentiable: no gradient closed form exists for this
// kind, so the type simply does not satisfy the Differentiable interface.
type VariableUnitaryGate struct {
	numQudits int
	radixes   []int
	dim       int
}

// NewVariableUnitary constructs a gate acting on numQudits qudits,
// defaulting to qubits when the radix vector is omitted.
// Stage 1 (Validate): numQudits > 0, else ErrBadQuditCount.
// Stage 2 (Validate): radixes, when supplied, must have exactly numQudits
// entries, each >= 2, else ErrBadRadixes.
// Complexity: O(num_qudits).
func NewVariableUnitary(numQudits int, radixes ...[]int) (*VariableUnitaryGate, error) {
	if numQudits <= 0 {
		return nil, fmt.Errorf("gate.NewVariableUnitary: got %d: %w",
			numQudits, ErrBadQuditCount)
	}
	if len(radixes) > 1 {
		return nil, fmt.Errorf("gate.NewVariableUnitary: %w", ErrBadRadixes)
	}
	rx := make([]int, numQudits)
	if len(radixes) == 0 || len(radixes[0]) == 0 {
		for i := range rx {
			rx[i] = 2 // default: qubits
		}
	} else {
		if len(radixes[0]) != numQudits {
			return nil, fmt.Errorf("gate.NewVariableUnitary: %d radixes for %d qudits: %w",
				len(radixes[0]), numQudits, ErrBadRadixes)
		}
		for i, r := range radixes[0] {
			if r < 2 {
				return nil, fmt.Errorf("gate.NewVariableUnitary: radix %d: %w",
					r, ErrBadRadixes)
			}
			rx[i] = r
		}
	}
	dim := 1
	for _, r := range rx {
		dim *= r
	}

	return &VariableUnitaryGate{numQudits: numQudits, radixes: rx, dim: dim}, nil
}

// Name returns the gate identifier.
func (g *VariableUnitaryGate) Name() string {
	return fmt.Sprintf("VariableUnitary(%d)", g.numQudits)
}

// NumQudits returns the number of qudits the gate acts on.
func (g *VariableUnitaryGate) NumQudits() int { return g.numQudits }

// Radixes returns a copy of the per-qudit radix vector.
func (g *VariableUnitaryGate) Radixes() []int {
	out := make([]int, len(g.radixes))
	copy(out, g.radixes)

	return out
}

// NumParams returns 2·d²: one real and one imaginary coordinate per entry.
func (g *VariableUnitaryGate) NumParams() int { return 2 * g.dim * g.dim }

// Dim returns the unitary dimension d.
func (g *VariableUnitaryGate) Dim() int { return g.dim }

// Unitary decodes params into the nearest unitary to the reconstructed
// complex matrix.
// Stage 1 (Validate): len(params) == 2·d².
// Stage 2 (Prepare): split halves, reassemble the d×d complex matrix.
// Stage 3 (Execute): closest-unitary projection.
// Complexity: O(sweeps · d³), dominated by the SVD inside the projection.
func (g *VariableUnitaryGate) Unitary(params []float64) (*unitary.Matrix, error) {
	if err := CheckParams(g, params); err != nil {
		return nil, err
	}
	rows := g.reassemble(params)

	return unitary.ClosestToRows(rows, g.Radixes())
}

// Optimize solves the unitary Procrustes problem for env: the returned
// parameters decode (via Unitary) to the unitary maximizing Re tr(U† · env),
// attaining the closed-form bound Σσ(env).
// Stage 1 (Validate): env square of dimension d, else ErrEnvShape.
// Stage 2 (Execute): projection of env, flattened back into parameter form.
// Complexity: O(sweeps · d³).
func (g *VariableUnitaryGate) Optimize(env *unitary.Dense) ([]float64, error) {
	if env == nil {
		return nil, fmt.Errorf("%s.Optimize: %w", g.Name(), ErrEnvShape)
	}
	if env.Rows() != g.dim || env.Cols() != g.dim {
		return nil, fmt.Errorf("%s.Optimize: %dx%d for dim %d: %w",
			g.Name(), env.Rows(), env.Cols(), g.dim, ErrEnvShape)
	}
	u, err := unitary.ClosestTo(env, g.Radixes())
	if err != nil {
		return nil, fmt.Errorf("%s.Optimize: %w", g.Name(), err)
	}

	// Flatten the optimal unitary into real-then-imaginary halves; decoding
	// these params projects an already-unitary matrix, returning it intact.
	flat := u.Flat()
	mid := g.dim * g.dim
	params := make([]float64, 2*mid)
	for i, z := range flat {
		params[i] = real(z)
		params[mid+i] = imag(z)
	}

	return params, nil
}

// reassemble turns the flat real/imaginary halves into row slices.
func (g *VariableUnitaryGate) reassemble(params []float64) [][]complex128 {
	mid := g.dim * g.dim
	rows := make([][]complex128, g.dim)
	for i := 0; i < g.dim; i++ {
		rows[i] = make([]complex128, g.dim)
		for j := 0; j < g.dim; j++ {
			k := i*g.dim + j
			rows[i][j] = complex(params[k], params[mid+k])
		}
	}

	return rows
}
