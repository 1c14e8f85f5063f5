// Package instantiate: the alternating-sweep strategy.
//
// Sweep instantiates chains of full-width locally-optimizable gates by
// alternating maximization: each gate in turn receives the environment
// matrix accumulated from the target and every other gate's current unitary,
// and answers with its closed-form Procrustes best response. Every response
// maximizes that gate's term exactly, so the Hilbert–Schmidt overlap with
// the target is monotone non-decreasing across the sweep; the loop stops
// when a sweep's gain drops below the configured tolerance or the sweep
// budget is exhausted.
//
// Topology restriction: every placement must be LocallyOptimizable and span
// all register qudits in register order. That keeps the environment a pure
// product chain — no partial traces — which is exactly the regime where the
// per-gate best response is available in closed form.
package instantiate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qsynth/circuit"
	"github.com/katalvlaran/qsynth/gate"
	"github.com/katalvlaran/qsynth/unitary"
)

// Sweep is the alternating-maximization strategy. The zero value is not
// ready for use; build with NewSweep. A Sweep carries only immutable
// configuration, so one instance may serve any number of concurrent
// Instantiate calls.
type Sweep struct {
	maxSweeps int
	tol       float64
}

// NewSweep constructs the strategy with the given option overrides.
func NewSweep(opts ...Option) *Sweep {
	o := gatherOptions(opts...)

	return &Sweep{maxSweeps: o.maxSweeps, tol: o.tol}
}

// MethodName returns the stable strategy identifier.
func (s *Sweep) MethodName() string { return "sweep" }

// IsCapable reports whether every placement is a full-width, register-
// ordered, locally-optimizable gate. Complexity: O(ops · num_qudits).
func (s *Sweep) IsCapable(c *circuit.Circuit) bool {
	if c == nil {
		return false
	}
	for i := 0; i < c.NumOperations(); i++ {
		op, err := c.Operation(i)
		if err != nil {
			return false
		}
		if violation(c, op) != "" {
			return false
		}
	}

	return true
}

// ViolationReport diagnoses why c is out of reach for this strategy, one
// line per offending placement. Precondition: !IsCapable(c) — calling it on
// a capable circuit fails with ErrCircuitCapable.
func (s *Sweep) ViolationReport(c *circuit.Circuit) (string, error) {
	if c == nil {
		return "", fmt.Errorf("Sweep.ViolationReport: %w", ErrNilCircuit)
	}
	if s.IsCapable(c) {
		return "", fmt.Errorf("Sweep.ViolationReport: %w", ErrCircuitCapable)
	}
	var b strings.Builder
	b.WriteString("sweep strategy cannot instantiate this circuit:\n")
	for i := 0; i < c.NumOperations(); i++ {
		op, err := c.Operation(i)
		if err != nil {
			return "", fmt.Errorf("Sweep.ViolationReport: %w", err)
		}
		if msg := violation(c, op); msg != "" {
			fmt.Fprintf(&b, "  operation %d (%s): %s\n", i, op.Gate().Name(), msg)
		}
	}

	return b.String(), nil
}

// violation names the first reason op blocks the sweep, or "" when it fits.
func violation(c *circuit.Circuit, op circuit.Operation) string {
	g := op.Gate()
	if !gate.IsLocallyOptimizable(g) {
		return "gate is not locally optimizable"
	}
	if g.NumQudits() != c.NumQudits() {
		return fmt.Sprintf("acts on %d of %d qudits; sweep needs full-width chains",
			g.NumQudits(), c.NumQudits())
	}
	for k, q := range op.Location() {
		if q != k {
			return fmt.Sprintf("location %v is permuted; sweep needs register order",
				op.Location())
		}
	}

	return ""
}

// Instantiate runs alternating per-gate best responses from x0 and returns
// the final flat parameter vector. Side-effect free: the circuit, the
// strategy, and the gates are only read.
//
// Stage 1 (Validate): nil guards, x0 length, capability, target dimension.
// Stage 2 (Prepare): lower the target to its seed matrix, decode x0.
// Stage 3 (Execute): alternating sweeps until the overlap gain < tolerance.
// Complexity: O(sweeps · ops² · d³).
func (s *Sweep) Instantiate(c *circuit.Circuit, target Target, x0 []float64) ([]float64, error) {
	if c == nil {
		return nil, fmt.Errorf("Sweep.Instantiate: %w", ErrNilCircuit)
	}
	if target == nil {
		return nil, fmt.Errorf("Sweep.Instantiate: %w", ErrNilTarget)
	}
	if len(x0) != c.NumParams() {
		return nil, fmt.Errorf("Sweep.Instantiate: expected %d, got %d: %w",
			c.NumParams(), len(x0), ErrParamLength)
	}
	if !s.IsCapable(c) {
		return nil, fmt.Errorf("Sweep.Instantiate: %w", ErrNotCapable)
	}
	if target.Dim() != c.Dim() {
		return nil, fmt.Errorf("Sweep.Instantiate: target dim %d vs circuit dim %d: %w",
			target.Dim(), c.Dim(), ErrTargetDim)
	}
	k := c.NumOperations()
	if k == 0 {
		return []float64{}, nil
	}
	seed, err := seedMatrix(target)
	if err != nil {
		return nil, fmt.Errorf("Sweep.Instantiate: %w", err)
	}
	ident, err := unitary.Identity(c.Dim(), c.Radixes())
	if err != nil {
		return nil, fmt.Errorf("Sweep.Instantiate: %w", err)
	}

	// Decode the starting point into per-placement state.
	gates := make([]gate.LocallyOptimizable, k)
	params := make([][]float64, k)
	us := make([]*unitary.Matrix, k)
	off := 0
	for i := 0; i < k; i++ {
		op, opErr := c.Operation(i)
		if opErr != nil {
			return nil, fmt.Errorf("Sweep.Instantiate: %w", opErr)
		}
		lo := op.Gate().(gate.LocallyOptimizable) // guaranteed by IsCapable
		n := lo.NumParams()
		p := make([]float64, n)
		copy(p, x0[off:off+n])
		off += n
		u, uErr := lo.Unitary(p)
		if uErr != nil {
			return nil, fmt.Errorf("Sweep.Instantiate: operation %d: %w", i, uErr)
		}
		gates[i], params[i], us[i] = lo, p, u
	}

	cost, err := chainOverlap(us, ident, seed)
	if err != nil {
		return nil, fmt.Errorf("Sweep.Instantiate: %w", err)
	}
	for sweep := 0; sweep < s.maxSweeps; sweep++ {
		for i := 0; i < k; i++ {
			env, envErr := environment(us, i, ident, seed)
			if envErr != nil {
				return nil, fmt.Errorf("Sweep.Instantiate: operation %d: %w", i, envErr)
			}
			p, optErr := gates[i].Optimize(env)
			if optErr != nil {
				return nil, fmt.Errorf("Sweep.Instantiate: operation %d: %w", i, optErr)
			}
			u, uErr := gates[i].Unitary(p)
			if uErr != nil {
				return nil, fmt.Errorf("Sweep.Instantiate: operation %d: %w", i, uErr)
			}
			params[i], us[i] = p, u
		}
		next, ovErr := chainOverlap(us, ident, seed)
		if ovErr != nil {
			return nil, fmt.Errorf("Sweep.Instantiate: %w", ovErr)
		}
		gain := next - cost
		cost = next
		if gain < s.tol {
			break
		}
	}

	out := make([]float64, 0, c.NumParams())
	for _, p := range params {
		out = append(out, p...)
	}

	return out, nil
}

// seedMatrix lowers a target to the matrix the overlap functional is taken
// against: a unitary target is used as-is; a state target |ψ⟩ becomes the
// rank-1 preparation seed |ψ⟩⟨0…0|, since Re tr(U†|ψ⟩⟨0|) = Re ⟨ψ|U|0⟩.
func seedMatrix(target Target) (*unitary.Dense, error) {
	switch t := target.(type) {
	case *unitary.Matrix:
		return t.Dense(), nil

	case *unitary.StateVector:
		d := t.Dim()
		rows := make([][]complex128, d)
		amps := t.Amplitudes()
		for i := 0; i < d; i++ {
			rows[i] = make([]complex128, d)
			rows[i][0] = amps[i]
		}

		return unitary.NewDense(rows)

	default:
		return nil, fmt.Errorf("seed: got %T: %w", target, ErrTargetType)
	}
}

// chainProduct returns us[hi-1]·…·us[lo] (identity when the range is empty).
func chainProduct(us []*unitary.Matrix, lo, hi int, ident *unitary.Matrix) (*unitary.Matrix, error) {
	prod := ident
	for j := lo; j < hi; j++ {
		next, err := us[j].Mul(prod)
		if err != nil {
			return nil, err
		}
		prod = next
	}

	return prod, nil
}

// chainOverlap returns Re tr(U_total† · seed) for U_total = us[k-1]·…·us[0].
func chainOverlap(us []*unitary.Matrix, ident *unitary.Matrix, seed *unitary.Dense) (float64, error) {
	total, err := chainProduct(us, 0, len(us), ident)
	if err != nil {
		return 0, err
	}

	return total.Dense().HSOverlap(seed)
}

// environment accumulates gate i's environment E_i = R† · seed · L†, where
// L = us[i-1]·…·us[0] and R = us[k-1]·…·us[i+1]. By trace cyclicity the
// total overlap equals Re tr(U_i† · E_i), so gate i's Procrustes response to
// E_i is its exact best response given the others.
func environment(us []*unitary.Matrix, i int, ident *unitary.Matrix, seed *unitary.Dense) (*unitary.Dense, error) {
	left, err := chainProduct(us, 0, i, ident)
	if err != nil {
		return nil, err
	}
	right, err := chainProduct(us, i+1, len(us), ident)
	if err != nil {
		return nil, err
	}
	e, err := right.Dagger().Dense().Mul(seed)
	if err != nil {
		return nil, err
	}

	return e.Mul(left.Dagger().Dense())
}
