// Package circuit: the circuit template type and its unitary composition.
package circuit

import (
	"fmt"

	"github.com/katalvlaran/qsynth/gate"
	"github.com/katalvlaran/qsynth/unitary"
)

// Operation is one gate placement: a gate, the register qudits it acts on,
// and its slice of the circuit's parameters. Values are read-only views;
// accessors return copies.
type Operation struct {
	g      gate.Gate
	loc    []int
	params []float64
}

// Gate returns the placed gate (gates are immutable, sharing is safe).
func (op Operation) Gate() gate.Gate { return op.g }

// Location returns a copy of the qudit indices the gate acts on.
func (op Operation) Location() []int {
	out := make([]int, len(op.loc))
	copy(out, op.loc)

	return out
}

// Params returns a copy of the placement's current parameters.
func (op Operation) Params() []float64 {
	out := make([]float64, len(op.params))
	copy(out, op.params)

	return out
}

// Circuit is an ordered sequence of gate placements over a fixed qudit
// register. Structure mutates only through Append, parameters only through
// SetParams; every read path is safe for concurrent use.
type Circuit struct {
	numQudits int
	radixes   []int
	dim       int
	ops       []Operation
	numParams int
}

// New constructs an empty circuit over numQudits qudits, defaulting to
// qubits when the radix vector is omitted.
// Stage 1 (Validate): numQudits > 0; radixes length/entries when supplied.
// Complexity: O(num_qudits).
func New(numQudits int, radixes ...[]int) (*Circuit, error) {
	if numQudits <= 0 {
		return nil, fmt.Errorf("circuit.New: got %d: %w", numQudits, ErrBadQuditCount)
	}
	if len(radixes) > 1 {
		return nil, fmt.Errorf("circuit.New: %w", ErrBadRadixes)
	}
	rx := make([]int, numQudits)
	if len(radixes) == 0 || len(radixes[0]) == 0 {
		for i := range rx {
			rx[i] = 2
		}
	} else {
		if len(radixes[0]) != numQudits {
			return nil, fmt.Errorf("circuit.New: %d radixes for %d qudits: %w",
				len(radixes[0]), numQudits, ErrBadRadixes)
		}
		for i, r := range radixes[0] {
			if r < 2 {
				return nil, fmt.Errorf("circuit.New: radix %d: %w", r, ErrBadRadixes)
			}
			rx[i] = r
		}
	}
	dim := 1
	for _, r := range rx {
		dim *= r
	}

	return &Circuit{numQudits: numQudits, radixes: rx, dim: dim}, nil
}

// NumQudits returns the register width.
func (c *Circuit) NumQudits() int { return c.numQudits }

// Radixes returns a copy of the register's per-qudit radix vector.
func (c *Circuit) Radixes() []int {
	out := make([]int, len(c.radixes))
	copy(out, c.radixes)

	return out
}

// Dim returns the register's Hilbert-space dimension ∏ radixes.
func (c *Circuit) Dim() int { return c.dim }

// NumParams returns the total free parameter count across all placements.
func (c *Circuit) NumParams() int { return c.numParams }

// NumOperations returns the number of placements.
func (c *Circuit) NumOperations() int { return len(c.ops) }

// Operation returns the i-th placement view, bounds-checked.
func (c *Circuit) Operation(i int) (Operation, error) {
	if i < 0 || i >= len(c.ops) {
		return Operation{}, fmt.Errorf("Circuit.Operation(%d): %w", i, ErrOutOfRange)
	}

	return c.ops[i], nil
}

// Append places g on the given register qudits with the given parameters.
// Stage 1 (Validate): gate non-nil; location arity == g.NumQudits; indices
// in range and pairwise distinct; register radixes match the gate's at each
// location slot; len(params) == g.NumParams (nil allowed for 0).
// Stage 2 (Execute): store defensive copies.
// Complexity: O(num_qudits).
func (c *Circuit) Append(g gate.Gate, location []int, params []float64) error {
	if g == nil {
		return fmt.Errorf("Circuit.Append: %w", gate.ErrNilGate)
	}
	if len(location) != g.NumQudits() {
		return fmt.Errorf("Circuit.Append: %s wants %d qudits, location has %d: %w",
			g.Name(), g.NumQudits(), len(location), ErrBadLocation)
	}
	seen := make(map[int]bool, len(location))
	grx := g.Radixes()
	for k, q := range location {
		if q < 0 || q >= c.numQudits {
			return fmt.Errorf("Circuit.Append: qudit %d outside register of %d: %w",
				q, c.numQudits, ErrBadLocation)
		}
		if seen[q] {
			return fmt.Errorf("Circuit.Append: qudit %d repeated: %w", q, ErrBadLocation)
		}
		seen[q] = true
		if c.radixes[q] != grx[k] {
			return fmt.Errorf("Circuit.Append: qudit %d has radix %d, gate slot %d wants %d: %w",
				q, c.radixes[q], k, grx[k], ErrRadixMismatch)
		}
	}
	if len(params) != g.NumParams() {
		return fmt.Errorf("Circuit.Append: %s expects %d params, got %d: %w",
			g.Name(), g.NumParams(), len(params), ErrParamCount)
	}

	loc := make([]int, len(location))
	copy(loc, location)
	p := make([]float64, len(params))
	copy(p, params)
	c.ops = append(c.ops, Operation{g: g, loc: loc, params: p})
	c.numParams += g.NumParams()

	return nil
}

// Params returns the concatenation of all placements' parameters, in
// placement order. Complexity: O(num_params).
func (c *Circuit) Params() []float64 {
	out := make([]float64, 0, c.numParams)
	for _, op := range c.ops {
		out = append(out, op.params...)
	}

	return out
}

// SetParams overwrites all placements' parameters from a flat vector.
// Stage 1 (Validate): len(x) == NumParams, else ErrParamLength.
// Complexity: O(num_params).
func (c *Circuit) SetParams(x []float64) error {
	if len(x) != c.numParams {
		return fmt.Errorf("Circuit.SetParams: expected %d, got %d: %w",
			c.numParams, len(x), ErrParamLength)
	}
	off := 0
	for i := range c.ops {
		n := c.ops[i].g.NumParams()
		copy(c.ops[i].params, x[off:off+n])
		off += n
	}

	return nil
}

// Unitary composes the circuit's unitary from its stored parameters.
// Complexity: O(ops · d³) plus each gate's own decode cost.
func (c *Circuit) Unitary() (*unitary.Matrix, error) {
	return c.UnitaryAt(c.Params())
}

// UnitaryAt composes the circuit's unitary with a caller-supplied flat
// parameter vector, without touching stored parameters — this is the pure
// read path instantiation strategies drive concurrently.
// Stage 1 (Validate): len(x) == NumParams.
// Stage 2 (Execute): for each placement, decode its unitary, embed it into
// the full register space, and left-multiply onto the accumulator.
// Complexity: O(ops · d³).
func (c *Circuit) UnitaryAt(x []float64) (*unitary.Matrix, error) {
	if len(x) != c.numParams {
		return nil, fmt.Errorf("Circuit.UnitaryAt: expected %d, got %d: %w",
			c.numParams, len(x), ErrParamLength)
	}
	acc, err := unitary.Identity(c.dim, c.radixes)
	if err != nil {
		return nil, fmt.Errorf("Circuit.UnitaryAt: %w", err)
	}
	off := 0
	for i, op := range c.ops {
		n := op.g.NumParams()
		gu, err := op.g.Unitary(x[off : off+n : off+n])
		if err != nil {
			return nil, fmt.Errorf("Circuit.UnitaryAt: operation %d: %w", i, err)
		}
		off += n
		full, err := c.embed(gu, op.loc)
		if err != nil {
			return nil, fmt.Errorf("Circuit.UnitaryAt: operation %d: %w", i, err)
		}
		// Placement order is application order: later ops multiply on the left.
		if acc, err = full.Mul(acc); err != nil {
			return nil, fmt.Errorf("Circuit.UnitaryAt: operation %d: %w", i, err)
		}
	}

	return acc, nil
}

// IsDifferentiable reports whether every placement's gate can produce
// gradients. Complexity: O(ops).
func (c *Circuit) IsDifferentiable() bool {
	for _, op := range c.ops {
		if !gate.IsDifferentiable(op.g) {
			return false
		}
	}

	return true
}

// Copy returns a deep, independent duplicate: the structure and parameter
// slots are cloned; the (immutable) gate values are shared.
// Complexity: O(ops · num_qudits + num_params).
func (c *Circuit) Copy() *Circuit {
	dup := &Circuit{
		numQudits: c.numQudits,
		radixes:   c.Radixes(),
		dim:       c.dim,
		ops:       make([]Operation, len(c.ops)),
		numParams: c.numParams,
	}
	for i, op := range c.ops {
		dup.ops[i] = Operation{g: op.g, loc: op.Location(), params: op.Params()}
	}

	return dup
}

// embed lifts a gate unitary acting on loc into the full register space:
// basis indices factor into per-qudit digits (qudit 0 most significant), the
// gate couples only the digits at loc, and all other digits pass through.
// Complexity: O(d · gdim · num_qudits).
func (c *Circuit) embed(gu *unitary.Matrix, loc []int) (*unitary.Matrix, error) {
	if len(loc) == c.numQudits && allAscending(loc) {
		// Full-width gate in register order: nothing to permute or pad.
		return gu, nil
	}
	gdim := gu.Dim()
	gflat := gu.Flat()
	grx := gu.Radixes()

	rows := make([][]complex128, c.dim)
	digits := make([]int, c.numQudits)
	gdigits := make([]int, len(loc))
	for r := 0; r < c.dim; r++ {
		rows[r] = make([]complex128, c.dim)
		c.digitsOf(r, digits)
		// Gate row index from the digits at loc.
		gr := 0
		for k, q := range loc {
			gr = gr*grx[k] + digits[q]
		}
		for gc := 0; gc < gdim; gc++ {
			// Decompose the gate column into per-slot digits.
			rem := gc
			for k := len(loc) - 1; k >= 0; k-- {
				gdigits[k] = rem % grx[k]
				rem /= grx[k]
			}
			// Substitute them at loc to obtain the full column index.
			col := 0
			for q := 0; q < c.numQudits; q++ {
				d := digits[q]
				for k, lq := range loc {
					if lq == q {
						d = gdigits[k]
						break
					}
				}
				col = col*c.radixes[q] + d
			}
			rows[r][col] = gflat[gr*gdim+gc]
		}
	}

	return unitary.New(rows, c.radixes)
}

// digitsOf writes the mixed-radix digits of index i into dst (qudit 0 most
// significant).
func (c *Circuit) digitsOf(i int, dst []int) {
	for q := c.numQudits - 1; q >= 0; q-- {
		dst[q] = i % c.radixes[q]
		i /= c.radixes[q]
	}
}

// allAscending reports whether loc is exactly 0,1,2,...
func allAscending(loc []int) bool {
	for i, q := range loc {
		if q != i {
			return false
		}
	}

	return true
}
