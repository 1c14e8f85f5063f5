// Package gate: optional capability interfaces.
//
// Capabilities are modeled as separate interfaces rather than mandatory
// methods, so constant gates never carry gradient/optimization stubs and a
// gate kind that genuinely lacks a closed form simply does not satisfy the
// interface. Strategies must probe before relying on a capability.
package gate

import "github.com/katalvlaran/qsynth/unitary"

// Differentiable is the capability of exposing the parameter gradient of the
// gate's unitary.
type Differentiable interface {
	Gate

	// Grad returns one matrix per parameter: the partial derivative of the
	// unitary with respect to that parameter, evaluated at params. A type
	// may satisfy the interface yet refuse for a particular value with
	// ErrUnsupported when support is data-dependent; callers must treat that
	// as terminal.
	Grad(params []float64) ([]*unitary.Dense, error)
}

// LocallyOptimizable is the capability of answering an accumulated
// environment matrix with closed-form best-response parameters.
type LocallyOptimizable interface {
	Gate

	// Optimize returns the parameters whose decoded unitary U maximizes the
	// alignment Re tr(U† · env). env must be square of the gate's dimension
	// (ErrEnvShape otherwise).
	Optimize(env *unitary.Dense) ([]float64, error)
}

// DifferentiabilityReporter lets adapters with data-dependent capability
// (a frozen sub-circuit) report differentiability per value instead of per
// type. IsDifferentiable consults it before falling back to the interface
// assertion.
type DifferentiabilityReporter interface {
	IsDifferentiable() bool
}

// IsDifferentiable probes whether g can produce gradients: a value-level
// report wins when available, otherwise satisfying Differentiable decides.
func IsDifferentiable(g Gate) bool {
	if g == nil {
		return false
	}
	if r, ok := g.(DifferentiabilityReporter); ok {
		return r.IsDifferentiable()
	}
	_, ok := g.(Differentiable)

	return ok
}

// IsLocallyOptimizable probes whether g answers environment matrices.
func IsLocallyOptimizable(g Gate) bool {
	if g == nil {
		return false
	}
	_, ok := g.(LocallyOptimizable)

	return ok
}
