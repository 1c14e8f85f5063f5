// Package qsynth is an in-memory toolkit for quantum-circuit instantiation:
// finding the parameters that make a fixed circuit template best implement a
// target unitary operator or prepare a target quantum state.
//
// 🚀 What is qsynth?
//
//	A pure-Go numerical core that brings together:
//		• Value types: immutable unitary matrices and normalized state vectors
//		• Procrustes machinery: complex SVD + closest-unitary projection
//		• A gate capability model: constant leaves, a dense fully
//		  parameterized gate, and optional Differentiable /
//		  LocallyOptimizable capability interfaces
//		• Circuit templates: placements, composition, and the CircuitGate
//		  freezing adapter
//		• Instantiation strategies: a shared contract with multistart and
//		  target-normalization utilities, plus an alternating-sweep solver
//
// ✨ Why choose qsynth?
//
//   - Deterministic – explicit injectable randomness, reproducible runs
//   - Concurrency-safe by construction – immutable values, stateless gates,
//     pure instantiate calls
//   - Pure Go – no cgo, no BLAS/LAPACK binding to carry around
//
// Everything is organized under four subpackages:
//
//	unitary/     — Dense, Matrix, StateVector, SVD, ClosestTo
//	gate/        — Gate contract, capabilities, constant gates,
//	               VariableUnitaryGate
//	circuit/     — Circuit, CircuitGate
//	instantiate/ — Instantiater, CheckTarget, GenStartingPoints, Sweep
//
// Quick sketch:
//
//	g, _ := gate.NewVariableUnitary(1)
//	c, _ := circuit.New(1)
//	_ = c.Append(g, []int{0}, make([]float64, g.NumParams()))
//
//	target, _ := instantiate.CheckTarget([][]complex128{{0, 1}, {1, 0}})
//	s := instantiate.NewSweep()
//	rng := rand.New(rand.NewSource(7))
//	starts, _ := instantiate.GenStartingPoints(rng, 4, c)
//	x, _ := s.Instantiate(c, target, starts[0])
//
// The caller keeps the best-scoring result among starts; higher-level
// synthesis search over many templates lives above this module.
package qsynth
