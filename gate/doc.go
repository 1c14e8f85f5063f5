// Package gate defines the gate contract consumed by circuit composition and
// by instantiation strategies, plus the concrete gate catalog this core
// needs:
//
//   - Gate — the mandatory surface: qudit count, radixes, parameter count,
//     and Unitary(params).
//   - Differentiable, LocallyOptimizable — optional capability interfaces.
//     A gate advertises a capability by satisfying the interface; strategies
//     probe with IsDifferentiable / IsLocallyOptimizable instead of assuming
//     universal support, because most physical gates are constant and the
//     operations are meaningless for them.
//   - Constant leaves (NewX, NewH, NewCNOT, NewYY) — zero-parameter gates
//     returning precomputed unitaries.
//   - VariableUnitaryGate — the dense, fully parameterized gate whose
//     Unitary is defined as the closest-unitary projection of its raw
//     parameter matrix, and whose Optimize solves the unitary Procrustes
//     problem in closed form.
//
// Gates are stateless and immutable after construction; all methods are safe
// to call concurrently on shared instances.
package gate
