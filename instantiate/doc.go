// Package instantiate turns circuit templates into parameter assignments:
// given a circuit and a target (unitary to implement or state to prepare), a
// strategy searches for the parameters whose composed circuit unitary best
// approximates the target.
//
// The package provides:
//
//   - Instantiater — the strategy contract. Instantiate must be a pure
//     function of its inputs (no shared mutable state), because callers run
//     many starting points in parallel against the same strategy instance
//     and the same circuit.
//   - CheckTarget — shared target normalization: an input is interpreted as
//     a state first, then as a unitary; neither working is a terminal error
//     carrying the input's type. The state-first ordering is the deliberate
//     tie-break for inputs constructible as both.
//   - GenStartingPoints — shared multistart generation with an explicit,
//     injectable random source, so runs are reproducible under a
//     caller-chosen seed.
//   - Sweep — a concrete strategy: alternating per-gate Procrustes best
//     responses over chains of full-width locally-optimizable gates.
//
// Selection of the best result among starts belongs to the driver above this
// package, as do retries, deadlines, and parallel scheduling.
package instantiate
