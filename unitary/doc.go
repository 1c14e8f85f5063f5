// Package unitary provides the complex linear-algebra value types underneath
// quantum-circuit instantiation:
//
//   - Dense — an immutable rectangular complex matrix, the "anything goes"
//     container used for environment matrices and intermediate products.
//   - Matrix — an immutable square complex matrix that is guaranteed unitary
//     (within DefaultTol) for its whole lifetime.
//   - StateVector — an immutable normalized complex vector.
//   - SVD — a complex singular value decomposition (one-sided Jacobi).
//   - ClosestTo — the Frobenius-nearest unitary to an arbitrary complex
//     square matrix (the unitary Procrustes projection).
//
// All types are value objects: constructors copy their inputs, no setters
// exist, and every accessor that returns a slice returns a fresh copy. This
// makes sharing across concurrent instantiation calls safe by construction.
//
// Errors are package-level sentinels (prefixed "unitary:") matched with
// errors.Is; call sites wrap them with an operation tag via fmt.Errorf.
package unitary
