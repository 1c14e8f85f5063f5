// SPDX-License-Identifier: MIT
// Package unitary: complex singular value decomposition.
//
// Purpose:
//   - Decompose a square complex matrix M as M = U·diag(σ)·V† with U, V
//     unitary and σ descending, non-negative.
//   - Stay total: singular, rank-deficient, and repeated-singular-value
//     inputs are all handled; missing column directions are completed to a
//     full unitary basis.
//
// Method:
//   - One-sided Jacobi on columns. Each pass rotates every column pair so
//     their inner product vanishes; the complex phase of the inner product
//     is factored out so the 2×2 subproblem reduces to the classic real
//     Jacobi rotation (same scheme as the symmetric eigen kernel this
//     package's ancestry uses for real matrices).
//   - Convergence is declared after a sweep that applies no rotation; the
//     sweep budget is generous for the dimensions circuits reach, and
//     exhaustion surfaces as ErrSVDConvergence rather than a silent result.
//
// Determinism:
//   - Fixed (p,q) sweep order, fixed rotation formulas, no randomness. The
//     factors are deterministic for a given input (ties between equal
//     singular values resolve by sweep order).

package unitary

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
)

const (
	// svdMaxSweeps bounds the number of full Jacobi passes.
	svdMaxSweeps = 64

	// svdPairTol is the relative threshold below which a column pair counts
	// as orthogonal and is left untouched.
	svdPairTol = 1e-13

	// svdRankTol is the relative threshold (vs. the largest singular value)
	// below which a column counts as a null direction and its U column is
	// produced by basis completion instead of normalization.
	svdRankTol = 1e-12
)

// SVD decomposes a square Dense matrix m into (U, sigma, V) with
// m = U·diag(sigma)·V†. U and V carry the radix labeling inferred from the
// dimension; callers that care about register shape relabel via ClosestTo.
//
// Stage 1 (Validate): nil guard, squareness.
// Stage 2 (Execute): one-sided Jacobi sweeps on a working copy.
// Stage 3 (Finalize): extract σ, normalize/complete U, sort descending.
// Complexity: O(sweeps · d³).
func SVD(m *Dense) (*Matrix, []float64, *Matrix, error) {
	if m == nil {
		return nil, nil, nil, fmt.Errorf("unitary.SVD: %w", ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, nil, nil, fmt.Errorf("unitary.SVD: %dx%d: %w",
			m.r, m.c, ErrNonSquare)
	}
	n := m.r
	rx, err := inferRadixes(n)
	if err != nil {
		// Dimension 1 carries no register shape; a 1×1 SVD is still useful
		// to callers (trivial phase factor), so label it as a single slot.
		rx = []int{n}
	}

	// Working copy A (columns evolve into U·diag(σ)) and accumulator V.
	a := m.Flat()
	v := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		v[i*n+i] = 1
	}

	converged := false
	for sweep := 0; sweep < svdMaxSweeps && !converged; sweep++ {
		rotated := false
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				// Column statistics: alpha = ‖a_p‖², beta = ‖a_q‖²,
				// g = <a_p, a_q> (conjugate-linear in the first slot).
				var alpha, beta float64
				var g complex128
				for i := 0; i < n; i++ {
					ap, aq := a[i*n+p], a[i*n+q]
					alpha += real(ap)*real(ap) + imag(ap)*imag(ap)
					beta += real(aq)*real(aq) + imag(aq)*imag(aq)
					g += complex(real(ap), -imag(ap)) * aq
				}
				gm := cmplx.Abs(g)
				if gm <= svdPairTol*math.Sqrt(alpha*beta) || gm == 0 {
					continue // already orthogonal
				}
				rotated = true

				// Factor the phase out of g, then solve the real 2×2
				// Jacobi rotation for the Gram matrix [[alpha,|g|],[|g|,beta]].
				phase := g / complex(gm, 0)
				zeta := (beta - alpha) / (2 * gm)
				t := math.Copysign(1, zeta) / (math.Abs(zeta) + math.Sqrt(1+zeta*zeta))
				c := 1 / math.Sqrt(1+t*t)
				s := c * t
				cs := complex(c, 0)
				sNeg := complex(s, 0) * cmplx.Conj(phase) // s·e^{-iφ}
				sPos := complex(s, 0) * phase             // s·e^{+iφ}

				// Apply the rotation to columns p,q of A and V.
				for i := 0; i < n; i++ {
					ap, aq := a[i*n+p], a[i*n+q]
					a[i*n+p] = cs*ap - sNeg*aq
					a[i*n+q] = sPos*ap + cs*aq
					vp, vq := v[i*n+p], v[i*n+q]
					v[i*n+p] = cs*vp - sNeg*vq
					v[i*n+q] = sPos*vp + cs*vq
				}
			}
		}
		converged = !rotated
	}
	if !converged {
		return nil, nil, nil, fmt.Errorf("unitary.SVD: %w", ErrSVDConvergence)
	}

	// Extract singular values and order columns descending.
	sigma := make([]float64, n)
	order := make([]int, n)
	for j := 0; j < n; j++ {
		var norm2 float64
		for i := 0; i < n; i++ {
			z := a[i*n+j]
			norm2 += real(z)*real(z) + imag(z)*imag(z)
		}
		sigma[j] = math.Sqrt(norm2)
		order[j] = j
	}
	sort.SliceStable(order, func(x, y int) bool {
		return sigma[order[x]] > sigma[order[y]]
	})

	sortedSigma := make([]float64, n)
	u := make([]complex128, n*n)
	vOut := make([]complex128, n*n)
	sigMax := sigma[order[0]]
	null := make([]int, 0, n) // destination columns awaiting completion
	for dst, src := range order {
		sortedSigma[dst] = sigma[src]
		for i := 0; i < n; i++ {
			vOut[i*n+dst] = v[i*n+src]
		}
		if sigma[src] <= svdRankTol*sigMax || sigma[src] == 0 {
			null = append(null, dst)
			continue
		}
		inv := complex(1/sigma[src], 0)
		for i := 0; i < n; i++ {
			u[i*n+dst] = a[i*n+src] * inv
		}
	}
	if len(null) > 0 {
		completeColumns(u, n, null)
	}

	return fromFlat(u, n, rx), sortedSigma, fromFlat(vOut, n, append([]int(nil), rx...)), nil
}

// completeColumns fills the listed (zero) columns of the n×n column set u
// with unit vectors orthogonal to every already-present column, via modified
// Gram–Schmidt over the canonical basis. The existing columns are orthonormal
// by construction, so completion always succeeds.
func completeColumns(u []complex128, n int, null []int) {
	filled := make([]int, 0, n)
	nullSet := make(map[int]bool, len(null))
	for _, j := range null {
		nullSet[j] = true
	}
	for j := 0; j < n; j++ {
		if !nullSet[j] {
			filled = append(filled, j)
		}
	}

	work := make([]complex128, n)
	best := make([]complex128, n)
	for _, dst := range null {
		// Among all canonical candidates keep the one with the largest
		// residual after projecting out the present columns. With k columns
		// filled the residual norms sum to n-k across candidates, so the
		// best residual is at least (n-k)/n > 0 and normalization is stable.
		bestNorm2 := -1.0
		for cand := 0; cand < n; cand++ {
			for i := range work {
				work[i] = 0
			}
			work[cand] = 1
			for _, col := range filled {
				// proj = <u_col, e> ; e -= proj·u_col
				var proj complex128
				for i := 0; i < n; i++ {
					z := u[i*n+col]
					proj += complex(real(z), -imag(z)) * work[i]
				}
				for i := 0; i < n; i++ {
					work[i] -= proj * u[i*n+col]
				}
			}
			var norm2 float64
			for _, z := range work {
				norm2 += real(z)*real(z) + imag(z)*imag(z)
			}
			if norm2 > bestNorm2 {
				bestNorm2 = norm2
				copy(best, work)
			}
		}
		inv := complex(1/math.Sqrt(bestNorm2), 0)
		for i := 0; i < n; i++ {
			u[i*n+dst] = best[i] * inv
		}
		filled = append(filled, dst)
	}
}
