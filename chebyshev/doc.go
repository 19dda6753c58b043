// SPDX-License-Identifier: MIT

// Package chebyshev evaluates Chebyshev polynomials of a square matrix argument.
//
// The matrix recurrence is
//
//	T₀(X) = base,  T₁(X) = X,  Tₙ(X) = (2X)·Tₙ₋₁(X) − Tₙ₋₂(X)
//
// where · is matrix multiplication. By default the base term is the all-ones
// matrix shaped like X (BaseOnes); this reproduces the behaviour of the
// experiments the filters were first fitted with. WithBase(BaseIdentity)
// selects the textbook T₀ = I.
//
// Three entry points are provided:
//
//   - T(n, X): a single term, computed iteratively with O(n) multiplications.
//   - Basis(K, X): all terms T₀..T_{K−1} in one pass (the arena used by graph filters).
//   - Recursive(n, X): the naive two-branch recursion, O(2ⁿ) multiplications,
//     kept as a reference implementation for cross-checks.
//
// All functions are pure: inputs are never mutated and every returned matrix
// is freshly allocated. Errors match ErrShape (non-square or nil X) or
// ErrValue (negative degree, non-positive K) via errors.Is.
package chebyshev
