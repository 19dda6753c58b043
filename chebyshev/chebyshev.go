// SPDX-License-Identifier: MIT

package chebyshev

import (
	"fmt"

	"github.com/katalvlaran/graphconv/matrix"
)

// validateSquare reports a nil or rectangular X as ErrShape.
func validateSquare(method string, X matrix.Matrix) error {
	if err := matrix.ValidateSquareNonNil(X); err != nil {
		return chebErrorf(method, ErrShape, err)
	}

	return nil
}

// base builds T₀ for an n×n argument according to the configured convention.
func base(n int, cfg config) (*matrix.Dense, error) {
	if cfg.base == BaseIdentity {
		return matrix.NewIdentity(n)
	}

	return matrix.NewOnes(n, n)
}

// step computes next = twoX·cur − prev.
func step(twoX *matrix.Dense, cur, prev *matrix.Dense) (*matrix.Dense, error) {
	prod, err := matrix.Mul(twoX, cur)
	if err != nil {
		return nil, err
	}
	next := prod.(*matrix.Dense)
	if err = matrix.AddScaled(next, -1, prev); err != nil {
		return nil, err
	}

	return next, nil
}

// prepare validates X and returns a private Dense copy plus its doubled form.
func prepare(method string, X matrix.Matrix) (x, twoX *matrix.Dense, err error) {
	if err = validateSquare(method, X); err != nil {
		return nil, nil, err
	}
	src, err := matrix.AsDense(X)
	if err != nil {
		return nil, nil, chebErrorf(method, ErrShape, err)
	}
	x = src.Clone().(*matrix.Dense)
	scaled, err := matrix.Scale(x, 2)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", method, err)
	}

	return x, scaled.(*matrix.Dense), nil
}

// T returns the degree-n Chebyshev term of the square matrix X.
//
// Implementation:
//   - Stage 1: validate X (non-nil, square) then n ≥ 0.
//   - Stage 2: n=0 → base term; n=1 → copy of X.
//   - Stage 3: roll (prev, cur) forward with next = (2X)·cur − prev, n−1 times.
//
// Errors:
//   - ErrShape (with matrix.ErrNilMatrix or matrix.ErrNonSquare), ErrValue (n < 0).
//
// Complexity:
//   - Time O(n·N³) for an N×N argument, Space O(N²).
func T(n int, X matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	x, twoX, err := prepare(methodT, X)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, chebErrorf(methodT, ErrValue, fmt.Errorf("degree %d < 0", n))
	}
	cfg := newConfig(opts...)

	prev, err := base(x.Rows(), cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodT, err)
	}
	if n == 0 {
		return prev, nil
	}
	cur := x
	for k := 2; k <= n; k++ {
		next, err := step(twoX, cur, prev)
		if err != nil {
			return nil, fmt.Errorf("%s: degree %d: %w", methodT, k, err)
		}
		prev, cur = cur, next
	}

	return cur, nil
}

// Basis returns the K terms T₀(X)..T_{K−1}(X) computed in a single pass.
//
// Behavior highlights:
//   - K−2 matrix multiplications in total instead of the exponential count of
//     the naive recursion; each term is an independent allocation.
//
// Errors:
//   - ErrShape (nil or non-square X), ErrValue (K ≤ 0).
//
// Complexity:
//   - Time O(K·N³), Space O(K·N²).
func Basis(K int, X matrix.Matrix, opts ...Option) ([]*matrix.Dense, error) {
	x, twoX, err := prepare(methodBasis, X)
	if err != nil {
		return nil, err
	}
	if K <= 0 {
		return nil, chebErrorf(methodBasis, ErrValue, fmt.Errorf("K=%d must be > 0", K))
	}
	cfg := newConfig(opts...)

	terms := make([]*matrix.Dense, K)
	if terms[0], err = base(x.Rows(), cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBasis, err)
	}
	if K == 1 {
		return terms, nil
	}
	terms[1] = x
	for k := 2; k < K; k++ {
		if terms[k], err = step(twoX, terms[k-1], terms[k-2]); err != nil {
			return nil, fmt.Errorf("%s: degree %d: %w", methodBasis, k, err)
		}
	}

	return terms, nil
}

// Recursive evaluates Tₙ(X) by the literal two-branch recursion
// (2X)·T(n−1) − T(n−2). It recomputes shared subproblems and costs O(2ⁿ)
// multiplications; use T or Basis outside of tests and cross-checks.
//
// Errors: same as T.
func Recursive(n int, X matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := validateSquare(methodRecursive, X); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, chebErrorf(methodRecursive, ErrValue, fmt.Errorf("degree %d < 0", n))
	}
	cfg := newConfig(opts...)

	var rec func(k int) (*matrix.Dense, error)
	rec = func(k int) (*matrix.Dense, error) {
		switch k {
		case 0:
			return base(X.Rows(), cfg)
		case 1:
			return matrix.AsDense(X.Clone())
		}
		twoX, err := matrix.Scale(X, 2)
		if err != nil {
			return nil, err
		}
		left, err := rec(k - 1)
		if err != nil {
			return nil, err
		}
		prod, err := matrix.Mul(twoX, left)
		if err != nil {
			return nil, err
		}
		right, err := rec(k - 2)
		if err != nil {
			return nil, err
		}
		diff, err := matrix.Sub(prod, right)
		if err != nil {
			return nil, err
		}

		return diff.(*matrix.Dense), nil
	}

	out, err := rec(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRecursive, err)
	}

	return out, nil
}

// Combine returns Σ_k coeffs[k]·terms[k], accumulated in ascending k.
// All terms must share one shape; len(coeffs) must equal len(terms).
//
// Errors:
//   - ErrValue for empty input or a coefficient/term count mismatch.
//   - ErrShape for nil or mismatched terms.
func Combine(coeffs []float64, terms []*matrix.Dense) (*matrix.Dense, error) {
	if len(terms) == 0 || len(coeffs) != len(terms) {
		return nil, chebErrorf(methodCombine, ErrValue,
			fmt.Errorf("%d coefficients for %d terms", len(coeffs), len(terms)))
	}
	if terms[0] == nil {
		return nil, chebErrorf(methodCombine, ErrShape, matrix.ErrNilMatrix)
	}
	acc, err := matrix.ZerosLike(terms[0])
	if err != nil {
		return nil, chebErrorf(methodCombine, ErrShape, err)
	}
	for k, term := range terms {
		if term == nil {
			return nil, chebErrorf(methodCombine, ErrShape, fmt.Errorf("term %d: %w", k, matrix.ErrNilMatrix))
		}
		if err = matrix.AddScaled(acc, coeffs[k], term); err != nil {
			return nil, chebErrorf(methodCombine, ErrShape, fmt.Errorf("term %d: %w", k, err))
		}
	}

	return acc, nil
}
