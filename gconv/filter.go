// SPDX-License-Identifier: MIT

package gconv

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphconv/chebyshev"
	"github.com/katalvlaran/graphconv/matrix"
)

// BuildFilters constructs one N×N filter per output channel:
//
//	g_i = Σ_{k=0}^{K−1} w[i,k] · T_k(L)
//
// Implementation:
//   - Stage 1: validate sizes (ErrValue), then L (non-nil, square, N == numNodes),
//     then w (shape numOutputs × K); all before any arithmetic.
//   - Stage 2: evaluate T₀..T_{K−1} once with chebyshev.Basis; the terms are
//     shared by every channel.
//   - Stage 3: per channel, accumulate w[i,k]·T_k in ascending k.
//
// Inputs:
//   - w: coefficients, read only; snapshot first if another goroutine may write.
//   - L: graph operator, read only.
//
// Errors:
//   - ErrValue: K, numOutputs or numNodes ≤ 0.
//   - ErrShape: nil w/L, non-square L, N ≠ numNodes, w not numOutputs × K.
//
// Determinism:
//   - Identical output for WithParallel and the serial path.
//
// Complexity:
//   - Time O(K·N³ + numOutputs·K·N²), Space O((K + numOutputs)·N²).
func BuildFilters(w, L matrix.Matrix, K, numOutputs, numNodes int, opts ...Option) ([]*matrix.Dense, error) {
	cfg := newConfig(opts...)

	return buildFilters(context.Background(), w, L, K, numOutputs, numNodes, cfg)
}

func buildFilters(ctx context.Context, w, L matrix.Matrix, K, numOutputs, numNodes int, cfg config) ([]*matrix.Dense, error) {
	if err := validateBuild(w, L, K, numOutputs, numNodes); err != nil {
		return nil, err
	}
	start := time.Now()

	terms, err := chebyshev.Basis(K, L, cfg.chebOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuildFilters, err)
	}
	wd, err := matrix.AsDense(w)
	if err != nil {
		return nil, gconvErrorf(opBuildFilters, ErrShape, err)
	}

	filters := make([]*matrix.Dense, numOutputs)
	err = forEachChannel(ctx, numOutputs, cfg.workers, func(i int) error {
		coeffs, err := wd.Row(i)
		if err != nil {
			return err
		}
		g, err := chebyshev.Combine(coeffs, terms)
		if err != nil {
			return fmt.Errorf("channel %d: %w", i, err)
		}
		filters[i] = g

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuildFilters, err)
	}

	cfg.logger.DebugContext(ctx, "filters built",
		"outputs", numOutputs,
		"order", K,
		"nodes", numNodes,
		"workers", cfg.workers,
		"elapsed", time.Since(start))

	return filters, nil
}

// validateBuild enforces the BuildFilters contract in a fixed order.
func validateBuild(w, L matrix.Matrix, K, numOutputs, numNodes int) error {
	if K <= 0 || numOutputs <= 0 || numNodes <= 0 {
		return gconvErrorf(opBuildFilters, ErrValue,
			fmt.Errorf("K=%d, numOutputs=%d, numNodes=%d must be > 0", K, numOutputs, numNodes))
	}
	if err := matrix.ValidateSquareNonNil(L); err != nil {
		return gconvErrorf(opBuildFilters, ErrShape, fmt.Errorf("operator: %w", err))
	}
	if L.Rows() != numNodes {
		return gconvErrorf(opBuildFilters, ErrShape,
			fmt.Errorf("operator is %d×%d, want %d×%d", L.Rows(), L.Cols(), numNodes, numNodes))
	}
	if err := matrix.ValidateNotNil(w); err != nil {
		return gconvErrorf(opBuildFilters, ErrShape, fmt.Errorf("weights: %w", err))
	}
	if w.Rows() != numOutputs || w.Cols() != K {
		return gconvErrorf(opBuildFilters, ErrShape,
			fmt.Errorf("weights are %d×%d, want %d×%d", w.Rows(), w.Cols(), numOutputs, K))
	}

	return nil
}

// forEachChannel runs fn(i) for i in [0, n). With workers > 1 the calls are
// spread over an errgroup limited to workers goroutines; the first error
// cancels the remaining channels.
func forEachChannel(ctx context.Context, n, workers int, fn func(i int) error) error {
	if workers <= 1 || n == 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}

	return g.Wait()
}
