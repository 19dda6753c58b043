// SPDX-License-Identifier: MIT

package gconv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/graphconv/matrix"
)

// ApplyFilters passes every signal of the batch X (M signals of length N)
// through each filter and averages per channel:
//
//	Y[i,:] = (1/M) · Σ_{j=0}^{M−1} g_i · x_j
//
// Implementation:
//   - Stage 1: validate filters (non-empty, each N×N with one shared N) and
//     the batch (M ≥ 1, every len(x_j) == N).
//   - Stage 2: per channel, sum g_i·x_j in ascending j, then divide once by M.
//
// Returns:
//   - *matrix.Dense of shape len(filters) × N. Inputs are not mutated.
//   - Non-finite products are not errors: overflow yields ±Inf or NaN
//     entries, the same policy BuildFilters applies to filter entries.
//
// Errors:
//   - ErrValue: no filters.
//   - ErrShape: nil/non-square/mismatched filter, empty batch, signal length ≠ N.
//
// Complexity:
//   - Time O(numOutputs·M·N²), Space O(numOutputs·N).
func ApplyFilters(filters []*matrix.Dense, X [][]float64, opts ...Option) (*matrix.Dense, error) {
	cfg := newConfig(opts...)

	return applyFilters(context.Background(), filters, X, cfg)
}

func applyFilters(ctx context.Context, filters []*matrix.Dense, X [][]float64, cfg config) (*matrix.Dense, error) {
	n, err := validateApply(filters, X)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	numOutputs, m := len(filters), len(X)
	Y, err := matrix.NewZeros(numOutputs, n)
	if err != nil {
		return nil, gconvErrorf(opApplyFilters, ErrShape, err)
	}
	rows := make([][]float64, numOutputs)
	err = forEachChannel(ctx, numOutputs, cfg.workers, func(i int) error {
		acc := make([]float64, n)
		for j := 0; j < m; j++ {
			y, err := matrix.MatVec(filters[i], X[j])
			if err != nil {
				return fmt.Errorf("channel %d, signal %d: %w", i, j, err)
			}
			for v := range acc {
				acc[v] += y[v]
			}
		}
		for v := range acc {
			acc[v] /= float64(m)
		}
		rows[i] = acc

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opApplyFilters, err)
	}
	// Overflow propagates as ±Inf/NaN, matching the filters BuildFilters returns.
	for i, row := range rows {
		if err = Y.SetRow(i, row); err != nil {
			return nil, fmt.Errorf("%s: %w", opApplyFilters, err)
		}
	}

	cfg.logger.DebugContext(ctx, "filters applied",
		"outputs", numOutputs,
		"nodes", n,
		"batch", m,
		"workers", cfg.workers,
		"elapsed", time.Since(start))

	return Y, nil
}

// validateApply checks filters and batch, returning the shared node count N.
func validateApply(filters []*matrix.Dense, X [][]float64) (int, error) {
	if len(filters) == 0 {
		return 0, gconvErrorf(opApplyFilters, ErrValue, errors.New("no filters"))
	}
	if filters[0] == nil {
		return 0, gconvErrorf(opApplyFilters, ErrShape, fmt.Errorf("filter 0: %w", matrix.ErrNilMatrix))
	}
	n := filters[0].Rows()
	for i, g := range filters {
		if err := matrix.ValidateSquareNonNil(g); err != nil {
			return 0, gconvErrorf(opApplyFilters, ErrShape, fmt.Errorf("filter %d: %w", i, err))
		}
		if g.Rows() != n {
			return 0, gconvErrorf(opApplyFilters, ErrShape,
				fmt.Errorf("filter %d is %d×%d, want %d×%d", i, g.Rows(), g.Cols(), n, n))
		}
	}
	if len(X) == 0 {
		return 0, gconvErrorf(opApplyFilters, ErrShape, errors.New("empty batch"))
	}
	for j, x := range X {
		if len(x) != n {
			return 0, gconvErrorf(opApplyFilters, ErrShape,
				fmt.Errorf("signal %d has length %d, want %d", j, len(x), n))
		}
	}

	return n, nil
}

// BatchFromMatrix turns an M×N matrix into M signals of length N (row copies).
// Errors: ErrShape for a nil matrix.
func BatchFromMatrix(m matrix.Matrix) ([][]float64, error) {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return nil, gconvErrorf(opBatchFromMatrix, ErrShape, err)
	}

	return rows, nil
}
