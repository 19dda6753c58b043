// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphconv/core"
)

const (
	methodRandomSparse = "RandomSparse"
	methodRandomDense  = "RandomDense"

	minRandomVertices = 1
	probMin           = 0.0
	probMax           = 1.0
)

// RandomSparse builds an Erdős–Rényi G(n,p) graph. Pairs are visited in
// ascending (i, j) order (j > i when undirected, all j ≠ i when directed);
// each is kept when rng.Float64() < p.
//
// Errors:
//   - ErrTooFewVertices (n < 1), ErrInvalidProbability (p ∉ [0,1]),
//     ErrNeedRandSource (0 < p < 1 without an RNG).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if g.Directed() {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomDense connects every pair of distinct vertices, drawing weights from
// U[0,1) unless WithWeightFn is given. Undirected graphs get a symmetric
// weight matrix; directed graphs draw each orientation independently.
//
// Errors: ErrTooFewVertices (n < 1), ErrNeedRandSource (no RNG).
func RandomDense(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomDense, n, minRandomVertices, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomDense, ErrNeedRandSource)
		}
		if !cfg.weightSet {
			cfg.weightFn = UniformWeightFn(0, 1)
		}
		if err := addVertices(methodRandomDense, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if g.Directed() {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(methodRandomDense, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
