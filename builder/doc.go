// SPDX-License-Identifier: MIT

// Package builder provides deterministic graph constructors used to produce
// graph operators for convolution experiments.
//
// Constructors are values of type Constructor applied by BuildGraph in order
// to a fresh core.Graph:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.RandomDense(5))
//
// Topologies:
//   - Cycle(n)           ring C_n, n ≥ 3.
//   - Path(n)            path P_n, n ≥ 2.
//   - Star(n)            hub "0" plus n−1 leaves, n ≥ 2.
//   - Grid(rows, cols)   4-neighbour lattice, IDs "r,c".
//   - Complete(n)        K_n, n ≥ 1.
//   - RandomSparse(n,p)  Erdős–Rényi G(n,p); needs an RNG when 0 < p < 1.
//   - RandomDense(n)     every pair connected, weights U[0,1) by default;
//     always needs an RNG.
//
// Options (BuilderOption):
//   - WithIDScheme / WithSymbNumb: vertex naming.
//   - WithSeed / WithRand: randomness source.
//   - WithWeightFn: edge weight distribution.
//
// Option constructors panic on nil arguments (programmer error). Runtime
// failures are returned as errors wrapping ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource or ErrConstructFailed.
//
// Determinism: equal options (including the seed) give identical graphs.
package builder
