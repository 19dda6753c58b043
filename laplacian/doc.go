// SPDX-License-Identifier: MIT

// Package laplacian derives graph operators from a core.Graph.
//
// Given the weighted adjacency W (rows/columns in core.Graph.Vertices order)
// and the degree vector d_i = Σ_j W[i,j]:
//
//   - Combinatorial: L = D − W.
//   - Normalized:    L = I − D^{-1/2} W D^{-1/2}; isolated vertices get a zero row.
//   - Rescale:       L̃ = 2L/λ_max − I maps the spectrum of L into [-1, 1],
//     the domain where Chebyshev polynomials are bounded.
//
// Errors: ErrGraphNil, ErrEmptyGraph, ErrBadLambda, ErrUnknownKind.
package laplacian
