// SPDX-License-Identifier: MIT

// Package graphconv is a small toolkit for spectral graph convolution built
// around the Chebyshev polynomial filter of Defferrard et al.
//
// Layout:
//
//	matrix/     — dense row-major matrices, validators, Mul/MatVec/Eigen kernels
//	chebyshev/  — Chebyshev matrix polynomials T_k(X) (iterative and recursive)
//	gconv/      — filter construction g_i = Σ_k w[i,k]·T_k(L), batch application,
//	              weights, initializers, filter cache and the Layer type
//	core/       — thread-safe weighted graph
//	builder/    — deterministic and random graph constructors
//	bfs/        — traversal and connected components
//	laplacian/  — adjacency, combinatorial and normalized Laplacians, rescaling
//	gsp/        — graph Fourier basis, GFT/IGFT, largest eigenvalue
//	cmd/gcnn-demo — CLI running one forward pass from a YAML config
//
// Quick example (three nodes, one filter of order two):
//
//	L, _ := matrix.NewOnes(3, 3)
//	w, _ := matrix.NewFromRows([][]float64{{1, 0}})
//	g, _ := gconv.BuildFilters(w, L, 2, 1, 3)
//	Y, _ := gconv.ApplyFilters(g, [][]float64{{1, 2, 3}})
//	fmt.Print(Y) // [6, 6, 6]
//
// All numeric kernels use fixed loop orders, so results are reproducible
// bit for bit, including under gconv.WithParallel.
package graphconv
