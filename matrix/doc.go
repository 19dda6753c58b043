// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer used by graphconv.
//
// The package offers:
//
//   - Matrix, a small interface over two-dimensional float64 arrays, and Dense,
//     its row-major implementation with bounds-checked At/Set.
//   - Kernels: Add, Sub, Mul, Scale, AddScaled, Transpose, MatVec and a Jacobi
//     Eigen solver for symmetric operators (graph Laplacians).
//   - Constructors with explicit neutral elements: NewZeros, NewOnes, NewIdentity,
//     NewFromRows and their *Like variants.
//   - Central validators returning package sentinels (ErrNonSquare,
//     ErrDimensionMismatch, ...), matched with errors.Is.
//
// Every kernel allocates a fresh result and never mutates its operands, except
// AddScaled which accumulates into an explicit destination. Loop orders are fixed,
// so results are reproducible bit for bit on the same platform.
package matrix
