// SPDX-License-Identifier: MIT

// Package gsp holds graph signal processing helpers around a symmetric
// graph operator L: symmetry checks, the graph Fourier basis (eigenvectors
// of L sorted by ascending eigenvalue), the forward/inverse graph Fourier
// transform and λ_max for Chebyshev rescaling.
//
// Eigen-decomposition uses matrix.Eigen (Jacobi rotations); tolerance and
// iteration cap are set with WithTolerance / WithMaxIter.
package gsp
