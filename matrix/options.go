// SPDX-License-Identifier: MIT

package matrix

// Numeric policy defaults shared by constructors and kernels.
const (
	// DefaultEpsilon is the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation in Set/Apply.
	DefaultValidateNaNInf = true

	// DefaultEigenTol is the off-diagonal threshold at which Jacobi sweeps stop.
	DefaultEigenTol = 1e-10

	// DefaultEigenMaxIter bounds the number of Jacobi rotations.
	// Roughly 5*n^2 rotations suffice for the operator sizes used here.
	DefaultEigenMaxIter = 10000
)
