// SPDX-License-Identifier: MIT
// Package matrix — public constructors and thin helpers.
//
// Purpose:
//   - Provide well-documented entry points to build matrices with explicit neutral elements.
//   - Convert between Matrix and plain [][]float64 rows for callers outside the package.
//
// Determinism & Policy:
//   - Helpers never change loop orders or numeric policy of the kernels they call.

package matrix

import (
	"fmt"
	"math"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewOnes returns a rows×cols *Dense with every entry equal to 1.
// Complexity: O(r*c).
func NewOnes(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = 1.0
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewFromRows copies a rectangular [][]float64 into a fresh *Dense.
//
// Errors:
//   - ErrInvalidDimensions for no rows or empty rows.
//   - ErrRaggedRows when rows differ in length.
//   - ErrNaNInf for non-finite entries (default numeric policy).
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("NewFromRows", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("NewFromRows", err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf("NewFromRows", fmt.Errorf("row %d has %d cols, want %d: %w", i, len(row), c, ErrRaggedRows))
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf("NewFromRows", denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// ToRows copies m into a freshly allocated [][]float64 (row-major).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
	}
	each(m, func(i, j int, v float64) bool {
		out[i][j] = v
		return true
	})

	return out, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// OnesLike returns an all-ones matrix with the same shape as m.
func OnesLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("OnesLike", err)
	}

	return NewOnes(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// AsDense returns m as *Dense, copying only when m has another concrete type.
// Callers must not mutate the result when it aliases m.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("AsDense", err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf("AsDense", err)
	}

	return d, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close. Negative tolerances are normalized to their absolute value.
//
// Errors: ErrNaNInf (non-finite tolerance), ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c), early exit on the first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	allClose := true
	each(a, func(i, j int, av float64) bool {
		bv, _ := b.At(i, j)
		if av == bv { // covers equal infinities
			return true
		}
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			allClose = false
			return false
		}
		return true
	})

	return allClose, nil
}

// Symmetrize returns (m + mᵀ)/2 for a square m.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n^2).
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	n := src.r
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.data[i*n+j] = 0.5 * (src.data[i*n+j] + src.data[j*n+i])
		}
	}

	return out, nil
}
