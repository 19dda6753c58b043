// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphconv/matrix"
)

func TestAddSub(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{11, 22}, {33, 44}}, MustRows(t, sum))

	diff, err := matrix.Sub(b, hide{a})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{9, 18}, {27, 36}}, MustRows(t, diff))

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, want, MustRows(t, got))

	got, err = matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	require.Equal(t, want, MustRows(t, got))

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_FastPathMatchesFallback checks bitwise agreement on random data.
func TestMul_FastPathMatchesFallback(t *testing.T) {
	t.Parallel()
	a, b := MustDense(t, 9, 7), MustDense(t, 7, 5)
	RandomFill(t, a, 1)
	RandomFill(t, b, 2)
	MustSet(t, a, 3, 3, 0) // exercise zero skipping

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	require.Equal(t, MustRows(t, fast), MustRows(t, slow))
}

func TestTransposeScale(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, MustRows(t, tr))
	tr, err = matrix.Transpose(hide{a})
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())

	s, err := matrix.Scale(hide{a}, -2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}, MustRows(t, s))
	_, err = matrix.Scale(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAddScaled(t *testing.T) {
	t.Parallel()
	dst := MustFromRows(t, [][]float64{{1, 1}, {1, 1}})
	src := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, matrix.AddScaled(dst, 2, src))
	require.Equal(t, [][]float64{{3, 5}, {7, 9}}, MustRows(t, dst))
	require.NoError(t, matrix.AddScaled(dst, -1, hide{src}))
	require.Equal(t, [][]float64{{2, 3}, {4, 5}}, MustRows(t, dst))

	// A zero coefficient is a no-op.
	require.NoError(t, matrix.AddScaled(dst, 0, src))
	require.Equal(t, [][]float64{{2, 3}, {4, 5}}, MustRows(t, dst))

	require.ErrorIs(t, matrix.AddScaled(nil, 1, src), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.AddScaled(dst, 1, MustDense(t, 1, 2)), matrix.ErrDimensionMismatch)
}

func TestMatVec(t *testing.T) {
	t.Parallel()
	m := MustFromRows(t, [][]float64{{1, 1, 1}, {1, 2, 3}})
	y, err := matrix.MatVec(m, []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{6, 14}, y)

	y, err = matrix.MatVec(hide{m}, []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{6, 14}, y)

	_, err = matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEigen_Symmetric(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]float64{{2, 1}, {1, 2}})
	vals, Q, err := matrix.Eigen(a, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	require.NoError(t, err)
	sort.Float64s(vals)
	require.InDelta(t, 1, vals[0], 1e-12)
	require.InDelta(t, 3, vals[1], 1e-12)

	// Columns of Q are unit length.
	for k := 0; k < 2; k++ {
		q0, q1 := MustAt(t, Q, 0, k), MustAt(t, Q, 1, k)
		require.InDelta(t, 1, math.Hypot(q0, q1), 1e-12)
	}

	// Input untouched.
	require.Equal(t, [][]float64{{2, 1}, {1, 2}}, MustRows(t, a))
}

func TestEigen_Errors(t *testing.T) {
	t.Parallel()
	_, _, err := matrix.Eigen(MustFromRows(t, [][]float64{{1, 2}, {3, 4}}), 1e-9, 10)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
	_, _, err = matrix.Eigen(MustDense(t, 2, 3), 1e-9, 10)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, _, err = matrix.Eigen(MustDense(t, 2, 2), math.NaN(), 10)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	s := MustDense(t, 6, 6)
	RandomFill(t, s, 3)
	sym, err := matrix.Symmetrize(s)
	require.NoError(t, err)
	_, _, err = matrix.Eigen(sym, 1e-12, 1)
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)

	// A 1×1 matrix is already diagonal, even with zero tolerance.
	vals, _, err := matrix.Eigen(MustFromRows(t, [][]float64{{4}}), 0, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{4}, vals)
}
