// SPDX-License-Identifier: MIT

package chebyshev_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphconv/matrix"
)

// hide masks the concrete *Dense type to force interface fallbacks.
type hide struct{ matrix.Matrix }

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustRandom returns an n×n matrix with entries uniform in [-1, 1).
func MustRandom(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	require.NoError(t, m.Apply(func(_, _ int, _ float64) float64 {
		return 2*rng.Float64() - 1
	}))

	return m
}

// RequireClose asserts element-wise closeness with a shared tolerance.
func RequireClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, tol, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}
