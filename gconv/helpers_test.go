// SPDX-License-Identifier: MIT

package gconv_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphconv/matrix"
)

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustOnes returns an n×n all-ones matrix.
func MustOnes(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewOnes(n, n)
	require.NoError(t, err)

	return m
}

// MustRandom returns an r×c matrix with entries uniform in [0, 1).
func MustRandom(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	require.NoError(t, m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64() }))

	return m
}

// MustRandomInts returns an r×c matrix of integers in [lo, hi].
func MustRandomInts(t testing.TB, r, c, lo, hi int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	require.NoError(t, m.Apply(func(_, _ int, _ float64) float64 {
		return float64(lo + rng.Intn(hi-lo+1))
	}))

	return m
}

// MustRows converts m to [][]float64.
func MustRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	rows, err := matrix.ToRows(m)
	require.NoError(t, err)

	return rows
}

// RandomBatch returns m signals of length n with entries in [0, 1).
func RandomBatch(m, n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, m)
	for j := range out {
		out[j] = make([]float64, n)
		for v := range out[j] {
			out[j][v] = rng.Float64()
		}
	}

	return out
}
