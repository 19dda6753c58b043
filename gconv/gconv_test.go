// SPDX-License-Identifier: MIT

package gconv_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphconv/chebyshev"
	"github.com/katalvlaran/graphconv/gconv"
	"github.com/katalvlaran/graphconv/matrix"
)

func TestEndToEnd_OnesOperator(t *testing.T) {
	t.Parallel()
	L := MustOnes(t, 3)
	w := MustFromRows(t, [][]float64{{1, 0}})

	filters, err := gconv.BuildFilters(w, L, 2, 1, 3)
	require.NoError(t, err)
	require.Len(t, filters, 1)
	require.Equal(t, MustRows(t, L), MustRows(t, filters[0]))

	Y, err := gconv.ApplyFilters(filters, [][]float64{{1, 2, 3}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 6, 6}}, MustRows(t, Y))
}

func TestEndToEnd_Layer(t *testing.T) {
	t.Parallel()
	layer, err := gconv.NewLayer(1, 2, 3, MustOnes(t, 3), gconv.WithInitializer(gconv.Zeros()))
	require.NoError(t, err)
	require.NoError(t, layer.Weights().Set(0, 0, 1))

	Y, err := layer.Forward([][]float64{{1, 2, 3}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 6, 6}}, MustRows(t, Y))
}

func TestBuildFilters_OrderOneIsScaledBase(t *testing.T) {
	t.Parallel()
	L := MustRandom(t, 4, 4, 1)
	w := MustFromRows(t, [][]float64{{2.5}})

	filters, err := gconv.BuildFilters(w, L, 1, 1, 4)
	require.NoError(t, err)
	want, err := matrix.Scale(MustOnes(t, 4), 2.5)
	require.NoError(t, err)
	require.Equal(t, MustRows(t, want), MustRows(t, filters[0]))

	// Classical base yields a scaled identity instead.
	filters, err = gconv.BuildFilters(w, L, 1, 1, 4,
		gconv.WithChebyshev(chebyshev.WithBase(chebyshev.BaseIdentity)))
	require.NoError(t, err)
	I, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	want, err = matrix.Scale(I, 2.5)
	require.NoError(t, err)
	require.Equal(t, MustRows(t, want), MustRows(t, filters[0]))
}

func TestBuildFilters_MatchesDirectSum(t *testing.T) {
	t.Parallel()
	const n, K, outputs = 5, 4, 3
	L := MustRandom(t, n, n, 2)
	w := MustRandom(t, outputs, K, 3)

	filters, err := gconv.BuildFilters(w, L, K, outputs, n)
	require.NoError(t, err)
	require.Len(t, filters, outputs)
	for i := 0; i < outputs; i++ {
		want, err := matrix.NewZeros(n, n)
		require.NoError(t, err)
		for k := 0; k < K; k++ {
			Tk, err := chebyshev.Recursive(k, L)
			require.NoError(t, err)
			wik, _ := w.At(i, k)
			require.NoError(t, matrix.AddScaled(want, wik, Tk))
		}
		ok, err := matrix.AllClose(filters[i], want, 1e-12, 1e-12)
		require.NoError(t, err)
		require.True(t, ok, "channel %d", i)
	}
}

func TestBuildFilters_Errors(t *testing.T) {
	t.Parallel()
	L := MustRandom(t, 3, 3, 1)
	rect := MustRandom(t, 3, 2, 1)
	w := MustRandom(t, 2, 2, 1)

	tests := []struct {
		name                    string
		w, L                    matrix.Matrix
		K, numOutputs, numNodes int
		want                    error
	}{
		{"K zero", w, L, 0, 2, 3, gconv.ErrValue},
		{"outputs zero", w, L, 2, 0, 3, gconv.ErrValue},
		{"nodes negative", w, L, 2, 2, -1, gconv.ErrValue},
		{"size checked before shape", w, rect, 0, 2, 3, gconv.ErrValue},
		{"nil operator", w, nil, 2, 2, 3, gconv.ErrShape},
		{"non-square operator", w, rect, 2, 2, 3, gconv.ErrShape},
		{"node count mismatch", w, L, 2, 2, 4, gconv.ErrShape},
		{"nil weights", nil, L, 2, 2, 3, gconv.ErrShape},
		{"weights rows", w, L, 2, 3, 3, gconv.ErrShape},
		{"weights cols", w, L, 3, 2, 3, gconv.ErrShape},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := gconv.BuildFilters(tc.w, tc.L, tc.K, tc.numOutputs, tc.numNodes)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := gconv.BuildFilters(w, rect, 2, 2, 3)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestApplyFilters_IdenticalSignals(t *testing.T) {
	t.Parallel()
	const n = 6
	L := MustRandomInts(t, n, n, -3, 3, 4)
	w := MustFromRows(t, [][]float64{{1}})
	filters, err := gconv.BuildFilters(w, L, 1, 1, n)
	require.NoError(t, err)

	v := []float64{1, -2, 3, 0, 5, -1}
	want, err := matrix.MatVec(filters[0], v)
	require.NoError(t, err)

	for _, m := range []int{1, 2, 7} {
		batch := make([][]float64, m)
		for j := range batch {
			batch[j] = append([]float64(nil), v...)
		}
		Y, err := gconv.ApplyFilters(filters, batch)
		require.NoError(t, err)
		row, err := Y.Row(0)
		require.NoError(t, err)
		require.Equal(t, want, row, "M=%d", m)
	}
}

func TestApplyFilters_Average(t *testing.T) {
	t.Parallel()
	I := MustFromRows(t, [][]float64{{1, 0}, {0, 1}})
	twoI := MustFromRows(t, [][]float64{{2, 0}, {0, 2}})

	Y, err := gconv.ApplyFilters([]*matrix.Dense{I, twoI}, [][]float64{{1, 3}, {3, 5}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 4}, {4, 8}}, MustRows(t, Y))
}

func TestApplyFilters_Errors(t *testing.T) {
	t.Parallel()
	g := MustOnes(t, 3)
	rect := MustRandom(t, 3, 2, 1)

	tests := []struct {
		name    string
		filters []*matrix.Dense
		X       [][]float64
		want    error
	}{
		{"no filters", nil, [][]float64{{1, 2, 3}}, gconv.ErrValue},
		{"empty batch", []*matrix.Dense{g}, [][]float64{}, gconv.ErrShape},
		{"nil batch", []*matrix.Dense{g}, nil, gconv.ErrShape},
		{"short signal", []*matrix.Dense{g}, [][]float64{{1, 2, 3}, {1, 2}}, gconv.ErrShape},
		{"nil filter", []*matrix.Dense{g, nil}, [][]float64{{1, 2, 3}}, gconv.ErrShape},
		{"first filter nil", []*matrix.Dense{nil}, [][]float64{{1, 2, 3}}, gconv.ErrShape},
		{"rectangular filter", []*matrix.Dense{rect}, [][]float64{{1, 2}}, gconv.ErrShape},
		{"mixed sizes", []*matrix.Dense{g, MustOnes(t, 2)}, [][]float64{{1, 2, 3}}, gconv.ErrShape},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			Y, err := gconv.ApplyFilters(tc.filters, tc.X)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, Y)
		})
	}
}

func TestApplyFilters_OverflowPropagates(t *testing.T) {
	t.Parallel()
	Y, err := gconv.ApplyFilters([]*matrix.Dense{MustOnes(t, 2)},
		[][]float64{{math.MaxFloat64, math.MaxFloat64}})
	require.NoError(t, err)
	row := MustRows(t, Y)[0]
	require.True(t, math.IsInf(row[0], 1))
	require.True(t, math.IsInf(row[1], 1))
}

func TestBuildThenApply_NonFiniteFilters(t *testing.T) {
	t.Parallel()
	L := MustFromRows(t, [][]float64{{1e200, 0}, {0, 1e200}})
	w := MustFromRows(t, [][]float64{{1, 1, 1}})

	filters, err := gconv.BuildFilters(w, L, 3, 1, 2)
	require.NoError(t, err)
	g := MustRows(t, filters[0])
	require.True(t, math.IsInf(g[0][0], 1))
	require.Equal(t, 0.0, g[0][1])

	// Inf·0 on the second row turns into NaN; neither is reported as an error.
	Y, err := gconv.ApplyFilters(filters, [][]float64{{1, 0}})
	require.NoError(t, err)
	y := MustRows(t, Y)[0]
	require.True(t, math.IsInf(y[0], 1))
	require.True(t, math.IsNaN(y[1]))
}

func TestForward_CancelledIsNotShapeError(t *testing.T) {
	t.Parallel()
	fc := gconv.NewFilterCache()
	layer, err := gconv.NewLayer(3, 2, 3, MustOnes(t, 3),
		gconv.WithParallel(2), gconv.WithFilterCache(fc))
	require.NoError(t, err)
	X := [][]float64{{1, 2, 3}}
	_, err = layer.Forward(X)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	Y, err := layer.ForwardContext(ctx, X)
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, gconv.ErrShape)
	require.Nil(t, Y)
	hits, _ := fc.Stats()
	require.Equal(t, uint64(1), hits, "filters came from the cache")
}

func TestParallelMatchesSerial(t *testing.T) {
	t.Parallel()
	const n, K, outputs, m = 12, 5, 9, 20
	L := MustRandom(t, n, n, 10)
	w := MustRandom(t, outputs, K, 11)
	X := RandomBatch(m, n, 12)

	serial, err := gconv.BuildFilters(w, L, K, outputs, n)
	require.NoError(t, err)
	ys, err := gconv.ApplyFilters(serial, X)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 16} {
		par, err := gconv.BuildFilters(w, L, K, outputs, n, gconv.WithParallel(workers))
		require.NoError(t, err)
		for i := range par {
			require.Equal(t, MustRows(t, serial[i]), MustRows(t, par[i]))
		}
		yp, err := gconv.ApplyFilters(par, X, gconv.WithParallel(workers))
		require.NoError(t, err)
		require.Equal(t, MustRows(t, ys), MustRows(t, yp), "workers=%d", workers)
	}
	require.Panics(t, func() { gconv.WithParallel(0) })
}

func TestBatchFromMatrix(t *testing.T) {
	t.Parallel()
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	batch, err := gconv.BatchFromMatrix(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, batch)

	batch[0][0] = 99
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	_, err = gconv.BatchFromMatrix(nil)
	require.ErrorIs(t, err, gconv.ErrShape)
}

func TestWithLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	filters, err := gconv.BuildFilters(MustFromRows(t, [][]float64{{1, 1}}), MustOnes(t, 2), 2, 1, 2,
		gconv.WithLogger(logger))
	require.NoError(t, err)
	_, err = gconv.ApplyFilters(filters, [][]float64{{1, 1}}, gconv.WithLogger(logger))
	require.NoError(t, err)

	require.Contains(t, buf.String(), "filters built")
	require.Contains(t, buf.String(), "filters applied")
	require.Panics(t, func() { gconv.WithLogger(nil) })
}
