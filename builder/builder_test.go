// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphconv/builder"
	"github.com/katalvlaran/graphconv/core"
)

func TestTopologies(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		cons      builder.Constructor
		vertices  int
		edges     int
		directed  bool
		wantError error
	}{
		{"cycle", builder.Cycle(5), 5, 5, false, nil},
		{"cycle directed", builder.Cycle(4), 4, 4, true, nil},
		{"cycle too small", builder.Cycle(2), 0, 0, false, builder.ErrTooFewVertices},
		{"path", builder.Path(4), 4, 3, false, nil},
		{"path too small", builder.Path(1), 0, 0, false, builder.ErrTooFewVertices},
		{"star", builder.Star(6), 6, 5, false, nil},
		{"complete", builder.Complete(5), 5, 10, false, nil},
		{"complete directed", builder.Complete(4), 4, 12, true, nil},
		{"complete single", builder.Complete(1), 1, 0, false, nil},
		{"grid", builder.Grid(2, 3), 6, 7, false, nil},
		{"grid empty", builder.Grid(0, 3), 0, 0, false, builder.ErrTooFewVertices},
		{"sparse p=1", builder.RandomSparse(4, 1), 4, 6, false, nil},
		{"sparse p=0", builder.RandomSparse(4, 0), 4, 0, false, nil},
		{"sparse bad p", builder.RandomSparse(4, 1.5), 0, 0, false, builder.ErrInvalidProbability},
		{"sparse needs rng", builder.RandomSparse(4, 0.5), 0, 0, false, builder.ErrNeedRandSource},
		{"dense needs rng", builder.RandomDense(4), 0, 0, false, builder.ErrNeedRandSource},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(tc.directed)}, nil, tc.cons)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				require.Nil(t, g)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.vertices, g.VertexCount())
			require.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestRandomDense_Deterministic(t *testing.T) {
	t.Parallel()
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomDense(5))
		require.NoError(t, err)
		return g
	}
	a, b := build(3), build(3)
	require.Equal(t, a.Edges(), b.Edges())
	require.Equal(t, 10, a.EdgeCount())
	for _, e := range a.Edges() {
		require.GreaterOrEqual(t, e.Weight, 0.0)
		require.Less(t, e.Weight, 1.0)
		back, err := a.Weight(e.To, e.From)
		require.NoError(t, err)
		require.Equal(t, e.Weight, back)
	}
	require.NotEqual(t, a.Edges(), build(4).Edges())
}

func TestRandomSparse_Seeded(t *testing.T) {
	t.Parallel()
	opts := []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(1)))}
	g, err := builder.BuildGraph(nil, opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	require.Equal(t, 30, g.VertexCount())
	require.Greater(t, g.EdgeCount(), 0)
	require.Less(t, g.EdgeCount(), 30*29/2)
}

func TestOptions(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSymbNumb("v"), builder.WithWeightFn(builder.ConstantWeightFn(0.5))},
		builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, []string{"v0", "v1", "v2"}, g.Vertices())
	w, err := g.Weight("v1", "v2")
	require.NoError(t, err)
	require.Equal(t, 0.5, w)

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(builder.PaddedIDFn(2))}, builder.Cycle(11))
	require.NoError(t, err)
	require.Equal(t, "00", g.Vertices()[0])
	require.Equal(t, "10", g.Vertices()[10])

	_, err = builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.UniformWeightFn(2, 1) })
	require.Panics(t, func() { builder.ConstantWeightFn(-1) })
	require.Equal(t, 2.0, builder.UniformWeightFn(2, 3)(nil))
}
