// SPDX-License-Identifier: MIT

package laplacian

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphconv/core"
	"github.com/katalvlaran/graphconv/matrix"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("laplacian: graph is nil")
	// ErrEmptyGraph is returned for a graph without vertices.
	ErrEmptyGraph = errors.New("laplacian: graph has no vertices")
	// ErrBadLambda is returned when λ_max is not a positive finite number.
	ErrBadLambda = errors.New("laplacian: lambda max must be positive and finite")
	// ErrUnknownKind is returned for an unsupported Kind.
	ErrUnknownKind = errors.New("laplacian: unknown kind")
)

// Kind selects the Laplacian variant.
type Kind int

const (
	// Combinatorial is L = D − W.
	Combinatorial Kind = iota
	// Normalized is L = I − D^{-1/2} W D^{-1/2}.
	Normalized
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Combinatorial:
		return "combinatorial"
	case Normalized:
		return "normalized"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "combinatorial" / "normalized" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "combinatorial", "":
		return Combinatorial, nil
	case "normalized":
		return Normalized, nil
	default:
		return Combinatorial, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
	}
}

// Adjacency returns the vertex order and the weighted adjacency matrix of g.
// W[i,j] = w(index[i], index[j]) or 0 without an edge. Undirected graphs give
// a symmetric W. Errors: ErrGraphNil, ErrEmptyGraph.
// Complexity: O(V² + E log E).
func Adjacency(g *core.Graph) ([]string, *matrix.Dense, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("Adjacency: %w", ErrGraphNil)
	}
	index := g.Vertices()
	if len(index) == 0 {
		return nil, nil, fmt.Errorf("Adjacency: %w", ErrEmptyGraph)
	}
	pos := make(map[string]int, len(index))
	for i, id := range index {
		pos[id] = i
	}
	W, err := matrix.NewZeros(len(index), len(index))
	if err != nil {
		return nil, nil, fmt.Errorf("Adjacency: %w", err)
	}
	for _, e := range g.Edges() {
		i, j := pos[e.From], pos[e.To]
		if err = W.Set(i, j, e.Weight); err != nil {
			return nil, nil, fmt.Errorf("Adjacency: %w", err)
		}
		if !g.Directed() {
			if err = W.Set(j, i, e.Weight); err != nil {
				return nil, nil, fmt.Errorf("Adjacency: %w", err)
			}
		}
	}

	return index, W, nil
}

// Degrees returns the row sums of W in ascending column order.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Degrees(W matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(W); err != nil {
		return nil, fmt.Errorf("Degrees: %w", err)
	}
	n := W.Rows()
	d := make([]float64, n)
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ = W.At(i, j)
			d[i] += v
		}
	}

	return d, nil
}

// CombinatorialOf returns L = D − W.
func CombinatorialOf(W matrix.Matrix) (*matrix.Dense, error) {
	d, err := Degrees(W)
	if err != nil {
		return nil, fmt.Errorf("Combinatorial: %w", err)
	}
	L, err := matrix.Scale(W, -1)
	if err != nil {
		return nil, fmt.Errorf("Combinatorial: %w", err)
	}
	out := L.(*matrix.Dense)
	for i, di := range d {
		v, _ := out.At(i, i)
		if err = out.Set(i, i, v+di); err != nil {
			return nil, fmt.Errorf("Combinatorial: %w", err)
		}
	}

	return out, nil
}

// NormalizedOf returns L = I − D^{-1/2} W D^{-1/2}. A vertex with zero
// degree gets an all-zero row and column.
func NormalizedOf(W matrix.Matrix) (*matrix.Dense, error) {
	d, err := Degrees(W)
	if err != nil {
		return nil, fmt.Errorf("Normalized: %w", err)
	}
	n := len(d)
	inv := make([]float64, n)
	for i, di := range d {
		if di > 0 {
			inv[i] = 1 / math.Sqrt(di)
		}
	}
	out, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, fmt.Errorf("Normalized: %w", err)
	}
	var wij, v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			wij, _ = W.At(i, j)
			v = -inv[i] * wij * inv[j]
			if i == j && d[i] > 0 {
				v++
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Normalized: %w", err)
			}
		}
	}

	return out, nil
}

// FromGraph builds the adjacency of g and returns (index, L) for kind.
func FromGraph(g *core.Graph, kind Kind) ([]string, *matrix.Dense, error) {
	index, W, err := Adjacency(g)
	if err != nil {
		return nil, nil, fmt.Errorf("FromGraph: %w", err)
	}
	var L *matrix.Dense
	switch kind {
	case Combinatorial:
		L, err = CombinatorialOf(W)
	case Normalized:
		L, err = NormalizedOf(W)
	default:
		return nil, nil, fmt.Errorf("FromGraph: %v: %w", kind, ErrUnknownKind)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("FromGraph: %w", err)
	}

	return index, L, nil
}

// Rescale returns 2L/λ_max − I.
// Errors: ErrBadLambda, matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Rescale(L matrix.Matrix, lambdaMax float64) (*matrix.Dense, error) {
	if !(lambdaMax > 0) || math.IsInf(lambdaMax, 0) {
		return nil, fmt.Errorf("Rescale: λ=%g: %w", lambdaMax, ErrBadLambda)
	}
	if err := matrix.ValidateSquareNonNil(L); err != nil {
		return nil, fmt.Errorf("Rescale: %w", err)
	}
	out, err := matrix.Scale(L, 2/lambdaMax)
	if err != nil {
		return nil, fmt.Errorf("Rescale: %w", err)
	}
	I, err := matrix.NewIdentity(L.Rows())
	if err != nil {
		return nil, fmt.Errorf("Rescale: %w", err)
	}
	res := out.(*matrix.Dense)
	if err = matrix.AddScaled(res, -1, I); err != nil {
		return nil, fmt.Errorf("Rescale: %w", err)
	}

	return res, nil
}
