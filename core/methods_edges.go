// SPDX-License-Identifier: MIT

package core

import (
	"math"
	"sort"
)

// AddEdge connects from→to with weight w, creating missing endpoints.
// An existing edge keeps its identity and gets the new weight.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight (NaN/Inf), ErrLoopNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, w float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(from)
	g.ensureVertex(to)
	if _, exists := g.adj[from][to]; !exists {
		g.edges++
	}
	g.adj[from][to] = w
	if !g.directed {
		g.adj[to][from] = w
	}

	return nil
}

// RemoveEdge deletes from→to (and its mirror when undirected).
// Errors: ErrVertexNotFound, ErrEdgeNotFound.
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	nbrs, ok := g.adj[from]
	if !ok {
		return ErrVertexNotFound
	}
	if _, ok = g.adj[to]; !ok {
		return ErrVertexNotFound
	}
	if _, ok = nbrs[to]; !ok {
		return ErrEdgeNotFound
	}
	delete(nbrs, to)
	if !g.directed {
		delete(g.adj[to], from)
	}
	g.edges--

	return nil
}

// HasEdge reports whether from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[from][to]

	return ok
}

// Weight returns w(from,to).
// Errors: ErrVertexNotFound, ErrEdgeNotFound.
func (g *Graph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[from]
	if !ok {
		return 0, ErrVertexNotFound
	}
	if _, ok = g.adj[to]; !ok {
		return 0, ErrVertexNotFound
	}
	w, ok := nbrs[to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Edges returns all edges sorted by (From, To). Undirected edges appear
// once, with From ≤ To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edges)
	for from, nbrs := range g.adj {
		for to, w := range nbrs {
			if !g.directed && to < from {
				continue
			}
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E|; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Clone returns a deep copy with the same options.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := &Graph{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		adj:        make(map[string]map[string]float64, len(g.adj)),
		edges:      g.edges,
	}
	for from, nbrs := range g.adj {
		cp := make(map[string]float64, len(nbrs))
		for to, w := range nbrs {
			cp[to] = w
		}
		c.adj[from] = cp
	}

	return c
}
