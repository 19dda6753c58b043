// SPDX-License-Identifier: MIT

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
// Errors: ErrEmptyVertexID. Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// ensureVertex creates an empty adjacency bucket. Caller holds the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]float64)
	}
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// RemoveVertex deletes id and every edge touching it.
// Errors: ErrVertexNotFound. Complexity: O(V).
func (g *Graph) RemoveVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	out, ok := g.adj[id]
	if !ok {
		return ErrVertexNotFound
	}
	g.edges -= len(out)
	for from, nbrs := range g.adj {
		if from == id {
			continue
		}
		if _, ok := nbrs[id]; ok {
			delete(nbrs, id)
			if g.directed {
				g.edges--
			}
		}
	}
	delete(g.adj, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Neighbors returns the sorted IDs reachable from id by one edge
// (for undirected graphs, all adjacent vertices).
// Errors: ErrVertexNotFound.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(nbrs))
	for to := range nbrs {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the weighted out-degree Σ_v w(id,v).
// A self-loop contributes its weight once. Errors: ErrVertexNotFound.
func (g *Graph) Degree(id string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	keys := make([]string, 0, len(nbrs))
	for to := range nbrs {
		keys = append(keys, to)
	}
	sort.Strings(keys) // fixed summation order
	var sum float64
	for _, to := range keys {
		sum += nbrs[to]
	}

	return sum, nil
}
