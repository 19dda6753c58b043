// SPDX-License-Identifier: MIT

package bfs

import (
	"context"

	"github.com/katalvlaran/graphconv/core"
)

// Components partitions the vertices of g into connected components.
// Each component lists vertices in BFS order from its smallest ID;
// components are ordered by that seed. Directed graphs follow out-edges
// only, so the result is reachability from each seed, not strong
// connectivity.
func Components(ctx context.Context, g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id, WithContext(ctx))
		if err != nil {
			return nil, err
		}
		comp := make([]string, 0, len(res.Order))
		for _, v := range res.Order {
			if !seen[v] {
				seen[v] = true
				comp = append(comp, v)
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
