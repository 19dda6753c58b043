// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus connected components.
//
// Determinism
//
//	core.Graph.Neighbors returns sorted IDs and BFS enqueues in that order,
//	so Order, Depth and Parent are reproducible. Components seeds each
//	component from the smallest unvisited vertex ID.
//
// Weights
//
//	Edge weights are ignored; only adjacency matters. A graph Laplacian has
//	one zero eigenvalue per connected component, so Components is a cheap
//	way to predict the null space of an operator before filtering with it.
//
// Complexity
//
//	BFS and Components run in O(V + E log E) (neighbor lists are sorted).
package bfs
