// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, in-memory weighted graph used as the
// source of graph operators (adjacency, Laplacian) for spectral filtering.
//
// The Graph G = (V, E) supports:
//
//   - Directed vs. undirected edges (WithDirected). Undirected edges are
//     mirrored, so Weight(u,v) == Weight(v,u).
//   - Self-loops (WithLoops); rejected by default.
//   - Real-valued weights. NaN and ±Inf are rejected; adding an existing
//     edge replaces its weight.
//
// Determinism:
//
//	Vertices(), Edges() and Neighbors() return sorted results, so matrices
//	built from a Graph have a stable row/column order.
//
// Concurrency:
//
//	A single sync.RWMutex guards vertices and adjacency. Reads run in
//	parallel; mutations are serialized.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrBadWeight       - weight is NaN or ±Inf.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
package core
