// SPDX-License-Identifier: MIT

// Package gconv implements spectral graph convolution with Chebyshev filters.
//
// A layer with numOutputs channels, polynomial order K and an N-node graph
// operator L owns a (numOutputs × K) coefficient tensor w. A forward pass:
//
//  1. builds one N×N filter per channel, g_i = Σ_{k<K} w[i,k]·T_k(L)
//     (BuildFilters, terms from package chebyshev);
//  2. passes each of the M batch signals x_j through every filter and averages
//     per channel, Y[i,:] = (1/M)·Σ_j g_i·x_j (ApplyFilters).
//
// The result is a numOutputs × N matrix; the batch dimension is collapsed.
//
// Ownership:
//   - Weights are owned by an external optimizer. This package only reads
//     them; mutation goes through Weights.Set / Weights.Update, each of which
//     bumps Weights.Version.
//   - Layer stores a private copy of L taken at construction.
//
// Determinism:
//   - Filters accumulate in ascending k; averages sum in ascending j and then
//     divide once by M. WithParallel fans channels out over an errgroup but
//     keeps per-channel arithmetic identical, so the output is bit-for-bit the
//     same as the serial path.
//
// Errors:
//   - ErrShape for incompatible dimensions or an empty batch.
//   - ErrValue for non-positive sizes or an empty filter set.
package gconv
