// SPDX-License-Identifier: MIT

// Package walks counts closed walks of a graph through traces of successive
// powers of its adjacency matrix.
//
// For an adjacency matrix A, trace(A^k) is the number of closed walks of
// length k (backtracking allowed), summed over every start vertex. For
// weighted graphs the same quantity is the total weight of those walks.
//
// ClosedWalks returns [trace(A²), …, trace(A^k)]. The walk-length bound k is
// a required argument: the zero value means "not supplied" and fails with
// ErrWalkLengthRequired instead of falling back to a default.
//
// Complexity: O(k·n³) with the naive matrix product. Stateless, deterministic,
// and safe to call concurrently on independent matrices.
package walks
