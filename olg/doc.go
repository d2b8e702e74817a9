// SPDX-License-Identifier: MIT

// Package olg builds the oriented line graph (OLG) of a directed graph: the
// non-backtracking operator over its edges.
//
// Vertices of the OLG are the edges of the input graph, enumerated in
// canonical row-major order (ascending source, then ascending target). The
// OLG has an arc e→e2 when e2 starts where e ends and does not immediately
// reverse it:
//
//	e = (i, j), e2 = (j2, k2):   j2 == j  &&  k2 != i
//
// Longer cycles are permitted; only the 2-cycle backtrack is forbidden.
//
// Build returns the |E|×|E| binary adjacency matrix T; BuildGraph also
// returns the edge list, the edge→index map and the per-edge successor sets
// used to fill T, so callers can check that each row sum of T equals the
// size of the corresponding successor set.
//
// Complexity: O(n²) enumeration + O(|E|²) pair tests with O(1) index lookups.
// All functions are stateless and safe for concurrent use.
package olg
