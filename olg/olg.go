// SPDX-License-Identifier: MIT

package olg

import (
	"fmt"

	"github.com/katalvlaran/walkfeat/matrix"
)

const (
	opEnumerate = "olg.Enumerate"
	opBuild     = "olg.Build"
)

// Graph is the full result of an OLG construction.
//
// Successors[p] is the exact set written into row p of T; the invariant
// sum(T[p,*]) == len(Successors[p]) holds for every p.
type Graph struct {
	Edges      EdgeList
	Index      Index
	Successors []EdgeList
	T          *matrix.Dense
}

// Build returns the OLG adjacency matrix T of a binary adjacency matrix.
// An input without edges yields a 0×0 matrix.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (shape),
//     matrix.ErrNonBinary (entries outside {0,1}; never rounded).
func Build(a matrix.Matrix) (*matrix.Dense, error) {
	g, err := BuildGraph(a)
	if err != nil {
		return nil, err
	}

	return g.T, nil
}

// BuildGraph constructs the OLG and keeps the intermediate edge list, index
// and successor sets alongside T.
//
// Implementation:
//   - Stage 1: Enumerate edges and the edge→index map.
//   - Stage 2: for each edge e, collect Successors(e).
//   - Stage 3: write T[idx[e], idx[e2]] = 1 for exactly those successors.
//
// Complexity: O(n² + |E|²) time, O(|E|²) space for T.
func BuildGraph(a matrix.Matrix) (*Graph, error) {
	edges, idx, err := Enumerate(a)
	if err != nil {
		return nil, err
	}

	m := len(edges)
	t, err := matrix.NewZeros(m, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	succ := make([]EdgeList, m)
	for _, e := range edges {
		p := idx[e]
		succ[p] = Successors(edges, e)
		for _, e2 := range succ[p] {
			if err = t.Set(p, idx[e2], 1); err != nil {
				return nil, fmt.Errorf("%s: %s→%s: %w", opBuild, e, e2, err)
			}
		}
	}

	return &Graph{Edges: edges, Index: idx, Successors: succ, T: t}, nil
}

// OutDegrees returns len(Successors[p]) for every OLG vertex p.
func (g *Graph) OutDegrees() []int {
	out := make([]int, len(g.Successors))
	for p, s := range g.Successors {
		out[p] = len(s)
	}

	return out
}
