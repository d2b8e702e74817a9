// SPDX-License-Identifier: MIT

package olg

import (
	"fmt"

	"github.com/katalvlaran/walkfeat/matrix"
)

// Edge is a directed edge From→To of the input adjacency matrix.
type Edge struct {
	From int
	To   int
}

// String renders the edge as "(from,to)".
func (e Edge) String() string { return fmt.Sprintf("(%d,%d)", e.From, e.To) }

// Reverse returns the edge traversed backwards.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From} }

// EdgeList is the canonical row-major list of edges. Its positions are the
// vertex indices of the OLG.
type EdgeList []Edge

// Index maps every edge of an EdgeList to its position. It is built once
// during enumeration and reused for every write into T.
type Index map[Edge]int

// Enumerate lists the edges of a binary adjacency matrix in row-major order
// and returns the matching edge→position index.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNonBinary.
//
// Complexity: O(n²).
func Enumerate(a matrix.Matrix) (EdgeList, Index, error) {
	if err := validateAdjacency(a); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opEnumerate, err)
	}

	n := a.Rows()
	var edges EdgeList
	var i, j int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", opEnumerate, err)
			}
			if v == 1 {
				edges = append(edges, Edge{From: i, To: j})
			}
		}
	}

	idx := make(Index, len(edges))
	for p, e := range edges {
		idx[e] = p
	}

	return edges, idx, nil
}

// Successors returns every edge e2 of edges with e2.From == e.To and
// e2.To != e.From, in EdgeList order.
// Complexity: O(|E|).
func Successors(edges EdgeList, e Edge) EdgeList {
	var out EdgeList
	for _, e2 := range edges {
		if IsSuccessor(e, e2) {
			out = append(out, e2)
		}
	}

	return out
}

// IsSuccessor reports whether e2 may follow e under the non-backtracking rule.
func IsSuccessor(e, e2 Edge) bool {
	return e2.From == e.To && e2.To != e.From
}

// validateAdjacency runs the shared checks in priority order:
// nil → square → binary.
func validateAdjacency(a matrix.Matrix) error {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return err
	}

	return matrix.ValidateBinary(a)
}
