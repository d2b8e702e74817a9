// SPDX-License-Identifier: MIT

// Package dataset loads named collections of adjacency matrices.
//
// A collection file is a YAML (or JSON, which YAML accepts) document mapping
// collection names to lists of square matrices given as row lists:
//
//	normal:
//	  - [[0, 1], [1, 0]]
//	  - [[0, 0], [1, 0]]
//
// Before a collection is returned every matrix is checked to share the shape
// of the first one; a mixed collection fails with ErrInconsistent and nothing
// is returned for it.
package dataset
