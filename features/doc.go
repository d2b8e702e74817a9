// SPDX-License-Identifier: MIT

// Package features assembles feature tables from collections of adjacency
// matrices.
//
// An Assembler applies an ordered list of Funcs to every matrix, concatenates
// their outputs, appends the collection's numeric label and returns the rows
// as a Table. Row order follows the collection order, then the matrix order
// inside each collection, whatever the worker count.
//
// With a Cache attached, tables are stored under a key derived only from the
// ordered collection names and the ordered Func names (see Key); a cache hit
// returns the stored table without recomputation.
//
// Progress is reported through an optional Observer; the assembler never
// logs on its own.
package features
