// Package walkfeat turns collections of adjacency matrices into spectral
// feature tables: closed-walk counts trace(A^p) and the same counts on the
// oriented line graph (the non-backtracking edge operator).
//
// What is inside:
//
//	matrix/       dense row-major matrix, validators, Mul, Trace
//	walks/        closed-walk counter for p = 2..k
//	olg/          edge enumeration and the oriented line graph builder
//	dataset/      YAML/JSON collection loader with shape checks
//	features/     ordered feature funcs, labelled tables, parallel batches
//	cache/        badger-backed store for assembled tables
//	layout/       spring layout and SVG drawing of a single graph
//	config/       walkfeat.yaml run configuration
//	cmd/walkfeat  CLI: features, walks, olg, draw
//
// Quick ASCII example:
//
//	0 ──▶ 1
//	▲                │
//	└─ 2 ◀┘
//
// The directed 3-cycle has closed walks only of lengths divisible by 3, so
// with k = 6 the vector is [0 3 0 0 3]. Its oriented line graph is itself a
// 3-cycle on the edges (0,1), (1,2), (2,0).
//
// Every routine that takes a maximum walk length requires it explicitly;
// there is no default and no prompt.
//
//	go install github.com/katalvlaran/walkfeat/cmd/walkfeat@latest
package walkfeat
