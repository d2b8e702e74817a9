// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the feature kernels built on it (walks, olg). Kernels return
// these sentinels (optionally tagged with a call-site prefix) and tests match
// them via errors.Is. No kernel panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so that it is greppable in logs.
// Call sites add context with matrixErrorf / validatorErrorf ("Tag: %w");
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape (ErrInvalidDimensions, ErrNonSquare) -> index -> values
// (ErrNaNInf, ErrNonBinary).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive (public constructors) or negative (empty-shape constructors).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or ragged rows on ingestion.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// It is the shape error of the walk and OLG kernels.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonBinary signals an entry outside {0,1} where a binary adjacency is
	// required. Values are never rounded or truncated into validity.
	ErrNonBinary = errors.New("matrix: non-binary adjacency entry")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
