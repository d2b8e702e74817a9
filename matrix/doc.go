// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives behind the
// walkfeat feature extractors.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-value policy.
//   - Kernels used by spectral features: Mul, Trace, RowSums, NewIdentity.
//   - Central validators (ValidateSquare, ValidateBinary, ...) returning
//     sentinel errors that callers match with errors.Is.
//
// Nothing in this package logs, blocks or keeps state between calls; every
// kernel is safe to run concurrently on independent inputs.
package matrix
