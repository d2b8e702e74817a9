// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrInconsistent is returned when the matrices of a collection do not all
	// share the same shape and element type.
	ErrInconsistent = errors.New("dataset: inconsistent collection")

	// ErrEmpty is returned for a collection without any matrix.
	ErrEmpty = errors.New("dataset: empty collection")

	// ErrNotFound is returned when a file does not define the requested collection.
	ErrNotFound = errors.New("dataset: collection not found")
)
