// SPDX-License-Identifier: MIT

package features

import "errors"

var (
	// ErrNoFuncs is returned when an Assembler is built without feature functions.
	ErrNoFuncs = errors.New("features: no feature functions")

	// ErrDuplicateFunc is returned when two feature functions share a name,
	// which would make cache keys ambiguous.
	ErrDuplicateFunc = errors.New("features: duplicate feature function name")

	// ErrMissingLabel is returned when a collection has no label.
	ErrMissingLabel = errors.New("features: missing label")

	// ErrRaggedRow is returned when feature rows of one table differ in width.
	ErrRaggedRow = errors.New("features: feature rows differ in width")
)
