// SPDX-License-Identifier: MIT

package walks

import "errors"

var (
	// ErrConfiguration is the umbrella for invalid or missing caller-supplied
	// parameters. Both sentinels below match it via errors.Is.
	ErrConfiguration = errors.New("walks: configuration error")

	// ErrWalkLengthRequired is returned when the walk-length bound is not
	// supplied (zero value). There is no implicit default.
	ErrWalkLengthRequired = &configError{msg: "walks: max walk length is required"}

	// ErrWalkLengthTooSmall is returned when the bound is below MinWalkLength.
	ErrWalkLengthTooSmall = &configError{msg: "walks: max walk length must be >= 2"}
)

// configError is a sentinel that also matches ErrConfiguration.
type configError struct{ msg string }

func (e *configError) Error() string { return e.msg }

// Is lets errors.Is(err, ErrConfiguration) match every configuration sentinel.
func (e *configError) Is(target error) bool { return target == ErrConfiguration }
