// SPDX-License-Identifier: MIT

package walks

import (
	"fmt"

	"github.com/katalvlaran/walkfeat/matrix"
)

// MinWalkLength is the smallest admissible walk-length bound.
const MinWalkLength = 2

const opClosedWalks = "ClosedWalks"

// ClosedWalks returns a vector of length maxWalkLength-1 whose i-th element
// is trace(A^(i+2)).
//
// Implementation:
//   - Stage 1: validate k (required, >= 2), then A (non-nil, square).
//   - Stage 2: power ← A; for p = 2..k: power ← power·A, record trace(power).
//
// Errors:
//   - ErrWalkLengthRequired / ErrWalkLengthTooSmall (both match ErrConfiguration).
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Determinism:
//   - The product kernel uses fixed loop orders, so repeated calls on the
//     same input are bit-identical.
//
// Complexity:
//   - Time O(k·n³), Space O(n²): only the current power is kept.
func ClosedWalks(a matrix.Matrix, maxWalkLength int) ([]float64, error) {
	if err := ValidateWalkLength(maxWalkLength); err != nil {
		return nil, fmt.Errorf("%s: %w", opClosedWalks, err)
	}
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opClosedWalks, err)
	}

	out := make([]float64, 0, maxWalkLength-1)
	var power matrix.Matrix = a
	for p := MinWalkLength; p <= maxWalkLength; p++ {
		next, err := matrix.Mul(power, a)
		if err != nil {
			return nil, fmt.Errorf("%s: A^%d: %w", opClosedWalks, p, err)
		}
		tr, err := matrix.Trace(next)
		if err != nil {
			return nil, fmt.Errorf("%s: trace(A^%d): %w", opClosedWalks, p, err)
		}
		out = append(out, tr)
		power = next
	}

	return out, nil
}

// ValidateWalkLength checks a caller-supplied walk-length bound.
// Zero means the caller never set it.
func ValidateWalkLength(k int) error {
	switch {
	case k == 0:
		return ErrWalkLengthRequired
	case k < MinWalkLength:
		return fmt.Errorf("got %d: %w", k, ErrWalkLengthTooSmall)
	}

	return nil
}
