// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/walkfeat/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquareNonNil covers nil inputs, square and non-square cases.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"square 3x3", mustDense(t, 3, 3), nil},
		{"non-square 2x3", mustDense(t, 2, 3), matrix.ErrNonSquare},
		{"non-square via interface", hide{mustDense(t, 3, 1)}, matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateMulCompatible checks inner-dimension agreement.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(mustDense(t, 2, 3), mustDense(t, 3, 4)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(mustDense(t, 2, 3), mustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, mustDense(t, 2, 3)), matrix.ErrNilMatrix)
}

// TestValidateBinary covers both fast (Dense) and generic paths.
func TestValidateBinary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{"zeros and ones", [][]float64{{0, 1}, {1, 0}}, nil},
		{"two", [][]float64{{0, 2}, {1, 0}}, matrix.ErrNonBinary},
		{"fraction", [][]float64{{0, 1}, {0.5, 0}}, matrix.ErrNonBinary},
		{"negative one", [][]float64{{-1, 0}, {0, 0}}, matrix.ErrNonBinary},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := mustFrom(t, tc.rows)
			for _, in := range []matrix.Matrix{m, hide{m}} {
				err := matrix.ValidateBinary(in)
				if tc.wantErr == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, tc.wantErr)
				}
			}
		})
	}
}

// TestValidateFinite rejects NaN/Inf that bypassed the Set policy.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	good := mustFrom(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, matrix.ValidateFinite(good))

	bad := nanMatrix{Matrix: good}
	require.ErrorIs(t, matrix.ValidateFinite(bad), matrix.ErrNaNInf)
}

// nanMatrix reports NaN at (1,1) regardless of the wrapped storage.
type nanMatrix struct{ matrix.Matrix }

func (n nanMatrix) At(i, j int) (float64, error) {
	if i == 1 && j == 1 {
		return math.NaN(), nil
	}
	return n.Matrix.At(i, j)
}
