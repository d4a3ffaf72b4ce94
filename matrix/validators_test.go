// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	released := mustNew(t, 2, 3)
	released.Release()

	tests := []struct {
		name    string
		a, b    *matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilArgument},
		{"first nil", nil, mustNew(t, 2, 2), matrix.ErrNilArgument},
		{"second nil", mustNew(t, 2, 2), nil, matrix.ErrNilArgument},
		{"second released", mustNew(t, 2, 3), released, matrix.ErrNilArgument},
		{"equal 2x3", mustNew(t, 2, 3), mustNew(t, 2, 3), nil},
		{"row mismatch", mustNew(t, 2, 3), mustNew(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", mustNew(t, 2, 3), mustNew(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateRegion checks bounds before extent.
func TestValidateRegion(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 3, 4)
	tests := []struct {
		name                     string
		top, left, bottom, right int
		wantErr                  error
	}{
		{"whole", 1, 1, 3, 4, nil},
		{"single", 2, 3, 2, 3, nil},
		{"top zero", 0, 1, 1, 1, matrix.ErrOutOfRange},
		{"bottom past", 1, 1, 4, 1, matrix.ErrOutOfRange},
		{"right past", 1, 1, 1, 5, matrix.ErrOutOfRange},
		{"rows inverted", 3, 1, 2, 1, matrix.ErrZeroSize},
		{"cols inverted", 1, 4, 1, 1, matrix.ErrZeroSize},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateRegion(m, tc.top, tc.left, tc.bottom, tc.right)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateIndexAndShape covers the single-position and exact-shape checks.
func TestValidateIndexAndShape(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2, 5)
	require.NoError(t, matrix.ValidateIndex(m, 2, 5))
	require.ErrorIs(t, matrix.ValidateIndex(m, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndex(m, 1, 0), matrix.ErrOutOfRange)

	require.NoError(t, matrix.ValidateShape(m, 2, 5))
	require.ErrorIs(t, matrix.ValidateShape(m, 5, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilArgument)
}
