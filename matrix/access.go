// SPDX-License-Identifier: MIT

// Package matrix - bounds-checked 1-based element access.
//
// Purpose:
//   - At/Set address elements with 1-based (row, col); 0 and n+1 are out of range.
//   - Never panic at the public surface: failures return sentinel errors, and
//     At additionally returns NaN so callers may test the value alone.
//   - A failed Set leaves the matrix untouched.
//
// Complexity quicksheet:
//   - At/Set: O(1); Row: O(c); Do: O(r*c); Equal: O(r*c).
package matrix

import "math"

// At returns the element at 1-based (row, col).
//
// Returns:
//   - (value, nil) on success.
//   - (NaN, ErrNilArgument) when m is nil or released.
//   - (NaN, ErrOutOfRange) when row∉[1,Rows()] or col∉[1,Cols()].
//
// A stored NaN is told apart from a failure only by the error (or the channel).
func (m *Matrix) At(row, col int) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return math.NaN(), m.options().fail(matrixErrorf(ctxAt, row, col, err))
	}
	if err := ValidateIndex(m, row, col); err != nil {
		m.opts.debugf("index out of range: row=%d, rows=%d col=%d, cols=%d", row, m.rows, col, m.cols)
		return math.NaN(), m.opts.fail(matrixErrorf(ctxAt, row, col, err))
	}

	return m.data[row-1][col-1], nil
}

// Set stores v at 1-based (row, col). Same validation as At; on failure the
// matrix is unchanged.
func (m *Matrix) Set(row, col int, v float64) error {
	if err := ValidateNotNil(m); err != nil {
		return m.options().fail(matrixErrorf(ctxSet, row, col, err))
	}
	if err := ValidateIndex(m, row, col); err != nil {
		m.opts.debugf("index out of range: row=%d, rows=%d col=%d, cols=%d", row, m.rows, col, m.cols)
		return m.opts.fail(matrixErrorf(ctxSet, row, col, err))
	}
	m.data[row-1][col-1] = v

	return nil
}

// Row returns a copy of the 1-based row.
func (m *Matrix) Row(row int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, m.options().fail(matrixErrorf(ctxRow, row, 1, err))
	}
	if err := ValidateIndex(m, row, 1); err != nil {
		return nil, m.opts.fail(matrixErrorf(ctxRow, row, 1, err))
	}
	out := make([]float64, m.cols)
	copy(out, m.data[row-1])

	return out, nil
}

// Do visits each element in row-major order with 1-based coordinates and
// stops early when f returns false. No-op on a nil or released matrix.
func (m *Matrix) Do(f func(row, col int, v float64) bool) {
	if m.Released() {
		return
	}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			if !f(i+1, j+1, m.data[i][j]) {
				return
			}
		}
	}
}

// Equal reports whether a and b are live, have the same shape and hold
// bitwise-equal elements (NaN never equals NaN).
func Equal(a, b *Matrix) bool {
	if ValidateSameShape(a, b) != nil {
		return false
	}
	var i, j int
	for i = 0; i < a.rows; i++ {
		for j = 0; j < a.cols; j++ {
			if a.data[i][j] != b.data[i][j] {
				return false
			}
		}
	}

	return true
}
