// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for argument checks.
//  - Keep accessors minimal by delegating nil/index/region/shape checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Composite validators follow the package error priority:
//    NotNil → Index/Region bounds → Region extent → Shape.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is non-nil and not released.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m.Released() {
		return validatorErrorf("ValidateNotNil", ErrNilArgument)
	}

	return nil
}

// ValidateIndex ensures (row, col) is a valid 1-based position in m.
// Assumes m is live (caller must ensure).
// Complexity: O(1).
func ValidateIndex(m *Matrix, row, col int) error {
	if row < 1 || row > m.rows || col < 1 || col > m.cols {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateRegion ensures the inclusive 1-based region [top..bottom]×[left..right]
// lies in m and is non-empty.
//
// Errors (in priority order):
//   - ErrOutOfRange when any corner index is outside its dimension.
//   - ErrZeroSize when bottom < top or right < left.
//
// Assumes m is live. Complexity: O(1).
func ValidateRegion(m *Matrix, top, left, bottom, right int) error {
	if top < 1 || top > m.rows || bottom < 1 || bottom > m.rows {
		return validatorErrorf("ValidateRegion: Rows", ErrOutOfRange)
	}
	if left < 1 || left > m.cols || right < 1 || right > m.cols {
		return validatorErrorf("ValidateRegion: Columns", ErrOutOfRange)
	}
	if bottom < top || right < left {
		return validatorErrorf("ValidateRegion", ErrZeroSize)
	}

	return nil
}

// ValidateShape ensures m is exactly rows×cols.
// Assumes m is live. Complexity: O(1).
func ValidateShape(m *Matrix, rows, cols int) error {
	if m.rows != rows {
		return validatorErrorf("ValidateShape: Rows", ErrDimensionMismatch)
	}
	if m.cols != cols {
		return validatorErrorf("ValidateShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a) → NotNil(b) → equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateShape(b, a.rows, a.cols); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}

	return nil
}
