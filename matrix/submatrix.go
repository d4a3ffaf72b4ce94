// SPDX-License-Identifier: MIT

// Package matrix - rectangular sub-matrix read & write-back.
//
// Purpose:
//   - SubMatrix materializes an inclusive 1-based region as an independent copy.
//   - SetSubMatrix writes an operand into a region, all-or-nothing: every index
//     and the operand's shape are validated before the first write.
//
// Complexity quicksheet:
//   - SubMatrix: O(h*w) via one copy per row; SetSubMatrix: O(h*w).
package matrix

import "fmt"

// SubMatrix returns a copy of the inclusive region [top..bottom]×[left..right].
// The result has shape (bottom-top+1)×(right-left+1), inherits m's options and
// shares no storage with m.
//
// Errors (in priority order):
//   - ErrNilArgument when m is nil or released.
//   - ErrOutOfRange when any corner is outside m.
//   - ErrZeroSize when bottom < top or right < left.
//   - ErrAlloc from allocation.
func (m *Matrix) SubMatrix(top, left, bottom, right int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, m.options().fail(regionErrorf(ctxSubMatrix, top, left, bottom, right, err))
	}
	if err := ValidateRegion(m, top, left, bottom, right); err != nil {
		return nil, m.opts.fail(regionErrorf(ctxSubMatrix, top, left, bottom, right, err))
	}
	sub, err := allocate(bottom-top+1, right-left+1, false, m.opts)
	if err != nil {
		return nil, regionErrorf(ctxSubMatrix, top, left, bottom, right, err)
	}
	for i, dst := range sub.data {
		copy(dst, m.data[top-1+i][left-1:right])
	}
	m.opts.debugf("copied region [%d..%d]x[%d..%d] into matrix @ %p", top, bottom, left, right, sub)

	return sub, nil
}

// SetSubMatrix overwrites the inclusive region [top..bottom]×[left..right] of m
// with sub. sub is left unmodified; sub == m is allowed.
//
// Errors (in priority order):
//   - ErrNilArgument when m or sub is nil or released.
//   - ErrOutOfRange / ErrZeroSize as for SubMatrix.
//   - ErrDimensionMismatch when sub is not exactly (bottom-top+1)×(right-left+1);
//     larger operands are rejected just like smaller ones.
//
// On any error m is unchanged.
func (m *Matrix) SetSubMatrix(top, left, bottom, right int, sub *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return m.options().fail(regionErrorf(ctxSetSub, top, left, bottom, right, err))
	}
	if err := ValidateNotNil(sub); err != nil {
		return m.opts.fail(regionErrorf(ctxSetSub, top, left, bottom, right, fmt.Errorf("operand: %w", err)))
	}
	if err := ValidateRegion(m, top, left, bottom, right); err != nil {
		return m.opts.fail(regionErrorf(ctxSetSub, top, left, bottom, right, err))
	}
	if err := ValidateShape(sub, bottom-top+1, right-left+1); err != nil {
		m.opts.debugf("operand is %dx%d, region is %dx%d", sub.rows, sub.cols, bottom-top+1, right-left+1)
		return m.opts.fail(regionErrorf(ctxSetSub, top, left, bottom, right, err))
	}
	for i, src := range sub.data {
		copy(m.data[top-1+i][left-1:right], src)
	}

	return nil
}
