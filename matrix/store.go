// SPDX-License-Identifier: MIT

// Package matrix - row-buffer storage & lifecycle.
//
// Purpose:
//   - Own `rows` independently allocated row buffers of `cols` float64 each.
//   - Expose construction as a single fallible step: either a fully valid
//     *Matrix or nothing. A failure halfway through hands every row obtained so
//     far back to the allocator through the same path Release uses.
//   - Make Release idempotent; a released matrix behaves like a nil one.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; allocate(zero=false): O(r) + allocator cost;
//     Release: O(r); Rows/Cols/Shape/Released: O(1).
package matrix

import (
	"fmt"
	"math"
)

// MaxDim is the largest row or column count a Matrix may have.
const MaxDim uint64 = math.MaxUint32

// Matrix is a dense matrix of float64 stored as one buffer per row.
//   - rows, cols hold dimensions (both >= 1 while live, 0 after Release).
//   - data[i] is row i+1 (indices are 1-based at the public surface).
//   - opts carries the allocator, error channel, trace sink and element format.
//
// A Matrix has a single owner: the package performs no locking. Concurrent
// reads (At, SubMatrix, printing) are safe as long as nobody writes or releases.
type Matrix struct {
	rows, cols int
	data       [][]float64
	opts       Options
}

// allocate builds a rows×cols matrix.
// Implementation:
//   - Stage 1: reject rows<=0 || cols<=0 (ErrZeroSize) and dims above MaxDim (ErrAlloc).
//   - Stage 2: allocate the row table first, so every slot starts nil.
//   - Stage 3: allocate rows in order; on the first failure release what exists.
//
// zero=false leaves contents unspecified; callers must overwrite every element.
func allocate(rows, cols int, zero bool, o Options) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		o.debugf("zero size: %d x %d", rows, cols)
		return nil, o.fail(fmt.Errorf("%s(%d,%d): %w", ctxAllocate, rows, cols, ErrZeroSize))
	}
	if uint64(rows) > MaxDim || uint64(cols) > MaxDim {
		return nil, o.fail(fmt.Errorf("%s(%d,%d): exceeds %d: %w", ctxAllocate, rows, cols, MaxDim, ErrAlloc))
	}

	var data [][]float64
	if err := catchAlloc(ctxAllocate, rows, func() { data = make([][]float64, rows) }); err != nil {
		o.debugf("failed to allocate row table")
		return nil, o.fail(err)
	}
	m := &Matrix{rows: rows, cols: cols, data: data, opts: o}
	o.debugf("allocated matrix @ %p", m)

	var (
		i   int
		row []float64
		err error
	)
	for i = range data {
		row, err = o.alloc.Alloc(cols, zero)
		if err == nil && len(row) != cols {
			o.alloc.Free(row)
			err = fmt.Errorf("allocator returned %d elements, want %d", len(row), cols)
		}
		if err != nil {
			m.free() // nil slots are skipped
			o.debugf("failed to allocate row %d of %d", i+1, rows)
			return nil, o.fail(fmt.Errorf("%s(%d,%d): row %d: %w", ctxAllocate, rows, cols, i+1, allocErr(err)))
		}
		data[i] = row
	}
	o.debugf("allocated rows, zero=%t", zero)

	return m, nil
}

// New creates a rows×cols matrix with every element set to 0.
//
// Errors:
//   - ErrZeroSize when rows<=0 or cols<=0.
//   - ErrAlloc when a dimension exceeds MaxDim or the allocator fails; no row
//     obtained before the failure stays outstanding.
//
// Complexity: O(rows*cols).
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	m, err := allocate(rows, cols, true, gatherOptions(defaultOptions(), opts...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNew, err)
	}

	return m, nil
}

// Zero is New under an intention-revealing name.
func Zero(rows, cols int, opts ...Option) (*Matrix, error) {
	return New(rows, cols, opts...)
}

// free hands every non-nil row back to the allocator and drops the table.
func (m *Matrix) free() {
	for i, row := range m.data {
		if row != nil {
			m.opts.alloc.Free(row)
			m.data[i] = nil
		}
	}
	m.data = nil
	m.rows, m.cols = 0, 0
}

// Release returns every row buffer to the allocator. It must be called once the
// matrix is no longer needed when a recycling allocator is in use; with the
// default heap allocator it just drops the references early.
// Release is a no-op on a nil or already released matrix and never fails.
// Every later operation on m fails with ErrNilArgument.
func (m *Matrix) Release() {
	if m.Released() {
		return
	}
	m.free()
	m.opts.debugf("released matrix @ %p", m)
}

// Released reports whether m is nil or has been released.
func (m *Matrix) Released() bool { return m == nil || m.data == nil }

// Rows returns the row count (0 when released).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.rows
}

// Cols returns the column count (0 when released).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.cols
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// options returns m's options, or the defaults for a nil matrix so that
// failures on nil receivers are still traced.
func (m *Matrix) options() Options {
	if m == nil {
		return defaultOptions()
	}

	return m.opts
}
