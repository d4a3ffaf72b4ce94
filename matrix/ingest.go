// SPDX-License-Identifier: MIT

// Package matrix - ingestion from typed 2D sources & deep copy.
//
// Purpose:
//   - One generic body for every fixed-width integer and floating source type.
//   - Reject any nil row before allocating, then copy rows last-to-first; a
//     short row releases the partially filled matrix.
//   - Copy is ingestion from the matrix's own float64 rows.
//
// Complexity quicksheet:
//   - FromRows: O(r*c) conversions; float64 rows use a bulk copy.
//   - Copy/Clone: O(r*c).
package matrix

import "fmt"

// Number is the set of element types FromRows accepts.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~int | ~uint
}

// FromRows creates a rows×cols matrix from src, converting each element with a
// plain float64(v) conversion (no range checks, same as a direct cast).
//
// Errors (in priority order):
//   - ErrNilArgument when src is nil, or when any of its first rows rows is nil.
//   - ErrZeroSize / ErrAlloc from allocation.
//   - ErrDimensionMismatch when src has fewer than rows rows, or a needed row
//     is shorter than cols. Rows past `rows` and elements past `cols` are ignored.
//
// Rows are copied from the last to the first; a failure releases the
// partially built matrix before returning.
func FromRows[T Number](rows, cols int, src [][]T, opts ...Option) (*Matrix, error) {
	return fromRows(rows, cols, src, gatherOptions(defaultOptions(), opts...))
}

func fromRows[T Number](rows, cols int, src [][]T, o Options) (*Matrix, error) {
	if src == nil {
		o.debugf("source is nil")
		return nil, o.fail(fmt.Errorf("%s(%d,%d): source: %w", ctxFromRows, rows, cols, ErrNilArgument))
	}
	var (
		i, j int
		row  []T
		dst  []float64
	)
	for i = min(len(src), rows) - 1; i >= 0; i-- {
		if src[i] == nil {
			o.debugf("source row %d is nil", i+1)
			return nil, o.fail(fmt.Errorf("%s(%d,%d): source row %d: %w", ctxFromRows, rows, cols, i+1, ErrNilArgument))
		}
	}

	m, err := allocate(rows, cols, false, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	if len(src) < rows {
		m.Release()
		return nil, o.fail(fmt.Errorf("%s(%d,%d): source has %d rows: %w", ctxFromRows, rows, cols, len(src), ErrDimensionMismatch))
	}

	for i = rows - 1; i >= 0; i-- {
		row = src[i]
		if len(row) < cols {
			m.Release()
			return nil, o.fail(fmt.Errorf("%s(%d,%d): source row %d has %d elements: %w", ctxFromRows, rows, cols, i+1, len(row), ErrDimensionMismatch))
		}
		dst = m.data[i]
		// float64 rows are copied in bulk.
		if f, ok := any(row).([]float64); ok {
			copy(dst, f[:cols])
			continue
		}
		for j = 0; j < cols; j++ {
			dst[j] = float64(row[j])
		}
	}

	return m, nil
}

// Copy returns a deep copy of m that shares no row buffer with it.
// The copy inherits m's options; opts override them.
//
// Errors:
//   - ErrNilArgument when m is nil or released.
//   - ErrAlloc from allocation.
func Copy(m *Matrix, opts ...Option) (*Matrix, error) {
	if m.Released() {
		o := gatherOptions(m.options(), opts...)
		return nil, o.fail(fmt.Errorf("%s: %w", ctxCopy, ErrNilArgument))
	}
	cp, err := fromRows(m.rows, m.cols, m.data, gatherOptions(m.opts, opts...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCopy, err)
	}

	return cp, nil
}

// Clone is the method form of Copy without overrides.
func (m *Matrix) Clone() (*Matrix, error) { return Copy(m) }
