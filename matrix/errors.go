// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every fallible operation returns one of these sentinels (wrapped with call
// context) and raises the matching errchan.Code on the matrix's bound channel.
// Tests MUST match them via errors.Is. Nothing here panics on user input.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmat/errchan"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// wrap with "Matrix.<Method>(args): %w" so errors.Is keeps working.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil argument -> index out of range -> zero-sized result -> dimension mismatch.
// Allocation and stream failures can only happen after validation succeeded.

var (
	// ErrAlloc is returned when row buffers or scratch space could not be
	// obtained, or when an element could not be rendered with the given format.
	ErrAlloc = errors.New("matrix: unable to allocate memory")

	// ErrZeroSize is returned when the arguments would give an empty result:
	// rows<=0 or cols<=0, an inverted region, or an empty element format.
	ErrZeroSize = errors.New("matrix: invalid zero-sized/empty result")

	// ErrNilArgument is returned when a matrix, source, operand or writer is nil.
	// A released matrix counts as nil.
	ErrNilArgument = errors.New("matrix: nil argument")

	// ErrOutOfRange indicates a 1-based index outside [1, Rows()] / [1, Cols()].
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that an operand's shape differs from the
	// addressed region, or a source row is shorter than the declared width.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrStream indicates the destination writer failed while printing.
	ErrStream = errors.New("matrix: unable to write to stream")
)

// CodeOf maps an error returned by this package to its errchan.Code.
// nil and foreign errors map to errchan.None.
func CodeOf(err error) errchan.Code {
	switch {
	case err == nil:
		return errchan.None
	case errors.Is(err, ErrNilArgument):
		return errchan.NullArgument
	case errors.Is(err, ErrOutOfRange):
		return errchan.IndexOutOfRange
	case errors.Is(err, ErrZeroSize):
		return errchan.ZeroSizeResult
	case errors.Is(err, ErrDimensionMismatch):
		return errchan.DimensionMismatch
	case errors.Is(err, ErrAlloc):
		return errchan.AllocationFailure
	case errors.Is(err, ErrStream):
		return errchan.StreamFailure
	default:
		return errchan.None
	}
}

// ---------- error context tags ----------

const (
	ctxAllocate  = "allocate"
	ctxNew       = "New"
	ctxFromRows  = "FromRows"
	ctxCopy      = "Copy"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRow       = "Row"
	ctxSubMatrix = "SubMatrix"
	ctxSetSub    = "SetSubMatrix"
	ctxFprintf   = "Fprintf"
	ctxWriteTo   = "WriteTo"
)

// matrixErrorf wraps err with a uniform "Matrix.<method>(row,col)" context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// regionErrorf wraps err with the region corners of a sub-matrix call.
func regionErrorf(method string, top, left, bottom, right int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d,%d,%d): %w", method, top, left, bottom, right, err)
}

// allocErr guarantees that an allocator failure matches ErrAlloc.
func allocErr(err error) error {
	if errors.Is(err, ErrAlloc) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrAlloc, err)
}
