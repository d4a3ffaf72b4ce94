// SPDX-License-Identifier: MIT

package errchan

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map"
)

// Code identifies the kind of the most recent failure.
// Compare against the named constants only; numeric values may change.
type Code int32

const (
	// None is the initial value of every Channel. No operation ever raises it.
	None Code = iota

	// AllocationFailure is raised when memory (rows, scratch buffers) could not
	// be obtained, or when an element could not be formatted.
	AllocationFailure

	// ZeroSizeResult is raised when arguments would give an empty result:
	// a zero or negative dimension, an inverted region, an empty format.
	ZeroSizeResult

	// NullArgument is raised when a required argument is nil or released.
	NullArgument

	// IndexOutOfRange is raised for 1-based indices outside the matrix.
	IndexOutOfRange

	// DimensionMismatch is raised when an operand's shape differs from the
	// addressed region or from the declared source shape.
	DimensionMismatch

	// StreamFailure is raised when the destination writer returns an error.
	StreamFailure
)

const unknownDescription = "Unknown error"

// descriptions keeps the table in declaration order so Codes can enumerate it.
var descriptions = newDescriptionTable()

func newDescriptionTable() *orderedmap.OrderedMap {
	t := orderedmap.New()
	t.Set(AllocationFailure, "Unable to allocate memory")
	t.Set(ZeroSizeResult, "Invalid zero-sized/empty result")
	t.Set(NullArgument, "Nil argument(s)")
	t.Set(IndexOutOfRange, "Index out of range")
	t.Set(DimensionMismatch, "Dimension mismatch")
	t.Set(StreamFailure, "Unable to write to stream")

	return t
}

// Describe returns the human-readable description of c.
// None and unrecognized codes yield "Unknown error"; Describe never fails.
func Describe(c Code) string {
	v, ok := descriptions.Get(c)
	if !ok {
		return unknownDescription
	}

	return v.(string)
}

// Codes lists every failure code in declaration order (None excluded).
func Codes() []Code {
	out := make([]Code, 0, descriptions.Len())
	for p := descriptions.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key.(Code))
	}

	return out
}

// String implements fmt.Stringer via Describe.
func (c Code) String() string { return Describe(c) }

// CodeError is the error form of a Code, returned by Channel.Err.
type CodeError struct {
	Code Code
}

// Error implements error.
func (e *CodeError) Error() string {
	return fmt.Sprintf("errchan: %s (code %d)", Describe(e.Code), int32(e.Code))
}
