// Package matrix offers a small dense float64 matrix with explicit ownership,
// 1-based bounds-checked accessors and a box-drawn text printer.
//
// The matrix package provides:
//
//   - New/Zero for zero-filled allocation, FromRows for ingestion from any
//     integer or floating [][]T, Copy/Clone for deep copies.
//   - At/Set and SubMatrix/SetSubMatrix with 1-based, inclusive indices.
//   - Fprintf/Fprint/Printf/Print, WriteTo and String rendering an aligned table.
//   - Pluggable row allocators (HeapAllocator, PoolAllocator, LimitAllocator)
//     and Release to hand rows back.
//
// Every failure returns a sentinel error (ErrAlloc, ErrZeroSize,
// ErrNilArgument, ErrOutOfRange, ErrDimensionMismatch, ErrStream) and, when a
// channel is bound with WithErrorChannel, raises the matching errchan.Code.
// There is no arithmetic here: no add, multiply, decomposition or solving.
//
// See the examples in this package for usage patterns.
package matrix
