// SPDX-License-Identifier: MIT

// Package matrix - row buffer allocation.
//
// Purpose:
//   - Give every row buffer a single, pluggable source and sink so that the
//     construction unwind path and Release share one code path.
//   - Turn recoverable allocation failures (oversized make) into ErrAlloc.
//
// Complexity quicksheet:
//   - Alloc: O(n) zeroing (heap or recycled+cleared), O(1) for uninitialized reuse.
//   - Free: O(1).
package matrix

import (
	"fmt"
	"sync"
)

// RowAllocator hands out and takes back row buffers.
//
// Contract:
//   - Alloc returns a slice of length n, or an error. When zero is true every
//     element is 0; otherwise contents are unspecified.
//   - Free receives each buffer obtained from Alloc exactly once.
//   - Implementations must be safe for concurrent use when shared between
//     matrices owned by different goroutines.
type RowAllocator interface {
	Alloc(n int, zero bool) ([]float64, error)
	Free(row []float64)
}

// catchAlloc runs f and converts a runtime allocation panic into ErrAlloc.
// A true out-of-memory condition is fatal in Go and cannot be caught here.
func catchAlloc(op string, n int, f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s(%d): %v: %w", op, n, r, ErrAlloc)
		}
	}()
	f()

	return nil
}

// HeapAllocator allocates fresh slices with make; Free leaves them to the GC.
// make always zero-fills, so the zero flag is free.
type HeapAllocator struct{}

// Alloc implements RowAllocator.
func (HeapAllocator) Alloc(n int, _ bool) ([]float64, error) {
	var row []float64
	if err := catchAlloc("HeapAllocator.Alloc", n, func() { row = make([]float64, n) }); err != nil {
		return nil, err
	}

	return row, nil
}

// Free implements RowAllocator.
func (HeapAllocator) Free([]float64) {}

// PoolAllocator recycles released rows through one sync.Pool per row length.
// Uninitialized allocations may return stale contents; zero allocations are
// cleared before being handed out.
type PoolAllocator struct {
	mu    sync.Mutex
	pools map[int]*sync.Pool
}

// NewPoolAllocator returns an empty PoolAllocator.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{pools: make(map[int]*sync.Pool)}
}

func (p *PoolAllocator) pool(n int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	sp, ok := p.pools[n]
	if !ok {
		sp = new(sync.Pool)
		p.pools[n] = sp
	}

	return sp
}

// Alloc implements RowAllocator.
func (p *PoolAllocator) Alloc(n int, zero bool) ([]float64, error) {
	if v := p.pool(n).Get(); v != nil {
		row := *(v.(*[]float64))
		if zero {
			clear(row)
		}

		return row, nil
	}

	return HeapAllocator{}.Alloc(n, zero)
}

// Free implements RowAllocator.
func (p *PoolAllocator) Free(row []float64) {
	if len(row) == 0 {
		return
	}
	p.pool(len(row)).Put(&row)
}

// LimitAllocator caps the number of live elements handed out by Next.
// It also counts outstanding rows, which makes leaks on failure paths visible.
type LimitAllocator struct {
	next     RowAllocator
	maxElems int64

	mu    sync.Mutex
	elems int64
	rows  int64
}

// NewLimitAllocator wraps next (DefaultAllocator when nil) with a cap of
// maxElems live elements. maxElems <= 0 means no cap, only accounting.
func NewLimitAllocator(next RowAllocator, maxElems int64) *LimitAllocator {
	if next == nil {
		next = DefaultAllocator
	}

	return &LimitAllocator{next: next, maxElems: maxElems}
}

// Alloc implements RowAllocator.
func (l *LimitAllocator) Alloc(n int, zero bool) ([]float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.maxElems > 0 && l.elems+int64(n) > l.maxElems {
		return nil, fmt.Errorf("LimitAllocator.Alloc(%d): %d of %d elements live: %w", n, l.elems, l.maxElems, ErrAlloc)
	}
	row, err := l.next.Alloc(n, zero)
	if err != nil {
		return nil, err
	}
	l.elems += int64(n)
	l.rows++

	return row, nil
}

// Free implements RowAllocator.
func (l *LimitAllocator) Free(row []float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.elems -= int64(len(row))
	l.rows--
	l.next.Free(row)
}

// Live returns the number of elements currently handed out.
func (l *LimitAllocator) Live() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.elems
}

// LiveRows returns the number of row buffers currently handed out.
func (l *LimitAllocator) LiveRows() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rows
}
