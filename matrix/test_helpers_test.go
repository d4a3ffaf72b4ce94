// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvmat/errchan"
	"github.com/katalvlaran/lvmat/matrix"
)

// maxShape is the largest side used by the exhaustive shape sweeps.
const maxShape = 10

// mustNew allocates an r×c zero matrix or fails the test.
func mustNew(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(r, c, opts...)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// seqValue is the fixture element at 1-based (i, j): 10*i + j.
func seqValue(i, j int) float64 { return float64(10*i + j) }

// mustSeq allocates an r×c matrix filled with seqValue.
func mustSeq(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Matrix {
	tb.Helper()
	m := mustNew(tb, r, c, opts...)
	for i := 1; i <= r; i++ {
		for j := 1; j <= c; j++ {
			if err := m.Set(i, j, seqValue(i, j)); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// mustAt reads (i, j) or fails the test.
func mustAt(tb testing.TB, m *matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// freshChannel returns a cleared channel plus the option binding it.
func freshChannel() (*errchan.Channel, matrix.Option) {
	ch := new(errchan.Channel)

	return ch, matrix.WithErrorChannel(ch)
}

// errWriteClosed is returned by failAfterWriter once its budget is spent.
var errWriteClosed = errors.New("writer closed")

// failAfterWriter accepts up to budget bytes, then fails.
type failAfterWriter struct {
	budget int
	got    []byte
}

func (w *failAfterWriter) Write(p []byte) (int, error) {
	if len(p) > w.budget {
		n := w.budget
		w.got = append(w.got, p[:n]...)
		w.budget = 0
		return n, errWriteClosed
	}
	w.budget -= len(p)
	w.got = append(w.got, p...)

	return len(p), nil
}

// fixedAllocator returns rows of a fixed length regardless of the request.
type fixedAllocator struct{ n int }

func (a fixedAllocator) Alloc(int, bool) ([]float64, error) { return make([]float64, a.n), nil }
func (fixedAllocator) Free([]float64)                       {}

// brokenAllocator fails every request with a foreign error.
type brokenAllocator struct{ err error }

func (a brokenAllocator) Alloc(int, bool) ([]float64, error) { return nil, a.err }
func (brokenAllocator) Free([]float64)                       {}
