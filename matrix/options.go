// SPDX-License-Identifier: MIT

// Package matrix: functional configuration.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) and the failure/trace plumbing every
//     operation goes through.
//
// Notes:
//   - Options are resolved once, at construction, and stored in the Matrix.
//     Copy, Clone and SubMatrix inherit them; Copy accepts overrides.
//   - The error channel and the trace sink are side channels: they observe
//     failures, they never change what an operation returns.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmat/diag"
	"github.com/katalvlaran/lvmat/errchan"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultElemFormat is the element format used by Fprint, Print, WriteTo and String.
	DefaultElemFormat = "%.4g"
)

// DefaultAllocator serves row buffers when no WithAllocator option is given.
var DefaultAllocator RowAllocator = HeapAllocator{}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicAllocatorNil   = "matrix: WithAllocator: allocator must be non-nil"
	panicElemFormatZero = "matrix: WithElemFormat: format must be non-empty"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration of a matrix.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	alloc      RowAllocator     // DefaultAllocator
	errs       *errchan.Channel // nil: no side channel
	sink       *diag.Sink       // diag.Default()
	elemFormat string           // DefaultElemFormat
}

// WithAllocator routes row allocation and release through a.
// Panics when a is nil.
func WithAllocator(a RowAllocator) Option {
	if a == nil {
		panic(panicAllocatorNil)
	}

	return func(o *Options) { o.alloc = a }
}

// WithErrorChannel binds ch as the last-failure slot. Every failing operation
// on the resulting matrix raises its code on ch. A nil ch detaches the slot.
func WithErrorChannel(ch *errchan.Channel) Option {
	return func(o *Options) { o.errs = ch }
}

// WithSink sends traces to s instead of diag.Default(). nil means diag.Discard.
func WithSink(s *diag.Sink) Option {
	if s == nil {
		s = diag.Discard
	}

	return func(o *Options) { o.sink = s }
}

// WithElemFormat sets the element format used by the default-format printers.
// Panics on an empty format; an invalid verb surfaces as ErrAlloc when printing.
func WithElemFormat(format string) Option {
	if format == "" {
		panic(panicElemFormatZero)
	}

	return func(o *Options) { o.elemFormat = format }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		alloc:      DefaultAllocator,
		sink:       diag.Default(),
		elemFormat: DefaultElemFormat,
	}
}

// gatherOptions applies user setters over base in order; nil setters are skipped.
func gatherOptions(base Options, user ...Option) Options {
	for _, set := range user {
		if set != nil {
			set(&base)
		}
	}

	return base
}

// fail raises err's code on the bound channel, traces it and returns err
// unchanged. Every failure path in the package ends here.
func (o Options) fail(err error) error {
	o.errs.Raise(CodeOf(err))
	if o.sink.Enabled(diag.LevelError) {
		o.sink.Output(2, diag.LevelError, fmt.Sprintf("%s: %v", CodeOf(err), err))
	}

	return err
}

// debugf emits a debug trace attributed to the caller.
func (o Options) debugf(format string, args ...any) {
	if !o.sink.Enabled(diag.LevelDebug) {
		return
	}
	o.sink.Output(2, diag.LevelDebug, fmt.Sprintf(format, args...))
}
