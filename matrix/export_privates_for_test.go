// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot
//
// Purpose:
//   - Expose unexported helpers (truncateCell, borders) and a read-only view of
//     the resolved Options to matrix_test without widening the real API.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with Options. If Options changes, update
//     snapshotOf accordingly (tests will catch drift).

import (
	"github.com/katalvlaran/lvmat/diag"
	"github.com/katalvlaran/lvmat/errchan"
)

var (
	// ExportedTruncateCell exposes truncateCell for white-box tests.
	ExportedTruncateCell = truncateCell
	// ExportedBorders exposes borders for white-box tests.
	ExportedBorders = borders
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicAllocatorNil_TestOnly   = panicAllocatorNil
	PanicElemFormatZero_TestOnly = panicElemFormatZero
)

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	Allocator  RowAllocator
	Channel    *errchan.Channel
	Sink       *diag.Sink
	ElemFormat string
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Allocator:  o.alloc,
		Channel:    o.errs,
		Sink:       o.sink,
		ElemFormat: o.elemFormat,
	}
}

// DefaultOptionsSnapshot_TestOnly returns the documented defaults.
func DefaultOptionsSnapshot_TestOnly() OptionsSnapshot {
	return snapshotOf(defaultOptions())
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(defaultOptions(), opts...))
}

// MatrixOptionsSnapshot_TestOnly returns the options carried by m.
func MatrixOptionsSnapshot_TestOnly(m *Matrix) OptionsSnapshot {
	return snapshotOf(m.options())
}

// AllocateUninit_TestOnly forwards to allocate with zero=false.
func AllocateUninit_TestOnly(rows, cols int, opts ...Option) (*Matrix, error) {
	return allocate(rows, cols, false, gatherOptions(defaultOptions(), opts...))
}

// RowBuffersPresent_TestOnly reports whether every row buffer is non-nil and
// has length Cols().
func RowBuffersPresent_TestOnly(m *Matrix) bool {
	if len(m.data) != m.rows {
		return false
	}
	for _, row := range m.data {
		if row == nil || len(row) != m.cols {
			return false
		}
	}

	return true
}
