// SPDX-License-Identifier: MIT

// Package diag is the optional trace sink used by lvmat packages.
//
// Two independent switches control it: Debug (allocation, copy and printing
// traces) and Error (one line per failed operation). Both are off by default.
// Output goes to os.Stderr unless another writer is configured.
//
// Lines look like:
//
//	(14:03:07.123456789) store.go:97: matrix.allocate: [DEBUG] allocated rows, zero=true
//
// Write errors from the destination are swallowed: tracing never changes the
// outcome of the operation that emitted it.
package diag
