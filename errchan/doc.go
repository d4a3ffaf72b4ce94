// SPDX-License-Identifier: MIT

// Package errchan records the last failure raised by matrix operations.
//
// What:
//
//   - Code enumerates the failure kinds (allocation, zero-sized result, nil
//     argument, index out of range, dimension mismatch, stream failure).
//   - Describe turns a Code into a human-readable description; unknown codes,
//     including None, map to "Unknown error".
//   - Channel is a single last-failure slot. It is written only on failure and
//     never cleared implicitly: call Clear before the call you want to inspect.
//   - Registry hands out one Channel per owner key (a worker name, a request ID)
//     so that concurrent goroutines never observe each other's failures.
//
// Why:
//
//	Every matrix operation already returns an error. The channel exists for
//	callers that prefer to test a sentinel result (NaN, nil, -1) and consult a
//	status slot afterwards, the way C-style numeric libraries are used.
//
// Binding:
//
//	A Channel is bound to matrices with matrix.WithErrorChannel; every
//	operation on such a matrix raises the matching Code right before it
//	returns an error.
package errchan
