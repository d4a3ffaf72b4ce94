// SPDX-License-Identifier: MIT

package errchan

import "sync/atomic"

// Channel is a last-failure slot.
//
// Contract:
//   - Raise stores a code; None is ignored so the slot is never reset by a raiser.
//   - Nothing but Clear resets the slot. A successful operation leaves it as is.
//   - The zero value is ready to use and reads None.
//   - All methods are safe on a nil *Channel (raises are dropped, reads give None).
//
// A Channel is meant to be owned by one goroutine. The atomic storage only makes
// cross-goroutine inspection (e.g. from a supervisor) race-free.
type Channel struct {
	last atomic.Int32
}

// Raise records code as the most recent failure.
func (c *Channel) Raise(code Code) {
	if c == nil || code == None {
		return
	}
	c.last.Store(int32(code))
}

// Last returns the most recently raised code, or None.
func (c *Channel) Last() Code {
	if c == nil {
		return None
	}

	return Code(c.last.Load())
}

// Clear resets the slot to None. Call it before the operation of interest.
func (c *Channel) Clear() {
	if c == nil {
		return
	}
	c.last.Store(int32(None))
}

// Err returns the last code as an error, or nil when nothing was raised.
func (c *Channel) Err() error {
	code := c.Last()
	if code == None {
		return nil
	}

	return &CodeError{Code: code}
}
