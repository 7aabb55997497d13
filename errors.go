// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freeq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Push and PushTo: not enough free room for the whole block
// (backpressure, or an addressed write overlapping unread data).
// For Pull and Peek: fewer samples than requested are available.
//
// ErrWouldBlock is a control flow signal, not a failure. The caller
// should retry later (with backoff or yield), drop the block, or treat
// the condition as backpressure. The queue is never mutated when an
// operation returns ErrWouldBlock.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Push(left, right)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if freeq.IsWouldBlock(err) {
//	        backoff.Wait() // Adaptive backpressure
//	        continue
//	    }
//	    return err // Programmer error: malformed block, nil queue
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrNilQueue is returned by error-returning operations invoked on a
// nil *Queue. Count-returning operations report 0 instead. Either way
// a nil handle never faults.
var ErrNilQueue = errors.New("freeq: nil queue")

// ErrChannelMismatch is returned when a block does not have exactly one
// slice per channel, or when the per-channel slices differ in length.
// All channels transfer in lockstep with identical block lengths.
var ErrChannelMismatch = errors.New("freeq: block shape does not match channel layout")

// ErrBlockTooLarge is returned by PushFront when the block exceeds the
// usable capacity, and by PushTo when it exceeds the physical length.
// Unlike ErrWouldBlock this cannot clear up by retrying.
var ErrBlockTooLarge = errors.New("freeq: block exceeds queue capacity")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
