// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freeq

import "golang.org/x/sys/cpu"

// Sample is the set of element types a queue can carry.
//
// The width is a build-time choice: instantiate Queue[float32] for
// single-precision pipelines (the common audio case) or Queue[float64]
// where the downstream DSP wants double precision.
type Sample interface {
	~float32 | ~float64
}

// Producer is the write side of a queue.
//
// Producer methods must be called from a single goroutine at a time.
// Blocks are copied into the queue's internal storage, so the caller
// may reuse its slices as soon as the call returns.
type Producer[F Sample] interface {
	// Push appends one block per channel at the tail (non-blocking).
	// Returns nil on success, ErrWouldBlock if there is not enough
	// room for the whole block. Never transfers partially.
	Push(block ...[]F) error
}

// Consumer is the read side of a queue.
//
// Consumer methods must be called from a single goroutine at a time.
type Consumer[F Sample] interface {
	// Pull removes one block per channel from the head (non-blocking).
	// Returns nil on success, ErrWouldBlock if fewer samples than
	// requested are available. Never transfers partially.
	Pull(block ...[]F) error

	// Peek copies like Pull but leaves the read cursor in place.
	Peek(block ...[]F) error
}

// Ring is the combined producer-consumer interface for a sample queue.
//
// The clamped and addressed access families are intentionally excluded:
// they widen the concurrency contract (see Queue documentation), and a
// component that only moves blocks through the ring should not see them.
type Ring[F Sample] interface {
	Producer[F]
	Consumer[F]
	Cap() int
	ChannelCount() int
}

// pad is cache line padding to prevent false sharing between the
// producer-owned and consumer-owned cursors.
type pad cpu.CacheLinePad
