// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package freeq provides a fixed-capacity, lock-free ring buffer that
// moves blocks of multi-channel real-valued samples between exactly
// one producer and one consumer without blocking either side.
//
// It is the cross-thread handoff primitive of a real-time audio
// pipeline: a rendering goroutine pushes fixed-size blocks of samples,
// one slice per channel; an I/O goroutine pulls them, possibly at a
// different cadence. Every operation is a bounded, non-blocking
// sequence of loads, copies and stores that either completes or
// reports infeasibility immediately — poll, never wait.
//
// # Quick Start
//
//	// Stereo queue of 4096 float32 samples per channel
//	q := freeq.New[float32](4096, 2)
//
//	// Producer
//	err := q.Push(left, right)
//	if freeq.IsWouldBlock(err) {
//	    // Queue full - drop the block or retry later
//	}
//
//	// Consumer
//	err = q.Pull(outL, outR)
//	if freeq.IsWouldBlock(err) {
//	    // Not enough samples yet - try again later
//	}
//
// The builder configures channel count and locking mode:
//
//	q := freeq.Build[float32](freeq.With(4096).Channels(2))
//	q := freeq.Build[float64](freeq.With(1024).Exclusive())
//
// # Data Model
//
// A queue with capacity C and channel count K owns K contiguous
// buffers of C+1 slots each. The extra sentinel slot disambiguates
// full from empty using only the two cursors: the queue is empty when
// read == write and full when the write cursor is one slot (mod C+1)
// behind the read cursor. At every consistent snapshot
//
//	Len() + Free() == Cap()
//
// All transfer operations move one equal-length block per channel in
// lockstep. Blocks are always copied; the queue never retains or
// returns references to caller slices, and no operation allocates.
//
// # Push and Pull Families
//
// The two plain operations are all-or-nothing and return an error:
//
//	Push(block...)  - append at the tail, ErrWouldBlock if short on room
//	Pull(block...)  - remove from the head, ErrWouldBlock if short on data
//	Peek(block...)  - Pull without advancing the read cursor
//
// The clamped operations are best-effort and return a count; a short
// or zero count is a first-class successful result, never an error:
//
//	PullFront / PeekFront - head samples, clamped to what is available
//	PullBack  / PeekBack  - tail samples (most recently written), clamped
//
// This asymmetry is deliberate: callers of Push/Pull check an error,
// callers of the clamped family must check the returned count.
//
// The edge push variants trade the no-mutation guarantee for eviction
// policies:
//
//	PushBack  - evict-oldest: overwrites the least recent samples
//	PushFront - insert-at-head: the block is read first; evicts the
//	            most recent samples when room runs out
//
// Eviction is implemented as cursor motion only; resident samples are
// never copied around.
//
// The addressed operations access explicit slots and ignore cursors:
//
//	PushTo(begin, block...)   - write at a slot, fail on unread overlap
//	PullFrom(begin, block...) - read inside the unread region, count result
//
// # Concurrency Contract
//
// The write cursor is mutated only by the producer, the read cursor
// only by the consumer. Each cursor is an independent atomic with
// acquire/release semantics: once a role observes the other side's new
// cursor value, it also observes every sample write that preceded the
// cursor update. Under this discipline Push, Pull, Peek, PullFront,
// PeekFront, PullBack and PeekBack are safe with one producer
// goroutine and one consumer goroutine and no lock.
//
// PushBack and PushFront move the opposite role's cursor, and Clear,
// SetReadCursor and SetWriteCursor rewrite state wholesale. These are
// safe only while the other role is quiescent, or on a queue built
// with Exclusive(), which serializes every operation through an
// internal spinlock at the price of lock-freedom.
//
// There is no blocking mode and no cancellation: callers own the retry
// policy. [iox.Backoff] works well:
//
//	backoff := iox.Backoff{}
//	for q.Push(block) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// # Error Handling
//
// [ErrWouldBlock] (aliasing [code.hybscloud.com/iox].ErrWouldBlock) is
// a control flow signal: the queue was full or empty and nothing was
// mutated. [ErrNilQueue], [ErrChannelMismatch] and [ErrBlockTooLarge]
// are programmer errors; they also leave the queue untouched. A nil
// queue never faults: error-returning operations report ErrNilQueue,
// count-returning operations report 0.
//
// # Introspection
//
// For embedders that need raw access to the queue's memory (e.g. to
// share buffers across an isolation boundary), [Queue.Pointer] exposes
// a stable handle per [Field] and [Queue.ChannelData] returns the
// aliased per-channel buffer. [Queue.Dump] renders contents and
// cursors for debugging. None of this is engine behavior; the
// contract lives entirely in the operation families above.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before edges established
// through acquire/release orderings on separate atomic variables, so
// it reports false positives on the sample buffers even though the
// cursor protocol is correct. Concurrent tests are excluded from race
// builds via //go:build !race; see [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic cursors
// with explicit memory ordering, [code.hybscloud.com/iox] for semantic
// errors, [code.hybscloud.com/spin] for the Exclusive-mode spinlock,
// and [golang.org/x/sys/cpu] for cache line padding.
package freeq
