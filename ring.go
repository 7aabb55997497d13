// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freeq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Queue is a fixed-capacity multi-channel SPSC ring buffer for
// real-valued sample blocks.
//
// One contiguous buffer per channel, physical length capacity+1: the
// extra sentinel slot keeps the full and empty cursor states
// distinguishable without a separate counter. Both cursors live in
// [0, physical) and are independently atomic; the consumer owns the
// read cursor, the producer owns the write cursor. A cursor update is
// a release store and the opposite role reads it with an acquire load,
// so a role that observes a new cursor value also observes every
// sample write that preceded it.
//
// Steady-state Push/Pull never touch the opposite role's cursor and
// are safe with one producer goroutine and one consumer goroutine and
// no lock. The edge operations (PushBack, PushFront) evict resident
// data by moving the opposite cursor and are NOT covered by that
// contract: call them only while the other role is quiescent, or build
// the queue with Exclusive(). Clear, SetReadCursor and SetWriteCursor
// carry the same caveat.
//
// Memory: O(channels * capacity), allocated once at construction.
// No operation allocates.
type Queue[F Sample] struct {
	_     pad
	read  atomix.Uint64 // Consumer cursor, next slot to read
	_     pad
	write atomix.Uint64 // Producer cursor, next slot to write
	_     pad
	guard atomix.Uint64 // Exclusive-mode spinlock word
	_     pad
	data  [][]F
	// physical and nchan are plain fields so Pointer can hand out
	// stable addresses; both are immutable after construction.
	physical uint64
	nchan    uint64

	exclusive bool
}

// New creates a queue with the given usable capacity (slots per
// channel) and channel count. All slots are zero-initialized and both
// cursors start at 0.
//
// Panics if capacity < 1 or channels < 1.
func New[F Sample](capacity, channels int) *Queue[F] {
	if capacity < 1 {
		panic("freeq: capacity must be >= 1")
	}
	if channels < 1 {
		panic("freeq: channel count must be >= 1")
	}

	physical := uint64(capacity) + 1
	data := make([][]F, channels)
	for i := range data {
		data[i] = make([]F, physical)
	}
	return &Queue[F]{
		data:     data,
		physical: physical,
		nchan:    uint64(channels),
	}
}

// availableRead returns the number of unread samples per channel for a
// consistent (read, write) snapshot. Both callers take the snapshot
// once at operation start; re-reading a cursor mid-operation would let
// a concurrent update invalidate the feasibility check.
func (q *Queue[F]) availableRead(read, write uint64) uint64 {
	if write >= read {
		return write - read
	}
	return write + q.physical - read
}

// availableWrite returns the number of free slots per channel.
// availableRead + availableWrite == physical - 1 for every legal pair;
// the missing slot is the sentinel.
func (q *Queue[F]) availableWrite(read, write uint64) uint64 {
	return q.physical - 1 - q.availableRead(read, write)
}

// blockLength validates the block shape against the channel layout and
// returns the per-channel sample count.
func (q *Queue[F]) blockLength(block [][]F) (int, error) {
	if uint64(len(block)) != q.nchan {
		return 0, ErrChannelMismatch
	}
	n := len(block[0])
	for _, ch := range block[1:] {
		if len(ch) != n {
			return 0, ErrChannelMismatch
		}
	}
	return n, nil
}

// copyIn copies n samples per channel from src[ch][off:] into the ring
// starting at slot pos, wrapping at the physical boundary. At most two
// copy calls per channel.
func (q *Queue[F]) copyIn(pos uint64, src [][]F, off, n int) {
	first := int(q.physical - pos)
	if first > n {
		first = n
	}
	for ch, in := range src {
		buf := q.data[ch]
		copy(buf[pos:], in[off:off+first])
		copy(buf, in[off+first:off+n])
	}
}

// copyOut copies n samples per channel from the ring starting at slot
// pos into dst[ch][:n], wrapping at the physical boundary.
func (q *Queue[F]) copyOut(pos uint64, dst [][]F, n int) {
	first := int(q.physical - pos)
	if first > n {
		first = n
	}
	for ch, out := range dst {
		buf := q.data[ch]
		copy(out[:first], buf[pos:])
		copy(out[first:n], buf)
	}
}

// lock acquires the exclusive-mode spinlock. No-op on queues built
// without Exclusive(); the steady-state path stays lock-free.
func (q *Queue[F]) lock() {
	if !q.exclusive {
		return
	}
	sw := spin.Wait{}
	for !q.guard.CompareAndSwapAcqRel(0, 1) {
		sw.Once()
	}
}

// unlock releases the exclusive-mode spinlock.
func (q *Queue[F]) unlock() {
	if !q.exclusive {
		return
	}
	q.guard.StoreRelease(0)
}
