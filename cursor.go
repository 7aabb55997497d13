// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freeq

// Clear resets both cursors to 0 and zero-fills every channel buffer,
// returning the queue to its freshly constructed state. Reports false
// on a nil queue.
//
// Clear mutates both cursors and all buffer contents; like the edge
// push variants it requires both roles quiescent, or Exclusive().
func (q *Queue[F]) Clear() bool {
	if q == nil {
		return false
	}

	q.lock()
	for _, buf := range q.data {
		clear(buf)
	}
	q.read.StoreRelease(0)
	q.write.StoreRelease(0)
	q.unlock()
	return true
}

// ResetReadCursor sets the read cursor to 0 without touching buffer
// contents or the write cursor. Escape hatch for resynchronizing the
// two roles after an out-of-band agreement; not part of the
// steady-state protocol.
func (q *Queue[F]) ResetReadCursor() {
	if q == nil {
		return
	}
	q.lock()
	q.read.StoreRelease(0)
	q.unlock()
}

// ResetWriteCursor sets the write cursor to 0 without touching buffer
// contents or the read cursor.
func (q *Queue[F]) ResetWriteCursor() {
	if q == nil {
		return
	}
	q.lock()
	q.write.StoreRelease(0)
	q.unlock()
}

// ReadCursor returns the current read cursor. 0 on a nil queue.
func (q *Queue[F]) ReadCursor() uint64 {
	if q == nil {
		return 0
	}
	return q.read.Load()
}

// WriteCursor returns the current write cursor. 0 on a nil queue.
func (q *Queue[F]) WriteCursor() uint64 {
	if q == nil {
		return 0
	}
	return q.write.Load()
}

// SetReadCursor overrides the read cursor for coordination logic that
// lives outside the core (e.g. aligning two queues). The value is
// stored raw: keeping it inside [0, BufferLength) is the caller's
// responsibility.
func (q *Queue[F]) SetReadCursor(v uint64) {
	if q == nil {
		return
	}
	q.lock()
	q.read.StoreRelease(v)
	q.unlock()
}

// SetWriteCursor overrides the write cursor. Same contract as
// SetReadCursor.
func (q *Queue[F]) SetWriteCursor(v uint64) {
	if q == nil {
		return
	}
	q.lock()
	q.write.StoreRelease(v)
	q.unlock()
}

// Cap returns the usable capacity in samples per channel.
func (q *Queue[F]) Cap() int {
	if q == nil {
		return 0
	}
	return int(q.physical - 1)
}

// ChannelCount returns the number of channels.
func (q *Queue[F]) ChannelCount() int {
	if q == nil {
		return 0
	}
	return int(q.nchan)
}

// BufferLength returns the physical slot count per channel, one more
// than Cap.
func (q *Queue[F]) BufferLength() int {
	if q == nil {
		return 0
	}
	return int(q.physical)
}

// Len returns a snapshot of the unread sample count per channel.
// Never an overestimate for the consumer (a concurrent push may not be
// visible yet); other observers get an approximation.
func (q *Queue[F]) Len() int {
	if q == nil {
		return 0
	}
	read := q.read.Load()
	write := q.write.Load()
	return int(q.availableRead(read, write))
}

// Free returns a snapshot of the free slot count per channel.
// Never an overestimate for the producer (a concurrent pull may not be
// visible yet); other observers get an approximation.
// Len() + Free() == Cap() for every consistent snapshot.
func (q *Queue[F]) Free() int {
	if q == nil {
		return 0
	}
	read := q.read.Load()
	write := q.write.Load()
	return int(q.availableWrite(read, write))
}
