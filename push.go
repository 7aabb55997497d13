// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freeq

// Push appends one block per channel at the tail (producer only).
//
// All-or-nothing: if the free room is smaller than the block, nothing
// is copied, no cursor moves, and ErrWouldBlock is returned. On
// success the whole block is copied and the write cursor advances by
// the block length.
func (q *Queue[F]) Push(block ...[]F) error {
	if q == nil {
		return ErrNilQueue
	}
	n, err := q.blockLength(block)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	q.lock()
	err = q.push(block, n)
	q.unlock()
	return err
}

func (q *Queue[F]) push(block [][]F, n int) error {
	write := q.write.LoadRelaxed()
	read := q.read.LoadAcquire()
	if q.availableWrite(read, write) < uint64(n) {
		return ErrWouldBlock
	}

	q.copyIn(write, block, 0, n)
	q.write.StoreRelease((write + uint64(n)) % q.physical)
	return nil
}

// PushBack appends at the tail like Push, but on insufficient room it
// evicts the oldest samples instead of failing (overwrite-oldest
// policy). A block longer than the capacity keeps only its newest
// Cap() samples. PushBack never reports insufficient room.
//
// Eviction is cursor motion: the read cursor jumps forward over the
// evicted samples before the block is copied in. Moving the consumer's
// cursor breaks the lock-free SPSC contract — call PushBack only while
// the consumer is quiescent, or build the queue with Exclusive().
func (q *Queue[F]) PushBack(block ...[]F) error {
	if q == nil {
		return ErrNilQueue
	}
	n, err := q.blockLength(block)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	q.lock()
	q.pushBack(block, n)
	q.unlock()
	return nil
}

func (q *Queue[F]) pushBack(block [][]F, n int) {
	off := 0
	if c := int(q.physical - 1); n > c {
		off, n = n-c, c
	}

	write := q.write.LoadRelaxed()
	read := q.read.LoadAcquire()
	if avail := q.availableWrite(read, write); avail < uint64(n) {
		deficit := uint64(n) - avail
		q.read.StoreRelease((read + deficit) % q.physical)
	}

	q.copyIn(write, block, off, n)
	q.write.StoreRelease((write + uint64(n)) % q.physical)
}

// PushFront inserts one block per channel at the logical head, so the
// block is read before everything already queued. With sufficient room
// the queue behaves exactly like Push (append at the tail). When room
// is insufficient the block is placed just before the read cursor and
// the newest resident samples are evicted by retreating the write
// cursor (displace-outward-from-the-write-side policy).
//
// Fails with ErrBlockTooLarge, without mutation, if the block exceeds
// Cap().
//
// The insufficient-room branch moves both cursors and carries the same
// concurrency caveat as PushBack.
func (q *Queue[F]) PushFront(block ...[]F) error {
	if q == nil {
		return ErrNilQueue
	}
	n, err := q.blockLength(block)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	q.lock()
	err = q.pushFront(block, n)
	q.unlock()
	return err
}

func (q *Queue[F]) pushFront(block [][]F, n int) error {
	if uint64(n) > q.physical-1 {
		return ErrBlockTooLarge
	}

	write := q.write.LoadRelaxed()
	read := q.read.LoadAcquire()
	avail := q.availableWrite(read, write)
	if avail >= uint64(n) {
		q.copyIn(write, block, 0, n)
		q.write.StoreRelease((write + uint64(n)) % q.physical)
		return nil
	}

	// Evict the newest deficit samples from the tail, then place the
	// block in the n slots ending at the read cursor. The read cursor
	// is published last so a later consumer observes the block bytes.
	deficit := uint64(n) - avail
	q.write.StoreRelease((write + q.physical - deficit) % q.physical)
	head := (read + q.physical - uint64(n)) % q.physical
	q.copyIn(head, block, 0, n)
	q.read.StoreRelease(head)
	return nil
}

// PushTo writes one block per channel starting at slot begin%BufferLength
// without consulting or advancing either cursor (addressed access).
//
// Fails with ErrWouldBlock, without mutation, if the target range
// overlaps unread data, and with ErrBlockTooLarge if the block exceeds
// the physical length. The cursors never move, so the written samples
// become observable to Pull only through out-of-band cursor
// coordination (SetReadCursor/SetWriteCursor).
func (q *Queue[F]) PushTo(begin uint64, block ...[]F) error {
	if q == nil {
		return ErrNilQueue
	}
	n, err := q.blockLength(block)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	q.lock()
	err = q.pushTo(begin, block, n)
	q.unlock()
	return err
}

func (q *Queue[F]) pushTo(begin uint64, block [][]F, n int) error {
	if uint64(n) > q.physical {
		return ErrBlockTooLarge
	}
	begin %= q.physical

	read := q.read.LoadAcquire()
	write := q.write.LoadAcquire()
	if unread := q.availableRead(read, write); unread > 0 {
		// Offset of the target range relative to the read cursor. The
		// range [d, d+n) must stay clear of the unread span [0, unread)
		// and must not wrap back into it.
		d := (begin + q.physical - read) % q.physical
		if d < unread || d+uint64(n) > q.physical {
			return ErrWouldBlock
		}
	}

	q.copyIn(begin, block, 0, n)
	return nil
}
