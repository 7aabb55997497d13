// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freeq

// Pull removes one block per channel from the head (consumer only).
//
// All-or-nothing: if fewer samples than requested are available,
// nothing is copied, no cursor moves, and ErrWouldBlock is returned.
// On success the block is copied into the caller's slices and the read
// cursor advances by the block length.
func (q *Queue[F]) Pull(block ...[]F) error {
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
	err = q.pull(block, n, true)
	q.unlock()
	return err
}

// Peek copies like Pull but leaves the read cursor in place, so the
// same samples remain readable. Same all-or-nothing contract.
func (q *Queue[F]) Peek(block ...[]F) error {
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
	err = q.pull(block, n, false)
	q.unlock()
	return err
}

func (q *Queue[F]) pull(block [][]F, n int, advance bool) error {
	read := q.read.LoadRelaxed()
	write := q.write.LoadAcquire()
	if q.availableRead(read, write) < uint64(n) {
		return ErrWouldBlock
	}

	q.copyOut(read, block, n)
	if advance {
		q.read.StoreRelease((read + uint64(n)) % q.physical)
	}
	return nil
}

// PullFront reads from the head like Pull but never fails on
// insufficient data: the request clamps down to what is available and
// the count actually copied is returned (0 on an empty queue). The
// read cursor advances by the clamped count.
//
// A malformed block or nil queue also reports 0; the caller must
// always compare the returned count against the request.
func (q *Queue[F]) PullFront(block ...[]F) int {
	if q == nil {
		return 0
	}
	n, err := q.blockLength(block)
	if err != nil || n == 0 {
		return 0
	}

	q.lock()
	n = q.pullFront(block, n, true)
	q.unlock()
	return n
}

// PeekFront is the non-advancing form of PullFront.
func (q *Queue[F]) PeekFront(block ...[]F) int {
	if q == nil {
		return 0
	}
	n, err := q.blockLength(block)
	if err != nil || n == 0 {
		return 0
	}

	q.lock()
	n = q.pullFront(block, n, false)
	q.unlock()
	return n
}

func (q *Queue[F]) pullFront(block [][]F, n int, advance bool) int {
	read := q.read.LoadRelaxed()
	write := q.write.LoadAcquire()
	if avail := q.availableRead(read, write); uint64(n) > avail {
		n = int(avail)
	}
	if n == 0 {
		return 0
	}

	q.copyOut(read, block, n)
	if advance {
		q.read.StoreRelease((read + uint64(n)) % q.physical)
	}
	return n
}

// PullBack reads the most recently written samples: the block ending
// at the write cursor rather than starting at the read cursor. The
// request clamps down to what is available and the copied count is
// returned.
//
// The read cursor still advances by the clamped count even though the
// copy came from the tail, mirroring PullFront's accounting. Use
// PeekBack for non-destructive tail inspection.
func (q *Queue[F]) PullBack(block ...[]F) int {
	if q == nil {
		return 0
	}
	n, err := q.blockLength(block)
	if err != nil || n == 0 {
		return 0
	}

	q.lock()
	n = q.pullBack(block, n, true)
	q.unlock()
	return n
}

// PeekBack is the non-advancing form of PullBack.
func (q *Queue[F]) PeekBack(block ...[]F) int {
	if q == nil {
		return 0
	}
	n, err := q.blockLength(block)
	if err != nil || n == 0 {
		return 0
	}

	q.lock()
	n = q.pullBack(block, n, false)
	q.unlock()
	return n
}

func (q *Queue[F]) pullBack(block [][]F, n int, advance bool) int {
	read := q.read.LoadRelaxed()
	write := q.write.LoadAcquire()
	if avail := q.availableRead(read, write); uint64(n) > avail {
		n = int(avail)
	}
	if n == 0 {
		return 0
	}

	tail := (write + q.physical - uint64(n)) % q.physical
	q.copyOut(tail, block, n)
	if advance {
		q.read.StoreRelease((read + uint64(n)) % q.physical)
	}
	return n
}

// PullFrom reads one block per channel starting at slot
// begin%BufferLength without advancing any cursor (addressed access,
// the read counterpart of PushTo).
//
// All-or-nothing: the whole range must lie inside the unread region
// [read cursor, write cursor); on success the block length is
// returned, otherwise 0 and nothing is copied. Addressed reads are
// definitionally non-consuming, so there is no advancing form.
func (q *Queue[F]) PullFrom(begin uint64, block ...[]F) int {
	if q == nil {
		return 0
	}
	n, err := q.blockLength(block)
	if err != nil || n == 0 {
		return 0
	}

	q.lock()
	n = q.pullFrom(begin, block, n)
	q.unlock()
	return n
}

func (q *Queue[F]) pullFrom(begin uint64, block [][]F, n int) int {
	begin %= q.physical
	read := q.read.LoadAcquire()
	write := q.write.LoadAcquire()

	d := (begin + q.physical - read) % q.physical
	if d+uint64(n) > q.availableRead(read, write) {
		return 0
	}

	q.copyOut(begin, block, n)
	return n
}
