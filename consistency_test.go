// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Model-based property tests: random operation sequences are mirrored
// against a plain slice model, with the capacity conservation invariant
// checked after every step.

package freeq_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/freeq"
	"github.com/valyala/fastrand"
)

// model is a reference implementation over a plain slice: index 0 is
// the head (oldest sample), the end is the tail (newest).
type model struct {
	cap  int
	data []float64
}

func (m *model) push(block []float64) bool {
	if len(block) > m.cap-len(m.data) {
		return false
	}
	m.data = append(m.data, block...)
	return true
}

func (m *model) pushBack(block []float64) {
	if len(block) > m.cap {
		block = block[len(block)-m.cap:]
	}
	if deficit := len(m.data) + len(block) - m.cap; deficit > 0 {
		m.data = m.data[deficit:] // evict oldest
	}
	m.data = append(m.data, block...)
}

func (m *model) pushFront(block []float64) bool {
	if len(block) > m.cap {
		return false
	}
	if len(block) <= m.cap-len(m.data) {
		m.data = append(m.data, block...) // room: plain append
		return true
	}
	keep := m.cap - len(block) // evict newest
	m.data = append(append([]float64(nil), block...), m.data[:keep]...)
	return true
}

func (m *model) pull(n int) ([]float64, bool) {
	if n > len(m.data) {
		return nil, false
	}
	out := append([]float64(nil), m.data[:n]...)
	m.data = m.data[n:]
	return out, true
}

func (m *model) pullFront(n int) []float64 {
	if n > len(m.data) {
		n = len(m.data)
	}
	out := append([]float64(nil), m.data[:n]...)
	m.data = m.data[n:]
	return out
}

func (m *model) pullBack(n int) []float64 {
	if n > len(m.data) {
		n = len(m.data)
	}
	out := append([]float64(nil), m.data[len(m.data)-n:]...)
	m.data = m.data[n:] // cursor accounting still trims the head
	return out
}

// TestRandomOpsAgainstModel drives a single-channel queue with a
// random mix of every data-movement operation and compares each
// transfer, plus Len, against the model.
func TestRandomOpsAgainstModel(t *testing.T) {
	const (
		capacity = 13
		steps    = 200_000
	)
	q := freeq.New[float64](capacity, 1)
	m := &model{cap: capacity}

	var seq float64
	makeBlock := func(n int) []float64 {
		block := make([]float64, n)
		for i := range block {
			seq++
			block[i] = seq
		}
		return block
	}

	for step := range steps {
		n := int(fastrand.Uint32n(capacity + 3)) // 0..capacity+2
		switch fastrand.Uint32n(6) {
		case 0:
			block := makeBlock(n)
			err := q.Push(block)
			if ok := m.push(block); ok != (err == nil) {
				t.Fatalf("step %d: Push(%d) err=%v, model ok=%v (len=%d)",
					step, n, err, ok, len(m.data))
			}
			if err != nil && !errors.Is(err, freeq.ErrWouldBlock) {
				t.Fatalf("step %d: Push(%d): %v", step, n, err)
			}
		case 1:
			block := makeBlock(n)
			if err := q.PushBack(block); err != nil {
				t.Fatalf("step %d: PushBack(%d): %v", step, n, err)
			}
			m.pushBack(block)
		case 2:
			block := makeBlock(n)
			err := q.PushFront(block)
			if ok := m.pushFront(block); ok != (err == nil) {
				t.Fatalf("step %d: PushFront(%d) err=%v, model ok=%v",
					step, n, err, ok)
			}
		case 3:
			out := make([]float64, n)
			err := q.Pull(out)
			want, ok := m.pull(n)
			if ok != (err == nil) {
				t.Fatalf("step %d: Pull(%d) err=%v, model ok=%v (len=%d)",
					step, n, err, ok, len(m.data))
			}
			if ok {
				for i := range want {
					if out[i] != want[i] {
						t.Fatalf("step %d: Pull(%d) sample %d: got %g, want %g",
							step, n, i, out[i], want[i])
					}
				}
			}
		case 4:
			out := make([]float64, n)
			got := q.PullFront(out)
			want := m.pullFront(n)
			if got != len(want) {
				t.Fatalf("step %d: PullFront(%d): got %d, want %d",
					step, n, got, len(want))
			}
			for i := range want {
				if out[i] != want[i] {
					t.Fatalf("step %d: PullFront(%d) sample %d: got %g, want %g",
						step, n, i, out[i], want[i])
				}
			}
		case 5:
			out := make([]float64, n)
			got := q.PullBack(out)
			want := m.pullBack(n)
			if got != len(want) {
				t.Fatalf("step %d: PullBack(%d): got %d, want %d",
					step, n, got, len(want))
			}
			for i := range want {
				if out[i] != want[i] {
					t.Fatalf("step %d: PullBack(%d) sample %d: got %g, want %g",
						step, n, i, out[i], want[i])
				}
			}
		}

		// Capacity conservation after every operation.
		if q.Len()+q.Free() != q.Cap() {
			t.Fatalf("step %d: Len(%d) + Free(%d) != Cap(%d)",
				step, q.Len(), q.Free(), q.Cap())
		}
		if q.Len() != len(m.data) {
			t.Fatalf("step %d: Len: got %d, model %d", step, q.Len(), len(m.data))
		}
		if r, w := q.ReadCursor(), q.WriteCursor(); r >= uint64(q.BufferLength()) ||
			w >= uint64(q.BufferLength()) {
			t.Fatalf("step %d: cursor out of range: read=%d write=%d physical=%d",
				step, r, w, q.BufferLength())
		}
	}
}

// TestConservationAllCursorPairs checks the availability identity for
// every reachable cursor pair directly via the escape hatches.
func TestConservationAllCursorPairs(t *testing.T) {
	const capacity = 9
	q := freeq.New[float32](capacity, 1)
	physical := uint64(q.BufferLength())

	for r := uint64(0); r < physical; r++ {
		for w := uint64(0); w < physical; w++ {
			q.SetReadCursor(r)
			q.SetWriteCursor(w)
			if q.Len()+q.Free() != capacity {
				t.Fatalf("(r=%d, w=%d): Len(%d) + Free(%d) != %d",
					r, w, q.Len(), q.Free(), capacity)
			}
			if r == w && q.Len() != 0 {
				t.Fatalf("(r=%d, w=%d): expected empty, Len=%d", r, w, q.Len())
			}
		}
	}
}
