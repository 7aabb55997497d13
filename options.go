// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freeq

// Options configures queue creation.
type Options struct {
	capacity  int
	channels  int
	exclusive bool
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Stereo queue, lock-free SPSC contract (default)
//	q := freeq.Build[float32](freeq.With(4096).Channels(2))
//
//	// Mono queue, every operation serialized internally
//	q := freeq.Build[float64](freeq.With(1024).Exclusive())
type Builder struct {
	opts Options
}

// With creates a queue builder with the given usable capacity in
// samples per channel. The channel count defaults to 1.
//
// Panics if capacity < 1.
func With(capacity int) *Builder {
	if capacity < 1 {
		panic("freeq: capacity must be >= 1")
	}
	return &Builder{opts: Options{capacity: capacity, channels: 1}}
}

// Channels sets the number of independent parallel sample streams.
// Panics if n < 1.
func (b *Builder) Channels(n int) *Builder {
	if n < 1 {
		panic("freeq: channel count must be >= 1")
	}
	b.opts.channels = n
	return b
}

// Exclusive routes every operation through one internal spinlock.
//
// This deliberately widens the concurrency contract: any goroutine may
// call any operation, including the edge variants that move both
// cursors, at the price of the lock-free guarantee on the steady-state
// Push/Pull path. Use it when the embedding system cannot confine each
// cursor to a single role; leave it off for the real-time SPSC case.
func (b *Builder) Exclusive() *Builder {
	b.opts.exclusive = true
	return b
}

// Build creates a queue from the builder's configuration.
func Build[F Sample](b *Builder) *Queue[F] {
	q := New[F](b.opts.capacity, b.opts.channels)
	q.exclusive = b.opts.exclusive
	return q
}
