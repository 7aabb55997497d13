// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package freeq

import (
	"fmt"
	"io"
	"strings"
	"unsafe"
)

// Field enumerates the internal handles a queue exposes to an
// embedding runtime that needs direct memory access (e.g. sharing the
// buffers across an isolation boundary). A closed enumeration with one
// handle per field replaces stringly-typed lookup.
type Field int

const (
	// FieldBufferLength is the physical slot count per channel (uint64).
	FieldBufferLength Field = iota
	// FieldChannelCount is the number of channels (uint64).
	FieldChannelCount
	// FieldChannelData is the backing array of per-channel slice
	// headers. Use ChannelData for a typed per-channel handle.
	FieldChannelData
	// FieldReadCursor is the consumer cursor (atomix.Uint64).
	FieldReadCursor
	// FieldWriteCursor is the producer cursor (atomix.Uint64).
	FieldWriteCursor
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldBufferLength:
		return "buffer_length"
	case FieldChannelCount:
		return "channel_count"
	case FieldChannelData:
		return "channel_data"
	case FieldReadCursor:
		return "read_cursor"
	case FieldWriteCursor:
		return "write_cursor"
	}
	return fmt.Sprintf("freeq.Field(%d)", int(f))
}

// Pointer returns the raw address of the given field, stable for the
// queue's lifetime. nil for a nil queue or an unknown field.
//
// This is diagnostics glue for embedders, not engine behavior: writing
// through these pointers bypasses every contract the queue documents.
func (q *Queue[F]) Pointer(f Field) unsafe.Pointer {
	if q == nil {
		return nil
	}
	switch f {
	case FieldBufferLength:
		return unsafe.Pointer(&q.physical)
	case FieldChannelCount:
		return unsafe.Pointer(&q.nchan)
	case FieldChannelData:
		return unsafe.Pointer(unsafe.SliceData(q.data))
	case FieldReadCursor:
		return unsafe.Pointer(&q.read)
	case FieldWriteCursor:
		return unsafe.Pointer(&q.write)
	}
	return nil
}

// ChannelData returns the backing buffer of channel ch. The slice
// aliases the queue's storage: it is a handle, not a copy. nil for a
// nil queue or an out-of-range channel.
func (q *Queue[F]) ChannelData(ch int) []F {
	if q == nil || ch < 0 || ch >= len(q.data) {
		return nil
	}
	return q.data[ch]
}

// dumpSlots caps how many slots per channel Dump renders.
const dumpSlots = 100

// Dump writes a human-readable rendering of the buffer contents and
// cursor state. Debug aid only; the format is not part of any
// contract.
func (q *Queue[F]) Dump(w io.Writer) {
	if q == nil {
		fmt.Fprintln(w, "freeq: <nil>")
		return
	}

	read := q.read.Load()
	write := q.write.Load()
	for ch, buf := range q.data {
		n := len(buf)
		if n > dumpSlots {
			n = dumpSlots
		}
		fmt.Fprintf(w, "channel %d:", ch)
		for _, v := range buf[:n] {
			fmt.Fprintf(w, " %g", v)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "read: %d | write: %d\n", read, write)
	fmt.Fprintf(w, "available_read: %d | available_write: %d\n",
		q.availableRead(read, write), q.availableWrite(read, write))
}

// String implements fmt.Stringer via Dump.
func (q *Queue[F]) String() string {
	var sb strings.Builder
	q.Dump(&sb)
	return sb.String()
}
