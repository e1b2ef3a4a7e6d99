// File: internal/concurrency/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer backs internal/ioqueue's completion queue: any number of
// goroutines post completions (read/write/write-queue-wake/agent-wakeup/
// quit) concurrently while exactly one service goroutine drains them in
// order, per spec.md §4.4's "shared discipline: exactly one service
// goroutine consumes completions". That Post side is genuinely
// multi-producer, so the ring uses per-cell sequence numbers (Vyukov's
// bounded MPMC queue) rather than a single producer-owned tail: a plain
// compare-free head/tail pair corrupts the buffer the moment two
// goroutines post a completion at the same time.

package concurrency

import "sync/atomic"

type cell[T any] struct {
	sequence atomic.Uint64
	data     T
}

// RingBuffer is a lock-free bounded MPMC ring buffer, head/tail padded
// to keep the producer and consumer cache lines apart.
type RingBuffer[T any] struct {
	head  atomic.Uint64
	_     [64]byte
	tail  atomic.Uint64
	_     [64]byte
	mask  uint64
	cells []cell[T]
}

// NewRingBuffer allocates a ring buffer of power-of-two size.
func NewRingBuffer[T any](size uint64) *RingBuffer[T] {
	if size == 0 || size&(size-1) != 0 {
		panic("size must be power of two")
	}
	r := &RingBuffer[T]{
		mask:  size - 1,
		cells: make([]cell[T], size),
	}
	for i := range r.cells {
		r.cells[i].sequence.Store(uint64(i))
	}
	return r
}

// Enqueue adds item; returns false if full.
func (r *RingBuffer[T]) Enqueue(item T) bool {
	for {
		tail := r.tail.Load()
		c := &r.cells[tail&r.mask]
		seq := c.sequence.Load()

		switch diff := int64(seq) - int64(tail); {
		case diff == 0:
			if r.tail.CompareAndSwap(tail, tail+1) {
				c.data = item
				c.sequence.Store(tail + 1)
				return true
			}
		case diff < 0:
			return false // full
		default:
			// another producer claimed this cell; retry against the new tail
		}
	}
}

// Dequeue removes and returns the oldest item; ok is false if empty.
func (r *RingBuffer[T]) Dequeue() (T, bool) {
	for {
		head := r.head.Load()
		c := &r.cells[head&r.mask]
		seq := c.sequence.Load()

		switch diff := int64(seq) - int64(head+1); {
		case diff == 0:
			if r.head.CompareAndSwap(head, head+1) {
				item := c.data
				var zero T
				c.data = zero
				c.sequence.Store(head + r.mask + 1)
				return item, true
			}
		case diff < 0:
			var zero T
			return zero, false // empty
		default:
			// another consumer claimed this cell; retry against the new head
		}
	}
}

// Len returns an instantaneous count of items in the buffer; under
// concurrent producers this is a snapshot, not a guarantee.
func (r *RingBuffer[T]) Len() int {
	head := r.head.Load()
	tail := r.tail.Load()
	return int(tail - head)
}

// Cap returns the fixed buffer capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.cells)
}
