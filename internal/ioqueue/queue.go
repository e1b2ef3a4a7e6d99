// File: internal/ioqueue/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Queue is the platform-independent completion queue that unifies
// read, write, write-queue-wake, agent-wakeup, and quit events behind
// one multi-producer, single-consumer surface, per spec.md §4.4's
// "shared discipline: exactly one service goroutine consumes
// completions". Platform backends (backend_linux.go, backend_windows.go,
// backend_other.go) only probe for a native completion facility; the
// queue itself is always this ring-backed, channel-woken structure —
// the portable approximation spec.md §9 calls for on platforms without
// one.

package ioqueue

import (
	"sync/atomic"

	"github.com/RLBot/go-interface/internal/concurrency"
)

// EventKind discriminates completion events posted to the queue.
type EventKind int

const (
	EventRead EventKind = iota
	EventWrite
	EventWriteQueue
	EventAgentWakeup
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventRead:
		return "read"
	case EventWrite:
		return "write"
	case EventWriteQueue:
		return "write-queue"
	case EventAgentWakeup:
		return "agent-wakeup"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Completion is one multiplexed event: a read/write result, or a
// zero-value control event (write-queue wake, agent wakeup, quit).
type Completion struct {
	Kind EventKind
	N    int
	Err  error
}

// Queue is a single-consumer completion queue backed by a lock-free
// ring; any number of goroutines may Post, exactly one goroutine may
// call Next in a loop.
type Queue struct {
	ring   *concurrency.RingBuffer[Completion]
	wake   chan struct{}
	closed atomic.Bool
}

// New creates a Queue with the given ring capacity (must be a power of two).
func New(capacity uint64) *Queue {
	return &Queue{
		ring: concurrency.NewRingBuffer[Completion](capacity),
		wake: make(chan struct{}, 1),
	}
}

// Post enqueues a completion event. Returns false if the queue is
// closed or its ring is full (the latter should not happen in
// practice given the ring is sized generously relative to in-flight
// work).
func (q *Queue) Post(c Completion) bool {
	if q.closed.Load() {
		return false
	}
	if !q.ring.Enqueue(c) {
		return false
	}
	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

// Next blocks until a completion is available, returning ok=false
// once the queue has been closed and fully drained — the signal for
// the I/O goroutine to exit its loop for good.
func (q *Queue) Next() (Completion, bool) {
	for {
		if c, ok := q.ring.Dequeue(); ok {
			return c, true
		}
		if q.closed.Load() {
			if c, ok := q.ring.Dequeue(); ok {
				return c, true
			}
			return Completion{}, false
		}
		<-q.wake
	}
}

// Close marks the queue closed; Next drains any remaining completions
// before reporting ok=false.
func (q *Queue) Close() {
	q.closed.Store(true)
	select {
	case q.wake <- struct{}{}:
	default:
	}
}
