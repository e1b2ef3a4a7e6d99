// File: protocol/writer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Writer implements the write path of spec.md §4.3: a queue of
// completed Messages drained in insertion order, a single-submission
// invariant, and a fast path that lets the enqueuing goroutine issue
// the first submission itself. Grounded on
// original_source/library/BotManagerImpl.cpp's enqueueMessage /
// requestWrite / handleWrite triptych.

package protocol

import "sync"

// MaxBatchFrames caps how many queued frames one vectored write
// submission may carry, mirroring the original's PREALLOCATED_BUFFERS.
const MaxBatchFrames = 32

// Writer holds the outbound frame queue and partial-write offset.
type Writer struct {
	mu         sync.Mutex
	cond       *sync.Cond
	queue      []Message
	partialOff int
	submitting bool
}

// NewWriter creates an idle Writer.
func NewWriter() *Writer {
	w := &Writer{}
	w.cond = sync.NewCond(&w.mu)
	return w
}

// Enqueue appends msg to the queue. When it returns fastPath=true, the
// calling goroutine must perform the write submission itself
// (spec.md's "first enqueue into an empty queue issues the submission
// directly on the caller's thread"). Otherwise the caller must wake
// the I/O goroutine via a write-queue completion event.
func (w *Writer) Enqueue(msg Message) (fastPath bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.queue = append(w.queue, msg)
	if len(w.queue) == 1 && !w.submitting {
		w.submitting = true
		return true
	}
	return false
}

// BeginSubmission is called by the I/O goroutine after a write-queue
// wakeup, for the case where the enqueuing goroutine didn't take the
// fast path. Returns false if there's nothing to do.
func (w *Writer) BeginSubmission() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting || len(w.queue) == 0 {
		return false
	}
	w.submitting = true
	return true
}

// NextBatch returns a snapshot of up to maxFrames queued messages,
// without removing them, for building a vectored write submission.
func (w *Writer) NextBatch(maxFrames int) []Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := len(w.queue)
	if n > maxFrames {
		n = maxFrames
	}
	batch := make([]Message, n)
	copy(batch, w.queue[:n])
	return batch
}

// PartialOffset returns the byte offset already written into the
// queue's front message.
func (w *Writer) PartialOffset() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.partialOff
}

// CompleteSubmission consumes n written bytes from the queue front,
// releasing fully-written messages' buffers, and reports whether
// another submission is needed to drain the rest of the queue.
func (w *Writer) CompleteSubmission(n int) (more bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	remaining := n
	for remaining > 0 && len(w.queue) > 0 {
		frameLen := len(w.queue[0].Span()) - w.partialOff
		if remaining < frameLen {
			w.partialOff += remaining
			remaining = 0
			break
		}
		remaining -= frameLen
		w.queue[0].Release()
		w.queue = w.queue[1:]
		w.partialOff = 0
	}

	more = len(w.queue) > 0
	w.submitting = more
	if !more {
		w.cond.Broadcast()
	}
	return more
}

// Len reports the number of frames currently queued.
func (w *Writer) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.queue)
}

// WaitIdle blocks until the queue is empty and no submission is in
// flight (P7: Writer-idle).
func (w *Writer) WaitIdle() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for len(w.queue) > 0 || w.submitting {
		w.cond.Wait()
	}
}
