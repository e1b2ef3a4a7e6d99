// File: protocol/reader.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reader implements the read path of spec.md §4.3: reassembly across
// buffer boundaries, partial-frame carry-over, and buffer rotation so
// consecutive frames stay contiguous for zero-copy fan-out. Grounded
// on original_source/library/BotManagerImpl.cpp's handleRead.

package protocol

import "github.com/RLBot/go-interface/api"

// PartialReadWarner is notified when a read filled its buffer to
// capacity, a hint that the kernel likely had more data queued.
type PartialReadWarner interface {
	PartialRead(n int)
}

// Reader turns a stream of raw reads into a sequence of Messages.
type Reader struct {
	pool   api.BufferPool
	style  HeaderStyle
	cur    api.Buffer
	start  int
	end    int
	warner PartialReadWarner
}

// NewReader creates a Reader backed by pool, decoding frames with style.
func NewReader(pool api.BufferPool, style HeaderStyle, warner PartialReadWarner) *Reader {
	return &Reader{
		pool:   pool,
		style:  style,
		cur:    pool.Acquire(),
		warner: warner,
	}
}

// PrepareReadSlice returns the region of the current buffer a raw read
// should land in.
func (r *Reader) PrepareReadSlice() []byte {
	return r.cur.Bytes()[r.end:]
}

// Commit advances the reader's end offset by n bytes just read into
// the slice returned by PrepareReadSlice, and extracts every
// fully-buffered frame. n must be > 0; a 0-byte read (peer closed) is
// the transport's concern, not the reader's.
func (r *Reader) Commit(n int) []Message {
	buf := r.cur.Bytes()
	if n == len(buf)-r.end && r.warner != nil {
		r.warner.PartialRead(n)
	}
	r.end += n

	var msgs []Message
	for r.end-r.start >= r.style.Size() {
		available := r.end - r.start
		dataLen := r.style.DataLen(buf, r.start)
		frameLen := r.style.Size() + dataLen
		if frameLen > available {
			if r.end == len(buf) {
				r.carryPartialTail()
				buf = r.cur.Bytes()
			}
			break
		}

		msgs = append(msgs, NewMessage(r.cur.Clone(), r.start, r.style))
		r.start += frameLen
	}

	if r.start == r.end {
		r.rotate()
	}

	return msgs
}

// carryPartialTail copies the unconsumed partial frame to a fresh
// buffer's front so the next read can complete it, per spec.md §4.3
// step 2. Requires the buffer capacity to exceed the largest frame.
func (r *Reader) carryPartialTail() {
	tail := r.cur.Bytes()[r.start:r.end]
	fresh := r.pool.Acquire()
	copy(fresh.Bytes(), tail)

	r.cur.Release()
	r.cur = fresh
	r.end = len(tail)
	r.start = 0
}

// rotate swaps in a fresh, fully empty buffer once every byte of the
// current one has been consumed, per spec.md §4.3 step 3.
func (r *Reader) rotate() {
	r.cur.Release()
	r.cur = r.pool.Acquire()
	r.start = 0
	r.end = 0
}

// Close releases the reader's current buffer. Call once after the
// transport has torn down so the buffer pool reaches quiescence.
func (r *Reader) Close() {
	if r.cur != nil {
		r.cur.Release()
		r.cur = nil
	}
}
