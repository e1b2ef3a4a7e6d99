// File: transport/transport.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Transport implements api.Transport over a single TCP connection,
// grounded on original_source/library/BotManagerImpl.cpp's run() /
// requestRead() / handleRead() / enqueueMessage() / requestWrite() /
// handleWrite() cycle: one goroutine blocks on socket reads and feeds
// frames straight to the dispatcher, a second drains
// internal/ioqueue.Queue for write submissions, write-queue wakeups,
// agent wakeups, and the quit signal.

package transport

import (
	"errors"
	"fmt"
	"net"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/RLBot/go-interface/api"
	"github.com/RLBot/go-interface/internal/ioqueue"
	"github.com/RLBot/go-interface/internal/rlog"
	"github.com/RLBot/go-interface/protocol"
)

// queueCapacity sizes the completion queue generously relative to
// PREALLOCATED_BUFFERS in the original.
const queueCapacity = 64

// Transport is a single TCP connection to the match server.
type Transport struct {
	conn  *net.TCPConn
	pool  api.BufferPool
	style protocol.HeaderStyle

	reader *protocol.Reader
	writer *protocol.Writer
	queue  *ioqueue.Queue

	nativeCompletion bool

	onMessage func(protocol.Message)
	onWakeup  func()

	state atomic.Int32
	wg    sync.WaitGroup

	closeOnce sync.Once
}

var _ api.Transport = (*Transport)(nil)

// New wraps an already-dialed connection (see Dial). onMessage is
// invoked synchronously on the read goroutine for every decoded frame;
// it must not block. onWakeup, if non-nil, is invoked when an agent
// posts a wakeup completion (used to let the I/O goroutine poke idle
// agent contexts without a dedicated select arm per context).
func New(conn *net.TCPConn, pool api.BufferPool, style protocol.HeaderStyle, onMessage func(protocol.Message), onWakeup func()) *Transport {
	t := &Transport{
		conn:             conn,
		pool:             pool,
		style:            style,
		reader:           protocol.NewReader(pool, style, nil),
		writer:           protocol.NewWriter(),
		queue:            ioqueue.New(queueCapacity),
		nativeCompletion: ioqueue.ProbeNativeCompletionQueue(),
		onMessage:        onMessage,
		onWakeup:         onWakeup,
	}
	t.state.Store(int32(api.StateConnected))
	return t
}

// Run starts the read and I/O-completion goroutines and transitions to
// StateRunning. Call once.
func (t *Transport) Run() {
	t.state.Store(int32(api.StateRunning))
	t.wg.Add(2)
	go t.readLoop()
	go t.ioLoop()
}

func (t *Transport) State() api.TransportState {
	return api.TransportState(t.state.Load())
}

func (t *Transport) Features() api.TransportFeatures {
	return api.TransportFeatures{
		ZeroCopy:         true,
		RegisteredBuffer: false,
		NativeCompletion: t.nativeCompletion,
		OS:               runtime.GOOS,
	}
}

// EnqueueWrite submits a fully-framed message (header and payload
// already encoded via protocol.EncodeMessage's wire format) for
// transmission. Outside StateRunning the frame is dropped with a
// logged warning, matching the original's behavior of refusing new
// writes once teardown has begun.
func (t *Transport) EnqueueWrite(frame []byte) error {
	if t.State() != api.StateRunning {
		rlog.Warning("transport: dropping write of %d bytes outside StateRunning", len(frame))
		return nil
	}

	buf := t.pool.Acquire()
	if len(frame) > len(buf.Bytes()) {
		buf.Release()
		return fmt.Errorf("%w: frame of %d bytes exceeds buffer capacity", api.ErrFrameOverflow, len(frame))
	}
	copy(buf.Bytes(), frame)
	msg := protocol.NewMessage(buf, 0, t.style)

	if fast := t.writer.Enqueue(msg); fast {
		t.submit()
		return nil
	}
	t.queue.Post(ioqueue.Completion{Kind: ioqueue.EventWriteQueue})
	return nil
}

// WaitForWriterIdle blocks until the write queue is empty and no
// submission is in flight.
func (t *Transport) WaitForWriterIdle() {
	t.writer.WaitIdle()
}

// PostWakeup enqueues an agent-wakeup completion event, letting
// agentmgr notify the I/O goroutine without its own channel.
func (t *Transport) PostWakeup() {
	t.queue.Post(ioqueue.Completion{Kind: ioqueue.EventAgentWakeup})
}

// Shutdown transitions Running/Connected -> Draining -> Closed,
// draining any in-flight write before closing the socket.
func (t *Transport) Shutdown() error {
	var err error
	t.closeOnce.Do(func() {
		t.state.Store(int32(api.StateDraining))
		t.writer.WaitIdle()
		t.queue.Post(ioqueue.Completion{Kind: ioqueue.EventQuit})
		err = t.conn.Close()
		t.queue.Close()
		t.wg.Wait()
		t.reader.Close()
		t.state.Store(int32(api.StateClosed))
	})
	return err
}

func (t *Transport) readLoop() {
	defer t.wg.Done()
	for {
		slice := t.reader.PrepareReadSlice()
		n, err := t.conn.Read(slice)
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				rlog.Error("transport: read error: %v", err)
			}
			t.queue.Post(ioqueue.Completion{Kind: ioqueue.EventQuit, Err: err})
			return
		}
		if n == 0 {
			t.queue.Post(ioqueue.Completion{Kind: ioqueue.EventQuit, Err: api.ErrQuitRequested})
			return
		}

		msgs := t.reader.Commit(n)
		for _, m := range msgs {
			if t.onMessage != nil {
				t.onMessage(m)
			}
		}
		t.queue.Post(ioqueue.Completion{Kind: ioqueue.EventRead, N: n})
	}
}

func (t *Transport) ioLoop() {
	defer t.wg.Done()
	for {
		c, ok := t.queue.Next()
		if !ok {
			return
		}
		switch c.Kind {
		case ioqueue.EventWriteQueue:
			if t.writer.BeginSubmission() {
				t.submit()
			}
		case ioqueue.EventAgentWakeup:
			if t.onWakeup != nil {
				t.onWakeup()
			}
		case ioqueue.EventQuit:
			t.state.Store(int32(api.StateDraining))
			return
		case ioqueue.EventRead:
			// observational only; the read goroutine already dispatched.
		}
	}
}

// submit drains as much of the write queue as a single submission
// will carry, looping on partial writes until the queue reports no
// more work is pending.
func (t *Transport) submit() {
	for {
		batch := t.writer.NextBatch(protocol.MaxBatchFrames)
		if len(batch) == 0 {
			return
		}
		off := t.writer.PartialOffset()

		bufs := make(net.Buffers, len(batch))
		for i, m := range batch {
			span := m.Span()
			if i == 0 {
				span = span[off:]
			}
			bufs[i] = span
		}

		n, err := bufs.WriteTo(t.conn)
		if err != nil {
			rlog.Error("transport: write error: %v", err)
			t.writer.CompleteSubmission(int(n))
			return
		}

		if more := t.writer.CompleteSubmission(int(n)); !more {
			return
		}
	}
}
