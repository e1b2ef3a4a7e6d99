// File: api/transport.go
// Author: momentics <momentics@gmail.com>
//
// Transport abstracts a single TCP connection to the match server,
// unifying read, write, write-queue wakeup, agent wakeup, and quit
// events behind one completion-style surface.

package api

// TransportState is the Transport's lifecycle state machine.
// Only Running accepts new enqueues; enqueues during Draining are
// dropped silently.
type TransportState int32

const (
	StateIdle TransportState = iota
	StateConnected
	StateRunning
	StateDraining
	StateClosed
)

func (s TransportState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnected:
		return "connected"
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// TransportFeatures reports which optimizations the active backend
// actually provides; callers degrade gracefully when a feature is absent.
type TransportFeatures struct {
	ZeroCopy         bool
	RegisteredBuffer bool
	NativeCompletion bool
	OS               string
}

// Transport is the socket-facing half of the I/O goroutine: one
// connection, one completion queue, one consumer.
type Transport interface {
	GracefulShutdown

	// State returns the current lifecycle state.
	State() TransportState

	// Features reports the active backend's capabilities.
	Features() TransportFeatures

	// EnqueueWrite submits a fully-framed message for transmission.
	// Dropped silently (with a logged warning) outside StateRunning.
	EnqueueWrite(frame []byte) error

	// WaitForWriterIdle blocks until the write queue is empty and no
	// submission is in flight.
	WaitForWriterIdle()
}
