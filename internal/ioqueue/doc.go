// File: internal/ioqueue/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package ioqueue provides the completion queue that unifies read,
// write, write-queue-wake, agent-wakeup and quit events behind one
// multi-producer single-consumer surface, so exactly one I/O goroutine
// ever drains socket and control events for a transport.Transport.
package ioqueue
