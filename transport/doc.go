// File: transport/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package transport implements api.Transport over a single TCP
// connection: socket setup (TCP_NODELAY, oversized buffers), the read
// and write goroutines, and the internal/ioqueue.Queue that unifies
// their completion events with agent wakeups and shutdown.
package transport
