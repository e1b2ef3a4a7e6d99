// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cross-platform concurrency primitives backing the RLBot transport's
// multi-producer/single-consumer completion queue and one-shot
// readiness signals: a lock-free MPMC ring buffer and a sync.Once-based
// waitable event, the idiomatic Go substitutes for a native completion
// port and a promise/future pair respectively.
package concurrency
