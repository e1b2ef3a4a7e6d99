//go:build !linux && !windows

// File: internal/ioqueue/backend_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Portable fallback: no native completion facility is probed for.
// Queue's goroutine+channel implementation in queue.go is used as-is,
// per spec.md §9's design note on approximating completion queues with
// a single consumer goroutine and channels where no kqueue/epoll/IOCP
// wrapper is wired in.

package ioqueue

// ProbeNativeCompletionQueue always reports false on platforms without
// a probed native completion facility.
func ProbeNativeCompletionQueue() bool { return false }
