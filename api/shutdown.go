// File: api/shutdown.go
// Package api defines a unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown is implemented by components that own a goroutine or
// kernel resource and need an orderly, idempotent teardown.
type GracefulShutdown interface {
	// Shutdown stops the component and releases its resources. Safe to
	// call more than once; only the first call does work.
	Shutdown() error
}
