// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Generic object pooling used for scratch objects whose lifetime is
// shorter than a buffer's (encode builders, work slices).

package api

// ObjectPool provides generic pooling of Go objects allocated transiently.
type ObjectPool[T any] interface {
	// Get returns an available instance from the pool.
	Get() T

	// Put returns an instance for reuse.
	Put(obj T)
}
