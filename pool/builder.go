// File: pool/builder.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// BuilderPool is the Go analogue of original_source/library/Pool.h's
// Pool<flatbuffers::FlatBufferBuilder>: a pool of reusable encode
// scratch buffers, reset on acquire so callers never see stale bytes.
// Adapted from the teacher's pool/objpool.go generic SyncPool wrapper.

package pool

import (
	"sync"

	"github.com/RLBot/go-interface/api"
)

// Builder is a reusable, growable scratch buffer for outbound frame
// encoding.
type Builder struct {
	buf []byte
}

// Reset truncates the builder to zero length without releasing its
// backing array.
func (b *Builder) Reset() { b.buf = b.buf[:0] }

// Bytes returns the builder's current contents.
func (b *Builder) Bytes() []byte { return b.buf }

// Append appends p to the builder's contents.
func (b *Builder) Append(p []byte) { b.buf = append(b.buf, p...) }

// BuilderPool hands out reset Builders and takes them back for reuse.
type BuilderPool struct {
	pool sync.Pool
}

// NewBuilderPool creates a BuilderPool whose Builders start with cap
// initial bytes of backing storage.
func NewBuilderPool(cap int) *BuilderPool {
	bp := &BuilderPool{}
	bp.pool.New = func() any {
		return &Builder{buf: make([]byte, 0, cap)}
	}
	return bp
}

// Get implements api.ObjectPool[*Builder]; the returned Builder is
// always reset.
func (bp *BuilderPool) Get() *Builder {
	b := bp.pool.Get().(*Builder)
	b.Reset()
	return b
}

// Put returns a Builder for reuse.
func (bp *BuilderPool) Put(b *Builder) {
	bp.pool.Put(b)
}

var _ api.ObjectPool[*Builder] = (*BuilderPool)(nil)
