// File: pool/sharded.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ShardedPool is a round-robin sharded, reference-counted pool of
// fixed-size frame buffers, grounded on the teacher's NUMA-sharded
// BufferPoolManager and on original_source/library/Pool.h's
// refcounted Ref/watermark discipline.

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/RLBot/go-interface/api"
)

// BufferSize is large enough to hold a GamePacket and a BallPrediction
// back to back, mirroring original_source/library/Pool.h's BUFFER_SIZE
// (2 * max uint16).
const BufferSize = 2 * (1<<16 - 1)

// DefaultShardCount matches the teacher's NUMA-pool fan-out and the
// original implementation's 4-pool round robin.
const DefaultShardCount = 4

type shard struct {
	mu        sync.Mutex
	free      []*buffer
	preferred []*buffer
	watermark int64
}

// ShardedPool implements api.BufferPool.
type ShardedPool struct {
	shards  []*shard
	idx     atomic.Uint32
	nextTag atomic.Int32
}

// NewShardedPool creates a pool with n shards (n <= 0 defaults to
// DefaultShardCount).
func NewShardedPool(n int) *ShardedPool {
	if n <= 0 {
		n = DefaultShardCount
	}
	p := &ShardedPool{shards: make([]*shard, n)}
	for i := range p.shards {
		p.shards[i] = &shard{}
	}
	return p
}

// PrimeRegistered preallocates n preferred (kernel-registerable)
// buffers, tags them sequentially, and distributes them round robin
// across shards so that Acquire prefers them — the Go analogue of the
// original implementation's PREALLOCATED_BUFFERS registration step.
// Returns the raw byte slices so a transport backend can register them
// with the kernel (e.g. io_uring_register_buffers).
func (p *ShardedPool) PrimeRegistered(n int) [][]byte {
	out := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		s := p.shards[int(p.idx.Add(1))%len(p.shards)]
		b := &buffer{
			pool:      p,
			shardIdx:  0,
			data:      make([]byte, BufferSize),
			tag:       int(p.nextTag.Add(1)) - 1,
			preferred: true,
		}
		for si, sh := range p.shards {
			if sh == s {
				b.shardIdx = si
				break
			}
		}
		s.mu.Lock()
		s.preferred = append(s.preferred, b)
		s.watermark++
		s.mu.Unlock()
		out = append(out, b.data)
	}
	return out
}

// Acquire implements api.BufferPool. It returns a preferred buffer
// first when the selected shard has one, otherwise a normal free-list
// buffer, otherwise allocates a fresh one.
func (p *ShardedPool) Acquire() api.Buffer {
	i := int(p.idx.Add(1)) % len(p.shards)
	s := p.shards[i]

	s.mu.Lock()
	if n := len(s.preferred); n > 0 {
		b := s.preferred[n-1]
		s.preferred = s.preferred[:n-1]
		s.mu.Unlock()
		b.refcount.Store(1)
		return b
	}
	if n := len(s.free); n > 0 {
		b := s.free[n-1]
		s.free = s.free[:n-1]
		s.mu.Unlock()
		b.refcount.Store(1)
		return b
	}
	s.watermark++
	s.mu.Unlock()

	b := &buffer{pool: p, shardIdx: i, data: make([]byte, BufferSize), tag: -1}
	b.refcount.Store(1)
	return b
}

// Stats implements api.BufferPool.
func (p *ShardedPool) Stats() api.PoolStats {
	stats := api.PoolStats{
		Shards:     len(p.shards),
		Watermark:  make([]int64, len(p.shards)),
		FreeLength: make([]int64, len(p.shards)),
	}
	for i, s := range p.shards {
		s.mu.Lock()
		stats.Watermark[i] = s.watermark
		stats.FreeLength[i] = int64(len(s.free) + len(s.preferred))
		s.mu.Unlock()
	}
	return stats
}

func (p *ShardedPool) release(b *buffer) {
	s := p.shards[b.shardIdx]
	s.mu.Lock()
	if b.preferred {
		s.preferred = append(s.preferred, b)
	} else {
		s.free = append(s.free, b)
	}
	s.mu.Unlock()
}

// buffer is the concrete api.Buffer backing a frame's storage.
type buffer struct {
	pool      *ShardedPool
	shardIdx  int
	data      []byte
	refcount  atomic.Int32
	tag       int
	preferred bool
}

var _ api.Buffer = (*buffer)(nil)

func (b *buffer) Bytes() []byte { return b.data }

func (b *buffer) Clone() api.Buffer {
	b.refcount.Add(1)
	return b
}

func (b *buffer) Release() {
	if b.refcount.Add(-1) == 0 {
		b.pool.release(b)
	}
}

func (b *buffer) Tag() int { return b.tag }

func (b *buffer) Preferred() bool { return b.preferred }
