// File: benchmarks/performance_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Standalone benchmarks for the buffer pool and wire codec, kept
// outside the core per spec.md §1's non-goal ("a separate benchmarking
// harness ... reuses the same codec and framing but is not part of the
// core"), the same split the teacher keeps between its own
// benchmarks/performance_test.go and the components it measures.

package benchmarks

import (
	"testing"

	"github.com/RLBot/go-interface/pool"
	"github.com/RLBot/go-interface/protocol"
)

// BenchmarkBufferPoolAcquireRelease measures ShardedPool contention
// under concurrent acquire/release, the same access pattern the reader,
// writer, encoder, and router all place on the pool simultaneously.
func BenchmarkBufferPoolAcquireRelease(b *testing.B) {
	p := pool.NewShardedPool(pool.DefaultShardCount)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf := p.Acquire()
			buf.Release()
		}
	})
}

// BenchmarkEncodeMessage measures the cost of framing a small payload,
// the per-tick PlayerInput/SetLoadout hot path.
func BenchmarkEncodeMessage(b *testing.B) {
	p := pool.NewShardedPool(pool.DefaultShardCount)
	style := protocol.HeaderLegacy{}
	payload := []byte(`{"player_index":0,"controller_state":{}}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		msg, err := protocol.EncodeMessage(p, style, protocol.KindPlayerInput, payload)
		if err != nil {
			b.Fatal(err)
		}
		msg.Release()
	}
}

// BenchmarkReaderCommit measures the reassembly cost of feeding a
// stream of back-to-back frames through Reader.Commit in one shot,
// exercising the same zero-copy fan-out path P2 requires.
func BenchmarkReaderCommit(b *testing.B) {
	p := pool.NewShardedPool(pool.DefaultShardCount)
	style := protocol.HeaderLegacy{}
	payload := []byte(`{}`)

	frame := make([]byte, style.Size()+len(payload))
	style.Encode(frame, protocol.KindFieldInfo, payload)

	const framesPerRead = 32
	stream := make([]byte, 0, len(frame)*framesPerRead)
	for i := 0; i < framesPerRead; i++ {
		stream = append(stream, frame...)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reader := protocol.NewReader(p, style, nil)
		slice := reader.PrepareReadSlice()
		n := copy(slice, stream)
		msgs := reader.Commit(n)
		for _, m := range msgs {
			m.Release()
		}
		reader.Close()
	}
}
