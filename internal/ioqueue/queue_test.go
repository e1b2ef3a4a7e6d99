package ioqueue_test

import (
	"testing"
	"time"

	"github.com/RLBot/go-interface/internal/ioqueue"
)

func TestQueuePostNextOrdering(t *testing.T) {
	q := ioqueue.New(16)

	go func() {
		q.Post(ioqueue.Completion{Kind: ioqueue.EventRead, N: 10})
		q.Post(ioqueue.Completion{Kind: ioqueue.EventWriteQueue})
	}()

	c1, ok := q.Next()
	if !ok || c1.Kind != ioqueue.EventRead || c1.N != 10 {
		t.Fatalf("unexpected first completion: %+v ok=%v", c1, ok)
	}
	c2, ok := q.Next()
	if !ok || c2.Kind != ioqueue.EventWriteQueue {
		t.Fatalf("unexpected second completion: %+v ok=%v", c2, ok)
	}
}

func TestQueueCloseDrainsThenStops(t *testing.T) {
	q := ioqueue.New(16)
	q.Post(ioqueue.Completion{Kind: ioqueue.EventAgentWakeup})
	q.Close()

	c, ok := q.Next()
	if !ok || c.Kind != ioqueue.EventAgentWakeup {
		t.Fatalf("expected drained completion before close report, got %+v ok=%v", c, ok)
	}

	done := make(chan struct{})
	go func() {
		_, ok := q.Next()
		if ok {
			t.Error("expected ok=false after queue drained and closed")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Next did not return after Close")
	}
}

func TestProbeNativeCompletionQueueDoesNotPanic(t *testing.T) {
	_ = ioqueue.ProbeNativeCompletionQueue()
}
