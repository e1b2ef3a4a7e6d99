package concurrency_test

import (
	"testing"
	"time"

	"github.com/RLBot/go-interface/internal/concurrency"
)

func TestEventSignalWait(t *testing.T) {
	e := concurrency.NewEvent()
	if e.IsSet() {
		t.Fatal("new event must be unset")
	}

	done := make(chan struct{})
	go func() {
		e.Wait()
		close(done)
	}()

	e.Signal()
	e.Signal() // idempotent

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Signal")
	}

	if !e.IsSet() {
		t.Fatal("event must report set after Signal")
	}
}

func TestRingBufferFIFO(t *testing.T) {
	r := concurrency.NewRingBuffer[int](4)
	for i := 0; i < 4; i++ {
		if !r.Enqueue(i) {
			t.Fatalf("enqueue %d should succeed", i)
		}
	}
	if r.Enqueue(4) {
		t.Fatal("enqueue into full ring should fail")
	}
	for i := 0; i < 4; i++ {
		v, ok := r.Dequeue()
		if !ok || v != i {
			t.Fatalf("expected %d, got %d ok=%v", i, v, ok)
		}
	}
	if _, ok := r.Dequeue(); ok {
		t.Fatal("dequeue from empty ring should fail")
	}
}
