package transport_test

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/RLBot/go-interface/pool"
	"github.com/RLBot/go-interface/protocol"
	"github.com/RLBot/go-interface/transport"
)

func loopbackPair(t *testing.T) (client, server *net.TCPConn) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		c, err := ln.Accept()
		if err != nil {
			return
		}
		accepted <- c
	}()

	c, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	s := <-accepted

	return c.(*net.TCPConn), s.(*net.TCPConn)
}

func TestTransportRoundTripsFramedMessage(t *testing.T) {
	client, server := loopbackPair(t)
	style := protocol.HeaderLegacy{}
	p := pool.NewShardedPool(4)

	var mu sync.Mutex
	var got []protocol.Message
	done := make(chan struct{}, 1)

	serverTransport := transport.New(server, p, style, func(m protocol.Message) {
		mu.Lock()
		got = append(got, m.Clone())
		mu.Unlock()
		done <- struct{}{}
	}, nil)
	serverTransport.Run()
	defer serverTransport.Shutdown()

	clientTransport := transport.New(client, p, style, nil, nil)
	clientTransport.Run()
	defer clientTransport.Shutdown()

	buf := make([]byte, 64)
	n := style.Encode(buf, protocol.KindPlayerInput, []byte("hello"))

	if err := clientTransport.EnqueueWrite(buf[:n]); err != nil {
		t.Fatal(err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for server to receive frame")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 {
		t.Fatalf("expected 1 message, got %d", len(got))
	}
	if got[0].Kind() != protocol.KindPlayerInput || string(got[0].PayloadBytes()) != "hello" {
		t.Fatalf("unexpected message: kind=%v payload=%q", got[0].Kind(), got[0].PayloadBytes())
	}
	got[0].Release()
}

func TestTransportWaitForWriterIdle(t *testing.T) {
	client, server := loopbackPair(t)
	style := protocol.HeaderLegacy{}
	p := pool.NewShardedPool(4)

	serverTransport := transport.New(server, p, style, func(m protocol.Message) { m.Release() }, nil)
	serverTransport.Run()
	defer serverTransport.Shutdown()

	clientTransport := transport.New(client, p, style, nil, nil)
	clientTransport.Run()
	defer clientTransport.Shutdown()

	buf := make([]byte, 64)
	n := style.Encode(buf, protocol.KindGamePacket, []byte("x"))
	if err := clientTransport.EnqueueWrite(buf[:n]); err != nil {
		t.Fatal(err)
	}

	clientTransport.WaitForWriterIdle() // must return once the submission drains
}
