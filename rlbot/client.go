// File: rlbot/client.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Client wires pool.ShardedPool / schema.JSONValidator / transport.Transport
// / agentmgr.Manager / agentmgr.Router together the way
// original_source/library/BotManagerImpl.cpp's run() does, and the way
// facade/hioload.go's New()/Start()/Stop() aggregate the lower layers
// of the teacher repo.

package rlbot

import (
	"fmt"
	"sync"

	"github.com/RLBot/go-interface/agentctx"
	"github.com/RLBot/go-interface/agentmgr"
	"github.com/RLBot/go-interface/api"
	"github.com/RLBot/go-interface/pool"
	"github.com/RLBot/go-interface/protocol"
	"github.com/RLBot/go-interface/schema"
	"github.com/RLBot/go-interface/transport"
)

// Client is the connected-session handle returned by Connect. It owns
// the buffer pool, the transport, and the agent manager/router pair
// for one match server connection.
type Client struct {
	pool      api.BufferPool
	style     protocol.HeaderStyle
	validator schema.Validator

	transport *transport.Transport
	manager   *agentmgr.Manager
	router    *agentmgr.Router

	disconnectOnce sync.Once
	disconnected   chan struct{}
}

// Connect dials the match server, sends the initial ConnectionSettings
// frame, and returns a Client ready to receive the control-plane
// triptych. spawn is invoked once per spawned Context, exactly as
// agentmgr.AgentFactory documents.
func Connect(opts Options, spawn agentmgr.AgentFactory) (*Client, error) {
	opts = opts.withDefaults()

	conn, err := transport.Dial(opts.ServerIP, opts.ServerPort)
	if err != nil {
		return nil, err
	}

	p := pool.NewShardedPool(opts.ShardCount)

	c := &Client{
		pool:         p,
		style:        opts.HeaderStyle,
		validator:    opts.Validator,
		disconnected: make(chan struct{}),
	}

	router := &agentmgr.Router{}
	tr := transport.New(conn, p, opts.HeaderStyle, router.Dispatch, nil)
	router.OnTeardown = func() {
		// Dispatch runs on the transport's own read goroutine; Disconnect
		// blocks on that same goroutine exiting via Shutdown's wg.Wait(),
		// so it must run on a goroutine of its own here.
		go c.Disconnect()
	}

	manager := agentmgr.NewManager(p, opts.HeaderStyle, opts.Validator, tr, spawn, opts.BatchHivemind, opts.AgentID)
	router.Manager = manager

	c.transport = tr
	c.manager = manager
	c.router = router

	tr.Run()

	out := agentctx.Outbox{Pool: p, Style: opts.HeaderStyle, Sink: tr}
	if err := out.Send(protocol.KindConnectionSettings, schema.ConnectionSettings{
		AgentID:              opts.AgentID,
		WantsBallPredictions: opts.WantsBallPredictions,
		WantsComms:           opts.WantsComms,
		CloseBetweenMatches:  opts.CloseBetweenMatches,
	}); err != nil {
		tr.Shutdown()
		return nil, fmt.Errorf("rlbot: send ConnectionSettings: %w", err)
	}

	return c, nil
}

// Done reports when the connection has torn down, whether by a server
// Disconnect/None frame or by a call to Disconnect.
func (c *Client) Done() <-chan struct{} { return c.disconnected }

// ContextCount reports how many agent contexts are currently spawned.
func (c *Client) ContextCount() int { return c.manager.ContextCount() }

// WaitForWriterIdle blocks until every previously enqueued frame has
// been written and no submission is in flight.
func (c *Client) WaitForWriterIdle() { c.transport.WaitForWriterIdle() }

// Disconnect tears down the transport and every agent context, then
// closes Done. Safe to call more than once; only the first call does
// any work.
func (c *Client) Disconnect() error {
	var err error
	c.disconnectOnce.Do(func() {
		err = c.transport.Shutdown()
		c.manager.Close()
		close(c.disconnected)
	})
	return err
}
