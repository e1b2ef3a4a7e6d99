// File: rlbot/launcher.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// LaunchMatch is the match-launcher use case from spec.md §4.7: "a
// temporary manager using a null factory supports ... connect, send a
// MatchConfiguration, await writer idle, disconnect." It never spawns
// an agentmgr.Manager at all — there is no control-plane triptych to
// cache and nothing to route inbound, so every received frame is
// simply released.

package rlbot

import (
	"fmt"

	"github.com/RLBot/go-interface/agentctx"
	"github.com/RLBot/go-interface/pool"
	"github.com/RLBot/go-interface/protocol"
	"github.com/RLBot/go-interface/schema"
	"github.com/RLBot/go-interface/transport"
)

// LaunchMatch dials the match server, sends config as a
// MatchConfiguration frame requesting the server start a match, waits
// for the write to flush, and disconnects.
func LaunchMatch(opts Options, config schema.MatchConfiguration) error {
	opts = opts.withDefaults()

	conn, err := transport.Dial(opts.ServerIP, opts.ServerPort)
	if err != nil {
		return err
	}

	p := pool.NewShardedPool(opts.ShardCount)
	tr := transport.New(conn, p, opts.HeaderStyle, func(msg protocol.Message) { msg.Release() }, nil)
	tr.Run()

	out := agentctx.Outbox{Pool: p, Style: opts.HeaderStyle, Sink: tr}
	if err := out.Send(protocol.KindMatchConfiguration, config); err != nil {
		tr.Shutdown()
		return fmt.Errorf("rlbot: send MatchConfiguration: %w", err)
	}

	tr.WaitForWriterIdle()
	return tr.Shutdown()
}
