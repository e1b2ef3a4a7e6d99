// File: agentctx/outbox.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package agentctx

import (
	"github.com/RLBot/go-interface/api"
	"github.com/RLBot/go-interface/protocol"
	"github.com/RLBot/go-interface/schema"
)

// Sink is the minimal surface a Context needs to hand off a framed
// outbound message; transport.Transport satisfies it directly.
type Sink interface {
	EnqueueWrite(frame []byte) error
}

// Outbox bundles what's needed to turn a decoded value into a framed,
// pooled write: encode to JSON (schema's job), frame it (protocol's
// job), hand the bytes to the sink, release the scratch buffer.
type Outbox struct {
	Pool  api.BufferPool
	Style protocol.HeaderStyle
	Sink  Sink
}

// Send JSON-encodes v via schema.Encode, frames it under kind, and
// submits it to the sink.
func (o Outbox) Send(kind protocol.Kind, v any) error {
	payload, err := schema.Encode(v)
	if err != nil {
		return err
	}
	msg, err := protocol.EncodeMessage(o.Pool, o.Style, kind, payload)
	if err != nil {
		return err
	}
	defer msg.Release()
	return o.Sink.EnqueueWrite(msg.Span())
}
