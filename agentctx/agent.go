// File: agentctx/agent.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Agent is the capability-set contract from spec.md §4.5/§6. Only
// Update and GetOutput are required; the rest are polled via type
// assertion, the idiomatic Go substitute for the original's
// std::optional-returning virtual methods.

package agentctx

import (
	"encoding/json"

	"github.com/RLBot/go-interface/protocol"
	"github.com/RLBot/go-interface/schema"
)

// Agent decides controller outputs for one or more owned participant
// indices. Update and GetOutput must not retain the protocol.Message
// arguments past the call — the underlying buffers are released once
// the service loop iteration completes.
type Agent interface {
	// Update is called once per tick with this context's field info and
	// match configuration (always valid) and the current GamePacket
	// (always valid) and BallPrediction (may be the zero Message if none
	// has arrived yet).
	Update(packet, prediction, fieldInfo, matchConfig protocol.Message)

	// GetOutput is called once per owned index per tick, after Update,
	// and returns the controller state to embed in that index's
	// PlayerInput frame.
	GetOutput(index int) json.RawMessage
}

// MatchCommReceiver is polled via type assertion; MatchComm is called
// on the context's own goroutine before Update, once per inbound
// message in FIFO arrival order.
type MatchCommReceiver interface {
	MatchComm(msg protocol.Message)
}

// MatchCommSender drains outbound inter-agent messages after Update.
type MatchCommSender interface {
	GetMatchComms() []schema.MatchComm
}

// RenderMessageSource drains outbound render primitives, keyed by
// render group id, after Update. An empty slice for a group means
// "remove this group".
type RenderMessageSource interface {
	GetRenderMessages() map[int][]schema.RenderMessage
}

// GameStateSetter optionally drains one DesiredGameState after Update.
type GameStateSetter interface {
	GetDesiredGameState() (schema.DesiredGameState, bool)
}

// LoadoutProvider is polled once per owned index during spawn.
type LoadoutProvider interface {
	GetLoadout(index int) (json.RawMessage, bool)
}
