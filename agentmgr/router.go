// File: agentmgr/router.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Router is the Go rendering of BotManagerImpl::handleMessage's
// dispatch table: None tears down, the control-plane triptych caches
// and re-attempts spawn, and (once at least one context exists)
// BallPrediction broadcasts without waking anyone, GamePacket and
// MatchComm fan out to every non-primary context with a wakeup and
// run the primary context inline on the dispatching goroutine.

package agentmgr

import (
	"github.com/RLBot/go-interface/protocol"
)

// Router dispatches inbound messages to a Manager. OnTeardown, if
// non-nil, is invoked after a None message clears every context —
// the signal for the owning facade to shut the transport down.
type Router struct {
	Manager    *Manager
	OnTeardown func()
}

// Dispatch takes ownership of msg: every branch releases it (directly
// or by handing it to a Context) before returning.
func (r *Router) Dispatch(msg protocol.Message) {
	switch msg.Kind() {
	case protocol.KindNone:
		msg.Release()
		r.Manager.clearContexts()
		if r.OnTeardown != nil {
			r.OnTeardown()
		}

	case protocol.KindControllableTeamInfo:
		r.Manager.CacheControllableTeamInfo(msg)
		r.Manager.TrySpawn()

	case protocol.KindFieldInfo:
		r.Manager.CacheFieldInfo(msg)
		r.Manager.TrySpawn()

	case protocol.KindMatchConfiguration:
		r.Manager.CacheMatchConfiguration(msg)
		r.Manager.TrySpawn()

	case protocol.KindBallPrediction:
		r.dispatchBallPrediction(msg)

	case protocol.KindGamePacket:
		r.dispatchGamePacket(msg)

	case protocol.KindMatchComm:
		r.dispatchMatchComm(msg)

	default:
		msg.Release()
	}
}

func (r *Router) dispatchBallPrediction(msg protocol.Message) {
	contexts := r.Manager.contextsSnapshot()
	if len(contexts) == 0 {
		msg.Release()
		return
	}
	for i, ctx := range contexts {
		if i == len(contexts)-1 {
			ctx.SetBallPrediction(msg)
		} else {
			ctx.SetBallPrediction(msg.Clone())
		}
	}
}

func (r *Router) dispatchGamePacket(msg protocol.Message) {
	contexts := r.Manager.contextsSnapshot()
	if len(contexts) == 0 {
		msg.Release()
		return
	}

	for _, ctx := range contexts[1:] {
		ctx.SetGamePacket(msg.Clone(), true)
	}

	primary := contexts[0]
	primary.SetGamePacket(msg, false)
	primary.LoopOnce()
}

func (r *Router) dispatchMatchComm(msg protocol.Message) {
	contexts := r.Manager.contextsSnapshot()
	if len(contexts) == 0 {
		msg.Release()
		return
	}

	for _, ctx := range contexts[1:] {
		ctx.AddMatchComm(msg.Clone(), true)
	}

	primary := contexts[0]
	primary.AddMatchComm(msg, false)
	primary.LoopOnce()
}
