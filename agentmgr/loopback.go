// File: agentmgr/loopback.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// loopbackSink wraps the real transport sink so that a MatchComm an
// agent sends is also delivered to its sibling contexts directly,
// without a round trip through the match server. spec.md §9's
// conservative reading only rebroadcasts when this manager owns more
// than one context.

package agentmgr

import (
	"github.com/RLBot/go-interface/agentctx"
	"github.com/RLBot/go-interface/protocol"
)

type loopbackSink struct {
	mgr        *Manager
	owner      *agentctx.Context
	underlying agentctx.Sink
}

var _ agentctx.Sink = (*loopbackSink)(nil)

func (s *loopbackSink) EnqueueWrite(frame []byte) error {
	if err := s.underlying.EnqueueWrite(frame); err != nil {
		return err
	}
	if s.mgr.style.Kind(frame, 0) == protocol.KindMatchComm {
		s.mgr.loopbackMatchComm(s.owner, frame)
	}
	return nil
}

// loopbackMatchComm copies frame into a fresh pooled buffer per
// sibling context and hands it to AddMatchComm, mirroring the
// copy-into-pool-buffer pattern transport.Transport.EnqueueWrite uses
// for its own outbound frames.
func (m *Manager) loopbackMatchComm(owner *agentctx.Context, frame []byte) {
	contexts := m.contextsSnapshot()
	if len(contexts) <= 1 {
		return
	}

	for _, ctx := range contexts {
		if ctx == owner {
			continue
		}
		buf := m.pool.Acquire()
		if len(frame) > len(buf.Bytes()) {
			buf.Release()
			continue
		}
		copy(buf.Bytes(), frame)
		ctx.AddMatchComm(protocol.NewMessage(buf, 0, m.style), true)
	}
}
