package agentctx_test

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/RLBot/go-interface/agentctx"
	"github.com/RLBot/go-interface/pool"
	"github.com/RLBot/go-interface/protocol"
	"github.com/RLBot/go-interface/schema"
)

type echoAgent struct {
	mu      sync.Mutex
	updates int
	output  json.RawMessage
	comms   []protocol.Message
}

func (a *echoAgent) Update(packet, prediction, fieldInfo, matchConfig protocol.Message) {
	a.mu.Lock()
	a.updates++
	a.mu.Unlock()
}

func (a *echoAgent) GetOutput(index int) json.RawMessage {
	return a.output
}

func (a *echoAgent) MatchComm(msg protocol.Message) {
	a.mu.Lock()
	a.comms = append(a.comms, msg.Clone())
	a.mu.Unlock()
}

func newTestContext(t *testing.T, indices []int, team int, agent agentctx.Agent) (*agentctx.Context, *pool.ShardedPool) {
	t.Helper()
	style := protocol.HeaderLegacy{}
	p := pool.NewShardedPool(4)
	v := schema.NewJSONValidator()

	fieldInfo, err := protocol.EncodeMessage(p, style, protocol.KindFieldInfo, []byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	matchConfigPayload := []byte(`{"player_configurations":[],"enable_rendering":true,"enable_state_setting":true}`)
	matchConfigMsg, err := protocol.EncodeMessage(p, style, protocol.KindMatchConfiguration, matchConfigPayload)
	if err != nil {
		t.Fatal(err)
	}
	var mc schema.MatchConfiguration
	if err := schema.Decode(matchConfigMsg, v, &mc); err != nil {
		t.Fatal(err)
	}

	out := agentctx.Outbox{Pool: p, Style: style, Sink: &discardSink{}}
	ctx := agentctx.New(indices, team, agent, fieldInfo, matchConfigMsg, mc, v, out)
	return ctx, p
}

type discardSink struct{}

func (discardSink) EnqueueWrite(frame []byte) error { return nil }

func encodeGamePacket(t *testing.T, p *pool.ShardedPool, style protocol.HeaderStyle, numPlayers int) protocol.Message {
	t.Helper()
	players := make([]schema.PlayerInfo, numPlayers)
	for i := range players {
		players[i] = schema.PlayerInfo{Index: i}
	}
	payload, err := schema.Encode(schema.GamePacket{Players: players})
	if err != nil {
		t.Fatal(err)
	}
	m, err := protocol.EncodeMessage(p, style, protocol.KindGamePacket, payload)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestLoopOnceCoalescesGamePackets(t *testing.T) {
	agent := &echoAgent{}
	ctx, p := newTestContext(t, []int{0}, 0, agent)
	style := protocol.HeaderLegacy{}

	m1 := encodeGamePacket(t, p, style, 1)
	m2 := encodeGamePacket(t, p, style, 1)
	m3 := encodeGamePacket(t, p, style, 1)

	ctx.SetGamePacket(m1, false)
	ctx.SetGamePacket(m2, false)
	ctx.SetGamePacket(m3, false)

	if !ctx.LoopOnce() {
		t.Fatal("expected work pending")
	}

	agent.mu.Lock()
	updates := agent.updates
	agent.mu.Unlock()
	if updates != 1 {
		t.Fatalf("expected exactly 1 update call, got %d", updates)
	}

	if ctx.LoopOnce() {
		t.Fatal("expected no more pending work after a single LoopOnce")
	}
}

func TestAddMatchCommSelfFilter(t *testing.T) {
	agent := &echoAgent{}
	ctx, p := newTestContext(t, []int{0}, 0, agent)
	style := protocol.HeaderLegacy{}

	payload, _ := schema.Encode(schema.MatchComm{Index: 0, Team: 0})
	msg, err := protocol.EncodeMessage(p, style, protocol.KindMatchComm, payload)
	if err != nil {
		t.Fatal(err)
	}

	if accepted := ctx.AddMatchComm(msg, false); accepted {
		t.Fatal("expected self-sent MatchComm to be filtered out")
	}
}

func TestAddMatchCommTeamOnlyFilter(t *testing.T) {
	agent := &echoAgent{}
	ctx, p := newTestContext(t, []int{1}, 0, agent)
	style := protocol.HeaderLegacy{}

	payload, _ := schema.Encode(schema.MatchComm{Index: 5, Team: 1, TeamOnly: true})
	msg, err := protocol.EncodeMessage(p, style, protocol.KindMatchComm, payload)
	if err != nil {
		t.Fatal(err)
	}

	if accepted := ctx.AddMatchComm(msg, false); accepted {
		t.Fatal("expected team-only MatchComm from a different team to be filtered out")
	}
}

func TestAddMatchCommDeliveredAndDispatched(t *testing.T) {
	agent := &echoAgent{}
	ctx, p := newTestContext(t, []int{1}, 0, agent)
	style := protocol.HeaderLegacy{}

	payload, _ := schema.Encode(schema.MatchComm{Index: 5, Team: 0, TeamOnly: false})
	msg, err := protocol.EncodeMessage(p, style, protocol.KindMatchComm, payload)
	if err != nil {
		t.Fatal(err)
	}

	if accepted := ctx.AddMatchComm(msg, false); !accepted {
		t.Fatal("expected MatchComm to be accepted")
	}
	if !ctx.LoopOnce() {
		t.Fatal("expected pending MatchComm work")
	}

	agent.mu.Lock()
	delivered := len(agent.comms)
	agent.mu.Unlock()
	if delivered != 1 {
		t.Fatalf("expected exactly 1 delivered MatchComm, got %d", delivered)
	}
}

func TestServiceGoroutineWakesOnNotify(t *testing.T) {
	agent := &echoAgent{}
	ctx, p := newTestContext(t, []int{0}, 0, agent)
	style := protocol.HeaderLegacy{}
	ctx.StartService()
	defer ctx.Terminate()

	m := encodeGamePacket(t, p, style, 1)
	ctx.SetGamePacket(m, true)

	deadline := time.After(2 * time.Second)
	for {
		agent.mu.Lock()
		n := agent.updates
		agent.mu.Unlock()
		if n == 1 {
			return
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for service goroutine to process the notified GamePacket")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
