package agentmgr_test

import (
	"testing"
	"time"

	"github.com/RLBot/go-interface/agentctx"
	"github.com/RLBot/go-interface/agentmgr"
	"github.com/RLBot/go-interface/pool"
	"github.com/RLBot/go-interface/protocol"
	"github.com/RLBot/go-interface/schema"
)

func spawnTwo(t *testing.T, sink *recordingSink) (*agentmgr.Manager, *agentmgr.Router, []*testAgent) {
	t.Helper()
	var agents []*testAgent
	spawn := func(indices []int, team int, name string) agentctx.Agent {
		a := &testAgent{indices: indices}
		agents = append(agents, a)
		return a
	}

	mgr, p, style := newManager(t, sink, false, "agent-1", spawn)
	cacheTriptych(t, mgr, p, style, 0,
		[]schema.ControllableInfo{{Index: 0, SpawnID: 100}, {Index: 1, SpawnID: 101}},
		[]schema.PlayerConfiguration{
			{SpawnID: 100, Team: 0, Name: "a", Variety: schema.CustomBotVariety},
			{SpawnID: 101, Team: 0, Name: "b", Variety: schema.CustomBotVariety},
		},
	)
	router := &agentmgr.Router{Manager: mgr}
	return mgr, router, agents
}

func waitForUpdates(t *testing.T, a *testAgent, n int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		a.mu.Lock()
		got := a.updates
		a.mu.Unlock()
		if got >= n {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %d updates, got %d", n, got)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestRouterGamePacketDrivesPrimaryInlineAndSiblingAsync(t *testing.T) {
	sink := &recordingSink{}
	_, router, agents := spawnTwo(t, sink)
	if len(agents) != 2 {
		t.Fatalf("expected 2 spawned agents, got %d", len(agents))
	}
	defer router.Manager.Close()

	p := pool.NewShardedPool(4)
	style := protocol.HeaderLegacy{}
	packet := encodePayload(t, p, style, protocol.KindGamePacket, schema.GamePacket{
		Players: []schema.PlayerInfo{{Index: 0}, {Index: 1}},
	})

	router.Dispatch(packet)

	agents[0].mu.Lock()
	primaryUpdates := agents[0].updates
	agents[0].mu.Unlock()
	if primaryUpdates != 1 {
		t.Fatalf("expected the primary context to have run inline, got %d updates", primaryUpdates)
	}

	waitForUpdates(t, agents[1], 1)
}

func TestRouterMatchCommDeliversToSiblingViaLoopback(t *testing.T) {
	sink := &recordingSink{}
	_, router, agents := spawnTwo(t, sink)
	defer router.Manager.Close()

	agents[0].mu.Lock()
	agents[0].outComm = []schema.MatchComm{{Index: 0, Team: 0, DisplayName: "hi"}}
	agents[0].mu.Unlock()

	p := pool.NewShardedPool(4)
	style := protocol.HeaderLegacy{}
	packet := encodePayload(t, p, style, protocol.KindGamePacket, schema.GamePacket{
		Players: []schema.PlayerInfo{{Index: 0}, {Index: 1}},
	})
	router.Dispatch(packet)

	deadline := time.After(2 * time.Second)
	for {
		agents[1].mu.Lock()
		got := len(agents[1].comms)
		agents[1].mu.Unlock()
		if got == 1 {
			return
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for sibling context to receive the looped-back MatchComm")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
