// File: agentmgr/manager.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Manager is the Go rendering of BotManagerImpl's m_controllableTeamInfo
// / m_fieldInfo / m_matchConfiguration / m_bots state and its
// spawnBots/clearBots algorithm. RLBOT_AGENT_ID is read only by
// package rlbot and handed to NewManager as agentID; Manager never
// touches the environment itself.

package agentmgr

import (
	"sync"

	"github.com/RLBot/go-interface/agentctx"
	"github.com/RLBot/go-interface/api"
	"github.com/RLBot/go-interface/internal/rlog"
	"github.com/RLBot/go-interface/protocol"
	"github.com/RLBot/go-interface/schema"
)

// AgentFactory constructs the Agent controlling indices on team, named
// name (the first owned player configuration's name). Called once per
// context: once per accepted index in default mode, once total in
// batch-hivemind mode.
type AgentFactory func(indices []int, team int, name string) agentctx.Agent

// Manager owns the control-plane cache and the live set of agent
// contexts spawned from it.
type Manager struct {
	pool      api.BufferPool
	style     protocol.HeaderStyle
	validator schema.Validator
	sink      agentctx.Sink
	out       agentctx.Outbox

	spawn         AgentFactory
	batchHivemind bool
	agentID       string

	mu                   sync.Mutex
	controllableTeamInfo protocol.Message
	fieldInfo            protocol.Message
	matchConfiguration   protocol.Message
	contexts             []*agentctx.Context // index 0 is the primary context
}

// NewManager constructs a Manager. sink is the raw transport the
// manager's own emissions (SetLoadout, InitComplete) and every
// context's agent output are framed onto.
func NewManager(
	pool api.BufferPool,
	style protocol.HeaderStyle,
	validator schema.Validator,
	sink agentctx.Sink,
	spawn AgentFactory,
	batchHivemind bool,
	agentID string,
) *Manager {
	return &Manager{
		pool:          pool,
		style:         style,
		validator:     validator,
		sink:          sink,
		out:           agentctx.Outbox{Pool: pool, Style: style, Sink: sink},
		spawn:         spawn,
		batchHivemind: batchHivemind,
		agentID:       agentID,
	}
}

// CacheControllableTeamInfo adopts msg, releasing whatever was
// previously cached.
func (m *Manager) CacheControllableTeamInfo(msg protocol.Message) {
	m.mu.Lock()
	if m.controllableTeamInfo.Valid() {
		m.controllableTeamInfo.Release()
	}
	m.controllableTeamInfo = msg
	m.mu.Unlock()
}

// CacheFieldInfo adopts msg, releasing whatever was previously cached.
func (m *Manager) CacheFieldInfo(msg protocol.Message) {
	m.mu.Lock()
	if m.fieldInfo.Valid() {
		m.fieldInfo.Release()
	}
	m.fieldInfo = msg
	m.mu.Unlock()
}

// CacheMatchConfiguration adopts msg, releasing whatever was
// previously cached.
func (m *Manager) CacheMatchConfiguration(msg protocol.Message) {
	m.mu.Lock()
	if m.matchConfiguration.Valid() {
		m.matchConfiguration.Release()
	}
	m.matchConfiguration = msg
	m.mu.Unlock()
}

// ContextCount reports how many contexts are currently spawned.
func (m *Manager) ContextCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.contexts)
}

// contextsSnapshot copies the current context list under lock so
// callers can iterate it without holding the mutex.
func (m *Manager) contextsSnapshot() []*agentctx.Context {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*agentctx.Context(nil), m.contexts...)
}

// TrySpawn attempts a (re)spawn once all three control-plane messages
// are cached, mirroring spawnBots()'s guard, clearBots() call, and
// match/spawn loop. Like the original's handleMessage, TrySpawn is
// only safe to call from the single goroutine that also calls the
// Cache* methods and Router.Dispatch — there is no internal
// serialization between a cache update and a spawn attempt.
func (m *Manager) TrySpawn() {
	m.mu.Lock()
	if !m.controllableTeamInfo.Valid() || !m.fieldInfo.Valid() || !m.matchConfiguration.Valid() {
		m.mu.Unlock()
		return
	}
	old := m.contexts
	m.contexts = nil
	agentID := m.agentID
	teamInfoMsg := m.controllableTeamInfo
	fieldInfoMsg := m.fieldInfo
	matchConfigMsg := m.matchConfiguration
	m.mu.Unlock()

	teardownContexts(old)

	if agentID == "" {
		return
	}

	var teamInfo schema.ControllableTeamInfo
	if err := schema.Decode(teamInfoMsg, m.validator, &teamInfo); err != nil {
		rlog.Warning("agentmgr: ControllableTeamInfo decode failed: %v", err)
		return
	}

	var fieldInfo schema.FieldInfo
	if err := schema.Decode(fieldInfoMsg, m.validator, &fieldInfo); err != nil {
		rlog.Warning("agentmgr: FieldInfo decode failed: %v", err)
		return
	}

	var matchConfig schema.MatchConfiguration
	if err := schema.Decode(matchConfigMsg, m.validator, &matchConfig); err != nil {
		rlog.Warning("agentmgr: MatchConfiguration decode failed: %v", err)
		return
	}

	team := teamInfo.Team
	seen := make(map[int]struct{}, len(teamInfo.Controllables))

	type accepted struct {
		index int
		name  string
	}
	var acceptedList []accepted

	for _, controllable := range teamInfo.Controllables {
		player := findPlayerConfiguration(matchConfig.PlayerConfigurations, controllable.SpawnID)
		if player == nil {
			rlog.Warning("agentmgr: ControllableInfo player not found in match settings")
			continue
		}
		if player.Team != team {
			rlog.Warning("agentmgr: ControllableInfo team mismatch")
			continue
		}
		if player.Variety != schema.CustomBotVariety {
			rlog.Warning("agentmgr: ControllableInfo variety %q is not a custom bot", player.Variety)
			continue
		}
		if _, dup := seen[controllable.Index]; dup {
			rlog.Warning("agentmgr: ControllableInfo duplicate bot index %d", controllable.Index)
			continue
		}
		seen[controllable.Index] = struct{}{}
		acceptedList = append(acceptedList, accepted{index: controllable.Index, name: player.Name})
	}

	var built []*agentctx.Context
	if len(acceptedList) > 0 {
		if m.batchHivemind {
			indices := make([]int, len(acceptedList))
			name := acceptedList[0].name
			for i, a := range acceptedList {
				indices[i] = a.index
				if name == "" {
					name = a.name
				}
			}
			ctx := m.buildContext(indices, team, name, fieldInfoMsg, matchConfigMsg, matchConfig)
			built = append(built, ctx)
		} else {
			for _, a := range acceptedList {
				ctx := m.buildContext([]int{a.index}, team, a.name, fieldInfoMsg, matchConfigMsg, matchConfig)
				built = append(built, ctx)
			}
		}
	}

	m.mu.Lock()
	m.contexts = built
	m.mu.Unlock()

	// The first context runs inline on the router's calling goroutine;
	// every other context gets its own service goroutine.
	if len(built) > 1 {
		for _, ctx := range built[1:] {
			ctx.StartService()
		}
	}

	if err := m.out.Send(protocol.KindInitComplete, schema.InitComplete{}); err != nil {
		rlog.Error("agentmgr: failed to enqueue InitComplete: %v", err)
	}
}

// buildContext constructs the Agent and its owning Context for
// indices, polls the agent's loadout for each owned index, and emits
// any SetLoadout messages before returning. fieldInfoMsg and
// matchConfigMsg are cloned, one reference per context; matchConfig is
// their already-decoded counterpart, shared read-only across contexts.
func (m *Manager) buildContext(
	indices []int,
	team int,
	name string,
	fieldInfoMsg, matchConfigMsg protocol.Message,
	matchConfig schema.MatchConfiguration,
) *agentctx.Context {
	agent := m.spawn(indices, team, name)

	ctxSink := &loopbackSink{mgr: m, underlying: m.sink}
	outbox := agentctx.Outbox{Pool: m.pool, Style: m.style, Sink: ctxSink}

	ctx := agentctx.New(
		indices,
		team,
		agent,
		fieldInfoMsg.Clone(),
		matchConfigMsg.Clone(),
		matchConfig,
		m.validator,
		outbox,
	)
	ctxSink.owner = ctx

	if provider, ok := agent.(agentctx.LoadoutProvider); ok {
		for _, index := range indices {
			loadout, present := provider.GetLoadout(index)
			if !present {
				continue
			}
			if err := m.out.Send(protocol.KindSetLoadout, schema.SetLoadout{Index: index, Loadout: loadout}); err != nil {
				rlog.Error("agentmgr: failed to enqueue SetLoadout for index %d: %v", index, err)
			}
		}
	}

	ctx.MarkReady()
	return ctx
}

func findPlayerConfiguration(configs []schema.PlayerConfiguration, spawnID int) *schema.PlayerConfiguration {
	for i := range configs {
		if configs[i].SpawnID == spawnID {
			return &configs[i]
		}
	}
	return nil
}

// clearContexts terminates and closes every context, mirroring
// clearBots(): every non-primary context is joined before its buffers
// are released, satisfying the restart-safety requirement that no
// context's service goroutine is still running when Close runs. The
// lock is dropped before joining so a context's own goroutine can
// still finish an in-flight loopbackMatchComm call, which needs the
// same lock.
func (m *Manager) clearContexts() {
	m.mu.Lock()
	old := m.contexts
	m.contexts = nil
	m.mu.Unlock()

	teardownContexts(old)
}

func teardownContexts(contexts []*agentctx.Context) {
	for _, ctx := range contexts {
		ctx.Terminate()
	}
	for _, ctx := range contexts {
		<-ctx.Done()
	}
	for _, ctx := range contexts {
		ctx.Close()
	}
}

// Close releases the cached control-plane messages and every spawned
// context's buffers. Call once, after the transport has stopped.
func (m *Manager) Close() {
	m.clearContexts()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.controllableTeamInfo.Valid() {
		m.controllableTeamInfo.Release()
		m.controllableTeamInfo = protocol.Message{}
	}
	if m.fieldInfo.Valid() {
		m.fieldInfo.Release()
		m.fieldInfo = protocol.Message{}
	}
	if m.matchConfiguration.Valid() {
		m.matchConfiguration.Release()
		m.matchConfiguration = protocol.Message{}
	}
}
