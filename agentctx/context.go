// File: agentctx/context.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Context is the Go rendering of original_source/library/BotContext.h/.cpp:
// owned indices, a mutex-guarded pending GamePacket / latest
// BallPrediction / inbound MatchComm FIFO, and a serviceLoop that
// drains them into agent callbacks and re-emits outputs through an
// Outbox. The std::condition_variable wait/notify pair becomes a
// buffered "doorbell" channel guarded by the same mutex.

package agentctx

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/RLBot/go-interface/internal/concurrency"
	"github.com/RLBot/go-interface/internal/rlog"
	"github.com/RLBot/go-interface/protocol"
	"github.com/RLBot/go-interface/schema"
)

// Context owns one or more participant indices (more than one only in
// batch-hivemind mode) and the agent that controls them.
type Context struct {
	indices  []int
	indexSet map[int]struct{}
	team     int

	agent     Agent
	out       Outbox
	validator schema.Validator

	fieldInfoMsg   protocol.Message
	matchConfigMsg protocol.Message
	matchConfig    schema.MatchConfiguration

	mu                    sync.Mutex
	pendingGamePacket     protocol.Message
	latestBallPrediction  protocol.Message
	matchCommsIn          *queue.Queue

	doorbell chan struct{}
	quitCh   chan struct{}
	quitOnce sync.Once
	done     chan struct{}

	ready *concurrency.Event
}

// New constructs a Context for the given owned indices. fieldInfoMsg
// and matchConfigMsg are adopted (the Context releases them on
// Close); matchConfig is their already-decoded counterpart, cached so
// the service loop can gate RenderGroup/DesiredGameState forwarding
// without repeatedly decoding JSON.
func New(
	indices []int,
	team int,
	agent Agent,
	fieldInfoMsg, matchConfigMsg protocol.Message,
	matchConfig schema.MatchConfiguration,
	validator schema.Validator,
	out Outbox,
) *Context {
	set := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		set[idx] = struct{}{}
	}
	return &Context{
		indices:        append([]int(nil), indices...),
		indexSet:       set,
		team:           team,
		agent:          agent,
		out:            out,
		validator:      validator,
		fieldInfoMsg:   fieldInfoMsg,
		matchConfigMsg: matchConfigMsg,
		matchConfig:    matchConfig,
		matchCommsIn:   queue.New(),
		doorbell:       make(chan struct{}, 1),
		quitCh:         make(chan struct{}),
		ready:          concurrency.NewEvent(),
	}
}

// Indices returns the participant indices this context owns.
func (c *Context) Indices() []int { return c.indices }

// Team returns this context's team, used by the router's team-only
// MatchComm filter.
func (c *Context) Team() int { return c.team }

// Ready reports once spawn has finished polling this context's
// loadout for every owned index.
func (c *Context) Ready() <-chan struct{} { return c.ready.Done() }

// MarkReady signals Ready; called once by agentmgr after loadout
// polling completes for this context.
func (c *Context) MarkReady() { c.ready.Signal() }

func (c *Context) wake() {
	select {
	case c.doorbell <- struct{}{}:
	default:
	}
}

// SetGamePacket installs gamePacket as the pending tick, dropping
// (releasing) whatever packet was pending and unconsumed — the P4
// coalescing rule. notify controls whether the service goroutine is
// woken; the primary context is driven inline instead and passes
// notify=false.
func (c *Context) SetGamePacket(gamePacket protocol.Message, notify bool) {
	c.mu.Lock()
	if c.pendingGamePacket.Valid() {
		c.pendingGamePacket.Release()
	}
	c.pendingGamePacket = gamePacket
	c.mu.Unlock()

	if notify {
		c.wake()
	}
}

// SetBallPrediction replaces the latest snapshot with ballPrediction,
// releasing the previous one. No notification: a new BallPrediction
// alone is never enough work to run a loop iteration.
func (c *Context) SetBallPrediction(ballPrediction protocol.Message) {
	c.mu.Lock()
	if c.latestBallPrediction.Valid() {
		c.latestBallPrediction.Release()
	}
	c.latestBallPrediction = ballPrediction
	c.mu.Unlock()
}

// AddMatchComm enqueues matchComm for delivery to the agent's
// MatchComm callback after self/team filtering (P5). It always takes
// ownership of matchComm: on a filtered-out message, it releases the
// buffer itself and returns false.
func (c *Context) AddMatchComm(matchComm protocol.Message, notify bool) bool {
	var decoded schema.MatchComm
	if err := schema.Decode(matchComm, c.validator, &decoded); err != nil {
		rlog.Warning("agentctx: dropping malformed MatchComm: %v", err)
		matchComm.Release()
		return false
	}

	if _, owned := c.indexSet[decoded.Index]; owned {
		matchComm.Release()
		return false
	}
	if decoded.TeamOnly && decoded.Team != c.team {
		matchComm.Release()
		return false
	}

	c.mu.Lock()
	c.matchCommsIn.Add(matchComm)
	c.mu.Unlock()

	if notify {
		c.wake()
	}
	return true
}

// LoopOnce runs one iteration of the service loop if there is work
// pending (a GamePacket or queued MatchComms), and reports whether it
// did. Safe to call concurrently with SetGamePacket/AddMatchComm, and
// safe to call inline on another goroutine for the primary context.
func (c *Context) LoopOnce() bool {
	c.mu.Lock()
	if c.matchCommsIn.Length() == 0 && !c.pendingGamePacket.Valid() {
		c.mu.Unlock()
		return false
	}

	work := c.matchCommsIn
	c.matchCommsIn = queue.New()

	gamePacket := c.pendingGamePacket
	c.pendingGamePacket = protocol.Message{}

	var ballPrediction protocol.Message
	if c.latestBallPrediction.Valid() {
		ballPrediction = c.latestBallPrediction.Clone()
	}
	c.mu.Unlock()

	for work.Length() > 0 {
		msg := work.Remove().(protocol.Message)
		if receiver, ok := c.agent.(MatchCommReceiver); ok {
			receiver.MatchComm(msg)
		}
		msg.Release()
	}

	if gamePacket.Valid() {
		c.runTick(gamePacket, ballPrediction)
		gamePacket.Release()
	}

	if ballPrediction.Valid() {
		ballPrediction.Release()
	}

	c.drainOutbound()
	return true
}

func (c *Context) runTick(gamePacket, ballPrediction protocol.Message) {
	c.agent.Update(gamePacket, ballPrediction, c.fieldInfoMsg, c.matchConfigMsg)

	var decoded schema.GamePacket
	if err := schema.Decode(gamePacket, c.validator, &decoded); err != nil {
		rlog.Warning("agentctx: dropping malformed GamePacket: %v", err)
		return
	}

	for _, idx := range c.indices {
		if idx >= len(decoded.Players) {
			continue
		}
		controllerState := c.agent.GetOutput(idx)
		if err := c.out.Send(protocol.KindPlayerInput, schema.PlayerInput{
			PlayerIndex:      idx,
			ControllerState:  controllerState,
		}); err != nil {
			rlog.Error("agentctx: failed to enqueue PlayerInput for index %d: %v", idx, err)
		}
	}
}

func (c *Context) drainOutbound() {
	if sender, ok := c.agent.(MatchCommSender); ok {
		for _, comm := range sender.GetMatchComms() {
			if err := c.out.Send(protocol.KindMatchComm, comm); err != nil {
				rlog.Error("agentctx: failed to enqueue MatchComm: %v", err)
			}
		}
	}

	if source, ok := c.agent.(RenderMessageSource); ok && c.matchConfig.EnableRendering {
		for group, messages := range source.GetRenderMessages() {
			if len(messages) == 0 {
				_ = c.out.Send(protocol.KindRemoveRenderGroup, schema.RemoveRenderGroup{ID: group})
				continue
			}
			_ = c.out.Send(protocol.KindRenderGroup, schema.RenderGroup{ID: group, RenderMessages: messages})
		}
	}

	if setter, ok := c.agent.(GameStateSetter); ok && c.matchConfig.EnableStateSetting {
		if state, present := setter.GetDesiredGameState(); present {
			_ = c.out.Send(protocol.KindDesiredGameState, state)
		}
	}
}

// StartService launches this context's own service goroutine; callers
// never do this for the primary context, which is driven by LoopOnce
// directly on the transport's read goroutine instead.
func (c *Context) StartService() {
	c.done = make(chan struct{})
	go c.service()
}

// Done reports when the service goroutine has exited. For a context
// whose StartService was never called (the primary), Done is already
// closed.
func (c *Context) Done() <-chan struct{} {
	if c.done == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return c.done
}

func (c *Context) service() {
	defer close(c.done)
	for {
		select {
		case <-c.quitCh:
			return
		default:
		}
		if !c.LoopOnce() {
			select {
			case <-c.doorbell:
			case <-c.quitCh:
				return
			}
		}
	}
}

// Terminate signals the service goroutine to exit; idempotent.
func (c *Context) Terminate() {
	c.quitOnce.Do(func() { close(c.quitCh) })
}

// Close releases every buffer this context still holds a reference
// to. Call after Terminate and, for non-primary contexts, after the
// service goroutine has exited.
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fieldInfoMsg.Valid() {
		c.fieldInfoMsg.Release()
	}
	if c.matchConfigMsg.Valid() {
		c.matchConfigMsg.Release()
	}
	if c.pendingGamePacket.Valid() {
		c.pendingGamePacket.Release()
	}
	if c.latestBallPrediction.Valid() {
		c.latestBallPrediction.Release()
	}
	for c.matchCommsIn.Length() > 0 {
		c.matchCommsIn.Remove().(protocol.Message).Release()
	}
}
