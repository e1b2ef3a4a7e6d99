// File: agentmgr/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package agentmgr owns the spawn algorithm and message dispatch table
// that original_source/library/BotManagerImpl.cpp implements as
// spawnBots/clearBots/handleMessage: caching the control-plane
// triptych (ControllableTeamInfo, FieldInfo, MatchConfiguration),
// matching controllables to player configurations, constructing one
// agentctx.Context per accepted index (or one shared Context in
// batch-hivemind mode), and routing every other inbound message kind
// to the right context or contexts.
package agentmgr
