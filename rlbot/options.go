// File: rlbot/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package rlbot

import (
	"github.com/RLBot/go-interface/pool"
	"github.com/RLBot/go-interface/protocol"
	"github.com/RLBot/go-interface/schema"
)

// Options holds everything Connect needs beyond the agent factory
// itself. Zero-value fields are filled in by Connect and LaunchMatch.
type Options struct {
	AgentID    string // non-empty string identifying this agent to the server
	ServerIP   string // match server address; empty uses RLBOT_SERVER_IP, else transport.DefaultServerIP
	ServerPort int    // match server port; 0 uses RLBOT_SERVER_PORT, else transport.DefaultServerPort

	BatchHivemind        bool // one Context per team instead of one per index
	WantsBallPredictions bool // declared in the outbound ConnectionSettings frame
	WantsComms           bool // declared in the outbound ConnectionSettings frame
	CloseBetweenMatches  bool // declared in the outbound ConnectionSettings frame

	HeaderStyle protocol.HeaderStyle // wire dialect; nil uses protocol.HeaderLegacy
	Validator   schema.Validator     // payload validator; nil uses schema.NewJSONValidator
	ShardCount  int                  // buffer pool shard count; 0 uses pool.DefaultShardCount
}

// DefaultOptions returns an Options with HeaderStyle, Validator and
// ShardCount filled in. AgentID is left empty; callers set it
// explicitly or via FromEnv. ServerIP and ServerPort are left zero and
// resolved at Connect/LaunchMatch time as the field comments describe.
func DefaultOptions() Options {
	return Options{
		ServerIP:    "",
		ServerPort:  0,
		HeaderStyle: protocol.HeaderLegacy{},
		Validator:   schema.NewJSONValidator(),
		ShardCount:  pool.DefaultShardCount,
	}
}

// FromEnv returns DefaultOptions with AgentID, ServerIP, and
// ServerPort overridden from RLBOT_AGENT_ID / RLBOT_SERVER_IP /
// RLBOT_SERVER_PORT, and applies RLBOT_LOG_LEVEL to internal/rlog as a
// side effect, matching spec.md §6's "all read by the facade" rule.
func FromEnv() Options {
	configureLoggingFromEnv()

	opts := DefaultOptions()
	opts.AgentID = agentIDFromEnv()
	opts.ServerIP, opts.ServerPort = serverAddressFromEnv()
	return opts
}

func (o Options) withDefaults() Options {
	if o.ServerIP == "" || o.ServerPort == 0 {
		ip, port := serverAddressFromEnv()
		if o.ServerIP == "" {
			o.ServerIP = ip
		}
		if o.ServerPort == 0 {
			o.ServerPort = port
		}
	}
	if o.HeaderStyle == nil {
		o.HeaderStyle = protocol.HeaderLegacy{}
	}
	if o.Validator == nil {
		o.Validator = schema.NewJSONValidator()
	}
	if o.ShardCount == 0 {
		o.ShardCount = pool.DefaultShardCount
	}
	return o
}
