// File: rlbot/env.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package rlbot

import (
	"os"
	"strconv"

	"github.com/RLBot/go-interface/internal/rlog"
	"github.com/RLBot/go-interface/transport"
)

// agentIDFromEnv reads RLBOT_AGENT_ID, spec.md §6's "optional
// alternative to a constructor argument" for identifying this agent
// instance to the server. An empty result means no value was set.
func agentIDFromEnv() string {
	return os.Getenv("RLBOT_AGENT_ID")
}

// serverAddressFromEnv reads RLBOT_SERVER_IP / RLBOT_SERVER_PORT,
// falling back to transport.DefaultServerIP / DefaultServerPort.
func serverAddressFromEnv() (string, int) {
	ip := os.Getenv("RLBOT_SERVER_IP")
	if ip == "" {
		ip = transport.DefaultServerIP
	}

	port := transport.DefaultServerPort
	if raw := os.Getenv("RLBOT_SERVER_PORT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			port = parsed
		} else {
			rlog.Warning("rlbot: invalid RLBOT_SERVER_PORT %q, using default %d", raw, transport.DefaultServerPort)
		}
	}
	return ip, port
}

// configureLoggingFromEnv reads RLBOT_LOG_LEVEL and applies it to
// internal/rlog's Default logger. Unset or unrecognized values fall
// back to rlog.LevelWarning (see rlog.ParseLevel).
func configureLoggingFromEnv() {
	rlog.SetLevel(rlog.ParseLevel(os.Getenv("RLBOT_LOG_LEVEL")))
}
