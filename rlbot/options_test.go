package rlbot_test

import (
	"os"
	"testing"

	"github.com/RLBot/go-interface/internal/rlog"
	"github.com/RLBot/go-interface/rlbot"
	"github.com/RLBot/go-interface/transport"
)

func TestFromEnvAppliesDefaultsAndOverrides(t *testing.T) {
	t.Setenv("RLBOT_AGENT_ID", "my-agent")
	t.Setenv("RLBOT_SERVER_IP", "10.0.0.5")
	t.Setenv("RLBOT_SERVER_PORT", "9999")
	t.Setenv("RLBOT_LOG_LEVEL", "DEBUG")
	defer rlog.SetLevel(rlog.LevelWarning)

	opts := rlbot.FromEnv()
	if opts.AgentID != "my-agent" {
		t.Fatalf("expected AgentID from env, got %q", opts.AgentID)
	}
	if opts.ServerIP != "10.0.0.5" || opts.ServerPort != 9999 {
		t.Fatalf("expected server address from env, got %s:%d", opts.ServerIP, opts.ServerPort)
	}
}

func TestFromEnvFallsBackToDefaultsWhenUnset(t *testing.T) {
	os.Unsetenv("RLBOT_AGENT_ID")
	os.Unsetenv("RLBOT_SERVER_IP")
	os.Unsetenv("RLBOT_SERVER_PORT")
	os.Unsetenv("RLBOT_LOG_LEVEL")
	defer rlog.SetLevel(rlog.LevelWarning)

	opts := rlbot.FromEnv()
	if opts.AgentID != "" {
		t.Fatalf("expected empty AgentID, got %q", opts.AgentID)
	}
	if opts.ServerIP != transport.DefaultServerIP || opts.ServerPort != transport.DefaultServerPort {
		t.Fatalf("expected transport defaults, got %s:%d", opts.ServerIP, opts.ServerPort)
	}
}
