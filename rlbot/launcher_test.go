package rlbot_test

import (
	"testing"

	"github.com/RLBot/go-interface/protocol"
	"github.com/RLBot/go-interface/rlbot"
	"github.com/RLBot/go-interface/schema"
)

func TestLaunchMatchSendsMatchConfigurationAndDisconnects(t *testing.T) {
	ip, port, accept := fakeServer(t)

	opts := rlbot.DefaultOptions()
	opts.ServerIP = ip
	opts.ServerPort = port

	launchErr := make(chan error, 1)
	go func() {
		launchErr <- rlbot.LaunchMatch(opts, schema.MatchConfiguration{
			PlayerConfigurations: []schema.PlayerConfiguration{
				{SpawnID: 7, Team: 0, Name: "X", Variety: schema.CustomBotVariety},
			},
		})
	}()

	server := accept()
	defer server.Close()

	style := protocol.HeaderLegacy{}
	kind, _ := readFrame(t, server, style)
	if kind != protocol.KindMatchConfiguration {
		t.Fatalf("expected MatchConfiguration, got %v", kind)
	}

	if err := <-launchErr; err != nil {
		t.Fatalf("LaunchMatch returned an error: %v", err)
	}
}
