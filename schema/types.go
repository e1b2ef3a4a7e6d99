// File: schema/types.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Kind-tagged Go structs carrying the fields the router and agent
// contexts need to reason about. These are deliberately thin: the real
// RLBot payload schema is out of scope (spec's non-goal), so each
// struct captures only what drives routing, spawn, and filtering
// decisions, grounded on the field names used throughout
// original_source/library/BotManagerImpl.cpp and BotContext.cpp.

package schema

import "encoding/json"

// PlayerInfo is one entry of GamePacket.Players.
type PlayerInfo struct {
	Index int `json:"index"`
}

// GamePacket carries the per-tick player list; agent contexts only
// need its length and index set to decide which owned indices are
// present this tick.
type GamePacket struct {
	Players []PlayerInfo `json:"players"`
}

// FieldInfo is opaque to the core; it is cached and handed to agents
// untouched.
type FieldInfo struct{}

// BallPrediction is opaque to the core; only its presence matters.
type BallPrediction struct{}

// PlayerConfiguration is one entry of MatchConfiguration.PlayerConfigurations.
type PlayerConfiguration struct {
	SpawnID int    `json:"spawn_id"`
	Team    int    `json:"team"`
	Name    string `json:"name"`
	Variety string `json:"variety"`
}

// CustomBotVariety is the only PlayerConfiguration.Variety value the
// spawn algorithm accepts.
const CustomBotVariety = "custom_bot"

// MatchConfiguration carries the player configuration list and the
// feature toggles that gate RenderGroup/DesiredGameState forwarding.
type MatchConfiguration struct {
	PlayerConfigurations []PlayerConfiguration `json:"player_configurations"`
	EnableRendering       bool                 `json:"enable_rendering"`
	EnableStateSetting    bool                 `json:"enable_state_setting"`
}

// ControllableInfo is one entry of ControllableTeamInfo.Controllables.
type ControllableInfo struct {
	Index   int `json:"index"`
	SpawnID int `json:"spawn_id"`
}

// ControllableTeamInfo lists this process's controllable participants
// and their team.
type ControllableTeamInfo struct {
	Team          int                `json:"team"`
	Controllables []ControllableInfo `json:"controllables"`
}

// MatchComm is an inter-agent message with a self/team-only filter.
type MatchComm struct {
	Index       int             `json:"index"`
	Team        int             `json:"team"`
	TeamOnly    bool            `json:"team_only"`
	DisplayName string          `json:"display"`
	Data        json.RawMessage `json:"data"`
}

// PlayerInput is the outbound per-tick controller state frame.
type PlayerInput struct {
	PlayerIndex     int             `json:"player_index"`
	ControllerState json.RawMessage `json:"controller_state"`
}

// DesiredGameState is opaque; only gated by MatchConfiguration.EnableStateSetting.
type DesiredGameState struct{}

// RenderMessage is one opaque drawing primitive inside a RenderGroup.
type RenderMessage = json.RawMessage

// RenderGroup carries a batch of render primitives under one group id.
type RenderGroup struct {
	ID             int               `json:"id"`
	RenderMessages []RenderMessage   `json:"render_messages"`
}

// RemoveRenderGroup tears down a previously rendered group.
type RemoveRenderGroup struct {
	ID int `json:"id"`
}

// SetLoadout is emitted at most once per agent index during spawn.
type SetLoadout struct {
	Index   int             `json:"index"`
	Loadout json.RawMessage `json:"loadout"`
}

// ConnectionSettings is the first outbound frame, declaring this
// agent's identity and which optional traffic it wants.
type ConnectionSettings struct {
	AgentID              string `json:"agent_id"`
	WantsBallPredictions bool   `json:"wants_ball_predictions"`
	WantsComms           bool   `json:"wants_comms"`
	CloseBetweenMatches  bool   `json:"close_between_matches"`
}

// InitComplete has no payload fields; its presence is the signal.
type InitComplete struct{}
