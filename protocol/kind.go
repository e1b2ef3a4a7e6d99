// File: protocol/kind.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Kind is the message-kind discriminator the router needs; it mirrors
// original_source/library/Message.h's MessageType enum byte-for-byte
// so a legacy-dialect header's type field decodes directly into it.

package protocol

// Kind discriminates wire messages for routing. Payload interpretation
// beyond this discriminator is delegated to package schema.
type Kind uint16

const (
	KindNone Kind = iota
	KindGamePacket
	KindFieldInfo
	KindStartCommand
	KindMatchConfiguration
	KindPlayerInput
	KindDesiredGameState
	KindRenderGroup
	KindRemoveRenderGroup
	KindMatchComm
	KindBallPrediction
	KindConnectionSettings
	KindStopCommand
	KindSetLoadout
	KindInitComplete
	KindControllableTeamInfo
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindGamePacket:
		return "GamePacket"
	case KindFieldInfo:
		return "FieldInfo"
	case KindStartCommand:
		return "StartCommand"
	case KindMatchConfiguration:
		return "MatchConfiguration"
	case KindPlayerInput:
		return "PlayerInput"
	case KindDesiredGameState:
		return "DesiredGameState"
	case KindRenderGroup:
		return "RenderGroup"
	case KindRemoveRenderGroup:
		return "RemoveRenderGroup"
	case KindMatchComm:
		return "MatchComm"
	case KindBallPrediction:
		return "BallPrediction"
	case KindConnectionSettings:
		return "ConnectionSettings"
	case KindStopCommand:
		return "StopCommand"
	case KindSetLoadout:
		return "SetLoadout"
	case KindInitComplete:
		return "InitComplete"
	case KindControllableTeamInfo:
		return "ControllableTeamInfo"
	default:
		return "Unknown"
	}
}
