// File: schema/json_validator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// JSONValidator is the default Validator: it accepts a payload iff it
// JSON-decodes into the Go struct registered for its kind. Tests and
// examples use it directly; a production deployment speaking RLBot's
// real flatbuffers wire format supplies its own Validator instead.

package schema

import (
	"encoding/json"
	"fmt"

	"github.com/RLBot/go-interface/api"
	"github.com/RLBot/go-interface/protocol"
)

// JSONValidator decodes payloads as JSON into the kind-tagged structs
// in types.go, purely to confirm they parse; it does not retain the
// decoded value (callers use Decode for that).
type JSONValidator struct{}

// NewJSONValidator returns the default Validator.
func NewJSONValidator() JSONValidator { return JSONValidator{} }

func (JSONValidator) Validate(kind protocol.Kind, payload []byte) error {
	if kind == protocol.KindNone || kind == protocol.KindInitComplete {
		return nil
	}
	if len(payload) == 0 {
		return fmt.Errorf("%w: %v payload is empty", api.ErrDecodeValidation, kind)
	}

	var target any
	switch kind {
	case protocol.KindGamePacket:
		target = &GamePacket{}
	case protocol.KindFieldInfo:
		target = &FieldInfo{}
	case protocol.KindMatchConfiguration:
		target = &MatchConfiguration{}
	case protocol.KindControllableTeamInfo:
		target = &ControllableTeamInfo{}
	case protocol.KindBallPrediction:
		target = &BallPrediction{}
	case protocol.KindMatchComm:
		target = &MatchComm{}
	case protocol.KindPlayerInput:
		target = &PlayerInput{}
	case protocol.KindDesiredGameState:
		target = &DesiredGameState{}
	case protocol.KindRenderGroup:
		target = &RenderGroup{}
	case protocol.KindRemoveRenderGroup:
		target = &RemoveRenderGroup{}
	case protocol.KindSetLoadout:
		target = &SetLoadout{}
	case protocol.KindConnectionSettings:
		target = &ConnectionSettings{}
	default:
		return fmt.Errorf("%w: unrecognized kind %v", api.ErrDecodeValidation, kind)
	}

	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("%w: %v: %v", api.ErrDecodeValidation, kind, err)
	}
	return nil
}
