// File: schema/validator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package schema

import (
	"encoding/json"
	"fmt"

	"github.com/RLBot/go-interface/api"
	"github.com/RLBot/go-interface/protocol"
)

// Validator accepts or rejects a payload for a given message kind. A
// rejection becomes api.ErrDecodeValidation; the core drops the
// message and logs a warning, the stream continues.
type Validator interface {
	Validate(kind protocol.Kind, payload []byte) error
}

// Encode JSON-marshals v for use as a frame payload. Pairing this with
// Decode keeps encoding/json confined to package schema, as spec.md's
// schema-boundary non-goal calls for.
func Encode(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %v", api.ErrDecodeValidation, err)
	}
	return b, nil
}

// Decode validates m's payload through v, then JSON-decodes it into
// out. Together with Encode and JSONValidator it keeps JSON
// marshalling and unmarshalling inside package schema —
// protocol.Message stays codec-only.
func Decode(m protocol.Message, v Validator, out any) error {
	payload := m.PayloadBytes()
	if err := v.Validate(m.Kind(), payload); err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: decode %v payload: %v", api.ErrDecodeValidation, m.Kind(), err)
	}
	return nil
}
