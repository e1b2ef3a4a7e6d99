// File: protocol/encode.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// EncodeMessage writes one frame into a freshly acquired pool buffer,
// rejecting oversize payloads per spec.md §7's FrameOverflow handling
// (encode-time rejection; a received oversize frame is impossible
// given the 2-byte length field).

package protocol

import (
	"fmt"

	"github.com/RLBot/go-interface/api"
)

// EncodeMessage acquires a buffer from pool, frames payload under
// kind and style, and returns the resulting Message. If payload is
// larger than the style's length field can describe (MaxPayload for
// HeaderLegacy; MaxPayload-2 for HeaderTagged, whose length also
// counts the 2-byte kind tag) api.ErrFrameOverflow is returned before
// any buffer is acquired; no frame is emitted.
func EncodeMessage(pool api.BufferPool, style HeaderStyle, kind Kind, payload []byte) (Message, error) {
	if len(payload) > MaxPayload-(4-style.Size()) {
		return Message{}, fmt.Errorf("encode %s payload of %d bytes: %w", kind, len(payload), api.ErrFrameOverflow)
	}

	buf := pool.Acquire()
	style.Encode(buf.Bytes(), kind, payload)
	return NewMessage(buf, 0, style), nil
}
