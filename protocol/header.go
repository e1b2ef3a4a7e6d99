// File: protocol/header.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// HeaderStyle makes both RLBot wire dialects expressible by the same
// codec given a pluggable header size, as spec'd: the legacy
// (type, length) two-field header and the newer single (length) field
// header with the type tagged inside the payload itself. In both
// styles a frame's total on-wire length is Size() + DataLen(...).

package protocol

import "encoding/binary"

// MaxPayload is the largest payload a single frame can carry: the
// length field is a big-endian u16.
const MaxPayload = 1<<16 - 1

// MaxFrame is the largest possible frame including the widest header.
const MaxFrame = 4 + MaxPayload

// HeaderStyle encodes and decodes a frame header in place.
type HeaderStyle interface {
	// Size returns the header's byte length.
	Size() int

	// DataLen reads the number of bytes following the header for the
	// frame starting at buf[offset:]. Callers must have at least
	// Size() bytes available at offset before calling this.
	DataLen(buf []byte, offset int) int

	// Kind reads the frame's message kind. Callers must have at least
	// Size() bytes (legacy) or Size()+2 bytes (tagged) available.
	Kind(buf []byte, offset int) Kind

	// PayloadSpan returns the start offset and length of the opaque
	// payload within a frame of total data length dataLen starting at
	// offset.
	PayloadSpan(offset, dataLen int) (start, length int)

	// Encode writes a complete frame (header plus payload) to dst and
	// returns the number of bytes written. dst must have at least
	// 4+len(payload) bytes of capacity in either style.
	Encode(dst []byte, kind Kind, payload []byte) int
}

// HeaderLegacy is the original two-field (type u16, length u16) header.
type HeaderLegacy struct{}

func (HeaderLegacy) Size() int { return 4 }

func (HeaderLegacy) DataLen(buf []byte, offset int) int {
	return int(binary.BigEndian.Uint16(buf[offset+2:]))
}

func (HeaderLegacy) Kind(buf []byte, offset int) Kind {
	return Kind(binary.BigEndian.Uint16(buf[offset:]))
}

func (HeaderLegacy) PayloadSpan(offset, dataLen int) (int, int) {
	return offset + 4, dataLen
}

func (HeaderLegacy) Encode(dst []byte, kind Kind, payload []byte) int {
	binary.BigEndian.PutUint16(dst[0:], uint16(kind))
	binary.BigEndian.PutUint16(dst[2:], uint16(len(payload)))
	copy(dst[4:], payload)
	return 4 + len(payload)
}

// HeaderTagged is the newer single (length u16) field header; the kind
// is embedded as a leading u16 tag at the start of the data region, so
// the opaque payload length is dataLen-2.
type HeaderTagged struct{}

func (HeaderTagged) Size() int { return 2 }

func (HeaderTagged) DataLen(buf []byte, offset int) int {
	return int(binary.BigEndian.Uint16(buf[offset:]))
}

func (HeaderTagged) Kind(buf []byte, offset int) Kind {
	return Kind(binary.BigEndian.Uint16(buf[offset+2:]))
}

func (HeaderTagged) PayloadSpan(offset, dataLen int) (int, int) {
	return offset + 4, dataLen - 2
}

func (HeaderTagged) Encode(dst []byte, kind Kind, payload []byte) int {
	binary.BigEndian.PutUint16(dst[0:], uint16(len(payload)+2))
	binary.BigEndian.PutUint16(dst[2:], uint16(kind))
	copy(dst[4:], payload)
	return 4 + len(payload)
}
