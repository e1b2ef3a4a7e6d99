// File: protocol/message.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Message is a (buffer handle, offset) view over a pooled buffer,
// grounded on original_source/library/Message.h/.cpp: type()/size()
// decode the header fields in place, span() returns the full framed
// region, and the buffer is only released when the last referring
// Message is dropped.

package protocol

import "github.com/RLBot/go-interface/api"

// Message is a zero-copy view over a frame living inside a pooled
// buffer. The zero value is invalid; use NewMessage.
type Message struct {
	buf   api.Buffer
	off   int
	style HeaderStyle
}

// NewMessage constructs a Message for a frame whose header starts at
// off inside buf's storage, under the given header style.
func NewMessage(buf api.Buffer, off int, style HeaderStyle) Message {
	return Message{buf: buf, off: off, style: style}
}

// Valid reports whether this message still points into a live buffer.
func (m Message) Valid() bool { return m.buf != nil }

// Kind returns the message's routing discriminator.
func (m Message) Kind() Kind {
	return m.style.Kind(m.buf.Bytes(), m.off)
}

// DataLen returns the number of bytes following the header for this
// frame (implementation detail shared with the reader/writer; most
// callers want PayloadBytes instead).
func (m Message) DataLen() int {
	return m.style.DataLen(m.buf.Bytes(), m.off)
}

// Span returns the full on-wire byte range for this frame, header
// included.
func (m Message) Span() []byte {
	dataLen := m.DataLen()
	total := m.style.Size() + dataLen
	return m.buf.Bytes()[m.off : m.off+total]
}

// PayloadBytes returns the opaque payload region, excluding the
// header and, for the tagged dialect, the embedded kind tag.
func (m Message) PayloadBytes() []byte {
	dataLen := m.DataLen()
	start, length := m.style.PayloadSpan(m.off, dataLen)
	buf := m.buf.Bytes()
	return buf[start : start+length]
}

// Buffer returns the underlying buffer handle without transferring
// ownership.
func (m Message) Buffer() api.Buffer { return m.buf }

// Clone returns a new Message sharing the same underlying storage,
// with its own reference on the buffer.
func (m Message) Clone() Message {
	return Message{buf: m.buf.Clone(), off: m.off, style: m.style}
}

// Release drops this Message's reference to its buffer. After Release
// the Message must not be used.
func (m Message) Release() {
	if m.buf != nil {
		m.buf.Release()
	}
}
