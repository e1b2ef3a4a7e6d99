// Package protocol implements the length-prefixed frame codec shared
// by both RLBot wire dialects: the legacy two-field (type, length)
// header and the newer single-field (length) header with the type
// tagged inside the payload. See header.go, message.go, reader.go and
// writer.go for the read and write paths.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package protocol
