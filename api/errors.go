// Package api
// Author: momentics <momentics@gmail.com>
//
// Error taxonomy for the RLBot client runtime. Sentinels are checked
// with errors.Is; call sites wrap them with fmt.Errorf("...: %w", err)
// to add context without losing the sentinel.

package api

import "errors"

// Sentinel errors, one per taxonomy entry.
var (
	// ErrTransportSetup covers socket creation, bind, connect, and
	// socket-option failures. Fatal for the connection attempt.
	ErrTransportSetup = errors.New("transport: setup failed")

	// ErrTransportIO covers a read/write completion with a negative
	// result, or the peer closing its end. Triggers teardown.
	ErrTransportIO = errors.New("transport: io failed")

	// ErrDecodeValidation covers a payload that failed schema
	// validation. The message is dropped and the stream continues.
	ErrDecodeValidation = errors.New("protocol: payload failed validation")

	// ErrFrameOverflow covers an attempt to encode a payload longer
	// than 65535 bytes. Rejected at encode time; no frame is emitted.
	ErrFrameOverflow = errors.New("protocol: frame payload exceeds 65535 bytes")

	// ErrAgentProtocol covers a controllable/configuration mismatch:
	// missing player, wrong team, duplicate index, non-bot variety.
	ErrAgentProtocol = errors.New("agentmgr: controllable/configuration mismatch")

	// ErrQuitRequested is not a failure; it marks cooperative shutdown
	// so it can travel the same error-return path as real failures.
	ErrQuitRequested = errors.New("transport: quit requested")
)
