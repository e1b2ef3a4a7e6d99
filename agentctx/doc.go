// File: agentctx/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package agentctx is the per-agent runtime envelope: a pending
// GamePacket slot (drop-old coalescing), a latest-BallPrediction slot,
// a FIFO inbound MatchComm mailbox, and the service loop that drives a
// user Agent's callbacks. Every context except the primary one runs its
// loop on its own goroutine; the primary context's loop runs inline on
// the caller (the transport's read goroutine), grounded on
// original_source/library/BotContext.cpp's serviceLoop/service split.
package agentctx
