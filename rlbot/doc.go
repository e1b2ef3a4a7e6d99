// File: rlbot/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package rlbot is the top-level façade, the Go rendering of
// original_source/library/BotManagerImpl.cpp's public entry points
// (run/connect/disconnect) and the teacher's facade/hioload.go
// (aggregate-and-wire-the-lower-layers) shape. It is the only package
// that reads RLBOT_AGENT_ID, RLBOT_SERVER_IP, RLBOT_SERVER_PORT, and
// RLBOT_LOG_LEVEL from the environment; every package underneath it
// takes explicit constructor parameters.
package rlbot
