// File: transport/address.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package transport

import (
	"fmt"
	"net"

	"github.com/RLBot/go-interface/api"
)

// DefaultServerIP and DefaultServerPort match spec.md §6's transport
// defaults, used by package rlbot when RLBOT_SERVER_IP / RLBOT_SERVER_PORT
// are unset.
const (
	DefaultServerIP   = "127.0.0.1"
	DefaultServerPort = 23234
)

// socketBufferBytes is SO_RCVBUF/SO_SNDBUF = 4 * 65536, matching the
// original's SOCKET_BUFFER_SIZE.
const socketBufferBytes = 4 * 65536

// Dial resolves host:port and opens a TCP connection tuned with
// TCP_NODELAY and the oversized send/receive buffers spec.md §6 calls
// for. Non-blocking mode is implicit: Go's netpoller always operates
// file descriptors non-blockingly.
func Dial(host string, port int) (*net.TCPConn, error) {
	addr, err := net.ResolveTCPAddr("tcp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return nil, fmt.Errorf("%w: resolve %s:%d: %v", api.ErrTransportSetup, host, port, err)
	}

	conn, err := net.DialTCP("tcp", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", api.ErrTransportSetup, addr, err)
	}

	if err := tuneSocket(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func tuneSocket(conn *net.TCPConn) error {
	if err := conn.SetNoDelay(true); err != nil {
		return fmt.Errorf("%w: set TCP_NODELAY: %v", api.ErrTransportSetup, err)
	}
	if err := conn.SetReadBuffer(socketBufferBytes); err != nil {
		return fmt.Errorf("%w: set SO_RCVBUF: %v", api.ErrTransportSetup, err)
	}
	if err := conn.SetWriteBuffer(socketBufferBytes); err != nil {
		return fmt.Errorf("%w: set SO_SNDBUF: %v", api.ErrTransportSetup, err)
	}
	return nil
}
