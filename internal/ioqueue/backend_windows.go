// File: internal/ioqueue/backend_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows completion-facility probe, mirroring the teacher's (now
// removed) transport_windows.go IOCP usage: create then immediately
// close a completion port to confirm the facility is available.

package ioqueue

import "golang.org/x/sys/windows"

// ProbeNativeCompletionQueue reports whether CreateIoCompletionPort
// succeeds on this system, purely informational for TransportFeatures.
func ProbeNativeCompletionQueue() bool {
	h, err := windows.CreateIoCompletionPort(windows.InvalidHandle, 0, 0, 0)
	if err != nil {
		return false
	}
	windows.CloseHandle(h)
	return true
}
