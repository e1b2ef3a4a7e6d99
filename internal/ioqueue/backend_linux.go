// File: internal/ioqueue/backend_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux completion-facility probe. Mirrors the probing shape of the
// teacher's (now removed) transport_linux_uring.go: attempt a minimal
// io_uring_setup, and report failure rather than panic so the caller
// always has a working fallback. transport.Transport calls this once
// per connection and reports the result via
// api.TransportFeatures.NativeCompletion; actual socket I/O still goes
// through Go's netpoller, matching the teacher's own
// fallback-to-blocking-syscalls precedent.

package ioqueue

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// sysIOURingSetup is SYS_IO_URING_SETUP on amd64/arm64; golang.org/x/sys/unix
// does not export it as a named constant.
const sysIOURingSetup = 425

// ioURingParams mirrors struct io_uring_params, sized generously; the
// probe only needs the kernel to accept the structure, not to use any
// field of it.
type ioURingParams struct {
	_ [128]byte
}

// ProbeNativeCompletionQueue reports whether this kernel supports
// io_uring, purely informational for TransportFeatures.NativeCompletion.
func ProbeNativeCompletionQueue() bool {
	var params ioURingParams
	fd, _, errno := unix.Syscall(sysIOURingSetup, 8, uintptr(unsafe.Pointer(&params)), 0)
	if errno != 0 {
		return false
	}
	unix.Close(int(fd))
	return true
}
