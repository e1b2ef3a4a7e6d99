// Package pool
// Author: momentics <momentics@gmail.com>
//
// Sharded, reference-counted buffer pool for frame I/O, plus a generic
// builder pool for encode scratch space. Buffers are clone-shared
// (atomic refcount); release returns them to the shard they came from,
// with a preferred sub-list for kernel-registered buffers. See
// sharded.go and builder.go for implementation details.
package pool
