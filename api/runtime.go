// File: api/runtime.go
// Author: momentics <momentics@gmail.com>
//
// I/O capability consumed by user functions. The same contract is served by
// a direct (blocking) runtime and by a suspension-aware runtime.

package api

// Fd identifies an open I/O resource, typically a socket descriptor.
type Fd = int

// Runtime performs read/write on raw descriptors.
//
// Read returns the number of bytes placed in p; 0 means end-of-stream.
// Write returns the number of bytes accepted. Any failure other than
// would-block is reported as an error for the caller to handle.
type Runtime interface {
	Read(fd Fd, p []byte) (int, error)
	Write(fd Fd, p []byte) (int, error)
}

// RuntimeFunc adapts a pair of functions to Runtime.
type RuntimeFunc struct {
	ReadFn  func(fd Fd, p []byte) (int, error)
	WriteFn func(fd Fd, p []byte) (int, error)
}

func (f RuntimeFunc) Read(fd Fd, p []byte) (int, error)  { return f.ReadFn(fd, p) }
func (f RuntimeFunc) Write(fd Fd, p []byte) (int, error) { return f.WriteFn(fd, p) }
