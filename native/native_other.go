//go:build !unix

// File: native/native_other.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for platforms without raw descriptor I/O.

package native

import "github.com/momentics/hioload-resume/api"

// Runtime implements api.Runtime; every call fails on this platform.
type Runtime struct{}

var _ api.Runtime = Runtime{}

func (Runtime) Read(fd api.Fd, _ []byte) (int, error) {
	return 0, &api.IOError{Op: "read", Fd: fd, Err: api.ErrNotSupported}
}

func (Runtime) Write(fd api.Fd, _ []byte) (int, error) {
	return 0, &api.IOError{Op: "write", Fd: fd, Err: api.ErrNotSupported}
}

func SetNonblock(api.Fd) error { return api.ErrNotSupported }

func Socketpair() (a, b api.Fd, err error) { return -1, -1, api.ErrNotSupported }

func Close(api.Fd) error { return api.ErrNotSupported }
