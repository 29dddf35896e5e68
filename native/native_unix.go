//go:build unix

// File: native/native_unix.go
// Author: momentics <momentics@gmail.com>
//
// Direct runtime over read(2)/write(2) for Unix-like systems.

package native

import (
	"github.com/momentics/hioload-resume/api"
	"golang.org/x/sys/unix"
)

// Runtime implements api.Runtime with one syscall per call.
type Runtime struct{}

var _ api.Runtime = Runtime{}

// Read reads from fd into p.
func (Runtime) Read(fd api.Fd, p []byte) (int, error) {
	for {
		n, err := unix.Read(fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, wrap("read", fd, err)
		}
		return n, nil
	}
}

// Write writes p to fd.
func (Runtime) Write(fd api.Fd, p []byte) (int, error) {
	for {
		n, err := unix.Write(fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, wrap("write", fd, err)
		}
		return n, nil
	}
}

func wrap(op string, fd api.Fd, err error) error {
	return &api.IOError{
		Op:         op,
		Fd:         fd,
		Err:        err,
		WouldBlock: err == unix.EAGAIN || err == unix.EWOULDBLOCK,
	}
}

// SetNonblock switches fd to non-blocking mode.
func SetNonblock(fd api.Fd) error {
	return unix.SetNonblock(fd, true)
}

// Socketpair returns a connected pair of non-blocking stream sockets.
func Socketpair() (a, b api.Fd, err error) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return -1, -1, err
	}
	for _, fd := range fds {
		if err := unix.SetNonblock(fd, true); err != nil {
			unix.Close(fds[0])
			unix.Close(fds[1])
			return -1, -1, err
		}
	}
	return fds[0], fds[1], nil
}

// Close closes fd.
func Close(fd api.Fd) error {
	return unix.Close(fd)
}
