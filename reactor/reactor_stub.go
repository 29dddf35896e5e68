//go:build !linux
// +build !linux

// File: reactor/reactor_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for unsupported platforms.

package reactor

import "github.com/momentics/hioload-resume/api"

// Poller is unavailable on this platform.
type Poller struct{}

// New returns an error for unsupported platforms.
func New() (*Poller, error) {
	return nil, api.ErrNotSupported
}

func (*Poller) Register(api.Fd, api.Interest, api.Token, bool) error   { return api.ErrNotSupported }
func (*Poller) Reregister(api.Fd, api.Interest, api.Token, bool) error { return api.ErrNotSupported }
func (*Poller) Deregister(api.Fd) error                                { return api.ErrNotSupported }
func (*Poller) Wait([]Event, int) (int, error)                         { return 0, api.ErrNotSupported }
func (*Poller) Close() error                                           { return api.ErrNotSupported }
func (*Poller) Wake() error                                            { return api.ErrNotSupported }
