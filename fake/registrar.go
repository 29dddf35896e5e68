// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync"

	"github.com/momentics/hioload-resume/api"
)

// Registration is one recorded Register or Reregister call.
type Registration struct {
	Fd       api.Fd
	Interest api.Interest
	Token    api.Token
	Edge     bool
	Re       bool
}

// Registrar records registrations and optionally fails them.
type Registrar struct {
	mu    sync.Mutex
	Calls []Registration
	Err   error
}

var _ api.Registrar = (*Registrar)(nil)

func (r *Registrar) Register(fd api.Fd, interest api.Interest, token api.Token, edge bool) error {
	return r.record(Registration{Fd: fd, Interest: interest, Token: token, Edge: edge})
}

func (r *Registrar) Reregister(fd api.Fd, interest api.Interest, token api.Token, edge bool) error {
	return r.record(Registration{Fd: fd, Interest: interest, Token: token, Edge: edge, Re: true})
}

func (r *Registrar) record(reg Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Calls = append(r.Calls, reg)
	return nil
}

// Last returns the most recent successful registration.
func (r *Registrar) Last() (Registration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Calls) == 0 {
		return Registration{}, false
	}
	return r.Calls[len(r.Calls)-1], true
}
