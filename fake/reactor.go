// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync"

	"github.com/eapache/queue"
	"github.com/momentics/hioload-resume/api"
	"github.com/momentics/hioload-resume/reactor"
)

// Reactor is a reactor.EventSource whose readiness is pushed by the test.
// Wait returns queued batches in order and 0 events once drained.
type Reactor struct {
	Registrar

	mu           sync.Mutex
	batches      *queue.Queue
	Deregistered []api.Fd
	Waits        int
	Timeouts     []int
	WaitErr      error
	wakes        int
	Closed       bool
}

var (
	_ reactor.EventSource = (*Reactor)(nil)
	_ reactor.Waker       = (*Reactor)(nil)
)

func NewReactor() *Reactor {
	return &Reactor{batches: queue.New()}
}

// Signal queues one Wait result.
func (r *Reactor) Signal(events ...reactor.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches.Add(events)
}

func (r *Reactor) Deregister(fd api.Fd) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Deregistered = append(r.Deregistered, fd)
	return nil
}

func (r *Reactor) Wait(events []reactor.Event, timeoutMs int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Waits++
	r.Timeouts = append(r.Timeouts, timeoutMs)
	if r.WaitErr != nil {
		return 0, r.WaitErr
	}
	if r.batches.Length() == 0 {
		return 0, nil
	}
	batch := r.batches.Remove().([]reactor.Event)
	return copy(events, batch), nil
}

// Wake counts calls; Wait never blocks, so there is nothing to interrupt.
func (r *Reactor) Wake() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wakes++
	return nil
}

// WakeCount reports Wake calls made so far.
func (r *Reactor) WakeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wakes
}

func (r *Reactor) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Closed = true
	return nil
}
