// File: reactor/reactor.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral readiness event type.

package reactor

import (
	"github.com/momentics/hioload-resume/api"
)

// Event contains readiness information returned by Poller.Wait.
type Event struct {
	Token  api.Token    // Token given at registration.
	Ready  api.Interest // Conditions that became ready.
	Hangup bool         // Peer hung up or the descriptor reported an error.
}

// EventSource is the waiting half of a poller.
type EventSource interface {
	api.Registrar
	Deregister(fd api.Fd) error
	Wait(events []Event, timeoutMs int) (int, error)
	Close() error
}

// WakeToken is reserved for the poller's wake-up descriptor and must not be
// used to register caller descriptors.
const WakeToken = ^api.Token(0)

// Waker is implemented by event sources whose Wait can be cut short from
// another goroutine.
type Waker interface {
	// Wake makes a blocked Wait, or the next one, return early.
	Wake() error
}

var (
	_ EventSource = (*Poller)(nil)
	_ Waker       = (*Poller)(nil)
)
