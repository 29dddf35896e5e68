// File: api/reactor.go
// Author: momentics <momentics@gmail.com>
//
// Defines the abstract binding to an external readiness reactor.
// The core only registers descriptors; polling stays with the caller.

package api

// Token is an opaque caller value attached to a registration and reported
// back with readiness events.
type Token uint64

// Registrar must associate a descriptor with a readiness reactor.
// Implementations must not take ownership of fd or close it.
type Registrar interface {
	// Register starts watching fd for interest. With edge set the reactor
	// reports each transition to ready once and must be re-armed.
	Register(fd Fd, interest Interest, token Token, edge bool) error

	// Reregister replaces the interest and token of an existing registration.
	Reregister(fd Fd, interest Interest, token Token, edge bool) error
}
