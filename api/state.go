// File: api/state.go
// Author: momentics <momentics@gmail.com>
//
// Lifecycle states of a resumable computation.

package api

// State enumerates the lifecycle of a resumable computation.
type State int

const (
	StateActive State = iota
	StateBlocked
	StateCompleted
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateBlocked:
		return "blocked"
	case StateCompleted:
		return "completed"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further resume is allowed.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateClosed
}
