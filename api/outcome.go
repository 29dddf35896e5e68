// Package api
// Author: momentics@gmail.com
//
// Tagged result transferred out of a suspended computation.

package api

// Outcome is either Done(result) or Blocked(wait descriptor), never both.
type Outcome[T any] struct {
	value   T
	wait    WaitDescriptor
	blocked bool
}

// Done builds a completed outcome.
func Done[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// Blocked builds a suspended outcome.
func Blocked[T any](wd WaitDescriptor) Outcome[T] {
	return Outcome[T]{wait: wd, blocked: true}
}

// IsDone reports whether the outcome carries a final result.
func (o Outcome[T]) IsDone() bool { return !o.blocked }

// Result returns the final value and true, or the zero value and false when
// the outcome is blocked.
func (o Outcome[T]) Result() (T, bool) {
	if o.blocked {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Wait returns the wait descriptor and true for a blocked outcome.
func (o Outcome[T]) Wait() (WaitDescriptor, bool) {
	return o.wait, o.blocked
}
