// File: resumable/resumable.go
// Author: momentics <momentics@gmail.com>
//
// Resumable computation: construction, resume state machine and reactor
// registration of the current wait descriptor.

package resumable

import (
	"runtime"
	"sync/atomic"

	"github.com/momentics/hioload-resume/api"
)

// Func is a user function. It is invoked once and must not keep rt after it
// returns.
type Func[T any] func(rt api.Runtime) T

// Resumable is a computation parked on a would-block condition.
type Resumable[T any] struct {
	ctx     *execContext[T]
	opts    Options
	cleanup runtime.Cleanup

	state       api.State
	wait        api.WaitDescriptor
	suspensions int
	busy        atomic.Bool
}

// New runs f until it completes or first blocks.
//
// When f completes without blocking, New returns its result and a nil
// Resumable; the execution context is already gone. Otherwise New returns
// the zero value and a Resumable in the blocked state. A panic in f is
// re-raised on the calling goroutine.
func New[T any](f Func[T], opts ...Option) (T, *Resumable[T]) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	c := newExecContext[T]()
	rt := &suspendingRuntime[T]{ctx: c, sys: o.Syscalls, log: o.Logger}
	o.Observer.Started()
	c.start(func() T { return f(rt) }, o)

	m := c.recv()
	if m.panicked {
		c.wait()
		o.Observer.Completed(0)
		panic(m.recovered)
	}
	if v, ok := m.outcome.Result(); ok {
		c.wait()
		o.Observer.Completed(0)
		return v, nil
	}

	wd, _ := m.outcome.Wait()
	r := &Resumable[T]{
		ctx:         c,
		opts:        o,
		state:       api.StateBlocked,
		wait:        wd,
		suspensions: 1,
	}
	// Dropping r without Close still unwinds the parked goroutine.
	r.cleanup = runtime.AddCleanup(r, func(c *execContext[T]) { c.abandon() }, c)
	o.Observer.Suspended(wd)
	return *new(T), r
}

// Resume continues the computation from the call it is parked in.
//
// It returns (result, true) once the function completes, or (zero, false)
// after the next suspension, in which case Wait reports the new descriptor.
// Resuming a completed or closed computation, or resuming from two
// goroutines at once, panics with an *api.Error wrapping api.ErrCompleted,
// api.ErrClosed or api.ErrConcurrentUse.
func (r *Resumable[T]) Resume() (T, bool) {
	r.acquire()
	defer r.busy.Store(false)

	var zero T
	switch r.state {
	case api.StateCompleted:
		panic(api.Misuse(api.ErrCompleted).WithContext("suspensions", r.suspensions))
	case api.StateClosed:
		panic(api.Misuse(api.ErrClosed).WithContext("suspensions", r.suspensions))
	}

	r.opts.Observer.Resumed(r.wait)
	r.state = api.StateActive
	m := r.ctx.next()
	if m.panicked {
		r.finish()
		r.opts.Observer.Completed(r.suspensions)
		panic(m.recovered)
	}
	if wd, blocked := m.outcome.Wait(); blocked {
		r.state = api.StateBlocked
		r.wait = wd
		r.suspensions++
		r.opts.Observer.Suspended(wd)
		return zero, false
	}

	v, _ := m.outcome.Result()
	r.finish()
	r.opts.Observer.Completed(r.suspensions)
	return v, true
}

func (r *Resumable[T]) finish() {
	r.state = api.StateCompleted
	r.wait = api.WaitDescriptor{}
	r.cleanup.Stop()
	r.ctx.wait()
}

func (r *Resumable[T]) acquire() {
	if !r.busy.CompareAndSwap(false, true) {
		panic(api.Misuse(api.ErrConcurrentUse))
	}
}

// Wait returns the descriptor the computation is blocked on. It is the zero
// value once the computation is no longer blocked.
func (r *Resumable[T]) Wait() api.WaitDescriptor { return r.wait }

// State reports the lifecycle state.
func (r *Resumable[T]) State() api.State { return r.state }

// Suspensions reports how many times the computation has blocked.
func (r *Resumable[T]) Suspensions() int { return r.suspensions }

// Register asks reg to watch the current wait descriptor, edge-triggered,
// under token. The descriptor stays owned by the caller.
func (r *Resumable[T]) Register(reg api.Registrar, token api.Token) error {
	if r.state != api.StateBlocked {
		return api.Misuse(api.ErrNotBlocked).WithContext("state", r.state.String())
	}
	return reg.Register(r.wait.Fd, r.wait.Interest, token, true)
}

// Reregister re-arms an existing registration with the current wait
// descriptor. Edge-triggered reactors need this after every notification.
func (r *Resumable[T]) Reregister(reg api.Registrar, token api.Token) error {
	if r.state != api.StateBlocked {
		return api.Misuse(api.ErrNotBlocked).WithContext("state", r.state.String())
	}
	return reg.Reregister(r.wait.Fd, r.wait.Interest, token, true)
}

// Close abandons a blocked computation. The parked goroutine unwinds with
// runtime.Goexit, so deferred calls in the user function run but the
// function never returns a result. Reads and writes made by those deferred
// calls do not suspend: a would-block is returned to them as an error.
// Close on a completed or closed computation is a no-op.
func (r *Resumable[T]) Close() error {
	r.acquire()
	defer r.busy.Store(false)

	if r.state.Terminal() {
		return nil
	}
	wd := r.wait
	r.state = api.StateClosed
	r.wait = api.WaitDescriptor{}
	r.cleanup.Stop()
	r.ctx.abandon()
	r.ctx.wait()
	r.opts.Logger.Debug("computation abandoned", "fd", wd.Fd, "interest", wd.Interest)
	r.opts.Observer.Closed(wd)
	return nil
}
