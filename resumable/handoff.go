// File: resumable/handoff.go
// Author: momentics <momentics@gmail.com>
//
// Execution context and the typed handoff that moves outcomes across it.

package resumable

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-resume/api"
)

// errGoexit is raised on the driving goroutine when the user function leaves
// through runtime.Goexit instead of returning.
var errGoexit = errors.New("resumable: user function called runtime.Goexit")

// inFlight counts outcomes sent but not yet received.
var inFlight atomic.Int64

// InFlight reports the number of outcomes that crossed the boundary and have
// not been consumed. It is zero whenever no New or Resume call is running.
func InFlight() int64 { return inFlight.Load() }

// message is the single value crossing from the execution context to the
// driving goroutine. Either outcome or panicked is meaningful.
type message[T any] struct {
	outcome   api.Outcome[T]
	recovered any
	panicked  bool
}

// execContext is the goroutine backing one computation. It only references
// its own channels so that an unreachable Resumable can still release it.
type execContext[T any] struct {
	out    chan message[T]
	resume chan struct{}
	stop   chan struct{}
	exited chan struct{}

	stopOnce sync.Once
	finished atomic.Bool
}

func newExecContext[T any]() *execContext[T] {
	return &execContext[T]{
		out:    make(chan message[T]),
		resume: make(chan struct{}),
		stop:   make(chan struct{}),
		exited: make(chan struct{}),
	}
}

// start launches fn on the context goroutine. The caller must recv next.
func (c *execContext[T]) start(fn func() T, opts Options) {
	go func() {
		defer close(c.exited)
		done := false
		defer func() {
			if done {
				return
			}
			r := recover()
			if c.stopping() {
				if r != nil {
					opts.Logger.Warn("panic while unwinding abandoned computation", "panic", r)
				}
				return
			}
			c.finished.Store(true)
			if r == nil {
				r = errGoexit
			}
			_ = c.send(message[T]{recovered: r, panicked: true})
		}()

		v := fn()
		c.finished.Store(true)
		done = true
		_ = c.send(message[T]{outcome: api.Done(v)})
	}()
}

// send hands m to the driver. It reports false, without delivering m, once
// the context has been abandoned.
func (c *execContext[T]) send(m message[T]) bool {
	inFlight.Add(1)
	select {
	case c.out <- m:
		return true
	case <-c.stop:
		inFlight.Add(-1)
		return false
	}
}

func (c *execContext[T]) recv() message[T] {
	m := <-c.out
	inFlight.Add(-1)
	return m
}

// yield runs on the context goroutine: it hands the blocked outcome to the
// driver and parks until resumed. An abandoned context unwinds here.
func (c *execContext[T]) yield(wd api.WaitDescriptor) {
	if !c.send(message[T]{outcome: api.Blocked[T](wd)}) {
		runtime.Goexit()
	}
	select {
	case <-c.resume:
	case <-c.stop:
		runtime.Goexit()
	}
}

// next runs on the driving goroutine and transfers control into the parked
// context until it yields or finishes.
func (c *execContext[T]) next() message[T] {
	c.resume <- struct{}{}
	return c.recv()
}

func (c *execContext[T]) abandon() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *execContext[T]) stopping() bool {
	select {
	case <-c.stop:
		return true
	default:
		return false
	}
}

// wait blocks until the context goroutine has exited.
func (c *execContext[T]) wait() { <-c.exited }
