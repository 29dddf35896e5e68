// File: resumable/options.go
// Author: momentics <momentics@gmail.com>
//
// Functional options and lifecycle observer hooks.

package resumable

import (
	"log/slog"

	"github.com/momentics/hioload-resume/api"
	"github.com/momentics/hioload-resume/native"
)

// Observer receives lifecycle notifications. Calls are made on the goroutine
// driving the computation.
type Observer interface {
	Started()
	Suspended(wd api.WaitDescriptor)
	Resumed(wd api.WaitDescriptor)
	Completed(suspensions int)
	Closed(wd api.WaitDescriptor)
}

type Option func(*Options)

type Options struct {
	Syscalls api.Runtime
	Logger   *slog.Logger
	Observer Observer
}

func defaultOptions() Options {
	return Options{
		Syscalls: native.Runtime{},
		Logger:   slog.New(slog.DiscardHandler),
		Observer: nopObserver{},
	}
}

// WithSyscalls replaces the syscall layer the suspension-aware runtime
// retries against. Defaults to native.Runtime.
func WithSyscalls(rt api.Runtime) Option {
	return func(o *Options) {
		if rt != nil {
			o.Syscalls = rt
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

type nopObserver struct{}

func (nopObserver) Started()                     {}
func (nopObserver) Suspended(api.WaitDescriptor) {}
func (nopObserver) Resumed(api.WaitDescriptor)   {}
func (nopObserver) Completed(int)                {}
func (nopObserver) Closed(api.WaitDescriptor)    {}

// MultiObserver forwards every hook to each of obs in order.
func MultiObserver(obs ...Observer) Observer {
	return multiObserver(append([]Observer(nil), obs...))
}

type multiObserver []Observer

func (m multiObserver) Started() {
	for _, o := range m {
		o.Started()
	}
}

func (m multiObserver) Suspended(wd api.WaitDescriptor) {
	for _, o := range m {
		o.Suspended(wd)
	}
}

func (m multiObserver) Resumed(wd api.WaitDescriptor) {
	for _, o := range m {
		o.Resumed(wd)
	}
}

func (m multiObserver) Completed(suspensions int) {
	for _, o := range m {
		o.Completed(suspensions)
	}
}

func (m multiObserver) Closed(wd api.WaitDescriptor) {
	for _, o := range m {
		o.Closed(wd)
	}
}
