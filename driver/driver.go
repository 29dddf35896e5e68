// File: driver/driver.go
// Author: momentics <momentics@gmail.com>
//
// Single-computation driver: register the wait descriptor, wait for
// readiness, resume, repeat until the function completes.

package driver

import (
	"context"
	"log/slog"

	"github.com/momentics/hioload-resume/api"
	"github.com/momentics/hioload-resume/control"
	"github.com/momentics/hioload-resume/reactor"
	"github.com/momentics/hioload-resume/resumable"
)

// cancelPollMs bounds each wait when a cancellable context meets a source
// that cannot be woken.
const cancelPollMs = 100

type Option func(*options)

type options struct {
	ctx        context.Context
	logger     *slog.Logger
	store      *control.ConfigStore
	resumeOpts []resumable.Option
}

// WithContext stops the loop when ctx is done. Run then closes the
// computation and returns ctx.Err(). A source implementing reactor.Waker is
// woken on cancellation; any other source is polled with a bounded timeout.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the driver logger; it is also passed to the computation.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConfig reads batch size and poll timeout from store on every wait, so
// updates apply to running drivers.
func WithConfig(store *control.ConfigStore) Option {
	return func(o *options) {
		if store != nil {
			o.store = store
		}
	}
}

// WithResumableOptions forwards options to resumable.New.
func WithResumableOptions(opts ...resumable.Option) Option {
	return func(o *options) { o.resumeOpts = append(o.resumeOpts, opts...) }
}

// Run executes f as a resumable computation on src and returns its result.
//
// Every descriptor the computation blocks on is registered under token and
// deregistered before Run returns; descriptors are never closed. Errors come
// only from the reactor or the context; I/O errors belong to f.
func Run[T any](src reactor.EventSource, token api.Token, f resumable.Func[T], opts ...Option) (T, error) {
	o := options{
		ctx:    context.Background(),
		logger: slog.New(slog.DiscardHandler),
		store:  control.NewConfigStore(control.DefaultConfig()),
	}
	for _, fn := range opts {
		fn(&o)
	}

	ropts := append([]resumable.Option{resumable.WithLogger(o.logger)}, o.resumeOpts...)
	v, r := resumable.New(f, ropts...)
	if r == nil {
		o.logger.Debug("completed without blocking", "token", token)
		return v, nil
	}
	defer r.Close()

	var zero T
	registered := make(map[api.Fd]bool)
	defer func() {
		for fd := range registered {
			if err := src.Deregister(fd); err != nil {
				o.logger.Warn("deregister failed", "fd", fd, "err", err)
			}
		}
	}()
	arm := func() error {
		wd := r.Wait()
		o.logger.Debug("blocked", "token", token, "fd", wd.Fd, "interest", wd.Interest)
		if registered[wd.Fd] {
			return r.Reregister(src, token)
		}
		if err := r.Register(src, token); err != nil {
			return err
		}
		registered[wd.Fd] = true
		return nil
	}
	if err := arm(); err != nil {
		return zero, err
	}

	cancellable := o.ctx.Done() != nil
	waker, canWake := src.(reactor.Waker)
	if cancellable && canWake {
		woke := make(chan struct{})
		stop := context.AfterFunc(o.ctx, func() {
			defer close(woke)
			if err := waker.Wake(); err != nil {
				o.logger.Warn("wake failed", "token", token, "err", err)
			}
		})
		// src may be closed once Run returns, so a started Wake must finish first.
		defer func() {
			if !stop() {
				<-woke
			}
		}()
	}

	var events []reactor.Event
	for {
		if err := o.ctx.Err(); err != nil {
			o.logger.Debug("cancelled", "token", token, "err", err)
			return zero, err
		}
		cfg := o.store.Snapshot()
		if len(events) != cfg.EventBatch {
			events = make([]reactor.Event, cfg.EventBatch)
		}
		timeout := cfg.PollTimeoutMs
		if cancellable && !canWake && (timeout < 0 || timeout > cancelPollMs) {
			timeout = cancelPollMs
		}
		n, err := src.Wait(events, timeout)
		if err != nil {
			return zero, err
		}
		if err := o.ctx.Err(); err != nil {
			o.logger.Debug("cancelled", "token", token, "err", err)
			return zero, err
		}
		if !signaled(events[:n], token) {
			continue
		}
		if v, done := r.Resume(); done {
			o.logger.Debug("completed", "token", token, "suspensions", r.Suspensions())
			return v, nil
		}
		if err := arm(); err != nil {
			return zero, err
		}
	}
}

func signaled(events []reactor.Event, token api.Token) bool {
	for _, ev := range events {
		if ev.Token == token {
			return true
		}
	}
	return false
}
