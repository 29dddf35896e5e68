// File: resumable/runtime.go
// Author: momentics <momentics@gmail.com>
//
// Suspension-aware runtime handed to user functions.

package resumable

import (
	"log/slog"

	"github.com/momentics/hioload-resume/api"
)

// suspendingRuntime performs syscalls through sys and parks the execution
// context on would-block. After a resume the same syscall is retried.
type suspendingRuntime[T any] struct {
	ctx *execContext[T]
	sys api.Runtime
	log *slog.Logger
}

func (rt *suspendingRuntime[T]) Read(fd api.Fd, p []byte) (int, error) {
	return rt.retry(fd, api.Readable, func() (int, error) { return rt.sys.Read(fd, p) })
}

func (rt *suspendingRuntime[T]) Write(fd api.Fd, p []byte) (int, error) {
	return rt.retry(fd, api.Writable, func() (int, error) { return rt.sys.Write(fd, p) })
}

func (rt *suspendingRuntime[T]) retry(fd api.Fd, interest api.Interest, op func() (int, error)) (int, error) {
	if rt.ctx.finished.Load() {
		return 0, api.Misuse(api.ErrCompleted).WithContext("fd", fd)
	}
	for {
		n, err := op()
		if err == nil {
			return n, nil
		}
		if !api.IsWouldBlock(err) {
			return n, err
		}
		// Deferred calls of an abandoned computation have no one to resume them.
		if rt.ctx.stopping() {
			return n, err
		}
		wd := api.WaitDescriptor{Fd: fd, Interest: interest}
		rt.log.Debug("suspending", "fd", fd, "interest", interest)
		rt.ctx.yield(wd)
	}
}
