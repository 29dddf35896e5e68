// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package resumable runs a synchronous-looking function cooperatively under an
// external readiness reactor.
//
// The function receives an api.Runtime. Whenever one of its Read or Write
// calls would block, the function is parked at that call and New or Resume
// returns to the caller with the descriptor and interest it waits on. The
// caller registers that descriptor with its reactor, waits for readiness and
// calls Resume; the parked call retries the syscall and the function carries
// on from there.
//
//	v, r := resumable.New(func(rt api.Runtime) int {
//		n, _ := rt.Write(fd, payload)
//		return n
//	})
//	if r == nil {
//		return v // completed without blocking
//	}
//	defer r.Close()
//	_ = r.Register(poller, token)
//	for {
//		poller.Wait(events, -1)
//		if v, done := r.Resume(); done {
//			return v
//		}
//		_ = r.Reregister(poller, token)
//	}
//
// The execution context is a dedicated goroutine that only runs while the
// caller is blocked in New or Resume, so at most one side runs at a time.
// A Resumable may be handed to another goroutine but must not be used from
// two goroutines at once.
package resumable
