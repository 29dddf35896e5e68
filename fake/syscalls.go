// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, controllable behavior for the runtime and reactor
// contracts.

package fake

import (
	"errors"
	"sync"

	"github.com/eapache/queue"
	"github.com/momentics/hioload-resume/api"
)

// ErrAgain is the errno-like value carried by scripted would-block results.
var ErrAgain = errors.New("resource temporarily unavailable")

// Step is one scripted syscall result.
type Step struct {
	data       []byte
	accept     int
	err        error
	wouldBlock bool
}

// Data scripts a read that delivers b (possibly over several calls when the
// caller's buffer is smaller).
func Data(b []byte) *Step { return &Step{data: append([]byte(nil), b...)} }

// EOF scripts a 0-byte read.
func EOF() *Step { return &Step{} }

// Accept scripts a write that takes at most n bytes.
func Accept(n int) *Step { return &Step{accept: n} }

// AcceptAll scripts a write that takes the whole buffer.
func AcceptAll() *Step { return &Step{accept: -1} }

// WouldBlock scripts a would-block failure.
func WouldBlock() *Step { return &Step{wouldBlock: true} }

// Fail scripts a hard I/O failure.
func Fail(err error) *Step { return &Step{err: err} }

// Syscalls is a scripted api.Runtime. Each descriptor has independent read
// and write FIFOs. An exhausted read FIFO reports end-of-stream; an exhausted
// write FIFO accepts everything.
type Syscalls struct {
	mu      sync.Mutex
	reads   map[api.Fd]*queue.Queue
	writes  map[api.Fd]*queue.Queue
	written map[api.Fd][]byte

	ReadCalls  int
	WriteCalls int
}

var _ api.Runtime = (*Syscalls)(nil)

// NewSyscalls creates an empty script.
func NewSyscalls() *Syscalls {
	return &Syscalls{
		reads:   make(map[api.Fd]*queue.Queue),
		writes:  make(map[api.Fd]*queue.Queue),
		written: make(map[api.Fd][]byte),
	}
}

// ScriptRead appends read results for fd.
func (s *Syscalls) ScriptRead(fd api.Fd, steps ...*Step) *Syscalls {
	s.mu.Lock()
	defer s.mu.Unlock()
	enqueue(s.reads, fd, steps)
	return s
}

// ScriptWrite appends write results for fd.
func (s *Syscalls) ScriptWrite(fd api.Fd, steps ...*Step) *Syscalls {
	s.mu.Lock()
	defer s.mu.Unlock()
	enqueue(s.writes, fd, steps)
	return s
}

func enqueue(m map[api.Fd]*queue.Queue, fd api.Fd, steps []*Step) {
	q, ok := m[fd]
	if !ok {
		q = queue.New()
		m[fd] = q
	}
	for _, st := range steps {
		q.Add(st)
	}
}

// Read implements api.Runtime.
func (s *Syscalls) Read(fd api.Fd, p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ReadCalls++

	q := s.reads[fd]
	if q == nil || q.Length() == 0 {
		return 0, nil
	}
	st := q.Peek().(*Step)
	switch {
	case st.wouldBlock:
		q.Remove()
		return 0, &api.IOError{Op: "read", Fd: fd, Err: ErrAgain, WouldBlock: true}
	case st.err != nil:
		q.Remove()
		return 0, &api.IOError{Op: "read", Fd: fd, Err: st.err}
	}
	n := copy(p, st.data)
	st.data = st.data[n:]
	if len(st.data) == 0 {
		q.Remove()
	}
	return n, nil
}

// Write implements api.Runtime.
func (s *Syscalls) Write(fd api.Fd, p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.WriteCalls++

	n := len(p)
	if q := s.writes[fd]; q != nil && q.Length() > 0 {
		st := q.Remove().(*Step)
		switch {
		case st.wouldBlock:
			return 0, &api.IOError{Op: "write", Fd: fd, Err: ErrAgain, WouldBlock: true}
		case st.err != nil:
			return 0, &api.IOError{Op: "write", Fd: fd, Err: st.err}
		case st.accept >= 0 && st.accept < n:
			n = st.accept
		}
	}
	s.written[fd] = append(s.written[fd], p[:n]...)
	return n, nil
}

// Written returns a copy of everything accepted on fd.
func (s *Syscalls) Written(fd api.Fd) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.written[fd]...)
}

// Pending reports unconsumed scripted steps for fd (reads, writes).
func (s *Syscalls) Pending(fd api.Fd) (reads, writes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q := s.reads[fd]; q != nil {
		reads = q.Length()
	}
	if q := s.writes[fd]; q != nil {
		writes = q.Length()
	}
	return reads, writes
}
