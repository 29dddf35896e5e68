//go:build linux
// +build linux

// File: reactor/reactor_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux epoll(7)-based poller.

package reactor

import (
	"encoding/binary"
	"fmt"

	"github.com/momentics/hioload-resume/api"
	"golang.org/x/sys/unix"
)

// Poller is an epoll instance with an eventfd registered under WakeToken.
type Poller struct {
	epfd   int
	wakefd int
	raw    []unix.EpollEvent
}

// New constructs a new epoll poller.
func New() (*Poller, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("epoll create: %w", err)
	}
	wakefd, err := unix.Eventfd(0, unix.EFD_NONBLOCK|unix.EFD_CLOEXEC)
	if err != nil {
		unix.Close(epfd)
		return nil, fmt.Errorf("eventfd: %w", err)
	}
	ev := epollEvent(api.Readable, WakeToken, false)
	if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, wakefd, &ev); err != nil {
		unix.Close(wakefd)
		unix.Close(epfd)
		return nil, fmt.Errorf("epoll ctl add eventfd: %w", err)
	}
	return &Poller{epfd: epfd, wakefd: wakefd}, nil
}

// Wake interrupts Wait. It may be called from any goroutine until Close.
func (p *Poller) Wake() error {
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], 1)
	if _, err := unix.Write(p.wakefd, buf[:]); err != nil && err != unix.EAGAIN {
		return fmt.Errorf("eventfd write: %w", err)
	}
	return nil
}

func (p *Poller) drainWake() {
	var buf [8]byte
	_, _ = unix.Read(p.wakefd, buf[:])
}

// Register adds fd to the epoll interest list.
func (p *Poller) Register(fd api.Fd, interest api.Interest, token api.Token, edge bool) error {
	ev := epollEvent(interest, token, edge)
	if err := unix.EpollCtl(p.epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		return fmt.Errorf("epoll ctl add fd=%d: %w", fd, err)
	}
	return nil
}

// Reregister modifies an existing registration and re-arms it.
func (p *Poller) Reregister(fd api.Fd, interest api.Interest, token api.Token, edge bool) error {
	ev := epollEvent(interest, token, edge)
	if err := unix.EpollCtl(p.epfd, unix.EPOLL_CTL_MOD, fd, &ev); err != nil {
		return fmt.Errorf("epoll ctl mod fd=%d: %w", fd, err)
	}
	return nil
}

// Deregister removes fd. Call it before closing fd.
func (p *Poller) Deregister(fd api.Fd) error {
	if err := unix.EpollCtl(p.epfd, unix.EPOLL_CTL_DEL, fd, nil); err != nil {
		return fmt.Errorf("epoll ctl del fd=%d: %w", fd, err)
	}
	return nil
}

// Wait blocks up to timeoutMs (negative blocks indefinitely) and fills
// events. An interrupted wait returns 0, nil; so does a Wake with no other
// readiness pending.
func (p *Poller) Wait(events []Event, timeoutMs int) (int, error) {
	if len(events) == 0 {
		return 0, api.ErrInvalidArgument
	}
	if len(p.raw) < len(events) {
		p.raw = make([]unix.EpollEvent, len(events))
	}
	n, err := unix.EpollWait(p.epfd, p.raw[:len(events)], timeoutMs)
	if err != nil {
		if err == unix.EINTR {
			return 0, nil
		}
		return 0, fmt.Errorf("epoll wait: %w", err)
	}
	m := 0
	for i := 0; i < n; i++ {
		ev := translate(p.raw[i])
		if ev.Token == WakeToken {
			p.drainWake()
			continue
		}
		events[m] = ev
		m++
	}
	return m, nil
}

// Close closes the epoll instance. Registered descriptors are untouched.
func (p *Poller) Close() error {
	werr := unix.Close(p.wakefd)
	if err := unix.Close(p.epfd); err != nil {
		return err
	}
	return werr
}

// The token is split over the 64-bit epoll data union.
func epollEvent(interest api.Interest, token api.Token, edge bool) unix.EpollEvent {
	var ev unix.EpollEvent
	if interest.IsReadable() {
		ev.Events |= unix.EPOLLIN | unix.EPOLLRDHUP
	}
	if interest.IsWritable() {
		ev.Events |= unix.EPOLLOUT
	}
	if edge {
		ev.Events |= unix.EPOLLET
	}
	ev.Fd = int32(uint32(token))
	ev.Pad = int32(uint32(token >> 32))
	return ev
}

func translate(raw unix.EpollEvent) Event {
	ev := Event{
		Token: api.Token(uint32(raw.Fd)) | api.Token(uint32(raw.Pad))<<32,
	}
	if raw.Events&(unix.EPOLLIN|unix.EPOLLRDHUP) != 0 {
		ev.Ready |= api.Readable
	}
	if raw.Events&unix.EPOLLOUT != 0 {
		ev.Ready |= api.Writable
	}
	if raw.Events&(unix.EPOLLERR|unix.EPOLLHUP) != 0 {
		ev.Hangup = true
		ev.Ready |= api.Readable | api.Writable
	}
	return ev
}
