//go:build linux

package reactor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-resume/api"
	"github.com/momentics/hioload-resume/native"
	"github.com/momentics/hioload-resume/reactor"
)

func TestReadableEdgeTriggered(t *testing.T) {
	p, err := reactor.New()
	require.NoError(t, err)
	defer p.Close()

	a, b, err := native.Socketpair()
	require.NoError(t, err)
	defer native.Close(a)
	defer native.Close(b)

	const token = api.Token(1<<40 | 7)
	require.NoError(t, p.Register(a, api.Readable, token, true))

	events := make([]reactor.Event, 4)
	n, err := p.Wait(events, 0)
	require.NoError(t, err)
	assert.Zero(t, n, "nothing to read yet")

	_, err = native.Runtime{}.Write(b, []byte("hi"))
	require.NoError(t, err)
	n, err = p.Wait(events, 1000)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, token, events[0].Token)
	assert.True(t, events[0].Ready.IsReadable())
	assert.False(t, events[0].Hangup)

	n, err = p.Wait(events, 0)
	require.NoError(t, err)
	assert.Zero(t, n, "edge-triggered registration reports a transition once")

	require.NoError(t, p.Reregister(a, api.Readable, token+1, true))
	n, err = p.Wait(events, 1000)
	require.NoError(t, err)
	require.Equal(t, 1, n, "re-arming reports pending readiness again")
	assert.Equal(t, token+1, events[0].Token)
}

func TestWritableInterest(t *testing.T) {
	p, err := reactor.New()
	require.NoError(t, err)
	defer p.Close()

	a, b, err := native.Socketpair()
	require.NoError(t, err)
	defer native.Close(a)
	defer native.Close(b)

	require.NoError(t, p.Register(a, api.Writable, 3, true))
	events := make([]reactor.Event, 1)
	n, err := p.Wait(events, 1000)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, api.Writable, events[0].Ready&api.Writable)
	require.NoError(t, p.Deregister(a))
}

func TestRegistrationErrors(t *testing.T) {
	p, err := reactor.New()
	require.NoError(t, err)
	defer p.Close()

	assert.Error(t, p.Register(-1, api.Readable, 1, true))
	assert.Error(t, p.Deregister(12345))

	a, b, err := native.Socketpair()
	require.NoError(t, err)
	defer native.Close(a)
	defer native.Close(b)
	assert.Error(t, p.Reregister(a, api.Readable, 1, true), "reregister without register")

	_, err = p.Wait(nil, 0)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
}

func TestHangupReported(t *testing.T) {
	p, err := reactor.New()
	require.NoError(t, err)
	defer p.Close()

	a, b, err := native.Socketpair()
	require.NoError(t, err)
	defer native.Close(a)

	require.NoError(t, p.Register(a, api.Readable, 9, true))
	require.NoError(t, native.Close(b))

	events := make([]reactor.Event, 2)
	n, err := p.Wait(events, 1000)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.True(t, events[0].Ready.IsReadable())
}

func TestWakeInterruptsWait(t *testing.T) {
	p, err := reactor.New()
	require.NoError(t, err)
	defer p.Close()

	events := make([]reactor.Event, 2)
	require.NoError(t, p.Wake())
	n, err := p.Wait(events, 1000)
	require.NoError(t, err)
	assert.Zero(t, n, "wake-ups are not reported as events")

	n, err = p.Wait(events, 0)
	require.NoError(t, err)
	assert.Zero(t, n, "wake-up is consumed")

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Wait(events, -1)
	}()
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, p.Wake())
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait was not interrupted")
	}
}
