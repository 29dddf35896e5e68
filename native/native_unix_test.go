//go:build unix

package native_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-resume/api"
	"github.com/momentics/hioload-resume/native"
)

func TestReadWouldBlockIsAnError(t *testing.T) {
	a, b, err := native.Socketpair()
	require.NoError(t, err)
	defer native.Close(a)
	defer native.Close(b)

	n, err := native.Runtime{}.Read(a, make([]byte, 8))
	assert.Zero(t, n)
	require.Error(t, err)
	assert.True(t, api.IsWouldBlock(err))
	assert.True(t, errors.Is(err, unix.EAGAIN))

	var ioErr *api.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.Equal(t, a, ioErr.Fd)
}

func TestRoundTripAndEndOfStream(t *testing.T) {
	a, b, err := native.Socketpair()
	require.NoError(t, err)
	defer native.Close(a)

	var rt api.Runtime = native.Runtime{}
	n, err := rt.Write(b, []byte{0x41, 0x42, 0x43})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	buf := make([]byte, 8)
	n, err = rt.Read(a, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41, 0x42, 0x43}, buf[:n])

	require.NoError(t, native.Close(b))
	n, err = rt.Read(a, buf)
	require.NoError(t, err)
	assert.Zero(t, n, "closed peer reads as end-of-stream")
}

func TestHardFailureIsNotWouldBlock(t *testing.T) {
	a, b, err := native.Socketpair()
	require.NoError(t, err)
	require.NoError(t, native.Close(a))
	require.NoError(t, native.Close(b))

	_, err = native.Runtime{}.Write(a, []byte("x"))
	require.Error(t, err)
	assert.False(t, api.IsWouldBlock(err))
	assert.ErrorIs(t, err, unix.EBADF)
}

func TestSetNonblock(t *testing.T) {
	var fds [2]int
	require.NoError(t, unix.Pipe(fds[:]))
	defer unix.Close(fds[0])
	defer unix.Close(fds[1])

	require.NoError(t, native.SetNonblock(fds[0]))
	_, err := native.Runtime{}.Read(fds[0], make([]byte, 1))
	assert.True(t, api.IsWouldBlock(err))
}
