package tonclient_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/tonclient-go/pkg/tonclient"
	"github.com/hsiuhsiu/tonclient-go/pkg/tonclient/fakenative"
)

func TestContextCloseIdempotent(t *testing.T) {
	b, mod := newBridge(t)
	c := b.OpenContext()

	_, err := c.Handle()
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	s := mod.Stats()
	assert.Equal(t, 1, s.ContextsDestroyed)
	assert.Zero(t, s.Invalid)

	_, err = c.Handle()
	assert.ErrorIs(t, err, tonclient.ErrContextClosed)
	_, err = c.Request(tonclient.MethodVersion, "")
	assert.ErrorIs(t, err, tonclient.ErrContextClosed)
	_, _, err = c.Call(tonclient.MethodVersion, "")
	assert.ErrorIs(t, err, tonclient.ErrContextClosed)
	_, err = c.Dispatch(tonclient.MethodVersion, "")
	assert.ErrorIs(t, err, tonclient.ErrContextClosed)
	assert.Empty(t, mod.Requests())
}

func TestContextCall(t *testing.T) {
	b, _ := newBridge(t)
	c := b.OpenContext()
	defer c.Close()

	v, ok, err := c.Call(tonclient.MethodVersion, "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1.0.0", v)

	v, err = tonclient.NativeVersion(c)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v)
}

func TestWithContextPropagatesError(t *testing.T) {
	b, mod := newBridge(t)
	sentinel := errors.New("stop")

	err := b.WithContext(func(*tonclient.Context) error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 0, mod.LiveContexts())
}

func TestResponseLifecycle(t *testing.T) {
	b, mod := newBridge(t)
	c := b.OpenContext()
	defer c.Close()

	r, err := c.Dispatch(tonclient.MethodVersion, "")
	require.NoError(t, err)
	assert.Equal(t, tonclient.MethodVersion, r.Method())
	assert.Equal(t, 1, mod.Outstanding())

	text, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, `"1.0.0"`, text)

	_, err = r.Read()
	assert.ErrorIs(t, err, tonclient.ErrResponseConsumed)

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	assert.Equal(t, 0, mod.Outstanding())
	assert.Equal(t, 1, mod.Stats().ResponsesDestroyed)

	_, err = r.Payload()
	assert.ErrorIs(t, err, tonclient.ErrResponseClosed)
}

func TestResponseCloseWithoutRead(t *testing.T) {
	b, mod := newBridge(t)
	mod.Handle("noop", fakenative.Result("{}"))
	c := b.OpenContext()
	defer c.Close()

	r, err := c.Dispatch("noop", "{}")
	require.NoError(t, err)
	require.NoError(t, r.Close())

	s := mod.Stats()
	assert.Equal(t, 0, s.ResponsesRead)
	assert.Equal(t, 1, s.ResponsesDestroyed)
}
