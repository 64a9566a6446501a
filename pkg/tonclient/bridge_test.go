package tonclient_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/tonclient-go/pkg/tonclient"
	"github.com/hsiuhsiu/tonclient-go/pkg/tonclient/fakenative"
)

func newBridge(t *testing.T) (*tonclient.Bridge, *fakenative.Module) {
	t.Helper()
	mod := fakenative.New()
	return tonclient.NewBridge(mod, nil), mod
}

func TestBridgeContextRoundTrip(t *testing.T) {
	b, mod := newBridge(t)

	h := b.CreateContext()
	assert.Equal(t, 1, mod.LiveContexts())
	b.DestroyContext(h)
	assert.Equal(t, 0, mod.LiveContexts())
	assert.Zero(t, mod.Stats().Invalid)
}

func TestBridgeLowLevelRequest(t *testing.T) {
	b, mod := newBridge(t)
	mod.Handle("echo", fakenative.Echo)
	h := b.CreateContext()
	defer b.DestroyContext(h)

	rh := b.JSONRequest(h, "echo", `{"a":1}`)
	assert.Equal(t, 1, mod.Outstanding())
	assert.Equal(t, `{"a":1}`, b.ReadJSONResponse(rh))
	b.DestroyJSONResponse(rh)
	assert.Equal(t, 0, mod.Outstanding())

	reqs := mod.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, fakenative.Request{Context: h, Method: "echo", Params: `{"a":1}`}, reqs[0])
}

func TestBridgeReadPrefersError(t *testing.T) {
	b, mod := newBridge(t)
	mod.Handle("both", func(tonclient.ContextHandle, string) tonclient.Payload {
		return tonclient.Payload{Result: `{"ok":true}`, Error: `{"code":1003}`}
	})
	h := b.CreateContext()
	defer b.DestroyContext(h)

	assert.Equal(t, `{"code":1003}`, b.Request(h, "both", "{}"))
	p := b.RequestPayload(h, "both", "{}")
	assert.Equal(t, `{"ok":true}`, p.Result)
	assert.True(t, p.Failed())
}

func TestBridgeRequestReleasesEveryResponse(t *testing.T) {
	b, mod := newBridge(t)
	mod.Handle(tonclient.MethodTVMGet, fakenative.Result(`{"output":[1]}`))
	h := b.CreateContext()
	defer b.DestroyContext(h)

	const cycles = 200
	for i := 0; i < cycles; i++ {
		b.Request(h, tonclient.MethodTVMGet, "{}")
	}
	s := mod.Stats()
	assert.Equal(t, cycles, s.ResponsesIssued)
	assert.Equal(t, cycles, s.ResponsesDestroyed)
	assert.Equal(t, 0, s.Outstanding())

	n, tracked := b.Outstanding()
	assert.True(t, tracked)
	assert.Equal(t, 0, n)
}

func TestBridgeRequestDestroysOnPanic(t *testing.T) {
	b, mod := newBridge(t)
	mod.PanicOnRead(true)
	h := b.CreateContext()
	defer b.DestroyContext(h)

	assert.Panics(t, func() { b.Request(h, tonclient.MethodVersion, "") })
	assert.Equal(t, 0, mod.Outstanding())
	assert.Equal(t, 1, mod.Stats().ResponsesDestroyed)
}

func TestBridgeCallTransforms(t *testing.T) {
	b, mod := newBridge(t)
	mod.Handle(tonclient.MethodTVMGet, fakenative.Result(`{"output":["0x1"]}`))
	mod.Handle(tonclient.MethodContractsLoad, fakenative.Result(`{"output":["0x1"]}`))
	h := b.CreateContext()
	defer b.DestroyContext(h)

	v, ok := b.Call(h, tonclient.MethodVersion, "")
	assert.True(t, ok)
	assert.Equal(t, fakenative.DefaultVersion, v)

	_, ok = b.Call(h, tonclient.MethodSetup, "{}")
	assert.False(t, ok)

	v, _ = b.Call(h, tonclient.MethodTVMGet, "{}")
	assert.Equal(t, `["0x1"]`, v)

	v, _ = b.Call(h, tonclient.MethodContractsLoad, "{}")
	assert.Equal(t, `{"output":["0x1"]}`, v)

	raw := b.Request(h, tonclient.MethodVersion, "")
	assert.Equal(t, `"1.0.0"`, raw, "Request must not rewrite")
}

func TestBridgeConcurrentContexts(t *testing.T) {
	b, mod := newBridge(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = b.WithContext(func(c *tonclient.Context) error {
				for j := 0; j < 10; j++ {
					if _, err := c.Request(tonclient.MethodVersion, ""); err != nil {
						return err
					}
				}
				return nil
			})
		}()
	}
	wg.Wait()

	s := mod.Stats()
	assert.Equal(t, 16, s.ContextsCreated)
	assert.Equal(t, 16, s.ContextsDestroyed)
	assert.Equal(t, 160, s.ResponsesDestroyed)
	assert.Zero(t, s.Invalid)
}

type untrackedNative struct{ tonclient.Native }

func TestBridgeOutstandingUntracked(t *testing.T) {
	b := tonclient.NewBridge(untrackedNative{fakenative.New()}, nil)
	_, tracked := b.Outstanding()
	assert.False(t, tracked)
}
