package tonclient

import (
	"runtime"
	"sync"
)

// Context owns a native context handle. Close destroys it exactly once;
// every later method call reports ErrContextClosed.
//
// Requests hold a shared lock, so they run concurrently with each other but
// never overlap the destroy.
type Context struct {
	bridge *Bridge

	mu     sync.RWMutex
	handle ContextHandle
	closed bool
}

// OpenContext creates a native context owned by the returned value. A
// finalizer destroys it if the caller forgets to Close.
func (b *Bridge) OpenContext() *Context {
	c := &Context{bridge: b, handle: b.CreateContext()}
	runtime.SetFinalizer(c, func(c *Context) { _ = c.Close() })
	return c
}

// Handle returns the raw handle for use with the low-level Bridge methods.
func (c *Context) Handle() (ContextHandle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return 0, ErrContextClosed
	}
	return c.handle, nil
}

// Close destroys the native context. It is idempotent.
func (c *Context) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	runtime.SetFinalizer(c, nil)
	c.bridge.DestroyContext(c.handle)
	c.closed = true
	c.handle = 0
	return nil
}

// Request returns the raw response text of method.
func (c *Context) Request(method, paramsJSON string) (string, error) {
	p, err := c.RequestPayload(method, paramsJSON)
	if err != nil {
		return "", err
	}
	return p.Text(), nil
}

// RequestPayload returns the raw result and error JSON of method.
func (c *Context) RequestPayload(method, paramsJSON string) (Payload, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return Payload{}, ErrContextClosed
	}
	return c.bridge.RequestPayload(c.handle, method, paramsJSON), nil
}

// Call returns the normalized response of method; ok == false means the
// response is the absence of a value.
func (c *Context) Call(method, paramsJSON string) (value string, ok bool, err error) {
	raw, err := c.Request(method, paramsJSON)
	if err != nil {
		return "", false, err
	}
	value, ok = Transform(method, raw)
	return value, ok, nil
}

// Dispatch sends method and returns the owning Response, which the caller
// must Close.
func (c *Context) Dispatch(method, paramsJSON string) (*Response, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, ErrContextClosed
	}
	rh := c.bridge.JSONRequest(c.handle, method, paramsJSON)
	return newResponse(c.bridge, method, rh), nil
}
