package tonclient

import (
	"runtime"
	"sync"
)

// Response owns one native response buffer: at most one read, exactly one
// destroy. Close is safe to defer right after Dispatch.
type Response struct {
	bridge *Bridge
	method string

	mu     sync.Mutex
	handle ResponseHandle
	read   bool
	closed bool
}

func newResponse(b *Bridge, method string, rh ResponseHandle) *Response {
	r := &Response{bridge: b, method: method, handle: rh}
	runtime.SetFinalizer(r, func(r *Response) { _ = r.Close() })
	return r
}

// Method returns the method name the response answers.
func (r *Response) Method() string { return r.method }

// Payload performs the single read of the buffer.
func (r *Response) Payload() (Payload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case r.closed:
		return Payload{}, ErrResponseClosed
	case r.read:
		return Payload{}, ErrResponseConsumed
	}
	r.read = true
	return r.bridge.ReadPayload(r.handle), nil
}

// Read returns the raw response text (error JSON first, then result JSON).
func (r *Response) Read() (string, error) {
	p, err := r.Payload()
	if err != nil {
		return "", err
	}
	return p.Text(), nil
}

// Close destroys the native buffer whether or not it was read. It is
// idempotent.
func (r *Response) Close() error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	runtime.SetFinalizer(r, nil)
	r.bridge.DestroyJSONResponse(r.handle)
	r.closed = true
	return nil
}
