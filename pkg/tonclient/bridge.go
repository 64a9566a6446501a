package tonclient

import (
	"context"

	"github.com/google/uuid"

	"github.com/hsiuhsiu/tonclient-go/pkg/tonclient/logging"
)

// Bridge exposes the native ABI of a loaded module. Its methods are
// synchronous and add no locking of their own; whether concurrent requests on
// one context are safe is up to the module.
type Bridge struct {
	native Native
	log    logging.Logger
}

// NewBridge wraps an already loaded module. A nil logger discards output.
func NewBridge(native Native, logger logging.Logger) *Bridge {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Bridge{native: native, log: logger.With("component", "bridge")}
}

// Native returns the module the bridge calls into.
func (b *Bridge) Native() Native { return b.native }

// CreateContext returns the handle issued by the native module verbatim. No
// value is treated as a failure sentinel; a handle is provisionally valid
// until a later call on it fails.
func (b *Bridge) CreateContext() ContextHandle {
	return b.native.CreateContext()
}

// DestroyContext releases a context. The handle must not be used afterward.
func (b *Bridge) DestroyContext(h ContextHandle) {
	b.native.DestroyContext(h)
}

// JSONRequest forwards method and params unmodified and returns the handle
// of the native response buffer. The caller owns the handle: exactly one
// ReadJSONResponse, then exactly one DestroyJSONResponse.
func (b *Bridge) JSONRequest(h ContextHandle, method, paramsJSON string) ResponseHandle {
	return b.native.JSONRequest(h, method, paramsJSON)
}

// ReadJSONResponse returns the raw response text: the error JSON when the
// engine reported one, otherwise the result JSON. No rewriting is applied.
func (b *Bridge) ReadJSONResponse(rh ResponseHandle) string {
	return b.native.ReadJSONResponse(rh).Text()
}

// ReadPayload is ReadJSONResponse keeping result and error apart.
func (b *Bridge) ReadPayload(rh ResponseHandle) Payload {
	return b.native.ReadJSONResponse(rh)
}

// DestroyJSONResponse releases the native buffer behind rh.
func (b *Bridge) DestroyJSONResponse(rh ResponseHandle) {
	b.native.DestroyJSONResponse(rh)
}

// Request performs dispatch, read and destroy as one operation and returns
// the raw response text. The destroy runs even if the read panics.
func (b *Bridge) Request(h ContextHandle, method, paramsJSON string) string {
	return b.RequestPayload(h, method, paramsJSON).Text()
}

// RequestPayload is Request keeping result and error apart.
func (b *Bridge) RequestPayload(h ContextHandle, method, paramsJSON string) Payload {
	ctx := context.Background()
	id := uuid.NewString()
	b.log.Debug(ctx, "dispatch", "request_id", id, "context", uint32(h), "method", method, logging.Redacted("params"))

	rh := b.native.JSONRequest(h, method, paramsJSON)
	defer b.native.DestroyJSONResponse(rh)

	p := b.native.ReadJSONResponse(rh)
	b.log.Debug(ctx, "response", "request_id", id, "method", method, "failed", p.Failed(), "bytes", len(p.Text()))
	return p
}

// Call is Request followed by Transform. ok == false means the observed
// result is the absence of a value.
func (b *Bridge) Call(h ContextHandle, method, paramsJSON string) (string, bool) {
	return Transform(method, b.Request(h, method, paramsJSON))
}

// Outstanding reports how many responses the module has issued that were
// not destroyed yet, when the module tracks it.
func (b *Bridge) Outstanding() (int, bool) {
	t, ok := b.native.(interface{ Outstanding() int })
	if !ok {
		return 0, false
	}
	return t.Outstanding(), true
}

// WithContext opens a context, runs fn, and destroys the context when fn
// returns or panics.
func (b *Bridge) WithContext(fn func(*Context) error) error {
	c := b.OpenContext()
	defer func() { _ = c.Close() }()
	return fn(c)
}
