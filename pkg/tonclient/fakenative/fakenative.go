package fakenative

import (
	"fmt"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/hsiuhsiu/tonclient-go/pkg/tonclient"
)

// DefaultVersion is the version the default "version" handler reports.
const DefaultVersion = "1.0.0"

// Handler produces the payload for one request.
type Handler func(ctx tonclient.ContextHandle, paramsJSON string) tonclient.Payload

// Result returns a handler that always answers with the result JSON raw.
func Result(raw string) Handler {
	return func(tonclient.ContextHandle, string) tonclient.Payload {
		return tonclient.Payload{Result: raw}
	}
}

// Failure returns a handler that always answers with a native error.
func Failure(code tonclient.ErrorCode, message string) Handler {
	return func(tonclient.ContextHandle, string) tonclient.Payload {
		return tonclient.Payload{Error: errorJSON("client", code, message)}
	}
}

// Echo answers with the params JSON it received.
func Echo(_ tonclient.ContextHandle, paramsJSON string) tonclient.Payload {
	return tonclient.Payload{Result: paramsJSON}
}

// Stats is a snapshot of the handle counters.
type Stats struct {
	ContextsCreated    int
	ContextsDestroyed  int
	ResponsesIssued    int
	ResponsesRead      int
	ResponsesDestroyed int

	// Invalid counts operations on handles the module never issued or had
	// already released.
	Invalid int
}

// Outstanding returns the responses issued and not yet destroyed.
func (s Stats) Outstanding() int {
	return s.ResponsesIssued - s.ResponsesDestroyed
}

// Request is one recorded call to JSONRequest.
type Request struct {
	Context tonclient.ContextHandle
	Method  string
	Params  string
}

type response struct {
	payload tonclient.Payload
	read    bool
}

// Module is an in-memory native module. It is safe for concurrent use.
type Module struct {
	mu sync.Mutex

	handlers map[string]Handler
	contexts map[tonclient.ContextHandle]bool
	pending  map[tonclient.ResponseHandle]*response
	requests []Request

	nextContext  tonclient.ContextHandle
	nextResponse tonclient.ResponseHandle

	panicOnRead bool
	stats       Stats
}

var _ tonclient.Native = (*Module)(nil)

// New returns a Module with the default handlers installed.
func New() *Module {
	m := &Module{
		handlers:     make(map[string]Handler),
		contexts:     make(map[tonclient.ContextHandle]bool),
		pending:      make(map[tonclient.ResponseHandle]*response),
		nextContext:  1,
		nextResponse: 1,
	}
	m.handlers[tonclient.MethodVersion] = Result(`"` + DefaultVersion + `"`)
	m.handlers[tonclient.MethodSetup] = Result("null")
	return m
}

// Handle installs h for method, replacing any previous handler.
func (m *Module) Handle(method string, h Handler) {
	m.mu.Lock()
	m.handlers[method] = h
	m.mu.Unlock()
}

// PanicOnRead makes every ReadJSONResponse panic after the response has been
// marked read.
func (m *Module) PanicOnRead(enabled bool) {
	m.mu.Lock()
	m.panicOnRead = enabled
	m.mu.Unlock()
}

func (m *Module) CreateContext() tonclient.ContextHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	h := m.nextContext
	m.nextContext++
	m.contexts[h] = true
	m.stats.ContextsCreated++
	return h
}

func (m *Module) DestroyContext(h tonclient.ContextHandle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.contexts[h] {
		m.stats.Invalid++
		return
	}
	delete(m.contexts, h)
	m.stats.ContextsDestroyed++
}

// JSONRequest runs the handler for method immediately and keeps its payload
// until the response is destroyed. Requests on unknown contexts answer with
// error code 3.
func (m *Module) JSONRequest(ctx tonclient.ContextHandle, method, paramsJSON string) tonclient.ResponseHandle {
	m.mu.Lock()
	m.requests = append(m.requests, Request{Context: ctx, Method: method, Params: paramsJSON})
	live := m.contexts[ctx]
	h, found := m.handlers[method]
	m.mu.Unlock()

	var p tonclient.Payload
	switch {
	case !live:
		p = tonclient.Payload{Error: errorJSON("client", 3, fmt.Sprintf("invalid context handle: %d", ctx))}
	case !found:
		p = tonclient.Payload{Error: errorJSON("client", 1, "unknown method: "+method)}
	default:
		p = h(ctx, paramsJSON)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	rh := m.nextResponse
	m.nextResponse++
	m.pending[rh] = &response{payload: p}
	m.stats.ResponsesIssued++
	return rh
}

func (m *Module) ReadJSONResponse(h tonclient.ResponseHandle) tonclient.Payload {
	m.mu.Lock()
	r, ok := m.pending[h]
	if !ok {
		m.stats.Invalid++
		m.mu.Unlock()
		return tonclient.Payload{}
	}
	r.read = true
	m.stats.ResponsesRead++
	panicking := m.panicOnRead
	m.mu.Unlock()

	if panicking {
		panic(fmt.Sprintf("fakenative: read of response %d", h))
	}
	return r.payload
}

func (m *Module) DestroyJSONResponse(h tonclient.ResponseHandle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pending[h]; !ok {
		m.stats.Invalid++
		return
	}
	delete(m.pending, h)
	m.stats.ResponsesDestroyed++
}

// Outstanding reports responses issued and not yet destroyed.
func (m *Module) Outstanding() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// LiveContexts reports contexts created and not yet destroyed.
func (m *Module) LiveContexts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.contexts)
}

func (m *Module) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// Requests returns a copy of every request received so far.
func (m *Module) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

func errorJSON(source string, code tonclient.ErrorCode, message string) string {
	data, err := json.Marshal(tonclient.NativeError{Source: source, Code: code, Message: message})
	if err != nil {
		return fmt.Sprintf(`{"source":%q,"code":%d,"message":"unencodable error"}`, source, int(code))
	}
	return string(data)
}
