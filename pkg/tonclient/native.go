package tonclient

import "github.com/hsiuhsiu/tonclient-go/internal/bindings"

// ContextHandle is the opaque session handle issued by the native module.
// The bridge does not reserve any value as "invalid".
type ContextHandle uint32

// ResponseHandle identifies one native response buffer. It is valid for a
// single read followed by a single destroy.
type ResponseHandle uint64

// Payload is the pair of JSON texts a native response carries.
type Payload struct {
	Result string
	Error  string
}

// Text returns what the read path reports to callers: the error JSON when
// present, otherwise the result JSON.
func (p Payload) Text() string {
	if p.Error != "" {
		return p.Error
	}
	return p.Result
}

// Failed reports whether the native engine answered with an error.
func (p Payload) Failed() bool { return p.Error != "" }

// Native is the ABI surface of a loaded module. Implementations must not add
// locking; concurrency guarantees belong to the module itself.
type Native interface {
	CreateContext() ContextHandle
	DestroyContext(ContextHandle)
	JSONRequest(ctx ContextHandle, method, paramsJSON string) ResponseHandle
	ReadJSONResponse(ResponseHandle) Payload
	DestroyJSONResponse(ResponseHandle)
}

// libraryAdapter bridges the bindings Library and the public Native interface
// so exported signatures never mention internal types.
type libraryAdapter struct {
	lib *bindings.Library
}

func (a libraryAdapter) CreateContext() ContextHandle {
	return ContextHandle(a.lib.CreateContext())
}

func (a libraryAdapter) DestroyContext(ctx ContextHandle) {
	a.lib.DestroyContext(bindings.Context(ctx))
}

func (a libraryAdapter) JSONRequest(ctx ContextHandle, method, paramsJSON string) ResponseHandle {
	return ResponseHandle(a.lib.JSONRequest(bindings.Context(ctx), method, paramsJSON))
}

func (a libraryAdapter) ReadJSONResponse(h ResponseHandle) Payload {
	p := a.lib.ReadJSONResponse(bindings.Response(h))
	return Payload{Result: p.Result, Error: p.Error}
}

func (a libraryAdapter) DestroyJSONResponse(h ResponseHandle) {
	a.lib.DestroyJSONResponse(bindings.Response(h))
}

// Outstanding reports responses issued by the module and not yet destroyed.
func (a libraryAdapter) Outstanding() int {
	return a.lib.Outstanding()
}

// OpenLibrary maps the module at path with the platform dynamic loader.
// It is the default Opener.
func OpenLibrary(path string) (Native, error) {
	lib, err := bindings.Open(path)
	if err != nil {
		return nil, RemapError(err)
	}
	return libraryAdapter{lib: lib}, nil
}
