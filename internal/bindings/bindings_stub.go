//go:build !cgo

package bindings

// Stub implementations for non-cgo builds. They allow the package to compile
// but Open always reports ErrNotBuilt, so no Library value is ever usable.

type Library struct{}

func Open(string) (*Library, error) {
	return nil, ErrNotBuilt
}

func (l *Library) Path() string { return "" }

func (l *Library) CreateContext() Context { return 0 }

func (l *Library) DestroyContext(Context) {}

func (l *Library) JSONRequest(Context, string, string) Response { return 0 }

func (l *Library) ReadJSONResponse(Response) Payload { return Payload{} }

func (l *Library) DestroyJSONResponse(Response) {}

func (l *Library) Outstanding() int { return 0 }
