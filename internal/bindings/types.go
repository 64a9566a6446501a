package bindings

import "errors"

// Context is the native InteropContext value returned by tc_create_context.
type Context uint32

// Response identifies a native response buffer. The value is a key into the
// library's registry, never the raw native pointer.
type Response uint64

// Payload is the pair of strings returned by tc_read_json_response. At most
// one of the two is expected to be non-empty.
type Payload struct {
	Result string
	Error  string
}

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. Callers can use this to fall back to safer defaults.
	ErrNotBuilt = errors.New("tonclient/internal/bindings: native bindings not built")

	// ErrNotFound reports that the dynamic loader could not locate the module.
	ErrNotFound = errors.New("tonclient/internal/bindings: module not found")

	// ErrPermission reports that the dynamic loader refused to map the module
	// for permission or security reasons.
	ErrPermission = errors.New("tonclient/internal/bindings: permission denied")

	// ErrSymbol reports that the module loaded but lacks one of the required
	// tc_* exports.
	ErrSymbol = errors.New("tonclient/internal/bindings: missing symbol")

	// ErrLoad covers every other dynamic loader failure (bad image, wrong
	// architecture, unresolved dependencies).
	ErrLoad = errors.New("tonclient/internal/bindings: load failed")
)

// Symbols lists the exports every module must provide, in resolution order.
var Symbols = []string{
	"tc_create_context",
	"tc_destroy_context",
	"tc_json_request",
	"tc_read_json_response",
	"tc_destroy_json_response",
}
