package tonclient

var (
	// Version is populated at build time via ldflags.
	Version = "v0.0.0-in-progress"
)

// WrapperVersion returns the semantic version of this Go module.
func WrapperVersion() string {
	return Version
}

// NativeVersion asks the loaded module for its version through ctx.
func NativeVersion(ctx *Context) (string, error) {
	v, _, err := ctx.Call(MethodVersion, "")
	return v, err
}
