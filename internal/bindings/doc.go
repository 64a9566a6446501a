// Package bindings is the only place in the module that imports "C".
//
// It maps a tc_* native module with dlopen (POSIX) or LoadLibrary (Windows),
// resolves its five exports and calls them through small C trampolines,
// because the ABI passes tc_string_t and tc_response_t structs by value.
//
// Builds without cgo get stubs where Open reports ErrNotBuilt. Native
// response pointers never leave this package; callers receive Response keys
// into a registry instead.
package bindings
