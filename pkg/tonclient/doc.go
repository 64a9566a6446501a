// Package tonclient is a Go bridge to the TON client native module.
//
// A Loader finds the module once (platform search path first, then a copy
// extracted from a bundled fs.FS) and reports every attempt. Open does this
// with a process-wide Loader, so every call returns the same Bridge. The
// Bridge exposes the five native operations on opaque handles:
//
//	b, err := tonclient.Open(ctx, tonclient.Config{Bundle: assets})
//	if err != nil {
//	    return err // errors.Is(err, tonclient.ErrModuleUnavailable)
//	}
//	c := b.OpenContext()
//	defer c.Close()
//
//	v, _, err := c.Call(tonclient.MethodVersion, "")
//
// Context and Response own their native handles and release them exactly
// once. Bridge.Request and the Call helpers guarantee the response buffer is
// destroyed on every path, including panics.
//
// Responses are opaque JSON text. Three methods get a textual rewrite through
// Transform: "setup" turns "null" into no value, "version" drops the
// surrounding quotes and "tvm.get" unwraps {"output":[...]} to the array.
package tonclient
