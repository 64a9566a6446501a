// Package fakenative provides an in-memory tonclient.Native for tests and
// examples.
//
// A Module answers requests from a table of handlers keyed by method name and
// counts every context and response it issues, so tests can assert that the
// bridge released everything it acquired:
//
//	mod := fakenative.New()
//	mod.Handle("tvm.get", fakenative.Result(`{"output":[1,2]}`))
//
//	b := tonclient.NewBridge(mod, nil)
//	c := b.OpenContext()
//	v, _, _ := c.Call("tvm.get", "{}")
//	_ = c.Close()
//
//	stats := mod.Stats() // stats.Outstanding() == 0
//
// # Defaults
//
// A new Module answers "version" with the quoted JSON string "1.0.0" and
// "setup" with null. Unknown methods get an error payload with code 1, the
// same shape the native engine reports.
//
// # Limitations
//
// Handlers run synchronously on the calling goroutine. The module never
// reuses context or response handles, so stale handles are detectable.
package fakenative
