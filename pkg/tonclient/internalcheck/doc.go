// Package internalcheck holds repository policy tests for the tonclient
// packages.
//
// The tests load the public packages with golang.org/x/tools/go/packages and
// verify that native interop stays behind internal/bindings: no public file
// imports "C" or "unsafe", and no exported identifier exposes a bindings
// type. The package has no API and should not be imported.
package internalcheck
