package tonclient

import "strings"

const (
	outputPrefix = `{"output":[`
	outputStrip  = `{"output":`
	nullLiteral  = "null"
)

// transform rewrites a raw response. ok == false means the observed result is
// the absence of a value.
type transform func(raw string) (observed string, ok bool)

// transforms is keyed strictly by method name; payload shape alone never
// triggers a rewrite.
var transforms = map[string]transform{
	MethodSetup:   setupTransform,
	MethodVersion: versionTransform,
	MethodTVMGet:  tvmGetTransform,
}

// Transform applies the method-keyed normalization rules to a raw response
// text. Methods without a rule pass through unchanged.
func Transform(method, raw string) (string, bool) {
	fn, found := transforms[method]
	if !found {
		return raw, true
	}
	return fn(raw)
}

func setupTransform(raw string) (string, bool) {
	if raw == nullLiteral {
		return "", false
	}
	return raw, true
}

func versionTransform(raw string) (string, bool) {
	s := strings.TrimPrefix(raw, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s, true
}

func tvmGetTransform(raw string) (string, bool) {
	if !strings.HasPrefix(raw, outputPrefix) {
		return raw, true
	}
	s := strings.TrimPrefix(raw, outputStrip)
	s = strings.TrimSuffix(s, "}")
	return s, true
}
