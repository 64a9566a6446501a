package bindings

import (
	"fmt"
	"strings"
)

// Windows system error codes relevant to LoadLibrary.
const (
	winErrorFileNotFound = 2
	winErrorPathNotFound = 3
	winErrorAccessDenied = 5
	winErrorModNotFound  = 126
)

var (
	notFoundMarkers = []string{
		"no such file",
		"cannot open shared object file",
		"image not found",
		"not found",
		"file not found",
	}
	permissionMarkers = []string{
		"permission denied",
		"operation not permitted",
		"not allowed",
		"code signature",
	}
)

// classifyDlerror maps a dlerror() message to one of the bindings error
// classes. Permission markers take precedence because some loaders report
// "not found" for files they refused to read.
func classifyDlerror(path, msg string) error {
	lower := strings.ToLower(msg)
	for _, m := range permissionMarkers {
		if strings.Contains(lower, m) {
			return fmt.Errorf("%w: %s: %s", ErrPermission, path, msg)
		}
	}
	for _, m := range notFoundMarkers {
		if strings.Contains(lower, m) {
			return fmt.Errorf("%w: %s: %s", ErrNotFound, path, msg)
		}
	}
	return fmt.Errorf("%w: %s: %s", ErrLoad, path, msg)
}

// classifyWinError maps a GetLastError() code from LoadLibrary.
func classifyWinError(path string, code uint32) error {
	switch code {
	case winErrorFileNotFound, winErrorPathNotFound, winErrorModNotFound:
		return fmt.Errorf("%w: %s: error %d", ErrNotFound, path, code)
	case winErrorAccessDenied:
		return fmt.Errorf("%w: %s: error %d", ErrPermission, path, code)
	default:
		return fmt.Errorf("%w: %s: error %d", ErrLoad, path, code)
	}
}
