package tonclient

import (
	"runtime"
	"strings"
)

// Dynamic library suffixes per platform family.
const (
	SuffixUnix    = ".so"
	SuffixDarwin  = ".dylib"
	SuffixWindows = ".dll"
)

// PlatformSuffix maps an operating system identifier to the dynamic library
// suffix of that platform. It accepts GOOS values as well as descriptive
// names such as "Windows 10" or "Mac OS X". Unrecognized identifiers get the
// Unix suffix.
func PlatformSuffix(osID string) string {
	id := strings.ToLower(strings.TrimSpace(osID))
	switch {
	case strings.Contains(id, "windows"), strings.HasPrefix(id, "win32"), strings.HasPrefix(id, "win64"):
		return SuffixWindows
	case strings.Contains(id, "darwin"), strings.HasPrefix(id, "mac"), id == "ios":
		return SuffixDarwin
	default:
		return SuffixUnix
	}
}

// HostSuffix is PlatformSuffix for the running binary.
func HostSuffix() string {
	return PlatformSuffix(runtime.GOOS)
}

// LibraryFileName returns the name the platform search path expects for a
// module base name: "lib<name>.so", "lib<name>.dylib" or "<name>.dll".
func LibraryFileName(osID, name string) string {
	suffix := PlatformSuffix(osID)
	if suffix == SuffixWindows {
		return name + suffix
	}
	return "lib" + name + suffix
}

// ResourceName returns the bundled resource name for a module base name,
// "<name><suffix>", which is also the extracted file name.
func ResourceName(osID, name string) string {
	return name + PlatformSuffix(osID)
}
