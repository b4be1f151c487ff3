// Package platform provides platform detection for locating the xBRZ shared library.
package platform

import "runtime"

// LibraryExtension is the file extension for shared libraries on this platform.
var LibraryExtension string

// LibraryPrefix is the prefix for shared library names on this platform.
var LibraryPrefix string

func init() {
	LibraryPrefix, LibraryExtension = naming(runtime.GOOS)
}

func naming(goos string) (prefix, ext string) {
	switch goos {
	case "darwin", "ios":
		return "lib", ".dylib"
	case "windows":
		return "", ".dll"
	default: // linux, freebsd, etc.
		return "lib", ".so"
	}
}

// LibraryName returns the platform-specific library filename.
//
// Examples:
//   - Linux:   LibraryName("xbrz_shared") -> "libxbrz_shared.so"
//   - macOS:   LibraryName("xbrz_shared") -> "libxbrz_shared.dylib"
//   - Windows: LibraryName("xbrz_shared") -> "xbrz_shared.dll"
func LibraryName(name string) string {
	return LibraryPrefix + name + LibraryExtension
}

// LibraryNameFor is LibraryName for an explicit GOOS value.
func LibraryNameFor(goos, name string) string {
	prefix, ext := naming(goos)
	return prefix + name + ext
}

// GOOS returns the current operating system.
func GOOS() string {
	return runtime.GOOS
}

// GOARCH returns the current architecture.
func GOARCH() string {
	return runtime.GOARCH
}
