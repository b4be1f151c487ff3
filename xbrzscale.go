// Package xbrzscale scales pixel art with the xBRZ algorithm by calling the
// native xbrz_shared library through purego, without cgo.
//
// The library is located on first use: XBRZ_LIBRARY_PATH if it names an
// existing file, otherwise the CMake build output next to the executable
// (build/Release, then build), then /usr/local/lib and /usr/lib. Use
// Configure before the first call to change the search.
//
// For most use cases, call ScaleImage with a pixel.Tensor, or ScaleNRGBA with
// an image.Image.
package xbrzscale

import (
	"github.com/obinnaokechukwu/xbrzscale/internal/bindings"
	"golang.org/x/text/encoding/unicode"
)

// Config controls where the shared library is searched for.
type Config = bindings.Config

// LoadState is the lifecycle of the process-wide library handle.
type LoadState = bindings.State

// Load states.
const (
	StateUnloaded = bindings.StateUnloaded
	StateLoading  = bindings.StateLoading
	StateLoaded   = bindings.StateLoaded
	StateFailed   = bindings.StateFailed
)

// EnvLibraryPath is the environment variable that overrides the search.
const EnvLibraryPath = bindings.EnvLibraryPath

// DefaultConfig returns the search configuration used when Configure is
// never called.
func DefaultConfig() Config {
	return bindings.DefaultConfig()
}

// Configure sets the search configuration. It must be called before the
// first Init, ScaleImage or Version call; afterwards it returns
// ErrAlreadyLoaded.
func Configure(cfg Config) error {
	return bindings.Configure(cfg)
}

// Init loads the native library. This is called automatically on first use,
// but can be called explicitly to check for errors early.
// It is safe to call multiple times; a failure is permanent for the process.
func Init() error {
	_, err := bindings.Load()
	return err
}

// IsLoaded returns true if the native library has been successfully loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// State reports the process-wide load state.
func State() LoadState {
	return bindings.CurrentState()
}

// LibraryPath returns the path the native library was loaded from, or "" if
// it is not loaded.
func LibraryPath() string {
	if !bindings.IsLoaded() {
		return ""
	}
	lib, err := bindings.Load()
	if err != nil {
		return ""
	}
	return lib.Path()
}

// Version returns the native library's version string. It loads the
// library if needed and is not cached.
func Version() (string, error) {
	lib, err := bindings.Load()
	if err != nil {
		return "", err
	}
	return VersionWith(lib), nil
}

// VersionWith returns lib's version string decoded as UTF-8. Invalid bytes
// become U+FFFD.
func VersionWith(lib Native) string {
	// The decoder replaces invalid bytes and never reports an error.
	s, _ := unicode.UTF8.NewDecoder().String(lib.Version())
	return s
}
