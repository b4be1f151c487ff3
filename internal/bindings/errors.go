package bindings

import (
	"errors"
	"fmt"
)

// BuildCommand is the command that builds the shared library from the
// project's CMake tree.
const BuildCommand = "cd build && cmake --build . --config Release --target xbrz_shared"

var (
	// ErrLibraryNotFound is wrapped by a LoadError when no candidate path exists.
	ErrLibraryNotFound = errors.New("xbrzscale: xBRZ shared library not found")

	// ErrSymbolNotFound is wrapped by a LoadError when a required entry point is missing.
	ErrSymbolNotFound = errors.New("xbrzscale: symbol not found")

	// ErrUnsupportedPlatform is returned by the loader on platforms without a
	// dynamic loading backend.
	ErrUnsupportedPlatform = errors.New("xbrzscale: dynamic loading not supported on this platform")

	// ErrAlreadyLoaded is returned by Configure once loading has started.
	ErrAlreadyLoaded = errors.New("xbrzscale: library already loaded; configuration is fixed")
)

// LoadError reports that the native library could not be found or opened.
type LoadError struct {
	Path   string // Path attempted; empty when the library was not found
	EnvVar string // Environment variable that overrides the search
	Err    error  // Underlying loader error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Path == "" {
		env := e.EnvVar
		if env == "" {
			env = EnvLibraryPath
		}
		return fmt.Sprintf("%v. Please build it first:\n  %s\nOr set %s environment variable to the library path.",
			ErrLibraryNotFound, BuildCommand, env)
	}
	return fmt.Sprintf("xbrzscale: failed to load xBRZ library from %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}
