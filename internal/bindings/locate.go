package bindings

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/obinnaokechukwu/xbrzscale/internal/platform"
)

// EnvLibraryPath names the environment variable that points directly at the
// shared library file. It takes priority over every search path.
const EnvLibraryPath = "XBRZ_LIBRARY_PATH"

// LibraryBaseName is the library name before platform decoration.
const LibraryBaseName = "xbrz_shared"

// Config controls where the loader looks for the shared library.
type Config struct {
	// EnvVar is consulted first. Empty disables the override.
	EnvVar string

	// LibraryName is the file name probed in every search directory.
	// Empty means platform.LibraryName(LibraryBaseName).
	LibraryName string

	// SearchPaths are directories probed in order.
	SearchPaths []string
}

// DefaultConfig returns the configuration used by the process-wide loader.
func DefaultConfig() Config {
	return Config{
		EnvVar:      EnvLibraryPath,
		LibraryName: platform.LibraryName(LibraryBaseName),
		SearchPaths: DefaultSearchPaths(),
	}
}

func (c Config) libraryName() string {
	if c.LibraryName != "" {
		return c.LibraryName
	}
	return platform.LibraryName(LibraryBaseName)
}

// DefaultSearchPaths returns the default library directories in probe order:
// the CMake output next to the running binary (Release first), then the
// conventional system install directories.
func DefaultSearchPaths() []string {
	var paths []string

	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		exeDir := filepath.Dir(exe)
		root := filepath.Dir(exeDir)
		paths = append(paths,
			filepath.Join(root, "build", "Release"),
			filepath.Join(root, "build"),
		)
		if runtime.GOOS == "windows" {
			paths = append(paths, exeDir)
		}
	}

	if runtime.GOOS != "windows" {
		paths = append(paths,
			"/usr/local/lib",
			"/usr/lib",
		)
	}

	return paths
}

// FindLibrary returns the path of the first existing library file, or false
// when none exists. Only the filesystem is read.
func FindLibrary(cfg Config) (string, bool) {
	if cfg.EnvVar != "" {
		if p := os.Getenv(cfg.EnvVar); p != "" && isRegularFile(p) {
			if abs, err := filepath.Abs(p); err == nil {
				return abs, true
			}
			return p, true
		}
	}

	name := cfg.libraryName()
	for _, dir := range cfg.SearchPaths {
		if dir == "" {
			continue
		}
		resolved, err := resolve(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if isRegularFile(resolved) {
			return resolved, true
		}
	}
	return "", false
}

// resolve makes p absolute and follows symlinks.
func resolve(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func isRegularFile(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}
