// Package bindings locates the xBRZ shared library, loads it without cgo and
// binds its two entry points:
//
//	int         xbrz_scale(const uint32_t* src, uint32_t* dst, int width, int height, int scale);
//	const char* xbrz_version(void);
//
// The process-wide Loader opens the library at most once. Its outcome,
// success or failure, is kept for the life of the process.
package bindings

import (
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/obinnaokechukwu/xbrzscale/internal/logging"
)

// Native symbol names.
const (
	SymbolScale   = "xbrz_scale"
	SymbolVersion = "xbrz_version"
)

// StatusBadBuffer is returned by Library.Scale when the buffers do not match
// the dimensions. It equals the native library's own invalid-argument status.
const StatusBadBuffer int32 = -1

// maxCStringLen bounds the scan for the version string terminator.
const maxCStringLen = 4096

// State is the lifecycle of a Loader.
type State int32

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Library is a loaded xBRZ shared library with its entry points bound.
// It is immutable and safe to share; whether concurrent Scale calls are safe
// depends on the native implementation.
type Library struct {
	path    string
	handle  uintptr
	scale   func(src, dst *uint32, width, height, factor int32) int32
	version func() *byte
}

// Path returns the file the library was loaded from.
func (l *Library) Path() string {
	return l.path
}

// Scale runs xbrz_scale. src must hold width*height pixels and dst
// width*height*factor*factor pixels; otherwise StatusBadBuffer is returned
// without calling into the library.
func (l *Library) Scale(src, dst []uint32, width, height, factor int32) int32 {
	if width < 0 || height < 0 || factor < 0 {
		return StatusBadBuffer
	}
	n := int(width) * int(height)
	if len(src) != n || len(dst) != n*int(factor)*int(factor) {
		return StatusBadBuffer
	}

	status := l.scale(unsafe.SliceData(src), unsafe.SliceData(dst), width, height, factor)
	runtime.KeepAlive(src)
	runtime.KeepAlive(dst)
	return status
}

// Version returns the raw bytes of xbrz_version as a string. The returned
// memory belongs to the library and is copied.
func (l *Library) Version() string {
	return goString(l.version())
}

// goString copies a NUL-terminated C string.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
		if n >= maxCStringLen {
			break
		}
	}
	return string(unsafe.Slice(p, n))
}

// Loader opens the library once and remembers the outcome.
type Loader struct {
	cfg  Config
	open func(path string) (*Library, error)

	once  sync.Once
	state atomic.Int32
	lib   *Library
	err   error
}

// NewLoader returns a Loader that searches according to cfg.
func NewLoader(cfg Config) *Loader {
	return newLoader(cfg, openLibrary)
}

func newLoader(cfg Config, open func(string) (*Library, error)) *Loader {
	return &Loader{cfg: cfg, open: open}
}

// Config returns the loader's search configuration.
func (l *Loader) Config() Config {
	return l.cfg
}

// State reports where the loader is in its lifecycle.
func (l *Loader) State() State {
	return State(l.state.Load())
}

// Load finds and opens the library on first call. Later calls, including
// concurrent ones, return the same library or the same error without
// touching the filesystem again.
func (l *Loader) Load() (*Library, error) {
	l.once.Do(l.doLoad)
	return l.lib, l.err
}

func (l *Loader) doLoad() {
	l.state.Store(int32(StateLoading))
	log := logging.Logger()

	path, ok := FindLibrary(l.cfg)
	if !ok {
		l.err = &LoadError{EnvVar: l.cfg.EnvVar, Err: ErrLibraryNotFound}
		l.state.Store(int32(StateFailed))
		log.Warn("xbrzscale: shared library not found",
			"name", l.cfg.libraryName(), "searched", l.cfg.SearchPaths)
		return
	}

	log.Debug("xbrzscale: opening shared library", "path", path)
	lib, err := l.open(path)
	if err != nil {
		if _, isLoadErr := err.(*LoadError); !isLoadErr {
			err = &LoadError{Path: path, EnvVar: l.cfg.EnvVar, Err: err}
		}
		l.err = err
		l.state.Store(int32(StateFailed))
		log.Warn("xbrzscale: failed to open shared library", "path", path, "err", err)
		return
	}

	l.lib = lib
	l.state.Store(int32(StateLoaded))
	log.Info("xbrzscale: shared library loaded", "path", path)
}

// dynlib is the platform's dynamic loading primitives.
type dynlib struct {
	open  func(path string) (uintptr, error)
	sym   func(handle uintptr, name string) (uintptr, error)
	close func(handle uintptr) error
	bind  func(lib *Library, scaleAddr, versionAddr uintptr)
}

var system = dynlib{open: dlopen, sym: dlsym, close: dlclose, bind: bindFuncs}

// openLibrary opens path and binds both entry points.
func openLibrary(path string) (*Library, error) {
	return system.openLibrary(path)
}

func (d dynlib) openLibrary(path string) (*Library, error) {
	handle, err := d.open(path)
	if err != nil {
		return nil, err
	}

	var addrs [2]uintptr
	for i, name := range [...]string{SymbolScale, SymbolVersion} {
		addr, err := d.sym(handle, name)
		if err != nil {
			if cerr := d.close(handle); cerr != nil {
				logging.Logger().Debug("xbrzscale: closing shared library", "path", path, "err", cerr)
			}
			return nil, &LoadError{Path: path, Err: err}
		}
		addrs[i] = addr
	}

	lib := &Library{path: path, handle: handle}
	d.bind(lib, addrs[0], addrs[1])
	return lib, nil
}

// Process-wide loader.
var (
	defaultMu     sync.Mutex
	defaultLoader = NewLoader(DefaultConfig())
)

func currentLoader() *Loader {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultLoader
}

// Configure replaces the process-wide search configuration. It fails with
// ErrAlreadyLoaded once a load has been attempted.
func Configure(cfg Config) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLoader.State() != StateUnloaded {
		return ErrAlreadyLoaded
	}
	defaultLoader = NewLoader(cfg)
	return nil
}

// Load loads the library through the process-wide loader.
// It is safe to call multiple times; only the first call does any work.
func Load() (*Library, error) {
	return claimDefault().Load()
}

// claimDefault returns the process-wide loader after moving it out of
// StateUnloaded, so a Configure racing with the first Load fails instead of
// swapping a loader that is about to be used.
func claimDefault() *Loader {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLoader.state.CompareAndSwap(int32(StateUnloaded), int32(StateLoading))
	return defaultLoader
}

// CurrentState reports the process-wide loader's state.
func CurrentState() State {
	return currentLoader().State()
}

// IsLoaded returns true if the process-wide loader succeeded.
func IsLoaded() bool {
	return CurrentState() == StateLoaded
}

// CurrentConfig returns the process-wide loader's configuration.
func CurrentConfig() Config {
	return currentLoader().Config()
}
