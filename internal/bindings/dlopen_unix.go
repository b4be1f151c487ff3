//go:build (darwin || freebsd || linux || netbsd) && (amd64 || arm64) && !android && !ios

package bindings

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// dlopen opens the library with RTLD_NOW so missing transitive dependencies
// fail here rather than on the first call. RTLD_LOCAL keeps its symbols out
// of the global namespace.
func dlopen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	addr, err := purego.Dlsym(handle, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrSymbolNotFound, name, err)
	}
	return addr, nil
}

func dlclose(handle uintptr) error {
	return purego.Dlclose(handle)
}

func bindFuncs(lib *Library, scaleAddr, versionAddr uintptr) {
	purego.RegisterFunc(&lib.scale, scaleAddr)
	purego.RegisterFunc(&lib.version, versionAddr)
}
