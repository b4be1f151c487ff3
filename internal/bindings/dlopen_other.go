//go:build !(((darwin || freebsd || linux || netbsd) && (amd64 || arm64) && !android && !ios) || (windows && (amd64 || arm64)))

package bindings

import (
	"fmt"

	"github.com/obinnaokechukwu/xbrzscale/internal/platform"
)

func dlopen(string) (uintptr, error) {
	return 0, fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, platform.GOOS(), platform.GOARCH())
}

func dlsym(uintptr, string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func dlclose(uintptr) error {
	return nil
}

func bindFuncs(*Library, uintptr, uintptr) {}
