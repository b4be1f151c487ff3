package xbrzscale

import (
	"errors"
	"fmt"

	"github.com/obinnaokechukwu/xbrzscale/internal/bindings"
	"github.com/obinnaokechukwu/xbrzscale/pixel"
)

// ValidationError reports invalid caller input: a scale factor outside
// [MinScale, MaxScale], or an image that is not (height, width, 3|4).
type ValidationError = pixel.ValidationError

// LoadError reports that the native library could not be found or opened.
type LoadError = bindings.LoadError

// ScalingError reports a non-zero status from the native scale call.
type ScalingError struct {
	Code int32 // Status returned by xbrz_scale
}

// Error implements the error interface.
func (e *ScalingError) Error() string {
	return fmt.Sprintf("xbrzscale: xBRZ scaling failed with error code %d", e.Code)
}

// Common errors
var (
	// ErrLibraryNotFound is wrapped by the LoadError returned when no library file exists.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound

	// ErrSymbolNotFound is wrapped when the library lacks xbrz_scale or xbrz_version.
	ErrSymbolNotFound = bindings.ErrSymbolNotFound

	// ErrAlreadyLoaded is returned by Configure after loading has started.
	ErrAlreadyLoaded = bindings.ErrAlreadyLoaded
)

// ErrorKind classifies errors returned by this package.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindValidation
	KindLoad
	KindScaling
	KindOther
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindLoad:
		return "load"
	case KindScaling:
		return "scaling"
	default:
		return "other"
	}
}

// KindOf returns the kind of err, so callers can branch without matching
// on messages.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return KindValidation
	}
	var lErr *LoadError
	if errors.As(err, &lErr) {
		return KindLoad
	}
	var sErr *ScalingError
	if errors.As(err, &sErr) {
		return KindScaling
	}
	return KindOther
}

// ErrorCode returns the native status from a ScalingError, or 0 if err is
// not one.
func ErrorCode(err error) int32 {
	var sErr *ScalingError
	if errors.As(err, &sErr) {
		return sErr.Code
	}
	return 0
}
