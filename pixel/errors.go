package pixel

import "fmt"

// ValidationError reports caller-supplied data that violates a precondition.
// It is always returned before any native call is made.
type ValidationError struct {
	Field   string // "scale", "shape", "channels" or "data"
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "xbrzscale: " + e.Message
}

func validationErrorf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
