package macrocss

import "errors"

// Sentinel errors for compilation operations.
var (
	// ErrCaptureNotFound is returned when a macro handler indexes a capture
	// group that does not exist on the match. This is a programmer error in
	// the registered handler and aborts the compile pass.
	ErrCaptureNotFound = errors.New("macrocss: capture group not found")

	// ErrNilHandler is returned when a macro is configured without a handler.
	ErrNilHandler = errors.New("macrocss: macro handler is nil")

	// ErrBadPattern is returned when a configured macro pattern does not
	// compile as a regular expression.
	ErrBadPattern = errors.New("macrocss: invalid macro pattern")

	// ErrInvalidSnapshot is returned when a snapshot cannot be decoded.
	ErrInvalidSnapshot = errors.New("macrocss: invalid snapshot")
)

// IsConfigError reports whether err originates from developer-supplied
// configuration (bad pattern, missing handler) rather than content.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrBadPattern) || errors.Is(err, ErrNilHandler)
}
