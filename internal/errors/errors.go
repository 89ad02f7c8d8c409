package errors

import "errors"

// Sentinel errors for common failure modes.
var (
	ErrNamespaceTaken = errors.New("namespace already registered")
	ErrNilDocument    = errors.New("nil document")
	ErrNilRenderer    = errors.New("nil renderer")
)

// ConfigurationError reports a static configuration defect: the configured
// default state key does not resolve to any enumerated state. It is fatal and
// aborts the initialization batch it surfaces in.
type ConfigurationError struct {
	Key string
}

func (e ConfigurationError) Error() string {
	return "unknown default state key: " + e.Key
}

// IsConfiguration reports whether err is (or wraps) a ConfigurationError.
func IsConfiguration(err error) bool {
	var ce ConfigurationError
	return errors.As(err, &ce)
}
