package registry

import "errors"

var (
	// ErrUnavailable indicates the registry endpoint is unreachable.
	ErrUnavailable = errors.New("registry unavailable")

	// ErrTimeout indicates a lookup exceeded the configured timeout.
	ErrTimeout = errors.New("registry request timed out")

	// ErrNotFound indicates the package is unknown to the registry.
	ErrNotFound = errors.New("package not found in registry")

	// ErrInvalidResponse indicates the registry response could not be
	// parsed into the expected shape.
	ErrInvalidResponse = errors.New("invalid registry response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("registry retry attempts exhausted")

	// ErrUnsupportedManager indicates no endpoint is configured for the
	// requested package manager.
	ErrUnsupportedManager = errors.New("unsupported package manager")
)
