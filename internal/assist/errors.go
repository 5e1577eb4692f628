package assist

import "errors"

var (
	// ErrUnavailable indicates the assist server is unreachable.
	ErrUnavailable = errors.New("assist server unavailable")

	// ErrTimeout indicates the assist request exceeded the configured timeout.
	ErrTimeout = errors.New("assist request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("assist retry attempts exhausted")
)
