package errs

import "errors"

// Domain-specific sentinel errors for usecase layers
var (
	ErrEphemerisUnavailable = errors.New("ephemeris source unavailable")
	ErrPushDeliveryFailed   = errors.New("push delivery failed")
)
