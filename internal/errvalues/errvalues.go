package errvalues

import "errors"

var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrInvalidHandle       = errors.New("invalid platform handle")
	ErrHandleNotFound      = errors.New("platform handle not found")
	ErrUpstreamUnavailable = errors.New("platform upstream unavailable")
)
