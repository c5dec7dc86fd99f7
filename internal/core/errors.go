package core

import "errors"

var (
	// ErrProviderUnavailable is returned when no credential is configured for
	// the external emotion provider. No network call is attempted in this case.
	ErrProviderUnavailable = errors.New("emotion provider unavailable: no credentials configured")

	// ErrProviderTimeout is returned when a provider request exceeds its bound.
	ErrProviderTimeout = errors.New("emotion provider request timed out")

	// ErrProviderError is returned on transport errors, non-2xx responses and
	// malformed provider payloads.
	ErrProviderError = errors.New("emotion provider request failed")
)
