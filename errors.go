package coinpayments

import (
	"errors"

	"github.com/ramzeysiele/coinpayments/internal/types"
)

// Error kinds re-exported so SDK consumers import only this package.
// Exactly one kind describes each failure, and each failure surfaces
// exactly once: the client never retries and never suppresses an error.
type (
	// ValidationError: the request was rejected before any network
	// activity took place.
	ValidationError = types.ValidationError
	// APIError: the API answered with a well-formed envelope whose error
	// field was not "ok".
	APIError = types.APIError
	// InvalidResponseError: the response body was not a valid envelope;
	// Body carries the raw text verbatim.
	InvalidResponseError = types.InvalidResponseError
	// TransportError: the HTTP round trip itself failed; Unwrap exposes
	// the underlying error.
	TransportError = types.TransportError
)

// IsValidationError reports whether err is a pre-flight validation
// failure, meaning no network call was attempted.
func IsValidationError(err error) bool {
	var e *types.ValidationError
	return errors.As(err, &e)
}

// IsAPIError reports whether err is a rejection from the API itself.
func IsAPIError(err error) bool {
	var e *types.APIError
	return errors.As(err, &e)
}

// IsInvalidResponse reports whether err means the response body could not
// be understood as an envelope.
func IsInvalidResponse(err error) bool {
	var e *types.InvalidResponseError
	return errors.As(err, &e)
}

// IsTransportError reports whether err is a connection-level failure.
func IsTransportError(err error) bool {
	var e *types.TransportError
	return errors.As(err, &e)
}
