package types

import "fmt"

// Exactly one of these four kinds describes every failure the SDK returns,
// and each failure surfaces exactly once: nothing in the pipeline retries
// or suppresses errors.

// ValidationError is returned when a request is rejected before any network
// activity. The transport is never touched once validation fails.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return fmt.Sprintf("validation: %v", e.Err) }
func (e *ValidationError) Unwrap() error { return e.Err }

// APIError is a well-formed rejection: the envelope arrived and its error
// field carried something other than the "ok" sentinel. Message holds that
// field verbatim; Envelope holds the full raw body for diagnostics.
type APIError struct {
	Message  string
	Envelope []byte
}

func (e *APIError) Error() string { return fmt.Sprintf("api: %s", e.Message) }

// InvalidResponseError is returned when the response body could not be
// understood as an envelope. Body preserves the raw text exactly as
// received, which in practice is usually an HTML page from an intermediary.
type InvalidResponseError struct {
	Body string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid response: %.120s", e.Body)
}

// TransportError wraps a connection-level failure: DNS, TLS, timeouts,
// cancelled contexts. Unwrap exposes the underlying error unchanged so
// callers can still match on context.Canceled, net.Error and friends.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }
