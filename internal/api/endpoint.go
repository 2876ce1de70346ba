// Package api implements the wire protocol: canonical form encoding,
// the single-POST call pipeline, envelope resolution and the typed
// command helpers built on top of it.
package api

import "net/url"

// Protocol constants. The endpoint, version and format are fixed by the
// service; they live in one Endpoint value built at client construction
// and injected into every call rather than read from globals.
const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://www.coinpayments.net/api.php"

	// Version is the protocol version this client speaks.
	Version = "1"

	// Format pins JSON responses; the resolver understands nothing else.
	Format = "json"
)

// Request fields reserved by the protocol and injected on every call.
const (
	fieldCmd     = "cmd"
	fieldKey     = "key"
	fieldVersion = "version"
	fieldFormat  = "format"
)

// Endpoint carries the wire-level constants for one API deployment.
type Endpoint struct {
	URL     string
	Version string
	Format  string
}

// DefaultEndpoint returns the production endpoint.
func DefaultEndpoint() Endpoint {
	return Endpoint{URL: DefaultBaseURL, Version: Version, Format: Format}
}

// ApplyDefaults returns a copy of params with the protocol fields
// injected: cmd, version, format and the account's public key. The
// caller's map is never mutated and none of its fields are dropped or
// renamed; protocol fields win on collision.
func ApplyDefaults(ep Endpoint, publicKey, cmd string, params url.Values) url.Values {
	merged := make(url.Values, len(params)+4)
	for k, vs := range params {
		merged[k] = append([]string(nil), vs...)
	}
	merged.Set(fieldCmd, cmd)
	merged.Set(fieldVersion, ep.Version)
	merged.Set(fieldFormat, ep.Format)
	merged.Set(fieldKey, publicKey)
	return merged
}
