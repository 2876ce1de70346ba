package coinpayments

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to
// discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the signing transport wrapper is installed,
// so transport-related options (like debug logging) end up underneath the
// signature wrapper and observe fully signed requests. Options must be
// deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net bounding the total time of a single HTTP request,
// including connection, TLS handshake and reading the response. The value
// must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client entirely. The signing
// transport is still installed on top of the given client's transport, so
// custom proxies, connection pools or recording transports keep working
// under the signature.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) error {
		if h == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = h
		return nil
	}
}

// WithBaseURL points the client at a different API endpoint. Intended for
// tests and staging deployments; the production endpoint is the default.
func WithBaseURL(rawURL string) Option {
	return func(c *Client) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("base url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base url must be absolute: %q", rawURL)
		}
		c.endpoint.URL = rawURL
		return nil
	}
}

// WithValidator installs a pre-flight validator for Call, CallAsync and
// Go. A rejection surfaces as a ValidationError before any network
// activity.
func WithValidator(v Validator) Option {
	return func(c *Client) error {
		c.validator = v
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response
// is logged when enabled is true.
//
// The dumps include the signed body and the HMAC header, which is derived
// from the private key. Do not enable this option in production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}
