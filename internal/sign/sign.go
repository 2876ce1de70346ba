// Package sign produces the credentials the API expects on every call:
// the request body is form-encoded in a canonical order and signed with
// HMAC-SHA512 keyed by the account's private key, and the hex digest
// travels in the HMAC header alongside the form content type.
package sign

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"net/url"
)

// Header names and values attached to every signed request.
const (
	HeaderHMAC  = "HMAC"
	ContentType = "application/x-www-form-urlencoded"
)

// ErrEmptySecret is returned when a signature is requested without a key.
// An empty key would still produce a digest, just one the API can never
// accept, so signing fails loudly instead.
var ErrEmptySecret = errors.New("sign: empty secret")

// Encode renders params in the canonical form used for both the signature
// input and the transmitted body: keys sorted, values percent-escaped.
// Funneling both through one encoding keeps the signed bytes identical to
// the sent bytes.
func Encode(params url.Values) string {
	return params.Encode()
}

// Sign returns the hex HMAC-SHA512 digest of message keyed by secret.
func Sign(secret string, message []byte) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Headers returns the header set for a request whose body is exactly body.
func Headers(secret string, body []byte) (map[string]string, error) {
	digest, err := Sign(secret, body)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"Content-Type": ContentType,
		HeaderHMAC:     digest,
	}, nil
}

// Verify reports whether signature is the valid hex HMAC-SHA512 of message
// under secret. The comparison is constant time.
func Verify(secret, signature string, message []byte) (bool, error) {
	want, err := Sign(secret, message)
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(want), []byte(signature)), nil
}
