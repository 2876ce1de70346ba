package ipn

import (
	"errors"

	"github.com/ramzeysiele/coinpayments/internal/sign"
)

// Verification failures. ErrMissingSignature means the request never
// carried an HMAC header; ErrInvalidSignature means it did and the digest
// did not match the body.
var (
	ErrMissingSignature = errors.New("ipn: missing HMAC signature")
	ErrInvalidSignature = errors.New("ipn: invalid HMAC signature")
)

// Verify checks signature against the hex HMAC-SHA512 of the raw body
// keyed by the merchant's IPN secret. The comparison is constant time.
// Verify must run on the body bytes exactly as received, before any form
// decoding, for the same reason the client signs exactly what it sends.
func Verify(secret, signature string, body []byte) error {
	if signature == "" {
		return ErrMissingSignature
	}
	ok, err := sign.Verify(secret, signature, body)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidSignature
	}
	return nil
}
