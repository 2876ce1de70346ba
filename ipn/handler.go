package ipn

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/ramzeysiele/coinpayments/internal/sign"
)

// Config identifies the merchant a handler accepts notifications for.
type Config struct {
	// MerchantID must match the notification's merchant field. Empty skips
	// the check (single-tenant callback URLs).
	MerchantID string
	// IPNSecret keys the HMAC verification. This is the account's IPN
	// secret, not the API private key.
	IPNSecret string
}

// HandlerFunc consumes one verified, parsed notification. A non-nil error
// makes the handler answer 500 so CoinPayments retries the delivery later;
// handlers should therefore be idempotent per IPNID.
type HandlerFunc func(ctx context.Context, n *Notification) error

// Handler returns an http.Handler for a merchant callback URL. It verifies
// the method, the merchant ID and the HMAC signature over the raw body,
// parses the form and dispatches to fn. Accepted notifications are
// answered with 200 "IPN OK"; rejections answer 4xx and are logged, never
// forwarded to fn.
func Handler(cfg Config, fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			reject(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error().Err(err).Msg("ipn: read body")
			reject(w, http.StatusBadRequest, "unreadable body")
			return
		}

		if err := Verify(cfg.IPNSecret, r.Header.Get(sign.HeaderHMAC), body); err != nil {
			log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("ipn: rejected")
			status := http.StatusUnauthorized
			if errors.Is(err, ErrMissingSignature) {
				status = http.StatusBadRequest
			}
			reject(w, status, "signature verification failed")
			return
		}

		n, err := Parse(body)
		if err != nil {
			log.Warn().Err(err).Msg("ipn: malformed notification")
			reject(w, http.StatusBadRequest, "malformed notification")
			return
		}

		if cfg.MerchantID != "" && n.Merchant != cfg.MerchantID {
			log.Warn().Str("merchant", n.Merchant).Msg("ipn: merchant mismatch")
			reject(w, http.StatusUnauthorized, "unknown merchant")
			return
		}

		if err := fn(r.Context(), n); err != nil {
			log.Error().Err(err).Str("ipn_id", n.IPNID).Str("txn_id", n.TxnID).Msg("ipn: handler failed")
			reject(w, http.StatusInternalServerError, "handler error")
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "IPN OK")
	})
}

func reject(w http.ResponseWriter, status int, msg string) {
	http.Error(w, msg, status)
}
