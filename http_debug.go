package coinpayments

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport logs full request/response dumps for troubleshooting API
// communication issues.
//
// Enable with WithDebugLogging or by setting COINPAYMENTS_DEBUG=true (or
// DEBUG=true) in the environment. The dumps include the signed form body
// and the HMAC header, which is derived from the account's private key, so
// this must stay off outside development and the logs treated as secrets.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if debugLoggingRequested() {
		if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
		}
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		if debugLoggingRequested() {
			log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		}
		return nil, err
	}

	if debugLoggingRequested() {
		if respDump, err := httputil.DumpResponse(resp, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
		}
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
// COINPAYMENTS_DEBUG targets this client alone; DEBUG is the broader
// development flag. Both must be exactly "true".
func debugLoggingRequested() bool {
	return os.Getenv("COINPAYMENTS_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
