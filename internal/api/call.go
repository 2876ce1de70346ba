package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ramzeysiele/coinpayments/internal/sign"
	"github.com/ramzeysiele/coinpayments/internal/types"
)

// Call performs exactly one POST of cmd with params against ep and
// resolves the envelope. The body is the canonical encoding of params plus
// the protocol defaults; the HMAC header is attached by the client's
// signing transport, which re-derives it from these same body bytes. HTTP
// status codes are deliberately not consulted: the API answers 200 for
// both outcomes and intermediaries answer with HTML, so the envelope (or
// its absence) is the only signal. There are no retries here; every
// failure propagates once and callers own any retry policy.
func Call(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey, cmd string, params url.Values) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, &types.TransportError{Err: err}
	}
	body := sign.Encode(ApplyDefaults(ep, publicKey, cmd, params))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ep.URL, strings.NewReader(body))
	if err != nil {
		return nil, &types.TransportError{Err: err}
	}
	req.Header.Set("Content-Type", sign.ContentType)

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		observe(cmd, outcomeTransportError, start)
		return nil, &types.TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		observe(cmd, outcomeTransportError, start)
		return nil, &types.TransportError{Err: err}
	}

	result, err := Resolve(raw)
	observe(cmd, outcomeFor(err), start)
	return result, err
}

// callInto runs Call and decodes the result payload for the typed command
// helpers. A result that does not match the expected shape is reported as
// an invalid response carrying the payload text.
func callInto(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey, cmd string, params url.Values, out any) error {
	raw, err := Call(ctx, httpClient, ep, publicKey, cmd, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &types.InvalidResponseError{Body: string(raw)}
	}
	return nil
}
