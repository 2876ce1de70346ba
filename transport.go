package coinpayments

import (
	"fmt"
	"io"
	"net/http"

	"github.com/ramzeysiele/coinpayments/internal/sign"
)

// signingTransport wraps an http.RoundTripper to sign every outgoing
// request. The body is re-read through GetBody, so the digest always
// covers the exact bytes handed to the network; the request is cloned and
// the caller's copy is never modified.
type signingTransport struct {
	base   http.RoundTripper
	secret string
}

func (t *signingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	body, err := replayBody(req)
	if err != nil {
		return nil, err
	}
	headers, err := sign.Headers(t.secret, body)
	if err != nil {
		return nil, err
	}
	cloned := req.Clone(req.Context())
	for k, v := range headers {
		cloned.Header.Set(k, v)
	}
	return t.base.RoundTrip(cloned)
}

// replayBody returns a copy of the request body without consuming the
// stream the transport will send.
func replayBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}
	if req.GetBody == nil {
		return nil, fmt.Errorf("sign request: body is not replayable")
	}
	rc, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}
