package coinpayments

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/ramzeysiele/coinpayments/internal/sign"
)

func TestSigningTransport_HeaderCoversSentBytes(t *testing.T) {
	t.Parallel()
	const body = "amount=1.00&cmd=create_transaction&format=json&key=pub&version=1"

	var sentBody string
	var sentHMAC string
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		raw, _ := io.ReadAll(r.Body)
		sentBody = string(raw)
		sentHMAC = r.Header.Get(sign.HeaderHMAC)
		if ct := r.Header.Get("Content-Type"); ct != sign.ContentType {
			t.Errorf("Content-Type = %q", ct)
		}
		return okResponse(), nil
	})
	st := &signingTransport{base: rt, secret: "priv-key"}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, "https://example.com/api.php", strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if _, err := st.RoundTrip(req); err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}

	if sentBody != body {
		t.Fatalf("sent body = %q, want %q", sentBody, body)
	}
	want, err := sign.Sign("priv-key", []byte(sentBody))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if sentHMAC != want {
		t.Fatalf("HMAC covers different bytes than sent: header %q, want %q", sentHMAC, want)
	}

	// The caller's request must stay unsigned; only the clone is touched.
	if got := req.Header.Get(sign.HeaderHMAC); got != "" {
		t.Fatalf("original request mutated: HMAC = %q", got)
	}
}

func TestSigningTransport_RejectsNonReplayableBody(t *testing.T) {
	t.Parallel()
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		t.Error("request with unsignable body must not be forwarded")
		return okResponse(), nil
	})
	st := &signingTransport{base: rt, secret: "priv-key"}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, "https://example.com/api.php", io.NopCloser(strings.NewReader("cmd=rates")))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.GetBody = nil // an opaque stream cannot be re-read for signing

	if _, err := st.RoundTrip(req); err == nil {
		t.Fatal("expected an error for a non-replayable body")
	}
}
