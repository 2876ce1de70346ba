package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/ramzeysiele/coinpayments/internal/types"
)

func testEndpoint(srvURL string) Endpoint {
	return Endpoint{URL: srvURL, Version: Version, Format: Format}
}

func TestCall_SendsCanonicalSignableBody(t *testing.T) {
	t.Parallel()
	var gotBody string
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"error":"ok","result":{"ok":true}}`))
	}))
	defer srv.Close()

	params := url.Values{}
	params.Set("amount", "1.00")
	params.Set("buyer_email", "a@b.io")
	if _, err := Call(context.Background(), srv.Client(), testEndpoint(srv.URL), "pub-key", "create_transaction", params); err != nil {
		t.Fatalf("Call: %v", err)
	}

	want := "amount=1.00&buyer_email=a%40b.io&cmd=create_transaction&format=json&key=pub-key&version=1"
	if gotBody != want {
		t.Fatalf("body = %q, want %q", gotBody, want)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Fatalf("Content-Type = %q", gotContentType)
	}
	// The caller's map must come back untouched.
	if len(params) != 2 {
		t.Fatalf("caller params mutated: %v", params)
	}
}

func TestCall_APIErrorStatusIgnored(t *testing.T) {
	t.Parallel()
	// The API answers HTTP 200 even for rejections; conversely a 500 with
	// a well-formed envelope must still resolve by envelope alone.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"That command is invalid!","result":null}`))
	}))
	defer srv.Close()

	_, err := Call(context.Background(), srv.Client(), testEndpoint(srv.URL), "pub-key", "bogus", nil)
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v (%T), want *types.APIError", err, err)
	}
	if apiErr.Message != "That command is invalid!" {
		t.Fatalf("Message = %q", apiErr.Message)
	}
}

func TestCall_GatewayHTMLIsInvalidResponse(t *testing.T) {
	t.Parallel()
	raw := "<html>502 Bad Gateway</html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(raw))
	}))
	defer srv.Close()

	_, err := Call(context.Background(), srv.Client(), testEndpoint(srv.URL), "pub-key", "rates", nil)
	var invalid *types.InvalidResponseError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v (%T), want *types.InvalidResponseError", err, err)
	}
	if invalid.Body != raw {
		t.Fatalf("Body = %q", invalid.Body)
	}
}

func TestCall_ConnectionFailureIsTransportError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // refuse all connections

	_, err := Call(context.Background(), http.DefaultClient, testEndpoint(srv.URL), "pub-key", "rates", nil)
	var terr *types.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v (%T), want *types.TransportError", err, err)
	}
	if terr.Unwrap() == nil {
		t.Fatal("TransportError should expose the underlying error")
	}
}

func TestCall_CancelledContextShortCircuits(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Call(ctx, srv.Client(), testEndpoint(srv.URL), "pub-key", "rates", nil)

	var terr *types.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v (%T), want *types.TransportError", err, err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err should unwrap to context.Canceled, got %v", err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatal("cancelled call must not reach the network")
	}
}

func TestCallInto_ShapeMismatchIsInvalidResponse(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"ok","result":["not","an","object"]}`))
	}))
	defer srv.Close()

	var out struct {
		TxnID string `json:"txn_id"`
	}
	err := callInto(context.Background(), srv.Client(), testEndpoint(srv.URL), "pub-key", "get_tx_info", nil, &out)
	var invalid *types.InvalidResponseError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v (%T), want *types.InvalidResponseError", err, err)
	}
	if invalid.Body != `["not","an","object"]` {
		t.Fatalf("Body = %q, want the result payload", invalid.Body)
	}
}
