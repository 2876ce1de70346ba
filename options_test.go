package coinpayments

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestWithHTTPTimeout(t *testing.T) {
	t.Parallel()
	c, err := New("pub-key", "priv-key", WithHTTPTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout = %v", c.http.Timeout)
	}

	if _, err := New("pub-key", "priv-key", WithHTTPTimeout(0)); err == nil {
		t.Fatal("zero timeout accepted")
	}
	if _, err := New("pub-key", "priv-key", WithHTTPTimeout(-time.Second)); err == nil {
		t.Fatal("negative timeout accepted")
	}
}

func TestWithBaseURL(t *testing.T) {
	t.Parallel()
	c, err := New("pub-key", "priv-key", WithBaseURL("https://sandbox.example.com/api.php"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.endpoint.URL != "https://sandbox.example.com/api.php" {
		t.Fatalf("endpoint = %q", c.endpoint.URL)
	}

	if _, err := New("pub-key", "priv-key", WithBaseURL("not a url at all")); err == nil {
		t.Fatal("relative base url accepted")
	}
	if _, err := New("pub-key", "priv-key", WithBaseURL("")); err == nil {
		t.Fatal("empty base url accepted")
	}
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()
	custom := &http.Client{Timeout: time.Minute}
	c, err := New("pub-key", "priv-key", WithHTTPClient(custom))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http != custom {
		t.Fatal("custom http client not installed")
	}
	// The signing wrapper must still be on top of the custom client.
	if _, ok := c.http.Transport.(*signingTransport); !ok {
		t.Fatalf("transport = %T, want *signingTransport", c.http.Transport)
	}

	if _, err := New("pub-key", "priv-key", WithHTTPClient(nil)); err == nil {
		t.Fatal("nil http client accepted")
	}
}

func TestWithDebugLogging_WrapsTransport(t *testing.T) {
	// Not parallel: depends on process-wide debug env being unset.
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return okResponse(), nil
	})
	c, err := New("pub-key", "priv-key",
		WithHTTPClient(&http.Client{Transport: rt}),
		WithDebugLogging(true),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "http://example.com", strings.NewReader("cmd=rates"))
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatal("base transport not invoked through the debug wrapper")
	}
}
