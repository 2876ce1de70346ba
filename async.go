package coinpayments

import (
	"context"
	"encoding/json"
	"net/url"
)

// Callback receives the outcome of a command issued with Go. It is
// invoked exactly once per call, for success and failure alike; exactly
// one of result and err is meaningful.
type Callback func(result json.RawMessage, err error)

// Future is the handle returned by CallAsync. It starts pending and
// settles exactly once when the underlying call completes; settlement is
// observable through Done and Await. Abandoning a Future does not abort
// the call: cancel the context passed to CallAsync for that. An abandoned
// call runs to completion and its outcome is simply discarded.
type Future struct {
	done   chan struct{}
	result json.RawMessage
	err    error
}

func newFuture() *Future { return &Future{done: make(chan struct{})} }

// settle records the outcome. Called exactly once, from the goroutine
// running the call; the channel close publishes the fields.
func (f *Future) settle(result json.RawMessage, err error) {
	f.result = result
	f.err = err
	close(f.done)
}

// Done returns a channel that is closed once the Future settles.
func (f *Future) Done() <-chan struct{} { return f.done }

// Await blocks until the Future settles or ctx is cancelled. A cancelled
// ctx abandons the wait and returns ctx's error; the underlying call keeps
// running and the outcome stays available to later Await calls.
func (f *Future) Await(ctx context.Context) (json.RawMessage, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-f.done:
		return f.result, f.err
	}
}

// CallAsync issues cmd like Call but returns immediately with a Future
// that settles when the command completes. Each call runs in its own
// goroutine; the client imposes no ordering or in-flight limit across
// calls, so callers own any backpressure they need.
func (c *Client) CallAsync(ctx context.Context, cmd string, params url.Values) *Future {
	f := newFuture()
	go func() {
		f.settle(c.Call(ctx, cmd, params))
	}()
	return f
}

// Go issues cmd like Call and delivers the outcome to cb. A nil cb
// discards the outcome, turning the call into fire-and-forget.
func (c *Client) Go(ctx context.Context, cmd string, params url.Values, cb Callback) {
	go func() {
		result, err := c.Call(ctx, cmd, params)
		if cb != nil {
			cb(result, err)
		}
	}()
}
