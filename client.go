// Package coinpayments is a Go client for the CoinPayments HTTP API.
//
// Every command is a single signed POST to the fixed endpoint: the form
// body is encoded canonically, signed with HMAC-SHA512 keyed by the
// account's private key, and the JSON envelope in the response decides the
// outcome. The client offers three entry styles over one pipeline: Call
// (synchronous), CallAsync (Future) and Go (callback). Typed helpers cover
// the common commands; Call accepts any command name for the rest.
package coinpayments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ramzeysiele/coinpayments/internal/api"
)

// Validator screens command params before any network activity. A non-nil
// validator runs synchronously inside Call, CallAsync and Go; when it
// returns an error the call fails with a ValidationError and the transport
// is never touched. The typed command helpers carry their own field
// validation instead.
type Validator interface {
	Validate(params url.Values) error
}

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	endpoint   api.Endpoint
	http       *http.Client
	publicKey  string
	privateKey string
	validator  Validator
}

// New constructs a Client for the given API key pair. Additional options
// can be provided via functional arguments. The key pair is immutable for
// the life of the client.
func New(publicKey, privateKey string, opts ...Option) (*Client, error) {
	if publicKey == "" {
		return nil, fmt.Errorf("coinpayments: public key cannot be empty")
	}
	if privateKey == "" {
		return nil, fmt.Errorf("coinpayments: private key cannot be empty")
	}

	c := &Client{
		endpoint:   api.DefaultEndpoint(),
		http:       &http.Client{Timeout: 30 * time.Second},
		publicKey:  publicKey,
		privateKey: privateKey,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap the HTTP transport so every outgoing body is signed.
	c.wrapTransportWithSignature()

	return c, nil
}

// wrapTransportWithSignature installs the RoundTripper that computes the
// HMAC-SHA512 of each request body and attaches the HMAC header. It is
// installed last, above option-provided transports, so debug dumps show
// the request exactly as sent, signature included.
func (c *Client) wrapTransportWithSignature() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &signingTransport{base: base, secret: c.privateKey}
}

// Call issues a single API command and blocks for the outcome. params may
// be nil. The protocol fields (cmd, version, format, key) are injected
// into a copy; the caller's map is never mutated and none of its fields
// are dropped. The error, when non-nil, is exactly one of
// ValidationError, APIError, InvalidResponseError or TransportError.
func (c *Client) Call(ctx context.Context, cmd string, params url.Values) (json.RawMessage, error) {
	if c.validator != nil {
		if err := c.validator.Validate(params); err != nil {
			return nil, &ValidationError{Err: err}
		}
	}
	return api.Call(ctx, c.http, c.endpoint, c.publicKey, cmd, params)
}

// --------------------------------------------------------------------
// Account operations - delegated to internal/api
// --------------------------------------------------------------------

// GetBasicInfo returns the account profile behind the API keys.
func (c *Client) GetBasicInfo(ctx context.Context) (*BasicInfo, error) {
	return api.GetBasicInfo(ctx, c.http, c.endpoint, c.publicKey)
}

// Rates returns the exchange rate table keyed by coin symbol.
func (c *Client) Rates(ctx context.Context, req RatesRequest) (map[string]Rate, error) {
	return api.Rates(ctx, c.http, c.endpoint, c.publicKey, req)
}

// Balances returns the account balances keyed by coin symbol.
func (c *Client) Balances(ctx context.Context, req BalancesRequest) (map[string]Balance, error) {
	return api.Balances(ctx, c.http, c.endpoint, c.publicKey, req)
}

// --------------------------------------------------------------------
// Address operations - delegated to internal/api
// --------------------------------------------------------------------

// GetDepositAddress returns the account's deposit address for a coin.
func (c *Client) GetDepositAddress(ctx context.Context, req GetDepositAddressRequest) (*DepositAddress, error) {
	return api.GetDepositAddress(ctx, c.http, c.endpoint, c.publicKey, req)
}

// GetCallbackAddress returns a deposit address wired to IPN callbacks.
func (c *Client) GetCallbackAddress(ctx context.Context, req GetCallbackAddressRequest) (*CallbackAddress, error) {
	return api.GetCallbackAddress(ctx, c.http, c.endpoint, c.publicKey, req)
}

// --------------------------------------------------------------------
// Transaction operations - delegated to internal/api
// --------------------------------------------------------------------

// CreateTransaction starts a checkout payment and returns the deposit
// instructions for the buyer.
func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*Transaction, error) {
	return api.CreateTransaction(ctx, c.http, c.endpoint, c.publicKey, req)
}

// GetTxInfo returns the current state of one payment.
func (c *Client) GetTxInfo(ctx context.Context, req GetTxInfoRequest) (*TxInfo, error) {
	return api.GetTxInfo(ctx, c.http, c.endpoint, c.publicKey, req)
}

// GetTxInfoMulti returns the state of up to 25 payments keyed by ID.
func (c *Client) GetTxInfoMulti(ctx context.Context, req GetTxInfoMultiRequest) (map[string]TxInfoMultiEntry, error) {
	return api.GetTxInfoMulti(ctx, c.http, c.endpoint, c.publicKey, req)
}

// GetTxIDs lists recent transaction IDs, newest first.
func (c *Client) GetTxIDs(ctx context.Context, req GetTxIDsRequest) ([]string, error) {
	return api.GetTxIDs(ctx, c.http, c.endpoint, c.publicKey, req)
}

// --------------------------------------------------------------------
// Transfer and conversion operations - delegated to internal/api
// --------------------------------------------------------------------

// CreateTransfer moves funds to another account or $PayByName tag.
func (c *Client) CreateTransfer(ctx context.Context, req CreateTransferRequest) (*Transfer, error) {
	return api.CreateTransfer(ctx, c.http, c.endpoint, c.publicKey, req)
}

// Convert exchanges funds from one coin into another.
func (c *Client) Convert(ctx context.Context, req ConvertRequest) (*Conversion, error) {
	return api.Convert(ctx, c.http, c.endpoint, c.publicKey, req)
}

// ConvertLimits returns the convertible amount bounds for a coin pair.
func (c *Client) ConvertLimits(ctx context.Context, req ConvertLimitsRequest) (*ConvertLimitsInfo, error) {
	return api.ConvertLimits(ctx, c.http, c.endpoint, c.publicKey, req)
}

// GetConversionInfo returns the current state of a conversion.
func (c *Client) GetConversionInfo(ctx context.Context, req GetConversionInfoRequest) (*ConversionInfo, error) {
	return api.GetConversionInfo(ctx, c.http, c.endpoint, c.publicKey, req)
}

// --------------------------------------------------------------------
// Withdrawal operations - delegated to internal/api
// --------------------------------------------------------------------

// CreateWithdrawal sends funds out to an external address.
func (c *Client) CreateWithdrawal(ctx context.Context, req CreateWithdrawalRequest) (*Withdrawal, error) {
	return api.CreateWithdrawal(ctx, c.http, c.endpoint, c.publicKey, req)
}

// CreateMassWithdrawal sends several withdrawals in one call.
func (c *Client) CreateMassWithdrawal(ctx context.Context, req CreateMassWithdrawalRequest) (map[string]MassWithdrawalEntry, error) {
	return api.CreateMassWithdrawal(ctx, c.http, c.endpoint, c.publicKey, req)
}

// GetWithdrawalHistory lists recent withdrawals, newest first.
func (c *Client) GetWithdrawalHistory(ctx context.Context, req GetWithdrawalHistoryRequest) ([]WithdrawalInfo, error) {
	return api.GetWithdrawalHistory(ctx, c.http, c.endpoint, c.publicKey, req)
}

// GetWithdrawalInfo returns the current state of one withdrawal.
func (c *Client) GetWithdrawalInfo(ctx context.Context, req GetWithdrawalInfoRequest) (*WithdrawalInfo, error) {
	return api.GetWithdrawalInfo(ctx, c.http, c.endpoint, c.publicKey, req)
}
