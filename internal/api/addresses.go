package api

import (
	"context"
	"net/http"

	"github.com/ramzeysiele/coinpayments/internal/types"
)

// Command names for the address family.
const (
	cmdGetDepositAddress  = "get_deposit_address"
	cmdGetCallbackAddress = "get_callback_address"
)

// GetDepositAddress returns the account's own deposit address for a coin.
// Payments to it carry no fee but trigger no IPNs; use a callback address
// for payments that must be observed.
func GetDepositAddress(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.GetDepositAddressRequest) (*types.DepositAddress, error) {
	if err := types.ValidateRequest(req); err != nil {
		return nil, err
	}
	var addr types.DepositAddress
	if err := callInto(ctx, httpClient, ep, publicKey, cmdGetDepositAddress, req.Values(), &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

// GetCallbackAddress returns a fresh deposit address that reports incoming
// payments to the request's IPN URL.
func GetCallbackAddress(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.GetCallbackAddressRequest) (*types.CallbackAddress, error) {
	if err := types.ValidateRequest(req); err != nil {
		return nil, err
	}
	var addr types.CallbackAddress
	if err := callInto(ctx, httpClient, ep, publicKey, cmdGetCallbackAddress, req.Values(), &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}
