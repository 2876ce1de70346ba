package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ramzeysiele/coinpayments/internal/types"
)

// Command names for the account family.
const (
	cmdGetBasicInfo = "get_basic_info"
	cmdRates        = "rates"
	cmdBalances     = "balances"
)

// GetBasicInfo returns the account profile behind the API keys.
func GetBasicInfo(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string) (*types.BasicInfo, error) {
	var info types.BasicInfo
	if err := callInto(ctx, httpClient, ep, publicKey, cmdGetBasicInfo, url.Values{}, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Rates returns the exchange rate table keyed by coin symbol.
func Rates(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.RatesRequest) (map[string]types.Rate, error) {
	if err := types.ValidateRequest(req); err != nil {
		return nil, err
	}
	var rates map[string]types.Rate
	if err := callInto(ctx, httpClient, ep, publicKey, cmdRates, req.Values(), &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

// Balances returns the account balances keyed by coin symbol.
func Balances(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.BalancesRequest) (map[string]types.Balance, error) {
	var balances map[string]types.Balance
	if err := callInto(ctx, httpClient, ep, publicKey, cmdBalances, req.Values(), &balances); err != nil {
		return nil, err
	}
	return balances, nil
}
