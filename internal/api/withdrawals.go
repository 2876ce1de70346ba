package api

import (
	"context"
	"net/http"

	"github.com/ramzeysiele/coinpayments/internal/types"
)

// Command names for the withdrawal family.
const (
	cmdCreateWithdrawal     = "create_withdrawal"
	cmdCreateMassWithdrawal = "create_mass_withdrawal"
	cmdGetWithdrawalHistory = "get_withdrawal_history"
	cmdGetWithdrawalInfo    = "get_withdrawal_info"
)

// CreateWithdrawal sends funds out to an external address. Unless the
// request sets AutoConfirm the withdrawal waits for email confirmation.
func CreateWithdrawal(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.CreateWithdrawalRequest) (*types.Withdrawal, error) {
	if err := types.ValidateRequest(req); err != nil {
		return nil, err
	}
	var wd types.Withdrawal
	if err := callInto(ctx, httpClient, ep, publicKey, cmdCreateWithdrawal, req.Values(), &wd); err != nil {
		return nil, err
	}
	return &wd, nil
}

// CreateMassWithdrawal sends several withdrawals in one call. Per-entry
// failures are reported in the entry's Error field, not as a call failure.
func CreateMassWithdrawal(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.CreateMassWithdrawalRequest) (map[string]types.MassWithdrawalEntry, error) {
	if err := types.ValidateRequest(req); err != nil {
		return nil, err
	}
	var entries map[string]types.MassWithdrawalEntry
	if err := callInto(ctx, httpClient, ep, publicKey, cmdCreateMassWithdrawal, req.Values(), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetWithdrawalHistory lists recent withdrawals, newest first.
func GetWithdrawalHistory(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.GetWithdrawalHistoryRequest) ([]types.WithdrawalInfo, error) {
	if err := types.ValidateRequest(req); err != nil {
		return nil, err
	}
	var history []types.WithdrawalInfo
	if err := callInto(ctx, httpClient, ep, publicKey, cmdGetWithdrawalHistory, req.Values(), &history); err != nil {
		return nil, err
	}
	return history, nil
}

// GetWithdrawalInfo returns the current state of one withdrawal.
func GetWithdrawalInfo(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.GetWithdrawalInfoRequest) (*types.WithdrawalInfo, error) {
	if err := types.ValidateRequest(req); err != nil {
		return nil, err
	}
	var info types.WithdrawalInfo
	if err := callInto(ctx, httpClient, ep, publicKey, cmdGetWithdrawalInfo, req.Values(), &info); err != nil {
		return nil, err
	}
	return &info, nil
}
