package api

import (
	"context"
	"net/http"

	"github.com/ramzeysiele/coinpayments/internal/types"
)

// Command names for the transaction family.
const (
	cmdCreateTransaction = "create_transaction"
	cmdGetTxInfo         = "get_tx_info"
	cmdGetTxInfoMulti    = "get_tx_info_multi"
	cmdGetTxIDs          = "get_tx_ids"
)

// CreateTransaction starts a checkout payment and returns the deposit
// instructions for the buyer.
func CreateTransaction(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.CreateTransactionRequest) (*types.Transaction, error) {
	if err := types.ValidateRequest(req); err != nil {
		return nil, err
	}
	var txn types.Transaction
	if err := callInto(ctx, httpClient, ep, publicKey, cmdCreateTransaction, req.Values(), &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// GetTxInfo returns the current state of one payment.
func GetTxInfo(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.GetTxInfoRequest) (*types.TxInfo, error) {
	if err := types.ValidateRequest(req); err != nil {
		return nil, err
	}
	var info types.TxInfo
	if err := callInto(ctx, httpClient, ep, publicKey, cmdGetTxInfo, req.Values(), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetTxInfoMulti returns the state of up to 25 payments keyed by their
// transaction IDs. Lookup failures are reported per entry, not as a call
// failure.
func GetTxInfoMulti(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.GetTxInfoMultiRequest) (map[string]types.TxInfoMultiEntry, error) {
	if err := types.ValidateRequest(req); err != nil {
		return nil, err
	}
	var entries map[string]types.TxInfoMultiEntry
	if err := callInto(ctx, httpClient, ep, publicKey, cmdGetTxInfoMulti, req.Values(), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetTxIDs lists recent transaction IDs, newest first.
func GetTxIDs(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.GetTxIDsRequest) ([]string, error) {
	if err := types.ValidateRequest(req); err != nil {
		return nil, err
	}
	var ids []string
	if err := callInto(ctx, httpClient, ep, publicKey, cmdGetTxIDs, req.Values(), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
