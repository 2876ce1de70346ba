package api

import (
	"context"
	"net/http"

	"github.com/ramzeysiele/coinpayments/internal/types"
)

// Command names for the transfer and conversion family.
const (
	cmdCreateTransfer    = "create_transfer"
	cmdConvert           = "convert"
	cmdConvertLimits     = "convert_limits"
	cmdGetConversionInfo = "get_conversion_info"
)

// CreateTransfer moves funds to another account or $PayByName tag. The
// move is internal and carries no network fee.
func CreateTransfer(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.CreateTransferRequest) (*types.Transfer, error) {
	if err := types.ValidateRequest(req); err != nil {
		return nil, err
	}
	var tr types.Transfer
	if err := callInto(ctx, httpClient, ep, publicKey, cmdCreateTransfer, req.Values(), &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

// Convert exchanges funds from one coin into another.
func Convert(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.ConvertRequest) (*types.Conversion, error) {
	if err := types.ValidateRequest(req); err != nil {
		return nil, err
	}
	var conv types.Conversion
	if err := callInto(ctx, httpClient, ep, publicKey, cmdConvert, req.Values(), &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// ConvertLimits returns the smallest and largest amount convertible
// between two coins right now.
func ConvertLimits(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.ConvertLimitsRequest) (*types.ConvertLimits, error) {
	if err := types.ValidateRequest(req); err != nil {
		return nil, err
	}
	var limits types.ConvertLimits
	if err := callInto(ctx, httpClient, ep, publicKey, cmdConvertLimits, req.Values(), &limits); err != nil {
		return nil, err
	}
	return &limits, nil
}

// GetConversionInfo returns the current state of a conversion.
func GetConversionInfo(ctx context.Context, httpClient *http.Client, ep Endpoint, publicKey string, req types.GetConversionInfoRequest) (*types.ConversionInfo, error) {
	if err := types.ValidateRequest(req); err != nil {
		return nil, err
	}
	var info types.ConversionInfo
	if err := callInto(ctx, httpClient, ep, publicKey, cmdGetConversionInfo, req.Values(), &info); err != nil {
		return nil, err
	}
	return &info, nil
}
