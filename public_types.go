package coinpayments

import "github.com/ramzeysiele/coinpayments/internal/types"

// Public type aliases so SDK consumers can import only this package.
type (
	// Requests
	RatesRequest                = types.RatesRequest
	BalancesRequest             = types.BalancesRequest
	GetDepositAddressRequest    = types.GetDepositAddressRequest
	GetCallbackAddressRequest   = types.GetCallbackAddressRequest
	CreateTransactionRequest    = types.CreateTransactionRequest
	GetTxInfoRequest            = types.GetTxInfoRequest
	GetTxInfoMultiRequest       = types.GetTxInfoMultiRequest
	GetTxIDsRequest             = types.GetTxIDsRequest
	CreateTransferRequest       = types.CreateTransferRequest
	ConvertRequest              = types.ConvertRequest
	ConvertLimitsRequest        = types.ConvertLimitsRequest
	GetConversionInfoRequest    = types.GetConversionInfoRequest
	CreateWithdrawalRequest     = types.CreateWithdrawalRequest
	MassWithdrawalItem          = types.MassWithdrawalItem
	CreateMassWithdrawalRequest = types.CreateMassWithdrawalRequest
	GetWithdrawalHistoryRequest = types.GetWithdrawalHistoryRequest
	GetWithdrawalInfoRequest    = types.GetWithdrawalInfoRequest

	// Responses
	BasicInfo           = types.BasicInfo
	Rate                = types.Rate
	Balance             = types.Balance
	DepositAddress      = types.DepositAddress
	CallbackAddress     = types.CallbackAddress
	Transaction         = types.Transaction
	TxInfo              = types.TxInfo
	TxInfoMultiEntry    = types.TxInfoMultiEntry
	Transfer            = types.Transfer
	Conversion          = types.Conversion
	ConvertLimitsInfo   = types.ConvertLimits
	ConversionInfo      = types.ConversionInfo
	Withdrawal          = types.Withdrawal
	MassWithdrawalEntry = types.MassWithdrawalEntry
	WithdrawalInfo      = types.WithdrawalInfo
)

// Errors re-exported in errors.go
