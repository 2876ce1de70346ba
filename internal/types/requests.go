package types

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Typed command requests. Each request knows how to render itself as the
// form fields the API expects via Values; amounts stay strings end to end
// so callers control decimal formatting.

// RatesRequest selects which exchange rates to fetch.
type RatesRequest struct {
	// Short omits the coin names and capability lists from the response.
	Short bool
	// Accepted filters by acceptance: 0 all coins, 1 only accepted, 2
	// accepted plus those enabled for conversion.
	Accepted int `validate:"min=0,max=2"`
}

func (r RatesRequest) Values() url.Values {
	v := url.Values{}
	setFlag(v, "short", r.Short)
	setOptInt(v, "accepted", r.Accepted)
	return v
}

// BalancesRequest selects which coin balances to fetch.
type BalancesRequest struct {
	// All includes coins with a zero balance.
	All bool
}

func (r BalancesRequest) Values() url.Values {
	v := url.Values{}
	setFlag(v, "all", r.All)
	return v
}

// GetDepositAddressRequest asks for a personal deposit address.
type GetDepositAddressRequest struct {
	Currency string `validate:"required"`
}

func (r GetDepositAddressRequest) Values() url.Values {
	v := url.Values{}
	v.Set("currency", r.Currency)
	return v
}

// GetCallbackAddressRequest asks for a deposit address that reports
// incoming payments to IPNURL.
type GetCallbackAddressRequest struct {
	Currency string `validate:"required"`
	IPNURL   string `validate:"omitempty,url"`
	Label    string
}

func (r GetCallbackAddressRequest) Values() url.Values {
	v := url.Values{}
	v.Set("currency", r.Currency)
	setOpt(v, "ipn_url", r.IPNURL)
	setOpt(v, "label", r.Label)
	return v
}

// CreateTransactionRequest starts a checkout payment. Currency1 is the
// currency the Amount is priced in; Currency2 is the coin the buyer pays
// with.
type CreateTransactionRequest struct {
	Amount     string `validate:"required"`
	Currency1  string `validate:"required"`
	Currency2  string `validate:"required"`
	BuyerEmail string `validate:"required,email"`

	Address    string
	BuyerName  string
	ItemName   string
	ItemNumber string
	Invoice    string
	Custom     string
	IPNURL     string `validate:"omitempty,url"`
	SuccessURL string `validate:"omitempty,url"`
	CancelURL  string `validate:"omitempty,url"`
}

func (r CreateTransactionRequest) Values() url.Values {
	v := url.Values{}
	v.Set("amount", r.Amount)
	v.Set("currency1", r.Currency1)
	v.Set("currency2", r.Currency2)
	v.Set("buyer_email", r.BuyerEmail)
	setOpt(v, "address", r.Address)
	setOpt(v, "buyer_name", r.BuyerName)
	setOpt(v, "item_name", r.ItemName)
	setOpt(v, "item_number", r.ItemNumber)
	setOpt(v, "invoice", r.Invoice)
	setOpt(v, "custom", r.Custom)
	setOpt(v, "ipn_url", r.IPNURL)
	setOpt(v, "success_url", r.SuccessURL)
	setOpt(v, "cancel_url", r.CancelURL)
	return v
}

// GetTxInfoRequest looks up one payment by its transaction ID.
type GetTxInfoRequest struct {
	TxID string `validate:"required"`
	// Full includes the checkout and shipping details in the response.
	Full bool
}

func (r GetTxInfoRequest) Values() url.Values {
	v := url.Values{}
	v.Set("txid", r.TxID)
	setFlag(v, "full", r.Full)
	return v
}

// GetTxInfoMultiRequest looks up up to 25 payments in one call.
type GetTxInfoMultiRequest struct {
	TxIDs []string `validate:"required,min=1,max=25,dive,required"`
}

func (r GetTxInfoMultiRequest) Values() url.Values {
	v := url.Values{}
	v.Set("txid", strings.Join(r.TxIDs, "|"))
	return v
}

// GetTxIDsRequest lists recent transaction IDs.
type GetTxIDsRequest struct {
	Limit int   `validate:"omitempty,min=1,max=100"`
	Start int   `validate:"min=0"`
	Newer int64 `validate:"min=0"`
	// All includes transactions that are completed or expired.
	All bool
}

func (r GetTxIDsRequest) Values() url.Values {
	v := url.Values{}
	setOptInt(v, "limit", r.Limit)
	setOptInt(v, "start", r.Start)
	setOptInt64(v, "newer", r.Newer)
	setFlag(v, "all", r.All)
	return v
}

// CreateTransferRequest moves funds to another merchant account or
// $PayByName tag. Exactly one of Merchant and PBNTag identifies the
// recipient.
type CreateTransferRequest struct {
	Amount   string `validate:"required"`
	Currency string `validate:"required"`
	Merchant string `validate:"required_without=PBNTag,excluded_with=PBNTag"`
	PBNTag   string
	// AutoConfirm skips the email confirmation step.
	AutoConfirm bool
}

func (r CreateTransferRequest) Values() url.Values {
	v := url.Values{}
	v.Set("amount", r.Amount)
	v.Set("currency", r.Currency)
	setOpt(v, "merchant", r.Merchant)
	setOpt(v, "pbntag", r.PBNTag)
	setFlag(v, "auto_confirm", r.AutoConfirm)
	return v
}

// ConvertRequest converts funds between coins.
type ConvertRequest struct {
	Amount string `validate:"required"`
	From   string `validate:"required"`
	To     string `validate:"required"`
	// Address receives the converted coins; empty keeps them in the
	// account balance.
	Address string
}

func (r ConvertRequest) Values() url.Values {
	v := url.Values{}
	v.Set("amount", r.Amount)
	v.Set("from", r.From)
	v.Set("to", r.To)
	setOpt(v, "address", r.Address)
	return v
}

// ConvertLimitsRequest asks for the min/max convertible amounts of a pair.
type ConvertLimitsRequest struct {
	From string `validate:"required"`
	To   string `validate:"required"`
}

func (r ConvertLimitsRequest) Values() url.Values {
	v := url.Values{}
	v.Set("from", r.From)
	v.Set("to", r.To)
	return v
}

// GetConversionInfoRequest looks up a conversion by its ID.
type GetConversionInfoRequest struct {
	ID string `validate:"required"`
}

func (r GetConversionInfoRequest) Values() url.Values {
	v := url.Values{}
	v.Set("id", r.ID)
	return v
}

// CreateWithdrawalRequest sends funds to an external address or $PayByName
// tag.
type CreateWithdrawalRequest struct {
	Amount   string `validate:"required"`
	Currency string `validate:"required"`
	// Currency2 prices Amount in another currency, withdrawing the
	// equivalent amount of Currency at the current rate.
	Currency2 string
	Address   string `validate:"required_without=PBNTag"`
	PBNTag    string
	DestTag   string
	IPNURL    string `validate:"omitempty,url"`
	// AutoConfirm skips the email confirmation step.
	AutoConfirm bool
	// AddTxFee deducts the network fee from the withdrawal instead of
	// the remaining balance.
	AddTxFee bool
	Note     string
}

func (r CreateWithdrawalRequest) Values() url.Values {
	v := url.Values{}
	v.Set("amount", r.Amount)
	v.Set("currency", r.Currency)
	setOpt(v, "currency2", r.Currency2)
	setOpt(v, "address", r.Address)
	setOpt(v, "pbntag", r.PBNTag)
	setOpt(v, "dest_tag", r.DestTag)
	setOpt(v, "ipn_url", r.IPNURL)
	setFlag(v, "auto_confirm", r.AutoConfirm)
	setFlag(v, "add_tx_fee", r.AddTxFee)
	setOpt(v, "note", r.Note)
	return v
}

// MassWithdrawalItem is one entry of a mass withdrawal. ID keys the entry
// in the request and the per-entry results; when empty a positional key is
// assigned.
type MassWithdrawalItem struct {
	ID       string
	Amount   string `validate:"required"`
	Currency string `validate:"required"`
	Address  string `validate:"required"`
	DestTag  string
}

// CreateMassWithdrawalRequest sends several withdrawals in a single call.
type CreateMassWithdrawalRequest struct {
	Withdrawals []MassWithdrawalItem `validate:"required,min=1,dive"`
}

func (r CreateMassWithdrawalRequest) Values() url.Values {
	v := url.Values{}
	for i, wd := range r.Withdrawals {
		key := wd.ID
		if key == "" {
			key = fmt.Sprintf("wd%d", i+1)
		}
		v.Set(fmt.Sprintf("wd[%s][amount]", key), wd.Amount)
		v.Set(fmt.Sprintf("wd[%s][currency]", key), wd.Currency)
		v.Set(fmt.Sprintf("wd[%s][address]", key), wd.Address)
		if wd.DestTag != "" {
			v.Set(fmt.Sprintf("wd[%s][dest_tag]", key), wd.DestTag)
		}
	}
	return v
}

// GetWithdrawalHistoryRequest lists recent withdrawals.
type GetWithdrawalHistoryRequest struct {
	Limit int   `validate:"omitempty,min=1,max=100"`
	Start int   `validate:"min=0"`
	Newer int64 `validate:"min=0"`
}

func (r GetWithdrawalHistoryRequest) Values() url.Values {
	v := url.Values{}
	setOptInt(v, "limit", r.Limit)
	setOptInt(v, "start", r.Start)
	setOptInt64(v, "newer", r.Newer)
	return v
}

// GetWithdrawalInfoRequest looks up a withdrawal by its ID.
type GetWithdrawalInfoRequest struct {
	ID string `validate:"required"`
}

func (r GetWithdrawalInfoRequest) Values() url.Values {
	v := url.Values{}
	v.Set("id", r.ID)
	return v
}

func setOpt(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setFlag(v url.Values, key string, on bool) {
	if on {
		v.Set(key, "1")
	}
}

func setOptInt(v url.Values, key string, n int) {
	if n != 0 {
		v.Set(key, strconv.Itoa(n))
	}
}

func setOptInt64(v url.Values, key string, n int64) {
	if n != 0 {
		v.Set(key, strconv.FormatInt(n, 10))
	}
}
