package types

// Typed command results. Field names follow the wire: integer amounts are
// in the coin's smallest unit (satoshis), the matching *F fields carry the
// human-readable decimal string. Timestamps are unix seconds.

// BasicInfo describes the account behind the API keys.
type BasicInfo struct {
	Username   string `json:"username"`
	MerchantID string `json:"merchant_id"`
	Email      string `json:"email"`
	PublicName string `json:"public_name"`
	TimeJoined int64  `json:"time_joined,omitempty"`
}

// Rate is one coin's entry in the exchange rate table.
type Rate struct {
	IsFiat       int      `json:"is_fiat"`
	RateBTC      string   `json:"rate_btc"`
	LastUpdate   string   `json:"last_update"`
	TxFee        string   `json:"tx_fee"`
	Status       string   `json:"status"`
	Name         string   `json:"name"`
	Confirms     string   `json:"confirms"`
	CanConvert   int      `json:"can_convert"`
	Capabilities []string `json:"capabilities"`
	Accepted     int      `json:"accepted"`
}

// Balance is one coin's entry in the account balance table.
type Balance struct {
	Balance    int64  `json:"balance"`
	BalanceF   string `json:"balancef"`
	Status     string `json:"status"`
	CoinStatus string `json:"coin_status"`
}

// DepositAddress is a personal address for topping up the account balance.
type DepositAddress struct {
	Address string `json:"address"`
	PubKey  string `json:"pubkey,omitempty"`
	DestTag string `json:"dest_tag,omitempty"`
}

// CallbackAddress is a deposit address wired to IPN callbacks.
type CallbackAddress struct {
	Address string `json:"address"`
	PubKey  string `json:"pubkey,omitempty"`
	DestTag string `json:"dest_tag,omitempty"`
}

// Transaction holds the deposit instructions for a freshly created payment.
type Transaction struct {
	Amount         string `json:"amount"`
	TxnID          string `json:"txn_id"`
	Address        string `json:"address"`
	DestTag        string `json:"dest_tag,omitempty"`
	ConfirmsNeeded string `json:"confirms_needed"`
	Timeout        int    `json:"timeout"`
	CheckoutURL    string `json:"checkout_url"`
	StatusURL      string `json:"status_url"`
	QRCodeURL      string `json:"qrcode_url"`
}

// TxInfo is the current state of a payment.
type TxInfo struct {
	TimeCreated    int64  `json:"time_created"`
	TimeExpires    int64  `json:"time_expires"`
	Status         int    `json:"status"`
	StatusText     string `json:"status_text"`
	Type           string `json:"type"`
	Coin           string `json:"coin"`
	Amount         int64  `json:"amount"`
	AmountF        string `json:"amountf"`
	Received       int64  `json:"received"`
	ReceivedF      string `json:"receivedf"`
	RecvConfirms   int    `json:"recv_confirms"`
	PaymentAddress string `json:"payment_address"`
	TimeCompleted  int64  `json:"time_completed,omitempty"`
}

// IsComplete reports whether the payment has finished successfully.
// Statuses of 100 and above are terminal successes; 2 is the queued
// PayPal-style passthrough that is also safe to fulfil.
func (t TxInfo) IsComplete() bool { return t.Status >= 100 || t.Status == 2 }

// IsFailed reports whether the payment ended in error or cancellation.
func (t TxInfo) IsFailed() bool { return t.Status < 0 }

// TxInfoMultiEntry is one payment's slot in a get_tx_info_multi result.
// Error is "ok" when the lookup of this particular ID succeeded.
type TxInfoMultiEntry struct {
	Error string `json:"error"`
	TxInfo
}

// Transfer acknowledges a funds transfer to another account.
type Transfer struct {
	ID string `json:"id"`
	// Status is 0 while the transfer waits for email confirmation and 1
	// once it has been sent.
	Status int `json:"status"`
}

// Conversion acknowledges a coin conversion.
type Conversion struct {
	ID string `json:"id"`
}

// ConvertLimits bounds the amount convertible between two coins.
type ConvertLimits struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// ConversionInfo is the current state of a coin conversion.
type ConversionInfo struct {
	TimeCreated int64  `json:"time_created"`
	Status      int    `json:"status"`
	StatusText  string `json:"status_text"`
	Coin1       string `json:"coin1"`
	Coin2       string `json:"coin2"`
	AmountSent  int64  `json:"amount_sent"`
	AmountSentF string `json:"amount_sentf"`
	Received    int64  `json:"received"`
	ReceivedF   string `json:"receivedf"`
}

// Withdrawal acknowledges a newly created withdrawal.
type Withdrawal struct {
	ID string `json:"id"`
	// Status is 0 while the withdrawal waits for email confirmation and
	// 1 once it has been created and queued for sending.
	Status int    `json:"status"`
	Amount string `json:"amount"`
}

// MassWithdrawalEntry is one withdrawal's slot in a create_mass_withdrawal
// result, keyed the same way as the request. Error is "ok" on success.
type MassWithdrawalEntry struct {
	Error  string `json:"error"`
	ID     string `json:"id,omitempty"`
	Status int    `json:"status,omitempty"`
	Amount string `json:"amount,omitempty"`
}

// WithdrawalInfo is the current state of a withdrawal.
type WithdrawalInfo struct {
	ID          string `json:"id,omitempty"`
	TimeCreated int64  `json:"time_created"`
	Status      int    `json:"status"`
	StatusText  string `json:"status_text"`
	Coin        string `json:"coin"`
	Amount      int64  `json:"amount"`
	AmountF     string `json:"amountf"`
	SendAddress string `json:"send_address"`
	SendTxID    string `json:"send_txid,omitempty"`
	SendDestTag string `json:"send_dest_tag,omitempty"`
}
