// Package ipn receives and verifies Instant Payment Notifications: the
// API's half of the HMAC contract. CoinPayments POSTs a form-encoded
// notification to the merchant's callback URL with an HMAC header computed
// over the raw body, keyed by the merchant's IPN secret. This package
// verifies that signature, parses the form into a typed Notification and
// offers a mountable http.Handler that does both.
package ipn

import (
	"fmt"
	"net/url"
	"strconv"
)

// Notification types as reported in the ipn_type field.
const (
	TypeSimple     = "simple"
	TypeButton     = "button"
	TypeCart       = "cart"
	TypeDonation   = "donation"
	TypeDeposit    = "deposit"
	TypeWithdrawal = "withdrawal"
	TypeAPI        = "api"
)

// Notification is one parsed IPN. Amounts stay strings end to end, the same
// decimal-safety rule the client API follows; Status is the only field the
// package interprets.
type Notification struct {
	IPNVersion string
	IPNType    string
	IPNMode    string
	IPNID      string
	Merchant   string

	TxnID      string
	Status     int
	StatusText string

	Currency1 string
	Currency2 string
	Amount1   string
	Amount2   string
	Fee       string
	NetAmount string

	Address        string
	Confirms       int
	ReceivedAmount string

	BuyerName  string
	Email      string
	ItemName   string
	ItemNumber string
	Invoice    string
	Custom     string

	// Fields holds every form field as received, including any not mapped
	// to a struct field above.
	Fields url.Values
}

// IsComplete reports whether the payment behind the notification finished
// successfully. Statuses of 100 and above are terminal successes; 2 is the
// queued passthrough that is also safe to fulfil.
func (n *Notification) IsComplete() bool { return n.Status >= 100 || n.Status == 2 }

// IsFailed reports whether the payment ended in error or cancellation.
func (n *Notification) IsFailed() bool { return n.Status < 0 }

// IsPending reports whether the payment is still in flight.
func (n *Notification) IsPending() bool { return !n.IsComplete() && !n.IsFailed() }

// Parse decodes a raw form-encoded IPN body into a Notification. It does
// not verify the signature: callers verify the raw bytes first (Verify),
// then parse. Parse only fails on bodies that are not form data or carry a
// non-numeric status; missing fields are left at their zero values.
func Parse(body []byte) (*Notification, error) {
	fields, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("ipn: parse body: %w", err)
	}

	n := &Notification{
		IPNVersion:     fields.Get("ipn_version"),
		IPNType:        fields.Get("ipn_type"),
		IPNMode:        fields.Get("ipn_mode"),
		IPNID:          fields.Get("ipn_id"),
		Merchant:       fields.Get("merchant"),
		TxnID:          fields.Get("txn_id"),
		StatusText:     fields.Get("status_text"),
		Currency1:      fields.Get("currency1"),
		Currency2:      fields.Get("currency2"),
		Amount1:        fields.Get("amount1"),
		Amount2:        fields.Get("amount2"),
		Fee:            fields.Get("fee"),
		NetAmount:      fields.Get("net"),
		Address:        fields.Get("address"),
		ReceivedAmount: fields.Get("received_amount"),
		BuyerName:      fields.Get("buyer_name"),
		Email:          fields.Get("email"),
		ItemName:       fields.Get("item_name"),
		ItemNumber:     fields.Get("item_number"),
		Invoice:        fields.Get("invoice"),
		Custom:         fields.Get("custom"),
		Fields:         fields,
	}

	if s := fields.Get("status"); s != "" {
		n.Status, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("ipn: status %q is not numeric", s)
		}
	}
	if c := fields.Get("confirms"); c != "" {
		n.Confirms, err = strconv.Atoi(c)
		if err != nil {
			return nil, fmt.Errorf("ipn: confirms %q is not numeric", c)
		}
	}
	return n, nil
}
