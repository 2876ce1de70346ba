package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransactionRequest_Values(t *testing.T) {
	t.Parallel()
	req := CreateTransactionRequest{
		Amount:     "19.99",
		Currency1:  "USD",
		Currency2:  "LTC",
		BuyerEmail: "buyer@example.com",
		Invoice:    "inv-42",
	}
	v := req.Values()

	assert.Equal(t, "19.99", v.Get("amount"))
	assert.Equal(t, "USD", v.Get("currency1"))
	assert.Equal(t, "LTC", v.Get("currency2"))
	assert.Equal(t, "buyer@example.com", v.Get("buyer_email"))
	assert.Equal(t, "inv-42", v.Get("invoice"))

	// Unset optionals must not appear at all; the API treats an empty
	// field differently from an absent one.
	for _, absent := range []string{"address", "buyer_name", "item_name", "ipn_url", "success_url", "cancel_url", "custom", "item_number"} {
		_, ok := v[absent]
		assert.Falsef(t, ok, "field %q should be absent", absent)
	}
}

func TestCreateTransactionRequest_Validate(t *testing.T) {
	t.Parallel()
	valid := CreateTransactionRequest{Amount: "1.00", Currency1: "USD", Currency2: "BTC", BuyerEmail: "a@b.io"}
	require.NoError(t, ValidateRequest(valid))

	missing := valid
	missing.Amount = ""
	err := ValidateRequest(missing)
	require.Error(t, err)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr), "want *ValidationError, got %T", err)

	badEmail := valid
	badEmail.BuyerEmail = "not-an-email"
	assert.Error(t, ValidateRequest(badEmail))
}

func TestCreateTransferRequest_RecipientExactlyOne(t *testing.T) {
	t.Parallel()
	base := CreateTransferRequest{Amount: "0.5", Currency: "BTC"}

	neither := base
	assert.Error(t, ValidateRequest(neither), "no recipient should fail")

	both := base
	both.Merchant = "1234567890abcdef"
	both.PBNTag = "$tag"
	assert.Error(t, ValidateRequest(both), "two recipients should fail")

	merchant := base
	merchant.Merchant = "1234567890abcdef"
	assert.NoError(t, ValidateRequest(merchant))

	tag := base
	tag.PBNTag = "$tag"
	assert.NoError(t, ValidateRequest(tag))
}

func TestGetTxInfoMultiRequest_Values(t *testing.T) {
	t.Parallel()
	req := GetTxInfoMultiRequest{TxIDs: []string{"a", "b", "c"}}
	assert.Equal(t, "a|b|c", req.Values().Get("txid"))

	require.Error(t, ValidateRequest(GetTxInfoMultiRequest{}))
	require.Error(t, ValidateRequest(GetTxInfoMultiRequest{TxIDs: make([]string, 26)}))
}

func TestGetTxIDsRequest_Values(t *testing.T) {
	t.Parallel()
	v := GetTxIDsRequest{}.Values()
	assert.Empty(t, v, "zero request should carry no fields")

	v = GetTxIDsRequest{Limit: 25, Newer: 1700000000, All: true}.Values()
	assert.Equal(t, "25", v.Get("limit"))
	assert.Equal(t, "1700000000", v.Get("newer"))
	assert.Equal(t, "1", v.Get("all"))
	_, ok := v["start"]
	assert.False(t, ok)

	assert.Error(t, ValidateRequest(GetTxIDsRequest{Limit: 101}))
}

func TestCreateWithdrawalRequest_Validate(t *testing.T) {
	t.Parallel()
	req := CreateWithdrawalRequest{Amount: "1.0", Currency: "BTC"}
	assert.Error(t, ValidateRequest(req), "address or pbntag is required")

	req.Address = "bc1qexample"
	require.NoError(t, ValidateRequest(req))

	v := req.Values()
	assert.Equal(t, "bc1qexample", v.Get("address"))
	_, ok := v["auto_confirm"]
	assert.False(t, ok, "auto_confirm should be absent unless set")
}

func TestCreateMassWithdrawalRequest_Values(t *testing.T) {
	t.Parallel()
	req := CreateMassWithdrawalRequest{Withdrawals: []MassWithdrawalItem{
		{Amount: "1.0", Currency: "BTC", Address: "addr-1"},
		{ID: "rent", Amount: "2.0", Currency: "LTC", Address: "addr-2", DestTag: "77"},
	}}
	require.NoError(t, ValidateRequest(req))

	v := req.Values()
	assert.Equal(t, "1.0", v.Get("wd[wd1][amount]"))
	assert.Equal(t, "BTC", v.Get("wd[wd1][currency]"))
	assert.Equal(t, "addr-1", v.Get("wd[wd1][address]"))
	assert.Equal(t, "2.0", v.Get("wd[rent][amount]"))
	assert.Equal(t, "77", v.Get("wd[rent][dest_tag]"))
	_, ok := v["wd[wd1][dest_tag]"]
	assert.False(t, ok)

	empty := CreateMassWithdrawalRequest{}
	assert.Error(t, ValidateRequest(empty))

	incomplete := CreateMassWithdrawalRequest{Withdrawals: []MassWithdrawalItem{{Amount: "1.0"}}}
	assert.Error(t, ValidateRequest(incomplete), "dive validation should reach items")
}
