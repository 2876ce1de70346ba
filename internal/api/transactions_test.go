package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ramzeysiele/coinpayments/internal/types"
)

func TestCreateTransaction_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("cmd") != "create_transaction" {
			t.Errorf("cmd = %q", r.FormValue("cmd"))
		}
		if r.FormValue("amount") != "10.00" || r.FormValue("currency2") != "LTC" {
			t.Errorf("unexpected form: %v", r.Form)
		}
		_, _ = w.Write([]byte(`{"error":"ok","result":{
			"amount":"0.25000000","txn_id":"CPDE4VXM",
			"address":"LNn1b3mLLSVtSDHSvDyQJcS4zTE83VY9at",
			"confirms_needed":"3","timeout":3600,
			"checkout_url":"https://www.coinpayments.net/index.php?cmd=checkout&id=CPDE4VXM",
			"status_url":"https://www.coinpayments.net/index.php?cmd=status&id=CPDE4VXM",
			"qrcode_url":"https://www.coinpayments.net/qrgen.php?id=CPDE4VXM"}}`))
	}))
	defer srv.Close()

	req := types.CreateTransactionRequest{Amount: "10.00", Currency1: "USD", Currency2: "LTC", BuyerEmail: "buyer@example.com"}
	txn, err := CreateTransaction(context.Background(), srv.Client(), testEndpoint(srv.URL), "pub-key", req)
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if txn.TxnID != "CPDE4VXM" || txn.Amount != "0.25000000" || txn.Timeout != 3600 {
		t.Fatalf("unexpected transaction: %+v", txn)
	}
}

func TestCreateTransaction_ValidationNeverTouchesNetwork(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`{"error":"ok","result":{}}`))
	}))
	defer srv.Close()

	req := types.CreateTransactionRequest{Amount: "10.00"} // missing currencies and email
	_, err := CreateTransaction(context.Background(), srv.Client(), testEndpoint(srv.URL), "pub-key", req)

	var verr *types.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v (%T), want *types.ValidationError", err, err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("invalid request reached the network %d times", hits)
	}
}

func TestGetTxIDs_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("limit") != "2" {
			t.Errorf("limit = %q", r.FormValue("limit"))
		}
		_, _ = w.Write([]byte(`{"error":"ok","result":["CPDE4VXM","CPDF9QNA"]}`))
	}))
	defer srv.Close()

	ids, err := GetTxIDs(context.Background(), srv.Client(), testEndpoint(srv.URL), "pub-key", types.GetTxIDsRequest{Limit: 2})
	if err != nil {
		t.Fatalf("GetTxIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != "CPDE4VXM" {
		t.Fatalf("ids = %v", ids)
	}
}

func TestGetTxInfoMulti_PerEntryErrors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("txid") != "good|bad" {
			t.Errorf("txid = %q", r.FormValue("txid"))
		}
		_, _ = w.Write([]byte(`{"error":"ok","result":{
			"good":{"error":"ok","status":100,"status_text":"Complete"},
			"bad":{"error":"Transaction not found"}}}`))
	}))
	defer srv.Close()

	entries, err := GetTxInfoMulti(context.Background(), srv.Client(), testEndpoint(srv.URL), "pub-key", types.GetTxInfoMultiRequest{TxIDs: []string{"good", "bad"}})
	if err != nil {
		t.Fatalf("GetTxInfoMulti: %v", err)
	}
	if entries["good"].Error != "ok" || !entries["good"].IsComplete() {
		t.Fatalf("good entry = %+v", entries["good"])
	}
	if entries["bad"].Error != "Transaction not found" {
		t.Fatalf("bad entry = %+v", entries["bad"])
	}
}
