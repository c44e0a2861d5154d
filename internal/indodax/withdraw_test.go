package indodax

import (
	"context"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
)

func TestWithdrawFeeDenominatedInRequestedCurrency(t *testing.T) {
	var form url.Values
	client, _ := newTestClient(t, captureForm(t, &form,
		`{"success":1,"return":{"server_time":1700000000,"currency":"btc","withdraw_fee":"0.0005"}}`))

	info, err := client.WithdrawFee(context.Background(), "BTC", "")
	if err != nil {
		t.Fatalf("WithdrawFee() error = %v", err)
	}
	if info.Fee.Asset != "btc" {
		t.Fatalf("fee asset = %q, want the requested currency", info.Fee.Asset)
	}
	if !info.Fee.Amount.Equal(decimal.RequireFromString("0.0005")) {
		t.Fatalf("fee amount = %s, want 0.0005", info.Fee.Amount)
	}
	if form.Get("currency") != "btc" {
		t.Fatalf("currency param = %q, want lowercased btc", form.Get("currency"))
	}
	if form.Has("network") {
		t.Fatalf("empty network was sent: %v", form)
	}
}

func TestWithdrawFeeSendsNetworkWhenSet(t *testing.T) {
	var form url.Values
	client, _ := newTestClient(t, captureForm(t, &form,
		`{"success":1,"return":{"server_time":1700000000,"withdraw_fee":"1"}}`))

	info, err := client.WithdrawFee(context.Background(), "usdt", "TRC20")
	if err != nil {
		t.Fatalf("WithdrawFee() error = %v", err)
	}
	if form.Get("network") != "trc20" {
		t.Fatalf("network param = %q, want lowercased trc20", form.Get("network"))
	}
	if info.Fee.Asset != "usdt" {
		t.Fatalf("fee asset = %q, want usdt fallback when the response omits currency", info.Fee.Asset)
	}
}

func TestWithdrawCoinReceiptAssetsFollowCurrency(t *testing.T) {
	var form url.Values
	client, _ := newTestClient(t, captureForm(t, &form,
		`{"success":1,"return":{
			"withdraw_currency":"btc",
			"withdraw_address":"addr1",
			"withdraw_amount":"0.01",
			"fee":"0.0005",
			"submit_time":1700000000,
			"request_id":"test-9"
		}}`))

	receipt, err := client.WithdrawCoin(context.Background(), WithdrawRequest{
		Currency: "btc",
		Network:  "btc",
		Address:  "addr1",
		Amount:   decimal.RequireFromString("0.01"),
	})
	if err != nil {
		t.Fatalf("WithdrawCoin() error = %v", err)
	}
	if receipt.Amount.Asset != "btc" {
		t.Fatalf("amount asset = %q, want the withdrawn currency", receipt.Amount.Asset)
	}
	if !receipt.Amount.Amount.Equal(decimal.RequireFromString("0.01")) {
		t.Fatalf("amount = %s, want 0.01", receipt.Amount.Amount)
	}
	if receipt.Fee.Asset != "btc" {
		t.Fatalf("fee asset = %q, want the withdrawn currency", receipt.Fee.Asset)
	}
	if receipt.RequestID != "test-9" {
		t.Fatalf("request id = %q, want the response value", receipt.RequestID)
	}
	if form.Has("withdraw_memo") {
		t.Fatalf("empty memo was sent: %v", form)
	}
	if form.Get("request_id") == "" {
		t.Fatalf("request_id not defaulted in the request")
	}
}

func TestWithdrawCoinByUsernameParams(t *testing.T) {
	var form url.Values
	client, _ := newTestClient(t, captureForm(t, &form,
		`{"success":1,"return":{"withdraw_amount":"25","fee":"0.1","submit_time":1700000000}}`))

	receipt, err := client.WithdrawCoinByUsername(context.Background(), WithdrawUsernameRequest{
		Currency: "xrp",
		Username: "budi",
		Amount:   decimal.NewFromInt(25),
	})
	if err != nil {
		t.Fatalf("WithdrawCoinByUsername() error = %v", err)
	}
	if form.Get("withdraw_input_method") != "username" {
		t.Fatalf("withdraw_input_method = %q", form.Get("withdraw_input_method"))
	}
	if form.Get("withdraw_username") != "budi" {
		t.Fatalf("withdraw_username = %q", form.Get("withdraw_username"))
	}
	if form.Has("network") || form.Has("withdraw_memo") {
		t.Fatalf("unexpected params sent: %v", form)
	}
	if receipt.Username != "budi" {
		t.Fatalf("username = %q, want the request value when the response omits it", receipt.Username)
	}
	if receipt.Amount.Asset != "xrp" || receipt.Fee.Asset != "xrp" {
		t.Fatalf("receipt assets = %s/%s, want xrp/xrp", receipt.Amount.Asset, receipt.Fee.Asset)
	}
}
