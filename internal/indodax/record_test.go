package indodax

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestResolveFallsBackToGenericKey(t *testing.T) {
	rec := record{"amount": "0.25", "price": "500000000"}
	got, key := rec.resolve("btc", "amount")
	if key != "amount" {
		t.Fatalf("resolve matched %q, want %q", key, "amount")
	}
	if !got.Equal(decimal.RequireFromString("0.25")) {
		t.Fatalf("resolve = %s, want 0.25", got)
	}
}

func TestResolvePrefersFirstKey(t *testing.T) {
	rec := record{"btc": "0.5", "amount": "0.25"}
	got, key := rec.resolve("btc", "amount")
	if key != "btc" || !got.Equal(decimal.RequireFromString("0.5")) {
		t.Fatalf("resolve = (%s, %q), want (0.5, btc)", got, key)
	}
}

func TestResolveMissingEverywhereDefaultsToZero(t *testing.T) {
	rec := record{"other": "1"}
	got, key := rec.resolve("remain_btc", "remain_idr")
	if key != "" || !got.IsZero() {
		t.Fatalf("resolve = (%s, %q), want (0, \"\")", got, key)
	}
}

func TestMoneyAssetFollowsMatchedKey(t *testing.T) {
	rec := record{"remain_idr": "150000"}
	m := rec.money("btc", "remain_btc", "remain_idr")
	if m.Asset != "idr" {
		t.Fatalf("asset = %q, want %q from matched key", m.Asset, "idr")
	}
	if !m.Amount.Equal(decimal.NewFromInt(150000)) {
		t.Fatalf("amount = %s, want 150000", m.Amount)
	}
}

func TestAssetFromKey(t *testing.T) {
	cases := []struct {
		key, fallback, want string
	}{
		{"remain_btc", "idr", "btc"},
		{"order_rp", "btc", "idr"},
		{"amount", "eth", "eth"},
		{"", "idr", "idr"},
	}
	for _, tc := range cases {
		if got := assetFromKey(tc.key, tc.fallback); got != tc.want {
			t.Fatalf("assetFromKey(%q, %q) = %q, want %q", tc.key, tc.fallback, got, tc.want)
		}
	}
}

func TestRecordFlagShapes(t *testing.T) {
	rec := record{"a": true, "b": "1", "c": float64(1), "d": "0", "e": nil}
	if !rec.flag("a") || !rec.flag("b") || !rec.flag("c") {
		t.Fatalf("flag() missed a truthy shape")
	}
	if rec.flag("d") || rec.flag("e") || rec.flag("missing") {
		t.Fatalf("flag() accepted a falsy shape")
	}
}

func TestSplitPair(t *testing.T) {
	base, quote := SplitPair("BTC_IDR")
	if base != "btc" || quote != "idr" {
		t.Fatalf("SplitPair(BTC_IDR) = %s/%s, want btc/idr", base, quote)
	}
	base, quote = SplitPair("eth")
	if base != "eth" || quote != "idr" {
		t.Fatalf("SplitPair(eth) = %s/%s, want eth/idr", base, quote)
	}
}
