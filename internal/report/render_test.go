package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"indodax-bot/internal/indodax"
)

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestRenderAccountInfoFormatsBalancesPerAsset(t *testing.T) {
	caption := renderAccountInfo(indodax.AccountInfo{
		ServerTime:         1700000000,
		Name:               "Budi",
		Email:              "budi.santoso@gmail.com",
		UserID:             "12345",
		VerificationStatus: "verified",
		TwoFactorEnabled:   true,
		WithdrawEnabled:    true,
		Balances: []indodax.AssetBalance{
			{Asset: "btc", Amount: mustDec(t, "0.5")},
			{Asset: "idr", Amount: mustDec(t, "1000000")},
		},
	})

	for _, want := range []string{
		"Name: Budi",
		"Email: bu**********@g***l.com",
		"User ID: 12345",
		"2FA: Active",
		"Withdrawal: Active",
		"BTC: 0.50000000",
		"IDR: Rp1.000.000",
		"No held balance.",
	} {
		if !strings.Contains(caption, want) {
			t.Fatalf("caption missing %q:\n%s", want, caption)
		}
	}
	if strings.Contains(caption, "budi.santoso") {
		t.Fatalf("caption leaks the unmasked email:\n%s", caption)
	}
}

func TestRenderAccountInfoEmptyBalances(t *testing.T) {
	caption := renderAccountInfo(indodax.AccountInfo{UserID: "1"})
	if !strings.Contains(caption, "No active balance.") {
		t.Fatalf("caption missing empty-balance line:\n%s", caption)
	}
	if !strings.Contains(caption, "No held balance.") {
		t.Fatalf("caption missing empty-held line:\n%s", caption)
	}
}

func TestRenderTradeReceiptPriceLineOnlyForLimitOrders(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 30, 0, 0, time.Local)
	limit := renderTradeReceipt(indodax.TradeReceipt{
		Pair:      "btc_idr",
		Side:      "buy",
		OrderType: "limit",
		Price:     mustDec(t, "500000000"),
		Amount:    indodax.Money{Amount: mustDec(t, "100000"), Asset: "idr"},
	}, now)
	if !strings.Contains(limit, "Price: 500000000.00 IDR") {
		t.Fatalf("limit caption missing price line:\n%s", limit)
	}
	if !strings.Contains(limit, "Order Type: BUY LIMIT") {
		t.Fatalf("limit caption missing order type line:\n%s", limit)
	}

	market := renderTradeReceipt(indodax.TradeReceipt{
		Pair:      "btc_idr",
		Side:      "buy",
		OrderType: "market",
		Amount:    indodax.Money{Amount: mustDec(t, "100000"), Asset: "idr"},
	}, now)
	if strings.Contains(market, "Price:") {
		t.Fatalf("market caption has a price line:\n%s", market)
	}
}

func TestRenderOpenOrdersTotalsAcrossPairs(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 30, 0, 0, time.Local)
	order := indodax.OpenOrder{
		OrderID:   "1",
		Side:      "buy",
		Price:     indodax.Money{Amount: mustDec(t, "400000000"), Asset: "idr"},
		Amount:    indodax.Money{Amount: mustDec(t, "0.01"), Asset: "btc"},
		Remaining: indodax.Money{Amount: mustDec(t, "0.01"), Asset: "btc"},
	}
	caption := renderOpenOrders(indodax.OpenOrdersReport{
		Pairs: []indodax.PairOrders{
			{Pair: "btc_idr", Orders: []indodax.OpenOrder{order, order}},
			{Pair: "eth_idr", Orders: []indodax.OpenOrder{order}},
		},
	}, now)
	if !strings.Contains(caption, "Total Orders: 3") {
		t.Fatalf("caption missing cross-pair total:\n%s", caption)
	}
	if !strings.Contains(caption, "Pair: BTC_IDR") || !strings.Contains(caption, "Pair: ETH_IDR") {
		t.Fatalf("caption missing a pair section:\n%s", caption)
	}
}

func TestRenderOpenOrdersEmpty(t *testing.T) {
	caption := renderOpenOrders(indodax.OpenOrdersReport{}, time.Now())
	if !strings.Contains(caption, "No open orders.") {
		t.Fatalf("caption missing empty line:\n%s", caption)
	}
}

func TestRenderOrderDetailRefundLineOnlyWhenRefunded(t *testing.T) {
	now := time.Now()
	detail := indodax.OrderDetail{
		OrderID:   "400",
		Pair:      "btc_idr",
		Side:      "buy",
		Status:    "cancelled",
		Refund:    indodax.Money{Amount: mustDec(t, "100000"), Asset: "idr"},
		HasRefund: true,
	}
	caption := renderOrderDetail(detail, now)
	if !strings.Contains(caption, "Refund Amount: 100000.00000000 IDR") {
		t.Fatalf("caption missing refund line:\n%s", caption)
	}

	detail.HasRefund = false
	caption = renderOrderDetail(detail, now)
	if strings.Contains(caption, "Refund Amount") {
		t.Fatalf("caption has a refund line for an order without refund:\n%s", caption)
	}
}

func TestRenderOrderHistoryCompletionTime(t *testing.T) {
	caption := renderOrderHistory(indodax.OrderHistory{
		Pair:  "btc_idr",
		Count: 1000,
		Orders: []indodax.ClosedOrder{
			{OrderID: "1", Side: "buy", Status: "open", FinishTime: 0},
		},
	}, time.Now())
	if !strings.Contains(caption, "Completion Time: Not completed") {
		t.Fatalf("caption missing placeholder for unfinished order:\n%s", caption)
	}
}

func TestRenderDownlineCheckStatus(t *testing.T) {
	now := time.Now()
	yes := renderDownlineCheck(indodax.DownlineCheck{Email: "a@b.com", IsDownline: true}, now)
	if !strings.Contains(yes, "Downline Status: Yes (Email is in your downline)") {
		t.Fatalf("positive caption wrong:\n%s", yes)
	}
	no := renderDownlineCheck(indodax.DownlineCheck{Email: "a@b.com"}, now)
	if !strings.Contains(no, "Downline Status: No (Email is not in your downline)") {
		t.Fatalf("negative caption wrong:\n%s", no)
	}
}

func TestRenderWithdrawReceiptMemoOptional(t *testing.T) {
	now := time.Now()
	receipt := indodax.WithdrawReceipt{
		Currency:  "xrp",
		Network:   "xrp",
		Address:   "rXXXX",
		Amount:    indodax.Money{Amount: mustDec(t, "25"), Asset: "xrp"},
		Fee:       indodax.Money{Amount: mustDec(t, "0.1"), Asset: "xrp"},
		RequestID: "test-1",
	}
	caption := renderWithdrawReceipt(receipt, now)
	if strings.Contains(caption, "Memo:") {
		t.Fatalf("caption has a memo line without a memo:\n%s", caption)
	}

	receipt.Memo = "12345"
	caption = renderWithdrawReceipt(receipt, now)
	if !strings.Contains(caption, "Memo: 12345") {
		t.Fatalf("caption missing memo line:\n%s", caption)
	}
}
