package indodax

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Money is an amount together with the lowercase asset code that
// denominates it. Raw responses key amounts by pair-specific field names,
// so the asset is recorded per value instead of being assumed from
// position.
type Money struct {
	Amount decimal.Decimal
	Asset  string
}

// SplitPair splits a pair symbol like "btc_idr" into base and quote
// assets. A symbol without a separator is treated as a base quoted in
// rupiah.
func SplitPair(pair string) (base, quote string) {
	base, quote, ok := strings.Cut(strings.ToLower(pair), "_")
	if !ok || quote == "" {
		return base, "idr"
	}
	return base, quote
}

type AssetBalance struct {
	Asset  string
	Amount decimal.Decimal
}

// AccountInfo is the normalized getInfo report.
type AccountInfo struct {
	ServerTime         int64
	Name               string
	Email              string
	UserID             string
	VerificationStatus string
	TwoFactorEnabled   bool
	WithdrawEnabled    bool
	Balances           []AssetBalance // positive active balances, sorted by asset
	HeldBalances       []AssetBalance // positive balances reserved against open orders
}

// Transaction is one deposit or withdrawal entry.
type Transaction struct {
	Status      string
	Type        string
	Total       Money
	Fee         Money
	Net         Money
	SubmitTime  int64
	SuccessTime int64
	ID          string // withdraw_id or deposit_id
	TxID        string
}

// TransactionGroup holds one currency's transactions.
type TransactionGroup struct {
	Currency string
	Entries  []Transaction
}

// TransactionHistory is the normalized transHistory report.
type TransactionHistory struct {
	Start       string
	End         string
	Withdrawals []TransactionGroup
	Deposits    []TransactionGroup
}

// TradeRequest describes an order to place.
type TradeRequest struct {
	Pair          string
	Side          string          // "buy" or "sell"
	OrderType     string          // "limit" (default) or "market"
	Amount        decimal.Decimal // spent-side amount: quote for buy/market, base for limit sell
	Price         decimal.Decimal // required for limit orders
	ClientOrderID string          // defaults to "<instance>-<unix-millis>"
	TimeInForce   string          // defaults to "GTC"
}

// TradeReceipt is the normalized trade report.
type TradeReceipt struct {
	Pair          string
	Side          string
	OrderType     string
	Price         decimal.Decimal
	Amount        Money
	OrderID       int64
	ClientOrderID string
	Fee           Money
	Received      Money
	Spent         Money
	Remaining     Money
}

// TradeHistoryRequest filters the tradeHistory listing. Zero values mean
// the parameter is omitted from the request.
type TradeHistoryRequest struct {
	Pair    string
	Count   int // defaults to 1000
	FromID  int64
	EndID   int64
	Order   string // "asc" or "desc", defaults to "desc"
	Since   time.Time
	End     time.Time
	OrderID int64
}

// TradeHistoryEntry is one executed trade.
type TradeHistoryEntry struct {
	TradeID       string
	OrderID       string
	Side          string
	Amount        Money
	Price         Money
	Fee           Money
	Time          int64
	ClientOrderID string
}

// TradeHistory is the normalized tradeHistory report.
type TradeHistory struct {
	Pair   string
	Order  string
	Since  time.Time
	End    time.Time
	Trades []TradeHistoryEntry
}

// OpenOrder is one resting order.
type OpenOrder struct {
	OrderID       string
	ClientOrderID string
	SubmitTime    int64
	Side          string
	Price         Money
	Amount        Money
	Remaining     Money
	OrderType     string // empty when the endpoint omits it
}

// PairOrders groups open orders under their pair.
type PairOrders struct {
	Pair   string
	Orders []OpenOrder
}

// OpenOrdersReport is the normalized openOrders report.
type OpenOrdersReport struct {
	Pairs []PairOrders
}

// ClosedOrder is one finished or cancelled order from orderHistory.
type ClosedOrder struct {
	OrderID       string
	ClientOrderID string
	Side          string
	Price         Money
	SubmitTime    int64
	FinishTime    int64
	Status        string
	Amount        Money
	Remaining     Money
}

// OrderHistory is the normalized orderHistory report.
type OrderHistory struct {
	Pair   string
	Count  int
	Orders []ClosedOrder
}

// OrderDetail is the normalized getOrder report.
type OrderDetail struct {
	OrderID       string
	Pair          string
	Side          string
	Price         Money
	SubmitTime    int64
	FinishTime    int64
	Status        string
	Amount        Money
	Remaining     Money
	Refund        Money // zero when the order produced no refund
	HasRefund     bool
	ClientOrderID string
}

// CancelReceipt is the normalized cancelOrder report, including the
// resulting free and frozen balances for both pair assets.
type CancelReceipt struct {
	Pair          string
	OrderID       string
	Side          string
	OrderType     string
	ClientOrderID string
	BaseBalance   Money
	QuoteBalance  Money
	FrozenBase    Money
	FrozenQuote   Money
}

// WithdrawFeeInfo is the normalized withdrawFee report.
type WithdrawFeeInfo struct {
	ServerTime int64
	Currency   string
	Network    string
	Fee        Money
}

// WithdrawRequest describes an on-chain withdrawal.
type WithdrawRequest struct {
	Currency  string
	Network   string
	Address   string
	Amount    decimal.Decimal
	RequestID string // defaults to "<instance>-<unix-millis>"; reuse makes the call idempotent
	Memo      string // omitted from the request when empty
}

// WithdrawUsernameRequest describes an internal transfer to another
// account by username.
type WithdrawUsernameRequest struct {
	Currency  string
	Username  string
	Amount    decimal.Decimal
	RequestID string
	Memo      string
}

// WithdrawReceipt is the normalized withdrawal report for both the
// on-chain and the username flows.
type WithdrawReceipt struct {
	Currency   string
	Network    string
	Address    string
	Username   string
	Amount     Money
	Fee        Money
	SubmitTime int64
	RequestID  string
	Memo       string
}

// Downline is one referred account.
type Downline struct {
	Username         string
	Email            string
	EmailVerified    bool
	IDVerified       bool
	RegistrationTime int64
	Start            string
	End              string
}

// DownlineList is the normalized listDownline report.
type DownlineList struct {
	Page       int64
	TotalPages int64
	TotalData  int64
	PerPage    int64
	Entries    []Downline
}

// DownlineCheck is the normalized checkDownline report.
type DownlineCheck struct {
	Email      string
	IsDownline bool
}

// VoucherReceipt is the normalized createVoucher report.
type VoucherReceipt struct {
	Amount     int64
	ToEmail    string
	Code       string
	SubmitTime int64
}
