package report

import (
	"context"
	"time"

	"indodax-bot/internal/indodax"
)

// Failure headers, one per operation.
const (
	accountInfoFailure      = "Failed to Retrieve Account Data"
	transactionsFailure     = "Failed to Retrieve Transaction History"
	tradeFailure            = "Failed to Place Trading Order"
	tradeHistoryFailure     = "Failed to Retrieve Trading History"
	openOrdersFailure       = "Failed to Retrieve Open Orders"
	orderHistoryFailure     = "Failed to Retrieve Order History"
	orderDetailFailure      = "Failed to Retrieve Order Details"
	cancelFailure           = "Failed to Cancel Order"
	withdrawFeeFailure      = "Failed to Retrieve Withdrawal Fee"
	withdrawFailure         = "Failed to Process Withdrawal"
	withdrawUsernameFailure = "Failed to Process Withdrawal to Username"
	downlineListFailure     = "Failed to Retrieve Downline List"
	downlineCheckFailure    = "Failed to Check Downline"
	voucherFailure          = "Failed to Create Voucher"
)

// Registry binds one rendering entry point to each client operation.
// Every method returns caption text and nothing else: operation errors
// are folded into a failure caption at this boundary, never propagated.
// Callers who need structured results use the client directly.
type Registry struct {
	client *indodax.Client
	now    func() time.Time
}

func NewRegistry(client *indodax.Client) *Registry {
	return &Registry{client: client, now: time.Now}
}

// failure renders the operation's failure header above the error message.
// The APIError message is used verbatim when present so server-supplied
// text like "Invalid signature" survives intact; sentinel classification
// wrappers are not leaked into the caption.
func failure(header string, err error) string {
	if apiErr, ok := indodax.AsAPIError(err); ok {
		return header + "\n" + apiErr.Msg
	}
	return header + "\n" + err.Error()
}

func (g *Registry) AccountInfo(ctx context.Context) string {
	info, err := g.client.GetInfo(ctx)
	if err != nil {
		return failure(accountInfoFailure, err)
	}
	return renderAccountInfo(info)
}

func (g *Registry) Transactions(ctx context.Context, start, end string) string {
	history, err := g.client.TransHistory(ctx, start, end)
	if err != nil {
		return failure(transactionsFailure, err)
	}
	return renderTransactionHistory(history)
}

func (g *Registry) Trade(ctx context.Context, req indodax.TradeRequest) string {
	receipt, err := g.client.Trade(ctx, req)
	if err != nil {
		return failure(tradeFailure, err)
	}
	return renderTradeReceipt(receipt, g.now())
}

func (g *Registry) TradeHistory(ctx context.Context, req indodax.TradeHistoryRequest) string {
	history, err := g.client.TradeHistory(ctx, req)
	if err != nil {
		return failure(tradeHistoryFailure, err)
	}
	return renderTradeHistory(history, g.now())
}

func (g *Registry) OpenOrders(ctx context.Context, pair string) string {
	orders, err := g.client.OpenOrders(ctx, pair)
	if err != nil {
		return failure(openOrdersFailure, err)
	}
	return renderOpenOrders(orders, g.now())
}

func (g *Registry) OrderHistory(ctx context.Context, pair string, count int, from int64) string {
	history, err := g.client.OrderHistory(ctx, pair, count, from)
	if err != nil {
		return failure(orderHistoryFailure, err)
	}
	return renderOrderHistory(history, g.now())
}

func (g *Registry) Order(ctx context.Context, pair string, orderID int64) string {
	detail, err := g.client.GetOrder(ctx, pair, orderID)
	if err != nil {
		return failure(orderDetailFailure, err)
	}
	return renderOrderDetail(detail, g.now())
}

func (g *Registry) Cancel(ctx context.Context, pair string, orderID int64, side, orderType string) string {
	receipt, err := g.client.CancelOrder(ctx, pair, orderID, side, orderType)
	if err != nil {
		return failure(cancelFailure, err)
	}
	return renderCancelReceipt(receipt, g.now())
}

func (g *Registry) WithdrawFee(ctx context.Context, currency, network string) string {
	fee, err := g.client.WithdrawFee(ctx, currency, network)
	if err != nil {
		return failure(withdrawFeeFailure, err)
	}
	return renderWithdrawFee(fee)
}

func (g *Registry) Withdraw(ctx context.Context, req indodax.WithdrawRequest) string {
	receipt, err := g.client.WithdrawCoin(ctx, req)
	if err != nil {
		return failure(withdrawFailure, err)
	}
	return renderWithdrawReceipt(receipt, g.now())
}

func (g *Registry) WithdrawByUsername(ctx context.Context, req indodax.WithdrawUsernameRequest) string {
	receipt, err := g.client.WithdrawCoinByUsername(ctx, req)
	if err != nil {
		return failure(withdrawUsernameFailure, err)
	}
	return renderWithdrawUsernameReceipt(receipt, g.now())
}

func (g *Registry) Downlines(ctx context.Context, page, limit int) string {
	list, err := g.client.ListDownline(ctx, page, limit)
	if err != nil {
		return failure(downlineListFailure, err)
	}
	return renderDownlineList(list, g.now())
}

func (g *Registry) CheckDownline(ctx context.Context, email string) string {
	check, err := g.client.CheckDownline(ctx, email)
	if err != nil {
		return failure(downlineCheckFailure, err)
	}
	return renderDownlineCheck(check, g.now())
}

func (g *Registry) CreateVoucher(ctx context.Context, amount int64, toEmail string) string {
	receipt, err := g.client.CreateVoucher(ctx, amount, toEmail)
	if err != nil {
		return failure(voucherFailure, err)
	}
	return renderVoucherReceipt(receipt, g.now())
}
