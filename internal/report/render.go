// Package report turns normalized operation results into the user-facing
// captions the bot delivers, and wraps operation failures into formatted
// failure text instead of propagating errors to the front-end.
package report

import (
	"fmt"
	"strings"
	"time"

	"indodax-bot/internal/format"
	"indodax-bot/internal/indodax"
)

func money8(m indodax.Money) string {
	return format.Crypto(m.Amount) + " " + strings.ToUpper(m.Asset)
}

func money2(m indodax.Money) string {
	return m.Amount.StringFixed(2) + " " + strings.ToUpper(m.Asset)
}

func moneyRaw(m indodax.Money) string {
	return m.Amount.String() + " " + strings.ToUpper(m.Asset)
}

func orDash(v, alt string) string {
	if v == "" {
		return alt
	}
	return v
}

func activeInactive(v bool) string {
	if v {
		return "Active"
	}
	return "Inactive"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func renderAccountInfo(info indodax.AccountInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Account Status - %s\n\n", format.UnixTime(info.ServerTime))
	fmt.Fprintf(&b, "Name: %s\n", orDash(info.Name, "Not available"))
	fmt.Fprintf(&b, "Email: %s\n", format.MaskEmail(info.Email))
	fmt.Fprintf(&b, "User ID: %s\n", info.UserID)
	fmt.Fprintf(&b, "Verification Status: %s\n", info.VerificationStatus)
	fmt.Fprintf(&b, "2FA: %s\n", activeInactive(info.TwoFactorEnabled))
	fmt.Fprintf(&b, "Withdrawal: %s\n\n", activeInactive(info.WithdrawEnabled))

	b.WriteString("Active Balance\n")
	writeBalances(&b, info.Balances, "No active balance.\n")
	b.WriteString("\nHeld Balance\n")
	writeBalances(&b, info.HeldBalances, "No held balance.\n")
	return strings.TrimSpace(b.String())
}

func writeBalances(b *strings.Builder, balances []indodax.AssetBalance, empty string) {
	if len(balances) == 0 {
		b.WriteString(empty)
		return
	}
	for _, bal := range balances {
		if strings.EqualFold(bal.Asset, "idr") {
			fmt.Fprintf(b, "%s: %s\n", strings.ToUpper(bal.Asset), format.IDR(bal.Amount))
		} else {
			fmt.Fprintf(b, "%s: %s\n", strings.ToUpper(bal.Asset), format.Crypto(bal.Amount))
		}
	}
}

func renderTransactionHistory(h indodax.TransactionHistory) string {
	var b strings.Builder
	b.WriteString("Indodax Transaction History\n")
	fmt.Fprintf(&b, "Period: %s to %s\n\n", h.Start, h.End)

	b.WriteString("Withdrawal History\n")
	if len(h.Withdrawals) == 0 {
		b.WriteString("No withdrawal history.\n\n")
	} else {
		for _, group := range h.Withdrawals {
			fmt.Fprintf(&b, "%s:\n", strings.ToUpper(group.Currency))
			for _, tx := range group.Entries {
				fmt.Fprintf(&b, "Status: %s\n", tx.Status)
				fmt.Fprintf(&b, "Type: %s\n", tx.Type)
				fmt.Fprintf(&b, "Total Amount: %s\n", moneyRaw(tx.Total))
				fmt.Fprintf(&b, "Fee: %s\n", moneyRaw(tx.Fee))
				fmt.Fprintf(&b, "Net Amount: %s\n", moneyRaw(tx.Net))
				fmt.Fprintf(&b, "Submission Time: %s\n", format.UnixTime(tx.SubmitTime))
				fmt.Fprintf(&b, "Completion Time: %s\n", format.UnixTime(tx.SuccessTime))
				fmt.Fprintf(&b, "Withdrawal ID: %s\n", tx.ID)
				fmt.Fprintf(&b, "Transaction ID: %s\n\n", tx.TxID)
			}
		}
	}

	b.WriteString("Deposit History\n")
	if len(h.Deposits) == 0 {
		b.WriteString("No deposit history.\n")
	} else {
		for _, group := range h.Deposits {
			fmt.Fprintf(&b, "%s:\n", strings.ToUpper(group.Currency))
			for _, tx := range group.Entries {
				fmt.Fprintf(&b, "Status: %s\n", tx.Status)
				fmt.Fprintf(&b, "Type: %s\n", orDash(tx.Type, "Direct"))
				fmt.Fprintf(&b, "Total Amount: %s\n", moneyRaw(tx.Total))
				fmt.Fprintf(&b, "Fee: %s\n", moneyRaw(tx.Fee))
				fmt.Fprintf(&b, "Net Amount: %s\n", moneyRaw(tx.Net))
				fmt.Fprintf(&b, "Completion Time: %s\n", format.UnixTime(tx.SuccessTime))
				fmt.Fprintf(&b, "Deposit ID: %s\n", tx.ID)
				fmt.Fprintf(&b, "Transaction ID: %s\n\n", tx.TxID)
			}
		}
	}
	return strings.TrimSpace(b.String())
}

func renderTradeReceipt(r indodax.TradeReceipt, now time.Time) string {
	_, quote := indodax.SplitPair(r.Pair)
	var b strings.Builder
	b.WriteString("Trading Order Report\n")
	fmt.Fprintf(&b, "Time: %s\n", format.Time(now))
	fmt.Fprintf(&b, "Order Type: %s %s\n", strings.ToUpper(r.Side), strings.ToUpper(r.OrderType))
	fmt.Fprintf(&b, "Pair: %s\n", strings.ToUpper(r.Pair))
	if r.OrderType == "limit" {
		fmt.Fprintf(&b, "Price: %s %s\n", r.Price.StringFixed(2), strings.ToUpper(quote))
	}
	fmt.Fprintf(&b, "Amount: %s\n", money8(r.Amount))
	fmt.Fprintf(&b, "Order ID: %d\n", r.OrderID)
	fmt.Fprintf(&b, "Client ID: %s\n", r.ClientOrderID)
	fmt.Fprintf(&b, "Fee: %s\n", money8(r.Fee))
	fmt.Fprintf(&b, "Received: %s\n", money8(r.Received))
	fmt.Fprintf(&b, "Spent: %s\n", money2(r.Spent))
	fmt.Fprintf(&b, "Remaining: %s\n", money2(r.Remaining))
	return strings.TrimSpace(b.String())
}

func renderTradeHistory(h indodax.TradeHistory, now time.Time) string {
	var b strings.Builder
	b.WriteString("Indodax Trading History\n")
	fmt.Fprintf(&b, "Updated At: %s\n", format.Time(now))
	fmt.Fprintf(&b, "Total Transactions: %d\n", len(h.Trades))
	fmt.Fprintf(&b, "Pair: %s\n", strings.ToUpper(h.Pair))
	if !h.Since.IsZero() || !h.End.IsZero() {
		since := "Start"
		if !h.Since.IsZero() {
			since = format.Date(h.Since)
		}
		end := "Now"
		if !h.End.IsZero() {
			end = format.Date(h.End)
		}
		fmt.Fprintf(&b, "Period: %s to %s\n", since, end)
	}
	fmt.Fprintf(&b, "Order: %s\n\n", strings.ToUpper(h.Order))

	if len(h.Trades) == 0 {
		b.WriteString("No trading history.\n")
	}
	for i, trade := range h.Trades {
		fmt.Fprintf(&b, "Transaction %d\n", i+1)
		fmt.Fprintf(&b, "Transaction ID: %s\n", trade.TradeID)
		fmt.Fprintf(&b, "Order ID: %s\n", trade.OrderID)
		fmt.Fprintf(&b, "Type: %s\n", strings.ToUpper(trade.Side))
		fmt.Fprintf(&b, "Amount: %s\n", money8(trade.Amount))
		fmt.Fprintf(&b, "Price: %s\n", money2(trade.Price))
		fmt.Fprintf(&b, "Fee: %s\n", money8(trade.Fee))
		fmt.Fprintf(&b, "Time: %s\n", format.UnixTime(trade.Time))
		fmt.Fprintf(&b, "Client ID: %s\n\n", orDash(trade.ClientOrderID, "Not available"))
	}
	return strings.TrimSpace(b.String())
}

func renderOpenOrders(rep indodax.OpenOrdersReport, now time.Time) string {
	total := 0
	for _, p := range rep.Pairs {
		total += len(p.Orders)
	}
	var b strings.Builder
	b.WriteString("Indodax Open Orders\n")
	fmt.Fprintf(&b, "Updated At: %s\n", format.Time(now))
	fmt.Fprintf(&b, "Total Orders: %d\n\n", total)

	if total == 0 {
		b.WriteString("No open orders.\n")
	}
	for _, p := range rep.Pairs {
		fmt.Fprintf(&b, "Pair: %s\n", strings.ToUpper(p.Pair))
		fmt.Fprintf(&b, "Total Orders: %d\n", len(p.Orders))
		for i, order := range p.Orders {
			fmt.Fprintf(&b, "Order %d\n", i+1)
			fmt.Fprintf(&b, "Order ID: %s\n", order.OrderID)
			fmt.Fprintf(&b, "Client ID: %s\n", order.ClientOrderID)
			fmt.Fprintf(&b, "Submission Time: %s\n", format.UnixTime(order.SubmitTime))
			fmt.Fprintf(&b, "Type: %s\n", strings.ToUpper(order.Side))
			fmt.Fprintf(&b, "Price: %s\n", money2(order.Price))
			fmt.Fprintf(&b, "Order Amount: %s\n", money8(order.Amount))
			fmt.Fprintf(&b, "Remaining: %s\n", money8(order.Remaining))
			if order.OrderType != "" {
				fmt.Fprintf(&b, "Order Type: %s\n", strings.ToUpper(order.OrderType))
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func renderOrderHistory(h indodax.OrderHistory, now time.Time) string {
	var b strings.Builder
	b.WriteString("Indodax Order History\n")
	fmt.Fprintf(&b, "Updated At: %s\n", format.Time(now))
	fmt.Fprintf(&b, "Total Orders: %d\n", len(h.Orders))
	fmt.Fprintf(&b, "Pair: %s\n", strings.ToUpper(h.Pair))
	fmt.Fprintf(&b, "Displayed Count: %d\n\n", h.Count)

	if len(h.Orders) == 0 {
		b.WriteString("No order history.\n")
	}
	for i, order := range h.Orders {
		fmt.Fprintf(&b, "Order %d\n", i+1)
		fmt.Fprintf(&b, "Order ID: %s\n", order.OrderID)
		fmt.Fprintf(&b, "Client ID: %s\n", order.ClientOrderID)
		fmt.Fprintf(&b, "Type: %s\n", strings.ToUpper(order.Side))
		fmt.Fprintf(&b, "Price: %s\n", money2(order.Price))
		fmt.Fprintf(&b, "Submission Time: %s\n", format.UnixTime(order.SubmitTime))
		fmt.Fprintf(&b, "Completion Time: %s\n", completionTime(order.FinishTime))
		fmt.Fprintf(&b, "Status: %s\n", order.Status)
		fmt.Fprintf(&b, "Order Amount: %s\n", money8(order.Amount))
		fmt.Fprintf(&b, "Remaining: %s\n\n", money8(order.Remaining))
	}
	return strings.TrimSpace(b.String())
}

func completionTime(finishTime int64) string {
	if finishTime <= 0 {
		return "Not completed"
	}
	return format.UnixTime(finishTime)
}

func renderOrderDetail(d indodax.OrderDetail, now time.Time) string {
	var b strings.Builder
	b.WriteString("Indodax Order Details\n")
	fmt.Fprintf(&b, "Updated At: %s\n", format.Time(now))
	fmt.Fprintf(&b, "Order ID: %s\n", d.OrderID)
	fmt.Fprintf(&b, "Pair: %s\n", strings.ToUpper(d.Pair))
	fmt.Fprintf(&b, "Type: %s\n", strings.ToUpper(d.Side))
	fmt.Fprintf(&b, "Price: %s\n", money2(d.Price))
	fmt.Fprintf(&b, "Submission Time: %s\n", format.UnixTime(d.SubmitTime))
	fmt.Fprintf(&b, "Completion Time: %s\n", completionTime(d.FinishTime))
	fmt.Fprintf(&b, "Status: %s\n", d.Status)
	fmt.Fprintf(&b, "Order Amount: %s\n", money8(d.Amount))
	fmt.Fprintf(&b, "Remaining: %s\n", money8(d.Remaining))
	if d.HasRefund {
		fmt.Fprintf(&b, "Refund Amount: %s\n", money8(d.Refund))
	}
	fmt.Fprintf(&b, "Client ID: %s\n", d.ClientOrderID)
	return strings.TrimSpace(b.String())
}

func renderCancelReceipt(r indodax.CancelReceipt, now time.Time) string {
	var b strings.Builder
	b.WriteString("Indodax Order Cancellation Report\n")
	fmt.Fprintf(&b, "Time: %s\n", format.Time(now))
	fmt.Fprintf(&b, "Pair: %s\n", strings.ToUpper(r.Pair))
	fmt.Fprintf(&b, "Order ID: %s\n", r.OrderID)
	fmt.Fprintf(&b, "Type: %s\n", strings.ToUpper(r.Side))
	fmt.Fprintf(&b, "Order Type: %s\n", strings.ToUpper(r.OrderType))
	fmt.Fprintf(&b, "%s Balance: %s\n", strings.ToUpper(r.BaseBalance.Asset), money8(r.BaseBalance))
	fmt.Fprintf(&b, "%s Balance: %s\n", strings.ToUpper(r.QuoteBalance.Asset), money2(r.QuoteBalance))
	fmt.Fprintf(&b, "Frozen %s Balance: %s\n", strings.ToUpper(r.FrozenBase.Asset), money8(r.FrozenBase))
	fmt.Fprintf(&b, "Frozen %s Balance: %s\n", strings.ToUpper(r.FrozenQuote.Asset), money2(r.FrozenQuote))
	fmt.Fprintf(&b, "Client ID: %s\n", r.ClientOrderID)
	return strings.TrimSpace(b.String())
}

func renderWithdrawFee(f indodax.WithdrawFeeInfo) string {
	var b strings.Builder
	b.WriteString("Indodax Withdrawal Fee\n")
	fmt.Fprintf(&b, "Time: %s\n", format.UnixTime(f.ServerTime))
	fmt.Fprintf(&b, "Currency: %s\n", strings.ToUpper(f.Currency))
	if f.Network != "" {
		fmt.Fprintf(&b, "Network: %s\n", strings.ToUpper(f.Network))
	}
	fmt.Fprintf(&b, "Withdrawal Fee: %s\n", money8(f.Fee))
	return strings.TrimSpace(b.String())
}

func renderWithdrawReceipt(r indodax.WithdrawReceipt, now time.Time) string {
	var b strings.Builder
	b.WriteString("Indodax Asset Withdrawal Report\n")
	fmt.Fprintf(&b, "Time: %s\n", format.Time(now))
	fmt.Fprintf(&b, "Currency: %s\n", strings.ToUpper(r.Currency))
	fmt.Fprintf(&b, "Network: %s\n", strings.ToUpper(r.Network))
	fmt.Fprintf(&b, "Recipient Address: %s\n", r.Address)
	fmt.Fprintf(&b, "Amount: %s\n", money8(r.Amount))
	fmt.Fprintf(&b, "Fee: %s\n", money8(r.Fee))
	fmt.Fprintf(&b, "Submission Time: %s\n", format.UnixTime(r.SubmitTime))
	fmt.Fprintf(&b, "Request ID: %s\n", r.RequestID)
	if r.Memo != "" {
		fmt.Fprintf(&b, "Memo: %s\n", r.Memo)
	}
	return strings.TrimSpace(b.String())
}

func renderWithdrawUsernameReceipt(r indodax.WithdrawReceipt, now time.Time) string {
	var b strings.Builder
	b.WriteString("Indodax Withdrawal to Username Report\n")
	fmt.Fprintf(&b, "Time: %s\n", format.Time(now))
	fmt.Fprintf(&b, "Currency: %s\n", strings.ToUpper(r.Currency))
	fmt.Fprintf(&b, "Recipient Username: %s\n", r.Username)
	fmt.Fprintf(&b, "Amount: %s\n", money8(r.Amount))
	fmt.Fprintf(&b, "Fee: %s\n", money8(r.Fee))
	fmt.Fprintf(&b, "Submission Time: %s\n", format.UnixTime(r.SubmitTime))
	fmt.Fprintf(&b, "Request ID: %s\n", r.RequestID)
	if r.Memo != "" {
		fmt.Fprintf(&b, "Memo: %s\n", r.Memo)
	}
	return strings.TrimSpace(b.String())
}

func renderDownlineList(l indodax.DownlineList, now time.Time) string {
	var b strings.Builder
	b.WriteString("Indodax Downline List\n")
	fmt.Fprintf(&b, "Time: %s\n", format.Time(now))
	fmt.Fprintf(&b, "Page: %d\n", l.Page)
	fmt.Fprintf(&b, "Total Pages: %d\n", l.TotalPages)
	fmt.Fprintf(&b, "Total Data: %d\n", l.TotalData)
	fmt.Fprintf(&b, "Data per Page: %d\n", l.PerPage)
	fmt.Fprintf(&b, "Downline Count: %d\n\n", len(l.Entries))

	if len(l.Entries) == 0 {
		b.WriteString("No downlines.\n")
	}
	for i, downline := range l.Entries {
		fmt.Fprintf(&b, "Downline %d\n", i+1)
		fmt.Fprintf(&b, "Username: %s\n", downline.Username)
		fmt.Fprintf(&b, "Email: %s\n", downline.Email)
		fmt.Fprintf(&b, "Email Verification: %s (%s)\n", yesNo(downline.EmailVerified), format.UnixTime(downline.RegistrationTime))
		fmt.Fprintf(&b, "Identity Verification: %s\n", yesNo(downline.IDVerified))
		fmt.Fprintf(&b, "Start: %s\n", orDash(downline.Start, "N/A"))
		fmt.Fprintf(&b, "End: %s\n\n", orDash(downline.End, "N/A"))
	}
	return strings.TrimSpace(b.String())
}

func renderDownlineCheck(d indodax.DownlineCheck, now time.Time) string {
	status := "No (Email is not in your downline)"
	if d.IsDownline {
		status = "Yes (Email is in your downline)"
	}
	var b strings.Builder
	b.WriteString("Indodax Downline Check\n")
	fmt.Fprintf(&b, "Time: %s\n", format.Time(now))
	fmt.Fprintf(&b, "Email: %s\n", d.Email)
	fmt.Fprintf(&b, "Downline Status: %s\n", status)
	return strings.TrimSpace(b.String())
}

func renderVoucherReceipt(v indodax.VoucherReceipt, now time.Time) string {
	var b strings.Builder
	b.WriteString("Indodax Voucher Creation Report\n")
	fmt.Fprintf(&b, "Time: %s\n", format.Time(now))
	fmt.Fprintf(&b, "Voucher Amount: %d IDR\n", v.Amount)
	fmt.Fprintf(&b, "Recipient Email: %s\n", v.ToEmail)
	fmt.Fprintf(&b, "Voucher Code: %s\n", v.Code)
	fmt.Fprintf(&b, "Creation Time: %s\n", format.UnixTime(v.SubmitTime))
	return strings.TrimSpace(b.String())
}
