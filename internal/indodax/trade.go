package indodax

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Fallback chains for order amount fields. The exchange keys amounts by
// pair-specific names ("order_btc", "remain_idr", "order_rp"), and which
// key is present depends on the side and pair; the matched key decides the
// asset attached to the value.
func openOrderPriceKeys(quote string) []string {
	return []string{"price", "order_" + quote}
}

func openOrderAmountKeys(base string) []string {
	return []string{"order_" + base}
}

func openOrderRemainKeys(base, quote string) []string {
	return []string{"remain_" + base, "remain_" + quote}
}

func closedOrderAmountKeys(base, quote string) []string {
	return []string{"order_" + quote, "order_" + base}
}

func closedOrderRemainKeys(base, quote string) []string {
	return []string{"remain_" + quote, "remain_" + base}
}

func orderDetailAmountKeys(quote string) []string {
	return []string{"order_rp", "order_" + quote}
}

func orderDetailRemainKeys(quote string) []string {
	return []string{"remain_rp", "remain_" + quote}
}

func orderDetailRefundKeys(quote string) []string {
	return []string{"refund_idr", "refund_" + quote}
}

func tradeAmountKeys(base string) []string {
	return []string{base, "amount"}
}

// Trade places an order. For limit orders the spent-side amount parameter
// is keyed "idr" on buys and by the base asset symbol on sells; market
// orders always send the rupiah amount.
func (c *Client) Trade(ctx context.Context, req TradeRequest) (TradeReceipt, error) {
	pair := strings.ToLower(strings.TrimSpace(req.Pair))
	if pair == "" {
		return TradeReceipt{}, errors.New("indodax: pair is required")
	}
	base, quote := SplitPair(pair)

	side := strings.ToLower(strings.TrimSpace(req.Side))
	if side != "buy" && side != "sell" {
		return TradeReceipt{}, fmt.Errorf("indodax: side must be buy or sell, got %q", req.Side)
	}
	orderType := strings.ToLower(strings.TrimSpace(req.OrderType))
	if orderType == "" {
		orderType = "limit"
	}
	if orderType != "limit" && orderType != "market" {
		return TradeReceipt{}, fmt.Errorf("indodax: order type must be limit or market, got %q", req.OrderType)
	}
	if req.Amount.Cmp(decimal.Zero) <= 0 {
		return TradeReceipt{}, errors.New("indodax: amount must be positive")
	}
	if orderType == "limit" && req.Price.Cmp(decimal.Zero) <= 0 {
		return TradeReceipt{}, errors.New("indodax: limit orders require a positive price")
	}

	spendsIDR := orderType == "market" || side == "buy"
	if spendsIDR && c.minOrderIDR.Cmp(decimal.Zero) > 0 && req.Amount.Cmp(c.minOrderIDR) < 0 {
		return TradeReceipt{}, fmt.Errorf("indodax: amount %s IDR is below the minimum %s IDR: %w",
			req.Amount.String(), c.minOrderIDR.String(), ErrOrderTooSmall)
	}

	clientOrderID := strings.TrimSpace(req.ClientOrderID)
	if clientOrderID == "" {
		clientOrderID = c.newClientOrderID()
	}
	timeInForce := strings.ToUpper(strings.TrimSpace(req.TimeInForce))
	if timeInForce == "" {
		timeInForce = "GTC"
	}

	params := url.Values{}
	params.Set("pair", pair)
	params.Set("type", side)
	params.Set("order_type", orderType)
	params.Set("client_order_id", clientOrderID)
	params.Set("time_in_force", timeInForce)
	if orderType == "limit" {
		params.Set("price", req.Price.String())
		if side == "buy" {
			params.Set("idr", req.Amount.String())
		} else {
			params.Set(base, req.Amount.String())
		}
	} else {
		params.Set("idr", req.Amount.String())
	}

	var raw record
	if err := c.call(ctx, "trade", params, &raw); err != nil {
		return TradeReceipt{}, err
	}

	amountAsset := base
	if spendsIDR {
		amountAsset = quote
	}
	receipt := TradeReceipt{
		Pair:          pair,
		Side:          side,
		OrderType:     orderType,
		Price:         req.Price,
		Amount:        Money{Amount: req.Amount, Asset: amountAsset},
		OrderID:       raw.int64("order_id"),
		ClientOrderID: raw.str("client_order_id"),
		Fee:           raw.money(quote, "fee"),
		Received:      raw.money(base, "receive_"+base),
		Spent:         raw.money(quote, "spend_rp", "spend_"+quote),
		Remaining:     raw.money(quote, "remain_rp", "remain_"+quote),
	}
	if receipt.ClientOrderID == "" {
		receipt.ClientOrderID = clientOrderID
	}
	return receipt, nil
}

// TradeHistory lists executed trades for a pair. Optional filters are
// omitted from the request entirely when unset.
func (c *Client) TradeHistory(ctx context.Context, req TradeHistoryRequest) (TradeHistory, error) {
	pair := strings.ToLower(strings.TrimSpace(req.Pair))
	if pair == "" {
		return TradeHistory{}, errors.New("indodax: pair is required")
	}
	base, quote := SplitPair(pair)

	count := req.Count
	if count <= 0 {
		count = 1000
	}
	order := strings.ToLower(strings.TrimSpace(req.Order))
	if order == "" {
		order = "desc"
	}
	if order != "asc" && order != "desc" {
		return TradeHistory{}, fmt.Errorf("indodax: order must be asc or desc, got %q", req.Order)
	}

	params := url.Values{}
	params.Set("pair", pair)
	params.Set("count", strconv.Itoa(count))
	params.Set("order", order)
	if req.FromID > 0 {
		params.Set("from_id", strconv.FormatInt(req.FromID, 10))
	}
	if req.EndID > 0 {
		params.Set("end_id", strconv.FormatInt(req.EndID, 10))
	}
	if !req.Since.IsZero() {
		params.Set("since", strconv.FormatInt(req.Since.Unix(), 10))
	}
	if !req.End.IsZero() {
		params.Set("end", strconv.FormatInt(req.End.Unix(), 10))
	}
	if req.OrderID > 0 {
		params.Set("order_id", strconv.FormatInt(req.OrderID, 10))
	}

	var raw struct {
		Trades []record `json:"trades"`
	}
	if err := c.call(ctx, "tradeHistory", params, &raw); err != nil {
		return TradeHistory{}, err
	}

	trades := make([]TradeHistoryEntry, 0, len(raw.Trades))
	for _, rec := range raw.Trades {
		trades = append(trades, TradeHistoryEntry{
			TradeID:       rec.str("trade_id"),
			OrderID:       rec.str("order_id"),
			Side:          rec.str("type"),
			Amount:        rec.money(base, tradeAmountKeys(base)...),
			Price:         rec.money(quote, "price"),
			Fee:           rec.money(quote, "fee"),
			Time:          rec.int64("trade_time"),
			ClientOrderID: rec.str("client_order_id"),
		})
	}
	return TradeHistory{
		Pair:   pair,
		Order:  order,
		Since:  req.Since,
		End:    req.End,
		Trades: trades,
	}, nil
}

// OpenOrders lists resting orders, for one pair or, with an empty pair,
// across all pairs. The endpoint nests single-pair results as a plain
// list and the all-pairs variant as a map keyed by pair.
func (c *Client) OpenOrders(ctx context.Context, pair string) (OpenOrdersReport, error) {
	pair = strings.ToLower(strings.TrimSpace(pair))
	params := url.Values{}
	if pair != "" {
		params.Set("pair", pair)
	}
	var raw struct {
		Orders json.RawMessage `json:"orders"`
	}
	if err := c.call(ctx, "openOrders", params, &raw); err != nil {
		return OpenOrdersReport{}, err
	}

	groups := map[string][]record{}
	if len(raw.Orders) > 0 {
		if err := json.Unmarshal(raw.Orders, &groups); err != nil {
			var list []record
			if err := json.Unmarshal(raw.Orders, &list); err == nil && pair != "" {
				groups = map[string][]record{pair: list}
			}
		}
	}

	pairs := make([]string, 0, len(groups))
	for p, orders := range groups {
		if len(orders) > 0 {
			pairs = append(pairs, p)
		}
	}
	sort.Strings(pairs)

	report := OpenOrdersReport{Pairs: make([]PairOrders, 0, len(pairs))}
	for _, p := range pairs {
		base, quote := SplitPair(p)
		orders := make([]OpenOrder, 0, len(groups[p]))
		for _, rec := range groups[p] {
			orders = append(orders, OpenOrder{
				OrderID:       rec.str("order_id"),
				ClientOrderID: rec.str("client_order_id"),
				SubmitTime:    rec.int64("submit_time"),
				Side:          rec.str("type"),
				Price:         rec.money(quote, openOrderPriceKeys(quote)...),
				Amount:        rec.money(base, openOrderAmountKeys(base)...),
				Remaining:     rec.money(base, openOrderRemainKeys(base, quote)...),
				OrderType:     rec.str("order_type"),
			})
		}
		report.Pairs = append(report.Pairs, PairOrders{Pair: p, Orders: orders})
	}
	return report, nil
}

// OrderHistory lists finished orders for a pair.
func (c *Client) OrderHistory(ctx context.Context, pair string, count int, from int64) (OrderHistory, error) {
	pair = strings.ToLower(strings.TrimSpace(pair))
	if pair == "" {
		return OrderHistory{}, errors.New("indodax: pair is required")
	}
	base, quote := SplitPair(pair)
	if count <= 0 {
		count = 1000
	}

	params := url.Values{}
	params.Set("pair", pair)
	params.Set("count", strconv.Itoa(count))
	if from > 0 {
		params.Set("from", strconv.FormatInt(from, 10))
	}

	var raw struct {
		Orders []record `json:"orders"`
	}
	if err := c.call(ctx, "orderHistory", params, &raw); err != nil {
		return OrderHistory{}, err
	}

	orders := make([]ClosedOrder, 0, len(raw.Orders))
	for _, rec := range raw.Orders {
		orders = append(orders, ClosedOrder{
			OrderID:       rec.str("order_id"),
			ClientOrderID: rec.str("client_order_id"),
			Side:          rec.str("type"),
			Price:         rec.money(quote, "price"),
			SubmitTime:    rec.int64("submit_time"),
			FinishTime:    rec.int64("finish_time"),
			Status:        rec.str("status"),
			Amount:        rec.money(quote, closedOrderAmountKeys(base, quote)...),
			Remaining:     rec.money(quote, closedOrderRemainKeys(base, quote)...),
		})
	}
	return OrderHistory{Pair: pair, Count: count, Orders: orders}, nil
}

// GetOrder fetches a single order by id.
func (c *Client) GetOrder(ctx context.Context, pair string, orderID int64) (OrderDetail, error) {
	pair = strings.ToLower(strings.TrimSpace(pair))
	if pair == "" {
		return OrderDetail{}, errors.New("indodax: pair is required")
	}
	if orderID <= 0 {
		return OrderDetail{}, errors.New("indodax: order id is required")
	}
	_, quote := SplitPair(pair)

	params := url.Values{}
	params.Set("pair", pair)
	params.Set("order_id", strconv.FormatInt(orderID, 10))

	var raw struct {
		Order record `json:"order"`
	}
	if err := c.call(ctx, "getOrder", params, &raw); err != nil {
		return OrderDetail{}, err
	}
	rec := raw.Order

	refund, refundKey := rec.resolve(orderDetailRefundKeys(quote)...)
	return OrderDetail{
		OrderID:       rec.str("order_id"),
		Pair:          pair,
		Side:          rec.str("type"),
		Price:         rec.money(quote, "price"),
		SubmitTime:    rec.int64("submit_time"),
		FinishTime:    rec.int64("finish_time"),
		Status:        rec.str("status"),
		Amount:        rec.money(quote, orderDetailAmountKeys(quote)...),
		Remaining:     rec.money(quote, orderDetailRemainKeys(quote)...),
		Refund:        Money{Amount: refund, Asset: quote},
		HasRefund:     refundKey != "",
		ClientOrderID: rec.str("client_order_id"),
	}, nil
}

// CancelOrder cancels a resting order and reports the resulting free and
// frozen balances for both pair assets.
func (c *Client) CancelOrder(ctx context.Context, pair string, orderID int64, side, orderType string) (CancelReceipt, error) {
	pair = strings.ToLower(strings.TrimSpace(pair))
	if pair == "" {
		return CancelReceipt{}, errors.New("indodax: pair is required")
	}
	if orderID <= 0 {
		return CancelReceipt{}, errors.New("indodax: order id is required")
	}
	side = strings.ToLower(strings.TrimSpace(side))
	if side != "buy" && side != "sell" {
		return CancelReceipt{}, fmt.Errorf("indodax: side must be buy or sell, got %q", side)
	}
	orderType = strings.ToLower(strings.TrimSpace(orderType))
	if orderType == "" {
		orderType = "limit"
	}
	base, quote := SplitPair(pair)

	params := url.Values{}
	params.Set("pair", pair)
	params.Set("order_id", strconv.FormatInt(orderID, 10))
	params.Set("type", side)
	params.Set("order_type", orderType)

	var raw struct {
		Order   record `json:"order"`
		Balance record `json:"balance"`
		Frozen  record `json:"frozen"`
	}
	if err := c.call(ctx, "cancelOrder", params, &raw); err != nil {
		return CancelReceipt{}, err
	}

	return CancelReceipt{
		Pair:          pair,
		OrderID:       raw.Order.str("order_id"),
		Side:          raw.Order.str("type"),
		OrderType:     raw.Order.str("order_type"),
		ClientOrderID: raw.Order.str("client_order_id"),
		BaseBalance:   raw.Balance.money(base, base),
		QuoteBalance:  raw.Balance.money(quote, quote),
		FrozenBase:    raw.Frozen.money(base, base),
		FrozenQuote:   raw.Frozen.money(quote, quote),
	}, nil
}
