package indodax

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// WithdrawFee looks up the withdrawal fee for a currency; network is
// optional and omitted from the request when empty.
func (c *Client) WithdrawFee(ctx context.Context, currency, network string) (WithdrawFeeInfo, error) {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		return WithdrawFeeInfo{}, errors.New("indodax: currency is required")
	}
	network = strings.ToLower(strings.TrimSpace(network))

	params := url.Values{}
	params.Set("currency", currency)
	if network != "" {
		params.Set("network", network)
	}

	var raw record
	if err := c.call(ctx, "withdrawFee", params, &raw); err != nil {
		return WithdrawFeeInfo{}, err
	}
	feeCurrency := raw.str("currency")
	if feeCurrency == "" {
		feeCurrency = currency
	}
	// withdraw_fee is denominated in the requested currency; the field name
	// carries no asset suffix.
	feeAmount, _ := raw.resolve("withdraw_fee")
	return WithdrawFeeInfo{
		ServerTime: raw.int64("server_time"),
		Currency:   feeCurrency,
		Network:    network,
		Fee:        Money{Amount: feeAmount, Asset: feeCurrency},
	}, nil
}

// WithdrawCoin requests an on-chain withdrawal. The memo is stripped from
// the outgoing parameters entirely when empty rather than sent as an
// empty value. Reusing the same request id makes the call idempotent on
// the exchange side.
func (c *Client) WithdrawCoin(ctx context.Context, req WithdrawRequest) (WithdrawReceipt, error) {
	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	if currency == "" {
		return WithdrawReceipt{}, errors.New("indodax: currency is required")
	}
	network := strings.ToLower(strings.TrimSpace(req.Network))
	if network == "" {
		return WithdrawReceipt{}, errors.New("indodax: network is required")
	}
	if strings.TrimSpace(req.Address) == "" {
		return WithdrawReceipt{}, errors.New("indodax: withdraw address is required")
	}
	if req.Amount.Cmp(decimal.Zero) <= 0 {
		return WithdrawReceipt{}, errors.New("indodax: amount must be positive")
	}
	requestID := strings.TrimSpace(req.RequestID)
	if requestID == "" {
		requestID = c.newClientOrderID()
	}

	params := url.Values{}
	params.Set("currency", currency)
	params.Set("network", network)
	params.Set("withdraw_address", strings.TrimSpace(req.Address))
	params.Set("withdraw_amount", req.Amount.String())
	params.Set("request_id", requestID)
	if memo := strings.TrimSpace(req.Memo); memo != "" {
		params.Set("withdraw_memo", memo)
	}

	var raw record
	if err := c.call(ctx, "withdrawCoin", params, &raw); err != nil {
		return WithdrawReceipt{}, err
	}
	return withdrawReceipt(raw, currency, network, requestID, strings.TrimSpace(req.Memo)), nil
}

// WithdrawCoinByUsername transfers funds to another account on the
// exchange, addressed by username instead of an on-chain address.
func (c *Client) WithdrawCoinByUsername(ctx context.Context, req WithdrawUsernameRequest) (WithdrawReceipt, error) {
	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	if currency == "" {
		return WithdrawReceipt{}, errors.New("indodax: currency is required")
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return WithdrawReceipt{}, errors.New("indodax: withdraw username is required")
	}
	if req.Amount.Cmp(decimal.Zero) <= 0 {
		return WithdrawReceipt{}, errors.New("indodax: amount must be positive")
	}
	requestID := strings.TrimSpace(req.RequestID)
	if requestID == "" {
		requestID = c.newClientOrderID()
	}

	params := url.Values{}
	params.Set("currency", currency)
	params.Set("withdraw_amount", req.Amount.String())
	params.Set("request_id", requestID)
	params.Set("withdraw_input_method", "username")
	params.Set("withdraw_username", username)
	if memo := strings.TrimSpace(req.Memo); memo != "" {
		params.Set("withdraw_memo", memo)
	}

	var raw record
	if err := c.call(ctx, "withdrawCoin", params, &raw); err != nil {
		return WithdrawReceipt{}, err
	}
	receipt := withdrawReceipt(raw, currency, "", requestID, strings.TrimSpace(req.Memo))
	if receipt.Username == "" {
		receipt.Username = username
	}
	return receipt, nil
}

func withdrawReceipt(raw record, currency, network, requestID, memo string) WithdrawReceipt {
	recCurrency := raw.str("withdraw_currency")
	if recCurrency == "" {
		recCurrency = currency
	}
	recRequestID := raw.str("request_id")
	if recRequestID == "" {
		recRequestID = requestID
	}
	// Both amount fields are denominated in the withdrawn currency; their
	// names never carry an asset suffix.
	amount, _ := raw.resolve("withdraw_amount")
	fee, _ := raw.resolve("fee")
	return WithdrawReceipt{
		Currency:   recCurrency,
		Network:    network,
		Address:    raw.str("withdraw_address"),
		Username:   raw.str("withdraw_username"),
		Amount:     Money{Amount: amount, Asset: recCurrency},
		Fee:        Money{Amount: fee, Asset: recCurrency},
		SubmitTime: raw.int64("submit_time"),
		RequestID:  recRequestID,
		Memo:       memo,
	}
}
