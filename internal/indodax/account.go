package indodax

import (
	"context"
	"net/url"
	"sort"

	"github.com/shopspring/decimal"
)

// GetInfo fetches account status: identity, verification flags, and the
// active and held balance maps filtered to positive amounts.
func (c *Client) GetInfo(ctx context.Context) (AccountInfo, error) {
	var raw record
	if err := c.call(ctx, "getInfo", nil, &raw); err != nil {
		return AccountInfo{}, err
	}
	return AccountInfo{
		ServerTime:         raw.int64("server_time"),
		Name:               raw.str("name"),
		Email:              raw.str("email"),
		UserID:             raw.str("user_id"),
		VerificationStatus: raw.str("verification_status"),
		TwoFactorEnabled:   raw.flag("gauth_enable"),
		WithdrawEnabled:    raw.flag("withdraw_status"),
		Balances:           positiveBalances(raw.sub("balance")),
		HeldBalances:       positiveBalances(raw.sub("balance_hold")),
	}, nil
}

func positiveBalances(src record) []AssetBalance {
	out := make([]AssetBalance, 0, len(src))
	for asset := range src {
		amount, ok := src.dec(asset)
		if !ok || amount.Cmp(decimal.Zero) <= 0 {
			continue
		}
		out = append(out, AssetBalance{Asset: asset, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Asset < out[j].Asset })
	return out
}

// transactionTotalKeys is the fallback chain for a transaction's gross
// amount: the rupiah field first, then the field named after the currency
// itself.
func transactionTotalKeys(currency string) []string {
	return []string{"rp", currency}
}

// TransHistory fetches deposits and withdrawals between two dates
// (formatted as the API expects, e.g. "2024/01/31"), grouped per currency.
func (c *Client) TransHistory(ctx context.Context, start, end string) (TransactionHistory, error) {
	params := url.Values{}
	params.Set("start", start)
	params.Set("end", end)
	var raw struct {
		Withdraw map[string][]record `json:"withdraw"`
		Deposit  map[string][]record `json:"deposit"`
	}
	if err := c.call(ctx, "transHistory", params, &raw); err != nil {
		return TransactionHistory{}, err
	}
	return TransactionHistory{
		Start:       start,
		End:         end,
		Withdrawals: transactionGroups(raw.Withdraw, "withdraw_id"),
		Deposits:    transactionGroups(raw.Deposit, "deposit_id"),
	}, nil
}

func transactionGroups(src map[string][]record, idKey string) []TransactionGroup {
	currencies := make([]string, 0, len(src))
	for currency, entries := range src {
		if len(entries) > 0 {
			currencies = append(currencies, currency)
		}
	}
	sort.Strings(currencies)

	groups := make([]TransactionGroup, 0, len(currencies))
	for _, currency := range currencies {
		entries := make([]Transaction, 0, len(src[currency]))
		for _, rec := range src[currency] {
			entries = append(entries, Transaction{
				Status:      rec.str("status"),
				Type:        rec.str("type"),
				Total:       rec.money(currency, transactionTotalKeys(currency)...),
				Fee:         rec.money(currency, "fee"),
				Net:         rec.money(currency, "amount"),
				SubmitTime:  rec.int64("submit_time"),
				SuccessTime: rec.int64("success_time"),
				ID:          rec.str(idKey),
				TxID:        rec.str("tx"),
			})
		}
		groups = append(groups, TransactionGroup{Currency: currency, Entries: entries})
	}
	return groups
}
