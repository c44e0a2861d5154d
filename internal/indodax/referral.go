package indodax

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// ListDownline pages through accounts referred by this one.
func (c *Client) ListDownline(ctx context.Context, page, limit int) (DownlineList, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var raw record
	if err := c.call(ctx, "listDownline", params, &raw); err != nil {
		return DownlineList{}, err
	}

	items := raw.list("data")
	entries := make([]Downline, 0, len(items))
	for _, rec := range items {
		entries = append(entries, Downline{
			Username:         rec.str("username"),
			Email:            rec.str("email"),
			EmailVerified:    rec.flag("email_verified"),
			IDVerified:       rec.flag("id_verified"),
			RegistrationTime: rec.int64("registration_date"),
			Start:            rec.str("start"),
			End:              rec.str("end"),
		})
	}
	return DownlineList{
		Page:       raw.int64("current_page"),
		TotalPages: raw.int64("total_page"),
		TotalData:  raw.int64("total_data"),
		PerPage:    raw.int64("data_per_page"),
		Entries:    entries,
	}, nil
}

// CheckDownline reports whether an email address belongs to this
// account's downline.
func (c *Client) CheckDownline(ctx context.Context, email string) (DownlineCheck, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return DownlineCheck{}, errors.New("indodax: email is required")
	}
	params := url.Values{}
	params.Set("email", email)

	var raw record
	if err := c.call(ctx, "checkDownline", params, &raw); err != nil {
		return DownlineCheck{}, err
	}
	return DownlineCheck{
		Email:      email,
		IsDownline: raw.flag("is_downline"),
	}, nil
}

// CreateVoucher issues a rupiah voucher for another user.
func (c *Client) CreateVoucher(ctx context.Context, amount int64, toEmail string) (VoucherReceipt, error) {
	if amount <= 0 {
		return VoucherReceipt{}, errors.New("indodax: amount must be positive")
	}
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return VoucherReceipt{}, errors.New("indodax: recipient email is required")
	}
	params := url.Values{}
	params.Set("amount", strconv.FormatInt(amount, 10))
	params.Set("to_email", toEmail)

	var raw record
	if err := c.call(ctx, "createVoucher", params, &raw); err != nil {
		return VoucherReceipt{}, err
	}
	receipt := VoucherReceipt{
		Amount:     raw.int64("amount"),
		ToEmail:    raw.str("to_email"),
		Code:       raw.str("voucher"),
		SubmitTime: raw.int64("submit_time"),
	}
	if receipt.Amount == 0 {
		receipt.Amount = amount
	}
	if receipt.ToEmail == "" {
		receipt.ToEmail = toEmail
	}
	return receipt, nil
}
