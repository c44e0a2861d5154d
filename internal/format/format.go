// Package format holds the rendering helpers shared by every report:
// rupiah currency output, fixed 8-decimal asset amounts, epoch timestamps
// and email masking.
package format

import (
	"strings"
	"time"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// rupiah follows the id-ID convention: dot as thousands separator and no
// fraction digits.
var rupiah = accounting.Accounting{Symbol: "Rp", Precision: 0, Thousand: ".", Decimal: ","}

// IDR renders an amount as Indonesian rupiah, e.g. 1000000 -> "Rp1.000.000".
func IDR(amount decimal.Decimal) string {
	return rupiah.FormatMoney(amount.InexactFloat64())
}

// Crypto renders an asset amount with exactly eight decimal places.
func Crypto(amount decimal.Decimal) string {
	return amount.StringFixed(8)
}

const (
	timeLayout = "02/01/2006 15.04.05"
	dateLayout = "02/01/2006"
)

// UnixTime renders epoch seconds in the local timezone, or "-" when the
// source field was absent.
func UnixTime(sec int64) string {
	if sec <= 0 {
		return "-"
	}
	return time.Unix(sec, 0).Format(timeLayout)
}

// Time renders a wall-clock time in the same layout used for exchange
// timestamps.
func Time(t time.Time) string {
	return t.Format(timeLayout)
}

// Date renders only the date part.
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// MaskEmail hides most of the mailbox name and the first domain label.
// Names of one or two characters keep the first character; longer names
// keep the first two. The domain label keeps its first and last character.
func MaskEmail(email string) string {
	if email == "" {
		return "-"
	}
	name, domain, ok := strings.Cut(email, "@")
	if !ok || name == "" || domain == "" {
		return "-"
	}
	var masked strings.Builder
	if len(name) <= 2 {
		masked.WriteString(name[:1])
		masked.WriteString(strings.Repeat("*", len(name)-1))
	} else {
		masked.WriteString(name[:2])
		masked.WriteString(strings.Repeat("*", len(name)-2))
	}
	masked.WriteByte('@')
	label, rest, _ := strings.Cut(domain, ".")
	if len(label) >= 2 {
		masked.WriteString(label[:1])
		masked.WriteString(strings.Repeat("*", len(label)-2))
		masked.WriteString(label[len(label)-1:])
	} else {
		masked.WriteString(label)
	}
	if rest != "" {
		masked.WriteByte('.')
		masked.WriteString(rest)
	}
	return masked.String()
}
