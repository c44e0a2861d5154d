package indodax

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// record is a raw response object whose field names vary by endpoint and
// trading pair. Accessors never fail: an absent or malformed field yields
// the zero value, so a partially filled report is produced instead of an
// error for the whole response.
type record map[string]any

func (r record) str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "1"
		}
		return "0"
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func (r record) dec(key string) (decimal.Decimal, bool) {
	switch v := r[key].(type) {
	case string:
		if v == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case float64:
		return decimal.NewFromFloat(v), true
	default:
		return decimal.Zero, false
	}
}

func (r record) int64(key string) int64 {
	d, ok := r.dec(key)
	if !ok {
		return 0
	}
	return d.IntPart()
}

func (r record) flag(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		return v == "1" || strings.EqualFold(v, "true")
	case float64:
		return v != 0
	default:
		return false
	}
}

func (r record) sub(key string) record {
	m, ok := r[key].(map[string]any)
	if !ok {
		return nil
	}
	return record(m)
}

func (r record) list(key string) []record {
	items, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]record, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, record(m))
		}
	}
	return out
}

// resolve walks an ordered fallback chain of keys and returns the first
// numeric value found together with the key that matched. A miss on every
// key yields zero and an empty key. The chain is declared data at each
// call site, so the fallback order is explicit rather than implied by
// code order.
func (r record) resolve(chain ...string) (decimal.Decimal, string) {
	for _, key := range chain {
		if d, ok := r.dec(key); ok {
			return d, key
		}
	}
	return decimal.Zero, ""
}

// money resolves a fallback chain into a Money whose asset reflects the
// key that matched; fallbackAsset applies when no key matched or the
// matched key carries no asset suffix.
func (r record) money(fallbackAsset string, chain ...string) Money {
	d, key := r.resolve(chain...)
	return Money{Amount: d, Asset: assetFromKey(key, fallbackAsset)}
}

// assetFromKey derives the denominating asset from a matched field name
// such as "remain_btc" or "order_rp". The exchange abbreviates rupiah as
// "rp" in some field names.
func assetFromKey(key, fallback string) string {
	if key == "" {
		return fallback
	}
	i := strings.LastIndexByte(key, '_')
	if i < 0 || i == len(key)-1 {
		return fallback
	}
	suffix := key[i+1:]
	if suffix == "rp" {
		return "idr"
	}
	return suffix
}
