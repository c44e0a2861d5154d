package indodax

import (
	"net/url"
	"strings"
	"testing"
)

func TestSignDeterministic(t *testing.T) {
	params := url.Values{}
	params.Set("method", "getInfo")
	params.Set("timestamp", "1700000000000")
	params.Set("recvWindow", "5000")

	payload1, sig1 := Sign(params, "secret")
	payload2, sig2 := Sign(params, "secret")
	if payload1 != payload2 || sig1 != sig2 {
		t.Fatalf("Sign() not deterministic: (%q,%q) vs (%q,%q)", payload1, sig1, payload2, sig2)
	}
	if len(sig1) != 128 {
		t.Fatalf("signature length = %d, want 128 hex chars for sha512", len(sig1))
	}
	if sig1 != strings.ToLower(sig1) {
		t.Fatalf("signature %q is not lowercase hex", sig1)
	}
}

func TestSignIndependentOfConstructionOrder(t *testing.T) {
	a := url.Values{}
	a.Set("method", "trade")
	a.Set("pair", "btc_idr")
	a.Set("timestamp", "1700000000000")

	b := url.Values{}
	b.Set("timestamp", "1700000000000")
	b.Set("pair", "btc_idr")
	b.Set("method", "trade")

	payloadA, sigA := Sign(a, "secret")
	payloadB, sigB := Sign(b, "secret")
	if payloadA != payloadB {
		t.Fatalf("payloads differ by construction order: %q vs %q", payloadA, payloadB)
	}
	if sigA != sigB {
		t.Fatalf("signatures differ by construction order")
	}
}

func TestSignValueChangeChangesSignature(t *testing.T) {
	params := url.Values{}
	params.Set("method", "trade")
	params.Set("pair", "btc_idr")
	_, sig1 := Sign(params, "secret")

	params.Set("pair", "eth_idr")
	_, sig2 := Sign(params, "secret")
	if sig1 == sig2 {
		t.Fatalf("signature unchanged after parameter change")
	}

	params.Set("pair", "btc_idr")
	_, sig3 := Sign(params, "other-secret")
	if sig1 == sig3 {
		t.Fatalf("signature unchanged after secret change")
	}
}

func TestSignOmitsAbsentParameters(t *testing.T) {
	params := url.Values{}
	params.Set("method", "withdrawFee")
	params.Set("currency", "btc")

	payload, _ := Sign(params, "secret")
	if strings.Contains(payload, "network") {
		t.Fatalf("payload %q contains an absent parameter", payload)
	}
	if strings.Contains(payload, "=&") || strings.HasSuffix(payload, "=") {
		t.Fatalf("payload %q serializes an empty value", payload)
	}
}

func TestSignPanicsOnEmptySecret(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Sign() with empty secret did not panic")
		}
	}()
	Sign(url.Values{"method": {"getInfo"}}, "")
}
