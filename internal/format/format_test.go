package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIDR(t *testing.T) {
	if got := IDR(decimal.NewFromInt(1000000)); got != "Rp1.000.000" {
		t.Fatalf("IDR(1000000) = %q, want %q", got, "Rp1.000.000")
	}
	if got := IDR(decimal.NewFromInt(950)); got != "Rp950" {
		t.Fatalf("IDR(950) = %q, want %q", got, "Rp950")
	}
	if got := IDR(decimal.RequireFromString("25000.75")); got != "Rp25.001" {
		t.Fatalf("IDR(25000.75) = %q, want rounded %q", got, "Rp25.001")
	}
}

func TestCrypto(t *testing.T) {
	if got := Crypto(decimal.RequireFromString("0.1")); got != "0.10000000" {
		t.Fatalf("Crypto(0.1) = %q, want %q", got, "0.10000000")
	}
	if got := Crypto(decimal.RequireFromString("12.123456789")); got != "12.12345679" {
		t.Fatalf("Crypto(12.123456789) = %q, want %q", got, "12.12345679")
	}
	if got := Crypto(decimal.Zero); got != "0.00000000" {
		t.Fatalf("Crypto(0) = %q, want %q", got, "0.00000000")
	}
}

func TestMaskEmail(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"ab@domain.com", "a*@d****n.com"},
		{"a@domain.com", "a@d****n.com"},
		{"budi.santoso@gmail.com", "bu**********@g***l.com"},
		{"xy@io.co.id", "x*@io.co.id"},
		{"", "-"},
		{"not-an-email", "-"},
		{"@domain.com", "-"},
	}
	for _, tc := range cases {
		if got := MaskEmail(tc.in); got != tc.want {
			t.Fatalf("MaskEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUnixTimeAbsent(t *testing.T) {
	if got := UnixTime(0); got != "-" {
		t.Fatalf("UnixTime(0) = %q, want %q", got, "-")
	}
	if got := UnixTime(-5); got != "-" {
		t.Fatalf("UnixTime(-5) = %q, want %q", got, "-")
	}
}
