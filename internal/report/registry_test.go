package report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"indodax-bot/internal/indodax"
)

func newTestRegistry(t *testing.T, handler http.HandlerFunc) (*Registry, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := indodax.New(indodax.Options{
		APIKey:    "test-key",
		SecretKey: "test-secret",
		Endpoint:  srv.URL,
	})
	if err != nil {
		t.Fatalf("indodax.New() error = %v", err)
	}
	return NewRegistry(client), srv
}

func TestRegistryFailureCaptionKeepsServerMessage(t *testing.T) {
	reg, _ := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":0,"error":"Invalid signature."}`))
	})

	caption := reg.AccountInfo(context.Background())
	if !strings.HasPrefix(caption, "Failed to Retrieve Account Data\n") {
		t.Fatalf("caption missing failure header:\n%s", caption)
	}
	if !strings.Contains(caption, "Invalid signature.") {
		t.Fatalf("caption lost the server message:\n%s", caption)
	}
}

func TestRegistryFailureCaptionOnTransportError(t *testing.T) {
	reg, srv := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	caption := reg.OpenOrders(context.Background(), "btc_idr")
	lines := strings.SplitN(caption, "\n", 2)
	if lines[0] != "Failed to Retrieve Open Orders" {
		t.Fatalf("caption header = %q:\n%s", lines[0], caption)
	}
	if len(lines) < 2 || strings.TrimSpace(lines[1]) == "" {
		t.Fatalf("caption has no error detail:\n%s", caption)
	}
}

func TestRegistryFailureCaptionOnInvalidInput(t *testing.T) {
	reg, _ := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request sent for invalid input")
	})

	caption := reg.Trade(context.Background(), indodax.TradeRequest{Pair: "btc_idr", Side: "hold"})
	if !strings.HasPrefix(caption, "Failed to Place Trading Order\n") {
		t.Fatalf("caption missing failure header:\n%s", caption)
	}
}

func TestRegistryAccountInfoRendersCaption(t *testing.T) {
	reg, _ := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":1,"return":{
			"server_time":1700000000,
			"name":"Budi",
			"email":"ab@domain.com",
			"user_id":"12345",
			"verification_status":"verified",
			"gauth_enable":true,
			"withdraw_status":1,
			"balance":{"idr":"1000000","btc":"0.5"},
			"balance_hold":{"idr":"0"}
		}}`))
	})

	caption := reg.AccountInfo(context.Background())
	for _, want := range []string{
		"Account Status",
		"Email: a*@d****n.com",
		"IDR: Rp1.000.000",
		"BTC: 0.50000000",
		"No held balance.",
	} {
		if !strings.Contains(caption, want) {
			t.Fatalf("caption missing %q:\n%s", want, caption)
		}
	}
}
