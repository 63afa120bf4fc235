package payments

import (
	"context"
	"strings"
	"testing"
	"time"

	"greetpage/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

func TestMercadoPagoProvider_IsFinalSuccess(t *testing.T) {
	p := &MercadoPagoProvider{}
	cases := []struct {
		name   string
		status string
		detail string
		want   bool
	}{
		{"approved and accredited", "approved", "accredited", true},
		{"approved with contingency hold", "approved", "pending_contingency", false},
		{"in process", "in_process", "pending_review_manual", false},
		{"rejected", "rejected", "cc_rejected_other_reason", false},
		{"accredited detail on a non-approved status", "refunded", "accredited", false},
		{"empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.IsFinalSuccess(entities.PaymentRecord{Status: tc.status, StatusDetail: tc.detail})
			if got != tc.want {
				t.Fatalf("IsFinalSuccess(%q,%q) = %t, want %t", tc.status, tc.detail, got, tc.want)
			}
		})
	}
}

func TestMercadoPagoProvider_Normalize(t *testing.T) {
	p := &MercadoPagoProvider{}

	t.Run("full response", func(t *testing.T) {
		approved := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
		resp := &payment.Response{
			ID:                123456789,
			Status:            "approved",
			StatusDetail:      "accredited",
			TransactionAmount: 4.99,
			CurrencyID:        "ARS",
			PaymentMethodID:   "visa",
			PaymentTypeID:     "credit_card",
			ExternalReference: "user-1",
			DateApproved:      approved,
		}
		resp.Payer.Email = "payer@example.com"
		resp.Payer.FirstName = "Ada"
		resp.Payer.LastName = "Lovelace"

		record := p.normalize(resp)
		if record.PaymentID != "123456789" {
			t.Fatalf("unexpected payment id: %s", record.PaymentID)
		}
		if record.ProviderOrderID != "" {
			t.Fatalf("provider order id must stay empty, got %s", record.ProviderOrderID)
		}
		if record.Provider != entities.ProviderMercadoPago {
			t.Fatalf("unexpected provider: %s", record.Provider)
		}
		if record.UserID != "user-1" {
			t.Fatalf("external reference must become the user attribution, got %s", record.UserID)
		}
		if record.Amount != 4.99 || record.Currency != "ARS" {
			t.Fatalf("unexpected amount: %f %s", record.Amount, record.Currency)
		}
		if !record.Date.Equal(approved) {
			t.Fatalf("expected approval date, got %s", record.Date)
		}
		if record.Payer == nil || record.Payer.Email != "payer@example.com" || record.Payer.Name != "Ada Lovelace" {
			t.Fatalf("unexpected payer: %+v", record.Payer)
		}
		if !p.IsFinalSuccess(record) {
			t.Fatal("expected final success")
		}
	})

	t.Run("nil response", func(t *testing.T) {
		record := p.normalize(nil)
		if record.Provider != entities.ProviderMercadoPago || record.PaymentID != "" {
			t.Fatalf("unexpected record: %+v", record)
		}
	})
}

func TestMercadoPagoProvider_FetchPaymentRejectsNonNumericID(t *testing.T) {
	p := &MercadoPagoProvider{}
	if _, err := p.FetchPayment(context.Background(), "not-a-number"); err == nil {
		t.Fatal("expected error for non-numeric payment id")
	}
}

func TestMercadoPagoProvider_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

	p, err := NewMercadoPagoProvider("")
	if err != nil {
		t.Fatalf("mock mode must not require credentials: %v", err)
	}
	if p.Name() != entities.ProviderSimulation {
		t.Fatalf("expected simulation provider, got %s", p.Name())
	}

	intent, err := p.CreateIntent(context.Background(), entities.UserEntitlement{ID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(intent.ProviderOrderID, "sim-user-1-") {
		t.Fatalf("mock order id must embed the user attribution, got %s", intent.ProviderOrderID)
	}

	// The capture path must round-trip attribution through the order id alone.
	record, err := p.Capture(context.Background(), intent.ProviderOrderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.UserID != "user-1" {
		t.Fatalf("expected attribution user-1, got %s", record.UserID)
	}
	if !p.IsFinalSuccess(record) {
		t.Fatal("mock capture must be final")
	}
}

func TestIsNotFoundError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"api 404 body", errApiMessage(`{"status":404,"error":"not_found"}`), true},
		{"plain not found", errApiMessage("payment not found"), true},
		{"server error", errApiMessage(`{"status":500,"error":"internal"}`), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isNotFoundError(tc.err); got != tc.want {
				t.Fatalf("isNotFoundError(%v) = %t, want %t", tc.err, got, tc.want)
			}
		})
	}
}

type errApiMessage string

func (e errApiMessage) Error() string { return string(e) }
