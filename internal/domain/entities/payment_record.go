package entities

import "time"

// PaymentProvider identifies which external gateway collected a payment.
//
// The simulation provider is used when PAYMENT_GATEWAY_MOCK is enabled and no
// real gateway is called.

type PaymentProvider string

const (
	ProviderMercadoPago PaymentProvider = "mercadopago"
	ProviderPayPal      PaymentProvider = "paypal"
	ProviderSimulation  PaymentProvider = "simulation"
)

// Payer is the best-effort payer identity reported by the provider.
// Every field is optional; providers routinely omit some of them.
type Payer struct {
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	PayerID string `json:"payer_id,omitempty"`
}

// PaymentRecord is the normalized, provider-agnostic view of a single payment.
//
// Identity:
//   - PaymentID is the provider-native id of the payment/capture itself.
//   - ProviderOrderID is the higher-level order/preference id, when the
//     provider has one. It is kept for cross-referencing: a webhook may carry
//     one id and the synchronous capture path the other.
//
// Status and StatusDetail keep the provider-native strings. "The payment is
// definitively settled" is decided by the provider adapter's IsFinalSuccess
// predicate, never by presence of a record alone.
type PaymentRecord struct {
	PaymentID       string          `json:"payment_id"`
	ProviderOrderID string          `json:"provider_order_id,omitempty"`
	Provider        PaymentProvider `json:"provider"`

	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`

	Status       string `json:"status"`
	StatusDetail string `json:"status_detail,omitempty"`

	PaymentMethod string `json:"payment_method,omitempty"`
	PaymentType   string `json:"payment_type,omitempty"`

	Payer *Payer `json:"payer,omitempty"`

	// UserID is the attribution extracted from the provider's echoed custom
	// reference (external_reference / custom_id). Empty when the provider did
	// not echo it back.
	UserID string `json:"user_id,omitempty"`

	Date time.Time `json:"date"`
}

// Matches reports whether two records identify the same real-world payment.
// Any overlap between the identifying ids counts: a capture-path record and a
// webhook-path record for the same payment may disagree on which id they carry.
func (p PaymentRecord) Matches(other PaymentRecord) bool {
	for _, id := range []string{p.PaymentID, p.ProviderOrderID} {
		if id == "" {
			continue
		}
		if id == other.PaymentID || id == other.ProviderOrderID {
			return true
		}
	}
	return false
}

// CheckoutIntent is the provider-side order/preference created for a PRO
// upgrade. It is not persisted locally; the provider echoes the user id back.
type CheckoutIntent struct {
	ProviderOrderID string          `json:"provider_order_id"`
	RedirectURL     string          `json:"redirect_url"`
	Provider        PaymentProvider `json:"provider"`
}
