package response

import (
	"time"

	"greetpage/internal/domain/entities"
)

type CheckoutIntentResponse struct {
	ProviderOrderID string `json:"provider_order_id"`
	RedirectURL     string `json:"redirect_url"`
	Provider        string `json:"provider"`
}

func FromCheckoutIntent(i entities.CheckoutIntent) CheckoutIntentResponse {
	return CheckoutIntentResponse{
		ProviderOrderID: i.ProviderOrderID,
		RedirectURL:     i.RedirectURL,
		Provider:        string(i.Provider),
	}
}

type PayerResponse struct {
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	PayerID string `json:"payer_id,omitempty"`
}

type PaymentRecordResponse struct {
	PaymentID       string         `json:"payment_id"`
	ProviderOrderID string         `json:"provider_order_id,omitempty"`
	Provider        string         `json:"provider"`
	Amount          float64        `json:"amount"`
	Currency        string         `json:"currency,omitempty"`
	Status          string         `json:"status"`
	StatusDetail    string         `json:"status_detail,omitempty"`
	PaymentMethod   string         `json:"payment_method,omitempty"`
	PaymentType     string         `json:"payment_type,omitempty"`
	Payer           *PayerResponse `json:"payer,omitempty"`
	Date            time.Time      `json:"date"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentRecordResponse {
	resp := PaymentRecordResponse{
		PaymentID:       p.PaymentID,
		ProviderOrderID: p.ProviderOrderID,
		Provider:        string(p.Provider),
		Amount:          p.Amount,
		Currency:        p.Currency,
		Status:          p.Status,
		StatusDetail:    p.StatusDetail,
		PaymentMethod:   p.PaymentMethod,
		PaymentType:     p.PaymentType,
		Date:            p.Date,
	}
	if p.Payer != nil {
		resp.Payer = &PayerResponse{Email: p.Payer.Email, Name: p.Payer.Name, PayerID: p.Payer.PayerID}
	}
	return resp
}

type CaptureResponse struct {
	IsPro   bool                  `json:"is_pro"`
	Payment PaymentRecordResponse `json:"payment"`
}

type PaymentStatusResponse struct {
	Payment PaymentRecordResponse `json:"payment"`
	Final   bool                  `json:"final"`
}

type EntitlementResponse struct {
	UserID       string                  `json:"user_id"`
	IsPro        bool                    `json:"is_pro"`
	ProExpiresAt *time.Time              `json:"pro_expires_at,omitempty"`
	Payments     []PaymentRecordResponse `json:"payments"`
}

func FromUserEntitlement(u entities.UserEntitlement) EntitlementResponse {
	resp := EntitlementResponse{
		UserID:       u.ID,
		IsPro:        u.IsPro,
		ProExpiresAt: u.ProExpiresAt,
		Payments:     make([]PaymentRecordResponse, 0, len(u.Payments)),
	}
	for _, p := range u.Payments {
		resp.Payments = append(resp.Payments, FromPaymentRecord(p))
	}
	return resp
}
