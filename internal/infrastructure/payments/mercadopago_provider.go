package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"greetpage/internal/domain/entities"
	"greetpage/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const (
	mpStatusApproved       = "approved"
	mpStatusDetailAccepted = "accredited"
)

// MercadoPagoProvider drives Checkout Pro: CreateIntent builds a preference
// whose init point the client is redirected to, and the payment itself is
// created by Mercado Pago once the payer completes checkout.
//
// Mercado Pago has no explicit capture step for this flow, so Capture is a
// read-side verification of the payment id the checkout redirect reported.

type MercadoPagoProvider struct {
	payments    payment.Client
	preferences preference.Client
	plan        ProPlan
	mockMode    bool
}

var _ interfaces.IPaymentProvider = (*MercadoPagoProvider)(nil)

func NewMercadoPagoProvider(accessToken string) (*MercadoPagoProvider, error) {
	plan := proPlanFromEnv("PRO_CURRENCY_MP", "ARS")

	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][mercadopago] mock mode enabled")
		return &MercadoPagoProvider{plan: plan, mockMode: true}, nil
	}

	if strings.TrimSpace(accessToken) == "" {
		log.Printf("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][mercadopago] client initialized")

	return &MercadoPagoProvider{
		payments:    payment.NewClient(cfg),
		preferences: preference.NewClient(cfg),
		plan:        plan,
	}, nil
}

func (p *MercadoPagoProvider) Name() entities.PaymentProvider {
	if p.mockMode {
		return entities.ProviderSimulation
	}
	return entities.ProviderMercadoPago
}

func (p *MercadoPagoProvider) CreateIntent(ctx context.Context, user entities.UserEntitlement) (entities.CheckoutIntent, error) {
	if p.mockMode {
		orderID := mockOrderID(user.ID)
		log.Printf("[payment][mercadopago] mock create-intent user_id=%s order_id=%s", user.ID, orderID)
		return entities.CheckoutIntent{ProviderOrderID: orderID, RedirectURL: p.plan.ReturnURL, Provider: entities.ProviderSimulation}, nil
	}

	req := preference.Request{
		Items: []preference.ItemRequest{{
			ID:          "pro-upgrade",
			Title:       p.plan.Title,
			Description: p.plan.Description,
			Quantity:    1,
			UnitPrice:   p.plan.Price,
			CurrencyID:  p.plan.Currency,
		}},
		// external_reference is echoed back on the payment and in webhooks;
		// it is how callbacks are attributed to a user.
		ExternalReference: user.ID,
		BackURLs: &preference.BackURLsRequest{
			Success: p.plan.ReturnURL,
			Pending: p.plan.ReturnURL,
			Failure: p.plan.CancelURL,
		},
		AutoReturn: "approved",
	}
	if p.plan.NotifyURL != "" {
		req.NotificationURL = p.plan.NotifyURL + "/v1/webhooks/mercadopago"
	}

	resp, err := p.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][mercadopago] preference create failed user_id=%s err=%v", user.ID, err)
		return entities.CheckoutIntent{}, fmt.Errorf("%w: %v", interfaces.ErrProviderUnavailable, err)
	}

	log.Printf("[payment][mercadopago] preference created user_id=%s preference_id=%s", user.ID, resp.ID)
	return entities.CheckoutIntent{
		ProviderOrderID: resp.ID,
		RedirectURL:     resp.InitPoint,
		Provider:        entities.ProviderMercadoPago,
	}, nil
}

func (p *MercadoPagoProvider) FetchPayment(ctx context.Context, id string) (entities.PaymentRecord, error) {
	if p.mockMode {
		return mockRecord(id, p.plan, mpStatusApproved, mpStatusDetailAccepted), nil
	}

	numericID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return entities.PaymentRecord{}, fmt.Errorf("invalid mercado pago payment id %q", id)
	}

	resp, err := p.payments.Get(ctx, numericID)
	if err != nil {
		if isNotFoundError(err) {
			return entities.PaymentRecord{}, interfaces.ErrPaymentNotFound
		}
		log.Printf("[payment][mercadopago] payment get failed payment_id=%s err=%v", id, err)
		return entities.PaymentRecord{}, fmt.Errorf("%w: %v", interfaces.ErrProviderUnavailable, err)
	}

	return p.normalize(resp), nil
}

// Capture exists for interface symmetry: Checkout Pro collects funds on the
// provider side, so confirming is fetching the payment and letting
// IsFinalSuccess decide.
func (p *MercadoPagoProvider) Capture(ctx context.Context, providerOrderID string) (entities.PaymentRecord, error) {
	return p.FetchPayment(ctx, providerOrderID)
}

// IsFinalSuccess requires BOTH status and status_detail. Mercado Pago reports
// some approved payments with a still-reversible detail (e.g. a contingency
// hold), so a single field is not enough.
func (p *MercadoPagoProvider) IsFinalSuccess(record entities.PaymentRecord) bool {
	return record.Status == mpStatusApproved && record.StatusDetail == mpStatusDetailAccepted
}

// normalize is the only place Mercado Pago response shapes become a
// PaymentRecord. Optional sub-fields (payer, dates) are tolerated.
func (p *MercadoPagoProvider) normalize(resp *payment.Response) entities.PaymentRecord {
	if resp == nil {
		return entities.PaymentRecord{Provider: entities.ProviderMercadoPago}
	}

	// ProviderOrderID stays empty: Checkout Pro does not echo the preference
	// id on the payment resource, and the external reference carries the user
	// attribution, not a payment identity.
	record := entities.PaymentRecord{
		PaymentID:     strconv.Itoa(resp.ID),
		Provider:      entities.ProviderMercadoPago,
		Amount:        resp.TransactionAmount,
		Currency:      resp.CurrencyID,
		Status:        resp.Status,
		StatusDetail:  resp.StatusDetail,
		PaymentMethod: resp.PaymentMethodID,
		PaymentType:   resp.PaymentTypeID,
		UserID:        resp.ExternalReference,
		Date:          pickDate(resp.DateApproved, resp.DateCreated),
	}

	if email := strings.TrimSpace(resp.Payer.Email); email != "" || resp.Payer.ID != "" {
		record.Payer = &entities.Payer{
			Email:   email,
			Name:    strings.TrimSpace(strings.TrimSpace(resp.Payer.FirstName) + " " + strings.TrimSpace(resp.Payer.LastName)),
			PayerID: resp.Payer.ID,
		}
	}
	return record
}

func pickDate(dates ...time.Time) time.Time {
	for _, d := range dates {
		if !d.IsZero() {
			return d.UTC()
		}
	}
	return time.Now().UTC()
}

// The SDK surfaces API errors as formatted strings; substring-match the few
// cases we branch on.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"status\":404") || strings.Contains(msg, "not_found") || strings.Contains(msg, "not found")
}
