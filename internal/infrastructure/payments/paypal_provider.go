package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"greetpage/internal/domain/entities"
	"greetpage/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

var ErrMissingPayPalCredentials = errors.New("missing PAYPAL_CLIENT_ID / PAYPAL_CLIENT_SECRET")

const (
	paypalDefaultBase = "https://api-m.sandbox.paypal.com"
	paypalTimeout     = 10 * time.Second

	paypalStatusCompleted = "COMPLETED"

	paypalIssueAlreadyCaptured = "ORDER_ALREADY_CAPTURED"
	paypalIssueNotApproved     = "ORDER_NOT_APPROVED"
)

// PayPalProvider drives the Orders v2 flow: create order -> payer approves on
// PayPal -> explicit capture. It also performs the OAuth client-credentials
// exchange and the webhook signature verification call.

type PayPalProvider struct {
	http      *resty.Client
	clientID  string
	secret    string
	webhookID string
	plan      ProPlan
	mockMode  bool

	mu          sync.Mutex
	bearerToken string
	tokenExpiry time.Time
}

var (
	_ interfaces.IPaymentProvider = (*PayPalProvider)(nil)
	_ interfaces.IWebhookVerifier = (*PayPalProvider)(nil)
)

func NewPayPalProvider(clientID, clientSecret string) (*PayPalProvider, error) {
	plan := proPlanFromEnv("PRO_CURRENCY_PAYPAL", "USD")

	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][paypal] mock mode enabled")
		return &PayPalProvider{plan: plan, mockMode: true}, nil
	}

	if strings.TrimSpace(clientID) == "" || strings.TrimSpace(clientSecret) == "" {
		log.Printf("[payment][paypal] missing client credentials")
		return nil, ErrMissingPayPalCredentials
	}

	client := resty.New().
		SetBaseURL(getenvDefault("PAYPAL_API_BASE", paypalDefaultBase)).
		SetTimeout(paypalTimeout).
		SetHeader("Content-Type", "application/json")

	log.Printf("[payment][paypal] client initialized base=%s", client.BaseURL)
	return &PayPalProvider{
		http:      client,
		clientID:  clientID,
		secret:    clientSecret,
		webhookID: strings.TrimSpace(getenvDefault("PAYPAL_WEBHOOK_ID", "")),
		plan:      plan,
	}, nil
}

func (p *PayPalProvider) Name() entities.PaymentProvider {
	if p.mockMode {
		return entities.ProviderSimulation
	}
	return entities.ProviderPayPal
}

// --- OAuth ---

type paypalTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (p *PayPalProvider) accessToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bearerToken != "" && time.Now().Before(p.tokenExpiry) {
		return p.bearerToken, nil
	}

	var token paypalTokenResponse
	resp, err := p.http.R().
		SetContext(ctx).
		SetBasicAuth(p.clientID, p.secret).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&token).
		Post("/v1/oauth2/token")
	if err != nil {
		return "", fmt.Errorf("%w: %v", interfaces.ErrProviderUnavailable, err)
	}
	if resp.IsError() || token.AccessToken == "" {
		log.Printf("[payment][paypal] oauth exchange failed status=%d body=%s", resp.StatusCode(), truncateBody(resp.Body()))
		return "", fmt.Errorf("%w: oauth exchange returned %d", interfaces.ErrProviderUnavailable, resp.StatusCode())
	}

	p.bearerToken = token.AccessToken
	// Renew one minute early so in-flight requests never carry a stale token.
	p.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - time.Minute)
	return p.bearerToken, nil
}

// --- Orders API wire shapes ---

type paypalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type paypalCapture struct {
	ID         string        `json:"id"`
	Status     string        `json:"status"`
	Amount     *paypalAmount `json:"amount"`
	CustomID   string        `json:"custom_id"`
	CreateTime string        `json:"create_time"`
	UpdateTime string        `json:"update_time"`
}

type paypalPurchaseUnit struct {
	ReferenceID string        `json:"reference_id,omitempty"`
	CustomID    string        `json:"custom_id,omitempty"`
	Description string        `json:"description,omitempty"`
	Amount      *paypalAmount `json:"amount,omitempty"`
	Payments    *struct {
		Captures []paypalCapture `json:"captures"`
	} `json:"payments,omitempty"`
}

type paypalName struct {
	GivenName string `json:"given_name"`
	Surname   string `json:"surname"`
}

type paypalOrder struct {
	ID            string               `json:"id"`
	Status        string               `json:"status"`
	PurchaseUnits []paypalPurchaseUnit `json:"purchase_units"`
	Payer         *struct {
		EmailAddress string      `json:"email_address"`
		PayerID      string      `json:"payer_id"`
		Name         *paypalName `json:"name"`
	} `json:"payer"`
	Links []struct {
		Href string `json:"href"`
		Rel  string `json:"rel"`
	} `json:"links"`
}

type paypalErrorBody struct {
	Name    string `json:"name"`
	Details []struct {
		Issue string `json:"issue"`
	} `json:"details"`
}

type paypalOrderCreateRequest struct {
	Intent             string               `json:"intent"`
	PurchaseUnits      []paypalPurchaseUnit `json:"purchase_units"`
	ApplicationContext struct {
		ReturnURL  string `json:"return_url,omitempty"`
		CancelURL  string `json:"cancel_url,omitempty"`
		UserAction string `json:"user_action,omitempty"`
	} `json:"application_context"`
}

// --- Operations ---

func (p *PayPalProvider) CreateIntent(ctx context.Context, user entities.UserEntitlement) (entities.CheckoutIntent, error) {
	if p.mockMode {
		orderID := mockOrderID(user.ID)
		log.Printf("[payment][paypal] mock create-intent user_id=%s order_id=%s", user.ID, orderID)
		return entities.CheckoutIntent{ProviderOrderID: orderID, RedirectURL: p.plan.ReturnURL, Provider: entities.ProviderSimulation}, nil
	}

	token, err := p.accessToken(ctx)
	if err != nil {
		return entities.CheckoutIntent{}, err
	}

	req := paypalOrderCreateRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []paypalPurchaseUnit{{
			ReferenceID: "pro-upgrade",
			// custom_id is echoed on the capture resource and in webhooks;
			// it is how callbacks are attributed to a user.
			CustomID:    user.ID,
			Description: p.plan.Description,
			Amount:      &paypalAmount{CurrencyCode: p.plan.Currency, Value: fmt.Sprintf("%.2f", p.plan.Price)},
		}},
	}
	req.ApplicationContext.ReturnURL = p.plan.ReturnURL
	req.ApplicationContext.CancelURL = p.plan.CancelURL
	req.ApplicationContext.UserAction = "PAY_NOW"

	var order paypalOrder
	resp, err := p.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("PayPal-Request-Id", uuid.NewString()).
		SetBody(req).
		SetResult(&order).
		Post("/v2/checkout/orders")
	if err != nil {
		return entities.CheckoutIntent{}, fmt.Errorf("%w: %v", interfaces.ErrProviderUnavailable, err)
	}
	if resp.IsError() {
		log.Printf("[payment][paypal] order create failed user_id=%s status=%d body=%s", user.ID, resp.StatusCode(), truncateBody(resp.Body()))
		return entities.CheckoutIntent{}, fmt.Errorf("%w: order create returned %d", interfaces.ErrProviderUnavailable, resp.StatusCode())
	}

	redirect := ""
	for _, l := range order.Links {
		if l.Rel == "approve" {
			redirect = l.Href
			break
		}
	}
	log.Printf("[payment][paypal] order created user_id=%s order_id=%s", user.ID, order.ID)
	return entities.CheckoutIntent{ProviderOrderID: order.ID, RedirectURL: redirect, Provider: entities.ProviderPayPal}, nil
}

func (p *PayPalProvider) FetchPayment(ctx context.Context, id string) (entities.PaymentRecord, error) {
	if p.mockMode {
		return mockRecord(id, p.plan, paypalStatusCompleted, paypalStatusCompleted), nil
	}

	token, err := p.accessToken(ctx)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	var order paypalOrder
	resp, err := p.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&order).
		Get("/v2/checkout/orders/" + id)
	if err != nil {
		return entities.PaymentRecord{}, fmt.Errorf("%w: %v", interfaces.ErrProviderUnavailable, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return entities.PaymentRecord{}, interfaces.ErrPaymentNotFound
	}
	if resp.IsError() {
		log.Printf("[payment][paypal] order get failed order_id=%s status=%d body=%s", id, resp.StatusCode(), truncateBody(resp.Body()))
		return entities.PaymentRecord{}, fmt.Errorf("%w: order get returned %d", interfaces.ErrProviderUnavailable, resp.StatusCode())
	}

	return p.normalize(order), nil
}

// Capture finalizes collection. Re-capturing an already-captured order is a
// provider error that must read as success: the money moved exactly once.
func (p *PayPalProvider) Capture(ctx context.Context, providerOrderID string) (entities.PaymentRecord, error) {
	if p.mockMode {
		return mockRecord(providerOrderID, p.plan, paypalStatusCompleted, paypalStatusCompleted), nil
	}

	token, err := p.accessToken(ctx)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	var order paypalOrder
	resp, err := p.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("PayPal-Request-Id", uuid.NewString()).
		SetBody(json.RawMessage(`{}`)).
		SetResult(&order).
		Post("/v2/checkout/orders/" + providerOrderID + "/capture")
	if err != nil {
		return entities.PaymentRecord{}, fmt.Errorf("%w: %v", interfaces.ErrProviderUnavailable, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return entities.PaymentRecord{}, interfaces.ErrPaymentNotFound
	case resp.StatusCode() == http.StatusUnprocessableEntity:
		issue := firstIssue(resp.Body())
		log.Printf("[payment][paypal] capture rejected order_id=%s issue=%s", providerOrderID, issue)
		if issue == paypalIssueAlreadyCaptured {
			return p.FetchPayment(ctx, providerOrderID)
		}
		return entities.PaymentRecord{}, fmt.Errorf("%w: %s", interfaces.ErrCaptureConflict, issue)
	case resp.IsError():
		log.Printf("[payment][paypal] capture failed order_id=%s status=%d body=%s", providerOrderID, resp.StatusCode(), truncateBody(resp.Body()))
		return entities.PaymentRecord{}, fmt.Errorf("%w: capture returned %d", interfaces.ErrProviderUnavailable, resp.StatusCode())
	}

	log.Printf("[payment][paypal] capture success order_id=%s status=%s", providerOrderID, order.Status)
	return p.normalize(order), nil
}

// IsFinalSuccess requires the order AND its capture to be COMPLETED. An order
// can report COMPLETED-adjacent states while the capture inside it is still
// PENDING; that is not settled money.
func (p *PayPalProvider) IsFinalSuccess(record entities.PaymentRecord) bool {
	return record.Status == paypalStatusCompleted && record.StatusDetail == paypalStatusCompleted
}

// normalize is the only place PayPal order shapes become a PaymentRecord.
// Status carries the order status, StatusDetail the nested capture status, and
// PaymentID the capture id (the id of the actual money movement).
func (p *PayPalProvider) normalize(order paypalOrder) entities.PaymentRecord {
	record := entities.PaymentRecord{
		PaymentID:       "",
		ProviderOrderID: order.ID,
		Provider:        entities.ProviderPayPal,
		Status:          order.Status,
		PaymentMethod:   "paypal",
		PaymentType:     "order",
		Date:            time.Now().UTC(),
	}

	if len(order.PurchaseUnits) > 0 {
		unit := order.PurchaseUnits[0]
		record.UserID = unit.CustomID
		if unit.Amount != nil {
			record.Amount = parseAmount(unit.Amount.Value)
			record.Currency = unit.Amount.CurrencyCode
		}
		if unit.Payments != nil && len(unit.Payments.Captures) > 0 {
			capture := unit.Payments.Captures[0]
			record.PaymentID = capture.ID
			record.StatusDetail = capture.Status
			if capture.CustomID != "" {
				record.UserID = capture.CustomID
			}
			if capture.Amount != nil {
				record.Amount = parseAmount(capture.Amount.Value)
				record.Currency = capture.Amount.CurrencyCode
			}
			if t := parseTime(capture.UpdateTime, capture.CreateTime); !t.IsZero() {
				record.Date = t
			}
		}
	}

	if order.Payer != nil {
		payer := &entities.Payer{Email: order.Payer.EmailAddress, PayerID: order.Payer.PayerID}
		if order.Payer.Name != nil {
			payer.Name = strings.TrimSpace(order.Payer.Name.GivenName + " " + order.Payer.Name.Surname)
		}
		if payer.Email != "" || payer.PayerID != "" || payer.Name != "" {
			record.Payer = payer
		}
	}
	return record
}

// NormalizeCaptureResource converts the capture resource embedded in a
// PAYMENT.CAPTURE.COMPLETED webhook, plus the related order id extracted from
// its supplementary data, into a PaymentRecord.
func (p *PayPalProvider) NormalizeCaptureResource(raw []byte, orderID string) (entities.PaymentRecord, error) {
	var capture paypalCapture
	if err := json.Unmarshal(raw, &capture); err != nil {
		return entities.PaymentRecord{}, err
	}
	if capture.ID == "" {
		return entities.PaymentRecord{}, errors.New("capture resource has no id")
	}

	record := entities.PaymentRecord{
		PaymentID:       capture.ID,
		ProviderOrderID: orderID,
		Provider:        entities.ProviderPayPal,
		StatusDetail:    capture.Status,
		PaymentMethod:   "paypal",
		PaymentType:     "capture",
		UserID:          capture.CustomID,
		Date:            time.Now().UTC(),
	}
	// A completed capture implies the order completed; the webhook does not
	// re-send the order envelope.
	if capture.Status == paypalStatusCompleted {
		record.Status = paypalStatusCompleted
	}
	if capture.Amount != nil {
		record.Amount = parseAmount(capture.Amount.Value)
		record.Currency = capture.Amount.CurrencyCode
	}
	if t := parseTime(capture.UpdateTime, capture.CreateTime); !t.IsZero() {
		record.Date = t
	}
	return record, nil
}

// --- Webhook signature verification ---

type paypalVerifyRequest struct {
	AuthAlgo         string          `json:"auth_algo"`
	CertURL          string          `json:"cert_url"`
	TransmissionID   string          `json:"transmission_id"`
	TransmissionSig  string          `json:"transmission_sig"`
	TransmissionTime string          `json:"transmission_time"`
	WebhookID        string          `json:"webhook_id"`
	WebhookEvent     json.RawMessage `json:"webhook_event"`
}

type paypalVerifyResponse struct {
	VerificationStatus string `json:"verification_status"`
}

// VerifyWebhookSignature asks PayPal to verify the transmission headers of an
// inbound webhook against the platform-issued webhook id. Anything but an
// explicit SUCCESS is a hard reject.
func (p *PayPalProvider) VerifyWebhookSignature(ctx context.Context, headers interfaces.WebhookSignatureHeaders, event []byte) (bool, error) {
	if p.mockMode {
		return true, nil
	}
	if p.webhookID == "" {
		return false, errors.New("PAYPAL_WEBHOOK_ID not configured")
	}
	if headers.TransmissionID == "" || headers.TransmissionSig == "" {
		return false, nil
	}

	token, err := p.accessToken(ctx)
	if err != nil {
		return false, err
	}

	var verdict paypalVerifyResponse
	resp, err := p.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(paypalVerifyRequest{
			AuthAlgo:         headers.AuthAlgo,
			CertURL:          headers.CertURL,
			TransmissionID:   headers.TransmissionID,
			TransmissionSig:  headers.TransmissionSig,
			TransmissionTime: headers.TransmissionTime,
			WebhookID:        p.webhookID,
			WebhookEvent:     json.RawMessage(event),
		}).
		SetResult(&verdict).
		Post("/v1/notifications/verify-webhook-signature")
	if err != nil {
		return false, fmt.Errorf("%w: %v", interfaces.ErrProviderUnavailable, err)
	}
	if resp.IsError() {
		log.Printf("[payment][paypal] verify-signature call failed status=%d body=%s", resp.StatusCode(), truncateBody(resp.Body()))
		return false, fmt.Errorf("%w: verify-signature returned %d", interfaces.ErrProviderUnavailable, resp.StatusCode())
	}

	return verdict.VerificationStatus == "SUCCESS", nil
}

// --- helpers ---

func firstIssue(body []byte) string {
	var parsed paypalErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if len(parsed.Details) > 0 {
		return parsed.Details[0].Issue
	}
	return parsed.Name
}

func parseAmount(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseTime(candidates ...string) time.Time {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, c); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func truncateBody(b []byte) string {
	const max = 512
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
