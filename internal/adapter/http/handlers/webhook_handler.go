package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	request "greetpage/internal/adapter/http/dto/request"
	"greetpage/internal/domain/entities"
	"greetpage/internal/usecase"
	"greetpage/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const (
	defaultProcessTimeout = 30 * time.Second

	paypalEventCaptureCompleted = "PAYMENT.CAPTURE.COMPLETED"
)

// WebhookHandler is the unauthenticated ingress for provider callbacks.
//
// Contract: ack with 200 immediately, before verification or reconciliation.
// Providers retry aggressively on non-2xx or slow responses, and a retry is
// just another idempotent input to reconcile, so fast-ack wins. Everything
// after the ack is logged, never surfaced to the provider.

type WebhookHandler struct {
	webhooks   usecase.IWebhookUseCase
	verifier   interfaces.IWebhookVerifier
	normalizer interfaces.ICaptureEventNormalizer

	processTimeout time.Duration

	// tracks in-flight post-ack processing; Wait is for tests and shutdown.
	inflight sync.WaitGroup
}

func NewWebhookHandler(webhooks usecase.IWebhookUseCase, verifier interfaces.IWebhookVerifier, normalizer interfaces.ICaptureEventNormalizer) *WebhookHandler {
	return &WebhookHandler{
		webhooks:       webhooks,
		verifier:       verifier,
		normalizer:     normalizer,
		processTimeout: defaultProcessTimeout,
	}
}

// Wait blocks until all post-ack processing goroutines finish.
func (h *WebhookHandler) Wait() { h.inflight.Wait() }

// MercadoPago godoc
// @Summary  Mercado Pago webhook receiver
// @Tags     webhooks
// @Success  200  {object}  map[string]string
// @Router   /webhooks/mercadopago [post]
func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] mercadopago body read failed err=%v", err)
		body = nil
	}
	topic := c.Query("topic")
	queryID := c.Query("id")

	// Ack first; processing is asynchronous to the response.
	c.JSON(http.StatusOK, gin.H{"status": "received"})

	ev, ok := request.NormalizeMercadoPagoEvent(body, topic, queryID)
	if !ok {
		log.Printf("[webhook][handler] mercadopago event ignored topic=%q body_len=%d", topic, len(body))
		return
	}

	log.Printf("[webhook][handler] mercadopago event accepted payment_id=%s", ev.PaymentID)
	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), h.processTimeout)
		defer cancel()
		// The webhook body is never trusted as payment state: the processor
		// re-fetches the authoritative record and applies the finality check.
		if err := h.webhooks.ProcessPaymentEvent(ctx, entities.ProviderMercadoPago, ev.PaymentID); err != nil {
			log.Printf("[webhook][handler] mercadopago processing failed payment_id=%s err=%v", ev.PaymentID, err)
		}
	}()
}

// PayPal godoc
// @Summary  PayPal webhook receiver
// @Tags     webhooks
// @Success  200  {object}  map[string]string
// @Router   /webhooks/paypal [post]
func (h *WebhookHandler) PayPal(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] paypal body read failed err=%v", err)
		body = nil
	}
	headers := interfaces.WebhookSignatureHeaders{
		AuthAlgo:         c.GetHeader("Paypal-Auth-Algo"),
		CertURL:          c.GetHeader("Paypal-Cert-Url"),
		TransmissionID:   c.GetHeader("Paypal-Transmission-Id"),
		TransmissionSig:  c.GetHeader("Paypal-Transmission-Sig"),
		TransmissionTime: c.GetHeader("Paypal-Transmission-Time"),
	}

	// Ack first; verification happens post-ack and failures are dropped.
	c.JSON(http.StatusOK, gin.H{"status": "received"})

	if len(body) == 0 {
		return
	}

	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		h.processPayPal(body, headers)
	}()
}

func (h *WebhookHandler) processPayPal(body []byte, headers interfaces.WebhookSignatureHeaders) {
	ctx, cancel := context.WithTimeout(context.Background(), h.processTimeout)
	defer cancel()

	if h.verifier == nil || h.normalizer == nil {
		log.Printf("[webhook][handler] paypal not configured, dropping delivery")
		return
	}

	verified, err := h.verifier.VerifyWebhookSignature(ctx, headers, body)
	if err != nil {
		log.Printf("[webhook][handler] paypal signature verification errored err=%v", err)
		return
	}
	if !verified {
		// Hard reject: an unverified payload is never processed, regardless
		// of its content.
		log.Printf("[webhook][handler] paypal SIGNATURE INVALID, dropping delivery transmission_id=%s", headers.TransmissionID)
		return
	}

	var event request.PayPalWebhookRequest
	if err := json.Unmarshal(body, &event); err != nil {
		log.Printf("[webhook][handler] paypal event unmarshal failed err=%v", err)
		return
	}

	// Only the settled-money event is acted on. CHECKOUT.ORDER.APPROVED is
	// deliberately ignored: capturing from the webhook would race the
	// client-driven capture path.
	if event.EventType != paypalEventCaptureCompleted {
		log.Printf("[webhook][handler] paypal event ignored event_id=%s type=%s", event.ID, event.EventType)
		return
	}

	orderID := event.RelatedOrderID()
	record, err := h.normalizer.NormalizeCaptureResource(event.Resource, orderID)
	if err == nil && record.UserID != "" {
		if err := h.webhooks.ProcessPaymentRecord(ctx, entities.ProviderPayPal, record); err != nil {
			log.Printf("[webhook][handler] paypal processing failed payment_id=%s err=%v", record.PaymentID, err)
		}
		return
	}

	// Attribution missing from the embedded resource; fall back to fetching
	// the order, which carries the custom reference.
	if orderID == "" {
		log.Printf("[webhook][handler] paypal event has no order correlation, dropping event_id=%s", event.ID)
		return
	}
	log.Printf("[webhook][handler] paypal resource incomplete, re-fetching order order_id=%s", orderID)
	if err := h.webhooks.ProcessPaymentEvent(ctx, entities.ProviderPayPal, orderID); err != nil {
		log.Printf("[webhook][handler] paypal processing failed order_id=%s err=%v", orderID, err)
	}
}
