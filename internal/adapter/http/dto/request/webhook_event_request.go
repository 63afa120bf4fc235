package request

import (
	"encoding/json"
	"strings"
)

// MercadoPagoWebhookRequest is the new-style webhook body:
//
//	{"action":"payment.updated","type":"payment","data":{"id":"123"}}
//
// Mercado Pago also still delivers the legacy IPN form as query parameters
// (?topic=payment&id=123) with an empty or unrelated body; both shapes
// normalize into the same internal event.
type MercadoPagoWebhookRequest struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

// MercadoPagoEvent is the normalized shape the ingress dispatches on.
type MercadoPagoEvent struct {
	PaymentID string
}

// NormalizeMercadoPagoEvent folds both delivery formats into a single event.
// Returns ok=false for anything not actionable: non-payment topics and the
// payment.created action, which only signals the payment exists and has not
// resolved to a final state yet.
func NormalizeMercadoPagoEvent(body []byte, topic, queryID string) (MercadoPagoEvent, bool) {
	var payload MercadoPagoWebhookRequest
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		isPayment := payload.Type == "payment" || strings.HasPrefix(payload.Action, "payment.")
		if isPayment && payload.Data.ID.String() != "" {
			if payload.Action == "payment.created" {
				return MercadoPagoEvent{}, false
			}
			return MercadoPagoEvent{PaymentID: payload.Data.ID.String()}, true
		}
	}

	// Legacy IPN query-string format.
	if strings.EqualFold(strings.TrimSpace(topic), "payment") && strings.TrimSpace(queryID) != "" {
		return MercadoPagoEvent{PaymentID: strings.TrimSpace(queryID)}, true
	}

	return MercadoPagoEvent{}, false
}

// PayPalWebhookRequest is the envelope of a PayPal webhook delivery. Resource
// is kept raw: its shape depends on the event type and only the capture
// adapter knows how to read it.
type PayPalWebhookRequest struct {
	ID        string          `json:"id"`
	EventType string          `json:"event_type"`
	Resource  json.RawMessage `json:"resource"`
}

// resource fragment carrying the order correlation for capture events.
type paypalCaptureResourceRefs struct {
	SupplementaryData struct {
		RelatedIDs struct {
			OrderID string `json:"order_id"`
		} `json:"related_ids"`
	} `json:"supplementary_data"`
}

// RelatedOrderID extracts the order id a capture resource points back to.
// Empty when the provider omitted the supplementary data.
func (r PayPalWebhookRequest) RelatedOrderID() string {
	var refs paypalCaptureResourceRefs
	if len(r.Resource) == 0 || json.Unmarshal(r.Resource, &refs) != nil {
		return ""
	}
	return refs.SupplementaryData.RelatedIDs.OrderID
}
