package interfaces

import (
	"context"

	"greetpage/internal/domain/entities"
)

// WebhookSignatureHeaders are the transmission headers PayPal attaches to
// every webhook delivery; they feed the server-to-server verification call.
type WebhookSignatureHeaders struct {
	AuthAlgo         string
	CertURL          string
	TransmissionID   string
	TransmissionSig  string
	TransmissionTime string
}

// IWebhookVerifier authenticates inbound webhook deliveries. A verification
// failure is a hard reject: the payload is logged and dropped, never
// processed.

type IWebhookVerifier interface {
	VerifyWebhookSignature(ctx context.Context, headers WebhookSignatureHeaders, event []byte) (bool, error)
}

// ICaptureEventNormalizer converts the capture resource embedded in a
// verified webhook delivery into a PaymentRecord, given the related order id
// extracted from the event.

type ICaptureEventNormalizer interface {
	NormalizeCaptureResource(raw []byte, orderID string) (entities.PaymentRecord, error)
}
