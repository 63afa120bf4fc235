package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"greetpage/internal/domain/entities"
	"greetpage/internal/usecase/interfaces"
)

const (
	defaultFetchAttempts = 5
	defaultFetchDelay    = 2 * time.Second
)

// IWebhookUseCase is the post-ack half of webhook processing. The HTTP layer
// has already answered the provider; everything here is fire-and-forget from
// the provider's perspective and failures are logged, not surfaced.

type IWebhookUseCase interface {
	// ProcessPaymentEvent re-fetches authoritative payment state by
	// provider-native id and reconciles when final. The embedded webhook
	// status is never trusted on this path.
	ProcessPaymentEvent(ctx context.Context, provider entities.PaymentProvider, id string) error

	// ProcessPaymentRecord reconciles a record already normalized from a
	// verified webhook resource (the opportunistic PayPal path).
	ProcessPaymentRecord(ctx context.Context, provider entities.PaymentProvider, record entities.PaymentRecord) error
}

type WebhookUseCase struct {
	providers  map[entities.PaymentProvider]interfaces.IPaymentProvider
	reconciler IReconcileUseCase

	fetchAttempts int
	fetchDelay    time.Duration
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(providers map[entities.PaymentProvider]interfaces.IPaymentProvider, reconciler IReconcileUseCase) *WebhookUseCase {
	return &WebhookUseCase{
		providers:     providers,
		reconciler:    reconciler,
		fetchAttempts: defaultFetchAttempts,
		fetchDelay:    defaultFetchDelay,
	}
}

func (u *WebhookUseCase) ProcessPaymentEvent(ctx context.Context, provider entities.PaymentProvider, id string) error {
	log.Printf("[webhook][usecase] process-event start provider=%s id=%s", provider, id)
	p, ok := u.providers[provider]
	if !ok || p == nil {
		return ErrUnknownProvider
	}

	record, err := u.fetchWithRetry(ctx, p, id)
	if err != nil {
		log.Printf("[webhook][usecase] fetch failed provider=%s id=%s err=%v", provider, id, err)
		return err
	}

	if !p.IsFinalSuccess(record) {
		// Not an error: the provider will notify again when the payment
		// resolves, or the client-driven capture will land first.
		log.Printf("[webhook][usecase] payment not final provider=%s id=%s status=%s detail=%s", provider, id, record.Status, record.StatusDetail)
		return nil
	}

	return u.reconcile(ctx, provider, record)
}

func (u *WebhookUseCase) ProcessPaymentRecord(ctx context.Context, provider entities.PaymentProvider, record entities.PaymentRecord) error {
	log.Printf("[webhook][usecase] process-record start provider=%s payment_id=%s", provider, record.PaymentID)
	p, ok := u.providers[provider]
	if !ok || p == nil {
		return ErrUnknownProvider
	}
	if !p.IsFinalSuccess(record) {
		log.Printf("[webhook][usecase] record not final provider=%s payment_id=%s status=%s detail=%s", provider, record.PaymentID, record.Status, record.StatusDetail)
		return nil
	}
	return u.reconcile(ctx, provider, record)
}

func (u *WebhookUseCase) reconcile(ctx context.Context, provider entities.PaymentProvider, record entities.PaymentRecord) error {
	_, err := u.reconciler.Reconcile(ctx, record.UserID, record)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrAlreadyReconciled):
		// Duplicate delivery, or the synchronous capture path won the race.
		log.Printf("[webhook][usecase] already reconciled provider=%s payment_id=%s", provider, record.PaymentID)
		return nil
	default:
		return err
	}
}

// fetchWithRetry covers provider eventual consistency: right after a webhook
// fires the payment may not be queryable for a second or two. Only "not found
// yet" is retried; a found-but-not-final record is returned immediately.
func (u *WebhookUseCase) fetchWithRetry(ctx context.Context, p interfaces.IPaymentProvider, id string) (entities.PaymentRecord, error) {
	attempts := u.fetchAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		record, err := p.FetchPayment(ctx, id)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, interfaces.ErrPaymentNotFound) {
			return entities.PaymentRecord{}, err
		}
		lastErr = err
		if i == attempts-1 {
			break
		}
		log.Printf("[webhook][usecase] payment not visible yet, retrying id=%s attempt=%d", id, i+1)
		select {
		case <-ctx.Done():
			return entities.PaymentRecord{}, ctx.Err()
		case <-time.After(u.fetchDelay):
		}
	}
	return entities.PaymentRecord{}, lastErr
}
