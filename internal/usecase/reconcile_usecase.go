package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"greetpage/internal/domain/entities"
	"greetpage/internal/usecase/interfaces"
)

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadyReconciled is the expected idempotent no-op: the payment was
	// already applied by an earlier delivery or by the other entry point
	// (webhook vs. capture). Callers must render it as success.
	ErrAlreadyReconciled = errors.New("payment already reconciled")
)

// IReconcileUseCase converts "the provider says this payment is final" into an
// entitlement grant, exactly once per real-world payment.
//
// This is intentionally the only mutation path for PRO grants. Both the
// webhook flow and the synchronous capture-confirmation flow call it, so the
// idempotency check matches across entry points.

type IReconcileUseCase interface {
	Reconcile(ctx context.Context, userID string, record entities.PaymentRecord) (entities.UserEntitlement, error)
}

type ReconcileUseCase struct {
	repo interfaces.IEntitlementRepository
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(repo interfaces.IEntitlementRepository) *ReconcileUseCase {
	return &ReconcileUseCase{repo: repo}
}

// Reconcile resolves the user, checks the payment has not been applied yet and
// performs the atomic append+activate. A duplicate delivery surfaces as
// ErrAlreadyReconciled together with the user's current entitlement.
//
// Persistence failures return the raw error; the operation is safe to retry
// (provider webhook redelivery, client re-confirming capture) because the
// conditional append closes the window once a write lands.
func (u *ReconcileUseCase) Reconcile(ctx context.Context, userID string, record entities.PaymentRecord) (entities.UserEntitlement, error) {
	userID = strings.TrimSpace(userID)
	log.Printf("[reconcile][usecase] start user_id=%s provider=%s payment_id=%s order_id=%s", userID, record.Provider, record.PaymentID, record.ProviderOrderID)
	if userID == "" {
		log.Printf("[reconcile][usecase] orphaned payment: empty user attribution payment_id=%s", record.PaymentID)
		return entities.UserEntitlement{}, ErrUserNotFound
	}
	if record.PaymentID == "" && record.ProviderOrderID == "" {
		return entities.UserEntitlement{}, errors.New("payment record has no identifying ids")
	}

	user, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		log.Printf("[reconcile][usecase] user lookup failed user_id=%s err=%v", userID, err)
		return entities.UserEntitlement{}, err
	}
	if user.ID == "" {
		// Money collected, no entitlement target. Operational alert; never
		// auto-retried.
		log.Printf("[reconcile][usecase] ORPHANED PAYMENT user_id=%s provider=%s payment_id=%s", userID, record.Provider, record.PaymentID)
		return entities.UserEntitlement{}, ErrUserNotFound
	}

	if user.HasPayment(record) {
		log.Printf("[reconcile][usecase] already reconciled (pre-check) user_id=%s payment_id=%s", userID, record.PaymentID)
		return user, ErrAlreadyReconciled
	}

	// PRO is perpetual: the grant never carries an expiry.
	record.Provider = normalizeProvider(record.Provider)
	updated, err := u.repo.AppendPaymentAndActivate(ctx, userID, record)
	if err != nil {
		if errors.Is(err, interfaces.ErrPaymentAlreadyRecorded) {
			// Lost the race to a concurrent reconcile for the same payment.
			log.Printf("[reconcile][usecase] already reconciled (conditional write) user_id=%s payment_id=%s", userID, record.PaymentID)
			return user, ErrAlreadyReconciled
		}
		log.Printf("[reconcile][usecase] persistence failed user_id=%s payment_id=%s err=%v", userID, record.PaymentID, err)
		return entities.UserEntitlement{}, err
	}

	log.Printf("[reconcile][usecase] PRO GRANTED user_id=%s provider=%s payment_id=%s amount=%.2f %s", userID, record.Provider, record.PaymentID, record.Amount, record.Currency)
	return updated, nil
}

func normalizeProvider(p entities.PaymentProvider) entities.PaymentProvider {
	switch p {
	case entities.ProviderMercadoPago, entities.ProviderPayPal, entities.ProviderSimulation:
		return p
	}
	return entities.ProviderSimulation
}
