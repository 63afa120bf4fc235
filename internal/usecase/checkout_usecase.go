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
	ErrUnknownProvider     = errors.New("unknown payment provider")
	ErrAlreadyPro          = errors.New("user already has pro")
	ErrForbidden           = errors.New("payment not attributed to caller")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrInvalidUserID       = errors.New("invalid user id")
)

// ICheckoutUseCase exposes the client-driven half of the payment flow:
// intent creation, synchronous capture confirmation and status queries.

type ICheckoutUseCase interface {
	CreateIntent(ctx context.Context, userID string, provider entities.PaymentProvider) (entities.CheckoutIntent, error)
	ConfirmCapture(ctx context.Context, callerID string, provider entities.PaymentProvider, providerOrderID string) (entities.UserEntitlement, entities.PaymentRecord, error)
	PaymentStatus(ctx context.Context, callerID string, provider entities.PaymentProvider, paymentID string) (entities.PaymentRecord, bool, error)
	History(ctx context.Context, callerID string) (entities.UserEntitlement, error)
}

type CheckoutUseCase struct {
	repo       interfaces.IEntitlementRepository
	providers  map[entities.PaymentProvider]interfaces.IPaymentProvider
	reconciler IReconcileUseCase
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(repo interfaces.IEntitlementRepository, providers map[entities.PaymentProvider]interfaces.IPaymentProvider, reconciler IReconcileUseCase) *CheckoutUseCase {
	return &CheckoutUseCase{repo: repo, providers: providers, reconciler: reconciler}
}

func (u *CheckoutUseCase) provider(name entities.PaymentProvider) (interfaces.IPaymentProvider, error) {
	p, ok := u.providers[name]
	if !ok || p == nil {
		return nil, ErrUnknownProvider
	}
	return p, nil
}

// CreateIntent starts a PRO checkout with the chosen provider. Users that are
// already PRO are refused before any provider call is made.
func (u *CheckoutUseCase) CreateIntent(ctx context.Context, userID string, provider entities.PaymentProvider) (entities.CheckoutIntent, error) {
	userID = strings.TrimSpace(userID)
	log.Printf("[checkout][usecase] create-intent start user_id=%s provider=%s", userID, provider)
	if userID == "" {
		return entities.CheckoutIntent{}, ErrInvalidUserID
	}

	p, err := u.provider(provider)
	if err != nil {
		return entities.CheckoutIntent{}, err
	}

	user, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		log.Printf("[checkout][usecase] user lookup failed user_id=%s err=%v", userID, err)
		return entities.CheckoutIntent{}, err
	}
	if user.ID == "" {
		return entities.CheckoutIntent{}, ErrUserNotFound
	}
	if user.IsPro {
		log.Printf("[checkout][usecase] user already pro user_id=%s", userID)
		return entities.CheckoutIntent{}, ErrAlreadyPro
	}

	intent, err := p.CreateIntent(ctx, user)
	if err != nil {
		log.Printf("[checkout][usecase] create-intent failed user_id=%s provider=%s err=%v", userID, provider, err)
		return entities.CheckoutIntent{}, err
	}
	log.Printf("[checkout][usecase] create-intent success user_id=%s provider=%s order_id=%s", userID, provider, intent.ProviderOrderID)
	return intent, nil
}

// ConfirmCapture is the synchronous return-from-checkout path: capture the
// order at the provider, verify finality and reconcile. A webhook for the same
// payment may have landed first; reconcile recognizes that and the call still
// reports success.
func (u *CheckoutUseCase) ConfirmCapture(ctx context.Context, callerID string, provider entities.PaymentProvider, providerOrderID string) (entities.UserEntitlement, entities.PaymentRecord, error) {
	callerID = strings.TrimSpace(callerID)
	providerOrderID = strings.TrimSpace(providerOrderID)
	log.Printf("[checkout][usecase] capture start caller_id=%s provider=%s order_id=%s", callerID, provider, providerOrderID)
	if callerID == "" || providerOrderID == "" {
		return entities.UserEntitlement{}, entities.PaymentRecord{}, ErrInvalidUserID
	}

	p, err := u.provider(provider)
	if err != nil {
		return entities.UserEntitlement{}, entities.PaymentRecord{}, err
	}

	record, err := p.Capture(ctx, providerOrderID)
	if err != nil {
		log.Printf("[checkout][usecase] capture failed caller_id=%s order_id=%s err=%v", callerID, providerOrderID, err)
		return entities.UserEntitlement{}, entities.PaymentRecord{}, err
	}

	// Attribution: the provider echoes the user id tagged at intent creation.
	// A mismatch means the caller is trying to confirm someone else's order.
	if record.UserID == "" || record.UserID != callerID {
		log.Printf("[checkout][usecase] attribution mismatch caller_id=%s attributed=%s order_id=%s", callerID, record.UserID, providerOrderID)
		return entities.UserEntitlement{}, entities.PaymentRecord{}, ErrForbidden
	}

	if !p.IsFinalSuccess(record) {
		log.Printf("[checkout][usecase] capture not final caller_id=%s order_id=%s status=%s detail=%s", callerID, providerOrderID, record.Status, record.StatusDetail)
		return entities.UserEntitlement{}, record, ErrPaymentNotCompleted
	}

	user, err := u.reconciler.Reconcile(ctx, callerID, record)
	if err != nil && !errors.Is(err, ErrAlreadyReconciled) {
		return entities.UserEntitlement{}, record, err
	}
	log.Printf("[checkout][usecase] capture success caller_id=%s order_id=%s payment_id=%s already_reconciled=%t", callerID, providerOrderID, record.PaymentID, errors.Is(err, ErrAlreadyReconciled))
	return user, record, nil
}

// PaymentStatus is a read-only provider status query plus the final-success
// verdict. Callers may only look at payments attributed to themselves.
func (u *CheckoutUseCase) PaymentStatus(ctx context.Context, callerID string, provider entities.PaymentProvider, paymentID string) (entities.PaymentRecord, bool, error) {
	callerID = strings.TrimSpace(callerID)
	paymentID = strings.TrimSpace(paymentID)
	if callerID == "" || paymentID == "" {
		return entities.PaymentRecord{}, false, ErrInvalidUserID
	}

	p, err := u.provider(provider)
	if err != nil {
		return entities.PaymentRecord{}, false, err
	}

	record, err := p.FetchPayment(ctx, paymentID)
	if err != nil {
		return entities.PaymentRecord{}, false, err
	}
	if record.UserID == "" || record.UserID != callerID {
		log.Printf("[checkout][usecase] status attribution mismatch caller_id=%s attributed=%s payment_id=%s", callerID, record.UserID, paymentID)
		return entities.PaymentRecord{}, false, ErrForbidden
	}
	return record, p.IsFinalSuccess(record), nil
}

// History returns the caller's entitlement record with its payment trail.
func (u *CheckoutUseCase) History(ctx context.Context, callerID string) (entities.UserEntitlement, error) {
	callerID = strings.TrimSpace(callerID)
	if callerID == "" {
		return entities.UserEntitlement{}, ErrInvalidUserID
	}
	user, err := u.repo.GetByID(ctx, callerID)
	if err != nil {
		return entities.UserEntitlement{}, err
	}
	if user.ID == "" {
		return entities.UserEntitlement{}, ErrUserNotFound
	}
	return user, nil
}
