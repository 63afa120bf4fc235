package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"greetpage/internal/domain/entities"
	"greetpage/internal/usecase/interfaces"
	mock_interfaces "greetpage/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newWebhookUseCaseForTest(provider interfaces.IPaymentProvider, rec IReconcileUseCase) *WebhookUseCase {
	u := NewWebhookUseCase(map[entities.PaymentProvider]interfaces.IPaymentProvider{
		entities.ProviderMercadoPago: provider,
	}, rec)
	u.fetchAttempts = 3
	u.fetchDelay = time.Millisecond
	return u
}

func TestWebhookUseCase_ProcessPaymentEvent(t *testing.T) {
	finalRecord := entities.PaymentRecord{
		PaymentID:    "123",
		Provider:     entities.ProviderMercadoPago,
		Status:       "approved",
		StatusDetail: "accredited",
		UserID:       "user-1",
	}

	t.Run("unknown provider", func(t *testing.T) {
		u := NewWebhookUseCase(nil, nil)
		err := u.ProcessPaymentEvent(context.Background(), entities.ProviderPayPal, "123")
		if !errors.Is(err, ErrUnknownProvider) {
			t.Fatalf("expected ErrUnknownProvider, got %v", err)
		}
	})

	t.Run("final payment reconciles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		rec := &stubReconciler{user: entities.UserEntitlement{ID: "user-1", IsPro: true}}
		u := newWebhookUseCaseForTest(provider, rec)

		provider.EXPECT().FetchPayment(gomock.Any(), "123").Return(finalRecord, nil)
		provider.EXPECT().IsFinalSuccess(finalRecord).Return(true)

		if err := u.ProcessPaymentEvent(context.Background(), entities.ProviderMercadoPago, "123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.calls != 1 || rec.lastID != "user-1" {
			t.Fatalf("expected one reconcile for user-1, calls=%d last=%s", rec.calls, rec.lastID)
		}
	})

	t.Run("non-final payment is dropped without error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		rec := &stubReconciler{}
		u := newWebhookUseCaseForTest(provider, rec)

		pending := finalRecord
		pending.Status = "in_process"
		pending.StatusDetail = "pending_contingency"
		provider.EXPECT().FetchPayment(gomock.Any(), "123").Return(pending, nil)
		provider.EXPECT().IsFinalSuccess(pending).Return(false)

		if err := u.ProcessPaymentEvent(context.Background(), entities.ProviderMercadoPago, "123"); err != nil {
			t.Fatalf("non-final must not be an error, got %v", err)
		}
		if rec.calls != 0 {
			t.Fatal("reconcile must not run for a non-final payment")
		}
	})

	t.Run("retries while the payment is not visible yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		rec := &stubReconciler{user: entities.UserEntitlement{ID: "user-1", IsPro: true}}
		u := newWebhookUseCaseForTest(provider, rec)

		gomock.InOrder(
			provider.EXPECT().FetchPayment(gomock.Any(), "123").Return(entities.PaymentRecord{}, interfaces.ErrPaymentNotFound),
			provider.EXPECT().FetchPayment(gomock.Any(), "123").Return(entities.PaymentRecord{}, interfaces.ErrPaymentNotFound),
			provider.EXPECT().FetchPayment(gomock.Any(), "123").Return(finalRecord, nil),
		)
		provider.EXPECT().IsFinalSuccess(finalRecord).Return(true)

		if err := u.ProcessPaymentEvent(context.Background(), entities.ProviderMercadoPago, "123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.calls != 1 {
			t.Fatalf("expected one reconcile, got %d", rec.calls)
		}
	})

	t.Run("gives up after the attempt budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		rec := &stubReconciler{}
		u := newWebhookUseCaseForTest(provider, rec)

		provider.EXPECT().FetchPayment(gomock.Any(), "123").
			Return(entities.PaymentRecord{}, interfaces.ErrPaymentNotFound).Times(3)

		err := u.ProcessPaymentEvent(context.Background(), entities.ProviderMercadoPago, "123")
		if !errors.Is(err, interfaces.ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
		if rec.calls != 0 {
			t.Fatal("reconcile must not run when the payment never appears")
		}
	})

	t.Run("other fetch errors are not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		u := newWebhookUseCaseForTest(provider, &stubReconciler{})

		provider.EXPECT().FetchPayment(gomock.Any(), "123").
			Return(entities.PaymentRecord{}, interfaces.ErrProviderUnavailable).Times(1)

		err := u.ProcessPaymentEvent(context.Background(), entities.ProviderMercadoPago, "123")
		if !errors.Is(err, interfaces.ErrProviderUnavailable) {
			t.Fatalf("expected ErrProviderUnavailable, got %v", err)
		}
	})

	t.Run("canceled context stops the retry loop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		u := newWebhookUseCaseForTest(provider, &stubReconciler{})
		u.fetchDelay = time.Second

		ctx, cancel := context.WithCancel(context.Background())
		provider.EXPECT().FetchPayment(gomock.Any(), "123").
			DoAndReturn(func(context.Context, string) (entities.PaymentRecord, error) {
				cancel()
				return entities.PaymentRecord{}, interfaces.ErrPaymentNotFound
			})

		err := u.ProcessPaymentEvent(ctx, entities.ProviderMercadoPago, "123")
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("already reconciled is success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		rec := &stubReconciler{err: ErrAlreadyReconciled}
		u := newWebhookUseCaseForTest(provider, rec)

		provider.EXPECT().FetchPayment(gomock.Any(), "123").Return(finalRecord, nil)
		provider.EXPECT().IsFinalSuccess(finalRecord).Return(true)

		if err := u.ProcessPaymentEvent(context.Background(), entities.ProviderMercadoPago, "123"); err != nil {
			t.Fatalf("duplicate delivery must not be an error, got %v", err)
		}
	})
}

func TestWebhookUseCase_ProcessPaymentRecord(t *testing.T) {
	record := entities.PaymentRecord{
		PaymentID:       "cap-1",
		ProviderOrderID: "order-1",
		Provider:        entities.ProviderMercadoPago,
		Status:          "COMPLETED",
		StatusDetail:    "COMPLETED",
		UserID:          "user-1",
	}

	t.Run("final record reconciles without a fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		rec := &stubReconciler{user: entities.UserEntitlement{ID: "user-1", IsPro: true}}
		u := newWebhookUseCaseForTest(provider, rec)

		provider.EXPECT().IsFinalSuccess(record).Return(true)

		if err := u.ProcessPaymentRecord(context.Background(), entities.ProviderMercadoPago, record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.calls != 1 {
			t.Fatalf("expected one reconcile, got %d", rec.calls)
		}
	})

	t.Run("non-final record is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		rec := &stubReconciler{}
		u := newWebhookUseCaseForTest(provider, rec)

		pending := record
		pending.StatusDetail = "PENDING"
		provider.EXPECT().IsFinalSuccess(pending).Return(false)

		if err := u.ProcessPaymentRecord(context.Background(), entities.ProviderMercadoPago, pending); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.calls != 0 {
			t.Fatal("reconcile must not run for a non-final record")
		}
	})
}
