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

func approvedRecord(paymentID, orderID, userID string) entities.PaymentRecord {
	return entities.PaymentRecord{
		PaymentID:       paymentID,
		ProviderOrderID: orderID,
		Provider:        entities.ProviderMercadoPago,
		Amount:          4.99,
		Currency:        "ARS",
		Status:          "approved",
		StatusDetail:    "accredited",
		UserID:          userID,
		Date:            time.Now().UTC(),
	}
}

func TestReconcileUseCase_Validations(t *testing.T) {
	t.Run("empty user id is an orphaned payment", func(t *testing.T) {
		uc := NewReconcileUseCase(nil)
		_, err := uc.Reconcile(context.Background(), " ", approvedRecord("pay-1", "", ""))
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("record without identifying ids", func(t *testing.T) {
		uc := NewReconcileUseCase(nil)
		_, err := uc.Reconcile(context.Background(), "user-1", entities.PaymentRecord{Provider: entities.ProviderPayPal})
		if err == nil {
			t.Fatal("expected error for record without ids")
		}
	})
}

func TestReconcileUseCase_UserResolution(t *testing.T) {
	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEntitlementRepository(ctrl)
		uc := NewReconcileUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.UserEntitlement{}, errors.New("db"))

		_, err := uc.Reconcile(context.Background(), "user-1", approvedRecord("pay-1", "", "user-1"))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEntitlementRepository(ctrl)
		uc := NewReconcileUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.UserEntitlement{}, nil)

		_, err := uc.Reconcile(context.Background(), "user-1", approvedRecord("pay-1", "", "user-1"))
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestReconcileUseCase_FreshGrant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEntitlementRepository(ctrl)
	uc := NewReconcileUseCase(repo)

	record := approvedRecord("pay-1", "order-1", "user-1")

	repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.UserEntitlement{ID: "user-1"}, nil)
	repo.EXPECT().AppendPaymentAndActivate(gomock.Any(), "user-1", record).
		Return(entities.UserEntitlement{ID: "user-1", IsPro: true, Payments: []entities.PaymentRecord{record}}, nil)

	user, err := uc.Reconcile(context.Background(), "user-1", record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !user.IsPro {
		t.Fatal("expected is_pro after grant")
	}
	if len(user.Payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(user.Payments))
	}
}

func TestReconcileUseCase_Idempotency(t *testing.T) {
	t.Run("duplicate delivery is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEntitlementRepository(ctrl)
		uc := NewReconcileUseCase(repo)

		record := approvedRecord("pay-1", "", "user-1")
		existing := entities.UserEntitlement{ID: "user-1", IsPro: true, Payments: []entities.PaymentRecord{record}}

		// No AppendPaymentAndActivate expectation: the pre-check must stop it.
		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(existing, nil)

		user, err := uc.Reconcile(context.Background(), "user-1", record)
		if !errors.Is(err, ErrAlreadyReconciled) {
			t.Fatalf("expected ErrAlreadyReconciled, got %v", err)
		}
		if len(user.Payments) != 1 {
			t.Fatalf("expected payments unchanged, got %d", len(user.Payments))
		}
	})

	t.Run("webhook and capture records match across id fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEntitlementRepository(ctrl)
		uc := NewReconcileUseCase(repo)

		// Capture path recorded the capture id plus the order id; the webhook
		// only learned the order id and a different view of the capture.
		captured := entities.PaymentRecord{PaymentID: "cap-1", ProviderOrderID: "order-9", Provider: entities.ProviderPayPal, Status: "COMPLETED", StatusDetail: "COMPLETED"}
		fromWebhook := entities.PaymentRecord{PaymentID: "order-9", Provider: entities.ProviderPayPal, Status: "COMPLETED", StatusDetail: "COMPLETED", UserID: "user-1"}

		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.UserEntitlement{ID: "user-1", IsPro: true, Payments: []entities.PaymentRecord{captured}}, nil)

		_, err := uc.Reconcile(context.Background(), "user-1", fromWebhook)
		if !errors.Is(err, ErrAlreadyReconciled) {
			t.Fatalf("expected ErrAlreadyReconciled, got %v", err)
		}
	})

	t.Run("conditional write failure maps to already reconciled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEntitlementRepository(ctrl)
		uc := NewReconcileUseCase(repo)

		record := approvedRecord("pay-1", "", "user-1")

		// Concurrent reconcile won the race between our read and our write.
		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.UserEntitlement{ID: "user-1"}, nil)
		repo.EXPECT().AppendPaymentAndActivate(gomock.Any(), "user-1", record).
			Return(entities.UserEntitlement{}, interfaces.ErrPaymentAlreadyRecorded)

		_, err := uc.Reconcile(context.Background(), "user-1", record)
		if !errors.Is(err, ErrAlreadyReconciled) {
			t.Fatalf("expected ErrAlreadyReconciled, got %v", err)
		}
	})
}

func TestReconcileUseCase_PersistenceFailureIsRetriable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEntitlementRepository(ctrl)
	uc := NewReconcileUseCase(repo)

	record := approvedRecord("pay-1", "", "user-1")

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.UserEntitlement{ID: "user-1"}, nil),
		repo.EXPECT().AppendPaymentAndActivate(gomock.Any(), "user-1", record).Return(entities.UserEntitlement{}, errors.New("throttled")),
		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.UserEntitlement{ID: "user-1"}, nil),
		repo.EXPECT().AppendPaymentAndActivate(gomock.Any(), "user-1", record).
			Return(entities.UserEntitlement{ID: "user-1", IsPro: true, Payments: []entities.PaymentRecord{record}}, nil),
	)

	if _, err := uc.Reconcile(context.Background(), "user-1", record); err == nil {
		t.Fatal("expected persistence error on first attempt")
	}
	user, err := uc.Reconcile(context.Background(), "user-1", record)
	if err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	if !user.IsPro || len(user.Payments) != 1 {
		t.Fatalf("expected grant applied exactly once, got pro=%t payments=%d", user.IsPro, len(user.Payments))
	}
}
