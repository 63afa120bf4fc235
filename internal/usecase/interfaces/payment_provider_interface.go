package interfaces

import (
	"context"
	"errors"

	"greetpage/internal/domain/entities"
)

var (
	// ErrProviderUnavailable covers network and auth failures talking to the
	// provider's API. Missing credentials fail earlier, at construction.
	ErrProviderUnavailable = errors.New("payment provider unavailable")

	// ErrPaymentNotFound means the provider cannot see the payment (yet).
	// Shortly after a webhook fires the payment may not be queryable for a
	// couple of seconds; callers retry this error, and only this error.
	ErrPaymentNotFound = errors.New("payment not found at provider")

	// ErrCaptureConflict means the order is not in a capturable state, e.g.
	// still CREATED because the payer never approved it.
	ErrCaptureConflict = errors.New("order not in a capturable state")
)

// IPaymentProvider isolates all provider-specific protocol, auth and schema
// details. Each adapter converts raw provider JSON into PaymentRecord in a
// single internal place; nothing outside the adapter sees provider shapes.
//
// FetchPayment and Capture return records that still carry the provider's
// native status strings; IsFinalSuccess is the only authority on whether
// money has definitively moved.

type IPaymentProvider interface {
	Name() entities.PaymentProvider

	// CreateIntent builds a fixed-price single-item PRO purchase, tagging the
	// order with the user id in the provider's custom-reference field so
	// later callbacks can be attributed.
	CreateIntent(ctx context.Context, user entities.UserEntitlement) (entities.CheckoutIntent, error)

	// FetchPayment is a read-only status query by provider-native id
	// (payment id for MercadoPago, order id for PayPal).
	FetchPayment(ctx context.Context, id string) (entities.PaymentRecord, error)

	// Capture finalizes collection for providers with an explicit capture
	// step. Capturing an already-captured order returns the existing details
	// as success, never an error.
	Capture(ctx context.Context, providerOrderID string) (entities.PaymentRecord, error)

	// IsFinalSuccess distinguishes "funds settled" from every other state.
	IsFinalSuccess(p entities.PaymentRecord) bool
}
