package interfaces

import (
	"context"
	"errors"

	"greetpage/internal/domain/entities"
)

// ErrPaymentAlreadyRecorded is returned by AppendPaymentAndActivate when the
// conditional write fails because one of the payment's identifying ids was
// already applied to the user. It is the write-side idempotency signal.
var ErrPaymentAlreadyRecorded = errors.New("payment already recorded for user")

// IEntitlementRepository abstracts DynamoDB persistence for UserEntitlement.
//
// AppendPaymentAndActivate must be atomic: the payment append, the id-set
// update and the is_pro flip happen in a single conditional write or not at
// all. Two concurrent calls for the same payment must not both succeed.

type IEntitlementRepository interface {
	Create(ctx context.Context, u entities.UserEntitlement) (entities.UserEntitlement, error)
	GetByID(ctx context.Context, id string) (entities.UserEntitlement, error)
	AppendPaymentAndActivate(ctx context.Context, userID string, p entities.PaymentRecord) (entities.UserEntitlement, error)
}
