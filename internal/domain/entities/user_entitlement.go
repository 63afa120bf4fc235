package entities

import "time"

// UserEntitlement is the slice of the user record owned by the payment core.
//
// Storage model (DynamoDB):
//   - PK: id
//   - payments: append-only list of PaymentRecord
//   - payment_ids: string set mirroring every identifying id already applied;
//     the conditional-append uniqueness guard (see repository).
//
// IsPro transitions false -> true exactly once per user in the normal flow;
// there is no downgrade path. ProExpiresAt is always nil today: the product
// sells a single perpetual PRO tier.
type UserEntitlement struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`

	IsPro        bool       `json:"is_pro"`
	ProExpiresAt *time.Time `json:"pro_expires_at,omitempty"`

	Payments []PaymentRecord `json:"payments,omitempty"`
}

// HasPayment reports whether any already-recorded payment matches the
// identifying ids of p. This is the read-side half of the idempotency check;
// the write-side half is the repository's conditional append.
func (u UserEntitlement) HasPayment(p PaymentRecord) bool {
	for _, existing := range u.Payments {
		if existing.Matches(p) {
			return true
		}
	}
	return false
}
