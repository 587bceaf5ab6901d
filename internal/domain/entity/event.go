// Package entity contains the core business objects of the project.
package entity

import "time"

// BillingEventType names a committed balance or coupon change.
type BillingEventType string

const (
	// BillingEventCharged is emitted after a batch charge is persisted.
	BillingEventCharged BillingEventType = "charged"
	// BillingEventRefunded is emitted after a compensating refund is persisted.
	BillingEventRefunded BillingEventType = "refunded"
	// BillingEventCouponRedeemed is emitted after a coupon credit is persisted.
	BillingEventCouponRedeemed BillingEventType = "coupon_redeemed"
	// BillingEventCouponMinted is emitted after a coupon is created.
	BillingEventCouponMinted BillingEventType = "coupon_minted"
)

// String returns the string representation of the BillingEventType.
func (t BillingEventType) String() string {
	return string(t)
}

// BillingEvent is the audit record published for every committed change.
type BillingEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       BillingEventType `json:"type"`
	AccountID  AccountID        `json:"account_id,omitempty"`
	CouponCode CouponCode       `json:"coupon_code,omitempty"`
	Amount     Amount           `json:"amount"`
	Balance    Amount           `json:"balance"`
	ItemCount  int              `json:"item_count,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
