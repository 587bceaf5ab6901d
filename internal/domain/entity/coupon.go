// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	domainerrors "scout/internal/domain/errors"
)

// Redemption records who redeemed a coupon and when.
type Redemption struct {
	RedeemedBy AccountID `json:"redeemed_by"`
	RedeemedAt time.Time `json:"redeemed_at"`
}

// Coupon is a single-use voucher. A nil Redemption means the coupon is still
// unredeemed; once set it never goes back.
type Coupon struct {
	Code       CouponCode  `json:"code"`
	FaceValue  Amount      `json:"face_value"`
	Redemption *Redemption `json:"redemption,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// NewCoupon creates an unredeemed coupon. The face value must be positive.
func NewCoupon(code CouponCode, faceValue Amount) (*Coupon, error) {
	if !faceValue.IsPositive() {
		return nil, domainerrors.NewValidationError("face_value", "must be positive")
	}

	return &Coupon{
		Code:      code,
		FaceValue: faceValue,
		CreatedAt: time.Now(),
	}, nil
}

// CanBeRedeemed reports whether the coupon is still unredeemed.
func (c *Coupon) CanBeRedeemed() bool {
	return c.Redemption == nil
}

// IsRedeemed reports whether the coupon reached its terminal state.
func (c *Coupon) IsRedeemed() bool {
	return c.Redemption != nil
}

// Redeem moves the coupon to the redeemed state.
func (c *Coupon) Redeem(accountID AccountID, at time.Time) error {
	if !c.CanBeRedeemed() {
		return domainerrors.NewAlreadyRedeemedError(c.Code.String())
	}

	c.Redemption = &Redemption{
		RedeemedBy: accountID,
		RedeemedAt: at,
	}

	return nil
}
