package usecase

import (
	"context"

	"scout/internal/domain/entity"
)

// CouponRedemptionInput identifies the account redeeming a coupon
type CouponRedemptionInput struct {
	AccountID   entity.AccountID  `json:"account_id"`
	DisplayName string            `json:"display_name"`
	Code        entity.CouponCode `json:"code"`
}

// CouponRedemptionOutput reports the credit and the new balance
type CouponRedemptionOutput struct {
	Code     entity.CouponCode `json:"code"`
	Credited entity.Amount     `json:"credited"`
	Balance  entity.Amount     `json:"balance"`
}

// CouponRedemptionUsecase credits a coupon's face value to an account.
type CouponRedemptionUsecase interface {
	Execute(ctx context.Context, input *CouponRedemptionInput) (*CouponRedemptionOutput, error)
}
