package usecase

import (
	"context"

	"scout/internal/domain/entity"
)

// CouponUsecase mints new coupons and redeems existing ones.
type CouponUsecase interface {
	// Mint creates and persists an unredeemed coupon with a fresh code
	Mint(ctx context.Context, faceValue entity.Amount) (*entity.Coupon, error)

	// Redeem marks the coupon as used by accountID and returns its face value
	Redeem(ctx context.Context, code entity.CouponCode, accountID entity.AccountID) (entity.Amount, error)
}
