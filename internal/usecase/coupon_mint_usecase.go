package usecase

import (
	"context"

	"scout/internal/domain/entity"
)

// CouponMintInput is a request to mint one coupon
type CouponMintInput struct {
	FaceValue entity.Amount `json:"face_value"`
}

// CouponMintOutput describes a minted coupon
type CouponMintOutput struct {
	Code      entity.CouponCode `json:"code"`
	FaceValue entity.Amount     `json:"face_value"`
}

// CouponMintBatchInput is a request to mint several coupons of the same value
type CouponMintBatchInput struct {
	Count     int           `json:"count"`
	FaceValue entity.Amount `json:"face_value"`
}

// CouponMintBatchOutput lists the minted coupons in creation order
type CouponMintBatchOutput struct {
	Coupons []CouponMintOutput `json:"coupons"`
}

// CouponMintUsecase creates new coupons. No account is touched.
type CouponMintUsecase interface {
	Execute(ctx context.Context, input *CouponMintInput) (*CouponMintOutput, error)

	// MintBatch mints all coupons in one transaction or none of them
	MintBatch(ctx context.Context, input *CouponMintBatchInput) (*CouponMintBatchOutput, error)
}
