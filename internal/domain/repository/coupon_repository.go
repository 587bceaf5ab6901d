// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"scout/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for coupon persistence.
var (
	// ErrCouponNotFound is returned when a coupon code is unknown.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrDuplicateCoupon is returned when a coupon code already exists.
	ErrDuplicateCoupon = errors.New("coupon already exists")
	// ErrCouponAlreadyRedeemed is returned when a conditional redemption matched no unredeemed coupon.
	ErrCouponAlreadyRedeemed = errors.New("coupon already redeemed")
)

// CouponRepository defines the interface for coupon-related database operations.
type CouponRepository interface {
	// FindByCode retrieves a coupon by its code.
	FindByCode(ctx context.Context, code entity.CouponCode) (*entity.Coupon, error)

	// Create persists a new unredeemed coupon.
	Create(ctx context.Context, coupon *entity.Coupon) error

	// Save writes the redemption state of an existing coupon unconditionally.
	Save(ctx context.Context, coupon *entity.Coupon) error

	// MarkRedeemed atomically moves a coupon to the redeemed state if and only
	// if it is still unredeemed. Exactly one record must change, otherwise
	// ErrCouponAlreadyRedeemed (or ErrCouponNotFound) is returned.
	MarkRedeemed(ctx context.Context, code entity.CouponCode, redemption entity.Redemption) error
}
