package memory

import (
	"context"

	"scout/internal/domain/entity"
	"scout/internal/domain/repository"
)

type couponRepository struct {
	store *Store
	undo  *undoLog
}

func (r *couponRepository) FindByCode(_ context.Context, code entity.CouponCode) (*entity.Coupon, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.coupons[code]
	if !ok {
		return nil, repository.ErrCouponNotFound
	}

	c = copyCoupon(c)

	return &c, nil
}

func (r *couponRepository) Create(_ context.Context, coupon *entity.Coupon) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.coupons[coupon.Code]; ok {
		return repository.ErrDuplicateCoupon
	}

	r.undo.touchCoupon(r.store, coupon.Code)
	r.store.coupons[coupon.Code] = copyCoupon(*coupon)

	return nil
}

func (r *couponRepository) Save(_ context.Context, coupon *entity.Coupon) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.coupons[coupon.Code]; !ok {
		return repository.ErrCouponNotFound
	}

	r.undo.touchCoupon(r.store, coupon.Code)
	r.store.coupons[coupon.Code] = copyCoupon(*coupon)

	return nil
}

func (r *couponRepository) MarkRedeemed(_ context.Context, code entity.CouponCode, redemption entity.Redemption) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.coupons[code]
	if !ok {
		return repository.ErrCouponNotFound
	}

	if c.Redemption != nil {
		return repository.ErrCouponAlreadyRedeemed
	}

	r.undo.touchCoupon(r.store, code)
	c.Redemption = &redemption
	r.store.coupons[code] = c

	return nil
}
