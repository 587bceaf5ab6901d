package impl

import (
	"context"
	"log/slog"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/service"
	"scout/internal/usecase"
)

type couponRedemptionService struct {
	accounts usecase.AccountUsecase
	coupons  usecase.CouponUsecase
	events   *billingEvents
}

// NewCouponRedemptionService creates the coupon redemption transaction
func NewCouponRedemptionService(
	accounts usecase.AccountUsecase,
	coupons usecase.CouponUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CouponRedemptionUsecase {
	return &couponRedemptionService{
		accounts: accounts,
		coupons:  coupons,
		events:   newBillingEvents(publisher, logger),
	}
}

// Execute redeems the coupon and credits its face value. A coupon failure
// aborts before the account is touched.
func (srv *couponRedemptionService) Execute(ctx context.Context, input *usecase.CouponRedemptionInput) (*usecase.CouponRedemptionOutput, error) {
	if input == nil || input.Code == "" {
		return nil, domainerrors.NewValidationError("code", "coupon code is required")
	}

	account, err := srv.accounts.GetOrCreate(ctx, input.AccountID, input.DisplayName)
	if err != nil {
		return nil, err
	}

	faceValue, err := srv.coupons.Redeem(ctx, input.Code, account.ID)
	if err != nil {
		return nil, err
	}

	if err := account.AddBalance(faceValue); err != nil {
		return nil, err
	}

	// The coupon is spent at this point, so the credit must not be dropped
	// with a cancelled request.
	writeCtx, cancel := detachedContext(ctx)
	defer cancel()

	if err := srv.accounts.UpdateBalance(writeCtx, account.ID, account.Balance); err != nil {
		return nil, err
	}

	srv.events.publish(writeCtx, &entity.BillingEvent{
		Type:       entity.BillingEventCouponRedeemed,
		AccountID:  account.ID,
		CouponCode: input.Code,
		Amount:     faceValue,
		Balance:    account.Balance,
	})

	return &usecase.CouponRedemptionOutput{
		Code:     input.Code,
		Credited: faceValue,
		Balance:  account.Balance,
	}, nil
}
