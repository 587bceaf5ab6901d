package impl

import (
	"context"
	"fmt"
	"log/slog"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	"scout/internal/domain/service"
	"scout/internal/usecase"
)

type couponMintService struct {
	coupons   usecase.CouponUsecase
	txManager repository.TransactionManager
	events    *billingEvents
	policy    *usecase.BillingPolicy
	logger    *slog.Logger
}

// NewCouponMintService creates the coupon mint transaction
func NewCouponMintService(
	coupons usecase.CouponUsecase,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	policy *usecase.BillingPolicy,
	logger *slog.Logger,
) usecase.CouponMintUsecase {
	return &couponMintService{
		coupons:   coupons,
		txManager: txManager,
		events:    newBillingEvents(publisher, logger),
		policy:    policy,
		logger:    logger,
	}
}

// Execute mints a single coupon
func (srv *couponMintService) Execute(ctx context.Context, input *usecase.CouponMintInput) (*usecase.CouponMintOutput, error) {
	if input == nil || !input.FaceValue.IsPositive() {
		return nil, domainerrors.NewValidationError("face_value", "must be greater than zero")
	}

	coupon, err := srv.coupons.Mint(ctx, input.FaceValue)
	if err != nil {
		return nil, err
	}

	srv.announce(ctx, coupon)

	return &usecase.CouponMintOutput{Code: coupon.Code, FaceValue: coupon.FaceValue}, nil
}

// MintBatch mints input.Count coupons inside one transaction
func (srv *couponMintService) MintBatch(ctx context.Context, input *usecase.CouponMintBatchInput) (*usecase.CouponMintBatchOutput, error) {
	if input == nil || !input.FaceValue.IsPositive() {
		return nil, domainerrors.NewValidationError("face_value", "must be greater than zero")
	}

	if input.Count < 1 || input.Count > srv.policy.CouponMaxBatch {
		return nil, domainerrors.NewValidationError("count", fmt.Sprintf("must be between 1 and %d", srv.policy.CouponMaxBatch))
	}

	minted := make([]*entity.Coupon, 0, input.Count)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txCoupons := NewCouponService(repoFactory.NewCouponRepository(), srv.logger)

		for range input.Count {
			coupon, err := txCoupons.Mint(ctx, input.FaceValue)
			if err != nil {
				return err
			}
			minted = append(minted, coupon)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	output := &usecase.CouponMintBatchOutput{Coupons: make([]usecase.CouponMintOutput, 0, len(minted))}
	for _, coupon := range minted {
		srv.announce(ctx, coupon)
		output.Coupons = append(output.Coupons, usecase.CouponMintOutput{Code: coupon.Code, FaceValue: coupon.FaceValue})
	}

	return output, nil
}

func (srv *couponMintService) announce(ctx context.Context, coupon *entity.Coupon) {
	srv.events.publish(ctx, &entity.BillingEvent{
		Type:       entity.BillingEventCouponMinted,
		CouponCode: coupon.Code,
		Amount:     coupon.FaceValue,
	})
}
