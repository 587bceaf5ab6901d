package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "scout/internal/delivery/context"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	"scout/internal/usecase"

	"github.com/pkg/errors"
)

type couponService struct {
	couponRepo repository.CouponRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewCouponService creates a new coupon service instance
func NewCouponService(couponRepo repository.CouponRepository, logger *slog.Logger) usecase.CouponUsecase {
	return &couponService{
		couponRepo: couponRepo,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (srv *couponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Mint creates a coupon under a freshly generated code. A code collision is
// reported as a persistence failure.
func (srv *couponService) Mint(ctx context.Context, faceValue entity.Amount) (*entity.Coupon, error) {
	coupon, err := entity.NewCoupon(entity.GenerateCouponCode(), faceValue)
	if err != nil {
		return nil, err
	}

	if err := srv.couponRepo.Create(ctx, coupon); err != nil {
		if errors.Is(err, repository.ErrDuplicateCoupon) {
			return nil, domainerrors.ErrDuplicateCoupon.WrapMessage("coupon code collision: " + coupon.Code.String())
		}

		return nil, errors.Wrap(err, "failed to create coupon")
	}

	srv.log(ctx).Info("Coupon minted",
		slog.String("code", coupon.Code.String()),
		slog.String("face_value", faceValue.String()),
	)

	return coupon, nil
}

// Redeem consumes the coupon for accountID and returns its face value
func (srv *couponService) Redeem(ctx context.Context, code entity.CouponCode, accountID entity.AccountID) (entity.Amount, error) {
	coupon, err := srv.couponRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return entity.Amount{}, domainerrors.NewCouponNotFoundError(code.String())
		}

		return entity.Amount{}, errors.Wrap(err, "failed to find coupon")
	}

	if !coupon.CanBeRedeemed() {
		return entity.Amount{}, domainerrors.NewAlreadyRedeemedError(code.String())
	}

	if err := coupon.Redeem(accountID, srv.now()); err != nil {
		return entity.Amount{}, err
	}

	// The conditional update is the authority on single use; the check above
	// only avoids a write for the common case.
	if err := srv.couponRepo.MarkRedeemed(ctx, code, *coupon.Redemption); err != nil {
		switch {
		case errors.Is(err, repository.ErrCouponAlreadyRedeemed):
			return entity.Amount{}, domainerrors.NewAlreadyRedeemedError(code.String())
		case errors.Is(err, repository.ErrCouponNotFound):
			return entity.Amount{}, domainerrors.NewCouponNotFoundError(code.String())
		default:
			return entity.Amount{}, errors.Wrap(err, "failed to mark coupon redeemed")
		}
	}

	srv.log(ctx).Info("Coupon redeemed",
		slog.String("code", code.String()),
		slog.Int64("account_id", accountID.Int64()),
	)

	return coupon.FaceValue, nil
}
