package impl

import (
	"context"
	"testing"
	"time"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	mockRepo "scout/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCouponService_Redeem(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	couponRepo := mockRepo.NewMockCouponRepository(t)
	svc := &couponService{couponRepo: couponRepo, logger: newDiscardLogger(), now: func() time.Time { return at }}

	coupon, err := entity.NewCoupon("SPRING", entity.MustAmount(2550))
	require.NoError(t, err)

	couponRepo.EXPECT().FindByCode(ctx, entity.CouponCode("SPRING")).Return(coupon, nil).Once()
	couponRepo.EXPECT().MarkRedeemed(ctx, entity.CouponCode("SPRING"), entity.Redemption{RedeemedBy: 3, RedeemedAt: at}).Return(nil).Once()

	value, err := svc.Redeem(ctx, "SPRING", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2550), value.Units())
}

func TestCouponService_Redeem_LostRace(t *testing.T) {
	ctx := context.Background()
	couponRepo := mockRepo.NewMockCouponRepository(t)
	svc := NewCouponService(couponRepo, newDiscardLogger())

	coupon, err := entity.NewCoupon("RACE", entity.MustAmount(100))
	require.NoError(t, err)

	couponRepo.EXPECT().FindByCode(ctx, entity.CouponCode("RACE")).Return(coupon, nil).Once()
	couponRepo.EXPECT().MarkRedeemed(ctx, entity.CouponCode("RACE"), mock.Anything).Return(repository.ErrCouponAlreadyRedeemed).Once()

	_, err = svc.Redeem(ctx, "RACE", 1)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyRedeemed)
}

func TestCouponService_Redeem_AlreadyRedeemedSkipsWrite(t *testing.T) {
	ctx := context.Background()
	couponRepo := mockRepo.NewMockCouponRepository(t)
	svc := NewCouponService(couponRepo, newDiscardLogger())

	coupon, err := entity.NewCoupon("USED", entity.MustAmount(100))
	require.NoError(t, err)
	require.NoError(t, coupon.Redeem(9, time.Now()))

	couponRepo.EXPECT().FindByCode(ctx, entity.CouponCode("USED")).Return(coupon, nil).Once()

	_, err = svc.Redeem(ctx, "USED", 1)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyRedeemed)
}

func TestCouponService_Redeem_Errors(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	tests := []struct {
		name   string
		repErr error
		check  func(t *testing.T, err error)
	}{
		{
			name:   "not found",
			repErr: repository.ErrCouponNotFound,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domainerrors.ErrCouponNotFound)
			},
		},
		{
			name:   "persistence failure passes through",
			repErr: dbErr,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, dbErr)
				assert.False(t, domainerrors.IsDomainError(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			couponRepo := mockRepo.NewMockCouponRepository(t)
			svc := NewCouponService(couponRepo, newDiscardLogger())
			couponRepo.EXPECT().FindByCode(ctx, entity.CouponCode("X")).Return(nil, tt.repErr).Once()

			_, err := svc.Redeem(ctx, "X", 1)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestCouponService_Mint(t *testing.T) {
	ctx := context.Background()
	couponRepo := mockRepo.NewMockCouponRepository(t)
	svc := NewCouponService(couponRepo, newDiscardLogger())

	couponRepo.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Coupon) bool {
		return c.CanBeRedeemed() && c.FaceValue.Units() == 700
	})).Return(nil).Once()

	coupon, err := svc.Mint(ctx, entity.MustAmount(700))
	require.NoError(t, err)
	assert.Len(t, coupon.Code.String(), 26)

	_, err = svc.Mint(ctx, entity.Amount{})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestCouponService_MintCollision(t *testing.T) {
	ctx := context.Background()
	couponRepo := mockRepo.NewMockCouponRepository(t)
	svc := NewCouponService(couponRepo, newDiscardLogger())

	couponRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateCoupon).Once()

	_, err := svc.Mint(ctx, entity.MustAmount(700))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateCoupon)
}
