package impl

import (
	"context"
	"testing"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	"scout/internal/infra/persistence/memory"
	mockRepo "scout/internal/mocks/repository"
	mockSvc "scout/internal/mocks/service"
	"scout/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCouponMint_Execute(t *testing.T) {
	fixture, minter, _ := newRedemptionFixture(t, "0")
	ctx := context.Background()

	out, err := minter.Execute(ctx, &usecase.CouponMintInput{FaceValue: entity.MustAmount(2550)})
	require.NoError(t, err)
	assert.Len(t, out.Code.String(), 26)
	assert.Equal(t, int64(2550), out.FaceValue.Units())

	stored, err := memory.NewCouponRepository(fixture.store).FindByCode(ctx, out.Code)
	require.NoError(t, err)
	assert.True(t, stored.CanBeRedeemed())
}

func TestCouponMint_RejectsNonPositiveFaceValue(t *testing.T) {
	_, minter, _ := newRedemptionFixture(t, "0")

	_, err := minter.Execute(context.Background(), &usecase.CouponMintInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = minter.MintBatch(context.Background(), &usecase.CouponMintBatchInput{Count: 2})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestCouponMint_MintBatch(t *testing.T) {
	fixture, minter, _ := newRedemptionFixture(t, "0")
	ctx := context.Background()

	out, err := minter.MintBatch(ctx, &usecase.CouponMintBatchInput{Count: 3, FaceValue: entity.MustAmount(100)})
	require.NoError(t, err)
	require.Len(t, out.Coupons, 3)

	seen := make(map[entity.CouponCode]struct{})
	for _, coupon := range out.Coupons {
		_, err := memory.NewCouponRepository(fixture.store).FindByCode(ctx, coupon.Code)
		require.NoError(t, err)
		seen[coupon.Code] = struct{}{}
	}
	assert.Len(t, seen, 3)
}

func TestCouponMint_MintBatchCountLimits(t *testing.T) {
	_, minter, _ := newRedemptionFixture(t, "0")

	for _, count := range []int{0, -1, 11} {
		_, err := minter.MintBatch(context.Background(), &usecase.CouponMintBatchInput{Count: count, FaceValue: entity.MustAmount(100)})
		assert.ErrorIs(t, err, domainerrors.ErrValidation, "count %d", count)
	}
}

func TestCouponMint_MintBatchFailurePublishesNothing(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	policy := newTestPolicy(t, "1.00", "0")
	logger := newDiscardLogger()

	dbErr := errors.New("deadlock detected")

	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		}).Once()
	repoFactory.EXPECT().NewCouponRepository().Return(couponRepo).Once()
	couponRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	couponRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr).Once()

	minter := NewCouponMintService(NewCouponService(couponRepo, logger), txManager, publisher, policy, logger)

	out, err := minter.MintBatch(context.Background(), &usecase.CouponMintBatchInput{Count: 3, FaceValue: entity.MustAmount(100)})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, dbErr)
	publisher.AssertNotCalled(t, "PublishBillingEvent", mock.Anything, mock.Anything)
}
