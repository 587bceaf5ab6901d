package impl

import (
	"context"
	"testing"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	mockRepo "scout/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_GetOrCreateUsesTrialAmount(t *testing.T) {
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)
	policy := newTestPolicy(t, "1.00", "12.34")
	svc := NewAccountService(accountRepo, policy, newDiscardLogger())

	accountRepo.EXPECT().GetOrCreate(ctx, entity.AccountID(8), "erin", entity.MustAmount(1234)).
		Return(entity.NewAccount(8, "erin", entity.MustAmount(1234)), true, nil).Once()

	account, err := svc.GetOrCreate(ctx, 8, "erin")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), account.Balance.Units())
}

func TestAccountService_NotFoundMapping(t *testing.T) {
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)
	svc := NewAccountService(accountRepo, newTestPolicy(t, "1.00", "0"), newDiscardLogger())

	accountRepo.EXPECT().FindByID(ctx, entity.AccountID(2)).Return(nil, repository.ErrAccountNotFound).Once()
	accountRepo.EXPECT().UpdateBalance(ctx, entity.AccountID(2), entity.MustAmount(1)).Return(repository.ErrAccountNotFound).Once()
	accountRepo.EXPECT().UpdatePreference(ctx, entity.AccountID(2), entity.SearchEnded).Return(repository.ErrAccountNotFound).Once()

	_, err := svc.Get(ctx, 2)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	assert.ErrorIs(t, svc.UpdateBalance(ctx, 2, entity.MustAmount(1)), domainerrors.ErrAccountNotFound)
	assert.ErrorIs(t, svc.UpdatePreference(ctx, 2, entity.SearchEnded), domainerrors.ErrAccountNotFound)
}

func TestAccountService_UpdatePreferenceValidates(t *testing.T) {
	svc := NewAccountService(mockRepo.NewMockAccountRepository(t), newTestPolicy(t, "1.00", "0"), newDiscardLogger())

	err := svc.UpdatePreference(context.Background(), 1, entity.SearchPreference("PENDING"))
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestAccountService_PersistenceErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)
	svc := NewAccountService(accountRepo, newTestPolicy(t, "1.00", "0"), newDiscardLogger())
	dbErr := errors.New("too many connections")

	account := entity.NewAccount(3, "", entity.Amount{})
	accountRepo.EXPECT().Save(ctx, account).Return(dbErr).Once()

	err := svc.Save(ctx, account)
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, domainerrors.IsDomainError(err))
}
