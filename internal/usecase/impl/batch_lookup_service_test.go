package impl

import (
	"context"
	"testing"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	mockRepo "scout/internal/mocks/repository"
	mockSvc "scout/internal/mocks/service"
	"scout/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBatchLookupWithMemory(t *testing.T, cost, trial string) (usecase.BatchLookupUsecase, *memoryFixture, *mockSvc.MockLookupProvider) {
	t.Helper()

	fixture := newMemoryFixture(t, cost, trial)
	provider := mockSvc.NewMockLookupProvider(t)

	return NewBatchLookupService(fixture.accounts, provider, nil, fixture.policy, newDiscardLogger()), fixture, provider
}

func TestBatchLookup_ScenarioA_AllMatchChargeStands(t *testing.T) {
	svc, fixture, provider := newBatchLookupWithMemory(t, "2.00", "100.00")
	ctx := context.Background()
	items := []entity.ItemKey{"A", "B", "C"}

	provider.EXPECT().Lookup(mock.Anything, items, entity.SearchActive).
		Return([]entity.LookupResult{found("A"), found("B"), found("C")}, nil).Once()

	out, err := svc.Execute(ctx, &usecase.BatchLookupInput{AccountID: 1, Items: items})
	require.NoError(t, err)

	assert.Equal(t, int64(600), out.Charged.Units())
	assert.Equal(t, "94.00", out.Balance.String())
	assert.False(t, out.Refunded)
	assert.True(t, out.Found)
	assert.Len(t, out.Results, 3)
	assert.Equal(t, int64(9400), fixture.balanceOf(t, 1))
}

func TestBatchLookup_ScenarioB_NoMatchRefunds(t *testing.T) {
	svc, fixture, provider := newBatchLookupWithMemory(t, "2.00", "50.00")
	items := []entity.ItemKey{"X"}

	provider.EXPECT().Lookup(mock.Anything, items, entity.SearchActive).
		Return([]entity.LookupResult{entity.NotFoundResult("X")}, nil).Once()

	out, err := svc.Execute(context.Background(), &usecase.BatchLookupInput{AccountID: 1, Items: items})
	require.NoError(t, err)

	assert.True(t, out.Refunded)
	assert.False(t, out.Found)
	assert.Equal(t, int64(200), out.Charged.Units())
	assert.Equal(t, int64(5000), out.Balance.Units())
	assert.Equal(t, int64(5000), fixture.balanceOf(t, 1))
}

func TestBatchLookup_ScenarioC_InsufficientFunds(t *testing.T) {
	svc, fixture, _ := newBatchLookupWithMemory(t, "2.00", "1.00")

	out, err := svc.Execute(context.Background(), &usecase.BatchLookupInput{AccountID: 1, Items: []entity.ItemKey{"X"}})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientFunds)

	var domainErr *domainerrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, int64(200), domainErr.Required)
	assert.Equal(t, int64(100), domainErr.Available)

	assert.Equal(t, int64(100), fixture.balanceOf(t, 1), "balance must be untouched")
}

func TestBatchLookup_LookupFailureRefundsAndReturnsOriginalError(t *testing.T) {
	svc, fixture, provider := newBatchLookupWithMemory(t, "2.00", "10.00")
	boom := errors.New("marketplace timeout")

	provider.EXPECT().Lookup(mock.Anything, mock.Anything, mock.Anything).Return(nil, boom).Once()

	out, err := svc.Execute(context.Background(), &usecase.BatchLookupInput{AccountID: 1, Items: []entity.ItemKey{"A", "B"}})
	assert.Nil(t, out)
	assert.Same(t, boom, err)
	assert.Equal(t, int64(1000), fixture.balanceOf(t, 1))
}

func TestBatchLookup_CancelledRequestStillRefunds(t *testing.T) {
	fixture := newMemoryFixture(t, "2.00", "50.00").withContextAwareAccounts()
	provider := mockSvc.NewMockLookupProvider(t)
	svc := NewBatchLookupService(fixture.accounts, provider, nil, fixture.policy, newDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider.EXPECT().Lookup(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ []entity.ItemKey, _ entity.SearchPreference) ([]entity.LookupResult, error) {
			cancel()

			return nil, ctx.Err()
		}).Once()

	out, err := svc.Execute(ctx, &usecase.BatchLookupInput{AccountID: 1, Items: []entity.ItemKey{"A"}})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(5000), fixture.balanceOf(t, 1), "failed batch must not stay charged")
}

func TestBatchLookup_RefundFailureWins(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	provider := mockSvc.NewMockLookupProvider(t)
	policy := newTestPolicy(t, "2.00", "10.00")
	accounts := NewAccountService(accountRepo, policy, newDiscardLogger())
	svc := NewBatchLookupService(accounts, provider, nil, policy, newDiscardLogger())

	ctx := context.Background()
	dbErr := errors.New("connection reset")
	lookupErr := errors.New("marketplace down")

	accountRepo.EXPECT().GetOrCreate(ctx, entity.AccountID(1), "", policy.TrialAmount).
		Return(entity.NewAccount(1, "", entity.MustAmount(1000)), false, nil).Once()
	accountRepo.EXPECT().UpdateBalance(ctx, entity.AccountID(1), entity.MustAmount(800)).Return(nil).Once()
	provider.EXPECT().Lookup(ctx, mock.Anything, entity.SearchActive).Return(nil, lookupErr).Once()
	accountRepo.EXPECT().UpdateBalance(mock.Anything, entity.AccountID(1), entity.MustAmount(1000)).Return(dbErr).Once()

	_, err := svc.Execute(ctx, &usecase.BatchLookupInput{AccountID: 1, Items: []entity.ItemKey{"A"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, lookupErr)
}

func TestBatchLookup_PrivilegedNeverMutatesBalance(t *testing.T) {
	tests := []struct {
		name    string
		results []entity.LookupResult
		err     error
	}{
		{name: "match", results: []entity.LookupResult{found("A")}},
		{name: "no match", results: []entity.LookupResult{entity.NotFoundResult("A")}},
		{name: "failure", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountRepo := mockRepo.NewMockAccountRepository(t)
			provider := mockSvc.NewMockLookupProvider(t)
			policy := newTestPolicy(t, "2.00", "0")
			svc := NewBatchLookupService(NewAccountService(accountRepo, policy, newDiscardLogger()), provider, nil, policy, newDiscardLogger())

			accountRepo.EXPECT().GetOrCreate(mock.Anything, entity.AccountID(7), "admin", policy.TrialAmount).
				Return(entity.NewAccount(7, "admin", entity.Amount{}), true, nil).Once()
			provider.EXPECT().Lookup(mock.Anything, []entity.ItemKey{"A"}, entity.SearchActive).Return(tt.results, tt.err).Once()

			out, err := svc.Execute(context.Background(), &usecase.BatchLookupInput{
				AccountID: 7, DisplayName: "admin", Items: []entity.ItemKey{"A"}, Privileged: true,
			})

			if tt.err != nil {
				assert.Same(t, tt.err, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, out.Charged.IsZero())
			assert.True(t, out.Balance.IsZero())
			assert.False(t, out.Refunded)
			accountRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestBatchLookup_UsesAccountPreference(t *testing.T) {
	svc, fixture, provider := newBatchLookupWithMemory(t, "1.00", "5.00")
	ctx := context.Background()

	_, err := fixture.accounts.GetOrCreate(ctx, 3, "carol")
	require.NoError(t, err)
	require.NoError(t, fixture.accounts.UpdatePreference(ctx, 3, entity.SearchSold))

	provider.EXPECT().Lookup(mock.Anything, []entity.ItemKey{"A"}, entity.SearchSold).
		Return([]entity.LookupResult{found("A")}, nil).Once()

	out, err := svc.Execute(ctx, &usecase.BatchLookupInput{AccountID: 3, Items: []entity.ItemKey{"A"}})
	require.NoError(t, err)
	assert.Equal(t, int64(400), out.Balance.Units())
}

func TestBatchLookup_ValidatesBatch(t *testing.T) {
	svc, _, _ := newBatchLookupWithMemory(t, "1.00", "5.00")

	tests := []struct {
		name  string
		input *usecase.BatchLookupInput
	}{
		{name: "nil input", input: nil},
		{name: "empty batch", input: &usecase.BatchLookupInput{AccountID: 1}},
		{name: "too many items", input: &usecase.BatchLookupInput{AccountID: 1, Items: []entity.ItemKey{"1", "2", "3", "4", "5", "6"}}},
		{name: "invalid account", input: &usecase.BatchLookupInput{AccountID: 0, Items: []entity.ItemKey{"1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Execute(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)
		})
	}
}

func TestBatchLookup_BalanceProperties(t *testing.T) {
	tests := []struct {
		name        string
		trial       string
		items       []entity.ItemKey
		results     []entity.LookupResult
		wantBalance int64
		wantRefund  bool
	}{
		{
			name:        "one of many matches keeps the charge",
			trial:       "20.00",
			items:       []entity.ItemKey{"A", "B", "C", "D"},
			results:     []entity.LookupResult{entity.NotFoundResult("A"), entity.NotFoundResult("B"), found("C"), entity.NotFoundResult("D")},
			wantBalance: 2000 - 4*250,
		},
		{
			name:        "zero matches restores the exact pre-balance",
			trial:       "7.77",
			items:       []entity.ItemKey{"A", "B", "C"},
			results:     []entity.LookupResult{entity.NotFoundResult("A"), entity.NotFoundResult("B"), entity.NotFoundResult("C")},
			wantBalance: 777,
			wantRefund:  true,
		},
		{
			name:        "charge to exactly zero",
			trial:       "5.00",
			items:       []entity.ItemKey{"A", "B"},
			results:     []entity.LookupResult{found("A"), found("B")},
			wantBalance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, fixture, provider := newBatchLookupWithMemory(t, "2.50", tt.trial)
			provider.EXPECT().Lookup(mock.Anything, tt.items, entity.SearchActive).Return(tt.results, nil).Once()

			out, err := svc.Execute(context.Background(), &usecase.BatchLookupInput{AccountID: 9, Items: tt.items})
			require.NoError(t, err)

			assert.Equal(t, tt.wantRefund, out.Refunded)
			assert.Equal(t, tt.wantBalance, out.Balance.Units())
			assert.Equal(t, tt.wantBalance, fixture.balanceOf(t, 9))
		})
	}
}

func TestBatchLookup_PublishesBillingEvents(t *testing.T) {
	fixture := newMemoryFixture(t, "2.00", "10.00")
	provider := mockSvc.NewMockLookupProvider(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewBatchLookupService(fixture.accounts, provider, publisher, fixture.policy, newDiscardLogger())

	var published []entity.BillingEventType
	publisher.EXPECT().PublishBillingEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *entity.BillingEvent) {
			published = append(published, event.Type)
		}).
		Return(errors.New("broker unavailable")).Times(2)
	provider.EXPECT().Lookup(mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.LookupResult{entity.NotFoundResult("A")}, nil).Once()

	out, err := svc.Execute(context.Background(), &usecase.BatchLookupInput{AccountID: 1, Items: []entity.ItemKey{"A"}})
	require.NoError(t, err, "publish failures must not fail the transaction")
	assert.True(t, out.Refunded)
	assert.Equal(t, []entity.BillingEventType{entity.BillingEventCharged, entity.BillingEventRefunded}, published)
}
