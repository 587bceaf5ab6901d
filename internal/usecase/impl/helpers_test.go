package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"scout/config"
	"scout/internal/domain/entity"
	"scout/internal/domain/repository"
	"scout/internal/infra/persistence/memory"
	"scout/internal/usecase"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPolicy(t *testing.T, costPerItem, trialAmount string) *usecase.BillingPolicy {
	t.Helper()

	cfg := &config.Config{}
	cfg.Billing.CostPerItem = costPerItem
	cfg.Billing.TrialAmount = trialAmount
	cfg.Billing.MaxBatchSize = 5
	cfg.Coupon.MaxBatch = 10

	policy, err := usecase.NewBillingPolicy(cfg)
	require.NoError(t, err)

	return policy
}

// memoryFixture wires the services over one in-memory store.
type memoryFixture struct {
	store    *memory.Store
	policy   *usecase.BillingPolicy
	accounts usecase.AccountUsecase
	coupons  usecase.CouponUsecase
}

func newMemoryFixture(t *testing.T, costPerItem, trialAmount string) *memoryFixture {
	t.Helper()

	store := memory.NewStore()
	policy := newTestPolicy(t, costPerItem, trialAmount)
	logger := newDiscardLogger()

	return &memoryFixture{
		store:    store,
		policy:   policy,
		accounts: NewAccountService(memory.NewAccountRepository(store), policy, logger),
		coupons:  NewCouponService(memory.NewCouponRepository(store), logger),
	}
}

func (f *memoryFixture) balanceOf(t *testing.T, id entity.AccountID) int64 {
	t.Helper()

	account, err := memory.NewAccountRepository(f.store).FindByID(t.Context(), id)
	require.NoError(t, err)

	return account.Balance.Units()
}

func found(key entity.ItemKey) entity.LookupResult {
	return entity.LookupResult{Key: key, Found: true, Title: "listing " + key.String(), Price: entity.MustAmount(1999), Currency: "USD", ListingCount: 1}
}

// contextAwareAccountRepository rejects balance writes on a finished context,
// like the GORM repository does.
type contextAwareAccountRepository struct {
	repository.AccountRepository
}

func (r *contextAwareAccountRepository) UpdateBalance(ctx context.Context, id entity.AccountID, balance entity.Amount) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.AccountRepository.UpdateBalance(ctx, id, balance)
}

// withContextAwareAccounts rebuilds the account usecase over a repository
// that honors cancellation.
func (f *memoryFixture) withContextAwareAccounts() *memoryFixture {
	repo := &contextAwareAccountRepository{AccountRepository: memory.NewAccountRepository(f.store)}
	f.accounts = NewAccountService(repo, f.policy, newDiscardLogger())

	return f
}
