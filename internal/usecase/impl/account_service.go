package impl

import (
	"context"
	"log/slog"

	deliverycontext "scout/internal/delivery/context"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	"scout/internal/usecase"

	"github.com/pkg/errors"
)

type accountService struct {
	accountRepo repository.AccountRepository
	policy      *usecase.BillingPolicy
	logger      *slog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(
	accountRepo repository.AccountRepository,
	policy *usecase.BillingPolicy,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accountRepo: accountRepo,
		policy:      policy,
		logger:      logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrCreate returns the account, granting the trial balance on creation
func (srv *accountService) GetOrCreate(ctx context.Context, id entity.AccountID, displayName string) (*entity.Account, error) {
	account, created, err := srv.accountRepo.GetOrCreate(ctx, id, displayName, srv.policy.TrialAmount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get or create account")
	}

	if created {
		srv.log(ctx).Info("Account created",
			slog.Int64("account_id", id.Int64()),
			slog.String("trial_amount", srv.policy.TrialAmount.String()),
		)
	}

	return account, nil
}

// Get returns an existing account
func (srv *accountService) Get(ctx context.Context, id entity.AccountID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.mapNotFound(err, id, "failed to find account")
	}

	return account, nil
}

// UpdateBalance persists the absolute balance of the account
func (srv *accountService) UpdateBalance(ctx context.Context, id entity.AccountID, balance entity.Amount) error {
	if err := srv.accountRepo.UpdateBalance(ctx, id, balance); err != nil {
		return srv.mapNotFound(err, id, "failed to update balance")
	}

	return nil
}

// UpdatePreference persists the search preference of the account
func (srv *accountService) UpdatePreference(ctx context.Context, id entity.AccountID, preference entity.SearchPreference) error {
	if !preference.IsValid() {
		return domainerrors.NewValidationError("preference", "unknown search preference")
	}

	if err := srv.accountRepo.UpdatePreference(ctx, id, preference); err != nil {
		return srv.mapNotFound(err, id, "failed to update preference")
	}

	return nil
}

// Save persists every mutable field of the account
func (srv *accountService) Save(ctx context.Context, account *entity.Account) error {
	if err := srv.accountRepo.Save(ctx, account); err != nil {
		return srv.mapNotFound(err, account.ID, "failed to save account")
	}

	return nil
}

func (srv *accountService) mapNotFound(err error, id entity.AccountID, message string) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.NewAccountNotFoundError(id.Int64())
	}

	return errors.Wrap(err, message)
}
