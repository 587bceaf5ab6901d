package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "scout/internal/delivery/context"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/service"
	"scout/internal/usecase"
)

// compensationTimeout bounds writes that must land after the charge even when
// the request context is already cancelled.
const compensationTimeout = 5 * time.Second

// detachedContext keeps the values of ctx but not its cancellation.
func detachedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
}

type batchLookupService struct {
	accounts usecase.AccountUsecase
	provider service.LookupProvider
	events   *billingEvents
	policy   *usecase.BillingPolicy
	logger   *slog.Logger
}

// NewBatchLookupService creates the balance-gated batch lookup transaction
func NewBatchLookupService(
	accounts usecase.AccountUsecase,
	provider service.LookupProvider,
	publisher service.EventPublisher,
	policy *usecase.BillingPolicy,
	logger *slog.Logger,
) usecase.BatchLookupUsecase {
	return &batchLookupService{
		accounts: accounts,
		provider: provider,
		events:   newBillingEvents(publisher, logger),
		policy:   policy,
		logger:   logger,
	}
}

func (srv *batchLookupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Execute charges the account, runs the lookup and refunds the charge when
// the batch failed or matched nothing. Privileged callers are never charged.
func (srv *batchLookupService) Execute(ctx context.Context, input *usecase.BatchLookupInput) (*usecase.BatchLookupOutput, error) {
	if err := srv.validate(input); err != nil {
		return nil, err
	}

	account, err := srv.accounts.GetOrCreate(ctx, input.AccountID, input.DisplayName)
	if err != nil {
		return nil, err
	}

	itemCount := len(input.Items)

	var totalCost entity.Amount
	if !input.Privileged {
		totalCost, err = srv.policy.CostPerItem.Mul(itemCount)
		if err != nil {
			return nil, err
		}

		if !account.HasBalance(totalCost) {
			return nil, domainerrors.NewInsufficientFundsError(totalCost.Units(), account.Balance.Units())
		}

		if err := srv.charge(ctx, account, totalCost, itemCount); err != nil {
			return nil, err
		}
	}

	results, lookupErr := srv.provider.Lookup(ctx, input.Items, account.Preference)
	if lookupErr != nil {
		srv.log(ctx).Warn("Batch lookup failed",
			slog.Int64("account_id", account.ID.Int64()),
			slog.Int("item_count", itemCount),
			slog.Any("error", lookupErr),
		)

		if !input.Privileged {
			if err := srv.refund(ctx, account, totalCost, itemCount); err != nil {
				return nil, err
			}
		}

		return nil, lookupErr
	}

	found := entity.AnyFound(results)
	refunded := false

	if !found && !input.Privileged {
		if err := srv.refund(ctx, account, totalCost, itemCount); err != nil {
			return nil, err
		}
		refunded = true
	}

	srv.log(ctx).Info("Batch lookup completed",
		slog.Int64("account_id", account.ID.Int64()),
		slog.Int("item_count", itemCount),
		slog.Bool("found", found),
		slog.Bool("refunded", refunded),
		slog.Bool("privileged", input.Privileged),
	)

	return &usecase.BatchLookupOutput{
		Results:  results,
		Charged:  totalCost,
		Balance:  account.Balance,
		Refunded: refunded,
		Found:    found,
	}, nil
}

func (srv *batchLookupService) validate(input *usecase.BatchLookupInput) error {
	if input == nil || len(input.Items) == 0 {
		return domainerrors.NewValidationError("items", "at least one item is required")
	}

	if srv.policy.MaxBatchSize > 0 && len(input.Items) > srv.policy.MaxBatchSize {
		return domainerrors.NewValidationError("items", fmt.Sprintf("at most %d items per batch", srv.policy.MaxBatchSize))
	}

	if _, err := entity.NewAccountID(input.AccountID.Int64()); err != nil {
		return err
	}

	return nil
}

func (srv *batchLookupService) charge(ctx context.Context, account *entity.Account, cost entity.Amount, itemCount int) error {
	if err := account.DeductBalance(cost); err != nil {
		return err
	}

	if err := srv.accounts.UpdateBalance(ctx, account.ID, account.Balance); err != nil {
		return err
	}

	srv.events.publish(ctx, &entity.BillingEvent{
		Type:      entity.BillingEventCharged,
		AccountID: account.ID,
		Amount:    cost,
		Balance:   account.Balance,
		ItemCount: itemCount,
	})

	return nil
}

// refund credits back exactly the amount charged for the batch. It runs
// detached from ctx since a cancelled request is the usual cause of a failed
// lookup.
func (srv *batchLookupService) refund(ctx context.Context, account *entity.Account, cost entity.Amount, itemCount int) error {
	if err := account.AddBalance(cost); err != nil {
		return err
	}

	writeCtx, cancel := detachedContext(ctx)
	defer cancel()

	if err := srv.accounts.UpdateBalance(writeCtx, account.ID, account.Balance); err != nil {
		srv.log(ctx).Error("Failed to persist refund",
			slog.Int64("account_id", account.ID.Int64()),
			slog.String("amount", cost.String()),
			slog.Any("error", err),
		)

		return err
	}

	srv.events.publish(writeCtx, &entity.BillingEvent{
		Type:      entity.BillingEventRefunded,
		AccountID: account.ID,
		Amount:    cost,
		Balance:   account.Balance,
		ItemCount: itemCount,
	})

	return nil
}
