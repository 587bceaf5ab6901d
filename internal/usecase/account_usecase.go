package usecase

import (
	"context"

	"scout/internal/domain/entity"
)

// AccountUsecase resolves accounts and persists balance and preference changes.
type AccountUsecase interface {
	// GetOrCreate returns the account, creating it with the trial balance on first contact
	GetOrCreate(ctx context.Context, id entity.AccountID, displayName string) (*entity.Account, error)

	// Get returns the account or an AccountNotFound error
	Get(ctx context.Context, id entity.AccountID) (*entity.Account, error)

	UpdateBalance(ctx context.Context, id entity.AccountID, balance entity.Amount) error
	UpdatePreference(ctx context.Context, id entity.AccountID, preference entity.SearchPreference) error
	Save(ctx context.Context, account *entity.Account) error
}
