// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"scout/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAccountNotFound is returned when no account exists for an ID.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	// GetOrCreate returns the account for id, creating it with the trial balance
	// and the default preference when absent. created reports which happened.
	GetOrCreate(ctx context.Context, id entity.AccountID, displayName string, trial entity.Amount) (account *entity.Account, created bool, err error)

	// FindByID retrieves a single account by its ID.
	FindByID(ctx context.Context, id entity.AccountID) (*entity.Account, error)

	// Save writes every mutable field of the account.
	Save(ctx context.Context, account *entity.Account) error

	// UpdateBalance writes the absolute balance of an account.
	UpdateBalance(ctx context.Context, id entity.AccountID, balance entity.Amount) error

	// UpdatePreference writes the search preference of an account.
	UpdatePreference(ctx context.Context, id entity.AccountID, preference entity.SearchPreference) error
}
