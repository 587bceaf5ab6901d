// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	"scout/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// GetOrCreate inserts the account unless it exists, then reads it back.
// Concurrent first contacts for the same ID converge on a single row.
func (repo *accountRepository) GetOrCreate(ctx context.Context, id entity.AccountID, displayName string, trial entity.Amount) (*entity.Account, bool, error) {
	accountM := fromAccountDomain(entity.NewAccount(id, displayName, trial))

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(accountM)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create account")
	}

	if result.RowsAffected == 1 {
		return toAccountDomain(accountM), true, nil
	}

	account, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	return account, false, nil
}

// FindByID retrieves a single account by its ID.
func (repo *accountRepository) FindByID(ctx context.Context, id entity.AccountID) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id.Int64()).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	return toAccountDomain(&accountM), nil
}

// Save writes every mutable field of the account.
func (repo *accountRepository) Save(ctx context.Context, account *entity.Account) error {
	return repo.updateColumns(ctx, account.ID, map[string]any{
		"display_name":  account.DisplayName,
		"balance_minor": account.Balance.Units(),
		"preference":    account.Preference.String(),
	}, "failed to save account")
}

// UpdateBalance writes the absolute balance of an account.
func (repo *accountRepository) UpdateBalance(ctx context.Context, id entity.AccountID, balance entity.Amount) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"balance_minor": balance.Units(),
	}, "failed to update account balance")
}

// UpdatePreference writes the search preference of an account.
func (repo *accountRepository) UpdatePreference(ctx context.Context, id entity.AccountID, preference entity.SearchPreference) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"preference": preference.String(),
	}, "failed to update account preference")
}

// updateColumns uses a map so zero values such as an empty balance are written.
func (repo *accountRepository) updateColumns(ctx context.Context, id entity.AccountID, columns map[string]any, details string) error {
	columns["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id.Int64()).
		Updates(columns)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.NewValidationError("balance", "must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, details)
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
// Stored rows satisfy the table's check constraints, so the conversions cannot fail.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	preference, err := entity.ParseSearchPreference(data.Preference)
	if err != nil {
		preference = entity.DefaultSearchPreference
	}

	balance, err := entity.NewAmount(data.BalanceMinor)
	if err != nil {
		balance = entity.Amount{}
	}

	return &entity.Account{
		ID:          entity.AccountID(data.ID),
		DisplayName: data.DisplayName,
		Balance:     balance,
		Preference:  preference,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID.Int64(),
		DisplayName:  data.DisplayName,
		BalanceMinor: data.Balance.Units(),
		Preference:   data.Preference.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
