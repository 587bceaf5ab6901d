// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager on gorm's
// managed transactions, which roll back on error or panic.
type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositoryFactory hands out repositories bound to one open transaction.
type txRepositoryFactory struct {
	tx *gorm.DB
}

func (f *txRepositoryFactory) NewAccountRepository() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

func (f *txRepositoryFactory) NewCouponRepository() repository.CouponRepository {
	return NewCouponRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in a single transaction. An error returned by fn is passed
// through unchanged after rollback; begin and commit failures are reported as
// ErrTransactionFailed.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&txRepositoryFactory{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return domainerrors.ErrTransactionFailed.WrapMessage("transaction failed: " + err.Error())
	}
}
