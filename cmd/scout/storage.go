package main

import (
	"log/slog"

	"scout/config"
	"scout/internal/domain/constants"
	"scout/internal/domain/repository"
	"scout/internal/infra/persistence/memory"
	"scout/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type storageParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type storageResult struct {
	fx.Out

	AccountRepo repository.AccountRepository
	CouponRepo  repository.CouponRepository
	TxManager   repository.TransactionManager
}

// newStorage provides the repositories for the configured storage driver
func newStorage(params storageParams) (storageResult, error) {
	switch params.Config.Storage.Driver {
	case constants.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, balances are lost on restart")
		store := memory.NewStore()

		return storageResult{
			AccountRepo: memory.NewAccountRepository(store),
			CouponRepo:  memory.NewCouponRepository(store),
			TxManager:   memory.NewTransactionManager(store),
		}, nil
	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return storageResult{}, err
		}

		return storageResult{
			AccountRepo: postgres.NewAccountRepository(db),
			CouponRepo:  postgres.NewCouponRepository(db),
			TxManager:   postgres.NewTransactionManager(db),
		}, nil
	default:
		return storageResult{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}
