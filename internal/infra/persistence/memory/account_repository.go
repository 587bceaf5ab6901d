package memory

import (
	"context"
	"time"

	"scout/internal/domain/entity"
	"scout/internal/domain/repository"
)

type accountRepository struct {
	store *Store
	undo  *undoLog
}

func (r *accountRepository) GetOrCreate(_ context.Context, id entity.AccountID, displayName string, trial entity.Amount) (*entity.Account, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if acc, ok := r.store.accounts[id]; ok {
		return &acc, false, nil
	}

	acc := entity.NewAccount(id, displayName, trial)
	r.undo.touchAccount(r.store, id)
	r.store.accounts[id] = *acc

	return acc, true, nil
}

func (r *accountRepository) FindByID(_ context.Context, id entity.AccountID) (*entity.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	acc, ok := r.store.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return &acc, nil
}

func (r *accountRepository) Save(_ context.Context, account *entity.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.accounts[account.ID]; !ok {
		return repository.ErrAccountNotFound
	}

	r.undo.touchAccount(r.store, account.ID)
	r.store.accounts[account.ID] = *account

	return nil
}

func (r *accountRepository) UpdateBalance(_ context.Context, id entity.AccountID, balance entity.Amount) error {
	return r.update(id, func(acc *entity.Account) {
		acc.Balance = balance
	})
}

func (r *accountRepository) UpdatePreference(_ context.Context, id entity.AccountID, preference entity.SearchPreference) error {
	return r.update(id, func(acc *entity.Account) {
		acc.Preference = preference
	})
}

func (r *accountRepository) update(id entity.AccountID, apply func(acc *entity.Account)) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	acc, ok := r.store.accounts[id]
	if !ok {
		return repository.ErrAccountNotFound
	}

	r.undo.touchAccount(r.store, id)
	apply(&acc)
	acc.UpdatedAt = time.Now()
	r.store.accounts[id] = acc

	return nil
}
