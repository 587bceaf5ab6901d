// Package memory provides in-process repository implementations backed by
// maps. They are safe for concurrent use and hand out copies, so callers can
// never mutate stored state without going through the repository.
package memory

import (
	"context"
	"sync"

	"scout/internal/domain/entity"
	"scout/internal/domain/repository"
)

// Store holds every account and coupon of one in-memory database.
type Store struct {
	txMu     sync.Mutex
	mu       sync.RWMutex
	accounts map[entity.AccountID]entity.Account
	coupons  map[entity.CouponCode]entity.Coupon
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[entity.AccountID]entity.Account),
		coupons:  make(map[entity.CouponCode]entity.Coupon),
	}
}

// NewAccountRepository returns an AccountRepository over the store.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return &accountRepository{store: store}
}

// NewCouponRepository returns a CouponRepository over the store.
func NewCouponRepository(store *Store) repository.CouponRepository {
	return &couponRepository{store: store}
}

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager over the store.
// Transactions are serialized against each other. A failed transaction puts
// back only the records it wrote; writes made outside it are kept.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (m *transactionManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	undo := newUndoLog()
	if err := fn(&repositoryFactory{store: m.store, undo: undo}); err != nil {
		m.store.rollback(undo)

		return err
	}

	return nil
}

type repositoryFactory struct {
	store *Store
	undo  *undoLog
}

func (f *repositoryFactory) NewAccountRepository() repository.AccountRepository {
	return &accountRepository{store: f.store, undo: f.undo}
}

func (f *repositoryFactory) NewCouponRepository() repository.CouponRepository {
	return &couponRepository{store: f.store, undo: f.undo}
}

// undoLog keeps the state each record had before its first write inside a
// transaction. A nil entry means the record did not exist.
type undoLog struct {
	accounts map[entity.AccountID]*entity.Account
	coupons  map[entity.CouponCode]*entity.Coupon
}

func newUndoLog() *undoLog {
	return &undoLog{
		accounts: make(map[entity.AccountID]*entity.Account),
		coupons:  make(map[entity.CouponCode]*entity.Coupon),
	}
}

// touchAccount must be called with s.mu held, before the write.
func (u *undoLog) touchAccount(s *Store, id entity.AccountID) {
	if u == nil {
		return
	}

	if _, seen := u.accounts[id]; seen {
		return
	}

	if acc, ok := s.accounts[id]; ok {
		u.accounts[id] = &acc
	} else {
		u.accounts[id] = nil
	}
}

// touchCoupon must be called with s.mu held, before the write.
func (u *undoLog) touchCoupon(s *Store, code entity.CouponCode) {
	if u == nil {
		return
	}

	if _, seen := u.coupons[code]; seen {
		return
	}

	if c, ok := s.coupons[code]; ok {
		c = copyCoupon(c)
		u.coupons[code] = &c
	} else {
		u.coupons[code] = nil
	}
}

func (s *Store) rollback(u *undoLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, acc := range u.accounts {
		if acc == nil {
			delete(s.accounts, id)

			continue
		}
		s.accounts[id] = *acc
	}

	for code, c := range u.coupons {
		if c == nil {
			delete(s.coupons, code)

			continue
		}
		s.coupons[code] = *c
	}
}

func copyCoupon(c entity.Coupon) entity.Coupon {
	if c.Redemption != nil {
		redemption := *c.Redemption
		c.Redemption = &redemption
	}

	return c
}
