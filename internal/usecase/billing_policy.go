package usecase

import (
	"scout/config"
	"scout/internal/domain/entity"

	"github.com/pkg/errors"
)

// BillingPolicy holds the parsed price list for balance-gated operations
type BillingPolicy struct {
	CostPerItem    entity.Amount
	TrialAmount    entity.Amount
	MaxBatchSize   int
	CouponMaxBatch int

	privileged map[entity.AccountID]struct{}
}

// NewBillingPolicy parses the billing section of the configuration
func NewBillingPolicy(cfg *config.Config) (*BillingPolicy, error) {
	cost, err := entity.ParseAmount(cfg.Billing.CostPerItem)
	if err != nil {
		return nil, errors.Wrap(err, "invalid billing.costPerItem")
	}

	trial, err := entity.ParseAmount(cfg.Billing.TrialAmount)
	if err != nil {
		return nil, errors.Wrap(err, "invalid billing.trialAmount")
	}

	privileged := make(map[entity.AccountID]struct{}, len(cfg.Billing.PrivilegedAccounts))
	for _, raw := range cfg.Billing.PrivilegedAccounts {
		id, err := entity.NewAccountID(raw)
		if err != nil {
			return nil, errors.Wrap(err, "invalid billing.privilegedAccounts entry")
		}
		privileged[id] = struct{}{}
	}

	return &BillingPolicy{
		CostPerItem:    cost,
		TrialAmount:    trial,
		MaxBatchSize:   cfg.Billing.MaxBatchSize,
		CouponMaxBatch: cfg.Coupon.MaxBatch,
		privileged:     privileged,
	}, nil
}

// IsPrivileged reports whether id is exempt from lookup charges
func (p *BillingPolicy) IsPrivileged(id entity.AccountID) bool {
	_, ok := p.privileged[id]

	return ok
}
