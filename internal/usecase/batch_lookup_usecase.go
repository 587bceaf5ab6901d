package usecase

import (
	"context"

	"scout/internal/domain/entity"
)

// BatchLookupInput is a request to look up a batch of items on an account's behalf
type BatchLookupInput struct {
	AccountID   entity.AccountID `json:"account_id"`
	DisplayName string           `json:"display_name"`
	Items       []entity.ItemKey `json:"items"`
	Privileged  bool             `json:"privileged"`
}

// BatchLookupOutput reports the lookup results and the billing outcome
type BatchLookupOutput struct {
	Results  []entity.LookupResult `json:"results"`
	Charged  entity.Amount         `json:"charged"`
	Balance  entity.Amount         `json:"balance"`
	Refunded bool                  `json:"refunded"`
	Found    bool                  `json:"found"`
}

// BatchLookupUsecase charges for a batch lookup, performs it, and refunds
// the charge when nothing was found or the lookup failed.
type BatchLookupUsecase interface {
	Execute(ctx context.Context, input *BatchLookupInput) (*BatchLookupOutput, error)
}
