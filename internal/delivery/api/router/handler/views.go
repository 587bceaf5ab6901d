package handler

import (
	"time"

	"scout/internal/domain/entity"
	"scout/internal/usecase"
)

// Amounts are rendered as major-unit decimal strings, e.g. "94.00".

// LookupResultView is the JSON shape of one item result
type LookupResultView struct {
	Key          string `json:"key"`
	Found        bool   `json:"found"`
	Title        string `json:"title,omitempty"`
	Price        string `json:"price,omitempty"`
	Currency     string `json:"currency,omitempty"`
	URL          string `json:"url,omitempty"`
	ListingCount int    `json:"listing_count,omitempty"`
}

// BatchLookupView is the JSON shape of a batch lookup outcome
type BatchLookupView struct {
	Results  []LookupResultView `json:"results"`
	Charged  string             `json:"charged"`
	Balance  string             `json:"balance"`
	Refunded bool               `json:"refunded"`
	Found    bool               `json:"found"`
}

// AccountView is the JSON shape of an account
type AccountView struct {
	AccountID   int64     `json:"account_id"`
	DisplayName string    `json:"display_name"`
	Balance     string    `json:"balance"`
	Preference  string    `json:"preference"`
	CreatedAt   time.Time `json:"created_at"`
}

// RedemptionView is the JSON shape of a coupon redemption
type RedemptionView struct {
	Code     string `json:"code"`
	Credited string `json:"credited"`
	Balance  string `json:"balance"`
}

// CouponView is the JSON shape of a minted coupon
type CouponView struct {
	Code      string `json:"code"`
	FaceValue string `json:"face_value"`
}

func newBatchLookupView(out *usecase.BatchLookupOutput) *BatchLookupView {
	results := make([]LookupResultView, 0, len(out.Results))
	for _, r := range out.Results {
		view := LookupResultView{Key: r.Key.String(), Found: r.Found}
		if r.Found {
			view.Title = r.Title
			view.Price = r.Price.String()
			view.Currency = r.Currency
			view.URL = r.URL
			view.ListingCount = r.ListingCount
		}
		results = append(results, view)
	}

	return &BatchLookupView{
		Results:  results,
		Charged:  out.Charged.String(),
		Balance:  out.Balance.String(),
		Refunded: out.Refunded,
		Found:    out.Found,
	}
}

func newAccountView(account *entity.Account) *AccountView {
	return &AccountView{
		AccountID:   account.ID.Int64(),
		DisplayName: account.DisplayName,
		Balance:     account.Balance.String(),
		Preference:  account.Preference.String(),
		CreatedAt:   account.CreatedAt,
	}
}
