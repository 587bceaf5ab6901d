// Package entity contains the core business objects of the project.
package entity

import "time"

// Account is a prepaid balance holder. Accounts are created on first contact
// with the trial balance and are never deleted.
type Account struct {
	ID          AccountID        `json:"id"`
	DisplayName string           `json:"display_name"`
	Balance     Amount           `json:"balance"`
	Preference  SearchPreference `json:"preference"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewAccount creates an account holding the trial balance and the default
// search preference.
func NewAccount(id AccountID, displayName string, trial Amount) *Account {
	now := time.Now()

	return &Account{
		ID:          id,
		DisplayName: displayName,
		Balance:     trial,
		Preference:  DefaultSearchPreference,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DeductBalance subtracts amount from the balance. On failure the balance is
// left untouched.
func (a *Account) DeductBalance(amount Amount) error {
	balance, err := a.Balance.Subtract(amount)
	if err != nil {
		return err
	}

	a.Balance = balance
	a.UpdatedAt = time.Now()

	return nil
}

// AddBalance credits amount to the balance.
func (a *Account) AddBalance(amount Amount) error {
	balance, err := a.Balance.Add(amount)
	if err != nil {
		return err
	}

	a.Balance = balance
	a.UpdatedAt = time.Now()

	return nil
}

// HasBalance reports whether the balance covers amount.
func (a *Account) HasBalance(amount Amount) bool {
	return a.Balance.IsAtLeast(amount)
}

// SetPreference replaces the search preference.
func (a *Account) SetPreference(p SearchPreference) {
	a.Preference = p
	a.UpdatedAt = time.Now()
}

// SetDisplayName replaces the display name.
func (a *Account) SetDisplayName(name string) {
	a.DisplayName = name
	a.UpdatedAt = time.Now()
}
