package service

import (
	"context"

	"scout/internal/domain/entity"
)

// LookupProvider searches an external marketplace for a batch of item keys.
type LookupProvider interface {
	// Lookup returns exactly one result per key, in input order. Every key is
	// queried independently; if any single query cannot be completed the whole
	// call fails and no results are returned.
	Lookup(ctx context.Context, keys []entity.ItemKey, preference entity.SearchPreference) ([]entity.LookupResult, error)
}
