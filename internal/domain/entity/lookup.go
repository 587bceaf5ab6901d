// Package entity contains the core business objects of the project.
package entity

// LookupResult is the outcome of looking up one ItemKey. Descriptive fields
// are only populated when Found is true.
type LookupResult struct {
	Key          ItemKey `json:"key"`
	Found        bool    `json:"found"`
	Title        string  `json:"title,omitempty"`
	Price        Amount  `json:"price"`
	Currency     string  `json:"currency,omitempty"`
	URL          string  `json:"url,omitempty"`
	ListingCount int     `json:"listing_count"`
}

// NotFoundResult returns the no-match marker for key.
func NotFoundResult(key ItemKey) LookupResult {
	return LookupResult{Key: key}
}

// AnyFound reports whether at least one result is a match.
func AnyFound(results []LookupResult) bool {
	for _, r := range results {
		if r.Found {
			return true
		}
	}

	return false
}
