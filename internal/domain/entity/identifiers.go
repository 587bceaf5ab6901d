// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/base32"
	"strconv"
	"strings"
	"unicode/utf8"

	domainerrors "scout/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	maxCouponCodeLength = 64
	maxItemKeyLength    = 200
)

var couponCodeEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// AccountID identifies an account. It is always positive.
type AccountID int64

// NewAccountID validates a raw account identifier.
func NewAccountID(v int64) (AccountID, error) {
	if v <= 0 {
		return 0, domainerrors.NewValidationError("account_id", "must be a positive integer")
	}

	return AccountID(v), nil
}

// ParseAccountID parses a decimal account identifier, e.g. a JWT subject.
func ParseAccountID(s string) (AccountID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, domainerrors.NewValidationError("account_id", "must be a positive integer")
	}

	return NewAccountID(v)
}

// Int64 returns the primitive value.
func (id AccountID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation of the AccountID.
func (id AccountID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// CouponCode is the uppercase identity of a coupon.
type CouponCode string

// NewCouponCode normalizes an externally supplied code: surrounding space is
// trimmed and letters are upper-cased. Only A-Z, 0-9 and '-' are accepted.
func NewCouponCode(raw string) (CouponCode, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return "", domainerrors.NewValidationError("code", "must not be empty")
	}

	if len(code) > maxCouponCodeLength {
		return "", domainerrors.NewValidationError("code", "too long")
	}

	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '-' {
			return "", domainerrors.NewValidationError("code", "contains invalid characters")
		}
	}

	return CouponCode(code), nil
}

// GenerateCouponCode returns a fresh 26 character code built from the
// random bits of a version 4 UUID.
func GenerateCouponCode() CouponCode {
	id := uuid.New()

	return CouponCode(couponCodeEncoding.EncodeToString(id[:]))
}

// String returns the string representation of the CouponCode.
func (c CouponCode) String() string {
	return string(c)
}

// SearchPreference selects which listings a lookup considers.
type SearchPreference string

const (
	// SearchActive restricts lookups to listings currently for sale.
	SearchActive SearchPreference = "ACTIVE"
	// SearchSold restricts lookups to completed sales.
	SearchSold SearchPreference = "SOLD"
	// SearchEnded restricts lookups to listings that ended without a sale.
	SearchEnded SearchPreference = "ENDED"
)

// DefaultSearchPreference is assigned to new accounts.
const DefaultSearchPreference = SearchActive

// ParseSearchPreference parses a preference case-insensitively.
func ParseSearchPreference(s string) (SearchPreference, error) {
	p := SearchPreference(strings.ToUpper(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", domainerrors.NewValidationError("preference", "must be one of ACTIVE, SOLD, ENDED")
	}

	return p, nil
}

// String returns the string representation of the SearchPreference.
func (p SearchPreference) String() string {
	return string(p)
}

// IsValid checks if the SearchPreference is a valid value.
func (p SearchPreference) IsValid() bool {
	switch p {
	case SearchActive, SearchSold, SearchEnded:
		return true
	default:
		return false
	}
}

// ItemKey is a single lookup key, such as a part number or a search phrase.
type ItemKey string

// NewItemKey trims raw and checks it is non-empty and not too long.
func NewItemKey(raw string) (ItemKey, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", domainerrors.NewValidationError("item", "must not be empty")
	}

	if utf8.RuneCountInString(key) > maxItemKeyLength {
		return "", domainerrors.NewValidationError("item", "too long")
	}

	return ItemKey(key), nil
}

// NewItemKeys validates every raw key, failing on the first invalid one.
func NewItemKeys(raw []string) ([]ItemKey, error) {
	keys := make([]ItemKey, 0, len(raw))
	for _, r := range raw {
		key, err := NewItemKey(r)
		if err != nil {
			return nil, err
		}

		keys = append(keys, key)
	}

	return keys, nil
}

// String returns the string representation of the ItemKey.
func (k ItemKey) String() string {
	return string(k)
}
