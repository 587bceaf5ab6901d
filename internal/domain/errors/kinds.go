package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a business rule violation. The set is closed; callers may
// switch over it exhaustively.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindInsufficientBalance
	KindInsufficientFunds
	KindAlreadyRedeemed
	KindCouponNotFound
	KindAccountNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInsufficientBalance:
		return "insufficient_balance"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindAlreadyRedeemed:
		return "already_redeemed"
	case KindCouponNotFound:
		return "coupon_not_found"
	case KindAccountNotFound:
		return "account_not_found"
	default:
		return "unknown"
	}
}

// DomainError is a business rule violation tagged with its Kind. Only the
// payload fields relevant to the kind are populated; amounts are minor units.
type DomainError struct {
	kind Kind

	Field     string
	Reason    string
	Code      string
	AccountID int64
	Required  int64
	Available int64
}

// Sentinels for errors.Is matching. Any DomainError of the same kind matches.
var (
	ErrValidation          = &DomainError{kind: KindValidation}
	ErrInsufficientBalance = &DomainError{kind: KindInsufficientBalance}
	ErrInsufficientFunds   = &DomainError{kind: KindInsufficientFunds}
	ErrAlreadyRedeemed     = &DomainError{kind: KindAlreadyRedeemed}
	ErrCouponNotFound      = &DomainError{kind: KindCouponNotFound}
	ErrAccountNotFound     = &DomainError{kind: KindAccountNotFound}
)

// NewValidationError reports a malformed input value
func NewValidationError(field, reason string) *DomainError {
	return &DomainError{kind: KindValidation, Field: field, Reason: reason}
}

// NewInsufficientBalanceError reports an amount subtraction that would go negative
func NewInsufficientBalanceError(required, available int64) *DomainError {
	return &DomainError{kind: KindInsufficientBalance, Required: required, Available: available}
}

// NewInsufficientFundsError reports a failed batch precondition check
func NewInsufficientFundsError(required, available int64) *DomainError {
	return &DomainError{kind: KindInsufficientFunds, Required: required, Available: available}
}

// NewAlreadyRedeemedError reports a coupon that is no longer redeemable
func NewAlreadyRedeemedError(code string) *DomainError {
	return &DomainError{kind: KindAlreadyRedeemed, Code: code}
}

// NewCouponNotFoundError reports an unknown coupon code
func NewCouponNotFoundError(code string) *DomainError {
	return &DomainError{kind: KindCouponNotFound, Code: code}
}

// NewAccountNotFoundError reports an unknown account
func NewAccountNotFoundError(accountID int64) *DomainError {
	return &DomainError{kind: KindAccountNotFound, AccountID: accountID}
}

// Kind returns the classification of the error
func (e *DomainError) Kind() Kind {
	return e.kind
}

// Error implements the error interface
func (e *DomainError) Error() string {
	switch e.kind {
	case KindValidation:
		if e.Field == "" {
			return "validation failed: " + e.Reason
		}

		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
	case KindInsufficientBalance:
		return fmt.Sprintf("insufficient balance: need %s, have %s", formatMinor(e.Required), formatMinor(e.Available))
	case KindInsufficientFunds:
		return fmt.Sprintf("insufficient funds: required %s, available %s", formatMinor(e.Required), formatMinor(e.Available))
	case KindAlreadyRedeemed:
		return fmt.Sprintf("coupon %s has already been redeemed", e.Code)
	case KindCouponNotFound:
		return fmt.Sprintf("coupon %s not found", e.Code)
	case KindAccountNotFound:
		return fmt.Sprintf("account %d not found", e.AccountID)
	default:
		return "domain error"
	}
}

// Is reports whether target is a DomainError of the same kind
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}

	return t.kind == e.kind
}

// HTTPCode returns the HTTP status code
func (e *DomainError) HTTPCode() int {
	switch e.kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindInsufficientFunds, KindInsufficientBalance:
		return http.StatusPaymentRequired
	case KindAlreadyRedeemed:
		return http.StatusConflict
	case KindCouponNotFound, KindAccountNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the business error code
func (e *DomainError) ErrorCode() string {
	switch e.kind {
	case KindValidation:
		return "VALIDATION_FAILED"
	case KindInsufficientBalance:
		return "INSUFFICIENT_BALANCE"
	case KindInsufficientFunds:
		return "INSUFFICIENT_FUNDS"
	case KindAlreadyRedeemed:
		return "COUPON_ALREADY_REDEEMED"
	case KindCouponNotFound:
		return "COUPON_NOT_FOUND"
	case KindAccountNotFound:
		return "ACCOUNT_NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// Message returns the user-friendly error message
func (e *DomainError) Message() string {
	switch e.kind {
	case KindValidation:
		return "Invalid input"
	case KindInsufficientBalance, KindInsufficientFunds:
		return "Your balance is too low for this request, redeem a coupon to top up"
	case KindAlreadyRedeemed:
		return "This coupon has already been used"
	case KindCouponNotFound:
		return "This coupon code is not valid"
	case KindAccountNotFound:
		return "Account not found"
	default:
		return "Internal server error"
	}
}

// Details returns detailed error information
func (e *DomainError) Details() string {
	return e.Error()
}

// Payload returns the kind-specific fields for client display
func (e *DomainError) Payload() map[string]any {
	switch e.kind {
	case KindValidation:
		return map[string]any{"field": e.Field, "reason": e.Reason}
	case KindInsufficientBalance, KindInsufficientFunds:
		return map[string]any{"required": e.Required, "available": e.Available}
	case KindAlreadyRedeemed, KindCouponNotFound:
		return map[string]any{"code": e.Code}
	case KindAccountNotFound:
		return map[string]any{"account_id": e.AccountID}
	default:
		return nil
	}
}

// IsDomainError reports whether err carries a business rule violation
func IsDomainError(err error) bool {
	var de *DomainError

	return errors.As(err, &de)
}

// KindOf returns the kind of the first DomainError in err's tree
func KindOf(err error) (Kind, bool) {
	var de *DomainError
	if !errors.As(err, &de) {
		return 0, false
	}

	return de.kind, true
}

func formatMinor(units int64) string {
	sign := ""
	if units < 0 {
		sign = "-"
		units = -units
	}

	return fmt.Sprintf("%s%d.%02d", sign, units/100, units%100)
}
