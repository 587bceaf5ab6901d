// Package context carries request-scoped values between the HTTP layer and the usecases.
package context

import (
	"context"
	"log/slog"

	"scout/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyPrincipal ContextKey = "principal"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	maxRequestIDLength = 64
)

// Principal is the authenticated caller of a request.
type Principal struct {
	AccountID  entity.AccountID
	Roles      entity.Roles
	Privileged bool // Exempt from lookup charges.
}

// IsAdmin reports whether the caller holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p.Roles.Contains(entity.RoleAdmin)
}

// ResolveRequestID returns the client supplied ID when it is safe to echo
// into logs and headers, otherwise a fresh UUID.
func ResolveRequestID(raw string) string {
	if raw == "" || len(raw) > maxRequestIDLength {
		return uuid.NewString()
	}

	for _, r := range raw {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isAlnum && r != '-' && r != '_' && r != '.' {
			return uuid.NewString()
		}
	}

	return raw
}

// GetRequestID extracts the request ID from echo.Context, or "" when unset.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from context.Context, or "" when unset.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger, or nil when unset.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault extracts the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetPrincipal stores the caller in echo.Context.
func SetPrincipal(c echo.Context, principal *Principal) {
	c.Set(string(KeyPrincipal), principal)
}

// GetPrincipal extracts the caller from echo.Context.
func GetPrincipal(c echo.Context) (*Principal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(*Principal)

	return principal, ok && principal != nil
}

// WithPrincipal returns a new context carrying the caller. A request-scoped
// logger already in ctx is extended with the caller's account ID.
func WithPrincipal(ctx context.Context, principal *Principal) context.Context {
	ctx = context.WithValue(ctx, KeyPrincipal, principal)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.Int64("account_id", principal.AccountID.Int64())))
	}

	return ctx
}

// GetPrincipalFromContext extracts the caller from context.Context.
func GetPrincipalFromContext(ctx context.Context) (*Principal, bool) {
	principal, ok := ctx.Value(KeyPrincipal).(*Principal)

	return principal, ok && principal != nil
}
