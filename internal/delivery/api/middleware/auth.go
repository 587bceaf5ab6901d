package middleware

import (
	"strings"

	"scout/internal/delivery/api/response"
	deliverycontext "scout/internal/delivery/context"
	"scout/internal/domain/entity"
	"scout/internal/domain/service"
	"scout/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates bearer tokens and builds the request principal.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	policy   *usecase.BillingPolicy
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, policy *usecase.BillingPolicy) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, policy: policy}
}

// Authenticate validates the access token and stores the principal.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		roles := entity.RolesFromStrings(claims.Roles)
		principal := &deliverycontext.Principal{
			AccountID: claims.AccountID,
			Roles:     roles,
		}
		principal.Privileged = principal.IsAdmin() || m.policy.IsPrivileged(claims.AccountID)

		deliverycontext.SetPrincipal(c, principal)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithPrincipal(c.Request().Context(), principal)))

		return next(c)
	}
}

// RequireRole checks that the principal holds role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !principal.Roles.Contains(role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetPrincipal returns the authenticated caller of the request.
func GetPrincipal(c echo.Context) (*deliverycontext.Principal, bool) {
	return deliverycontext.GetPrincipal(c)
}
