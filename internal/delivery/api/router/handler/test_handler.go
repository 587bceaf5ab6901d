package handler

import (
	"net/http"

	"scout/internal/delivery/api/middleware"
	"scout/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware echoes the principal built by the authentication middleware
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Principal not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message":    "Authentication middleware test successful",
		"account_id": principal.AccountID.Int64(),
		"roles":      principal.Roles.ToStrings(),
		"privileged": principal.Privileged,
		"status":     "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}
