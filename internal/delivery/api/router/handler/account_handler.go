package handler

import (
	"log/slog"
	"net/http"

	"scout/internal/delivery/api/middleware"
	"scout/internal/delivery/api/response"
	"scout/internal/domain/entity"
	"scout/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves the caller's own account
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// UpdatePreferenceRequest represents the request body for changing the search preference
type UpdatePreferenceRequest struct {
	Preference string `json:"preference" validate:"required"`
}

// GetAccount returns the caller's account, creating it on first contact
func (h *AccountHandler) GetAccount(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account in token")
	}

	account, err := h.accountUC.GetOrCreate(c.Request().Context(), principal.AccountID, "")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account))
}

// UpdatePreference changes which listings the caller's lookups consider
func (h *AccountHandler) UpdatePreference(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account in token")
	}

	var req UpdatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	preference, err := entity.ParseSearchPreference(req.Preference)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()

	account, err := h.accountUC.GetOrCreate(ctx, principal.AccountID, "")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.accountUC.UpdatePreference(ctx, account.ID, preference); err != nil {
		return response.HandleAppError(c, err)
	}
	account.SetPreference(preference)

	return response.Success(c, http.StatusOK, newAccountView(account))
}
