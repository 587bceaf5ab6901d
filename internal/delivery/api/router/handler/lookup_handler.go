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

// LookupHandlerParams holds dependencies for LookupHandler, injected by Fx.
type LookupHandlerParams struct {
	fx.In

	BatchLookupUC usecase.BatchLookupUsecase
	Logger        *slog.Logger
}

// LookupHandler serves paid batch lookups
type LookupHandler struct {
	batchLookupUC usecase.BatchLookupUsecase
	logger        *slog.Logger
}

// NewLookupHandler is the constructor for LookupHandler
func NewLookupHandler(params LookupHandlerParams) *LookupHandler {
	return &LookupHandler{
		batchLookupUC: params.BatchLookupUC,
		logger:        params.Logger,
	}
}

// BatchLookupRequest represents the request body for a batch lookup
type BatchLookupRequest struct {
	Items       []string `json:"items" validate:"required,min=1,dive,required"`
	DisplayName string   `json:"display_name" validate:"max=255"`
}

// BatchLookup charges the caller and looks up every item
func (h *LookupHandler) BatchLookup(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account in token")
	}

	var req BatchLookupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lookup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	items, err := entity.NewItemKeys(req.Items)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.batchLookupUC.Execute(c.Request().Context(), &usecase.BatchLookupInput{
		AccountID:   principal.AccountID,
		DisplayName: req.DisplayName,
		Items:       items,
		Privileged:  principal.Privileged,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBatchLookupView(out))
}
