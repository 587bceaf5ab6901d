package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scout/config"
	apimiddleware "scout/internal/delivery/api/middleware"
	"scout/internal/delivery/api/router"
	"scout/internal/delivery/api/router/handler"
	deliverycontext "scout/internal/delivery/context"
	"scout/internal/infra/auth"
	"scout/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestParams(t *testing.T) ServerParams {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.SecretKey.Access = "server_test_secret"
	cfg.Billing.CostPerItem = "2.00"
	cfg.Billing.TrialAmount = "0"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	policy, err := usecase.NewBillingPolicy(cfg)
	require.NoError(t, err)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			LookupHandler:  handler.NewLookupHandler(handler.LookupHandlerParams{Logger: logger}),
			AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{Logger: logger}),
			CouponHandler:  handler.NewCouponHandler(handler.CouponHandlerParams{Logger: logger}),
			TestHandler:    handler.NewTestHandler(),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens, policy),
			Config:         cfg,
		},
	}
}

func TestNewServer(t *testing.T) {
	params := newTestParams(t)

	srv, err := NewServer(params)
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewEcho_HealthCarriesRequestID(t *testing.T) {
	e := newEcho(newTestParams(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "probe-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "probe-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.JSONEq(t, `{"data":{"status":"ok"},"meta":{"request_id":"probe-1"}}`, rec.Body.String())
}

func TestNewEcho_BodyLimit(t *testing.T) {
	e := newEcho(newTestParams(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lookups", strings.NewReader(`{"items":["`+strings.Repeat("a", 2048)+`"]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "PAYLOAD_TOO_LARGE")
}

func TestNewEcho_UnknownRoute(t *testing.T) {
	e := newEcho(newTestParams(t))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}
