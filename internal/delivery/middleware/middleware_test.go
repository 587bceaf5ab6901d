package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"scout/config"
	deliverycontext "scout/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, debug bool) (*echo.Echo, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/ok", func(c echo.Context) error {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside handler")

		return c.String(http.StatusOK, deliverycontext.GetRequestID(c))
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "nope")
	})

	return e, &buf
}

func serve(e *echo.Echo, path, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestIDMiddleware_PropagatesClientID(t *testing.T) {
	e, buf := newTestEcho(t, false)

	rec := serve(e, "/ok", "client-42")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "client-42", rec.Body.String())
	assert.Equal(t, "client-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), "request_id=client-42")
}

func TestRequestIDMiddleware_ReplacesUnsafeID(t *testing.T) {
	e, _ := newTestEcho(t, false)

	rec := serve(e, "/ok", "bad id")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, "bad id", rec.Body.String())
	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestLoggerMiddleware_QuietOnSuccessOutsideDebug(t *testing.T) {
	e, buf := newTestEcho(t, false)

	serve(e, "/ok", "")
	assert.NotContains(t, buf.String(), "HTTP Request")

	rec := serve(e, "/fail", "")
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), "HTTP Request")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "status=418")
}

func TestLoggerMiddleware_DebugLogsEveryRequest(t *testing.T) {
	e, buf := newTestEcho(t, true)

	serve(e, "/ok?x=1", "dbg-1")
	assert.Contains(t, buf.String(), "HTTP Request")
	assert.Contains(t, buf.String(), `query="x=1"`)
	assert.Contains(t, buf.String(), "request_id=dbg-1")
}
