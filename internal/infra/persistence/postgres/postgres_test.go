package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Observe(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	monitor := newPoolMonitor(logger, sql.DBStats{WaitCount: 3, WaitDuration: time.Millisecond})

	assert.False(t, monitor.observe(ctx, sql.DBStats{WaitCount: 3, WaitDuration: time.Millisecond}))
	assert.Empty(t, buf.String())

	assert.True(t, monitor.observe(ctx, sql.DBStats{WaitCount: 5, WaitDuration: 11 * time.Millisecond}))
	assert.Contains(t, buf.String(), "Postgres pool wait observed")
	assert.Contains(t, buf.String(), "avgWait=5ms")

	buf.Reset()
	assert.True(t, monitor.observe(ctx, sql.DBStats{WaitCount: 6, WaitDuration: 111 * time.Millisecond}))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "Postgres pool wait detected")
}
