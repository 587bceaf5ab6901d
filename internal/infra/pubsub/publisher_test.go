package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scout/config"
	"scout/internal/domain/constants"
	"scout/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *entity.BillingEvent {
	return &entity.BillingEvent{
		RequestID:  "req-1",
		Type:       entity.BillingEventCharged,
		AccountID:  42,
		Amount:     entity.MustAmount(600),
		Balance:    entity.MustAmount(9400),
		ItemCount:  3,
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestEventAttributes(t *testing.T) {
	attrs := eventAttributes(sampleEvent())

	assert.Equal(t, map[string]string{
		"event_type": "charged",
		"account_id": "42",
		"request_id": "req-1",
	}, attrs)

	minted := eventAttributes(&entity.BillingEvent{Type: entity.BillingEventCouponMinted, CouponCode: "SPRING"})
	assert.Equal(t, "SPRING", minted["coupon_code"])
	assert.NotContains(t, minted, "account_id")
}

func TestLocalHTTPPublisher_PublishBillingEvent(t *testing.T) {
	var received PushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishBillingEvent(context.Background(), sampleEvent()))
	require.NoError(t, publisher.Close())

	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "charged", received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event entity.BillingEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, entity.AccountID(42), event.AccountID)
	assert.Equal(t, int64(600), event.Amount.Units())
	assert.Equal(t, int64(9400), event.Balance.Units())
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishBillingEvent(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		noop    bool
		wantErr string
	}{
		{name: "not configured", cfg: nil, noop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, noop: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: "project ID"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID"},
		{name: "nats without url", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderNATS}, wantErr: "nats URL"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)

			if tt.noop {
				assert.NoError(t, publisher.PublishBillingEvent(context.Background(), &entity.BillingEvent{Type: entity.BillingEventRefunded}))
			}
		})
	}
}
