package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "scout/internal/delivery/context"
	"scout/internal/domain/entity"
	"scout/internal/domain/service"
)

// billingEvents announces committed changes. Publishing is best effort: a
// failure is logged and never alters the result of the operation.
type billingEvents struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newBillingEvents(publisher service.EventPublisher, logger *slog.Logger) *billingEvents {
	return &billingEvents{publisher: publisher, logger: logger}
}

func (b *billingEvents) publish(ctx context.Context, event *entity.BillingEvent) {
	if b.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := b.publisher.PublishBillingEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, b.logger).Warn("Failed to publish billing event",
			slog.String("event_type", event.Type.String()),
			slog.Any("error", err),
		)
	}
}
