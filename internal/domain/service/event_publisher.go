package service

import (
	"context"

	"scout/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBillingEvent announces a committed balance or coupon change
	PublishBillingEvent(ctx context.Context, event *entity.BillingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
