package pubsub

import (
	"context"
	"log/slog"

	"scout/internal/domain/entity"
	"scout/internal/domain/service"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

const defaultNatsSubject = "scout.billing"

// natsPublisher implements EventPublisher on a core NATS subject
type natsPublisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewNatsPublisher connects to url and publishes billing events on subject
func NewNatsPublisher(url, subject string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("scout"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to nats at %s", url)
	}

	return newNatsPublisher(conn, subject, logger), nil
}

func newNatsPublisher(conn *nats.Conn, subject string, logger *slog.Logger) *natsPublisher {
	if subject == "" {
		subject = defaultNatsSubject
	}

	return &natsPublisher{
		conn:    conn,
		subject: subject,
		logger:  logger,
	}
}

// PublishBillingEvent publishes the event with its attributes as headers
func (p *natsPublisher) PublishBillingEvent(ctx context.Context, event *entity.BillingEvent) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	msg := nats.NewMsg(p.subject)
	msg.Data = data
	for key, value := range eventAttributes(event) {
		msg.Header.Set(key, value)
	}

	if err := p.conn.PublishMsg(msg); err != nil {
		return errors.Wrap(err, "nats publish")
	}

	p.logger.Debug("[NATS] Billing event published",
		slog.String("subject", p.subject),
		slog.String("event_type", event.Type.String()),
	)

	return nil
}

// Close flushes pending messages and drains the connection
func (p *natsPublisher) Close() error {
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}

	return errors.WithStack(p.conn.Drain())
}
