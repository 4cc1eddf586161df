package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"hotelhub/internal/pkg/config"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase"
)

// AMQPPublisher publishes booking events to per-event durable queues on the
// default exchange. Messages are persistent so they survive broker restarts.
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *slog.Logger
}

func NewAMQPPublisher(cfg config.BrokerConfig, logger *slog.Logger) (*AMQPPublisher, func(), error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to dial broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open broker channel")
	}

	for _, queue := range []string{usecase.EventBookingConfirmed, usecase.EventBookingCancelled} {
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, nil, errs.Wrap(err, "failed to declare queue")
		}
	}

	cleanup := func() {
		_ = ch.Close()
		_ = conn.Close()
	}
	return &AMQPPublisher{conn: conn, channel: ch, logger: logger}, cleanup, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event usecase.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal booking event")
	}

	err = p.channel.PublishWithContext(ctx,
		"",         // default exchange
		event.Type, // routing key = queue name
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return errs.Wrap(err, "failed to publish booking event")
	}

	p.logger.DebugContext(ctx, "booking event published",
		slog.String("type", event.Type),
		slog.Int64("booking_id", event.BookingID),
	)
	return nil
}
