// Package queue publishes order lifecycle events for downstream consumers
// (ticket issuance, confirmation email). Delivery is best-effort from the
// API's point of view: a completed order must never be rolled back because
// the broker hiccuped.
package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"ticket-checkout/internal/pkg/config"
	"ticket-checkout/internal/pkg/errs"
)

const (
	RouteOrderCompleted   = "order.completed"
	RouteOrderCashPending = "order.cash_pending"
	RouteOrderExpired     = "order.expired"
)

type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// Connect dials the broker and declares the topic exchange. The returned
// cleanup closes channel and connection in order.
func Connect(cfg config.QueueConfig) (*Publisher, func(), error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to message broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open broker channel")
	}

	if err := ch.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, errs.Wrap(err, "failed to declare exchange")
	}

	p := &Publisher{conn: conn, channel: ch, exchange: cfg.Exchange}
	cleanup := func() {
		p.channel.Close()
		p.conn.Close()
	}
	return p, cleanup, nil
}

// Publish sends one persistent JSON message on the given routing key.
func (p *Publisher) Publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event")
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		})
	if err != nil {
		return errs.Wrap(err, "failed to publish event")
	}
	return nil
}
