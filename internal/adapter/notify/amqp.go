package notify

import (
	"context"
	"encoding/json"
	"time"

	"wallet-ledger/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Routing keys on the topic exchange.
const (
	keySettlementCompleted = "ledger.settlement.completed"
	keySettlementMismatch  = "ledger.settlement.mismatch"
	keyOrderCreated        = "ledger.order.created"
	keyUnmatchedRecorded   = "ledger.unmatched.recorded"
	keyAdminAdjusted       = "ledger.admin.adjusted"
)

// AMQPNotifier publishes settlement events to a RabbitMQ topic exchange.
// The bot consumes these to message users; admin alerts go to a separate
// routing key. Publishing is fire-and-forget: failures are logged, never
// returned, so a broker outage cannot affect settlements.
type AMQPNotifier struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      zerolog.Logger
}

// NewAMQPNotifier connects to the broker and declares the topic exchange.
func NewAMQPNotifier(url, exchange string, log zerolog.Logger) (*AMQPNotifier, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{Dial: amqp.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	log.Info().Str("exchange", exchange).Msg("amqp notifier connected")
	return &AMQPNotifier{conn: conn, channel: channel, exchange: exchange, log: log}, nil
}

// SettlementCompleted publishes a settled or swept credit.
func (n *AMQPNotifier) SettlementCompleted(ctx context.Context, ev ports.SettlementEvent) {
	n.publish(ctx, keySettlementCompleted, ev)
}

// OrderCreated publishes a newly opened deposit order.
func (n *AMQPNotifier) OrderCreated(ctx context.Context, ev ports.OrderEvent) {
	n.publish(ctx, keyOrderCreated, ev)
}

// AmountMismatch publishes a tolerance rejection for admin review.
func (n *AMQPNotifier) AmountMismatch(ctx context.Context, ev ports.MismatchEvent) {
	n.publish(ctx, keySettlementMismatch, ev)
}

// UnmatchedRecorded publishes a parked payment for admin review.
func (n *AMQPNotifier) UnmatchedRecorded(ctx context.Context, ev ports.UnmatchedEvent) {
	n.publish(ctx, keyUnmatchedRecorded, ev)
}

// AdminAdjusted publishes a manual balance change to the audit stream.
func (n *AMQPNotifier) AdminAdjusted(ctx context.Context, ev ports.AdjustmentEvent) {
	n.publish(ctx, keyAdminAdjusted, ev)
}

func (n *AMQPNotifier) publish(ctx context.Context, routingKey string, body interface{}) {
	payload, err := json.Marshal(body)
	if err != nil {
		n.log.Error().Err(err).Str("routing_key", routingKey).Msg("failed to encode event")
		return
	}

	err = n.channel.PublishWithContext(ctx, n.exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        payload,
	})
	if err != nil {
		n.log.Error().Err(err).Str("routing_key", routingKey).Msg("failed to publish event")
		return
	}
	n.log.Debug().Str("routing_key", routingKey).Msg("event published")
}

// Close releases channel and connection resources.
func (n *AMQPNotifier) Close() {
	if n.channel != nil {
		n.channel.Close()
	}
	if n.conn != nil {
		n.conn.Close()
	}
}
