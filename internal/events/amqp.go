package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// AMQPPublisher republishes bus events to a RabbitMQ topic exchange so
// that other tools (e.g. a notification bot) can react to budget changes.
// It is optional; the backend works without a broker.
type AMQPPublisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

// NewAMQPPublisher connects to the broker, declares the exchange and
// subscribes to the bus. Publish failures are logged and dropped, they
// must never fail the mutation that caused them.
func NewAMQPPublisher(url, exchange string, bus *Bus) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	p := &AMQPPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}

	bus.Subscribe(p.publish)

	return p, nil
}

func (p *AMQPPublisher) publish(event Event) {
	body, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("marshal change event")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Routing key "<entity>.<op>" lets consumers bind e.g. "envelope.*"
	key := fmt.Sprintf("%s.%s", event.Entity, event.Op)

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		key,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		log.Error().Err(err).Str("routing-key", key).Msg("publish change event")
		return
	}

	log.Debug().Str("routing-key", key).Str("name", event.Name).Msg("published change event")
}

// Close shuts down the channel and the connection.
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
