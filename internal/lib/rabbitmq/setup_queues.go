package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// ExchangeName имя обменника событий каталога.
const ExchangeName = "catalog-events"

// QueueConfig связка очереди с ключом маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// DefaultQueues очереди, которые объявляет сервис при старте.
var DefaultQueues = []QueueConfig{
	{QueueName: "product_created", RoutingKey: "product.created"},
	{QueueName: "product_removed", RoutingKey: "product.removed"},
}

// SetupChannel открывает канал, объявляет обменник catalog-events
// и привязывает к нему переданные очереди.
func SetupChannel(conn *amqp.Connection, queues []QueueConfig) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	err = ch.ExchangeDeclare(
		ExchangeName,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, q := range queues {
		_, err := ch.QueueDeclare(
			q.QueueName,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to declare queue %s: %w", op, q.QueueName, err)
		}

		err = ch.QueueBind(
			q.QueueName,
			q.RoutingKey,
			ExchangeName,
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to bind queue %s with routing key %s: %w", op, q.QueueName, q.RoutingKey, err)
		}
	}

	return ch, nil
}
