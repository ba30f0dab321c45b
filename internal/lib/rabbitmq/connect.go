// Package rabbitmq содержит подключение к брокеру и публикацию событий каталога.
//
// Сервис публикует события product.created и product.removed в обменник
// catalog-events; потребители (поисковый индекс, уведомления) подключаются
// к своим очередям независимо.
package rabbitmq

import (
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// Connect подключается к RabbitMQ с ретраями.
func Connect(connection string, retries int, delay time.Duration) (*amqp.Connection, error) {
	const op = "rabbitmq.Connect"
	var conn *amqp.Connection
	var err error

	for range retries {
		conn, err = amqp.Dial(connection)
		if err == nil {
			return conn, nil
		}
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("%s: %w", op, err)
}
