package event

import (
	"fmt"

	"github.com/vivekadapa/Drone-Management-System/internal/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQConnection holds the broker connection and a publishing channel.
type RabbitMQConnection struct {
	Connection *amqp.Connection
	Channel    *amqp.Channel
}

func NewRabbitMQConnection(cfg config.RabbitMQConfig) (*RabbitMQConnection, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	return &RabbitMQConnection{Connection: conn, Channel: ch}, nil
}

func (c *RabbitMQConnection) Close() {
	if c.Channel != nil {
		c.Channel.Close()
	}
	if c.Connection != nil {
		c.Connection.Close()
	}
}
