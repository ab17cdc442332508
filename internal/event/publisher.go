package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// MissionPublisher publishes mission lifecycle events to RabbitMQ. Counters
// are atomic because every gin handler goroutine publishes through the same
// instance.
type MissionPublisher struct {
	conn              *RabbitMQConnection
	messagesPublished atomic.Int64
	messagesFailed    atomic.Int64
	lastPublishNano   atomic.Int64
}

// NewMissionPublisher creates a new mission event publisher
func NewMissionPublisher(conn *RabbitMQConnection) *MissionPublisher {
	p := &MissionPublisher{conn: conn}
	p.lastPublishNano.Store(time.Now().UnixNano())
	return p
}

func (p *MissionPublisher) recordSuccess() {
	p.messagesPublished.Add(1)
	p.lastPublishNano.Store(time.Now().UnixNano())
}

func (p *MissionPublisher) recordFailure() {
	p.messagesFailed.Add(1)
}

// PublishEvent publishes a mission event to the mission_events queue
func (p *MissionPublisher) PublishEvent(ctx context.Context, event MissionEvent) error {
	// Ensure the queue exists
	_, err := p.conn.Channel.QueueDeclare(
		MissionQueue, // queue name
		true,         // durable
		false,        // delete when unused
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		p.recordFailure()
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.recordFailure()
		return fmt.Errorf("failed to marshal mission event: %w", err)
	}

	err = p.conn.Channel.PublishWithContext(
		ctx,
		"",           // exchange
		MissionQueue, // routing key (queue name)
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		p.recordFailure()
		return fmt.Errorf("failed to publish mission event: %w", err)
	}

	p.recordSuccess()

	slog.Info("Mission event published",
		"queue", MissionQueue,
		"event_type", event.EventType,
		"mission_id", event.MissionID,
	)

	return nil
}

// GetMetrics returns publisher metrics
func (p *MissionPublisher) GetMetrics() map[string]any {
	return map[string]any{
		"messages_published": p.messagesPublished.Load(),
		"messages_failed":    p.messagesFailed.Load(),
		"last_publish_time":  time.Unix(0, p.lastPublishNano.Load()),
		"queue":              MissionQueue,
	}
}

// HealthCheck returns the health status of the publisher
func (p *MissionPublisher) HealthCheck() PublisherHealthStatus {
	isHealthy := p.conn != nil && p.conn.Connection != nil && !p.conn.Connection.IsClosed()

	return PublisherHealthStatus{
		IsHealthy:         isHealthy,
		MessagesPublished: p.messagesPublished.Load(),
		MessagesFailed:    p.messagesFailed.Load(),
		LastPublishTime:   time.Unix(0, p.lastPublishNano.Load()),
		Queue:             MissionQueue,
	}
}

// PublisherHealthStatus represents the health status of the publisher
type PublisherHealthStatus struct {
	IsHealthy         bool      `json:"is_healthy"`
	MessagesPublished int64     `json:"messages_published"`
	MessagesFailed    int64     `json:"messages_failed"`
	LastPublishTime   time.Time `json:"last_publish_time"`
	Queue             string    `json:"queue"`
}
