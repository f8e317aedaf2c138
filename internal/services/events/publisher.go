// Package events publishes content lifecycle events to RabbitMQ, so tenants
// can rebuild static frontends or invalidate CDN caches when content changes.
package events

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
)

const contentEventsQueue = "content_events"

// Event names emitted on the content events queue
const (
	PostPublished   = "post.published"
	PostUnpublished = "post.unpublished"
	PostUpdated     = "post.updated"
	PostDeleted     = "post.deleted"
)

// Publisher wraps a RabbitMQ connection used for content events
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher connects to RabbitMQ and declares the content events queue
func NewPublisher() (*Publisher, error) {
	// Get RabbitMQ connection details from environment
	host := getEnv("RABBITMQ_HOST", "localhost")
	port := getEnv("RABBITMQ_PORT", "5672")
	user := getEnv("RABBITMQ_USER", "guest")
	pass := getEnv("RABBITMQ_PASS", "guest")

	url := fmt.Sprintf("amqp://%s:%s@%s:%s/", user, pass, host, port)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		contentEventsQueue, // name
		true,               // durable
		false,              // delete when unused
		false,              // exclusive
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	logrus.Info("RabbitMQ content events publisher initialized")
	return &Publisher{
		conn:    conn,
		channel: channel,
	}, nil
}

// PublishPostEvent publishes a post lifecycle event. A nil receiver is a
// no-op, so callers do not branch on whether RabbitMQ is configured.
func (p *Publisher) PublishPostEvent(event string, post *models.Post) error {
	if p == nil {
		return nil
	}

	body, err := json.Marshal(map[string]interface{}{
		"event":           event,
		"organization_id": post.OrganizationID,
		"post_id":         post.ID,
		"slug":            post.Slug,
		"type":            post.Type,
		"occurred_at":     time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.channel.Publish(
		"",                 // exchange
		contentEventsQueue, // routing key
		false,              // mandatory
		false,              // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Close closes the RabbitMQ connection
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			logrus.Warnf("Error closing channel: %v", err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			logrus.Warnf("Error closing connection: %v", err)
		}
	}
	return nil
}

// getEnv gets environment variable with fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
