package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rafaelleal24/inventory/internal/adapters/config"
	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/logger"
	"github.com/rafaelleal24/inventory/internal/core/port"
)

const exchangePrefix = "exchange."

// Publisher sends ledger events to one exchange per entity, routed by event
// name. Exchanges are declared on connect.
type Publisher struct {
	mu        sync.Mutex
	conn      *amqp.Connection
	channel   *amqp.Channel
	config    config.RabbitMQConfig
	exchanges map[string]string
}

var _ port.BrokerPort = (*Publisher)(nil)

func NewPublisher(cfg config.RabbitMQConfig) (*Publisher, error) {
	p := &Publisher{config: cfg, exchanges: make(map[string]string, len(cfg.ExchangeConfigs))}
	for _, ec := range cfg.ExchangeConfigs {
		p.exchanges[strings.TrimPrefix(ec.Name, exchangePrefix)] = ec.Name
	}

	if err := p.connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.config.URL)
	if err != nil {
		return fmt.Errorf("failed to dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	for _, ec := range p.config.ExchangeConfigs {
		if err := ch.ExchangeDeclare(ec.Name, ec.Type, ec.Durable, ec.AutoDelete, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return fmt.Errorf("failed to declare exchange %s: %w", ec.Name, err)
		}
	}

	p.conn = conn
	p.channel = ch
	return nil
}

// resetLocked drops the current channel and connection. Callers hold p.mu.
func (p *Publisher) resetLocked() {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *Publisher) Publish(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.GetName(), err)
	}
	return p.publish(ctx, event.GetName(), event.GetEntityName(), body)
}

func (p *Publisher) PublishRaw(ctx context.Context, eventName, entityName string, data []byte) error {
	return p.publish(ctx, eventName, entityName, data)
}

func (p *Publisher) publish(ctx context.Context, eventName, entityName string, body []byte) error {
	exchange, ok := p.exchanges[entityName]
	if !ok {
		return fmt.Errorf("no exchange configured for entity %q", entityName)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Type:         eventName,
		Timestamp:    time.Now(),
		Body:         body,
	}

	var lastErr error
	for attempt := 0; attempt <= p.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return errors.Join(ctx.Err(), lastErr)
			case <-time.After(p.config.RetryDelay):
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if lastErr = p.publishOnce(ctx, exchange, eventName, msg); lastErr == nil {
			return nil
		}
		logger.Warn(ctx, "publish: attempt failed", map[string]any{
			"attempt":  attempt + 1,
			"exchange": exchange,
			"event":    eventName,
			"error":    lastErr.Error(),
		})
	}

	return fmt.Errorf("failed to publish %s after %d attempts: %w", eventName, p.config.MaxRetries+1, lastErr)
}

func (p *Publisher) publishOnce(ctx context.Context, exchange, routingKey string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil || p.channel.IsClosed() {
		p.resetLocked()
		if err := p.connect(); err != nil {
			return fmt.Errorf("reconnect failed: %w", err)
		}
	}

	if err := p.channel.PublishWithContext(ctx, exchange, routingKey, false, false, msg); err != nil {
		p.resetLocked()
		return err
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing channel: %w", err))
		}
		p.channel = nil
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing connection: %w", err))
		}
		p.conn = nil
	}
	return errors.Join(errs...)
}

func (p *Publisher) HealthCheck() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		return errors.New("connection is closed")
	}
	if p.channel == nil || p.channel.IsClosed() {
		return errors.New("channel is closed")
	}
	return nil
}
