package port

import (
	"context"

	"github.com/rafaelleal24/inventory/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// BrokerPort delivers ledger events. Events are routed by entity
// (product, sale, purchase) and keyed by event name.
type BrokerPort interface {
	Publish(ctx context.Context, event domain.Event) error
	// PublishRaw sends an event that was already encoded, as stored in the outbox.
	PublishRaw(ctx context.Context, eventName, entityName string, data []byte) error
	Close() error
}
