package outbox

import (
	"context"
	"time"

	"github.com/rafaelleal24/inventory/internal/adapters/config"
	"github.com/rafaelleal24/inventory/internal/core/logger"
	"github.com/rafaelleal24/inventory/internal/core/port"
)

const (
	defaultInterval  = 500 * time.Millisecond
	defaultBatchSize = 100
)

// Handler relays outbox entries to the broker. An entry is deleted only
// after it was published, so delivery is at least once.
type Handler struct {
	outbox   Repository
	broker   port.BrokerPort
	interval time.Duration
	batch    int
}

func NewHandler(outbox Repository, broker port.BrokerPort, cfg config.OutboxConfig) *Handler {
	h := &Handler{
		outbox:   outbox,
		broker:   broker,
		interval: cfg.Interval,
		batch:    cfg.BatchSize,
	}
	if h.interval <= 0 {
		h.interval = defaultInterval
	}
	if h.batch <= 0 {
		h.batch = defaultBatchSize
	}
	return h
}

// Start relays a batch right away and then on every tick until ctx is done.
func (h *Handler) Start(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.relay(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.relay(ctx)
		}
	}
}

// Flush relays batches until the outbox is drained, a batch publishes
// nothing, or ctx is done. It is meant for shutdown, after Start has returned.
func (h *Handler) Flush(ctx context.Context) {
	for ctx.Err() == nil {
		fetched, published := h.relay(ctx)
		if fetched < h.batch || published == 0 {
			return
		}
	}
}

func (h *Handler) relay(ctx context.Context) (fetched, published int) {
	entries, err := h.outbox.FetchPending(ctx, h.batch)
	if err != nil {
		logger.Error(ctx, "outbox: failed to fetch pending events", err, map[string]any{
			"batch": h.batch,
		})
		return 0, 0
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}

		attrs := map[string]any{
			"event_id":    entry.ID,
			"event_name":  entry.EventName,
			"entity_name": entry.EntityName,
		}
		if err := h.broker.PublishRaw(ctx, entry.EventName, entry.EntityName, entry.EventData); err != nil {
			logger.Error(ctx, "outbox: failed to publish event", err, attrs)
			continue
		}
		published++
		logger.Debug(ctx, "outbox: event published", attrs)

		if err := h.outbox.Delete(ctx, entry.ID); err != nil {
			logger.Error(ctx, "outbox: failed to delete published event", err, attrs)
		}
	}
	return len(entries), published
}
