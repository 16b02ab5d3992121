package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/rafaelleal24/inventory/internal/adapters/outbox"
	"github.com/rafaelleal24/inventory/internal/core/serviceerrors"
)

// OutboxRepository holds pending events in the order they were inserted.
type OutboxRepository struct {
	mu      sync.Mutex
	entries []outbox.Entry
}

func NewOutboxRepository() outbox.Repository {
	return &OutboxRepository{}
}

func (r *OutboxRepository) Insert(_ context.Context, entry outbox.Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.EventData = slices.Clone(entry.EventData)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	return nil
}

func (r *OutboxRepository) FetchPending(_ context.Context, limit int) ([]outbox.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	return slices.Clone(r.entries[:n]), nil
}

func (r *OutboxRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.entries, func(e outbox.Entry) bool { return e.ID == id })
	if i < 0 {
		return serviceerrors.NewNotFoundError("outbox entry not found")
	}
	r.entries = slices.Delete(r.entries, i, i+1)
	return nil
}
