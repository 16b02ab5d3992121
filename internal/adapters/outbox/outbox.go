package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/port"
)

type Entry struct {
	ID         string
	EventName  string
	EntityName string
	EventData  []byte
}

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
type Repository interface {
	Insert(ctx context.Context, entry Entry) error
	FetchPending(ctx context.Context, limit int) ([]Entry, error)
	Delete(ctx context.Context, id string) error
}

// Writer stores domain events in a Repository until the Handler delivers them.
type Writer struct {
	repository Repository
}

func NewWriter(repository Repository) port.OutboxPort {
	return &Writer{repository: repository}
}

func (w *Writer) Enqueue(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.GetName(), err)
	}
	return w.repository.Insert(ctx, Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  data,
	})
}
