package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/rafaelleal24/inventory/internal/core/port"
)

type RecordLog[T any] struct {
	mu      sync.RWMutex
	records []T
}

func NewRecordLog[T any]() port.RecordLogPort[T] {
	return &RecordLog[T]{}
}

func (l *RecordLog[T]) Append(_ context.Context, record T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, record)
	return nil
}

func (l *RecordLog[T]) GetAll(_ context.Context) ([]T, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.records), nil
}
