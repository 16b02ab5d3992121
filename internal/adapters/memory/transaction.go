package memory

import (
	"context"
	"sync"

	"github.com/rafaelleal24/inventory/internal/core/port"
)

// TransactionManager serializes writers against each other and against
// readers. Nothing is rolled back: callers compensate partial work themselves.
type TransactionManager struct {
	mu sync.RWMutex
}

func NewTransactionManager() port.TransactionManager {
	return &TransactionManager{}
}

func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return fn(ctx)
}

func (tm *TransactionManager) WithReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	return fn(ctx)
}
