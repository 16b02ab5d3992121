package port

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// TransactionManager serializes ledger mutations. WithTransaction runs fn
// with no other transaction in flight; WithReadOnly may run alongside other
// readers. A failed fn is not rolled back: callers undo partial work.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	WithReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
