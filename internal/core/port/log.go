package port

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// RecordLogPort is an append-only log of transaction records.
type RecordLogPort[T any] interface {
	Append(ctx context.Context, record T) error
	GetAll(ctx context.Context) ([]T, error)
}
