package port

import (
	"context"

	"github.com/rafaelleal24/inventory/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// CatalogPort holds products in insertion order, keyed by name.
type CatalogPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByName(ctx context.Context, name string) (*domain.Product, error)
	Replace(ctx context.Context, name string, product *domain.Product) error
	Delete(ctx context.Context, name string) error
	GetAll(ctx context.Context) ([]*domain.Product, error)
	AdjustQuantity(ctx context.Context, name string, delta int) error
}
