package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/port"
	"github.com/rafaelleal24/inventory/internal/core/serviceerrors"
)

// CatalogRepository keeps products in insertion order with a name index
// derived from that order.
type CatalogRepository struct {
	mu       sync.RWMutex
	products []*domain.Product
	index    map[string]int
}

func NewCatalogRepository() port.CatalogPort {
	return &CatalogRepository{index: make(map[string]int)}
}

func (r *CatalogRepository) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[product.Name]; ok {
		return serviceerrors.NewDuplicateProductError(product.Name)
	}

	r.products = append(r.products, product.Clone())
	r.index[product.Name] = len(r.products) - 1
	return nil
}

func (r *CatalogRepository) GetByName(_ context.Context, name string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[name]
	if !ok {
		return nil, serviceerrors.NewCatalogProductNotFoundError(name)
	}
	return r.products[i].Clone(), nil
}

// Replace overwrites the slot of name with product, keeping its position and
// creation time. product may carry a new name as long as it is not taken.
func (r *CatalogRepository) Replace(_ context.Context, name string, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[name]
	if !ok {
		return serviceerrors.NewCatalogProductNotFoundError(name)
	}
	if product.Name != name {
		if _, taken := r.index[product.Name]; taken {
			return serviceerrors.NewDuplicateProductError(product.Name)
		}
	}

	replacement := product.Clone()
	replacement.CreatedAt = r.products[i].CreatedAt
	replacement.UpdatedAt = time.Now()
	r.products[i] = replacement

	delete(r.index, name)
	r.index[replacement.Name] = i
	return nil
}

func (r *CatalogRepository) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[name]
	if !ok {
		return serviceerrors.NewCatalogProductNotFoundError(name)
	}

	r.products = slices.Delete(r.products, i, i+1)
	delete(r.index, name)
	for j := i; j < len(r.products); j++ {
		r.index[r.products[j].Name] = j
	}
	return nil
}

func (r *CatalogRepository) GetAll(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, len(r.products))
	for i, p := range r.products {
		products[i] = p.Clone()
	}
	return products, nil
}

// AdjustQuantity adds delta to the on-hand quantity of name. The quantity
// never goes below zero.
func (r *CatalogRepository) AdjustQuantity(_ context.Context, name string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[name]
	if !ok {
		return serviceerrors.NewCatalogProductNotFoundError(name)
	}

	product := r.products[i]
	if product.Quantity+delta < 0 {
		return serviceerrors.NewInsufficientStockError(name, -delta, product.Quantity)
	}
	product.Quantity += delta
	product.UpdatedAt = time.Now()
	return nil
}
